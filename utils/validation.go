package utils

import (
	"regexp"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail checks the email format
func ValidateEmail(email string) bool {
	return emailRegexp.MatchString(email)
}
