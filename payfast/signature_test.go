package payfast

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testOptions = SignOptions{SpacesAsPlus: true}

func TestSign_MatchesCanonicalString(t *testing.T) {
	params := map[string]string{
		"m_payment_id": "PAY-1700000000-a1B2c3D4",
		"amount":       "150.00",
		"item_name":    "Premium Membership",
	}

	// Independently built canonical string: empty values dropped, keys in
	// byte order, values urlencoded, passphrase appended last.
	canonical := "amount=150.00&item_name=Premium+Membership&m_payment_id=PAY-1700000000-a1B2c3D4&passphrase=secret"
	sum := md5.Sum([]byte(canonical))

	assert.Equal(t, hex.EncodeToString(sum[:]), Sign(params, "secret", testOptions))
}

func TestSign_OmitsPassphraseWhenEmpty(t *testing.T) {
	params := map[string]string{"amount": "150.00"}

	canonical := "amount=150.00"
	sum := md5.Sum([]byte(canonical))

	assert.Equal(t, hex.EncodeToString(sum[:]), Sign(params, "", testOptions))
}

func TestSign_ExcludesEmptyValues(t *testing.T) {
	withEmpty := map[string]string{"a": "", "b": "x"}
	withoutEmpty := map[string]string{"b": "x"}

	assert.Equal(t, Sign(withoutEmpty, "secret", testOptions), Sign(withEmpty, "secret", testOptions))
}

func TestSign_InputOrderIndependent(t *testing.T) {
	first := map[string]string{"b": "2", "a": "1"}
	second := map[string]string{"a": "1", "b": "2"}

	assert.Equal(t, Sign(second, "secret", testOptions), Sign(first, "secret", testOptions))
}

func TestSign_SpaceConventionChangesSignature(t *testing.T) {
	params := map[string]string{"item_name": "Premium Membership"}

	plus := Sign(params, "secret", SignOptions{SpacesAsPlus: true})
	percent := Sign(params, "secret", SignOptions{SpacesAsPlus: false})

	assert.NotEqual(t, plus, percent)
}

func TestVerify_RoundTrip(t *testing.T) {
	params := map[string]string{
		"m_payment_id":   "PAY-1700000000-a1B2c3D4",
		"payment_status": "COMPLETE",
		"amount_gross":   "150.00",
		"name_first":     "Thandi",
	}

	signature := Sign(params, "secret", testOptions)

	assert.True(t, Verify(params, "secret", signature, testOptions))
	assert.True(t, Verify(params, "secret", strings.ToUpper(signature), testOptions))
}

func TestVerify_TamperedValueFails(t *testing.T) {
	params := map[string]string{
		"m_payment_id":   "PAY-1700000000-a1B2c3D4",
		"payment_status": "COMPLETE",
		"amount_gross":   "150.00",
	}
	signature := Sign(params, "secret", testOptions)

	for key, value := range params {
		tampered := make(map[string]string, len(params))
		for k, v := range params {
			tampered[k] = v
		}
		// flip the first character of one value
		tampered[key] = "X" + value[1:]

		assert.False(t, Verify(tampered, "secret", signature, testOptions),
			"tampering with %q must break verification", key)
	}
}

func TestVerify_WrongPassphraseFails(t *testing.T) {
	params := map[string]string{"m_payment_id": "PAY-1-x"}
	signature := Sign(params, "secret", testOptions)

	assert.False(t, Verify(params, "other", signature, testOptions))
}

func TestVerify_EmptySignatureFails(t *testing.T) {
	params := map[string]string{"m_payment_id": "PAY-1-x"}

	assert.False(t, Verify(params, "secret", "", testOptions))
}
