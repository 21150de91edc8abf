package models

import (
	"time"
)

type MembershipPlan struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null"`
	Description  string    `json:"description"`
	PriceCents   int64     `json:"priceCents" gorm:"not null"`
	DurationDays int       `json:"durationDays" gorm:"not null"`
	PictureURL   string    `json:"pictureUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type MembershipPlanCreate struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	PriceCents   int64  `json:"priceCents" binding:"required,gt=0"`
	DurationDays int    `json:"durationDays" binding:"required,gt=0"`
}
