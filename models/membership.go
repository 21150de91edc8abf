package models

import (
	"time"
)

type MembershipStatus string

const (
	MembershipActive    MembershipStatus = "active"
	MembershipInactive  MembershipStatus = "inactive"
	MembershipCancelled MembershipStatus = "cancelled"
)

type Membership struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID    string           `json:"userId" gorm:"type:uuid;not null"`
	PlanID    string           `json:"planId" gorm:"type:uuid;not null"`
	Status    MembershipStatus `json:"status" gorm:"type:varchar(20);default:'inactive'"`
	StartDate *time.Time       `json:"startDate"`
	EndDate   *time.Time       `json:"endDate"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
