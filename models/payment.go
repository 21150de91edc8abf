package models

import (
	"time"

	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentCancelled PaymentStatus = "cancelled"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment is one checkout attempt against the payment gateway. TransactionID is
// the locally generated correlation id echoed back by the provider's callback;
// it is the only key used to match a notification to a record.
type Payment struct {
	ID            string            `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID        string            `json:"userId" gorm:"type:uuid;not null"`
	MembershipID  string            `json:"membershipId" gorm:"type:uuid;not null"`
	AmountCents   int64             `json:"amountCents" gorm:"not null"`
	Currency      string            `json:"currency" gorm:"type:varchar(3);default:'ZAR'"`
	PaymentMethod string            `json:"paymentMethod" gorm:"type:varchar(20)"`
	Status        PaymentStatus     `json:"status" gorm:"type:varchar(20);default:'pending'"`
	TransactionID string            `json:"transactionId" gorm:"uniqueIndex;not null"`
	Signature     string            `json:"-"`
	CallbackData  datatypes.JSONMap `json:"-" gorm:"type:jsonb"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}
