package payments

import (
	"time"

	"caterclub-backend/db"
	"caterclub-backend/models"

	"gorm.io/datatypes"
)

// PaymentRecordGateway is the slice of the relational store the payment core
// depends on. Handlers never touch db.DB directly so the notification
// pipeline can be exercised against a fake in tests.
type PaymentRecordGateway interface {
	UserByID(id string) (*models.User, error)
	MembershipByID(id string) (*models.Membership, error)
	PlanByID(id string) (*models.MembershipPlan, error)

	CreatePayment(payment *models.Payment) error
	AttachSignature(paymentID string, signature string) error
	PaymentByTransactionID(transactionID string) (*models.Payment, error)
	PaymentsByUser(userID string) ([]models.Payment, error)

	// UpdatePaymentStatus applies the status transition as a single
	// conditional write: it only succeeds while the record still holds the
	// expected current status, and reports whether a row was touched. Two
	// concurrent notification deliveries therefore cannot both win.
	UpdatePaymentStatus(transactionID string, from, to models.PaymentStatus, callback datatypes.JSONMap) (bool, error)
	// SaveCallbackData stores the raw notification payload for audit without
	// changing the payment status.
	SaveCallbackData(transactionID string, callback datatypes.JSONMap) error

	ActivateMembership(membershipID string, start, end time.Time) error
}

// NewGormGateway returns the production gateway backed by the global GORM
// connection.
func NewGormGateway() PaymentRecordGateway {
	return &gormGateway{}
}

type gormGateway struct{}

func (g *gormGateway) UserByID(id string) (*models.User, error) {
	var user models.User
	if err := db.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (g *gormGateway) MembershipByID(id string) (*models.Membership, error) {
	var membership models.Membership
	if err := db.DB.First(&membership, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &membership, nil
}

func (g *gormGateway) PlanByID(id string) (*models.MembershipPlan, error) {
	var plan models.MembershipPlan
	if err := db.DB.First(&plan, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (g *gormGateway) CreatePayment(payment *models.Payment) error {
	return db.DB.Create(payment).Error
}

func (g *gormGateway) AttachSignature(paymentID string, signature string) error {
	return db.DB.Model(&models.Payment{}).
		Where("id = ?", paymentID).
		Update("signature", signature).Error
}

func (g *gormGateway) PaymentByTransactionID(transactionID string) (*models.Payment, error) {
	var payment models.Payment
	if err := db.DB.First(&payment, "transaction_id = ?", transactionID).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func (g *gormGateway) PaymentsByUser(userID string) ([]models.Payment, error) {
	var paymentList []models.Payment
	err := db.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&paymentList).Error
	return paymentList, err
}

func (g *gormGateway) UpdatePaymentStatus(transactionID string, from, to models.PaymentStatus, callback datatypes.JSONMap) (bool, error) {
	result := db.DB.Model(&models.Payment{}).
		Where("transaction_id = ? AND status = ?", transactionID, from).
		Updates(map[string]interface{}{
			"status":        to,
			"callback_data": callback,
		})
	return result.RowsAffected > 0, result.Error
}

func (g *gormGateway) SaveCallbackData(transactionID string, callback datatypes.JSONMap) error {
	return db.DB.Model(&models.Payment{}).
		Where("transaction_id = ?", transactionID).
		Update("callback_data", callback).Error
}

func (g *gormGateway) ActivateMembership(membershipID string, start, end time.Time) error {
	return db.DB.Model(&models.Membership{}).
		Where("id = ?", membershipID).
		Updates(map[string]interface{}{
			"status":     models.MembershipActive,
			"start_date": start,
			"end_date":   end,
		}).Error
}
