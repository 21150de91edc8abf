package payments

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"time"

	"caterclub-backend/models"
	"caterclub-backend/payfast"
	"caterclub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Handler struct {
	config  payfast.Config
	gateway PaymentRecordGateway
}

func NewHandler(config payfast.Config, gateway PaymentRecordGateway) *Handler {
	return &Handler{
		config:  config,
		gateway: gateway,
	}
}

// CreateCheckout starts a PayFast payment for one of the user's memberships
// @Summary Create a PayFast checkout
// @Description Create a pending payment for the membership and return the PayFast redirect URL
// @Tags payments
// @Accept json
// @Produce json
// @Param membershipId path string true "ID of the membership to pay for"
// @Security BearerAuth
// @Success 200 {object} map[string]string "redirectUrl: PayFast hosted page URL, paymentId: local payment id"
// @Failure 400 {object} map[string]string "error: Invalid membership ID"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Not your membership"
// @Failure 404 {object} map[string]string "error: Membership not found"
// @Failure 409 {object} map[string]string "error: Membership not payable"
// @Failure 500 {object} map[string]string "error: Server or gateway configuration error"
// @Router /payments/checkout/{membershipId} [post]
func (h *Handler) CreateCheckout(c *gin.Context) {
	membershipID := c.Param("membershipId")
	if _, err := uuid.Parse(membershipID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid membership ID"})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := h.config.Validate(); err != nil {
		utils.LogError(err, "PayFast credentials missing in CreateCheckout")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment gateway is not configured"})
		return
	}

	membership, err := h.gateway.MembershipByID(membershipID)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Membership not found in CreateCheckout")
		c.JSON(http.StatusNotFound, gin.H{"error": "Membership not found"})
		return
	}

	if membership.UserID != userID {
		utils.LogErrorWithUser(userID, nil, "Membership belongs to another user in CreateCheckout")
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to pay for this membership"})
		return
	}

	if membership.Status == models.MembershipActive {
		c.JSON(http.StatusConflict, gin.H{"error": "This membership is already active"})
		return
	}
	if membership.Status == models.MembershipCancelled {
		c.JSON(http.StatusConflict, gin.H{"error": "This membership has been cancelled"})
		return
	}

	plan, err := h.gateway.PlanByID(membership.PlanID)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Plan not found in CreateCheckout")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching the membership plan"})
		return
	}

	payer, err := h.gateway.UserByID(userID.(string))
	if err != nil {
		utils.LogErrorWithUser(userID, err, "User not found in CreateCheckout")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	payment := &models.Payment{
		UserID:        payer.ID,
		MembershipID:  membership.ID,
		AmountCents:   plan.PriceCents,
		Currency:      "ZAR",
		PaymentMethod: "payfast",
		Status:        models.PaymentPending,
		TransactionID: newTransactionID(),
	}
	if err := h.gateway.CreatePayment(payment); err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the payment record in CreateCheckout")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the payment"})
		return
	}

	request := payfast.PaymentRequest{
		TransactionID:   payment.TransactionID,
		Amount:          payfast.FormatAmount(plan.PriceCents),
		ItemName:        plan.Name,
		ItemDescription: plan.Description,
		FirstName:       payer.FirstName,
		LastName:        payer.LastName,
		Email:           payer.Email,
		CellNumber:      payer.Phone,
		CustomStr1:      membership.ID,
		CustomStr2:      payer.ID,
		CustomStr3:      payment.ID,
	}

	redirectURL, signature, err := h.config.BuildRedirectURL(request)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error building the redirect URL in CreateCheckout")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error building the payment request"})
		return
	}

	// The stored signature is an audit field; a failed write must not block
	// the checkout that was already created.
	if err := h.gateway.AttachSignature(payment.ID, signature); err != nil {
		utils.LogErrorWithUser(userID, err, "Error storing the request signature in CreateCheckout")
	}

	utils.LogSuccessWithUser(userID, "PayFast checkout created in CreateCheckout")
	c.JSON(http.StatusOK, gin.H{
		"redirectUrl": redirectURL,
		"paymentId":   payment.ID,
	})
}

// GetUserPayments lists the payments of the connected user
// @Summary List the user's payments
// @Description Return the payment history of the connected user
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Payment
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /payments [get]
func (h *Handler) GetUserPayments(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	paymentList, err := h.gateway.PaymentsByUser(userID.(string))
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error fetching payments in GetUserPayments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching payments"})
		return
	}

	c.JSON(http.StatusOK, paymentList)
}

const transactionAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// newTransactionID generates the correlation id embedded in the outgoing
// request and echoed back by the provider. The timestamp prefix keeps ids
// readable; the random suffix makes collisions negligible.
func newTransactionID() string {
	return fmt.Sprintf("PAY-%d-%s", time.Now().Unix(), randomSuffix(8))
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; uuid keeps the id
		// unique if it somehow does.
		return uuid.NewString()[:n]
	}
	for i := range b {
		b[i] = transactionAlphabet[int(b[i])%len(transactionAlphabet)]
	}
	return string(b)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
