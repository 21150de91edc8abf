package payments

import (
	"errors"
	"net/http"
	"time"

	"caterclub-backend/models"
	"caterclub-backend/payfast"
	"caterclub-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

var (
	ErrInvalidSignature = errors.New("invalid notification signature")
	ErrUnknownPayment   = errors.New("notification references an unknown payment")
)

// HandleNotification processes PayFast's asynchronous ITN callback. PayFast
// occasionally delivers the same notification over GET instead of POST, so the
// routes bind this one handler to both methods. Delivery is at-least-once and
// unordered; the pipeline is idempotent on transaction id + target status and
// a redelivery is acknowledged without a second side effect.
// @Summary PayFast payment notification
// @Description Webhook called by PayFast with the outcome of a payment
// @Tags payments
// @Accept x-www-form-urlencoded
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 400 {string} string "bad request"
// @Failure 404 {string} string "not found"
// @Failure 500 {string} string "error"
// @Router /payments/notify [post]
func (h *Handler) HandleNotification(c *gin.Context) {
	received := parseNotification(c)

	err := h.processNotification(received)
	switch {
	case err == nil:
		c.String(http.StatusOK, payfast.AcknowledgementToken)
	case errors.Is(err, ErrInvalidSignature):
		// Generic body on purpose: the response must not help anyone probing
		// the signature scheme.
		c.String(http.StatusBadRequest, "bad request")
	case errors.Is(err, ErrUnknownPayment):
		c.String(http.StatusNotFound, "not found")
	default:
		// Store errors bubble up as a 500 so PayFast redelivers.
		c.String(http.StatusInternalServerError, "error")
	}
}

func (h *Handler) processNotification(received map[string]string) error {
	signature := received["signature"]
	params := make(map[string]string, len(received))
	for k, v := range received {
		if k == "signature" {
			continue
		}
		params[k] = v
	}

	// The signature is recomputed over the fields as received, never over
	// cached expected values, so a tampered field always breaks verification.
	if !payfast.Verify(params, h.config.Passphrase, signature, h.config.SignOptions()) {
		utils.LogError(nil, "ITN rejected: signature mismatch for m_payment_id "+params["m_payment_id"])
		return ErrInvalidSignature
	}

	transactionID := params["m_payment_id"]
	if transactionID == "" {
		utils.LogError(nil, "ITN rejected: missing m_payment_id")
		return ErrUnknownPayment
	}

	payment, err := h.gateway.PaymentByTransactionID(transactionID)
	if err != nil {
		if isNotFound(err) {
			// Never create a record reactively: a notification must match a
			// previously created intent.
			utils.LogError(nil, "ITN rejected: unknown transaction id "+transactionID)
			return ErrUnknownPayment
		}
		utils.LogError(err, "ITN lookup failed for transaction id "+transactionID)
		return err
	}

	callback := callbackPayload(received)
	newStatus, terminal := mapProviderStatus(params["payment_status"])

	if !terminal {
		// Unknown provider vocabulary: keep the record pending but store the
		// payload for audit.
		utils.LogInfo("ITN with unmapped payment_status '" + params["payment_status"] + "' for " + transactionID)
		if err := h.gateway.SaveCallbackData(transactionID, callback); err != nil {
			utils.LogError(err, "Error storing the callback payload for "+transactionID)
			return err
		}
		return nil
	}

	if payment.Status == newStatus {
		// Redelivery of a notification already applied.
		utils.LogInfo("ITN redelivery for " + transactionID + ", already " + string(newStatus))
		if newStatus == models.PaymentCompleted {
			h.activateMembership(payment.MembershipID)
		}
		return nil
	}

	applied, err := h.gateway.UpdatePaymentStatus(transactionID, models.PaymentPending, newStatus, callback)
	if err != nil {
		utils.LogError(err, "Error updating the payment status for "+transactionID)
		return err
	}
	if !applied {
		// Lost the conditional write: another delivery already moved the
		// record out of pending. Re-read to tell a duplicate from a conflict.
		current, err := h.gateway.PaymentByTransactionID(transactionID)
		if err == nil && current.Status != newStatus {
			utils.LogError(nil, "ITN conflict for "+transactionID+": already "+string(current.Status)+", received "+params["payment_status"])
		}
		return nil
	}

	utils.LogSuccess("Payment " + transactionID + " moved to " + string(newStatus))

	if newStatus == models.PaymentCompleted {
		h.activateMembership(payment.MembershipID)
	}
	return nil
}

// activateMembership turns the paid membership active. A failure here is
// logged and absorbed: the payment status update is the authoritative record
// and must not be rolled back, and the next redelivery retries the activation.
func (h *Handler) activateMembership(membershipID string) {
	membership, err := h.gateway.MembershipByID(membershipID)
	if err != nil {
		utils.LogError(err, "Membership "+membershipID+" not found after completed payment")
		return
	}
	if membership.Status == models.MembershipActive {
		return
	}

	plan, err := h.gateway.PlanByID(membership.PlanID)
	if err != nil {
		utils.LogError(err, "Plan not found while activating membership "+membershipID)
		return
	}

	start := time.Now()
	end := start.AddDate(0, 0, plan.DurationDays)
	if err := h.gateway.ActivateMembership(membership.ID, start, end); err != nil {
		utils.LogError(err, "Error activating membership "+membershipID+" after completed payment")
	}
}

// parseNotification flattens the form fields (or, for the GET variant, the
// query parameters) into the map the signature is verified over.
func parseNotification(c *gin.Context) map[string]string {
	_ = c.Request.ParseForm()
	params := make(map[string]string, len(c.Request.Form))
	for k, values := range c.Request.Form {
		if len(values) > 0 {
			params[k] = values[0]
		}
	}
	return params
}

func callbackPayload(received map[string]string) datatypes.JSONMap {
	payload := make(datatypes.JSONMap, len(received))
	for k, v := range received {
		payload[k] = v
	}
	return payload
}

func mapProviderStatus(status string) (models.PaymentStatus, bool) {
	switch status {
	case payfast.StatusComplete:
		return models.PaymentCompleted, true
	case payfast.StatusCancelled:
		return models.PaymentCancelled, true
	case payfast.StatusFailed:
		return models.PaymentFailed, true
	default:
		return models.PaymentPending, false
	}
}
