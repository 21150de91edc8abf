package payfast

import (
	"fmt"
	"net/url"
)

// PaymentRequest is the typed form of the fields PayFast's hosted checkout
// accepts. BuildParams flattens it to the provider's wire vocabulary; keeping
// the struct typed keeps call sites honest about which fields exist.
type PaymentRequest struct {
	TransactionID   string // m_payment_id, the local correlation id
	Amount          string // already formatted to two decimals
	ItemName        string
	ItemDescription string

	FirstName  string
	LastName   string
	Email      string
	CellNumber string

	// Opaque correlation slots echoed back in the notification.
	CustomStr1 string
	CustomStr2 string
	CustomStr3 string
	CustomStr4 string
	CustomStr5 string

	EmailConfirmation   bool
	ConfirmationAddress string
}

// FormatAmount renders a cent amount the way the provider requires: a plain
// decimal string with exactly two fraction digits.
func FormatAmount(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

// BuildParams maps the request onto the provider's field names, merging in the
// merchant identity and the application URLs. Empty optional fields stay empty
// and are dropped later by both the signer and the query serializer.
func (c Config) BuildParams(req PaymentRequest) map[string]string {
	params := map[string]string{
		"merchant_id":      c.MerchantID,
		"merchant_key":     c.MerchantKey,
		"return_url":       c.ReturnURL,
		"cancel_url":       c.CancelURL,
		"notify_url":       c.NotifyURL,
		"name_first":       req.FirstName,
		"name_last":        req.LastName,
		"email_address":    req.Email,
		"cell_number":      req.CellNumber,
		"m_payment_id":     req.TransactionID,
		"amount":           req.Amount,
		"item_name":        req.ItemName,
		"item_description": req.ItemDescription,
		"custom_str1":      req.CustomStr1,
		"custom_str2":      req.CustomStr2,
		"custom_str3":      req.CustomStr3,
		"custom_str4":      req.CustomStr4,
		"custom_str5":      req.CustomStr5,
	}
	if req.EmailConfirmation {
		params["email_confirmation"] = "1"
		params["confirmation_address"] = req.ConfirmationAddress
	}
	return params
}

// BuildRedirectURL signs the parameter set and serializes it as the hosted
// checkout URL. It fails before touching anything else when the merchant
// credentials are missing.
func (c Config) BuildRedirectURL(req PaymentRequest) (redirectURL string, signature string, err error) {
	if err := c.Validate(); err != nil {
		return "", "", err
	}

	params := c.BuildParams(req)
	signature = Sign(params, c.Passphrase, c.SignOptions())
	params["signature"] = signature

	query := url.Values{}
	for k, v := range params {
		if v == "" {
			continue
		}
		query.Set(k, v)
	}
	return c.ProcessURL() + "?" + query.Encode(), signature, nil
}
