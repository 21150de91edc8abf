package payfast

import (
	"errors"
	"os"
)

const (
	SandboxProcessURL    = "https://sandbox.payfast.co.za/eng/process"
	ProductionProcessURL = "https://www.payfast.co.za/eng/process"

	// AcknowledgementToken is the literal body PayFast expects from the notify
	// endpoint; anything else counts as a delivery failure and triggers a retry.
	AcknowledgementToken = "OK"
)

var ErrMissingCredentials = errors.New("payfast merchant_id and merchant_key must be configured")

// Config carries the merchant credentials and application URLs for the PayFast
// integration. It is built once at startup and passed explicitly to the
// payments handler; nothing in this package reads the environment at call time.
type Config struct {
	MerchantID  string
	MerchantKey string
	Passphrase  string
	Sandbox     bool

	ReturnURL string
	CancelURL string
	NotifyURL string

	// EncodeSpacesAsPlus selects the urlencode convention used when signing.
	// PayFast's own signing uses PHP urlencode, which emits '+' for spaces;
	// set to false to emit %20 instead.
	EncodeSpacesAsPlus bool
	// RawPassphrase appends the passphrase to the signing string without
	// percent-encoding it.
	RawPassphrase bool
}

// ConfigFromEnv reads the PAYFAST_* variables. Sandbox mode is the default so
// a missing PAYFAST_SANDBOX never points a dev environment at production.
func ConfigFromEnv() Config {
	return Config{
		MerchantID:         os.Getenv("PAYFAST_MERCHANT_ID"),
		MerchantKey:        os.Getenv("PAYFAST_MERCHANT_KEY"),
		Passphrase:         os.Getenv("PAYFAST_PASSPHRASE"),
		Sandbox:            os.Getenv("PAYFAST_SANDBOX") != "false",
		ReturnURL:          os.Getenv("PAYFAST_RETURN_URL"),
		CancelURL:          os.Getenv("PAYFAST_CANCEL_URL"),
		NotifyURL:          os.Getenv("PAYFAST_NOTIFY_URL"),
		EncodeSpacesAsPlus: true,
	}
}

func (c Config) Validate() error {
	if c.MerchantID == "" || c.MerchantKey == "" {
		return ErrMissingCredentials
	}
	return nil
}

func (c Config) ProcessURL() string {
	if c.Sandbox {
		return SandboxProcessURL
	}
	return ProductionProcessURL
}

// SignOptions returns the encoding conventions this configuration signs with.
func (c Config) SignOptions() SignOptions {
	return SignOptions{
		SpacesAsPlus:  c.EncodeSpacesAsPlus,
		RawPassphrase: c.RawPassphrase,
	}
}
