package payfast

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// Provider values for the payment_status field of a notification.
const (
	StatusComplete  = "COMPLETE"
	StatusCancelled = "CANCELLED"
	StatusFailed    = "FAILED"
)

// SignOptions pins down the two encoding conventions PayFast's legacy signing
// leaves ambiguous. The defaults used by Config match the provider's PHP
// reference implementation (spaces as '+', passphrase percent-encoded).
type SignOptions struct {
	SpacesAsPlus  bool
	RawPassphrase bool
}

// Sign computes the MD5 signature over a flat parameter set. Empty values are
// dropped, keys are sorted by byte order, values are percent-encoded and the
// passphrase is appended last when set. MD5 is mandated by the provider's
// protocol; changing it breaks wire compatibility.
func Sign(params map[string]string, passphrase string, opts SignOptions) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(encodeValue(params[k], opts.SpacesAsPlus))
	}
	if passphrase != "" {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString("passphrase=")
		if opts.RawPassphrase {
			b.WriteString(passphrase)
		} else {
			b.WriteString(encodeValue(passphrase, opts.SpacesAsPlus))
		}
	}

	sum := md5.Sum([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// Verify recomputes the signature over the received parameters (the signature
// field itself must already be removed by the caller) and compares in constant
// time.
func Verify(params map[string]string, passphrase string, signature string, opts SignOptions) bool {
	if signature == "" {
		return false
	}
	expected := Sign(params, passphrase, opts)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(signature))) == 1
}

func encodeValue(v string, spacesAsPlus bool) string {
	e := url.QueryEscape(v)
	if !spacesAsPlus {
		e = strings.ReplaceAll(e, "+", "%20")
	}
	return e
}
