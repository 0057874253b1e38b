// Package webhook verifies and routes identity provider webhook deliveries.
package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	svix "github.com/svix/svix-webhooks/go"
)

const (
	HeaderID        = "svix-id"
	HeaderTimestamp = "svix-timestamp"
	HeaderSignature = "svix-signature"
)

var (
	ErrConfiguration    = errors.New("webhook secret is not configured")
	ErrMissingHeaders   = errors.New("missing webhook headers")
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrMalformedPayload = errors.New("malformed webhook payload")
)

// Envelope is a verified delivery. Data is a slice of the signed body.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type signatureChecker interface {
	Verify(payload []byte, headers http.Header) error
}

type Verifier struct {
	checker   signatureChecker
	configErr error
}

// NewVerifier never fails. An empty or undecodable secret yields a Verifier
// whose every call returns ErrConfiguration, so the condition reaches the
// delivering provider as a 5xx.
func NewVerifier(secret string) *Verifier {
	if secret == "" {
		return &Verifier{configErr: ErrConfiguration}
	}
	wh, err := svix.NewWebhook(secret)
	if err != nil {
		return &Verifier{configErr: fmt.Errorf("%w: secret could not be decoded", ErrConfiguration)}
	}
	return &Verifier{checker: wh}
}

func (v *Verifier) Configured() bool {
	return v.configErr == nil
}

// Verify checks the signature over rawBody exactly as received and decodes
// the envelope from those same bytes.
func (v *Verifier) Verify(rawBody []byte, headers http.Header) (*Envelope, error) {
	if v.configErr != nil {
		return nil, v.configErr
	}

	if headers.Get(HeaderID) == "" || headers.Get(HeaderTimestamp) == "" || headers.Get(HeaderSignature) == "" {
		return nil, ErrMissingHeaders
	}

	signed := http.Header{}
	signed.Set(HeaderID, headers.Get(HeaderID))
	signed.Set(HeaderTimestamp, headers.Get(HeaderTimestamp))
	signed.Set(HeaderSignature, headers.Get(HeaderSignature))

	if err := v.checker.Verify(rawBody, signed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	var env Envelope
	if err := json.Unmarshal(rawBody, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("%w: event type is missing", ErrMalformedPayload)
	}
	return &env, nil
}
