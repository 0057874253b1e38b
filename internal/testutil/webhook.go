package testutil

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"testing"
	"time"

	svix "github.com/svix/svix-webhooks/go"
)

// TestWebhookSecret is a syntactically valid Svix signing secret
var TestWebhookSecret = "whsec_" + base64.StdEncoding.EncodeToString([]byte("intervue-test-signing-secret-32b"))

// SignWebhook returns the three delivery headers for body, signed at now
func SignWebhook(t *testing.T, secret, msgID string, body []byte) http.Header {
	t.Helper()
	return SignWebhookAt(t, secret, msgID, time.Now(), body)
}

// SignWebhookAt is SignWebhook with an explicit timestamp
func SignWebhookAt(t *testing.T, secret, msgID string, ts time.Time, body []byte) http.Header {
	t.Helper()

	wh, err := svix.NewWebhook(secret)
	if err != nil {
		t.Fatalf("failed to create signer: %v", err)
	}

	signature, err := wh.Sign(msgID, ts, body)
	if err != nil {
		t.Fatalf("failed to sign payload: %v", err)
	}

	h := http.Header{}
	h.Set("svix-id", msgID)
	h.Set("svix-timestamp", strconv.FormatInt(ts.Unix(), 10))
	h.Set("svix-signature", signature)
	return h
}

// UserCreatedPayload is a minimal user.created body as the provider sends it
const UserCreatedPayload = `{"type":"user.created","data":{"id":"ext_1","email_addresses":[{"email_address":"a@x.com"}],"first_name":"Ann","last_name":"Lee","image_url":"http://img"},"object":"event"}`
