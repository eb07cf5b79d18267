package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

// ResendClient handles email sending via the Resend API
type ResendClient struct {
	apiKey string
	from   string
}

var resendClient *ResendClient

// InitResend builds the shared client. Call once at startup.
func InitResend() error {
	client, err := NewResendClient()
	if err != nil {
		return err
	}
	resendClient = client
	return nil
}

// GetResendClient returns the shared client, or nil when email is disabled.
func GetResendClient() *ResendClient {
	return resendClient
}

// NewResendClient creates a new Resend client from the environment. Returns
// an error instead of exiting so receipts can be disabled in local dev.
func NewResendClient() (*ResendClient, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, errors.New("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "orders@cozycornergoods.shop"
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
	}, nil
}

// send posts an email payload to the Resend API.
func (r *ResendClient) send(payload map[string]interface{}) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("[resend] request failed: %v", err)
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[resend] API error %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend API returned %d", resp.StatusCode)
	}

	return nil
}
