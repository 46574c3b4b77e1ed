package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"healthbridge-api/internal/config"
)

// TwilioSender posts to the Twilio Messages REST endpoint.
type TwilioSender struct {
	AccountSID string
	AuthToken  string
	From       string
	// BaseURL is the Twilio API root. Tests point it at a local server.
	BaseURL string

	client *http.Client
}

func NewTwilioSender(cfg *config.Config) *TwilioSender {
	return &TwilioSender{
		AccountSID: cfg.TwilioAccountSID,
		AuthToken:  cfg.TwilioAuthToken,
		From:       cfg.TwilioPhoneNumber,
		BaseURL:    "https://api.twilio.com",
		client:     &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *TwilioSender) SendSMS(ctx context.Context, to, body string) (string, error) {
	form := url.Values{
		"To":   {to},
		"From": {s.From},
		"Body": {body},
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.BaseURL, s.AccountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(s.AccountSID, s.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("twilio request failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		SID     string `json:"sid"`
		Message string `json:"message"` // error description on failure
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("twilio response decode failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("twilio rejected message (status %d): %s", resp.StatusCode, result.Message)
	}
	return result.SID, nil
}

func (s *TwilioSender) httpClient() *http.Client {
	if s.client == nil {
		return http.DefaultClient
	}
	return s.client
}
