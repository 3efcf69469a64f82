// Package stripe talks to Stripe's REST API directly. The portal only needs
// payment-intent creation, so a thin form-encoded client beats pulling in a
// full SDK.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"doctors-portal/internal/pkg/config"
)

const apiVersion = "2024-06-20"

type Client struct {
	secretKey  string
	baseURL    string
	currency   string
	httpClient *http.Client
}

func NewClient(cfg config.StripeConfig) *Client {
	return &Client{
		secretKey:  cfg.SecretKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		currency:   cfg.Currency,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// WithBaseURL overrides the Stripe API base URL (for testing).
func (c *Client) WithBaseURL(baseURL string) *Client {
	if baseURL != "" {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
	return c
}

// paymentIntent is the subset of Stripe's PaymentIntent object we need.
type paymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// CreateIntent creates a card payment intent for the amount in minor units
// and returns the client-side secret the frontend confirms the payment with.
func (c *Client) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", c.currency)
	form.Set("payment_method_types[]", "card")

	apiURL := c.baseURL + "/v1/payment_intents"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("stripe: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Stripe-Version", apiVersion)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("stripe: http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("stripe: api status %d: %s", resp.StatusCode, string(body))
	}

	var parsed paymentIntent
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("stripe: decode: %w", err)
	}
	if parsed.ClientSecret == "" {
		return "", fmt.Errorf("stripe: response missing client secret")
	}

	return parsed.ClientSecret, nil
}
