// Package mailcheck wraps the mails.so address-validation API.
package mailcheck

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const requestTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type validateResponse struct {
	Data struct {
		Result string `json:"result"`
	} `json:"data"`
}

// Check asks the validation API whether the address can receive mail.
// Only an explicit "deliverable" verdict counts; any other verdict or
// payload shape is a negative answer. Transport failures, timeouts and
// non-2xx statuses are returned as errors so callers can distinguish a
// rejected address from a broken check.
func (c *Client) Check(ctx context.Context, email string) (bool, error) {
	endpoint := fmt.Sprintf("%s/v1/validate?email=%s", c.baseURL, url.QueryEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("x-mails-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("mail validation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false, fmt.Errorf("mail validation returned status %d", resp.StatusCode)
	}

	var body validateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("mail validation response unreadable: %w", err)
	}

	return body.Data.Result == "deliverable", nil
}
