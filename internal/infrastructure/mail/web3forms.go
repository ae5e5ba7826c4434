// Package mail relays contact submissions through the Web3Forms
// form-to-email service.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tigrisline/tracking-gateway/internal/core/domain"
	"github.com/tigrisline/tracking-gateway/internal/core/ports"
)

// Web3Forms posts submissions to the Web3Forms JSON endpoint. An empty
// access key disables the relay without reaching the network.
type Web3Forms struct {
	baseURL   string
	accessKey string
	client    *http.Client
}

func NewWeb3Forms(baseURL, accessKey string, timeout time.Duration) *Web3Forms {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Web3Forms{
		baseURL:   baseURL,
		accessKey: accessKey,
		client:    &http.Client{Timeout: timeout},
	}
}

type web3FormsPayload struct {
	AccessKey string `json:"access_key"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
}

// Send relays one submission. Non-2xx responses are reported as errors so
// the caller can record the failed hand-off.
func (w *Web3Forms) Send(ctx context.Context, input ports.ContactInput) error {
	if w.accessKey == "" {
		return domain.ErrMissingCredential
	}

	body, err := json.Marshal(web3FormsPayload{
		AccessKey: w.accessKey,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Message:   input.Message,
	})
	if err != nil {
		return fmt.Errorf("encode relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+"/submit", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("relay rejected submission: status %d", resp.StatusCode)
	}
	return nil
}
