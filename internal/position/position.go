// Package position contains the live-position adapters: ADS-B style feeds
// for flights and AIS sources for vessels. Position data is an enhancement;
// every adapter reports a clean miss with domain.ErrNoData and the resolver
// swallows anything worse.
package position

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

func newClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// getJSON fetches and decodes into out, which may be a *map[string]any, a
// *[]any, or a typed struct depending on what the feed returns.
func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
