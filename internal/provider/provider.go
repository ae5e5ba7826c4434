// Package provider contains the adapters for external tracking sources. Each
// adapter normalizes its provider's payload into domain.ProviderResult and
// reports misses with the sentinel errors the cascade understands.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// document is a loosely-typed JSON object. Every lookup tolerates absent keys
// at any level, since the upstream payload shapes drift without notice.
type document map[string]any

// str returns the first key holding a non-empty string, in precedence order.
func (d document) str(keys ...string) string {
	for _, k := range keys {
		if s, ok := d[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// num returns the first key holding a JSON number, in precedence order.
func (d document) num(keys ...string) (float64, bool) {
	for _, k := range keys {
		if f, ok := d[k].(float64); ok {
			return f, true
		}
	}
	return 0, false
}

func (d document) object(key string) document {
	if m, ok := d[key].(map[string]any); ok {
		return document(m)
	}
	return document{}
}

func (d document) array(key string) []any {
	if a, ok := d[key].([]any); ok {
		return a
	}
	return nil
}

// firstObject returns the first element of the named array when it is an
// object, or an empty document.
func (d document) firstObject(key string) document {
	a := d.array(key)
	if len(a) == 0 {
		return nil
	}
	if m, ok := a[0].(map[string]any); ok {
		return document(m)
	}
	return nil
}

func newClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// getJSON performs a GET and decodes the body into a document. Non-2xx
// responses are returned as errors alongside the status code so adapters can
// map 404 to their own sentinel.
func getJSON(ctx context.Context, client *http.Client, url string, header http.Header) (document, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var doc document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("decode payload: %w", err)
	}
	return doc, resp.StatusCode, nil
}
