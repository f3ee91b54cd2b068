// Package netx holds the HTTP plumbing shared by the remote gateways:
// timeout-bound clients, JSON request construction, and a single place where
// transport failures are classified.
package netx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrUnreachable marks connectivity failures and timeouts on outbound calls.
// Callers match it with errors.Is and decide their own degrade policy.
var ErrUnreachable = errors.New("endpoint unreachable")

// NewClient returns an HTTP client whose total per-request time is capped by
// timeout. No retries, no redirect tweaks.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// NewJSONRequest builds a request carrying an optional JSON body and JSON
// accept headers.
func NewJSONRequest(ctx context.Context, method, url string, body any) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		r = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// Do executes req and returns the response status and raw body. Any transport
// failure, including a timeout, comes back wrapped in ErrUnreachable; an HTTP
// error status is not an error here, callers interpret the code.
func Do(client *http.Client, req *http.Request) (int, []byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	return resp.StatusCode, body, nil
}
