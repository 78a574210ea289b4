package tarkov

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Transport sends one POST request and returns the raw status and body.
// Implementations must be safe for concurrent use.
type Transport interface {
	Post(ctx context.Context, url string, header http.Header, body []byte) (status int, payload []byte, err error)
}

// HTTPTransport is the net/http implementation of Transport
type HTTPTransport struct {
	httpClient *http.Client
}

// NewHTTPTransport creates a transport over the given HTTP client
func NewHTTPTransport(httpClient *http.Client) *HTTPTransport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPTransport{httpClient: httpClient}
}

// Post performs the request. Bodies of non-200 responses are still read and
// returned so the caller decides what to do with them.
func (t *HTTPTransport) Post(ctx context.Context, url string, header http.Header, body []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, payload, nil
}
