package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"AdminRelay/pkg/correlation"
)

var (
	ErrInvalidBody = errors.New("request body is not JSON")
	ErrForward     = errors.New("forward to backend failed")
	ErrBadReply    = errors.New("backend reply is not JSON")
)

// maxBodyBytes caps both the inbound request and the backend reply.
const maxBodyBytes = 4 << 20

// Reply is the backend's answer, relayed as is.
type Reply struct {
	Status int
	Body   json.RawMessage
}

// Forwarder posts JSON bodies to a fixed backend and returns the reply.
type Forwarder struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

func NewForwarder(baseURL string, timeout time.Duration, httpClient *http.Client) *Forwarder {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Forwarder{baseURL: baseURL, timeout: timeout, httpClient: httpClient}
}

// Forward sends body unchanged to baseURL+path. Any non-JSON input or reply,
// transport failure or timeout is an error; the reply status itself never is.
func (f *Forwarder) Forward(ctx context.Context, method, path string, body []byte) (Reply, error) {
	if !json.Valid(body) {
		return Reply{}, ErrInvalidBody
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, f.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return Reply{}, fmt.Errorf("%w: create request: %w", ErrForward, err)
	}
	req.Header.Set("Content-Type", "application/json")
	correlation.Inject(req)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return Reply{}, fmt.Errorf("%w: %w", ErrForward, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Reply{}, fmt.Errorf("%w: read reply: %w", ErrForward, err)
	}
	if !json.Valid(raw) {
		return Reply{}, fmt.Errorf("%w: status %d", ErrBadReply, resp.StatusCode)
	}

	return Reply{Status: resp.StatusCode, Body: raw}, nil
}
