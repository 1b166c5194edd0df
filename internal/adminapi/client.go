// Package adminapi is the typed client the admin dashboard uses to talk to the
// backend API. Every method makes exactly one call and never returns an
// error: failures are folded into the Result envelope.
package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"AdminRelay/internal/domain/admin"
	"AdminRelay/internal/domain/order"
	"AdminRelay/pkg/correlation"
	"AdminRelay/pkg/metrics"

	"github.com/google/go-querystring/query"
)

//go:generate mockgen -source client.go -destination mock_client.go -package adminapi

// Client is the admin API facade.
type Client interface {
	Login(ctx context.Context, creds admin.Credentials) Ack
	GetAllOrders(ctx context.Context, filter order.Filter) Result[[]order.Order]
	UpdateOrderStatus(ctx context.Context, orderID string, status order.Status, trackingID *string) Ack
	GetOrderStats(ctx context.Context) Result[order.Stats]
}

const (
	MsgLoginNetwork   = "Network error: Cannot connect to backend. This may be due to CORS policy or the backend being unavailable."
	MsgOrdersFailed   = "Failed to fetch orders"
	MsgUpdateFailed   = "Failed to update order status"
	MsgStatsFailed    = "Failed to fetch stats"
	loginFailedPrefix = "Login failed: "
)

// Outcome labels for logs and metrics.
const (
	OutcomeOK               = "ok"
	OutcomeUpstreamFailure  = "upstream_failure"
	OutcomeHTTPStatus       = "http_status"
	OutcomeTransportFailure = "transport_failure"
	OutcomeDecodeFailure    = "decode_failure"
)

// maxBodyBytes caps how much of a backend reply is read.
const maxBodyBytes = 4 << 20

// HTTPClient implements Client over HTTP.
type HTTPClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

// HTTPClientConfig holds configuration for HTTPClient.
type HTTPClientConfig struct {
	BaseURL string
	// Timeout bounds each call, including reading the reply.
	Timeout    time.Duration
	Logger     *slog.Logger
	HTTPClient *http.Client
}

func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	l := cfg.Logger
	if l == nil {
		l = slog.Default()
	}

	return &HTTPClient{
		baseURL:    cfg.BaseURL,
		timeout:    cfg.Timeout,
		httpClient: hc,
		logger:     l.With(slog.String("component", "adminapi")),
	}
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// Login distinguishes an unreachable backend from rejected credentials: only
// the former yields MsgLoginNetwork.
func (c *HTTPClient) Login(ctx context.Context, creds admin.Credentials) Ack {
	return send[struct{}](ctx, c, call{
		operation:   "login",
		method:      http.MethodPost,
		path:        "/admin/login",
		body:        creds,
		headers:     map[string]string{"X-Requested-With": "XMLHttpRequest"},
		onTransport: fixed(MsgLoginNetwork),
		onDecode: func(err error) string {
			return loginFailedPrefix + err.Error()
		},
	})
}

func (c *HTTPClient) GetAllOrders(ctx context.Context, filter order.Filter) Result[[]order.Order] {
	q, err := query.Values(filter)
	if err != nil {
		c.logger.ErrorContext(ctx, "encode orders filter", slog.String("operation", "get_all_orders"), slog.Any("error", err))
		return Fail[[]order.Order](MsgOrdersFailed)
	}

	return send[[]order.Order](ctx, c, call{
		operation:   "get_all_orders",
		method:      http.MethodGet,
		path:        "/admin/orders",
		query:       q,
		withData:    true,
		onTransport: fixed(MsgOrdersFailed),
		onDecode:    fixed(MsgOrdersFailed),
	})
}

// UpdateOrderStatus sends {status, trackingId}; trackingId is left out of the
// body when nil.
func (c *HTTPClient) UpdateOrderStatus(ctx context.Context, orderID string, status order.Status, trackingID *string) Ack {
	return send[struct{}](ctx, c, call{
		operation:   "update_order_status",
		method:      http.MethodPut,
		path:        "/admin/orders/" + url.PathEscape(orderID) + "/status",
		body:        order.StatusUpdate{Status: status, TrackingID: trackingID},
		onTransport: fixed(MsgUpdateFailed),
		onDecode:    fixed(MsgUpdateFailed),
	})
}

func (c *HTTPClient) GetOrderStats(ctx context.Context) Result[order.Stats] {
	return send[order.Stats](ctx, c, call{
		operation:   "get_order_stats",
		method:      http.MethodGet,
		path:        "/admin/stats",
		withData:    true,
		onTransport: fixed(MsgStatsFailed),
		onDecode:    fixed(MsgStatsFailed),
	})
}

type call struct {
	operation string
	method    string
	path      string
	query     url.Values
	body      any
	headers   map[string]string
	withData  bool

	onTransport func(error) string
	onDecode    func(error) string
}

func fixed(msg string) func(error) string {
	return func(error) string { return msg }
}

func send[T any](ctx context.Context, c *HTTPClient, cl call) Result[T] {
	start := time.Now()

	res, outcome, err := exchange[T](ctx, c, cl)

	elapsed := time.Since(start)
	metrics.ObserveUpstream(cl.operation, outcome, elapsed)

	attrs := []slog.Attr{
		slog.String("operation", cl.operation),
		slog.Duration("duration", elapsed),
		slog.String("outcome", outcome),
	}
	level := slog.LevelInfo
	switch outcome {
	case OutcomeUpstreamFailure, OutcomeHTTPStatus:
		level = slog.LevelWarn
		attrs = append(attrs, slog.String("message", res.Message))
	case OutcomeTransportFailure, OutcomeDecodeFailure:
		level = slog.LevelError
		attrs = append(attrs, slog.Any("error", err))
	}
	c.logger.LogAttrs(ctx, level, "upstream call", attrs...)

	return res
}

func exchange[T any](ctx context.Context, c *HTTPClient, cl call) (Result[T], string, error) {
	raw, err := c.do(ctx, cl)
	switch {
	case errors.Is(err, ErrUpstreamStatus):
		return Fail[T](err.Error()), OutcomeHTTPStatus, err
	case err != nil:
		return Fail[T](cl.onTransport(err)), OutcomeTransportFailure, err
	}

	res, err := decodeResult[T](raw, cl.withData)
	if err != nil {
		return Fail[T](cl.onDecode(err)), OutcomeDecodeFailure, err
	}
	if !res.Success {
		return res, OutcomeUpstreamFailure, nil
	}

	return res, OutcomeOK, nil
}

// do performs the request and returns the body of a 2xx reply.
func (c *HTTPClient) do(ctx context.Context, cl call) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if cl.body != nil {
		jsonBody, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(jsonBody)
	}

	target := c.baseURL + cl.path
	if len(cl.query) > 0 {
		target += "?" + cl.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	for k, v := range cl.headers {
		httpReq.Header.Set(k, v)
	}
	correlation.Inject(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(raw)}
	}

	return raw, nil
}
