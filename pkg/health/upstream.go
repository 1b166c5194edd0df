package health

import (
	"context"
	"fmt"
	"net/http"
)

// UpstreamChecker reports the backend API as up when it answers an HTTP
// request at all. Any status code counts: the probe checks reachability, not
// the backend's own health.
type UpstreamChecker struct {
	url    string
	client *http.Client
}

func NewUpstreamChecker(baseURL string, client *http.Client) *UpstreamChecker {
	if client == nil {
		client = http.DefaultClient
	}
	return &UpstreamChecker{url: baseURL, client: client}
}

func (c *UpstreamChecker) Name() string {
	return "upstream"
}

func (c *UpstreamChecker) Check(ctx context.Context) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.url, nil)
	if err != nil {
		return Result{Status: StatusDown, Message: err.Error()}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{Status: StatusDown, Message: fmt.Sprintf("unreachable: %v", err)}
	}
	_ = resp.Body.Close()

	return Result{Status: StatusUp}
}
