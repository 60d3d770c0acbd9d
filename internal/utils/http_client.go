package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the trace identifier of every outbound request.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Every request issued through the client carries an X-Trace-ID header:
// the trace ID stored in the request context (see [WithTraceID]) or a
// freshly generated one.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New()
	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(TraceIDHeader) != "" {
			return nil
		}
		traceID, ok := GetTraceIDFromContext(r.Context())
		if !ok {
			traceID = NewTraceID()
		}
		r.SetHeader(TraceIDHeader, traceID)
		return nil
	})

	return &HTTPClient{Client: client}
}

// Configure sets base URL and per-request timeout in one call.
func (c *HTTPClient) Configure(baseURL string, timeout time.Duration) *HTTPClient {
	c.SetBaseURL(baseURL)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return c
}
