package httpclient

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// NewRetryableClient builds a Client whose underlying transport retries
// failed requests with exponential backoff. The base client never retries
// on its own; a caller who owns a retry policy opts in by constructing the
// woocommerce client with this transport instead.
func NewRetryableClient(maxRetries int, timeout time.Duration) Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = maxRetries
	rc.HTTPClient.Timeout = timeout
	rc.Logger = nil

	return &DefaultClient{
		client: rc.StandardClient(),
	}
}

// NewClientFromHTTP wraps an existing *http.Client. Useful for callers who
// tune transports themselves (proxies, TLS, connection pools).
func NewClientFromHTTP(hc *http.Client) Client {
	return &DefaultClient{
		client: hc,
	}
}
