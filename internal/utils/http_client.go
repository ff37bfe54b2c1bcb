package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultHTTPTimeout is applied by NewHTTPClient when timeout is not positive.
const DefaultHTTPTimeout = 15 * time.Second

// HTTPClient embeds *resty.Client so callers use the resty API directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent resty client with the given request
// timeout. No base URL is set: callers resolve it per request.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}

	return &HTTPClient{Client: resty.New().SetTimeout(timeout)}
}
