package utils

import (
	"net/http"
	"time"
)

type HTTPClientConfig struct {
	KATimeout time.Duration
	UserAgent string
}

// HTTPClient sends plain GET requests. It sets no overall timeout, so a
// stalled server blocks the caller until the connection drops.
type HTTPClient struct {
	client *http.Client
	config HTTPClientConfig
}

func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	if cfg.KATimeout == 0 {
		cfg.KATimeout = 90 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = ToolUserAgent
	}
	transport := &http.Transport{
		IdleConnTimeout: cfg.KATimeout,
		// bytes on disk must match the body as sent
		DisableCompression: true,
	}
	return &HTTPClient{
		client: &http.Client{Transport: transport},
		config: cfg,
	}
}

func (c *HTTPClient) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", c.config.UserAgent)
	return c.client.Do(req)
}
