// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"net/http"

	"github.com/pdiddy/biosample-miner/pkg/types"
)

// userAgentTransport stamps a User-Agent header on every outgoing request.
type userAgentTransport struct {
	agent string
	next  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.agent != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.agent)
	}
	return t.next.RoundTrip(req)
}

// NewClient builds an *http.Client from the shared HTTP settings. The
// returned client performs no automatic retry; failure recovery belongs to
// the caller.
func NewClient(cfg types.HTTPConfig) *http.Client {
	transport := http.RoundTripper(http.DefaultTransport)
	if cfg.UserAgent != "" {
		transport = &userAgentTransport{agent: cfg.UserAgent, next: transport}
	}
	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
	}
}
