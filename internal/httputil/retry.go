// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for the content synthesis boundary.
package httputil

import (
	"bytes"
	"io"
	"math"
	"net/http"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 10 * time.Second

const defaultMaxRetries = 5

// NewRetryClient returns an *http.Client that retries HTTP 429 (Too Many
// Requests) responses with exponential backoff. The delay starts at
// RetryBaseDelay and doubles each attempt. When maxRetries is 0 the
// default (5) is used.
func NewRetryClient(maxRetries int) *http.Client {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &http.Client{
		Transport: &retryTransport{base: http.DefaultTransport, maxRetries: maxRetries},
	}
}

// retryTransport retries rate-limited requests. The request body is
// buffered once so each attempt can replay it.
type retryTransport struct {
	base       http.RoundTripper
	maxRetries int
}

func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		var err error
		body, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
	}

	for attempt := 0; ; attempt++ {
		attemptReq := req.Clone(req.Context())
		if body != nil {
			attemptReq.Body = io.NopCloser(bytes.NewReader(body))
		}

		resp, err := t.base.RoundTrip(attemptReq)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}

		// Exhausted retries, return the 429 response as-is.
		if attempt >= t.maxRetries {
			return resp, nil
		}

		// Drain and close the body before retrying.
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(backoff):
		}
	}
}
