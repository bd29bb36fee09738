// Package upstream holds the typed HTTP clients for the two downstream
// microservices and the error normalization applied at that boundary.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/genosentinel/auth-gateway/internal/api/metrics"
)

const defaultTimeout = 15 * time.Second

// maxErrorBody bounds how much of a downstream error body is read.
const maxErrorBody = 64 << 10

// client is the JSON-over-HTTP transport shared by both backend clients.
type client struct {
	name    string
	baseURL string
	http    *http.Client
	extract ErrorExtractor
	log     zerolog.Logger
}

func newClient(name, baseURL string, timeout time.Duration, extract ErrorExtractor, log zerolog.Logger) *client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &client{
		name:    name,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		extract: extract,
		log:     log,
	}
}

// do issues one request and decodes a success response into out (when out is
// non-nil). Failures come back as *Error carrying the status and message the
// gateway is allowed to surface.
func (c *client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", c.name, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", c.name, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		// Host unreachable, timeout, connection reset. The cause is
		// logged; the caller sees a fixed 502.
		c.log.Error().Err(err).
			Str("backend", c.name).
			Str("method", method).
			Str("path", path).
			Msg("upstream request failed")
		metrics.UpstreamRequestsTotal.WithLabelValues(c.name, method, "error").Inc()
		return &Error{Status: http.StatusBadGateway, Message: "upstream unreachable"}
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestDuration.WithLabelValues(c.name).Observe(time.Since(start).Seconds())
	metrics.UpstreamRequestsTotal.WithLabelValues(c.name, method, statusClass(resp.StatusCode)).Inc()

	if resp.StatusCode >= http.StatusInternalServerError {
		raw := c.readErrorBody(resp.Body)
		c.log.Error().
			Str("backend", c.name).
			Int("status", resp.StatusCode).
			Str("path", path).
			Str("body", string(raw)).
			Msg("upstream 5xx")
		return &Error{Status: resp.StatusCode, Message: c.name + " service error"}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		raw := c.readErrorBody(resp.Body)
		msg := c.extract.Message(raw)
		c.log.Warn().
			Str("backend", c.name).
			Int("status", resp.StatusCode).
			Str("path", path).
			Str("message", msg).
			Msg("upstream 4xx")
		return &Error{Status: resp.StatusCode, Message: msg}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", c.name, err)
	}
	return nil
}

func (c *client) readErrorBody(r io.Reader) []byte {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		c.log.Warn().Err(err).Str("backend", c.name).Msg("could not read error response body")
		return nil
	}
	return raw
}

func statusClass(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
