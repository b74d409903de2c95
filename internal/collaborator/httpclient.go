package collaborator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/fulfillment-service/internal/metrics"
)

// loggingRoundTripper logs every outbound collaborator request.
type loggingRoundTripper struct {
	proxied http.RoundTripper
}

// RoundTrip executes the request and logs method, URL, status and duration.
func (lrt *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := lrt.proxied.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		log.Error().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Dur("duration", duration).
			Err(err).
			Msg("Collaborator request failed")
		return nil, err
	}

	log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Msg("Collaborator request completed")

	return resp, nil
}

// NewHTTPClient returns an http.Client with request logging, suitable for
// the HTTP collaborator adapters.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &loggingRoundTripper{proxied: http.DefaultTransport},
		Timeout:   timeout,
	}
}

// httpAdapter holds what every HTTP collaborator adapter needs: a logical
// name for metrics, a base URL and a shared client.
type httpAdapter struct {
	name    string
	baseURL string
	client  *http.Client
}

// postJSON sends payload to baseURL+path and treats any non-2xx status as an
// error. Response bodies are drained so connections can be reused. Every
// call is counted under the adapter's name.
func (a *httpAdapter) postJSON(ctx context.Context, path string, payload interface{}) error {
	err := a.doPostJSON(ctx, path, payload)
	if err != nil {
		metrics.RecordCollaboratorCall(a.name, "error")
		return err
	}
	metrics.RecordCollaboratorCall(a.name, "success")
	return nil
}

func (a *httpAdapter) doPostJSON(ctx context.Context, path string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request for %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}

	return nil
}
