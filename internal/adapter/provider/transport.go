package provider

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// loggingTransport logs every outbound provider request with latency and
// status. Request bodies are never logged; they carry the API key.
type loggingTransport struct {
	next http.RoundTripper
	log  zerolog.Logger
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.next.RoundTrip(req)
	latency := time.Since(start)

	if err != nil {
		t.log.Error().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Dur("latency", latency).
			Err(err).
			Msg("provider request failed")
		return nil, err
	}

	t.log.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("latency", latency).
		Msg("provider request")

	return resp, nil
}

// newHTTPClient builds the provider HTTP client with timeout and logging.
func newHTTPClient(timeout time.Duration, log zerolog.Logger) *http.Client {
	return &http.Client{
		Transport: &loggingTransport{next: http.DefaultTransport, log: log},
		Timeout:   timeout,
	}
}
