package github

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/douhashi/ghlabel/internal/logger"
)

// apiVersionTransport sets the X-GitHub-Api-Version header on every request.
type apiVersionTransport struct {
	base    http.RoundTripper
	version string
}

// RoundTrip implements http.RoundTripper.
func (t *apiVersionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.version != "" {
		req = req.Clone(req.Context())
		req.Header.Set("X-GitHub-Api-Version", t.version)
	}
	return t.base.RoundTrip(req)
}

// loggingRoundTripper logs HTTP requests and responses at debug level.
type loggingRoundTripper struct {
	base   http.RoundTripper
	logger logger.Logger
}

// RoundTrip executes the request and logs request/response details.
func (rt *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	rt.logRequest(req)

	resp, err := rt.base.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		rt.logger.Error("github_api_error",
			"method", req.Method,
			"url", req.URL.String(),
			"duration_ms", duration.Milliseconds(),
			"error", err.Error(),
		)
		return nil, err
	}

	rt.logResponse(resp, duration)

	return resp, nil
}

// logRequest logs the details of an outbound HTTP request.
func (rt *loggingRoundTripper) logRequest(req *http.Request) {
	fields := []interface{}{
		"method", req.Method,
		"url", req.URL.String(),
	}

	// The Authorization header is masked by the logger sanitizer.
	if auth := req.Header.Get("Authorization"); auth != "" {
		fields = append(fields, "authorization", auth)
	}
	if version := req.Header.Get("X-GitHub-Api-Version"); version != "" {
		fields = append(fields, "api_version", version)
	}

	rt.logger.Debug("github_api_request", fields...)
}

// logResponse logs the details of an HTTP response.
func (rt *loggingRoundTripper) logResponse(resp *http.Response, duration time.Duration) {
	fields := []interface{}{
		"status_code", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	}

	if remaining := resp.Header.Get("X-RateLimit-Remaining"); remaining != "" {
		fields = append(fields, "rate_limit_remaining", remaining)
	}

	if resp.Body != nil {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			rt.logger.Error("failed_to_read_response_body", "error", err.Error())
		} else {
			// Put the body back for the caller
			resp.Body = io.NopCloser(bytes.NewReader(bodyBytes))

			preview := string(bodyBytes)
			if len(preview) > 200 {
				preview = preview[:200] + "..."
			}
			fields = append(fields, "body_preview", preview)
		}
	}

	rt.logger.Debug("github_api_response", fields...)
}
