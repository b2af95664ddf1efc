package lcdapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jschwab/lcdshot/internal/logger"
)

const maxLoggedBody = 10000

// LoggingTransport wraps an http.RoundTripper and logs every exchange
// with a short per-request id so interleaved renders can be told apart
// in the session log.
type LoggingTransport struct {
	Transport http.RoundTripper
}

func NewLoggingTransport(transport http.RoundTripper) *LoggingTransport {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &LoggingTransport{
		Transport: transport,
	}
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := uuid.NewString()[:8]
	start := time.Now()

	t.logRequest(id, req)

	resp, err := t.Transport.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		logger.LogError("HTTP_REQUEST", fmt.Sprintf("%s %s %s", id, req.Method, req.URL.String()), err)
		return nil, err
	}

	logger.LogHTTP(id, req.Method, req.URL.Path, resp.StatusCode, elapsed)
	return resp, nil
}

func (t *LoggingTransport) logRequest(id string, req *http.Request) {
	if req.Body == nil || req.ContentLength <= 0 {
		logger.Log("http %s: %s %s", id, req.Method, req.URL.Path)
		return
	}
	if req.ContentLength > maxLoggedBody {
		logger.Log("http %s: %s %s (%d bytes, body not logged)", id, req.Method, req.URL.Path, req.ContentLength)
		return
	}

	bodyBytes, err := io.ReadAll(req.Body)
	if err != nil {
		logger.Log("http %s: %s %s (body unreadable: %v)", id, req.Method, req.URL.Path, err)
		return
	}
	// Restore the body for the actual request.
	req.Body = io.NopCloser(bytes.NewReader(bodyBytes))

	logger.Log("http %s: %s %s %s", id, req.Method, req.URL.Path, redactToken(bodyBytes))
}

// redactToken masks the token field so credentials never land in the
// log file. Non-JSON bodies are summarized by size.
func redactToken(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Sprintf("(%d bytes)", len(body))
	}
	if _, ok := payload["token"]; ok {
		payload["token"] = "[REDACTED]"
	}
	redacted, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("(%d bytes)", len(body))
	}
	return string(redacted)
}
