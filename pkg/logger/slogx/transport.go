package slogx

import (
	"log/slog"
	"net/http"
	"time"
)

// Transport logs every outgoing request at debug level and failures at warn.
type Transport struct {
	Base   http.RoundTripper
	Logger *Logger
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	logger := t.Logger
	if logger == nil {
		logger = Default()
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	ctx := req.Context()
	method := slog.String("method", req.Method)
	path := slog.String("path", req.URL.Path)

	resp, err := base.RoundTrip(req)

	durAttr := slog.Duration("duration", time.Since(start))
	if err != nil {
		logger.Warn(ctx, "backend request failed", method, path, durAttr, Err(err))
		return nil, err
	}

	logger.Debug(ctx, "backend request done", method, path, durAttr, slog.Int("status", resp.StatusCode))

	return resp, nil
}
