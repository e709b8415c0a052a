// Package providers holds the clients for the third-party travel data APIs.
package providers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"tripplanner/pkg/metrics"
)

// StatusError is returned for any non-2xx provider response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

// transport executes provider requests with retries and records metrics.
type transport struct {
	name        string
	client      *http.Client
	log         *zap.Logger
	maxAttempts int
	backoff     time.Duration
}

func newTransport(name string, client *http.Client, log *zap.Logger) *transport {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &transport{
		name:        name,
		client:      client,
		log:         log.Named(name),
		maxAttempts: 4,
		backoff:     200 * time.Millisecond,
	}
}

func (t *transport) do(req *http.Request) (*http.Response, error) {
	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &StatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}

// doWithRetry retries network errors and 429/5xx answers with exponential backoff.
// makeReq is called once per attempt because request bodies cannot be replayed.
func (t *transport) doWithRetry(
	ctx context.Context,
	op string,
	makeReq func() (*http.Request, error),
) (_ *http.Response, err error) {
	start := time.Now()
	defer func() {
		metrics.ObserveProvider(t.name, start, &err)
		fields := []zap.Field{zap.String("op", op), zap.Duration("dur", time.Since(start))}
		if err != nil {
			t.log.Warn("provider call failed", append(fields, zap.Error(err))...)
			return
		}
		t.log.Debug("provider call", fields...)
	}()

	backoff := t.backoff
	var lastErr error

	for attempt := 1; attempt <= t.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := t.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !retryable(err) || attempt == t.maxAttempts {
			return nil, lastErr
		}

		t.log.Debug("retrying provider call",
			zap.String("op", op), zap.Int("attempt", attempt), zap.Duration("backoff", backoff), zap.Error(err))

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return nil, lastErr
}

func retryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

func isJSON(resp *http.Response) bool {
	return strings.Contains(resp.Header.Get("Content-Type"), "json")
}
