// Package revalidate requests regeneration of statically rendered pages
// after a content mutation. Delivery is best-effort: failures are logged
// and never surface to the caller, and a deployment without a revalidation
// endpoint gets a no-op trigger.
package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/skinpoint/cms/pkg/observability"
)

// DefaultPaths are the statically rendered routes regenerated after every
// mutation.
var DefaultPaths = []string{"/", "/about"}

// Trigger asks the frontend to regenerate pages. Implementations must
// never block the caller or propagate failures.
type Trigger interface {
	Revalidate(paths ...string)
}

// Noop is the trigger used when no endpoint is configured.
type Noop struct{}

// Revalidate does nothing.
func (Noop) Revalidate(paths ...string) {}

// HTTPTrigger posts revalidation requests to the frontend endpoint.
type HTTPTrigger struct {
	endpoint string
	paths    []string
	client   *http.Client
	timeout  time.Duration
	logger   *observability.Logger
	metrics  *observability.Metrics

	wg sync.WaitGroup
}

// NewHTTPTrigger builds a trigger for the given endpoint. An empty
// endpoint yields a Noop. paths is the set regenerated when a caller
// names none; an empty slice means DefaultPaths.
func NewHTTPTrigger(endpoint string, paths []string, logger *observability.Logger, metrics *observability.Metrics) Trigger {
	if endpoint == "" {
		logger.Info("revalidation endpoint not configured, trigger disabled")
		return Noop{}
	}
	if len(paths) == 0 {
		paths = DefaultPaths
	}
	return &HTTPTrigger{
		endpoint: endpoint,
		paths:    paths,
		client:   &http.Client{Timeout: 10 * time.Second},
		timeout:  10 * time.Second,
		logger:   logger,
		metrics:  metrics,
	}
}

// Revalidate fires the request in the background and returns immediately.
func (t *HTTPTrigger) Revalidate(paths ...string) {
	if len(paths) == 0 {
		paths = t.paths
	}
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		if err := t.deliver(paths); err != nil {
			t.logger.WithError(err).Warn("revalidation request failed")
			t.metrics.RevalidationsTotal.WithLabelValues("error").Inc()
			return
		}
		t.metrics.RevalidationsTotal.WithLabelValues("ok").Inc()
	}()
}

// Wait blocks until in-flight deliveries finish. Used on shutdown and in
// tests.
func (t *HTTPTrigger) Wait() {
	t.wg.Wait()
}

func (t *HTTPTrigger) deliver(paths []string) error {
	body, err := json.Marshal(map[string]any{"paths": paths})
	if err != nil {
		return fmt.Errorf("marshal revalidation request: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build revalidation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("deliver revalidation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("revalidation endpoint returned %d", resp.StatusCode)
	}
	return nil
}
