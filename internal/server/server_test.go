package server

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/eidsvold/fpl-motw/internal/config"
	"github.com/eidsvold/fpl-motw/internal/metrics"
	"github.com/eidsvold/fpl-motw/internal/testutil"
)

func testConfig() config.Config {
	return config.Config{
		Port:           "0",
		Provider:       "fixture",
		RequestTimeout: time.Second,
		Metrics:        config.MetricsConfig{Enabled: false},
	}
}

type stubHTTPServer struct {
	addr      string
	started   atomic.Bool
	stopped   atomic.Bool
	serveErr  error
	blockOnce chan struct{}
}

func newStubHTTPServer(addr string) *stubHTTPServer {
	return &stubHTTPServer{addr: addr, blockOnce: make(chan struct{})}
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.started.Store(true)
	if s.serveErr != nil {
		return s.serveErr
	}
	<-s.blockOnce
	return http.ErrServerClosed
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	s.stopped.Store(true)
	select {
	case <-s.blockOnce:
	default:
		close(s.blockOnce)
	}
	return nil
}

func (s *stubHTTPServer) Addr() string          { return s.addr }
func (s *stubHTTPServer) Handler() http.Handler { return nil }

func TestNewBuildsWorkingHandler(t *testing.T) {
	srv := New(testConfig(), nil)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/report/42", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(srv.Handler(), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRunShutsDownOnContextCancel(t *testing.T) {
	srv := New(testConfig(), nil)
	stub := newStubHTTPServer(":0")
	srv.httpServer = stub

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down after cancellation")
	}

	if !stub.stopped.Load() {
		t.Fatal("expected http server shutdown")
	}
}

func TestRunStopsWhenServerFails(t *testing.T) {
	srv := New(testConfig(), nil)
	stub := newStubHTTPServer(":0")
	stub.serveErr = errors.New("bind failed")
	srv.httpServer = stub

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("server failure did not trigger shutdown")
	}
}

func TestBuildMetricsFallsBackOnSetupFailure(t *testing.T) {
	original := metricsSetup
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("exporter unavailable")
	}
	defer func() { metricsSetup = original }()

	recorder, metricsSrv, shutdown := buildMetrics(testConfig(), nil)
	if recorder == nil {
		t.Fatal("expected a fallback recorder")
	}
	if metricsSrv != nil || shutdown != nil {
		t.Fatal("expected no metrics server after setup failure")
	}
}
