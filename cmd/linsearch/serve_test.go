package main

import (
	"context"
	"io"
	"net"
	"net/http"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linsearch/internal/benchmark"
	"linsearch/internal/config"
)

func freePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return ln.Addr().(*net.TCPAddr).Port
}

func testServeConfig() config.Config {
	return config.Config{
		Host:              "127.0.0.1",
		ReadHeaderTimeout: time.Second,
		ShutdownTimeout:   time.Second,
		Limits:            benchmark.DefaultLimits(),
	}
}

var bannerPort = regexp.MustCompile(`Server started on http://localhost:(\d+)`)

func TestRunServe(t *testing.T) {
	cfg := testServeConfig()
	cfg.MetricsPort = freePort(t)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	out := &syncBuffer{}
	done := make(chan error, 1)
	go func() { done <- runServe(ctx, out, cfg) }()

	var port string
	require.Eventually(t, func() bool {
		m := bannerPort.FindStringSubmatch(out.String())
		if m == nil {
			return false
		}
		port = m[1]
		return true
	}, 5*time.Second, 20*time.Millisecond)
	assert.Contains(t, out.String(), "GET /api/batch?sizes=100,500,1000")

	resp, err := http.Get("http://127.0.0.1:" + port + "/api/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + strconv.Itoa(cfg.MetricsPort) + "/metrics")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)
		body = string(data)
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)
	assert.Contains(t, body, `http_requests_total{method="GET",route="/api/health",status="200"} 1`)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServe_BindFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := testServeConfig()
	cfg.Port = busy.Addr().(*net.TCPAddr).Port

	out := &syncBuffer{}
	err = runServe(context.Background(), out, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start server")
	assert.NotContains(t, out.String(), "Server started")
}
