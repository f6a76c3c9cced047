package server_test

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jroosing/blockproxy/internal/config"
	"github.com/jroosing/blockproxy/internal/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Defaults()
	cfg.Gateway.Port = 0
	cfg.Gateway.AssetDir = t.TempDir()
	cfg.Ops.Port = 0
	return cfg
}

// runUntilReady starts the runner and returns the bound addresses, a stop
// function and the channel carrying the run result.
func runUntilReady(t *testing.T, cfg *config.Config) (server.Addrs, context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	readyCh := make(chan server.Addrs, 1)
	r := server.NewRunner(nil)
	r.OnReady(func(a server.Addrs) { readyCh <- a })

	done := make(chan error, 1)
	go func() { done <- r.RunWithContext(ctx, cfg) }()

	select {
	case a := <-readyCh:
		return a, cancel, done
	case err := <-done:
		cancel()
		t.Fatalf("runner exited early: %v", err)
	case <-time.After(5 * time.Second):
		cancel()
		t.Fatal("runner did not become ready")
	}
	return server.Addrs{}, cancel, done
}

func httpDo(t *testing.T, method, url, body string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestRunner_ServesAndStops(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Gateway.AssetDir, "index.html"), []byte("<html>"), 0o644))

	addrs, stop, done := runUntilReady(t, cfg)
	assert.Empty(t, addrs.Ops)

	code, body := httpDo(t, http.MethodGet, "http://"+addrs.Gateway+"/api/blocking", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"state":"Enabled"}`, body)

	code, body = httpDo(t, http.MethodGet, "http://"+addrs.Gateway+"/", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "<html>", body)

	stop()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(server.ShutdownTimeout + time.Second):
		t.Fatal("runner did not stop")
	}
}

func TestRunner_OpsListener(t *testing.T) {
	cfg := testConfig(t)
	cfg.Ops.Enabled = true

	addrs, stop, done := runUntilReady(t, cfg)
	defer func() { stop(); <-done }()

	require.NotEmpty(t, addrs.Ops)

	httpDo(t, http.MethodPost, "http://"+addrs.Gateway+"/api/blocking", `{"state":"Disabled"}`)

	code, body := httpDo(t, http.MethodGet, "http://"+addrs.Ops+"/metrics", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "blockproxy_blocking_enabled 0")
	assert.Contains(t, body, `blockproxy_blocking_changes_total{state="Disabled"} 1`)

	code, body = httpDo(t, http.MethodGet, "http://"+addrs.Ops+"/healthz", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestRunner_PersistsBlocking(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Path = filepath.Join(t.TempDir(), "state.db")

	addrs, stop, done := runUntilReady(t, cfg)
	code, _ := httpDo(t, http.MethodPost, "http://"+addrs.Gateway+"/api/blocking", `{"state":"Disabled"}`)
	require.Equal(t, http.StatusOK, code)
	stop()
	require.NoError(t, <-done)

	addrs, stop, done = runUntilReady(t, cfg)
	defer func() { stop(); <-done }()

	_, body := httpDo(t, http.MethodGet, "http://"+addrs.Gateway+"/api/blocking", "")
	assert.JSONEq(t, `{"state":"Disabled"}`, body)
}

func TestRunner_OpsHealthWithDatabase(t *testing.T) {
	cfg := testConfig(t)
	cfg.Ops.Enabled = true
	cfg.Database.Path = filepath.Join(t.TempDir(), "state.db")

	addrs, stop, done := runUntilReady(t, cfg)
	defer func() { stop(); <-done }()

	code, body := httpDo(t, http.MethodGet, "http://"+addrs.Ops+"/healthz", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestRunner_InitialState(t *testing.T) {
	cfg := testConfig(t)
	cfg.Blocking.InitialState = "Disabled"

	addrs, stop, done := runUntilReady(t, cfg)
	defer func() { stop(); <-done }()

	_, body := httpDo(t, http.MethodGet, "http://"+addrs.Gateway+"/api/blocking", "")
	assert.JSONEq(t, `{"state":"Disabled"}`, body)
}

func TestRunner_BadDatabasePath(t *testing.T) {
	cfg := testConfig(t)
	cfg.Database.Path = filepath.Join(t.TempDir(), "missing", "dir", "state.db")

	err := server.NewRunner(nil).RunWithContext(context.Background(), cfg)
	assert.Error(t, err)
}
