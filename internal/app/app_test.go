package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sqliteConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Port:  "0",
		Log:   LogConfig{Mode: "test"},
		Store: StoreConfig{Driver: "sqlite", SQLitePath: ":memory:"},
		HTTP: HTTPConfig{
			ShutdownTimeout: 2 * time.Second,
		},
		Metrics: MetricsConfig{Enabled: true},
	}
}

func TestAppServesAndShutsDown(t *testing.T) {
	a, err := New(context.Background(), sqliteConfig(t))
	require.NoError(t, err)
	defer a.Close()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	base := "http://" + ln.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Serve(ctx, ln) }()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Post(base+"/api/person", "application/json", strings.NewReader(`{"firstName":"Jane","lastName":"Doe"}`))
	require.NoError(t, err)
	var created map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = client.Get(fmt.Sprintf("%s/api/person/%v", base, created["id"]))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Get(base + "/readyz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = client.Get(base + "/metrics")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	cfg := sqliteConfig(t)
	cfg.Store.Driver = "oracle"
	_, err := New(context.Background(), cfg)
	require.Error(t, err)
}
