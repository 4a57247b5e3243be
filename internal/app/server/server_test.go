package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"dataapi/internal/config"
	"dataapi/internal/domain/collection"
)

type stubRepo struct{}

func (stubRepo) Count(context.Context, collection.Schema) (int, error) { return 0, nil }
func (stubRepo) Scan(context.Context, collection.Schema, string) ([]collection.Record, error) {
	return nil, nil
}
func (stubRepo) Insert(context.Context, collection.Schema, collection.NewRecord) (int64, error) {
	return 1, nil
}
func (stubRepo) FindBy(context.Context, collection.Schema, string, string) (collection.Record, error) {
	return collection.Record{}, collection.ErrNotFound
}
func (stubRepo) Ping(context.Context) error { return nil }
func (stubRepo) Close() error               { return nil }

func TestServer_ServeAndShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := New(config.Server{ShutdownTimeout: time.Second}, stubRepo{}, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/v1/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Run_BadAddress(t *testing.T) {
	srv := New(config.Server{RunAddress: "256.0.0.1:bad"}, stubRepo{}, slog.Default())

	err := srv.Run(context.Background())
	assert.Error(t, err)
}
