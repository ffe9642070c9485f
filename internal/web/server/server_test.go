package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Validation(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{Address: ":0"})
	assert.Error(t, err)
}

func TestServer_StartAndShutdown(t *testing.T) {
	config := DefaultConfig(testRouter())
	config.Address = "127.0.0.1:0"

	srv, err := New(config)
	require.NoError(t, err)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	// Wait for the listener to come up.
	var resp *http.Response
	require.Eventually(t, func() bool {
		resp, err = http.Get(fmt.Sprintf("http://%s/health", srv.Addr()))
		return err == nil
	}, 2*time.Second, 10*time.Millisecond)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	assert.ErrorIs(t, <-errCh, http.ErrServerClosed)
}

func TestGracefulShutdown_RunsHooks(t *testing.T) {
	config := DefaultConfig(testRouter())
	config.Address = "127.0.0.1:0"
	srv, err := New(config)
	require.NoError(t, err)
	go srv.Start() //nolint:errcheck // exits with ErrServerClosed

	gs := NewGracefulShutdown(srv, time.Second, zap.NewNop())

	var order []string
	gs.RegisterHook(func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	})
	gs.RegisterHook(func(ctx context.Context) error {
		order = append(order, "second")
		return errors.New("cleanup failed")
	})

	err = gs.Shutdown()
	assert.EqualError(t, err, "cleanup failed")
	assert.Equal(t, []string{"first", "second"}, order)

	// Second call returns the same result without re-running hooks.
	assert.EqualError(t, gs.Shutdown(), "cleanup failed")
	assert.Len(t, order, 2)
}
