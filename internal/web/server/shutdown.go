package server

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// GracefulShutdown stops the server on SIGINT/SIGTERM, running registered
// cleanup hooks before returning.
type GracefulShutdown struct {
	server       *Server
	hooks        []ShutdownHook
	timeout      time.Duration
	signals      []os.Signal
	logger       *zap.Logger
	mu           sync.Mutex
	shutdownOnce sync.Once
	done         chan struct{}
	err          error
}

// ShutdownHook is a cleanup function called during graceful shutdown.
type ShutdownHook func(ctx context.Context) error

// NewGracefulShutdown creates a shutdown handler for the server. A zero
// timeout defaults to 30 seconds.
func NewGracefulShutdown(server *Server, timeout time.Duration, logger *zap.Logger) *GracefulShutdown {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &GracefulShutdown{
		server:  server,
		timeout: timeout,
		signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// RegisterHook registers a cleanup hook. Hooks run in registration order
// after the HTTP server has drained.
func (gs *GracefulShutdown) RegisterHook(hook ShutdownHook) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.hooks = append(gs.hooks, hook)
}

// WaitForSignal blocks until a shutdown signal arrives, then shuts the
// server down.
func (gs *GracefulShutdown) WaitForSignal() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, gs.signals...)
	defer signal.Stop(sigChan)

	sig := <-sigChan
	gs.logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	return gs.Shutdown()
}

// Shutdown drains the server and runs the cleanup hooks. It is safe to call
// more than once; later calls return the first result.
func (gs *GracefulShutdown) Shutdown() error {
	gs.shutdownOnce.Do(func() {
		defer close(gs.done)

		ctx, cancel := context.WithTimeout(context.Background(), gs.timeout)
		defer cancel()

		gs.logger.Info("draining http server", zap.Duration("timeout", gs.timeout))
		if err := gs.server.Shutdown(ctx); err != nil {
			gs.logger.Error("server shutdown failed", zap.Error(err))
			gs.err = err
		}

		gs.mu.Lock()
		hooks := gs.hooks
		gs.mu.Unlock()

		for _, hook := range hooks {
			if err := hook(ctx); err != nil {
				gs.logger.Error("shutdown hook failed", zap.Error(err))
				if gs.err == nil {
					gs.err = err
				}
			}
		}
	})

	<-gs.done
	return gs.err
}
