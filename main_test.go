package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRunServerStopsOnContextCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: gin.New()}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- runServer(ctx, srv) }()

	// Give the listener a moment to come up, then cancel as a signal would.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}
}

func TestRunServerReturnsListenError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// An address that cannot be bound surfaces as an error, not a hang.
	srv := &http.Server{Addr: "256.256.256.256:0", Handler: gin.New()}

	done := make(chan error, 1)
	go func() { done <- runServer(context.Background(), srv) }()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("expected listen error, got hang")
	}
}
