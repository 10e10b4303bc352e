package http

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"soundem/config"
	httpmiddleware "soundem/internal/delivery/http/middleware"
	"soundem/internal/delivery/http/router"
	"soundem/internal/delivery/http/router/handler"
	deliverymiddleware "soundem/internal/delivery/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewServerAppliesConfiguredTimeouts(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	cfg.HTTP.Timeouts.ReadTimeout = 10 * time.Second
	cfg.HTTP.Timeouts.ReadHeaderTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.WriteTimeout = 15 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = time.Minute

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv, err := NewServer(HTTPParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    logger,
		RouterParams: router.RouterParams{
			UserHandler:    handler.NewUserHandler(nil, logger),
			CatalogHandler: handler.NewCatalogHandler(nil),
			SongHandler:    handler.NewSongHandler(nil, nil, logger),
			AuthMiddleware: httpmiddleware.NewAuthMiddleware(nil),
		},
		ErrorMiddleware: httpmiddleware.NewErrorMiddleware(logger),
		RequestID:       deliverymiddleware.NewRequestIDMiddleware(logger),
	})
	require.NoError(t, err)

	inner, ok := srv.(*httpServer)
	require.True(t, ok)

	assert.Equal(t, 10*time.Second, inner.server.Server.ReadTimeout)
	assert.Equal(t, 5*time.Second, inner.server.Server.ReadHeaderTimeout)
	assert.Equal(t, 15*time.Second, inner.server.Server.WriteTimeout)
	assert.Equal(t, time.Minute, inner.server.Server.IdleTimeout)
}
