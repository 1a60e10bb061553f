package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/fiscal-metrics-api/internal/config"
	"github.com/vfg2006/fiscal-metrics-api/internal/domain"
	"github.com/vfg2006/fiscal-metrics-api/internal/scheduler"
	"github.com/vfg2006/fiscal-metrics-api/internal/usecases/authenticating"
	notifyingmocks "github.com/vfg2006/fiscal-metrics-api/internal/usecases/notifying/mocks"
	reportingmocks "github.com/vfg2006/fiscal-metrics-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/fiscal-metrics-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestServer_Handler(t *testing.T) {
	ctrl := gomock.NewController(t)
	reporter := reportingmocks.NewMockReporter(ctrl)
	notifier := notifyingmocks.NewMockNotifier(ctrl)

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0"},
		Cors:   config.Cors{AllowedOrigins: []string{"http://localhost:5173"}},
	}
	warmup := scheduler.NewMetricsWarmupService(cfg, map[string]scheduler.Warmer{"metrics": reporter})

	srv, err := New(cfg, reporter, notifier, authenticating.NewService(cfg), warmup)
	require.NoError(t, err)

	reporter.EXPECT().GetSellersMetrics(gomock.Any()).Return(&domain.SellersResponse{Data: []domain.SellersMonth{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/metrics/sellers", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))

	// sem autenticação, cron continua restrito a admin
	req = httptest.NewRequest(http.MethodPost, "/api/cron/all/run", nil)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	cfg := &config.Config{Server: config.Server{Host: "127.0.0.1", Port: "0", ShutdownTimeout: time.Second}}
	srv, err := New(cfg, nil, nil, authenticating.NewService(cfg), scheduler.NewMetricsWarmupService(cfg, nil))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- srv.Run(ctx) }()

	cancel()

	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run não retornou após o cancelamento do contexto")
	}
}

func TestServer_RunReturnsListenError(t *testing.T) {
	cfg := &config.Config{Server: config.Server{Host: "127.0.0.1", Port: "invalid"}}
	srv, err := New(cfg, nil, nil, authenticating.NewService(cfg), scheduler.NewMetricsWarmupService(cfg, nil))
	require.NoError(t, err)

	assert.Error(t, srv.Run(context.Background()))
}
