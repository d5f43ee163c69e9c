package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"latenight/internal/http-api/handler"

	"github.com/stretchr/testify/assert"
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		wantCode int
		wantBody string
	}{
		{name: "Up", wantCode: http.StatusOK, wantBody: `{"status":"ok"}`},
		{name: "Down", pingErr: errors.New("refused"), wantCode: http.StatusServiceUnavailable, wantBody: `{"error":"database unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter()
			pinger := handler.PingerFunc(func(ctx context.Context) error { return tt.pingErr })
			handler.NewHealthHandler(pinger, discardLogger()).RegisterRoutes(&r.RouterGroup)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/check-conn", nil))

			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestHealthHandler_Index(t *testing.T) {
	r := setupRouter()
	handler.NewHealthHandler(handler.PingerFunc(func(context.Context) error { return nil }), discardLogger()).
		RegisterRoutes(&r.RouterGroup)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>Code challenge</h1>", w.Body.String())
}
