package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/salespulse/internal/domain/dto"
	"github.com/guttosm/salespulse/internal/domain/models"
)

func TestNewRouter_WiringAndMiddlewares(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &mockDashboardService{loads: []models.LoadLog{{ID: "l1", Status: models.LoadSucceeded}}}
	r := NewRouter(NewHandler(svc), RouterOptions{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/loads", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected X-Request-ID header to be set")
	}

	var out dto.LoadsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(out.Loads) != 1 || out.Loads[0].ID != "l1" {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestNewRouter_Routes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&mockDashboardService{}), RouterOptions{})

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/v1/dashboard", http.StatusOK},
		{http.MethodGet, "/api/v1/records", http.StatusOK},
		{http.MethodGet, "/api/v1/records/export", http.StatusOK},
		{http.MethodDelete, "/api/v1/records/export/cache", http.StatusOK},
		{http.MethodGet, "/api/v1/filters", http.StatusOK},
		{http.MethodGet, "/api/v1/loads", http.StatusOK},
		{http.MethodGet, "/api/v1/aggregate", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d (body=%s)", tc.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestNewRouter_RateLimitApplied(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(NewHandler(&mockDashboardService{}), RouterOptions{RateLimitRPS: 1.0 / 3600, RateLimitBurst: 2})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/loads", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status sequence: %v", codes)
	}
}
