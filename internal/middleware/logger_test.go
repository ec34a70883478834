package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/salespulse/internal/logger"
)

func TestToString(t *testing.T) {
	if s := toString(nil); s != "" {
		t.Fatalf("nil -> %q, want empty", s)
	}
	if s := toString("abc"); s != "abc" {
		t.Fatalf("string -> %q, want 'abc'", s)
	}
	if s := toString(123); s != "" {
		t.Fatalf("non-string -> %q, want empty", s)
	}
}

// lastLine decodes the last JSON log line written to buf.
func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var out map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &out); err != nil {
		t.Fatalf("invalid log line %q: %v", lines[len(lines)-1], err)
	}
	return out
}

func TestRequestLogger_Fields(t *testing.T) {
	cases := []struct {
		name      string
		status    int
		withError bool
		wantLevel string
	}{
		{name: "ok", status: http.StatusOK, wantLevel: "info"},
		{name: "client error", status: http.StatusBadRequest, withError: true, wantLevel: "info"},
		{name: "server error", status: http.StatusBadGateway, withError: true, wantLevel: "error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			var buf bytes.Buffer
			logger.InitWriter(&buf)
			t.Cleanup(logger.Init)

			router := gin.New()
			router.Use(RequestID(), RequestLogger())
			router.GET("/api/v1/dashboard", func(c *gin.Context) {
				if tc.withError {
					_ = c.Error(assertErr{})
				}
				c.Status(tc.status)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/dashboard?region=Sul", nil))

			line := lastLine(t, &buf)
			if line["level"] != tc.wantLevel {
				t.Fatalf("level=%v, want %s", line["level"], tc.wantLevel)
			}
			if line["component"] != "http" || line["service"] != logger.ServiceName {
				t.Fatalf("missing tags: %v", line)
			}
			if line["request_id"] != w.Header().Get("X-Request-ID") {
				t.Fatalf("request_id=%v, header=%s", line["request_id"], w.Header().Get("X-Request-ID"))
			}
			if line["path"] != "/api/v1/dashboard" || line["method"] != "GET" || line["status"] != float64(tc.status) {
				t.Fatalf("unexpected request fields: %v", line)
			}
			wantErrors := 0.0
			if tc.withError {
				wantErrors = 1
			}
			if line["errors"] != wantErrors {
				t.Fatalf("errors=%v, want %v", line["errors"], wantErrors)
			}
		})
	}
}

func TestRequestLogger_ClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger.InitWriter(&buf)
	t.Cleanup(logger.Init)

	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "203.0.113.7:4242"
	router.ServeHTTP(httptest.NewRecorder(), req)

	if ip := lastLine(t, &buf)["client_ip"]; ip != "203.0.113.7" {
		t.Fatalf("client_ip=%v", ip)
	}
}
