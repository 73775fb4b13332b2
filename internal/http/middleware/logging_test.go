package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing generated X-Request-ID")
	}
}

func TestRequestID_PropagatesIncoming(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-ID"); got != "fixed-id" {
		t.Fatalf("X-Request-ID = %q", got)
	}
}

func TestRecovery_PanicBecomesUniform500(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger(), Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	code, body := get(t, r, "/panic")
	if code != http.StatusInternalServerError {
		t.Fatalf("code = %d", code)
	}
	if body["status"] != "error" || body["message"] != "Server Internal Error" {
		t.Fatalf("body = %v", body)
	}
}

func TestLoggerFrom_FallbackNeverNil(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if LoggerFrom(c) == nil {
		t.Fatal("LoggerFrom returned nil")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("short: %q", got)
	}
	got := truncate("0123456789abcdef", 10)
	if len(got) <= 10 || got[:10] != "0123456789" {
		t.Fatalf("cut: %q", got)
	}
	if got := truncate("anything", 0); got != "anything" {
		t.Fatalf("disabled: %q", got)
	}
}
