package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/readaloud-backend/internal/platform/ctxutil"
	"github.com/yungbote/readaloud-backend/internal/platform/logger"
)

func TestCORSAllowsAnyOriginByDefault(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS([]string{"*"}))
	r.OPTIONS("/translate", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodOptions, "/translate", nil)
	req.Header.Set("Origin", "http://reader.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected allow-origin header: got=%q want=%q", got, "*")
	}
}

func TestCORSRestrictedOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	origin := "http://localhost:5173"
	r := gin.New()
	r.Use(CORS([]string{" " + origin + " "}))
	r.GET("/voices", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/voices", nil)
	req.Header.Set("Origin", origin)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != origin {
		t.Fatalf("unexpected allow-origin header: got=%q want=%q", got, origin)
	}

	req = httptest.NewRequest(http.MethodGet, "/voices", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("unexpected status for foreign origin: got=%d want=%d", rec.Code, http.StatusForbidden)
	}
}

func TestAttachTraceContextKeepsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext(), RequestLogger(logger.Nop()))
	var seen *ctxutil.TraceData
	r.GET("/healthcheck", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	req.Header.Set(headerRequestID, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen == nil {
		t.Fatalf("trace data missing from request context")
	}
	if seen.RequestID != "req-123" {
		t.Fatalf("request id: got=%q want=%q", seen.RequestID, "req-123")
	}
	if seen.TraceID == "" || rec.Header().Get(headerTraceID) != seen.TraceID {
		t.Fatalf("trace id not echoed: header=%q ctx=%q", rec.Header().Get(headerTraceID), seen.TraceID)
	}
}
