package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/orggraph-backend/internal/platform/ctxutil"
)

func TestAttachTraceContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachTraceContext())
	var seen string
	r.GET("/x", func(c *gin.Context) {
		seen = ctxutil.RequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(headerRequestID, "req-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if seen != "req-123" {
		t.Fatalf("request id: want=req-123 got=%q", seen)
	}
	if got := rec.Header().Get(headerRequestID); got != "req-123" {
		t.Fatalf("echoed request id: got=%q", got)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if rec.Header().Get(headerRequestID) == "" || rec.Header().Get(headerTraceID) == "" {
		t.Fatalf("generated ids missing: %v", rec.Header())
	}
}
