package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newEngine(logger *zap.Logger, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestID(), Logger(logger, nil), ErrorHandler(logger), SecurityHeaders())
	engine.POST("/", handlers...)
	return engine
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	engine := newEngine(zap.New(core), func(*gin.Context) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error":"Internal server error"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
	if logs.FilterMessage("Panic recovered").Len() != 1 {
		t.Fatalf("expected one panic log, got %v", logs.All())
	}
}

func TestLoggerIncludesRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	engine := newEngine(zap.New(core), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	entries := logs.FilterMessage("HTTP Request").All()
	if len(entries) != 1 {
		t.Fatalf("expected one request log, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != "abc-123" || fields["status"] != int64(http.StatusNoContent) {
		t.Fatalf("log fields = %v", fields)
	}
}

func TestSecurityHeaders(t *testing.T) {
	engine := newEngine(zap.NewNop(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	for name, value := range securityHeaders {
		if got := rec.Header().Get(name); got != value {
			t.Errorf("%s = %q, want %q", name, got, value)
		}
	}
}

func TestValidateContentType(t *testing.T) {
	engine := newEngine(zap.NewNop(), ValidateContentType(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		contentType string
		want        int
	}{
		{contentType: "application/json", want: http.StatusOK},
		{contentType: "Application/JSON; charset=utf-8", want: http.StatusOK},
		{contentType: "multipart/form-data", want: http.StatusUnsupportedMediaType},
		{contentType: "", want: http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))
		if tt.contentType != "" {
			req.Header.Set("Content-Type", tt.contentType)
		}
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		if rec.Code != tt.want {
			t.Errorf("Content-Type %q: status = %d, want %d", tt.contentType, rec.Code, tt.want)
		}
	}
}
