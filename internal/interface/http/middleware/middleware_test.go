package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/babystore/pkg/errors"
	"github.com/xiebiao/babystore/pkg/metrics"
	"github.com/xiebiao/babystore/pkg/response"
)

func newEngine(log *slog.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger(log), Metrics())
	r.GET("/items/:id", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})
	r.GET("/boom", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})
	r.GET("/fail", func(c *gin.Context) {
		response.Error(c, apperrors.Wrap(errors.New("database is locked"), "写入失败"))
	})
	return r
}

func TestLogger_RequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newEngine(slog.New(slog.NewTextHandler(&buf, nil)))

	// 沿用客户端传入的请求ID
	req := httptest.NewRequest(http.MethodGet, "/items/1", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "req-123", w.Body.String())
	assert.Contains(t, buf.String(), "request_id=req-123")
	assert.Contains(t, buf.String(), "level=INFO")

	// 没有时生成uuid
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/2", nil))
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestLogger_ErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	r := newEngine(slog.New(slog.NewTextHandler(&buf, nil)))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestLogger_InternalErrorCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newEngine(slog.New(slog.NewTextHandler(&buf, nil)))

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	req.Header.Set("X-Request-ID", "req-500")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "msg=请求处理失败")
	assert.Contains(t, buf.String(), "database is locked")
	assert.Contains(t, buf.String(), "request_id=req-500")
	assert.NotContains(t, w.Body.String(), "database is locked")
}

func TestMetrics_RouteTemplateLabel(t *testing.T) {
	r := newEngine(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	labels := map[string]string{"method": http.MethodGet, "path": "/items/:id", "status": "200"}
	before := counterValue(t, labels)

	for _, path := range []string{"/items/1", "/items/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, before+2, counterValue(t, labels))
	assert.GreaterOrEqual(t, counterValue(t, map[string]string{
		"method": http.MethodGet, "path": "unmatched", "status": "404",
	}), float64(1))
}

func counterValue(t *testing.T, labels map[string]string) float64 {
	t.Helper()
	c, err := metrics.HTTPRequestsTotal.GetMetricWith(labels)
	require.NoError(t, err)
	return testutil.ToFloat64(c)
}
