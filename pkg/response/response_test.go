package response

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/babystore/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(handler gin.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)

	var resp Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestSuccess(t *testing.T) {
	w, resp := perform(func(c *gin.Context) { Success(c, gin.H{"id": 1}) })

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "success", resp.Message)
}

func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"参数错误", apperrors.ErrInvalidParams, http.StatusBadRequest, apperrors.ErrCodeInvalidParams},
		{"绑定失败", apperrors.ErrBindError, http.StatusBadRequest, apperrors.ErrCodeBindError},
		{"商品不存在", apperrors.ErrProductNotFound, http.StatusNotFound, apperrors.ErrCodeProductNotFound},
		{"库存不足", apperrors.ErrInsufficientStock, http.StatusConflict, apperrors.ErrCodeInsufficientStock},
		{"存储故障", apperrors.Wrap(errors.New("disk full"), "写入失败"), http.StatusInternalServerError, apperrors.ErrCodeDatabaseError},
		{"普通错误", errors.New("boom"), http.StatusInternalServerError, apperrors.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := perform(func(c *gin.Context) { Error(c, tt.err) })
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestError_HidesInternalError(t *testing.T) {
	w, resp := perform(func(c *gin.Context) {
		Error(c, apperrors.Wrap(errors.New("secret driver message"), "写入失败"))
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "写入失败", resp.Message)
	assert.NotContains(t, w.Body.String(), "secret driver message")
}

func TestError_Details(t *testing.T) {
	err := apperrors.ErrInsufficientStock.WithDetail("available", 2)
	_, resp := perform(func(c *gin.Context) { Error(c, err) })

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), data["available"])
}

func TestError_LogsThroughContextLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil)).With("request_id", "req-9")

	perform(func(c *gin.Context) {
		SetLogger(c, log)
		Error(c, apperrors.Wrap(errors.New("disk full"), "写入失败"))
	})
	assert.Contains(t, buf.String(), "request_id=req-9")
	assert.Contains(t, buf.String(), "disk full")

	// 4xx不记录错误日志
	buf.Reset()
	perform(func(c *gin.Context) {
		SetLogger(c, log)
		Error(c, apperrors.ErrProductNotFound)
	})
	assert.Empty(t, buf.String())
}
