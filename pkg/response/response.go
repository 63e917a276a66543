package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/babystore/pkg/errors"
)

// Response 统一响应结构
// 设计说明：
// 1. Code是业务错误码（非HTTP状态码），方便客户端判断错误类型
// 2. Message是用户友好的提示信息
// 3. Data是业务数据，成功时返回，失败时为null
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success 成功响应（Code=0表示成功）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// LoggerKey gin.Context中保存请求级Logger的key
const LoggerKey = "logger"

// SetLogger 保存请求级Logger(由请求日志中间件调用，已带request_id)
func SetLogger(c *gin.Context, log *slog.Logger) {
	c.Set(LoggerKey, log)
}

// loggerFrom 取请求级Logger，未经过日志中间件时使用slog.Default()
func loggerFrom(c *gin.Context) *slog.Logger {
	if v, ok := c.Get(LoggerKey); ok {
		if log, ok := v.(*slog.Logger); ok && log != nil {
			return log
		}
	}
	return slog.Default()
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	id, err := ledger.RecordSale(ctx, in)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := HTTPStatus(appErr)

	// 内部错误只记录日志，不返回给客户端
	if status >= http.StatusInternalServerError {
		loggerFrom(c).ErrorContext(c.Request.Context(), "请求处理失败",
			"path", c.Request.URL.Path,
			"code", appErr.Code,
			"error", err,
		)
	}

	c.JSON(status, Response{
		Code:    appErr.Code,
		Message: appErr.Message,
		Data:    appErr.Details,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	Error(c, apperrors.New(code, message))
}

// HTTPStatus 业务错误码 → HTTP状态码
//   - 参数错误(409xx) → 400
//   - 资源不存在(404xx) → 404
//   - 业务规则冲突(如库存不足，400xx) → 409
//   - 其余 → 500
func HTTPStatus(appErr *apperrors.AppError) int {
	switch {
	case apperrors.IsValidation(appErr):
		return http.StatusBadRequest
	case apperrors.IsNotFound(appErr):
		return http.StatusNotFound
	case appErr.Code >= apperrors.ErrCodeBusinessError && appErr.Code < apperrors.ErrCodeBusinessError+100:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
