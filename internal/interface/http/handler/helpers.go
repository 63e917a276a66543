package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/babystore/pkg/errors"
	"github.com/xiebiao/babystore/pkg/response"
)

// errInvalidID 路径中的ID不是正整数
var errInvalidID = apperrors.New(apperrors.ErrCodeInvalidParams, "无效的ID")

// bindJSON 绑定并校验请求体(binding tag)，失败时直接写入40901响应
// 会在这里被拒绝的输入:
// - 类型错误:非数字的价格、小数形式的库存/数量
// - 缺少必填字段:名称、价格、库存、数量等
// - 格式错误:邮箱、日期(YYYY-MM-DD)
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.Error(c, apperrors.Newf(apperrors.ErrCodeBindError, "参数格式错误: %v", err))
		return false
	}
	return true
}

// parseID 解析路径参数:id
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.Error(c, errInvalidID)
		return 0, false
	}
	return uint(id), true
}
