package product

import (
	apperrors "github.com/xiebiao/babystore/pkg/errors"
)

// 商品领域错误定义
var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = apperrors.ErrProductNotFound

	// ErrNameRequired 商品名称不能为空
	ErrNameRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "商品名称不能为空")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格必须是不小于0且最多两位小数的数字")

	// ErrInvalidStock 无效的库存
	ErrInvalidStock = apperrors.New(apperrors.ErrCodeInvalidParams, "库存必须是不小于0的整数")

	// ErrInvalidCategory 分类不在可选范围内
	ErrInvalidCategory = apperrors.New(apperrors.ErrCodeInvalidParams, "无效的商品分类")

	// ErrInvalidAgeRange 月龄不在可选范围内
	ErrInvalidAgeRange = apperrors.New(apperrors.ErrCodeInvalidParams, "无效的适用月龄")

	// ErrInvalidCondition 成色只能是New或Gently Used
	ErrInvalidCondition = apperrors.New(apperrors.ErrCodeInvalidParams, "成色只能是New或Gently Used")
)

// NewInsufficientStockError 库存不足错误,携带当前可用数量
func NewInsufficientStockError(name string, available, requested int) error {
	return apperrors.Newf(apperrors.ErrCodeInsufficientStock,
		"商品%s库存不足,当前仅剩%d件,需要%d件", name, available, requested).
		WithDetail("available", available).
		WithDetail("requested", requested)
}
