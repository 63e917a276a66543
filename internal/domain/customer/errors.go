package customer

import (
	apperrors "github.com/xiebiao/babystore/pkg/errors"
)

// 顾客领域错误定义
var (
	// ErrCustomerNotFound 顾客不存在
	ErrCustomerNotFound = apperrors.ErrCustomerNotFound

	// ErrNameRequired 顾客名称不能为空
	ErrNameRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "顾客名称不能为空")

	// ErrInvalidEmail 邮箱格式不正确
	ErrInvalidEmail = apperrors.New(apperrors.ErrCodeInvalidParams, "邮箱格式不正确")
)
