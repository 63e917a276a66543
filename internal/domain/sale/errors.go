package sale

import (
	apperrors "github.com/xiebiao/babystore/pkg/errors"
)

// 销售领域错误定义
var (
	ErrInvalidQuantity  = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须是大于0的整数")
	ErrProductRequired  = apperrors.New(apperrors.ErrCodeInvalidParams, "请选择商品")
	ErrCustomerRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "请填写顾客名称")
	ErrInvalidDate      = apperrors.New(apperrors.ErrCodeInvalidParams, "日期格式应为YYYY-MM-DD")
	ErrInvalidUnitPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "单价必须是不小于0且最多两位小数的数字")
)
