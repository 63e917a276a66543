package sale

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout 销售日期格式
const DateLayout = "2006-01-02"

// SizeNotApplicable 商品没有尺码时销售记录中的占位值
const SizeNotApplicable = "N/A"

// Sale 销售记录(只追加,不可修改)
// 设计说明:
// 1. 顾客与商品都按名称冗余保存,改名或删除商品/顾客不会改写历史销售
// 2. Total = Quantity × 成交单价,在创建时固定下来
type Sale struct {
	ID           uint
	Date         string // YYYY-MM-DD
	CustomerName string
	ProductName  string
	Quantity     int
	Total        decimal.Decimal
	Size         string
	CreatedAt    time.Time
}

// Input 记一笔销售的请求
// UnitPrice为nil时使用商品当前售价;Size为空时使用商品尺码
type Input struct {
	Date         string
	CustomerName string
	ProductName  string
	Quantity     int
	UnitPrice    *decimal.Decimal
	Size         string
}

// Normalize 去除首尾空格,日期为空时取now所在的日期
func (in Input) Normalize(now time.Time) Input {
	in.Date = strings.TrimSpace(in.Date)
	in.CustomerName = strings.TrimSpace(in.CustomerName)
	in.ProductName = strings.TrimSpace(in.ProductName)
	in.Size = strings.TrimSpace(in.Size)
	if in.Date == "" {
		in.Date = now.Format(DateLayout)
	}
	return in
}

// Validate 校验销售请求(不查库)
func (in Input) Validate() error {
	if in.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if in.ProductName == "" {
		return ErrProductRequired
	}
	if in.CustomerName == "" {
		return ErrCustomerRequired
	}
	if _, err := time.Parse(DateLayout, in.Date); err != nil {
		return ErrInvalidDate
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() || !in.UnitPrice.Equal(in.UnitPrice.Round(2)) {
			return ErrInvalidUnitPrice
		}
	}
	return nil
}

// NewSale 根据已解析的单价和尺码生成销售记录
func NewSale(in Input, unitPrice decimal.Decimal, size string) *Sale {
	if size == "" {
		size = SizeNotApplicable
	}
	return &Sale{
		Date:         in.Date,
		CustomerName: in.CustomerName,
		ProductName:  in.ProductName,
		Quantity:     in.Quantity,
		Total:        unitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))).Round(2),
		Size:         size,
		CreatedAt:    time.Now(),
	}
}
