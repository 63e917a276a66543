package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/babystore/internal/domain/product"
)

// TimeLayout 响应中的时间格式
const TimeLayout = "2006-01-02 15:04:05"

// ProductRequest 新增/编辑商品请求
// validator tag说明:
// - price/stock使用指针，缺省与0可以区分(PUT缺字段不会把价格、库存清零)
// - 非数字的价格、小数库存在JSON解码时就会失败
// - 价格最多两位小数、分类/月龄/成色取值等规则由domain层校验
type ProductRequest struct {
	Name      string           `json:"name" binding:"required,max=200" example:"Baby Onesie Set"`
	Category  string           `json:"category" binding:"max=50" example:"Bodysuits"`
	Price     *decimal.Decimal `json:"price" binding:"required" swaggertype:"string" example:"24.99"`
	Stock     *int             `json:"stock" binding:"required,min=0" example:"17"`
	Supplier  string           `json:"supplier" binding:"max=100" example:"Baby Comfort Co"`
	Size      string           `json:"size" binding:"max=50" example:"0-3M"`
	AgeRange  string           `json:"age_range" binding:"max=50" example:"0-3M"`
	Color     string           `json:"color" binding:"max=50" example:"Pink"`
	Material  string           `json:"material" binding:"max=100" example:"Cotton"`
	Condition string           `json:"condition" binding:"max=20" example:"New"`
}

// ToInput 转换为领域输入(调用前必须已通过绑定校验)
func (r *ProductRequest) ToInput() product.Input {
	in := product.Input{
		Name:      r.Name,
		Category:  r.Category,
		Supplier:  r.Supplier,
		Size:      r.Size,
		AgeRange:  r.AgeRange,
		Color:     r.Color,
		Material:  r.Material,
		Condition: r.Condition,
	}
	if r.Price != nil {
		in.Price = *r.Price
	}
	if r.Stock != nil {
		in.Stock = *r.Stock
	}
	return in
}

// ListProductsRequest 商品列表查询参数
type ListProductsRequest struct {
	InStock bool `form:"in_stock" example:"true"` // 只返回有库存的商品
}

// ProductResponse 商品响应
type ProductResponse struct {
	ID        uint   `json:"id" example:"1"`
	Name      string `json:"name" example:"Baby Onesie Set"`
	Category  string `json:"category" example:"Bodysuits"`
	Price     string `json:"price" example:"24.99"` // 两位小数
	Stock     int    `json:"stock" example:"17"`
	Supplier  string `json:"supplier" example:"Baby Comfort Co"`
	Size      string `json:"size" example:"0-3M"`
	AgeRange  string `json:"age_range" example:"0-3M"`
	Color     string `json:"color" example:"Pink"`
	Material  string `json:"material" example:"Cotton"`
	Condition string `json:"condition" example:"New"`
	CreatedAt string `json:"created_at" example:"2024-06-10 10:30:00"`
	UpdatedAt string `json:"updated_at" example:"2024-06-10 10:30:00"`
}

// NewProductResponse 领域实体 → 响应
func NewProductResponse(p *product.Product) *ProductResponse {
	return &ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     FormatMoney(p.Price),
		Stock:     p.Stock,
		Supplier:  p.Supplier,
		Size:      p.Size,
		AgeRange:  p.AgeRange,
		Color:     p.Color,
		Material:  p.Material,
		Condition: p.Condition,
		CreatedAt: formatTime(p.CreatedAt),
		UpdatedAt: formatTime(p.UpdatedAt),
	}
}

// NewProductList 批量转换
func NewProductList(products []*product.Product) []*ProductResponse {
	list := make([]*ProductResponse, len(products))
	for i, p := range products {
		list[i] = NewProductResponse(p)
	}
	return list
}

// IDResponse 新建资源后返回的ID
type IDResponse struct {
	ID uint `json:"id" example:"1"`
}

// FormatMoney 金额格式化为两位小数，如24.99
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimeLayout)
}
