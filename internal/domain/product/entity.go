package product

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product 商品实体(聚合根)
// 设计说明:
// 1. 价格使用decimal.Decimal,两位小数的货币语义(避免float64精度问题)
// 2. 库存只能通过销售扣减或编辑商品修改,不允许为负数
// 3. 商品名称不要求唯一;销售记录按名称冗余保存,删除商品不影响历史销售
type Product struct {
	ID        uint
	Name      string          // 商品名称
	Category  string          // 分类(Bodysuits/Sleepwear/...)
	Price     decimal.Decimal // 单价(元,两位小数)
	Stock     int             // 库存数量
	Supplier  string          // 供应商
	Size      string          // 尺码
	AgeRange  string          // 适用月龄
	Color     string          // 颜色
	Material  string          // 材质
	Condition string          // 成色(New/Gently Used)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Input 新增/编辑商品的输入
// 替代原先基于字段字典的表单数据,每个字段都有明确类型
type Input struct {
	Name      string
	Category  string
	Price     decimal.Decimal
	Stock     int
	Supplier  string
	Size      string
	AgeRange  string
	Color     string
	Material  string
	Condition string
}

// 可选项(与收银界面下拉框一致)
var (
	Categories = []string{"Bodysuits", "Sleepwear", "Outerwear", "Dresses", "Accessories"}
	AgeRanges  = []string{"Newborn", "0-3M", "3-6M", "6-9M", "9-12M", "12-18M", "18-24M", "3A", "Toddler"}
	Conditions = []string{ConditionNew, ConditionGentlyUsed}
)

const (
	ConditionNew        = "New"
	ConditionGentlyUsed = "Gently Used"
)

// Normalize 去除首尾空格并填充默认值
// 业务规则:
// - 成色为空时默认New
// - 尺码为空时沿用月龄(收银界面中尺码与月龄共用一个下拉框)
func (in Input) Normalize() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Supplier = strings.TrimSpace(in.Supplier)
	in.Size = strings.TrimSpace(in.Size)
	in.AgeRange = strings.TrimSpace(in.AgeRange)
	in.Color = strings.TrimSpace(in.Color)
	in.Material = strings.TrimSpace(in.Material)
	in.Condition = strings.TrimSpace(in.Condition)

	if in.Condition == "" {
		in.Condition = ConditionNew
	}
	if in.Size == "" {
		in.Size = in.AgeRange
	}
	return in
}

// Validate 校验输入(调用前应先Normalize)
func (in Input) Validate() error {
	if in.Name == "" {
		return ErrNameRequired
	}
	if in.Price.IsNegative() {
		return ErrInvalidPrice
	}
	// 货币只保留两位小数,24.999这类输入直接拒绝而不是静默舍入
	if !in.Price.Equal(in.Price.Round(2)) {
		return ErrInvalidPrice
	}
	if in.Stock < 0 {
		return ErrInvalidStock
	}
	if in.Category != "" && !contains(Categories, in.Category) {
		return ErrInvalidCategory
	}
	if in.AgeRange != "" && !contains(AgeRanges, in.AgeRange) {
		return ErrInvalidAgeRange
	}
	if !contains(Conditions, in.Condition) {
		return ErrInvalidCondition
	}
	return nil
}

// NewProduct 创建新商品(工厂方法)
func NewProduct(in Input) *Product {
	now := time.Now()
	p := &Product{CreatedAt: now}
	p.apply(in)
	p.UpdatedAt = now
	return p
}

// Apply 用新的输入整体替换可编辑字段
func (p *Product) Apply(in Input) {
	p.apply(in)
	p.UpdatedAt = time.Now()
}

func (p *Product) apply(in Input) {
	p.Name = in.Name
	p.Category = in.Category
	p.Price = in.Price.Round(2)
	p.Stock = in.Stock
	p.Supplier = in.Supplier
	p.Size = in.Size
	p.AgeRange = in.AgeRange
	p.Color = in.Color
	p.Material = in.Material
	p.Condition = in.Condition
}

// InStock 是否可售
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// IsLowStock 库存是否低于等于预警阈值
func (p *Product) IsLowStock(threshold int) bool {
	return p.Stock <= threshold
}

// SaleSize 销售记录中使用的尺码,商品未设置尺码时为N/A
func (p *Product) SaleSize() string {
	if p.Size == "" {
		return "N/A"
	}
	return p.Size
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
