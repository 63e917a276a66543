package customer

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Customer 顾客实体
// 设计说明:
// 1. TotalPurchases 累计消费金额,只能由销售记账累加,编辑顾客时不可修改
// 2. 顾客名称不要求唯一;销售按名称关联顾客
type Customer struct {
	ID             uint
	Name           string
	Email          string
	Phone          string
	TotalPurchases decimal.Decimal // 累计消费(两位小数)
	BabyName       string          // 宝宝名字
	BabyAge        string          // 宝宝月龄(自由文本,如"3 months")
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Input 新增/编辑顾客的输入(不包含累计消费)
type Input struct {
	Name     string
	Email    string
	Phone    string
	BabyName string
	BabyAge  string
}

// 用户名@域名.后缀
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Normalize 去除首尾空格
func (in Input) Normalize() Input {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.BabyName = strings.TrimSpace(in.BabyName)
	in.BabyAge = strings.TrimSpace(in.BabyAge)
	return in
}

// Validate 校验输入
// 业务规则:
// 1. 名称必填
// 2. 邮箱可以为空,填写时必须格式正确
func (in Input) Validate() error {
	if in.Name == "" {
		return ErrNameRequired
	}
	if in.Email != "" && !emailPattern.MatchString(in.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// NewCustomer 创建新顾客,累计消费从0开始
func NewCustomer(in Input) *Customer {
	now := time.Now()
	c := &Customer{
		TotalPurchases: decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	c.apply(in)
	return c
}

// Apply 用新的输入替换可编辑字段,TotalPurchases保持不变
func (c *Customer) Apply(in Input) {
	c.apply(in)
	c.UpdatedAt = time.Now()
}

func (c *Customer) apply(in Input) {
	c.Name = in.Name
	c.Email = in.Email
	c.Phone = in.Phone
	c.BabyName = in.BabyName
	c.BabyAge = in.BabyAge
}
