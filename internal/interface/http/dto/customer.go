package dto

import (
	"github.com/xiebiao/babystore/internal/domain/customer"
)

// CustomerRequest 新增/编辑顾客请求(累计消费不可由客户端修改)
type CustomerRequest struct {
	Name     string `json:"name" binding:"required,max=100" example:"Emma Johnson"`
	Email    string `json:"email" binding:"omitempty,email,max=100" example:"emma.j@email.com"`
	Phone    string `json:"phone" binding:"max=50" example:"123-456-7890"`
	BabyName string `json:"baby_name" binding:"max=100" example:"Lily"`
	BabyAge  string `json:"baby_age" binding:"max=50" example:"3 months"`
}

// ToInput 转换为领域输入
func (r *CustomerRequest) ToInput() customer.Input {
	return customer.Input{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		BabyName: r.BabyName,
		BabyAge:  r.BabyAge,
	}
}

// CustomerResponse 顾客响应
type CustomerResponse struct {
	ID             uint   `json:"id" example:"1"`
	Name           string `json:"name" example:"Emma Johnson"`
	Email          string `json:"email" example:"emma.j@email.com"`
	Phone          string `json:"phone" example:"123-456-7890"`
	TotalPurchases string `json:"total_purchases" example:"24.99"`
	BabyName       string `json:"baby_name" example:"Lily"`
	BabyAge        string `json:"baby_age" example:"3 months"`
	CreatedAt      string `json:"created_at" example:"2024-06-10 10:30:00"`
	UpdatedAt      string `json:"updated_at" example:"2024-06-10 10:30:00"`
}

func NewCustomerResponse(c *customer.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		TotalPurchases: FormatMoney(c.TotalPurchases),
		BabyName:       c.BabyName,
		BabyAge:        c.BabyAge,
		CreatedAt:      formatTime(c.CreatedAt),
		UpdatedAt:      formatTime(c.UpdatedAt),
	}
}

func NewCustomerList(customers []*customer.Customer) []*CustomerResponse {
	list := make([]*CustomerResponse, len(customers))
	for i, c := range customers {
		list[i] = NewCustomerResponse(c)
	}
	return list
}
