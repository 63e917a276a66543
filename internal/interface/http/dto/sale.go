package dto

import (
	"github.com/shopspring/decimal"

	"github.com/xiebiao/babystore/internal/application/ledger"
	"github.com/xiebiao/babystore/internal/domain/sale"
)

// RecordSaleRequest 记一笔销售
// unit_price省略时使用商品现价；size省略时使用商品尺码；date省略时为当天
type RecordSaleRequest struct {
	Date         string           `json:"date" binding:"omitempty,datetime=2006-01-02" example:"2024-06-10"`
	CustomerName string           `json:"customer_name" binding:"required,max=100" example:"Emma Johnson"`
	ProductName  string           `json:"product_name" binding:"required,max=200" example:"Baby Onesie Set"`
	Quantity     int              `json:"quantity" binding:"required,min=1" example:"1"`
	UnitPrice    *decimal.Decimal `json:"unit_price,omitempty" swaggertype:"string" example:"24.99"`
	Size         string           `json:"size" binding:"max=50" example:"0-3M"`
}

// ToInput 转换为领域输入
func (r *RecordSaleRequest) ToInput() sale.Input {
	return sale.Input{
		Date:         r.Date,
		CustomerName: r.CustomerName,
		ProductName:  r.ProductName,
		Quantity:     r.Quantity,
		UnitPrice:    r.UnitPrice,
		Size:         r.Size,
	}
}

// SaleResponse 销售记录响应
type SaleResponse struct {
	ID           uint   `json:"id" example:"1"`
	Date         string `json:"date" example:"2024-06-10"`
	CustomerName string `json:"customer_name" example:"Emma Johnson"`
	ProductName  string `json:"product_name" example:"Baby Onesie Set"`
	Quantity     int    `json:"quantity" example:"1"`
	Total        string `json:"total" example:"24.99"`
	Size         string `json:"size" example:"0-3M"`
}

func NewSaleResponse(s *sale.Sale) *SaleResponse {
	return &SaleResponse{
		ID:           s.ID,
		Date:         s.Date,
		CustomerName: s.CustomerName,
		ProductName:  s.ProductName,
		Quantity:     s.Quantity,
		Total:        FormatMoney(s.Total),
		Size:         s.Size,
	}
}

func NewSaleList(sales []*sale.Sale) []*SaleResponse {
	list := make([]*SaleResponse, len(sales))
	for i, s := range sales {
		list[i] = NewSaleResponse(s)
	}
	return list
}

// DashboardResponse 仪表盘
type DashboardResponse struct {
	TotalProducts  int64           `json:"total_products" example:"2"`
	TotalCustomers int64           `json:"total_customers" example:"2"`
	TotalRevenue   string          `json:"total_revenue" example:"24.99"`
	LowStockItems  int64           `json:"low_stock_items" example:"1"`
	RecentSales    []*SaleResponse `json:"recent_sales"`
}

func NewDashboardResponse(s *ledger.Summary) *DashboardResponse {
	return &DashboardResponse{
		TotalProducts:  s.TotalProducts,
		TotalCustomers: s.TotalCustomers,
		TotalRevenue:   FormatMoney(s.TotalRevenue),
		LowStockItems:  s.LowStockItems,
		RecentSales:    NewSaleList(s.RecentSales),
	}
}
