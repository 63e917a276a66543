package sale

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository 销售仓储接口
// 说明:销售只追加,没有Update/Delete
type Repository interface {
	// Create 插入销售记录,回填ID
	Create(ctx context.Context, s *Sale) error

	// List 按ID降序(最新在前),limit<=0表示不限制
	List(ctx context.Context, limit int) ([]*Sale, error)

	// Count 销售笔数
	Count(ctx context.Context) (int64, error)

	// TotalRevenue 所有销售金额之和
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
}
