package gormdb

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/xiebiao/babystore/internal/domain/sale"
	apperrors "github.com/xiebiao/babystore/pkg/errors"
)

// saleRepository 销售仓储实现(只追加)
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository 创建销售仓储
func NewSaleRepository(db *gorm.DB) sale.Repository {
	return &saleRepository{db: db}
}

// Create 插入销售记录
// 教学要点:销售记账在事务中调用，必须使用getDB(ctx)
func (r *saleRepository) Create(ctx context.Context, s *sale.Sale) error {
	model := &SaleModel{
		Date:         s.Date,
		CustomerName: s.CustomerName,
		ProductName:  s.ProductName,
		Quantity:     s.Quantity,
		Total:        s.Total,
		Size:         s.Size,
		CreatedAt:    s.CreatedAt,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建销售记录失败")
	}

	s.ID = model.ID
	s.CreatedAt = model.CreatedAt
	return nil
}

// List 最新的销售在前
func (r *saleRepository) List(ctx context.Context, limit int) ([]*sale.Sale, error) {
	query := getDB(ctx, r.db).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []SaleModel
	if err := query.Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询销售记录失败")
	}

	sales := make([]*sale.Sale, len(models))
	for i := range models {
		sales[i] = toSaleEntity(&models[i])
	}
	return sales, nil
}

func (r *saleRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := getDB(ctx, r.db).Model(&SaleModel{}).Count(&n).Error; err != nil {
		return 0, apperrors.Wrap(err, "统计销售笔数失败")
	}
	return n, nil
}

// TotalRevenue 销售总额
// 说明:逐行读出金额在Go侧用decimal求和，不依赖各数据库SUM对decimal的返回类型
func (r *saleRepository) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	var models []SaleModel
	if err := getDB(ctx, r.db).Select("id", "total").Find(&models).Error; err != nil {
		return decimal.Zero, apperrors.Wrap(err, "统计销售总额失败")
	}

	sum := decimal.Zero
	for _, m := range models {
		sum = sum.Add(m.Total)
	}
	return sum.Round(2), nil
}

func toSaleEntity(model *SaleModel) *sale.Sale {
	return &sale.Sale{
		ID:           model.ID,
		Date:         model.Date,
		CustomerName: model.CustomerName,
		ProductName:  model.ProductName,
		Quantity:     model.Quantity,
		Total:        model.Total,
		Size:         model.Size,
		CreatedAt:    model.CreatedAt,
	}
}
