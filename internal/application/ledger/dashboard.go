package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/babystore/internal/domain/sale"
	"github.com/xiebiao/babystore/pkg/metrics"
	"github.com/xiebiao/babystore/pkg/tracing"
)

// Summary 仪表盘汇总
type Summary struct {
	TotalProducts  int64
	TotalCustomers int64
	TotalRevenue   decimal.Decimal
	LowStockItems  int64
	RecentSales    []*sale.Sale
}

// Dashboard 汇总商品数、顾客数、销售总额、低库存商品数和最近销售
func (l *Ledger) Dashboard(ctx context.Context) (summary *Summary, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "Ledger.Dashboard")
	defer func() { tracing.EndSpan(span, err) }()

	summary = &Summary{}

	if summary.TotalProducts, err = l.productRepo.Count(ctx); err != nil {
		return nil, err
	}
	if summary.TotalCustomers, err = l.customerRepo.Count(ctx); err != nil {
		return nil, err
	}
	if summary.TotalRevenue, err = l.saleRepo.TotalRevenue(ctx); err != nil {
		return nil, err
	}
	if summary.LowStockItems, err = l.productRepo.CountLowStock(ctx, l.cfg.LowStockThreshold); err != nil {
		return nil, err
	}
	metrics.SetGauge(metrics.ProductsLowStock, float64(summary.LowStockItems))

	limit := l.cfg.RecentSalesLimit
	if limit <= 0 {
		limit = DefaultConfig().RecentSalesLimit
	}
	if summary.RecentSales, err = l.saleRepo.List(ctx, limit); err != nil {
		return nil, err
	}

	return summary, nil
}
