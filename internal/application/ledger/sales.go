package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/xiebiao/babystore/internal/domain/customer"
	"github.com/xiebiao/babystore/internal/domain/product"
	"github.com/xiebiao/babystore/internal/domain/sale"
	apperrors "github.com/xiebiao/babystore/pkg/errors"
	"github.com/xiebiao/babystore/pkg/metrics"
	"github.com/xiebiao/babystore/pkg/tracing"
)

// ListSales 销售列表(最新在前)
func (l *Ledger) ListSales(ctx context.Context) ([]*sale.Sale, error) {
	return l.saleRepo.List(ctx, 0)
}

// RecordSale 记一笔销售
// 教学重点:三处变更必须同时成功或同时失败
//  1. 新增销售记录
//  2. 商品库存减少quantity
//  3. 同名顾客的累计消费增加total(没有该顾客时跳过，按散客处理)
//
// 流程(单个事务内):
//  1. 按名称锁定商品行(SELECT ... FOR UPDATE，同名时取ID最小的)
//  2. 库存不足直接返回，不产生任何写入
//  3. 解析单价(未指定时用商品现价)和尺码(未指定时用商品尺码或N/A)
//  4. 插入销售记录
//  5. 扣减库存(WHERE stock - q >= 0兜底)
//  6. 累加顾客消费
//
// 任一步骤失败整个事务回滚，不自动重试
func (l *Ledger) RecordSale(ctx context.Context, in sale.Input) (id uint, err error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, tracerName, "Ledger.RecordSale")
	defer func() {
		tracing.EndSpan(span, err)
		l.observeSale(ctx, in, start, err)
	}()

	in = in.Normalize(l.now())
	if err = in.Validate(); err != nil {
		return 0, err
	}

	var recorded *sale.Sale
	err = l.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// 步骤1:锁定商品
		p, err := l.productRepo.LockByName(txCtx, in.ProductName)
		if err != nil {
			return err
		}

		// 步骤2:必须在锁定后检查库存
		if p.Stock < in.Quantity {
			return product.NewInsufficientStockError(p.Name, p.Stock, in.Quantity)
		}

		// 步骤3:解析单价和尺码
		unitPrice := p.Price
		if in.UnitPrice != nil {
			unitPrice = *in.UnitPrice
		}
		size := in.Size
		if size == "" {
			size = p.SaleSize()
		}

		// 步骤4:插入销售记录
		s := sale.NewSale(in, unitPrice, size)
		if err := l.saleRepo.Create(txCtx, s); err != nil {
			return err
		}

		// 步骤5:扣减库存
		if err := l.productRepo.UpdateStock(txCtx, p.ID, -in.Quantity); err != nil {
			return err
		}

		// 步骤6:累加顾客消费
		c, err := l.customerRepo.FindByName(txCtx, in.CustomerName)
		switch {
		case err == nil:
			if err := l.customerRepo.AddPurchase(txCtx, c.ID, s.Total); err != nil {
				return err
			}
		case errors.Is(err, customer.ErrCustomerNotFound):
			// 散客，只记销售
		default:
			return err
		}

		recorded = s
		return nil
	})
	if err != nil {
		if !apperrors.IsAppError(err) {
			err = apperrors.Wrap(err, "销售记账失败")
		}
		return 0, err
	}

	l.logger.InfoContext(ctx, "销售记账成功",
		"sale_id", recorded.ID,
		"product", recorded.ProductName,
		"customer", recorded.CustomerName,
		"quantity", recorded.Quantity,
		"total", recorded.Total.StringFixed(2),
	)
	metrics.AddCounter(metrics.SalesRevenueTotal, recorded.Total.InexactFloat64())
	return recorded.ID, nil
}

// observeSale 记录销售指标和失败日志
func (l *Ledger) observeSale(ctx context.Context, in sale.Input, start time.Time, err error) {
	metrics.ObserveHistogram(metrics.SaleRecordDuration, time.Since(start).Seconds())

	if err == nil {
		metrics.IncCounter(metrics.SalesRecordedTotal)
		return
	}

	reason := failureReason(err)
	metrics.IncCounterVec(metrics.SalesFailedTotal, map[string]string{"reason": reason})

	attrs := []any{
		"product", in.ProductName,
		"customer", in.CustomerName,
		"quantity", in.Quantity,
		"reason", reason,
		"error", err,
	}
	if traceID := tracing.ExtractTraceID(ctx); traceID != "" {
		attrs = append(attrs, "trace_id", traceID, "span_id", tracing.ExtractSpanID(ctx))
	}
	if reason == "storage" {
		l.logger.ErrorContext(ctx, "销售记账失败，事务已回滚", attrs...)
		return
	}
	l.logger.WarnContext(ctx, "销售记账被拒绝", attrs...)
}

// failureReason 错误种类 → 指标标签
func failureReason(err error) string {
	switch {
	case apperrors.IsValidation(err):
		return "invalid"
	case apperrors.IsNotFound(err):
		return "not_found"
	case errors.Is(err, apperrors.ErrInsufficientStock):
		return "insufficient_stock"
	default:
		return "storage"
	}
}
