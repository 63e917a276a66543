package ledger

import (
	"context"

	"github.com/xiebiao/babystore/internal/domain/product"
)

// ListProducts 商品列表(按名称升序)
func (l *Ledger) ListProducts(ctx context.Context, filter product.Filter) ([]*product.Product, error) {
	return l.products.ListProducts(ctx, filter)
}

// GetProduct 根据ID获取商品
func (l *Ledger) GetProduct(ctx context.Context, id uint) (*product.Product, error) {
	return l.products.GetProduct(ctx, id)
}

// AddProduct 新增商品，返回新ID
func (l *Ledger) AddProduct(ctx context.Context, in product.Input) (uint, error) {
	p, err := l.products.AddProduct(ctx, in)
	if err != nil {
		return 0, err
	}
	l.logger.InfoContext(ctx, "新增商品", "product_id", p.ID, "name", p.Name, "stock", p.Stock)
	return p.ID, nil
}

// UpdateProduct 整体替换商品的可编辑字段
func (l *Ledger) UpdateProduct(ctx context.Context, id uint, in product.Input) error {
	p, err := l.products.UpdateProduct(ctx, id, in)
	if err != nil {
		return err
	}
	l.logger.InfoContext(ctx, "编辑商品", "product_id", p.ID, "name", p.Name, "stock", p.Stock)
	return nil
}

// DeleteProduct 删除商品(幂等)，历史销售不受影响
func (l *Ledger) DeleteProduct(ctx context.Context, id uint) error {
	if err := l.products.DeleteProduct(ctx, id); err != nil {
		return err
	}
	l.logger.InfoContext(ctx, "删除商品", "product_id", id)
	return nil
}
