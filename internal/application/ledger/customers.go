package ledger

import (
	"context"

	"github.com/xiebiao/babystore/internal/domain/customer"
)

// ListCustomers 顾客列表(按名称升序)
func (l *Ledger) ListCustomers(ctx context.Context) ([]*customer.Customer, error) {
	return l.customers.ListCustomers(ctx)
}

// GetCustomer 根据ID获取顾客
func (l *Ledger) GetCustomer(ctx context.Context, id uint) (*customer.Customer, error) {
	return l.customers.GetCustomer(ctx, id)
}

// AddCustomer 新增顾客，累计消费从0开始
func (l *Ledger) AddCustomer(ctx context.Context, in customer.Input) (uint, error) {
	c, err := l.customers.AddCustomer(ctx, in)
	if err != nil {
		return 0, err
	}
	l.logger.InfoContext(ctx, "新增顾客", "customer_id", c.ID, "name", c.Name)
	return c.ID, nil
}

// UpdateCustomer 编辑顾客资料(不修改累计消费)
func (l *Ledger) UpdateCustomer(ctx context.Context, id uint, in customer.Input) error {
	c, err := l.customers.UpdateCustomer(ctx, id, in)
	if err != nil {
		return err
	}
	l.logger.InfoContext(ctx, "编辑顾客", "customer_id", c.ID, "name", c.Name)
	return nil
}

// DeleteCustomer 删除顾客(幂等)
func (l *Ledger) DeleteCustomer(ctx context.Context, id uint) error {
	if err := l.customers.DeleteCustomer(ctx, id); err != nil {
		return err
	}
	l.logger.InfoContext(ctx, "删除顾客", "customer_id", id)
	return nil
}
