package product

import (
	"context"
)

// Repository 商品仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 事务通过context传递,实现方从ctx中取出事务DB
type Repository interface {
	// Create 创建商品,回填ID
	Create(ctx context.Context, p *Product) error

	// FindByID 根据ID查找商品,不存在返回ErrProductNotFound
	FindByID(ctx context.Context, id uint) (*Product, error)

	// Update 整体更新商品可编辑字段,不存在返回ErrProductNotFound
	Update(ctx context.Context, p *Product) error

	// Delete 删除商品(幂等,不存在也返回nil)
	Delete(ctx context.Context, id uint) error

	// List 按名称升序返回商品列表
	List(ctx context.Context, filter Filter) ([]*Product, error)

	// LockByName 悲观锁查询同名商品中ID最小的一条(用于销售记账)
	// 不存在返回ErrProductNotFound
	LockByName(ctx context.Context, name string) (*Product, error)

	// UpdateStock 原子更新库存
	// delta为正数表示增加,负数表示减少;扣减后不足0返回库存不足错误
	UpdateStock(ctx context.Context, id uint, delta int) error

	// Count 商品总数
	Count(ctx context.Context) (int64, error)

	// CountLowStock 库存<=threshold的商品数(仪表盘低库存预警)
	CountLowStock(ctx context.Context, threshold int) (int64, error)
}

// Filter 列表查询条件
type Filter struct {
	InStockOnly bool // 只返回有库存的商品(销售下拉框用)
}
