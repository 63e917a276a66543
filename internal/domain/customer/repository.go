package customer

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository 顾客仓储接口
// 说明:接口定义在domain层,具体实现在infrastructure/persistence/gormdb
type Repository interface {
	// Create 创建顾客,回填ID
	Create(ctx context.Context, c *Customer) error

	// FindByID 不存在返回ErrCustomerNotFound
	FindByID(ctx context.Context, id uint) (*Customer, error)

	// Update 更新可编辑字段,不会修改total_purchases
	Update(ctx context.Context, c *Customer) error

	// Delete 删除顾客(幂等)
	Delete(ctx context.Context, id uint) error

	// List 按名称升序
	List(ctx context.Context) ([]*Customer, error)

	// FindByName 同名顾客中ID最小的一条,不存在返回ErrCustomerNotFound
	FindByName(ctx context.Context, name string) (*Customer, error)

	// AddPurchase 累加消费金额
	AddPurchase(ctx context.Context, id uint, amount decimal.Decimal) error

	Count(ctx context.Context) (int64, error)
}
