package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/babystore/internal/domain/customer"
	"github.com/xiebiao/babystore/internal/domain/product"
	"github.com/xiebiao/babystore/internal/domain/sale"
)

// 示例数据
var (
	sampleProducts = []product.Input{
		{
			Name: "Baby Onesie Set", Category: "Bodysuits", Price: decimal.RequireFromString("24.99"), Stock: 17,
			Supplier: "Baby Comfort Co", Size: "0-3M", AgeRange: "0-3M", Color: "Pink", Material: "Cotton",
			Condition: product.ConditionNew,
		},
		{
			Name: "Infant Sleep Gown", Category: "Sleepwear", Price: decimal.RequireFromString("18.99"), Stock: 2,
			Supplier: "Sleepy Baby", Size: "3-6M", AgeRange: "3-6M", Color: "Blue", Material: "Organic Cotton",
			Condition: product.ConditionNew,
		},
	}

	sampleCustomers = []customer.Input{
		{Name: "Emma Johnson", Email: "emma.j@email.com", Phone: "123-456-7890", BabyName: "Lily", BabyAge: "3 months"},
		{Name: "Sarah Williams", Email: "sarah.w@email.com", Phone: "098-765-4321", BabyName: "Max", BabyAge: "8 months"},
	}

	sampleSale = sale.Input{
		Date:         "2024-06-10",
		CustomerName: "Emma Johnson",
		ProductName:  "Baby Onesie Set",
		Quantity:     1,
		Size:         "0-3M",
	}
)

// Seed 空库时写入示例数据，返回是否写入
// 说明:
// 1. 只在商品表为空时执行，重复启动不会重复写入
// 2. 示例销售是历史数据，不扣减库存(商品库存17是盘点后的数字)
// 3. 示例顾客Emma的累计消费与示例销售金额一致
func (l *Ledger) Seed(ctx context.Context) (bool, error) {
	n, err := l.productRepo.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}

	err = l.txManager.Transaction(ctx, func(txCtx context.Context) error {
		var onesie *product.Product
		for _, in := range sampleProducts {
			p := product.NewProduct(in.Normalize())
			if err := l.productRepo.Create(txCtx, p); err != nil {
				return err
			}
			if p.Name == sampleSale.ProductName {
				onesie = p
			}
		}

		var emma *customer.Customer
		for _, in := range sampleCustomers {
			c := customer.NewCustomer(in.Normalize())
			if err := l.customerRepo.Create(txCtx, c); err != nil {
				return err
			}
			if c.Name == sampleSale.CustomerName {
				emma = c
			}
		}

		s := sale.NewSale(sampleSale, onesie.Price, sampleSale.Size)
		if err := l.saleRepo.Create(txCtx, s); err != nil {
			return err
		}
		return l.customerRepo.AddPurchase(txCtx, emma.ID, s.Total)
	})
	if err != nil {
		return false, err
	}

	l.logger.InfoContext(ctx, "已写入示例数据",
		"products", len(sampleProducts),
		"customers", len(sampleCustomers),
	)
	return true, nil
}
