package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/babystore/internal/domain/customer"
	"github.com/xiebiao/babystore/internal/domain/product"
	"github.com/xiebiao/babystore/internal/domain/sale"
	apperrors "github.com/xiebiao/babystore/pkg/errors"
	"github.com/xiebiao/babystore/pkg/metrics"
)

// failingCustomerRepo 累加消费时返回存储错误，用于验证事务回滚
type failingCustomerRepo struct {
	customer.Repository
}

func (r *failingCustomerRepo) AddPurchase(context.Context, uint, decimal.Decimal) error {
	return apperrors.Wrap(errors.New("disk I/O error"), "更新累计消费失败")
}

// snapshot 三张表中与一笔销售相关的状态
type snapshot struct {
	stock     int
	total     string
	salesRows int
}

func (e *testEnv) snapshot(t *testing.T, productID, customerID uint) snapshot {
	t.Helper()
	ctx := context.Background()

	p, err := e.products.FindByID(ctx, productID)
	require.NoError(t, err)
	c, err := e.customers.FindByID(ctx, customerID)
	require.NoError(t, err)
	n, err := e.sales.Count(ctx)
	require.NoError(t, err)

	return snapshot{stock: p.Stock, total: c.TotalPurchases.StringFixed(2), salesRows: int(n)}
}

func TestRecordSale_EmmaBuysOnesie(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	productID := env.addProduct(t, "Baby Onesie Set", "24.99", 17)
	customerID := env.addCustomer(t, "Emma Johnson")

	price := dec("24.99")
	id, err := env.ledger.RecordSale(ctx, sale.Input{
		Date:         "2024-06-10",
		CustomerName: "Emma Johnson",
		ProductName:  "Baby Onesie Set",
		Quantity:     1,
		UnitPrice:    &price,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	sales, err := env.ledger.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, id, sales[0].ID)
	assert.Equal(t, "24.99", sales[0].Total.StringFixed(2))
	assert.Equal(t, "2024-06-10", sales[0].Date)
	assert.Equal(t, "N/A", sales[0].Size)

	after := env.snapshot(t, productID, customerID)
	assert.Equal(t, snapshot{stock: 16, total: "24.99", salesRows: 1}, after)
}

func TestRecordSale_AllThreeEffects(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	productID := env.addProduct(t, "Infant Sleep Gown", "18.99", 10)
	customerID := env.addCustomer(t, "Sarah Williams")

	price := dec("15.25")
	for i := 0; i < 2; i++ {
		_, err := env.ledger.RecordSale(ctx, sale.Input{
			Date: "2024-06-11", CustomerName: "Sarah Williams", ProductName: "Infant Sleep Gown",
			Quantity: 3, UnitPrice: &price,
		})
		require.NoError(t, err)
	}

	// 2 × (3 × 15.25) = 91.50
	assert.Equal(t, snapshot{stock: 4, total: "91.50", salesRows: 2}, env.snapshot(t, productID, customerID))
}

func TestRecordSale_InsufficientStock(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	productID := env.addProduct(t, "Infant Sleep Gown", "18.99", 2)
	customerID := env.addCustomer(t, "Emma Johnson")
	before := env.snapshot(t, productID, customerID)

	_, err := env.ledger.RecordSale(ctx, sale.Input{
		Date: "2024-06-10", CustomerName: "Emma Johnson", ProductName: "Infant Sleep Gown", Quantity: 5,
	})
	require.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	assert.Equal(t, 2, apperrors.GetAppError(err).Details["available"])
	assert.Contains(t, err.Error(), "2")

	assert.Equal(t, before, env.snapshot(t, productID, customerID))
	assert.Equal(t, 2, before.stock)
}

func TestRecordSale_RollbackOnStorageFailure(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, func(r customer.Repository) customer.Repository {
		return &failingCustomerRepo{Repository: r}
	})
	productID := env.addProduct(t, "Baby Onesie Set", "24.99", 17)
	customerID := env.addCustomer(t, "Emma Johnson")
	before := env.snapshot(t, productID, customerID)

	failedBefore := testutil.ToFloat64(metrics.SalesFailedTotal.WithLabelValues("storage"))

	_, err := env.ledger.RecordSale(ctx, sale.Input{
		Date: "2024-06-10", CustomerName: "Emma Johnson", ProductName: "Baby Onesie Set", Quantity: 1,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsStorage(err))

	// 销售记录、库存扣减、顾客累计都不应留下
	assert.Equal(t, before, env.snapshot(t, productID, customerID))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(metrics.SalesFailedTotal.WithLabelValues("storage")))
}

func TestRecordSale_WalkInCustomer(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	productID := env.addProduct(t, "Sun Hat", "9.99", 4)
	customerID := env.addCustomer(t, "Emma Johnson")

	_, err := env.ledger.RecordSale(ctx, sale.Input{
		Date: "2024-06-10", CustomerName: "Someone New", ProductName: "Sun Hat", Quantity: 2,
	})
	require.NoError(t, err)

	after := env.snapshot(t, productID, customerID)
	assert.Equal(t, 2, after.stock)
	assert.Equal(t, "0.00", after.total, "无关顾客的累计消费不变")

	sales, err := env.ledger.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "Someone New", sales[0].CustomerName)
	assert.Equal(t, "19.98", sales[0].Total.StringFixed(2))
}

func TestRecordSale_DefaultsFromProduct(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.ledger.AddProduct(ctx, product.Input{
		Name: "Infant Sleep Gown", Price: dec("18.99"), Stock: 5, AgeRange: "3-6M",
	})
	require.NoError(t, err)
	env.ledger.now = func() time.Time { return time.Date(2024, 7, 1, 9, 0, 0, 0, time.Local) }

	_, err = env.ledger.RecordSale(ctx, sale.Input{CustomerName: "Emma Johnson", ProductName: "Infant Sleep Gown", Quantity: 2})
	require.NoError(t, err)

	sales, err := env.ledger.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "2024-07-01", sales[0].Date)
	assert.Equal(t, "3-6M", sales[0].Size)
	assert.Equal(t, "37.98", sales[0].Total.StringFixed(2))
}

func TestRecordSale_LowestIDWinsOnDuplicateNames(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	first := env.addProduct(t, "Bib", "3.00", 5)
	second := env.addProduct(t, "Bib", "4.00", 5)

	_, err := env.ledger.RecordSale(ctx, sale.Input{CustomerName: "Walk-in", ProductName: "Bib", Quantity: 1})
	require.NoError(t, err)

	p1, err := env.ledger.GetProduct(ctx, first)
	require.NoError(t, err)
	p2, err := env.ledger.GetProduct(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 4, p1.Stock)
	assert.Equal(t, 5, p2.Stock)
}

func TestRecordSale_RejectedWithoutStateChange(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	productID := env.addProduct(t, "Sun Hat", "9.99", 4)
	customerID := env.addCustomer(t, "Emma Johnson")
	before := env.snapshot(t, productID, customerID)

	tests := []struct {
		name  string
		in    sale.Input
		check func(t *testing.T, err error)
	}{
		{
			name: "数量为0",
			in:   sale.Input{CustomerName: "Emma Johnson", ProductName: "Sun Hat", Quantity: 0},
			check: func(t *testing.T, err error) {
				assert.Equal(t, sale.ErrInvalidQuantity, err)
			},
		},
		{
			name: "日期格式错误",
			in:   sale.Input{Date: "10/06/2024", CustomerName: "Emma Johnson", ProductName: "Sun Hat", Quantity: 1},
			check: func(t *testing.T, err error) {
				assert.Equal(t, sale.ErrInvalidDate, err)
			},
		},
		{
			name: "商品不存在",
			in:   sale.Input{CustomerName: "Emma Johnson", ProductName: "Nope", Quantity: 1},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, product.ErrProductNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.ledger.RecordSale(ctx, tt.in)
			require.Error(t, err)
			tt.check(t, err)
			assert.Equal(t, before, env.snapshot(t, productID, customerID))
		})
	}
}

func TestRecordSale_Metrics(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.addProduct(t, "Sun Hat", "10.00", 1)

	recordedBefore := testutil.ToFloat64(metrics.SalesRecordedTotal)
	revenueBefore := testutil.ToFloat64(metrics.SalesRevenueTotal)
	stockBefore := testutil.ToFloat64(metrics.SalesFailedTotal.WithLabelValues("insufficient_stock"))

	_, err := env.ledger.RecordSale(ctx, sale.Input{CustomerName: "A", ProductName: "Sun Hat", Quantity: 1})
	require.NoError(t, err)
	_, err = env.ledger.RecordSale(ctx, sale.Input{CustomerName: "A", ProductName: "Sun Hat", Quantity: 1})
	require.Error(t, err)

	assert.Equal(t, recordedBefore+1, testutil.ToFloat64(metrics.SalesRecordedTotal))
	assert.InDelta(t, revenueBefore+10, testutil.ToFloat64(metrics.SalesRevenueTotal), 0.001)
	assert.Equal(t, stockBefore+1, testutil.ToFloat64(metrics.SalesFailedTotal.WithLabelValues("insufficient_stock")))
}
