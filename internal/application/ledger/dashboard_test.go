package ledger

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/babystore/internal/domain/customer"
	"github.com/xiebiao/babystore/internal/domain/product"
	"github.com/xiebiao/babystore/internal/domain/sale"
	"github.com/xiebiao/babystore/pkg/metrics"
)

func TestSeed_SampleData(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	seeded, err := env.ledger.Seed(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	products, err := env.ledger.ListProducts(ctx, product.Filter{})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Baby Onesie Set", products[0].Name)
	assert.Equal(t, 17, products[0].Stock, "示例销售不扣减库存")
	assert.Equal(t, "Infant Sleep Gown", products[1].Name)
	assert.Equal(t, 2, products[1].Stock)

	customers, err := env.ledger.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Emma Johnson", customers[0].Name)
	assert.Equal(t, "24.99", customers[0].TotalPurchases.StringFixed(2))
	assert.Equal(t, "Lily", customers[0].BabyName)
	assert.True(t, customers[1].TotalPurchases.IsZero())

	sales, err := env.ledger.ListSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "2024-06-10", sales[0].Date)
	assert.Equal(t, "0-3M", sales[0].Size)

	// 非空库不再写入
	seeded, err = env.ledger.Seed(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	n, err := env.products.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	empty, err := env.ledger.Dashboard(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.TotalProducts)
	assert.Equal(t, "0.00", empty.TotalRevenue.StringFixed(2))
	assert.Empty(t, empty.RecentSales)

	_, err = env.ledger.Seed(ctx)
	require.NoError(t, err)
	_, err = env.ledger.AddCustomer(ctx, customer.Input{Name: "Olivia Brown"})
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		_, err = env.ledger.RecordSale(ctx, sale.Input{CustomerName: "Olivia Brown", ProductName: "Baby Onesie Set", Quantity: 1})
		require.NoError(t, err)
	}

	summary, err := env.ledger.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.TotalProducts)
	assert.Equal(t, int64(3), summary.TotalCustomers)
	// 7 × 24.99
	assert.Equal(t, "174.93", summary.TotalRevenue.StringFixed(2))
	// 只有Infant Sleep Gown(库存2)低于阈值5，Onesie剩11
	assert.Equal(t, int64(1), summary.LowStockItems)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ProductsLowStock))
	require.Len(t, summary.RecentSales, 5)
	assert.Equal(t, "Olivia Brown", summary.RecentSales[0].CustomerName)
	assert.Greater(t, summary.RecentSales[0].ID, summary.RecentSales[1].ID)
}
