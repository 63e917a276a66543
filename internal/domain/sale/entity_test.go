package sale

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInput_Normalize(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 4, 5, 0, time.Local)

	in := Input{CustomerName: " Emma Johnson ", ProductName: "Baby Onesie Set", Quantity: 1}.Normalize(now)
	assert.Equal(t, "2024-06-10", in.Date)
	assert.Equal(t, "Emma Johnson", in.CustomerName)

	in = Input{Date: "2023-01-02"}.Normalize(now)
	assert.Equal(t, "2023-01-02", in.Date)
}

func TestInput_Validate(t *testing.T) {
	negative := decimal.RequireFromString("-1")
	tooPrecise := decimal.RequireFromString("1.005")
	free := decimal.Zero

	base := func() Input {
		return Input{Date: "2024-06-10", CustomerName: "Emma Johnson", ProductName: "Baby Onesie Set", Quantity: 1}
	}

	tests := []struct {
		name   string
		mutate func(*Input)
		want   error
	}{
		{"合法", func(*Input) {}, nil},
		{"数量为0", func(in *Input) { in.Quantity = 0 }, ErrInvalidQuantity},
		{"数量为负", func(in *Input) { in.Quantity = -2 }, ErrInvalidQuantity},
		{"商品为空", func(in *Input) { in.ProductName = "" }, ErrProductRequired},
		{"顾客为空", func(in *Input) { in.CustomerName = "" }, ErrCustomerRequired},
		{"日期格式错误", func(in *Input) { in.Date = "06/10/2024" }, ErrInvalidDate},
		{"日期不存在", func(in *Input) { in.Date = "2024-02-30" }, ErrInvalidDate},
		{"单价为负", func(in *Input) { in.UnitPrice = &negative }, ErrInvalidUnitPrice},
		{"单价三位小数", func(in *Input) { in.UnitPrice = &tooPrecise }, ErrInvalidUnitPrice},
		{"单价为0", func(in *Input) { in.UnitPrice = &free }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base()
			tt.mutate(&in)
			err := in.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.want, err)
		})
	}
}

func TestNewSale(t *testing.T) {
	in := Input{Date: "2024-06-10", CustomerName: "Emma Johnson", ProductName: "Infant Sleep Gown", Quantity: 3}

	s := NewSale(in, decimal.RequireFromString("18.99"), "")
	assert.Equal(t, "56.97", s.Total.StringFixed(2))
	assert.Equal(t, SizeNotApplicable, s.Size)
	assert.Equal(t, 3, s.Quantity)

	s = NewSale(in, decimal.RequireFromString("18.99"), "3-6M")
	assert.Equal(t, "3-6M", s.Size)
}
