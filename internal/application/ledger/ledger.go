// Package ledger 门店账本：商品、顾客、销售三张表的增删改查，
// 以及一个原子的复合操作RecordSale。
//
// Ledger在进程启动时构造一次，通过依赖注入传给HTTP handler，
// 不使用全局数据库句柄。
package ledger

import (
	"log/slog"
	"time"

	"github.com/xiebiao/babystore/internal/domain/customer"
	"github.com/xiebiao/babystore/internal/domain/product"
	"github.com/xiebiao/babystore/internal/domain/sale"
	"github.com/xiebiao/babystore/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/babystore/pkg/metrics"
)

const tracerName = "babystore/ledger"

// Config 账本业务配置
type Config struct {
	LowStockThreshold int // 库存<=该值计入低库存
	RecentSalesLimit  int // 仪表盘最近销售条数
}

// DefaultConfig 默认配置(与config/config.yaml一致)
func DefaultConfig() Config {
	return Config{LowStockThreshold: 5, RecentSalesLimit: 5}
}

// Ledger 门店账本
// 设计说明:
// 1. 单表CRUD委托给领域服务(校验规则在domain层)
// 2. RecordSale/Seed跨三张表，在TxManager事务中直接编排仓储
type Ledger struct {
	products     product.Service
	productRepo  product.Repository
	customers    customer.Service
	customerRepo customer.Repository
	saleRepo     sale.Repository
	txManager    *gormdb.TxManager
	cfg          Config
	logger       *slog.Logger
	now          func() time.Time
}

// New 创建账本
func New(
	productRepo product.Repository,
	customerRepo customer.Repository,
	saleRepo sale.Repository,
	txManager *gormdb.TxManager,
	cfg Config,
	logger *slog.Logger,
) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	metrics.InitMetrics()

	return &Ledger{
		products:     product.NewService(productRepo),
		productRepo:  productRepo,
		customers:    customer.NewService(customerRepo),
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		txManager:    txManager,
		cfg:          cfg,
		logger:       logger,
		now:          time.Now,
	}
}

// CatalogOptions 商品表单的可选项
type CatalogOptions struct {
	Categories []string `json:"categories"`
	AgeRanges  []string `json:"age_ranges"`
	Conditions []string `json:"conditions"`
}

// Options 返回分类、月龄、成色的可选值(副本)
func (l *Ledger) Options() CatalogOptions {
	return CatalogOptions{
		Categories: append([]string(nil), product.Categories...),
		AgeRanges:  append([]string(nil), product.AgeRanges...),
		Conditions: append([]string(nil), product.Conditions...),
	}
}
