// Package metrics 提供基于Prometheus的指标收集
//
// # 指标分类
//
// **HTTP指标**：请求总数、耗时分布、正在处理的请求数，由middleware.Metrics记录
//
// **销售指标**：
//   - sales_recorded_total: 成功记账的销售笔数
//   - sales_failed_total{reason}: 记账失败笔数（invalid/not_found/insufficient_stock/storage）
//   - sale_record_duration_seconds: 单笔销售事务耗时
//   - sales_revenue_total: 累计销售额（元）
//   - products_low_stock: 最近一次仪表盘统计的低库存商品数
//
// # 使用示例
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//
//	start := time.Now()
//	if err := doRecordSale(ctx); err != nil {
//	    metrics.IncCounterVec(metrics.SalesFailedTotal, map[string]string{"reason": "storage"})
//	    return err
//	}
//	metrics.IncCounter(metrics.SalesRecordedTotal)
//	metrics.ObserveHistogram(metrics.SaleRecordDuration, time.Since(start).Seconds())
//
// # 命名规范
//
//  1. Counter以`_total`结尾
//  2. Histogram以单位结尾（`_seconds`）
//  3. 标签只使用有限取值（method、status、reason），不要用商品名或顾客名做标签
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// once 防止重复注册（promauto重复注册会panic）
	once sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板，如/api/v1/products/:id）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// SalesRecordedTotal 销售记账成功总数（Counter）
	SalesRecordedTotal prometheus.Counter

	// SalesFailedTotal 销售记账失败总数（CounterVec）
	// 标签：reason（invalid/not_found/insufficient_stock/storage）
	SalesFailedTotal *prometheus.CounterVec

	// SaleRecordDuration 销售事务耗时（Histogram）
	SaleRecordDuration prometheus.Histogram

	// SalesRevenueTotal 累计销售额（Counter，单位:元）
	SalesRevenueTotal prometheus.Counter

	// ProductsLowStock 低库存商品数（Gauge），每次生成仪表盘时刷新
	ProductsLowStock prometheus.Gauge
)

// InitMetrics 初始化所有指标（可重复调用）
func InitMetrics() {
	once.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP请求耗时（秒）",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		SalesRecordedTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sales_recorded_total",
				Help: "销售记账成功总数",
			},
		)

		SalesFailedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sales_failed_total",
				Help: "销售记账失败总数",
			},
			[]string{"reason"},
		)

		// 本地单机事务，耗时基本在毫秒级
		SaleRecordDuration = promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sale_record_duration_seconds",
				Help:    "销售事务耗时（秒）",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		)

		SalesRevenueTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "sales_revenue_total",
				Help: "累计销售额（元）",
			},
		)

		ProductsLowStock = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "products_low_stock",
				Help: "低库存商品数",
			},
		)
	})
}

// IncCounter 递增Counter
func IncCounter(counter prometheus.Counter) {
	counter.Inc()
}

// AddCounter Counter增加指定值（必须>=0）
func AddCounter(counter prometheus.Counter, value float64) {
	counter.Add(value)
}

// IncCounterVec 递增带标签的Counter
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// SetGauge 设置Gauge值
func SetGauge(gauge prometheus.Gauge, value float64) {
	gauge.Set(value)
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	histogram.Observe(value)
}

// ObserveHistogramVec 记录带标签的Histogram观测值
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
