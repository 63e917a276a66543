// Package router 组装gin引擎：中间件、健康检查、指标、Swagger和/api/v1路由
package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/xiebiao/babystore/internal/interface/http/handler"
	"github.com/xiebiao/babystore/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/babystore/pkg/errors"
	"github.com/xiebiao/babystore/pkg/response"
)

// Handlers 所有HTTP处理器
type Handlers struct {
	Product   *handler.ProductHandler
	Customer  *handler.CustomerHandler
	Sale      *handler.SaleHandler
	Dashboard *handler.DashboardHandler
}

// New 创建并配置Gin引擎
// mode: debug | release | test
func New(mode string, log *slog.Logger, h *Handlers) *gin.Engine {
	switch mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(mode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(log), middleware.Metrics())

	// 未注册的路由也返回统一响应结构
	r.NoRoute(func(c *gin.Context) {
		response.ErrorWithCode(c, apperrors.ErrCodeNotFound, "接口不存在")
	})

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档，访问 http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/dashboard", h.Dashboard.Dashboard)
		v1.GET("/options", h.Dashboard.Options)

		products := v1.Group("/products")
		{
			products.GET("", h.Product.ListProducts)
			products.POST("", h.Product.AddProduct)
			products.GET("/:id", h.Product.GetProduct)
			products.PUT("/:id", h.Product.UpdateProduct)
			products.DELETE("/:id", h.Product.DeleteProduct)
		}

		customers := v1.Group("/customers")
		{
			customers.GET("", h.Customer.ListCustomers)
			customers.POST("", h.Customer.AddCustomer)
			customers.GET("/:id", h.Customer.GetCustomer)
			customers.PUT("/:id", h.Customer.UpdateCustomer)
			customers.DELETE("/:id", h.Customer.DeleteCustomer)
		}

		sales := v1.Group("/sales")
		{
			sales.GET("", h.Sale.ListSales)
			sales.POST("", h.Sale.RecordSale)
		}
	}

	return r
}
