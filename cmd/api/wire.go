//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 修改本文件后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
//
// 依赖链:
// *gin.Engine → *router.Handlers → *handler.XxxHandler → *ledger.Ledger
// *ledger.Ledger → Repository + *gormdb.TxManager → *gorm.DB → *config.Config

package main

import (
	"log/slog"

	"github.com/google/wire"

	"github.com/xiebiao/babystore/internal/application/ledger"
	"github.com/xiebiao/babystore/internal/infrastructure/config"
	"github.com/xiebiao/babystore/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/babystore/internal/interface/http/handler"
	"github.com/xiebiao/babystore/internal/interface/http/router"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	provideDB,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	gormdb.NewProductRepository,
	gormdb.NewCustomerRepository,
	gormdb.NewSaleRepository,
	gormdb.NewTxManager,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	provideLedgerConfig,
	ledger.New,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewProductHandler,
	handler.NewCustomerHandler,
	handler.NewSaleHandler,
	handler.NewDashboardHandler,
	wire.Struct(new(router.Handlers), "*"),
	provideEngine,
)

// InitializeApp 初始化整个应用
// 配置和日志由main提前创建(日志要在依赖组装之前可用)
// 返回的cleanup关闭数据库连接
func InitializeApp(cfg *config.Config, log *slog.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		applicationSet,
		handlerSet,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
