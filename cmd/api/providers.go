package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/xiebiao/babystore/internal/application/ledger"
	"github.com/xiebiao/babystore/internal/infrastructure/config"
	"github.com/xiebiao/babystore/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/babystore/internal/interface/http/router"
)

// App 组装完成的应用
type App struct {
	Engine *gin.Engine
	Ledger *ledger.Ledger
}

// provideDB 创建数据库连接，cleanup负责关闭
func provideDB(cfg *config.Config, log *slog.Logger) (*gorm.DB, func(), error) {
	db, err := gormdb.NewDB(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := gormdb.Close(db); err != nil {
			log.Error("关闭数据库连接失败", "error", err)
		}
	}
	return db, cleanup, nil
}

// provideLedgerConfig 从全局配置中提取账本配置
// ledger.New只需要业务阈值，Wire无法自动从Config中取字段
func provideLedgerConfig(cfg *config.Config) ledger.Config {
	return ledger.Config{
		LowStockThreshold: cfg.Ledger.LowStockThreshold,
		RecentSalesLimit:  cfg.Ledger.RecentSalesLimit,
	}
}

// provideEngine 创建Gin引擎并注册路由
func provideEngine(cfg *config.Config, log *slog.Logger, h *router.Handlers) *gin.Engine {
	return router.New(cfg.Server.Mode, log, h)
}
