package gormdb

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/babystore/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架，按database.driver选择方言（默认sqlite本地文件）
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	if log == nil {
		log = slog.Default()
	}

	// 1. 选择方言
	dialector, err := openDialector(cfg.Database)
	if err != nil {
		return nil, err
	}

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logLevel),
		NowFunc: time.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	maxOpen := cfg.Database.MaxOpenConns
	if cfg.Database.Driver == config.DriverSQLite && maxOpen <= 0 {
		// sqlite同一时间只允许一个写者，单连接让所有写操作串行
		maxOpen = 1
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Info("数据库连接成功", "driver", cfg.Database.Driver)

	// 6. 自动迁移表结构
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// Close 关闭底层连接池
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite, "":
		return sqlite.Open(cfg.DSN()), nil
	case config.DriverMySQL:
		return mysql.Open(cfg.DSN()), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %s", cfg.Driver)
	}
}

// autoMigrate 自动迁移表结构
// 注意：这里使用GORM的模型定义（带tag），不是domain层的实体
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&ProductModel{},
		&CustomerModel{},
		&SaleModel{},
	)
}

// ProductModel GORM商品模型
// 设计说明:
// 1. 价格使用decimal(10,2)存储，Go侧用shopspring/decimal读写
// 2. name建普通索引：销售记账按名称查找商品
type ProductModel struct {
	ID        uint            `gorm:"primaryKey"`
	Name      string          `gorm:"index;size:200;not null;comment:商品名称"`
	Category  string          `gorm:"size:50;comment:分类"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:单价"`
	Stock     int             `gorm:"not null;comment:库存数量"`
	Supplier  string          `gorm:"size:100;comment:供应商"`
	Size      string          `gorm:"size:50;comment:尺码"`
	AgeRange  string          `gorm:"size:50;comment:适用月龄"`
	Color     string          `gorm:"size:50;comment:颜色"`
	Material  string          `gorm:"size:100;comment:材质"`
	Condition string          `gorm:"size:20;comment:成色"`
	CreatedAt time.Time       `gorm:"comment:创建时间"`
	UpdatedAt time.Time       `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (ProductModel) TableName() string {
	return "products"
}

// CustomerModel GORM顾客模型
type CustomerModel struct {
	ID             uint            `gorm:"primaryKey"`
	Name           string          `gorm:"index;size:100;not null;comment:顾客名称"`
	Email          string          `gorm:"size:100;comment:邮箱"`
	Phone          string          `gorm:"size:50;comment:电话"`
	TotalPurchases decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:累计消费"`
	BabyName       string          `gorm:"size:100;comment:宝宝名字"`
	BabyAge        string          `gorm:"size:50;comment:宝宝月龄"`
	CreatedAt      time.Time       `gorm:"comment:创建时间"`
	UpdatedAt      time.Time       `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CustomerModel) TableName() string {
	return "customers"
}

// SaleModel GORM销售模型
// 教学要点:
// 1. 按名称冗余保存顾客和商品(不建外键)，删除商品不影响历史销售
// 2. 只追加，没有UpdatedAt
type SaleModel struct {
	ID           uint            `gorm:"primaryKey"`
	Date         string          `gorm:"index;size:10;not null;comment:销售日期(YYYY-MM-DD)"`
	CustomerName string          `gorm:"size:100;not null;comment:顾客名称"`
	ProductName  string          `gorm:"size:200;not null;comment:商品名称"`
	Quantity     int             `gorm:"not null;comment:数量"`
	Total        decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:金额"`
	Size         string          `gorm:"size:50;comment:尺码"`
	CreatedAt    time.Time       `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (SaleModel) TableName() string {
	return "sales"
}
