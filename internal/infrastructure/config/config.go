package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 全局配置结构
// 设计说明：使用Viper管理配置，支持YAML文件、.env文件、环境变量覆盖
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	Mode         string        `mapstructure:"mode"` // debug | release | test
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// 支持的数据库驱动
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // sqlite | mysql | postgres
	Path            string        `mapstructure:"path"`   // sqlite文件路径
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	Charset         string        `mapstructure:"charset"`
	Loc             string        `mapstructure:"loc"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN 按驱动生成连接字符串
// - sqlite:   store.db?_pragma=foreign_keys(1)
// - mysql:    user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
// - postgres: host=... port=... user=... password=... dbname=... sslmode=disable
func (d DatabaseConfig) DSN() string {
	switch d.Driver {
	case DriverMySQL:
		// loc参数需要URL编码（Asia/Shanghai → Asia%2FShanghai）
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=%s",
			d.User, d.Password, d.Host, d.Port, d.DBName, d.Charset, url.QueryEscape(d.Loc))
	case DriverPostgres:
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
	default:
		return d.Path
	}
}

type LogConfig struct {
	Level        string `mapstructure:"level"`  // debug | info | warn | error
	Format       string `mapstructure:"format"` // text | json
	Output       string `mapstructure:"output"` // stdout | stderr | /path/to/file
	EnableCaller bool   `mapstructure:"enable_caller"`
}

type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"` // OTLP gRPC地址，如localhost:4317
	ServiceName string `mapstructure:"service_name"`
}

// LedgerConfig 账本业务配置
// 教学要点：业务配置与技术配置分离
type LedgerConfig struct {
	LowStockThreshold int  `mapstructure:"low_stock_threshold"` // 库存<=该值计入低库存
	RecentSalesLimit  int  `mapstructure:"recent_sales_limit"`  // 仪表盘展示的最近销售条数
	SeedSampleData    bool `mapstructure:"seed_sample_data"`    // 空库时写入示例数据
}

// envPrefix 环境变量前缀，如BABYSTORE_DATABASE_DRIVER → database.driver
const envPrefix = "BABYSTORE"

// Load 加载配置
// 支持：
// 1. 先加载当前目录下的.env（不存在时忽略）
// 2. 默认加载config/config.yaml，配置文件不存在时全部使用默认值
// 3. 通过环境变量BABYSTORE_ENV指定环境（如config.prod.yaml）
// 4. 环境变量覆盖（如BABYSTORE_DATABASE_PATH）
func Load(configPaths ...string) (*Config, error) {
	_ = godotenv.Load()

	if len(configPaths) == 0 {
		configPaths = []string{"./config", "."}
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	if env := os.Getenv(envPrefix + "_ENV"); env != "" {
		v.SetConfigName("config." + env)
	}
	v.SetConfigType("yaml")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults 注册所有配置项的默认值
// 注意：AutomaticEnv只对viper已知的key生效，所以每个key都要有默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)

	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.path", "babystore.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "babystore")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.loc", "Local")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 1)
	v.SetDefault("database.max_idle_conns", 1)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.enable_caller", false)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "localhost:4317")
	v.SetDefault("tracing.service_name", "babystore")

	v.SetDefault("ledger.low_stock_threshold", 5)
	v.SetDefault("ledger.recent_sales_limit", 5)
	v.SetDefault("ledger.seed_sample_data", true)
}

// validate 配置校验
func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("无效的服务端口: %d", cfg.Server.Port)
	}

	switch cfg.Database.Driver {
	case DriverSQLite:
		if cfg.Database.Path == "" {
			return fmt.Errorf("sqlite数据库路径不能为空")
		}
	case DriverMySQL, DriverPostgres:
		if cfg.Database.Host == "" || cfg.Database.DBName == "" {
			return fmt.Errorf("%s数据库地址和库名不能为空", cfg.Database.Driver)
		}
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", cfg.Database.Driver)
	}

	if cfg.Ledger.LowStockThreshold < 0 {
		return fmt.Errorf("低库存阈值不能为负数: %d", cfg.Ledger.LowStockThreshold)
	}
	if cfg.Ledger.RecentSalesLimit < 0 {
		return fmt.Errorf("最近销售条数不能为负数: %d", cfg.Ledger.RecentSalesLimit)
	}

	return nil
}
