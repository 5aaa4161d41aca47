package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config dreamhouse（HTTP API）配置
type Config struct {
	HTTP struct {
		Addr string `env:"HTTP_ADDR" envDefault:":5000"`
	}
	DBEnabled bool `env:"DB_ENABLED" envDefault:"true"`
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     struct {
		TTL time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	}
	MQTT      MQTTConfig
	RateLimit struct {
		RPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"10"`
		Burst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
	}
	Log struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
	}
}

// DatabaseConfig 数据库配置
// Driver selects the engine: sqlite keeps everything in Path, postgres uses the host fields.
type DatabaseConfig struct {
	Driver      string `env:"DB_DRIVER" envDefault:"sqlite"`
	Path        string `env:"DB_PATH" envDefault:"data/designs.db"`
	Host        string `env:"DB_HOST" envDefault:"localhost"`
	Port        int    `env:"DB_PORT" envDefault:"5432"`
	User        string `env:"DB_USER" envDefault:"postgres"`
	Password    string `env:"DB_PASSWORD" envDefault:"postgres"`
	Database    string `env:"DB_NAME" envDefault:"dreamhouse"`
	SSLMode     string `env:"DB_SSLMODE" envDefault:"disable"`
	MaxConns    int    `env:"DB_MAX_CONNS" envDefault:"10"`
	MaxIdle     int    `env:"DB_MAX_IDLE" envDefault:"5"`
	AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
}

// RedisConfig Redis配置
type RedisConfig struct {
	Enabled  bool   `env:"REDIS_ENABLED" envDefault:"false"`
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// MQTTConfig MQTT配置（用于发布 design saved 事件，默认禁用）
type MQTTConfig struct {
	Enabled  bool   `env:"MQTT_ENABLED" envDefault:"false"`
	Broker   string `env:"MQTT_BROKER" envDefault:"tcp://localhost:1883"`
	ClientID string `env:"MQTT_CLIENT_ID" envDefault:"dreamhouse"`
	Username string `env:"MQTT_USERNAME"`
	Password string `env:"MQTT_PASSWORD"`
	Topic    string `env:"MQTT_TOPIC" envDefault:"dreamhouse/designs/saved"`
	QoS      byte   `env:"MQTT_QOS" envDefault:"1"`
}

// GetDSN 获取数据库连接字符串
func (c *DatabaseConfig) GetDSN() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
	}
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", c.Path)
}

// Validate rejects driver names we cannot open.
func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverSQLite, DriverPostgres:
		return nil
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want %q or %q)", c.Driver, DriverSQLite, DriverPostgres)
	}
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.DBEnabled {
		if err := cfg.Database.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
