package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_DefaultValues(t *testing.T) {
	// 清除环境变量
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.HTTP.Addr != ":5000" {
		t.Errorf("Expected HTTP_ADDR default ':5000', got '%s'", cfg.HTTP.Addr)
	}

	if !cfg.DBEnabled {
		t.Errorf("Expected DB_ENABLED default true")
	}

	if cfg.Database.Driver != DriverSQLite {
		t.Errorf("Expected DB_DRIVER default 'sqlite', got '%s'", cfg.Database.Driver)
	}

	if cfg.Database.Path != "data/designs.db" {
		t.Errorf("Expected DB_PATH default 'data/designs.db', got '%s'", cfg.Database.Path)
	}

	if !cfg.Database.AutoMigrate {
		t.Errorf("Expected DB_AUTO_MIGRATE default true")
	}

	if cfg.Redis.Enabled {
		t.Errorf("Expected REDIS_ENABLED default false")
	}

	if cfg.Cache.TTL != 10*time.Minute {
		t.Errorf("Expected CACHE_TTL default 10m, got %s", cfg.Cache.TTL)
	}

	if cfg.MQTT.Topic != "dreamhouse/designs/saved" {
		t.Errorf("Expected MQTT_TOPIC default, got '%s'", cfg.MQTT.Topic)
	}

	if cfg.RateLimit.RPS != 10 || cfg.RateLimit.Burst != 20 {
		t.Errorf("Expected rate limit 10/20, got %v/%d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	if cfg.Log.Level != "info" {
		t.Errorf("Expected LOG_LEVEL default 'info', got '%s'", cfg.Log.Level)
	}
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_NAME", "test-db")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("Expected HTTP_ADDR ':9090', got '%s'", cfg.HTTP.Addr)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("Expected DB_DRIVER 'postgres', got '%s'", cfg.Database.Driver)
	}
	if !cfg.Redis.Enabled {
		t.Errorf("Expected REDIS_ENABLED true")
	}
	if cfg.Cache.TTL != 30*time.Second {
		t.Errorf("Expected CACHE_TTL 30s, got %s", cfg.Cache.TTL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected LOG_LEVEL 'debug', got '%s'", cfg.Log.Level)
	}

	want := "host=test-host port=5432 user=postgres password=postgres dbname=test-db sslmode=disable"
	if got := cfg.Database.GetDSN(); got != want {
		t.Errorf("Expected DSN %q, got %q", want, got)
	}
}

func TestLoad_UnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	if _, err := Load(); err == nil {
		t.Fatalf("Expected error for unsupported driver")
	}
}

func TestGetDSN_SQLite(t *testing.T) {
	c := DatabaseConfig{Driver: DriverSQLite, Path: "/tmp/x.db"}
	want := "file:/tmp/x.db?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	if got := c.GetDSN(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
