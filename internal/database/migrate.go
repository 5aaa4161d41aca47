package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"dreamhouse/internal/config"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// MigrationsFor returns the migration files of one driver.
func MigrationsFor(driver string) (fs.FS, error) {
	return fs.Sub(migrationsFS, "migrations/"+driver)
}

// Migrate applies all pending up migrations.
// It opens its own connection because closing a migrate instance closes the database under it.
func Migrate(ctx context.Context, cfg *config.DatabaseConfig, logger *zap.Logger) error {
	db, err := Open(ctx, cfg)
	if err != nil {
		return err
	}

	var driver migratedb.Driver
	switch cfg.Driver {
	case config.DriverPostgres:
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	default:
		driver, err = sqlite.WithInstance(db, &sqlite.Config{})
	}
	if err != nil {
		db.Close()
		return fmt.Errorf("create migration driver: %w", err)
	}

	files, err := MigrationsFor(cfg.Driver)
	if err != nil {
		driver.Close()
		return fmt.Errorf("load embedded migrations: %w", err)
	}
	src, err := iofs.New(files, ".")
	if err != nil {
		driver.Close()
		return fmt.Errorf("create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, cfg.Driver, driver)
	if err != nil {
		driver.Close()
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	logger.Info("migrations applied",
		zap.String("driver", cfg.Driver),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}
