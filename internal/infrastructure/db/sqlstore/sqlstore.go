// Package sqlstore is the relational credential and catalog store. MySQL is
// the production backend; SQLite serves local runs and tests with the same
// queries.
package sqlstore

import (
	"context"
	"embed"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/araselthenilo/latihan-backend-uts/internal/pkg/config"
)

const defaultTimeout = 10 * time.Second

//go:embed migrations/mysql/*.sql migrations/sqlite/*.sql
var migrations embed.FS

// Connect opens the pool described by cfg and verifies it with a ping.
func Connect(ctx context.Context, cfg config.DBConfig) (*sqlx.DB, error) {
	driver, dsn, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}
	return db, nil
}

func dataSource(cfg config.DBConfig) (driver, dsn string, err error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		return "mysql", mysqlDSN(cfg), nil
	case config.DriverSQLite:
		return "sqlite", sqliteDSN(cfg.Path), nil
	default:
		return "", "", fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

func mysqlDSN(cfg config.DBConfig) string {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.DBName = cfg.Name
	mc.ParseTime = true
	mc.Loc = time.UTC
	// Report matched rather than changed rows so an idempotent UPDATE is not
	// mistaken for a missing row.
	mc.ClientFoundRows = true
	mc.Params = map[string]string{"charset": "utf8mb4"}
	return mc.FormatDSN()
}

func sqliteDSN(path string) string {
	q := url.Values{}
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "synchronous(NORMAL)")
	q.Add("_pragma", "foreign_keys(1)")
	q.Set("_time_format", "sqlite")
	return path + "?" + q.Encode()
}

// Migrate applies every pending migration for the pool's driver.
func Migrate(db *sqlx.DB) error {
	dialect, dir, err := migrationSet(db.DriverName())
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("setting dialect: %w", err)
	}
	if err := goose.Up(db.DB, dir); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

func migrationSet(driverName string) (dialect, dir string, err error) {
	switch driverName {
	case "mysql":
		return "mysql", "migrations/mysql", nil
	case "sqlite":
		return "sqlite3", "migrations/sqlite", nil
	default:
		return "", "", fmt.Errorf("no migrations for driver %q", driverName)
	}
}
