package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DBConfig chứa thông tin cấu hình để mở SQLite database
type DBConfig struct {
	// Path tới database file. ":memory:" tạo database trong RAM.
	Path string

	// BusyTimeout: thời gian chờ khi file đang bị lock bởi writer khác
	BusyTimeout time.Duration
}

// SQLiteDB là wrapper quản lý database handle và lifecycle.
// Handle được mở một lần lúc startup và share cho mọi request;
// đóng lại khi application shutdown.
type SQLiteDB struct {
	DB     *sql.DB
	Config *DBConfig
}

// NewSQLiteDB tạo instance mới của SQLiteDB.
// Handle sẽ được mở khi Connect() được gọi.
func NewSQLiteDB(config *DBConfig) *SQLiteDB {
	return &SQLiteDB{
		Config: config,
		DB:     nil,
	}
}

// Connect mở database handle, apply pragmas và verify bằng ping.
// Gọi một lần lúc startup; lỗi ở đây là fatal cho application.
func (db *SQLiteDB) Connect(ctx context.Context) error {
	log.Println("[DATABASE] Opening SQLite database...")

	if db.Config.Path == "" {
		return fmt.Errorf("database path is empty")
	}

	if db.Config.Path != ":memory:" {
		dir := filepath.Dir(db.Config.Path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	handle, err := sql.Open("sqlite", db.Config.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite có single-writer model; một connection duy nhất được share
	// cho mọi request, các statement serialize qua nó.
	handle.SetMaxOpenConns(1)

	if err := db.applyPragmas(ctx, handle); err != nil {
		handle.Close()
		return err
	}

	if err := handle.PingContext(ctx); err != nil {
		handle.Close()
		return fmt.Errorf("database ping failed: %w", err)
	}

	db.DB = handle

	log.Println("[DATABASE] SQLite database opened successfully")
	return nil
}

func (db *SQLiteDB) applyPragmas(ctx context.Context, handle *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		fmt.Sprintf("PRAGMA busy_timeout = %d;", db.Config.BusyTimeout.Milliseconds()),
	}

	for _, stmt := range pragmas {
		if _, err := handle.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply pragma %q: %w", stmt, err)
		}
	}
	return nil
}

// Migrate đảm bảo books table tồn tại, tạo mới nếu chưa có.
// Idempotent - safe to call on every startup.
func (db *SQLiteDB) Migrate(ctx context.Context) error {
	if db.DB == nil {
		return fmt.Errorf("database is not initialized")
	}

	schema := `
CREATE TABLE IF NOT EXISTS books (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	author TEXT NOT NULL,
	price REAL NOT NULL
);
`

	if _, err := db.DB.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Println("[DATABASE] Schema migration completed")
	return nil
}

// HealthCheck verify database connectivity.
// Được gọi bởi health check endpoint.
func (db *SQLiteDB) HealthCheck(ctx context.Context) error {
	if db.DB == nil {
		return fmt.Errorf("database is not initialized")
	}

	healthCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.DB.PingContext(healthCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// Close đóng database handle và cleanup resources.
// Safe to call multiple times - subsequent calls là no-op.
func (db *SQLiteDB) Close() error {
	if db.DB == nil {
		log.Println("[DATABASE] Database is already closed or was never initialized")
		return nil
	}

	log.Println("[DATABASE] Closing database...")

	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	db.DB = nil

	log.Println("[DATABASE] Database closed successfully")
	return nil
}
