package database

import (
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Handle owns the single sqlite connection shared by every store. A plain
// mutex serializes all store operations so the foreground caller and the
// periodic backup copy never interleave: at most one store operation is in
// flight at any time.
type Handle struct {
	mu   sync.Mutex
	path string
	sqlx *sqlx.DB
	gorm *gorm.DB
}

// Open opens (creating if needed) the database file and prepares the shared
// connection. The connection pool is pinned to a single connection; the
// serializing lock lives in the Handle, not in sqlite.
func Open(path string) (*Handle, error) {
	dbx, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	dbx.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := dbx.Exec(pragma); err != nil {
			_ = dbx.Close()
			return nil, fmt.Errorf("failed to apply %q: %w", pragma, err)
		}
	}

	gormDB, err := gorm.Open(sqlite.New(sqlite.Config{Conn: dbx.DB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = dbx.Close()
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return &Handle{path: path, sqlx: dbx, gorm: gormDB}, nil
}

func (h *Handle) Lock()   { h.mu.Lock() }
func (h *Handle) Unlock() { h.mu.Unlock() }

// DB returns the shared gorm handle. Callers must hold the Handle lock for
// the duration of the operation.
func (h *Handle) DB() *gorm.DB {
	return h.gorm
}

func (h *Handle) Path() string {
	return h.path
}

// Checkpoint flushes the WAL into the main database file so a plain file
// copy of Path() is a complete snapshot. Caller must hold the lock.
func (h *Handle) Checkpoint() error {
	if _, err := h.sqlx.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return fmt.Errorf("wal checkpoint failed: %w", err)
	}
	return nil
}

// IntegrityCheck runs sqlite's quick_check. Caller must hold the lock.
func (h *Handle) IntegrityCheck() error {
	var result string
	if err := h.sqlx.Get(&result, "PRAGMA quick_check"); err != nil {
		return fmt.Errorf("integrity check query failed: %w", err)
	}
	if result != "ok" {
		return fmt.Errorf("integrity check reported: %s", result)
	}
	return nil
}

func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sqlx.Close()
}
