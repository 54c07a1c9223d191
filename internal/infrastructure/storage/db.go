package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bossbot/backend/internal/infrastructure/config"
	_ "modernc.org/sqlite"
)

// GetDBPath 取得資料庫路徑
// 配置有指定路徑時用配置值，否則 <資料目錄>/boss.db
func GetDBPath(cfg *config.Config) string {
	if cfg != nil && cfg.DatabasePath != "" {
		return cfg.DatabasePath
	}
	return filepath.Join(config.GetDataDir(), "boss.db")
}

// OpenDB 開啟資料庫連線並初始化表結構
func OpenDB(cfg *config.Config) (*sql.DB, error) {
	dbPath := GetDBPath(cfg)

	// 確保目錄存在
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// 測試連線
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// initSchema 初始化表結構（冪等）
func initSchema(db *sql.DB) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS bosses (
		name TEXT PRIMARY KEY,
		location TEXT,
		respawn_minutes INTEGER,
		last_death TEXT,
		next_spawn TEXT,
		notify INTEGER DEFAULT 1
	);`

	if _, err := db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to create bosses table: %w", err)
	}

	return nil
}
