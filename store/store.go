package store

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"restaurant-orders-api/config"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store owns the pooled connection to the relational store. It is created once
// per process and handed to repositories and services explicitly.
type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite database named by cfg.DBSource with foreign keys
// enforced and a busy timeout for writer contention.
func Open(cfg *config.Config) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn(cfg.DBSource)), &gorm.Config{
		Logger:  logger.Default.LogMode(logLevel(cfg.DBLogLevel)),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxOpenConns)

	return &Store{db: db}, nil
}

func dsn(source string) string {
	sep := "?"
	if strings.Contains(source, "?") {
		sep = "&"
	}
	return source + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func logLevel(name string) logger.LogLevel {
	switch strings.ToLower(name) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// DB returns the pool bound to ctx. Use it for single-statement reads.
func (s *Store) DB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// Transaction runs fn inside one transaction. Any error returned by fn rolls
// the transaction back and is returned as is; begin and commit failures come
// back as *StorageError.
func (s *Store) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	var fnErr error
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(tx)
		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	return Wrap("transaction", err)
}

// Exec runs a mutating statement and reports the number of affected rows.
func (s *Store) Exec(ctx context.Context, stmt string, args ...any) (int64, error) {
	res := s.db.WithContext(ctx).Exec(stmt, args...)
	if res.Error != nil {
		return 0, Wrap("exec", res.Error)
	}
	return res.RowsAffected, nil
}

// Query runs a read-only statement and scans the rows into dest, which is
// usually a pointer to a slice of structs whose fields match column names.
func (s *Store) Query(ctx context.Context, dest any, stmt string, args ...any) error {
	return Wrap("query", s.db.WithContext(ctx).Raw(stmt, args...).Scan(dest).Error)
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return Wrap("ping", err)
	}
	return Wrap("ping", sqlDB.PingContext(ctx))
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	log.Println("closing database connection")
	return sqlDB.Close()
}
