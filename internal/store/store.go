// Package store provides transactional access to the relational store
// backing the GraphQL API. Each inbound operation runs inside its own
// session obtained from WithSession.
package store

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tsaacod/Tugas3-EAI/internal/models"
)

// Store wraps the long-lived database handle. It is safe for use from
// multiple goroutines; isolation between concurrent operations comes
// from the per-operation sessions, not from the handle itself.
type Store struct {
	db *gorm.DB
}

// Open connects to the database named by databaseURL. DSNs starting
// with postgres:// (or postgresql://) use the postgres driver;
// everything else is treated as a sqlite path, matching the default
// local setup.
func Open(databaseURL string) (*Store, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if dialector.Name() == "sqlite" {
		// Pooled sqlite connections each see a private :memory: database
		// and the foreign_keys pragma is per-connection, so keep the pool
		// at a single connection.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
		if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("open store: enable foreign keys: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Migrate creates the users and posts tables if they do not exist,
// including the posts.author_id foreign key. It is idempotent and is
// run once at process start.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&models.User{}, &models.Post{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// WithSession runs fn inside a transaction scoped to a single
// operation. The transaction is committed when fn returns nil and
// rolled back when fn returns an error or panics; either way the
// session is released. Sessions must not be nested.
func (s *Store) WithSession(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return s.db.WithContext(ctx).Transaction(fn)
}
