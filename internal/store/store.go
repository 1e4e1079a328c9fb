package store

import (
	"context"
	"fmt"
	"time"

	"github.com/go-authgate/tokengate/internal/config"
	"github.com/go-authgate/tokengate/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Store struct {
	db *gorm.DB
}

// New opens the database for the given driver and migrates the token schema
func New(ctx context.Context, driver, dsn string) (*Store, error) {
	dialector, err := GetDialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if driver == config.DatabaseDriverSQLite && dsn == ":memory:" {
		// each pooled connection would otherwise see its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.WithContext(ctx).AutoMigrate(&models.Token{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

// CreateToken inserts a single token row. The ID is assigned on insert.
func (s *Store) CreateToken(ctx context.Context, t *models.Token) error {
	return wrapStorage("create token", s.db.WithContext(ctx).Create(t).Error)
}

// ListActiveTokens returns the user's tokens with expires_at strictly after now,
// newest first. Rows created in the same instant come back in reverse insertion order.
func (s *Store) ListActiveTokens(
	ctx context.Context,
	userID string,
	now time.Time,
) ([]models.Token, error) {
	tokens := []models.Token{}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND expires_at > ?", userID, now.UTC()).
		Order("created_at DESC").
		Order("id DESC").
		Find(&tokens).Error
	if err != nil {
		return nil, wrapStorage("list tokens", err)
	}
	return tokens, nil
}

// CountActiveTokens counts tokens across all users that are active at now
func (s *Store) CountActiveTokens(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Token{}).
		Where("expires_at > ?", now.UTC()).
		Count(&count).Error
	if err != nil {
		return 0, wrapStorage("count tokens", err)
	}
	return count, nil
}

// Health pings the underlying connection pool
func (s *Store) Health(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
