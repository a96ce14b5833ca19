package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	DB *gorm.DB
}

// NewPostgresDB opens a gorm connection and configures the pool.
func NewPostgresDB(dsn string, maxOpenConns int, logg *zap.SugaredLogger) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("get sql db conn: %w", err)
	}
	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxOpenConns)
	}
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	logg.Infow("database connection established",
		"max_open_conns", maxOpenConns,
	)

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Upsert inserts record or, when a row with the same conflict column already
// exists, overwrites every non primary key column.
func (f *PostgresDB) Upsert(ctx context.Context, conflictColumn string, record any) error {
	err := f.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: conflictColumn}},
			UpdateAll: true,
		}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("upsert on %q: %w", conflictColumn, err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// GetAllBy loads every row whose column equals one of values, newest first
// when orderBy is set.
func (f *PostgresDB) GetAllBy(ctx context.Context, column string, values any, orderBy string, entity any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), values)
	if orderBy != "" {
		tx = tx.Order(orderBy)
	}
	if err := tx.Find(entity).Error; err != nil {
		return fmt.Errorf("getting records by %q: %w", column, err)
	}
	return nil
}

// Ping checks that the database still answers.
func (f *PostgresDB) Ping(ctx context.Context) error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (f *PostgresDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
