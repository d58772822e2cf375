package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

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

func (f *PostgresDB) Create(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// CreateIgnore inserts a record, relying on the table's unique constraint to
// discard duplicates atomically. It reports whether a row was actually written.
func (f *PostgresDB) CreateIgnore(ctx context.Context, record any, conflictColumns ...string) (bool, error) {
	cols := make([]clause.Column, 0, len(conflictColumns))
	for _, c := range conflictColumns {
		cols = append(cols, clause.Column{Name: c})
	}

	tx := f.DB.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: cols, DoNothing: true}).
		Create(record)
	if tx.Error != nil {
		return false, fmt.Errorf("insert record: %w", tx.Error)
	}

	return tx.RowsAffected > 0, nil
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

// FindWhere loads every row matching the condition map, optionally preloading
// associations, ordered by the given clause.
func (f *PostgresDB) FindWhere(ctx context.Context, dest any, order string, conds map[string]any, preloads ...string) error {
	tx := f.DB.WithContext(ctx)
	for _, preload := range preloads {
		tx = tx.Preload(preload)
	}
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Where(conds).Find(dest).Error; err != nil {
		return fmt.Errorf("finding records: %w", err)
	}
	return nil
}

// SearchPage runs a case-insensitive substring match over the given columns,
// scoped by conds, and fills dest with one page of results. Returns the total
// number of matches across all pages.
func (f *PostgresDB) SearchPage(ctx context.Context, dest any, conds map[string]any, columns []string, term string, order string, offset, limit int) (int64, error) {
	like := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		like = append(like, fmt.Sprintf("%s ILIKE ?", col))
		args = append(args, "%"+term+"%")
	}

	base := f.DB.WithContext(ctx).Model(dest).Where(conds).Where(strings.Join(like, " OR "), args...)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("counting matches: %w", err)
	}

	tx := base
	if order != "" {
		tx = tx.Order(order)
	}
	if err := tx.Offset(offset).Limit(limit).Find(dest).Error; err != nil {
		return 0, fmt.Errorf("searching records: %w", err)
	}

	return total, nil
}

// UpdateWhere applies updates to every row matching conds and returns the
// number of rows touched. The condition set is evaluated inside a single
// UPDATE, so two concurrent callers cannot both claim the same row.
func (f *PostgresDB) UpdateWhere(ctx context.Context, model any, conds map[string]any, updates map[string]any) (int64, error) {
	tx := f.DB.WithContext(ctx).Model(model).Where(conds).Updates(updates)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating records: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}
