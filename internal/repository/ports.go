package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	Create(ctx context.Context, record any) error
	CreateIgnore(ctx context.Context, record any, conflictColumns ...string) (bool, error)
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	FindWhere(ctx context.Context, dest any, order string, conds map[string]any, preloads ...string) error
	SearchPage(ctx context.Context, dest any, conds map[string]any, columns []string, term string, order string, offset, limit int) (int64, error)
	UpdateWhere(ctx context.Context, model any, conds map[string]any, updates map[string]any) (int64, error)
}
