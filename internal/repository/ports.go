package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Database . Database
type Database interface {
	MigrateTable(tbl ...any) error
	Upsert(ctx context.Context, conflictColumn string, record any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAllBy(ctx context.Context, column string, values any, orderBy string, entity any) error
}
