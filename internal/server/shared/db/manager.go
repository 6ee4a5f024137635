// Package db wires the persistence backend: it owns the database handle,
// runs migrations, and hands out the per-entity repositories.
package db

import (
	"context"
	"database/sql"

	"github.com/mkarpenko/tasktrack/internal/server/accounts"
	"github.com/mkarpenko/tasktrack/internal/server/tasks"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Accounts() accounts.Repository
	Tasks() tasks.Repository
}
