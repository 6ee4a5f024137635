package tasks

import (
	"context"
)

// Repository is the task store. Every mutating operation carries the owner
// id in its predicate so that ownership is enforced by the store call
// itself, not by a separate check.
type Repository interface {
	Create(ctx context.Context, task *Task) (*Task, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Task, error)

	// UpdateOwned applies patch to the task only when it belongs to ownerID.
	// A foreign or absent id yields common.ErrorNotFound.
	UpdateOwned(ctx context.Context, id, ownerID string, patch Patch) (*Task, error)

	// DeleteOwned removes the task only when it belongs to ownerID and
	// returns the number of rows affected (0 for foreign or absent ids).
	DeleteOwned(ctx context.Context, id, ownerID string) (int64, error)
}
