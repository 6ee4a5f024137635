// Package tasks implements per-account task records. Ownership scoping is
// fused into the store predicates: a task belonging to another account is
// indistinguishable from a non-existent one to the caller.
package tasks

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkarpenko/tasktrack/internal/common"
)

// DefaultPriority is assigned when a create request omits the field.
const DefaultPriority = 1

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateParams carries the client-supplied fields for a new task. Nil
// Completed and Priority fall back to their defaults.
type CreateParams struct {
	Title     string
	Completed *bool
	Priority  *int
	Deadline  *time.Time
	Category  *string
}

func (s *Service) Create(ctx context.Context, ownerID string, params CreateParams) (*Task, error) {

	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, common.ErrorValidation
	}

	task := &Task{
		UserID:   ownerID,
		Title:    title,
		Priority: DefaultPriority,
		Deadline: params.Deadline,
		Category: params.Category,
	}
	if params.Completed != nil {
		task.Completed = *params.Completed
	}
	if params.Priority != nil {
		task.Priority = *params.Priority
	}

	task, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return task, nil
}

func (s *Service) List(ctx context.Context, ownerID string) ([]*Task, error) {

	result, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return result, nil
}

// Update applies patch to the task iff it belongs to ownerID. Foreign,
// absent, and syntactically invalid ids all come back as
// common.ErrorNotFound.
func (s *Service) Update(ctx context.Context, id, ownerID string, patch Patch) (*Task, error) {

	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}

	task, err := s.repo.UpdateOwned(ctx, id, ownerID, patch)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return task, nil
}

// Delete removes the task iff it belongs to ownerID. Deleting a foreign or
// absent id is not an error: the caller observes the same outcome either
// way.
func (s *Service) Delete(ctx context.Context, id, ownerID string) error {

	if _, err := uuid.Parse(id); err != nil {
		return nil
	}

	if _, err := s.repo.DeleteOwned(ctx, id, ownerID); err != nil {
		return common.ErrorInternal
	}

	return nil
}
