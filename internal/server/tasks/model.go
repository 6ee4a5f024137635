package tasks

import "time"

// Task is a single to-do record owned by one account. Deadline and Category
// are optional and may be absent.
type Task struct {
	ID        string
	UserID    string
	Title     string
	Completed bool
	Priority  int
	Deadline  *time.Time
	Category  *string
	CreatedAt time.Time
}

// Patch describes a partial update. Nil fields are left unchanged.
type Patch struct {
	Title     *string
	Completed *bool
	Priority  *int
	Deadline  *time.Time
	Category  *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Completed == nil && p.Priority == nil &&
		p.Deadline == nil && p.Category == nil
}
