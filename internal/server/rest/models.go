package rest

import (
	"time"

	"github.com/mkarpenko/tasktrack/internal/server/accounts"
	"github.com/mkarpenko/tasktrack/internal/server/tasks"
)

// Request bodies are explicit per-endpoint structs; the JSON decoder is
// configured to reject unknown fields.

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createTaskRequest struct {
	Title     string     `json:"title" binding:"required"`
	Completed *bool      `json:"completed"`
	Priority  *int       `json:"priority"`
	Deadline  *time.Time `json:"deadline"`
	Category  *string    `json:"category"`
}

type updateTaskRequest struct {
	Title     *string    `json:"title"`
	Completed *bool      `json:"completed"`
	Priority  *int       `json:"priority"`
	Deadline  *time.Time `json:"deadline"`
	Category  *string    `json:"category"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// userResponse is the public account summary. The password digest is not
// part of the type, so it can never leak through serialization.
type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type userDetailResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type taskResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Title     string     `json:"title"`
	Completed bool       `json:"completed"`
	Priority  int        `json:"priority"`
	Deadline  *time.Time `json:"deadline"`
	Category  *string    `json:"category"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toUserResponse(a *accounts.Account) userResponse {
	return userResponse{ID: a.ID, Email: a.Email}
}

func toTaskResponse(t *tasks.Task) taskResponse {
	return taskResponse{
		ID:        t.ID,
		UserID:    t.UserID,
		Title:     t.Title,
		Completed: t.Completed,
		Priority:  t.Priority,
		Deadline:  t.Deadline,
		Category:  t.Category,
		CreatedAt: t.CreatedAt,
	}
}
