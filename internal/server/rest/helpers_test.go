package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mkarpenko/tasktrack/internal/common"
	"github.com/mkarpenko/tasktrack/internal/logging"
	"github.com/mkarpenko/tasktrack/internal/server/accounts"
	"github.com/mkarpenko/tasktrack/internal/server/config"
	"github.com/mkarpenko/tasktrack/internal/server/tasks"
)

const testSecret = "test-secret"

// --- in-memory repositories ---

type memAccountsRepo struct {
	mu      sync.Mutex
	byID    map[string]*accounts.Account
	byEmail map[string]*accounts.Account
}

func newMemAccountsRepo() *memAccountsRepo {
	return &memAccountsRepo{
		byID:    make(map[string]*accounts.Account),
		byEmail: make(map[string]*accounts.Account),
	}
}

func (r *memAccountsRepo) Create(ctx context.Context, a *accounts.Account) (*accounts.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[a.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	r.byID[a.ID] = a
	r.byEmail[a.Email] = a
	return a, nil
}

func (r *memAccountsRepo) GetByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.byEmail[email]; ok {
		return a, nil
	}
	return nil, common.ErrorNotFound
}

func (r *memAccountsRepo) GetByID(ctx context.Context, id string) (*accounts.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.byID[id]; ok {
		return a, nil
	}
	return nil, common.ErrorNotFound
}

type memTasksRepo struct {
	mu   sync.Mutex
	byID map[string]*tasks.Task
	seq  int
}

func newMemTasksRepo() *memTasksRepo {
	return &memTasksRepo{byID: make(map[string]*tasks.Task)}
}

func (r *memTasksRepo) Create(ctx context.Context, task *tasks.Task) (*tasks.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task.ID = uuid.NewString()
	r.seq++
	task.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	r.byID[task.ID] = task
	return task, nil
}

func (r *memTasksRepo) ListByOwner(ctx context.Context, ownerID string) ([]*tasks.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*tasks.Task, 0)
	for _, task := range r.byID {
		if task.UserID == ownerID {
			result = append(result, task)
		}
	}
	// newest first
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].CreatedAt.After(result[i].CreatedAt) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result, nil
}

func (r *memTasksRepo) UpdateOwned(ctx context.Context, id, ownerID string, patch tasks.Patch) (*tasks.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.byID[id]
	if !ok || task.UserID != ownerID {
		return nil, common.ErrorNotFound
	}
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Deadline != nil {
		task.Deadline = patch.Deadline
	}
	if patch.Category != nil {
		task.Category = patch.Category
	}
	return task, nil
}

func (r *memTasksRepo) DeleteOwned(ctx context.Context, id, ownerID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.byID[id]
	if !ok || task.UserID != ownerID {
		return 0, nil
	}
	delete(r.byID, id)
	return 1, nil
}

// --- server and request helpers ---

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{SecretKey: testSecret, TokenValidityDuration: time.Hour}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	return NewServer(":0", logger,
		accounts.NewService(newMemAccountsRepo(), cfg),
		tasks.NewService(newMemTasksRepo()),
		testSecret)
}

func doRequest(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func registerAccount(t *testing.T, s *Server, email, password string) (id, token string) {
	t.Helper()

	w := doRequest(t, s, http.MethodPost, "/auth/register", "", map[string]string{
		"email": email, "password": password,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d (%s)", email, w.Code, w.Body.String())
	}

	var resp authResponse
	decodeBody(t, w, &resp)
	return resp.User.ID, resp.Token
}
