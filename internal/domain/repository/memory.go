package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"todo_api/internal/common"
	"todo_api/internal/domain/model"
)

// In-memory repository implementations backing tests and local development
// without a PostgreSQL instance. They enforce the same contracts as the pg
// implementations: unique emails, owner-scoped lookups, NotFound on misses.

type memoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]model.User
	byEmail map[string]string
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{
		byID:    make(map[string]model.User),
		byEmail: make(map[string]string),
	}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[user.Email]; exists {
		return common.Errorf("user with given email already exists: %w", common.ErrConflict)
	}
	user.CreatedAt = time.Now().UTC()
	r.byID[user.ID] = *user
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	user := r.byID[id]
	return &user, nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &user, nil
}

type memoryTodoRepository struct {
	mu    sync.RWMutex
	todos map[string]model.Todo
}

func NewMemoryTodoRepository() TodoRepository {
	return &memoryTodoRepository{todos: make(map[string]model.Todo)}
}

func (r *memoryTodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	todo.Completed = false
	todo.CreatedAt = time.Now().UTC()
	todo.UpdatedAt = nil
	r.todos[todo.ID] = *todo
	return nil
}

func (r *memoryTodoRepository) ListByUser(ctx context.Context, userID string) ([]model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	todos := []model.Todo{}
	for _, todo := range r.todos {
		if todo.UserID == userID {
			todos = append(todos, todo)
		}
	}
	sort.Slice(todos, func(i, j int) bool {
		return todos[i].CreatedAt.Before(todos[j].CreatedAt)
	})
	return todos, nil
}

func (r *memoryTodoRepository) FindByID(ctx context.Context, id, userID string) (*model.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	todo, ok := r.todos[id]
	if !ok || todo.UserID != userID {
		return nil, common.ErrNotFound
	}
	return &todo, nil
}

func (r *memoryTodoRepository) Update(ctx context.Context, id, userID string, patch TodoPatch) (*model.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	todo, ok := r.todos[id]
	if !ok || todo.UserID != userID {
		return nil, common.ErrNotFound
	}
	if patch.Title != nil {
		todo.Title = *patch.Title
	}
	if patch.Description != nil {
		todo.Description = patch.Description
	}
	if patch.Completed != nil {
		todo.Completed = *patch.Completed
	}
	now := time.Now().UTC()
	todo.UpdatedAt = &now
	r.todos[id] = todo
	return &todo, nil
}

func (r *memoryTodoRepository) Delete(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	todo, ok := r.todos[id]
	if !ok || todo.UserID != userID {
		return common.ErrNotFound
	}
	delete(r.todos, id)
	return nil
}
