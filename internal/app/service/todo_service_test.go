package service

import (
	"context"
	"errors"
	"testing"

	"todo_api/internal/common"
	"todo_api/internal/domain/repository"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateTodoRequiresTitle(t *testing.T) {
	s := NewTodoService(repository.NewMemoryTodoRepository())
	_, err := s.Create(context.Background(), "user-1", CreateTodoRequest{Title: ""})
	if !errors.Is(err, common.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestCreateTodoDefaults(t *testing.T) {
	s := NewTodoService(repository.NewMemoryTodoRepository())
	todo, err := s.Create(context.Background(), "user-1", CreateTodoRequest{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if todo.Completed {
		t.Error("expected new todo to start incomplete")
	}
	if todo.UpdatedAt != nil {
		t.Error("expected no update timestamp on a fresh todo")
	}
	if todo.UserID != "user-1" {
		t.Errorf("owner = %q, want user-1", todo.UserID)
	}
}

func TestGetTodoIsOwnerScoped(t *testing.T) {
	s := NewTodoService(repository.NewMemoryTodoRepository())
	ctx := context.Background()
	todo, err := s.Create(ctx, "user-1", CreateTodoRequest{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := s.Get(ctx, todo.ID, "user-1"); err != nil {
		t.Errorf("owner get: %v", err)
	}
	// Another user with the correct id sees the same NotFound as a miss.
	if _, err := s.Get(ctx, todo.ID, "user-2"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("cross-user get error = %v, want ErrNotFound", err)
	}
}

func TestUpdateTodoPartial(t *testing.T) {
	s := NewTodoService(repository.NewMemoryTodoRepository())
	ctx := context.Background()
	todo, err := s.Create(ctx, "user-1", CreateTodoRequest{Title: "Buy milk", Description: strPtr("2 liters")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := s.Update(ctx, todo.ID, "user-1", UpdateTodoRequest{Completed: boolPtr(true)})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Completed {
		t.Error("expected completed to flip to true")
	}
	if updated.Title != "Buy milk" {
		t.Errorf("title changed to %q, want unchanged", updated.Title)
	}
	if updated.Description == nil || *updated.Description != "2 liters" {
		t.Error("expected description to be unchanged")
	}
	if updated.UpdatedAt == nil {
		t.Error("expected update timestamp to be set")
	}
}

func TestUpdateTodoRejectsEmptyTitle(t *testing.T) {
	s := NewTodoService(repository.NewMemoryTodoRepository())
	ctx := context.Background()
	todo, err := s.Create(ctx, "user-1", CreateTodoRequest{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Update(ctx, todo.ID, "user-1", UpdateTodoRequest{Title: strPtr("")}); !errors.Is(err, common.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestUpdateTodoCrossUserNotFound(t *testing.T) {
	s := NewTodoService(repository.NewMemoryTodoRepository())
	ctx := context.Background()
	todo, err := s.Create(ctx, "user-1", CreateTodoRequest{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Update(ctx, todo.ID, "user-2", UpdateTodoRequest{Completed: boolPtr(true)}); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestDeleteTodoTwice(t *testing.T) {
	s := NewTodoService(repository.NewMemoryTodoRepository())
	ctx := context.Background()
	todo, err := s.Create(ctx, "user-1", CreateTodoRequest{Title: "Buy milk"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.Delete(ctx, todo.ID, "user-1"); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := s.Delete(ctx, todo.ID, "user-1"); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("second delete error = %v, want ErrNotFound", err)
	}
}

func TestListTodosOnlyOwn(t *testing.T) {
	s := NewTodoService(repository.NewMemoryTodoRepository())
	ctx := context.Background()
	if _, err := s.Create(ctx, "user-1", CreateTodoRequest{Title: "Mine"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(ctx, "user-2", CreateTodoRequest{Title: "Theirs"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	todos, err := s.List(ctx, "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(todos) != 1 || todos[0].Title != "Mine" {
		t.Errorf("list = %+v, want exactly the caller's todo", todos)
	}
}
