package service

import (
	"context"

	"github.com/google/uuid"

	"todo_api/internal/common"
	"todo_api/internal/domain/model"
	"todo_api/internal/domain/repository"
)

// TodoService orchestrates todo CRUD. Every operation takes the
// authenticated user id and stays inside that user's todo set; the
// repositories fold the ownership check into each query.
type TodoService struct {
	todoRepo repository.TodoRepository
}

func NewTodoService(todoRepo repository.TodoRepository) *TodoService {
	return &TodoService{todoRepo: todoRepo}
}

type CreateTodoRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type UpdateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

func (s *TodoService) List(ctx context.Context, userID string) ([]model.Todo, error) {
	return s.todoRepo.ListByUser(ctx, userID)
}

func (s *TodoService) Get(ctx context.Context, id, userID string) (*model.Todo, error) {
	return s.todoRepo.FindByID(ctx, id, userID)
}

func (s *TodoService) Create(ctx context.Context, userID string, req CreateTodoRequest) (*model.Todo, error) {
	if req.Title == "" {
		return nil, common.Errorf("title is required: %w", common.ErrValidation)
	}

	todo := &model.Todo{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.todoRepo.Create(ctx, todo); err != nil {
		return nil, err
	}
	return todo, nil
}

func (s *TodoService) Update(ctx context.Context, id, userID string, req UpdateTodoRequest) (*model.Todo, error) {
	if req.Title != nil && *req.Title == "" {
		return nil, common.Errorf("title cannot be empty: %w", common.ErrValidation)
	}

	patch := repository.TodoPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
	return s.todoRepo.Update(ctx, id, userID, patch)
}

func (s *TodoService) Delete(ctx context.Context, id, userID string) error {
	return s.todoRepo.Delete(ctx, id, userID)
}
