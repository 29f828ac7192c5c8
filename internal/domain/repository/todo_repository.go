package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todo_api/internal/common"
	"todo_api/internal/domain/model"
)

// TodoPatch carries the fields of a partial update. Nil fields keep their
// stored value.
type TodoPatch struct {
	Title       *string
	Description *string
	Completed   *bool
}

type TodoRepository interface {
	Create(ctx context.Context, todo *model.Todo) error
	ListByUser(ctx context.Context, userID string) ([]model.Todo, error)
	FindByID(ctx context.Context, id, userID string) (*model.Todo, error)
	Update(ctx context.Context, id, userID string, patch TodoPatch) (*model.Todo, error)
	Delete(ctx context.Context, id, userID string) error
}

type pgTodoRepository struct {
	db *sql.DB
}

func NewPgTodoRepository(db *sql.DB) TodoRepository {
	return &pgTodoRepository{db: db}
}

func (r *pgTodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	query := `INSERT INTO todos (id, user_id, title, description)
	          VALUES ($1, $2, $3, $4)
	          RETURNING completed, created_at`
	err := r.db.QueryRowContext(ctx, query, todo.ID, todo.UserID, todo.Title, todo.Description).
		Scan(&todo.Completed, &todo.CreatedAt)
	if err != nil {
		return fmt.Errorf("pgTodoRepository.Create: %w", err)
	}
	return nil
}

func (r *pgTodoRepository) ListByUser(ctx context.Context, userID string) ([]model.Todo, error) {
	query := `SELECT id, user_id, title, description, completed, created_at, updated_at
	          FROM todos WHERE user_id = $1
	          ORDER BY created_at ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("pgTodoRepository.ListByUser: %w", err)
	}
	defer rows.Close()

	todos := []model.Todo{}
	for rows.Next() {
		var todo model.Todo
		if err := rows.Scan(
			&todo.ID, &todo.UserID, &todo.Title, &todo.Description,
			&todo.Completed, &todo.CreatedAt, &todo.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("pgTodoRepository.ListByUser: %w", err)
		}
		todos = append(todos, todo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgTodoRepository.ListByUser: %w", err)
	}
	return todos, nil
}

// FindByID is scoped by owner: a todo belonging to another user reports
// ErrNotFound, indistinguishable from a missing row.
func (r *pgTodoRepository) FindByID(ctx context.Context, id, userID string) (*model.Todo, error) {
	query := `SELECT id, user_id, title, description, completed, created_at, updated_at
	          FROM todos WHERE id = $1 AND user_id = $2`
	todo := &model.Todo{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&todo.ID, &todo.UserID, &todo.Title, &todo.Description,
		&todo.Completed, &todo.CreatedAt, &todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgTodoRepository.FindByID: %w", err)
	}
	return todo, nil
}

// Update applies the patch in a single statement. COALESCE keeps stored
// values for nil patch fields, so the whole partial update is atomic.
func (r *pgTodoRepository) Update(ctx context.Context, id, userID string, patch TodoPatch) (*model.Todo, error) {
	query := `UPDATE todos
	          SET title       = COALESCE($3, title),
	              description = COALESCE($4, description),
	              completed   = COALESCE($5, completed),
	              updated_at  = now()
	          WHERE id = $1 AND user_id = $2
	          RETURNING id, user_id, title, description, completed, created_at, updated_at`
	todo := &model.Todo{}
	err := r.db.QueryRowContext(ctx, query, id, userID, patch.Title, patch.Description, patch.Completed).Scan(
		&todo.ID, &todo.UserID, &todo.Title, &todo.Description,
		&todo.Completed, &todo.CreatedAt, &todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgTodoRepository.Update: %w", err)
	}
	return todo, nil
}

func (r *pgTodoRepository) Delete(ctx context.Context, id, userID string) error {
	query := `DELETE FROM todos WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("pgTodoRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgTodoRepository.Delete: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}
