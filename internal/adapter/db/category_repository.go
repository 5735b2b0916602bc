package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/seungyeah/tootodo-be/internal/core/domain"
	"github.com/seungyeah/tootodo-be/internal/core/ports"
)

const getCategoryQuery = `
SELECT
  id,
  name,
  color
FROM categories
WHERE id = $1;
`

type CategoryRepository struct {
	db *sqlx.DB
}

type categoryRow struct {
	ID    uuid.UUID `db:"id"`
	Name  string    `db:"name"`
	Color string    `db:"color"`
}

var _ ports.CategoryStore = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Get(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	var row categoryRow
	if err := r.db.GetContext(ctx, &row, getCategoryQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, err
	}

	return domain.Category{
		ID:    row.ID,
		Name:  row.Name,
		Color: row.Color,
	}, nil
}
