package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mpereira-dev/storefront/internal/models"
	"github.com/mpereira-dev/storefront/internal/utils"
)

type CategoryRepository interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
}

type categoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepo(db *sql.DB) CategoryRepository {
	return &categoryRepository{DB: db}
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]models.Category, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT id, name, display_name, description FROM category ORDER BY id`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	defer rows.Close()

	var categories []models.Category

	for rows.Next() {

		var category models.Category

		if err := rows.Scan(&category.ID, &category.Name, &category.DisplayName, &category.Description); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}

		categories = append(categories, category)

	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
