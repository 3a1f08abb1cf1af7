package database

import (
	"context"
	"fmt"

	"budgetbuddy/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateCategory(ctx context.Context, pool *pgxpool.Pool, category *models.Category) error {
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id`
	err := pool.QueryRow(ctx, query, category.Name).Scan(&category.ID)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", translate(err))
	}
	return nil
}

func GetCategoryByID(ctx context.Context, pool *pgxpool.Pool, categoryID int) (*models.Category, error) {
	query := `SELECT id, name FROM categories WHERE id = $1`

	category := &models.Category{}
	err := pool.QueryRow(ctx, query, categoryID).Scan(&category.ID, &category.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", translate(err))
	}
	return category, nil
}

func GetAllCategories(ctx context.Context, pool *pgxpool.Pool) ([]models.Category, error) {
	rows, err := pool.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func UpdateCategory(ctx context.Context, pool *pgxpool.Pool, category *models.Category) error {
	result, err := pool.Exec(ctx, `UPDATE categories SET name = $1 WHERE id = $2`, category.Name, category.ID)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", translate(err))
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category. Deletion is blocked by the foreign keys
// on transactions and budgets, which surfaces here as ErrInUse.
func DeleteCategory(ctx context.Context, pool *pgxpool.Pool, categoryID int) error {
	result, err := pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", translate(err))
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
