package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MonthTotal is one month's expense total for the analytics chart.
type MonthTotal struct {
	Month int     `json:"month"`
	Total float64 `json:"total"`
}

// CategoryExpense is one category's expense total for the analytics chart.
type CategoryExpense struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// TotalBalance returns the user's all-time balance, income counted positive
// and expenses negative.
func TotalBalance(ctx context.Context, pool *pgxpool.Pool, userID int) (float64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE -amount END), 0)
		FROM transactions
		WHERE user_id = $1`
	var total float64
	if err := pool.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to fetch total balance: %w", err)
	}
	return total, nil
}

// MonthlyExpenseTotals returns per-month expense sums for one year, months
// without expenses omitted, in chronological order.
func MonthlyExpenseTotals(ctx context.Context, pool *pgxpool.Pool, userID, year int) ([]MonthTotal, error) {
	query := `
		SELECT EXTRACT(MONTH FROM created_at)::int AS month, SUM(amount) AS total
		FROM transactions
		WHERE user_id = $1 AND type = 'expense'
		AND EXTRACT(YEAR FROM created_at) = $2
		GROUP BY month
		ORDER BY month`
	rows, err := pool.Query(ctx, query, userID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch monthly expenses: %w", err)
	}
	defer rows.Close()

	var totals []MonthTotal
	for rows.Next() {
		var t MonthTotal
		if err := rows.Scan(&t.Month, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

// CategoryExpenseTotals returns the user's expense totals grouped by category
// name, largest first.
func CategoryExpenseTotals(ctx context.Context, pool *pgxpool.Pool, userID int) ([]CategoryExpense, error) {
	query := `
		SELECT c.name AS category, COALESCE(SUM(t.amount), 0) AS total
		FROM transactions t
		JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1 AND t.type = 'expense'
		GROUP BY c.name
		ORDER BY total DESC`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category expenses: %w", err)
	}
	defer rows.Close()

	var totals []CategoryExpense
	for rows.Next() {
		var t CategoryExpense
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}
