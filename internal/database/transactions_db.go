package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"budgetbuddy/internal/reports"
	"budgetbuddy/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// TransactionFilter narrows ListTransactions. From is inclusive, To is
// exclusive; zero-value fields are not applied.
type TransactionFilter struct {
	Type       string
	CategoryID int
	From       time.Time
	To         time.Time
	Page       int
	Limit      int
}

func (f *TransactionFilter) normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
}

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, transaction *models.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, category_id, type, amount, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := pool.QueryRow(ctx, query,
		transaction.UserID,
		transaction.CategoryID,
		transaction.Type,
		transaction.Amount,
		transaction.Note).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", translate(err))
	}
	return nil
}

// GetTransactionByID is owner-scoped: the row must match both the id and the
// requesting user.
func GetTransactionByID(ctx context.Context, pool *pgxpool.Pool, transactionID, userID int) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, category_id, type, amount, note, created_at
		FROM transactions
		WHERE id = $1 AND user_id = $2`

	transaction := &models.Transaction{}
	err := pool.QueryRow(ctx, query, transactionID, userID).Scan(
		&transaction.ID,
		&transaction.UserID,
		&transaction.CategoryID,
		&transaction.Type,
		&transaction.Amount,
		&transaction.Note,
		&transaction.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", translate(err))
	}
	return transaction, nil
}

// ListTransactions returns one page of the user's transactions, newest first,
// plus the exact total row count for the filter.
func ListTransactions(ctx context.Context, pool *pgxpool.Pool, userID int, filter TransactionFilter) ([]models.Transaction, int, error) {
	filter.normalize()

	where := []string{"user_id = $1"}
	args := []any{userID}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where = append(where, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.CategoryID > 0 {
		args = append(args, filter.CategoryID)
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		where = append(where, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		where = append(where, fmt.Sprintf("created_at < $%d", len(args)))
	}
	clause := strings.Join(where, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM transactions WHERE ` + clause
	if err := pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT id, user_id, category_id, type, amount, note, created_at
		FROM transactions
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d`, clause, len(args)-1, len(args))

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Type, &t.Amount, &t.Note, &t.CreatedAt); err != nil {
			return nil, 0, err
		}
		transactions = append(transactions, t)
	}
	return transactions, total, rows.Err()
}

// UpdateTransaction rewrites an owner-scoped transaction.
func UpdateTransaction(ctx context.Context, pool *pgxpool.Pool, transaction *models.Transaction) error {
	query := `
		UPDATE transactions
		SET category_id = $1, type = $2, amount = $3, note = $4
		WHERE id = $5 AND user_id = $6`

	result, err := pool.Exec(ctx, query,
		transaction.CategoryID,
		transaction.Type,
		transaction.Amount,
		transaction.Note,
		transaction.ID,
		transaction.UserID)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", translate(err))
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, transactionID, userID int) error {
	result, err := pool.Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// TransactionsForSummary fetches the projection the aggregation engine folds
// over: category, resolved category name, type and amount. From/To bound
// created_at when non-zero (From inclusive, To exclusive).
func TransactionsForSummary(ctx context.Context, pool *pgxpool.Pool, userID int, from, to time.Time) ([]reports.Row, error) {
	where := []string{"t.user_id = $1"}
	args := []any{userID}
	if !from.IsZero() {
		args = append(args, from)
		where = append(where, fmt.Sprintf("t.created_at >= $%d", len(args)))
	}
	if !to.IsZero() {
		args = append(args, to)
		where = append(where, fmt.Sprintf("t.created_at < $%d", len(args)))
	}

	query := fmt.Sprintf(`
		SELECT t.category_id, COALESCE(c.name, ''), t.type, t.amount
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE %s
		ORDER BY t.created_at, t.id`, strings.Join(where, " AND "))

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for summary: %w", err)
	}
	defer rows.Close()

	var result []reports.Row
	for rows.Next() {
		var r reports.Row
		if err := rows.Scan(&r.CategoryID, &r.CategoryName, &r.Type, &r.Amount); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// YearTransactions fetches the dated projection for an annual breakdown.
func YearTransactions(ctx context.Context, pool *pgxpool.Pool, userID, year int) ([]reports.DatedRow, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	query := `
		SELECT t.category_id, COALESCE(c.name, ''), t.type, t.amount, t.created_at
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1 AND t.created_at >= $2 AND t.created_at < $3
		ORDER BY t.created_at, t.id`

	rows, err := pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch year transactions: %w", err)
	}
	defer rows.Close()

	var result []reports.DatedRow
	for rows.Next() {
		var r reports.DatedRow
		if err := rows.Scan(&r.CategoryID, &r.CategoryName, &r.Type, &r.Amount, &r.Date); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// RecentTransactions returns the user's newest transactions for the dashboard.
func RecentTransactions(ctx context.Context, pool *pgxpool.Pool, userID, limit int) ([]models.Transaction, error) {
	if limit < 1 || limit > MaxPageSize {
		limit = 5
	}
	query := `
		SELECT id, user_id, category_id, type, amount, note, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Type, &t.Amount, &t.Note, &t.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
