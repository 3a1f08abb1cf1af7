package database

import (
	"context"
	"fmt"

	"budgetbuddy/internal/reports"
	"budgetbuddy/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// CreateBudget inserts a budget after checking that none exists yet for the
// same user, category and cycle month. The unique index on budgets backs the
// check, so a concurrent create losing the race still comes back ErrDuplicate.
func CreateBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) error {
	exists, err := BudgetExists(ctx, pool, budget.UserID, budget.CategoryID, budget.CycleMonth)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("budget already exists for this category and month: %w", ErrDuplicate)
	}

	query := `
		INSERT INTO budgets (user_id, category_id, budget_amount, cycle_month)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`

	err = pool.QueryRow(ctx, query,
		budget.UserID,
		budget.CategoryID,
		budget.BudgetAmount,
		budget.CycleMonth).Scan(&budget.ID, &budget.CreatedAt, &budget.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create budget: %w", translate(err))
	}
	return nil
}

// BudgetExists checks for a budget matching (user, category, month). The
// month comparison uses the whole calendar-month range because the persisted
// column is a full date while the API works in month granularity.
func BudgetExists(ctx context.Context, pool *pgxpool.Pool, userID, categoryID int, month models.CycleMonth) (bool, error) {
	start, end := month.Range()
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM budgets
			WHERE user_id = $1 AND category_id = $2
			AND cycle_month >= $3 AND cycle_month < $4)`
	err := pool.QueryRow(ctx, query, userID, categoryID, start, end).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check for existing budget: %w", err)
	}
	return exists, nil
}

func GetBudgetByID(ctx context.Context, pool *pgxpool.Pool, budgetID, userID int) (*models.Budget, error) {
	query := `
		SELECT id, user_id, category_id, budget_amount, cycle_month, created_at, updated_at
		FROM budgets
		WHERE id = $1 AND user_id = $2`

	budget := &models.Budget{}
	err := pool.QueryRow(ctx, query, budgetID, userID).Scan(
		&budget.ID,
		&budget.UserID,
		&budget.CategoryID,
		&budget.BudgetAmount,
		&budget.CycleMonth,
		&budget.CreatedAt,
		&budget.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", translate(err))
	}
	return budget, nil
}

// ListBudgets returns the user's budgets, optionally restricted to one cycle
// month, newest first.
func ListBudgets(ctx context.Context, pool *pgxpool.Pool, userID int, month *models.CycleMonth) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, category_id, budget_amount, cycle_month, created_at, updated_at
		FROM budgets
		WHERE user_id = $1`
	args := []any{userID}
	if month != nil {
		start, end := month.Range()
		args = append(args, start, end)
		query += ` AND cycle_month >= $2 AND cycle_month < $3`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.CategoryID, &b.BudgetAmount, &b.CycleMonth, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// UpdateBudget rewrites an owner-scoped budget. Moving it onto a month that
// already has a budget for the category trips the unique index → ErrDuplicate.
func UpdateBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) error {
	query := `
		UPDATE budgets
		SET category_id = $1, budget_amount = $2, cycle_month = $3, updated_at = NOW()
		WHERE id = $4 AND user_id = $5`

	result, err := pool.Exec(ctx, query,
		budget.CategoryID,
		budget.BudgetAmount,
		budget.CycleMonth,
		budget.ID,
		budget.UserID)
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", translate(err))
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteBudget(ctx context.Context, pool *pgxpool.Pool, budgetID, userID int) error {
	result, err := pool.Exec(ctx, `DELETE FROM budgets WHERE id = $1 AND user_id = $2`, budgetID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MonthlyCategoryExpense sums the user's expense transactions for one
// category inside one calendar month.
func MonthlyCategoryExpense(ctx context.Context, pool *pgxpool.Pool, userID, categoryID int, month models.CycleMonth) (float64, error) {
	start, end := month.Range()
	var total float64
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND category_id = $2 AND type = 'expense'
		AND created_at >= $3 AND created_at < $4`
	err := pool.QueryRow(ctx, query, userID, categoryID, start, end).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum category expenses: %w", err)
	}
	return total, nil
}

// BudgetsWithSpending fetches the month's budgets joined with category names,
// then fans out the per-budget spending lookups concurrently. The reads are
// independent, but one failed lookup fails the whole call; no partial result
// is ever returned.
func BudgetsWithSpending(ctx context.Context, pool *pgxpool.Pool, userID int, month models.CycleMonth) ([]models.BudgetUsage, error) {
	start, end := month.Range()
	query := `
		SELECT b.id, b.category_id, COALESCE(c.name, ''), b.budget_amount, b.cycle_month
		FROM budgets b
		LEFT JOIN categories c ON b.category_id = c.id
		WHERE b.user_id = $1 AND b.cycle_month >= $2 AND b.cycle_month < $3
		ORDER BY b.id`

	rows, err := pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets for month: %w", err)
	}
	defer rows.Close()

	var usages []models.BudgetUsage
	for rows.Next() {
		var u models.BudgetUsage
		if err := rows.Scan(&u.BudgetID, &u.CategoryID, &u.CategoryName, &u.BudgetAmount, &u.CycleMonth); err != nil {
			return nil, err
		}
		if u.CategoryName == "" {
			u.CategoryName = reports.UnknownCategory
		}
		usages = append(usages, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range usages {
		i := i
		g.Go(func() error {
			spent, err := MonthlyCategoryExpense(gctx, pool, userID, usages[i].CategoryID, month)
			if err != nil {
				return err
			}
			usages[i].SpentAmount = spent
			usages[i].RemainingAmount, usages[i].PercentageUsed = reports.Utilization(usages[i].BudgetAmount, spent)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return usages, nil
}

// RolloverBudgets copies the previous month's budgets into the month
// containing now for every user, skipping pairs that already have one.
func RolloverBudgets(ctx context.Context, pool *pgxpool.Pool, month models.CycleMonth) (int, error) {
	current := month.Time
	previous := current.AddDate(0, -1, 0)

	query := `
		INSERT INTO budgets (user_id, category_id, budget_amount, cycle_month)
		SELECT b.user_id, b.category_id, b.budget_amount, $1
		FROM budgets b
		WHERE b.cycle_month = $2
		AND NOT EXISTS (
			SELECT 1 FROM budgets x
			WHERE x.user_id = b.user_id AND x.category_id = b.category_id AND x.cycle_month = $1)`

	result, err := pool.Exec(ctx, query, current, previous)
	if err != nil {
		return 0, fmt.Errorf("failed to roll budgets over: %w", err)
	}
	return int(result.RowsAffected()), nil
}
