package database_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetbuddy/internal/database"
	"budgetbuddy/models"
)

// testPool connects to the database named by DATABASE_URL. Tests that need a
// live database skip when it is not set, so the suite stays runnable without
// infrastructure.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL is not set")
	}
	pool, err := database.Connect(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func registerTestUser(t *testing.T, pool *pgxpool.Pool, suffix string) *models.User {
	t.Helper()
	user := &models.User{
		Username:  fmt.Sprintf("it_%s_%s", t.Name(), suffix),
		FirstName: "Test",
		LastName:  "User",
		Password:  "password123",
	}
	require.NoError(t, database.RegisterUser(context.Background(), pool, user))
	t.Cleanup(func() {
		_ = database.DeleteUser(context.Background(), pool, user.ID)
	})
	return user
}

func TestDuplicateBudgetRejected(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := registerTestUser(t, pool, "a")
	month := models.NewCycleMonth(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))

	budget := &models.Budget{
		UserID:       user.ID,
		CategoryID:   1,
		BudgetAmount: 500,
		CycleMonth:   month,
	}
	require.NoError(t, database.CreateBudget(ctx, pool, budget))

	dup := &models.Budget{
		UserID:       user.ID,
		CategoryID:   1,
		BudgetAmount: 700,
		CycleMonth:   month,
	}
	err := database.CreateBudget(ctx, pool, dup)
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrDuplicate)

	// A different month for the same category is fine.
	other := &models.Budget{
		UserID:       user.ID,
		CategoryID:   1,
		BudgetAmount: 700,
		CycleMonth:   models.NewCycleMonth(time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)),
	}
	assert.NoError(t, database.CreateBudget(ctx, pool, other))
}

func TestTransactionOwnershipIsolation(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	owner := registerTestUser(t, pool, "owner")
	stranger := registerTestUser(t, pool, "stranger")

	tx := &models.Transaction{
		UserID:     owner.ID,
		CategoryID: 1,
		Type:       models.TypeExpense,
		Amount:     12.50,
		Note:       "lunch",
	}
	require.NoError(t, database.CreateTransaction(ctx, pool, tx))

	_, err := database.GetTransactionByID(ctx, pool, tx.ID, owner.ID)
	require.NoError(t, err)

	// Another user never sees, updates, or deletes it.
	_, err = database.GetTransactionByID(ctx, pool, tx.ID, stranger.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)

	err = database.DeleteTransaction(ctx, pool, tx.ID, stranger.ID)
	assert.ErrorIs(t, err, database.ErrNotFound)

	list, total, err := database.ListTransactions(ctx, pool, stranger.ID, database.TransactionFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, list)
}

func TestBudgetsWithSpending(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	user := registerTestUser(t, pool, "b")
	month := models.NewCycleMonth(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))

	budget := &models.Budget{
		UserID:       user.ID,
		CategoryID:   1,
		BudgetAmount: 100,
		CycleMonth:   month,
	}
	require.NoError(t, database.CreateBudget(ctx, pool, budget))

	usages, err := database.BudgetsWithSpending(ctx, pool, user.ID, month)
	require.NoError(t, err)
	require.Len(t, usages, 1)
	assert.Equal(t, budget.ID, usages[0].BudgetID)
	assert.Equal(t, float64(100), usages[0].BudgetAmount)
	assert.Equal(t, float64(0), usages[0].SpentAmount)
	assert.Equal(t, float64(100), usages[0].RemainingAmount)
}
