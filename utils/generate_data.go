package utils

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"budgetbuddy/internal/database"
	"budgetbuddy/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GenerateTestUsers inserts n fake users (password "password123" for all of
// them, so seeded accounts are usable) and returns their ids.
func GenerateTestUsers(ctx context.Context, pool *pgxpool.Pool, n int) ([]int, error) {
	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		user := &models.User{
			Username:  gofakeit.Username(),
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
			Password:  "password123",
		}
		if err := database.RegisterUser(ctx, pool, user); err != nil {
			return nil, fmt.Errorf("failed to seed user: %w", err)
		}
		ids = append(ids, user.ID)
	}
	return ids, nil
}

// GenerateTestTransactions inserts n fake transactions spread over the last
// 90 days across the given users and categories.
func GenerateTestTransactions(ctx context.Context, pool *pgxpool.Pool, userIDs, categoryIDs []int, n int) error {
	if len(userIDs) == 0 || len(categoryIDs) == 0 {
		return fmt.Errorf("need at least one user and one category to seed transactions")
	}
	for i := 0; i < n; i++ {
		transaction := &models.Transaction{
			UserID:     userIDs[rand.Intn(len(userIDs))],
			CategoryID: categoryIDs[rand.Intn(len(categoryIDs))],
			Type:       randomType(),
			Amount:     gofakeit.Price(1, 1000),
			Note:       gofakeit.Sentence(5),
		}
		if err := database.CreateTransaction(ctx, pool, transaction); err != nil {
			return fmt.Errorf("failed to seed transaction: %w", err)
		}
	}
	return nil
}

// GenerateTestBudgets inserts a current-month budget per (user, category)
// pair up to n, skipping pairs that already have one.
func GenerateTestBudgets(ctx context.Context, pool *pgxpool.Pool, userIDs, categoryIDs []int, n int) error {
	month := models.NewCycleMonth(time.Now())
	created := 0
	for _, userID := range userIDs {
		for _, categoryID := range categoryIDs {
			if created >= n {
				return nil
			}
			budget := &models.Budget{
				UserID:       userID,
				CategoryID:   categoryID,
				BudgetAmount: gofakeit.Price(100, 2000),
				CycleMonth:   month,
			}
			err := database.CreateBudget(ctx, pool, budget)
			if err != nil {
				continue // pair already budgeted
			}
			created++
		}
	}
	return nil
}

func randomType() string {
	if rand.Intn(4) == 0 {
		return models.TypeIncome
	}
	return models.TypeExpense
}
