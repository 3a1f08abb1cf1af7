package main

import (
	"context"
	"flag"
	"log"
	"time"

	"budgetbuddy/internal/config"
	"budgetbuddy/internal/database"
	"budgetbuddy/utils"

	"github.com/joho/godotenv"
)

func main() {
	var users, transactions, budgets int
	flag.IntVar(&users, "users", 5, "number of users to create")
	flag.IntVar(&transactions, "transactions", 200, "number of transactions to create")
	flag.IntVar(&budgets, "budgets", 20, "number of budgets to create")
	flag.Parse()

	godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	userIDs, err := utils.GenerateTestUsers(ctx, pool, users)
	if err != nil {
		log.Fatalf("failed to seed users: %v", err)
	}

	categories, err := database.GetAllCategories(ctx, pool)
	if err != nil {
		log.Fatalf("failed to load categories: %v", err)
	}
	categoryIDs := make([]int, 0, len(categories))
	for _, c := range categories {
		categoryIDs = append(categoryIDs, c.ID)
	}

	if err := utils.GenerateTestTransactions(ctx, pool, userIDs, categoryIDs, transactions); err != nil {
		log.Fatalf("failed to seed transactions: %v", err)
	}
	if err := utils.GenerateTestBudgets(ctx, pool, userIDs, categoryIDs, budgets); err != nil {
		log.Fatalf("failed to seed budgets: %v", err)
	}

	log.Printf("seeded %d users, %d transactions, up to %d budgets", len(userIDs), transactions, budgets)
}
