package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"budgetbuddy/internal/config"
	"budgetbuddy/internal/database"
	"budgetbuddy/internal/middleware"
	"budgetbuddy/internal/routes"
	"budgetbuddy/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ScheduleBudgetRollover copies each user's budgets into the new month on
// the 1st, skipping category/month pairs that already have one.
func ScheduleBudgetRollover(c *cron.Cron, pool *pgxpool.Pool) {
	c.AddFunc("@monthly", func() {
		month := models.NewCycleMonth(time.Now())
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		created, err := database.RolloverBudgets(ctx, pool, month)
		if err != nil {
			logrus.WithError(err).Error("budget rollover failed")
			return
		}
		logrus.WithField("created", created).Info("budget rollover complete")
	})
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, relying on environment")
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	}

	cfg, err := config.New()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	csrfStore := middleware.NewTokenStore(cfg.CSRFTokenTTL)
	csrfStore.StartSweeper(5 * time.Minute)
	defer csrfStore.Stop()

	jobs := cron.New()
	if cfg.BudgetRollover {
		ScheduleBudgetRollover(jobs, pool)
	}
	jobs.Start()
	defer jobs.Stop()

	r := routes.SetupRouter(cfg, pool, csrfStore)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("starting server on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logrus.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("shutdown error")
	}
}
