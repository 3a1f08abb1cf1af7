package database

import (
	"context"
	"fmt"

	"budgetbuddy/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser hashes the password and inserts the user. A taken username
// surfaces as ErrDuplicate. The plaintext password never leaves this function.
func RegisterUser(ctx context.Context, pool *pgxpool.Pool, user *models.User) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	query := `
		INSERT INTO users (username, first_name, last_name, password)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err = pool.QueryRow(ctx, query, user.Username, user.FirstName, user.LastName, string(hashed)).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", translate(err))
	}
	user.Password = ""
	return nil
}

// AuthenticateUser verifies the username/password pair. A missing user yields
// ErrNotFound, a wrong password ErrInvalidCredentials.
func AuthenticateUser(ctx context.Context, pool *pgxpool.Pool, username, password string) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, username, first_name, last_name, password, created_at
		FROM users
		WHERE username = $1`
	err := pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Password,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", translate(err))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	user.Password = ""
	return &user, nil
}

// GetUserByID returns a single user without the password hash.
func GetUserByID(ctx context.Context, pool *pgxpool.Pool, userID int) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, username, first_name, last_name, created_at
		FROM users
		WHERE id = $1`
	err := pool.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", translate(err))
	}
	return &user, nil
}

// GetAllUsers lists every user without password hashes.
func GetAllUsers(ctx context.Context, pool *pgxpool.Pool) ([]models.User, error) {
	query := `
		SELECT id, username, first_name, last_name, created_at
		FROM users
		ORDER BY id`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.FirstName, &user.LastName, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// DeleteUser removes a user; owned transactions and budgets cascade at the
// database level.
func DeleteUser(ctx context.Context, pool *pgxpool.Pool, userID int) error {
	result, err := pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", translate(err))
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UsernameTaken reports whether a username already exists.
func UsernameTaken(ctx context.Context, pool *pgxpool.Pool, username string) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}
