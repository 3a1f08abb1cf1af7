package models

import "time"

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// ValidType reports whether t is one of the two transaction polarities.
func ValidType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}

type Transaction struct {
	ID         int       `json:"transaction_id" db:"id"`
	UserID     int       `json:"user_id" db:"user_id"`
	CategoryID int       `json:"category_id" db:"category_id"`
	Type       string    `json:"type" db:"type"`
	Amount     float64   `json:"amount" db:"amount"`
	Note       string    `json:"note" db:"note"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
