package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// CycleMonth is the budget period. The API works in month granularity
// ("2024-03") while the column is a plain date, so parsing accepts both a
// YYYY-MM token and a full date and normalizes to the first day of the month.
type CycleMonth struct {
	time.Time
}

// ParseCycleMonth accepts "2006-01" or "2006-01-02".
func ParseCycleMonth(s string) (CycleMonth, error) {
	if t, err := time.Parse("2006-01", s); err == nil {
		return NewCycleMonth(t), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return CycleMonth{}, fmt.Errorf("invalid cycle month %q: want YYYY-MM or YYYY-MM-DD", s)
	}
	return NewCycleMonth(t), nil
}

// NewCycleMonth normalizes t to the first day of its month in UTC.
func NewCycleMonth(t time.Time) CycleMonth {
	return CycleMonth{time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)}
}

// Range returns the inclusive first day and the exclusive first day of the
// next month, covering 28/29/30/31-day months.
func (m CycleMonth) Range() (time.Time, time.Time) {
	return m.Time, m.Time.AddDate(0, 1, 0)
}

func (m CycleMonth) String() string {
	return m.Format("2006-01")
}

func (m CycleMonth) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *CycleMonth) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCycleMonth(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

func (m *CycleMonth) Scan(src any) error {
	t, ok := src.(time.Time)
	if !ok {
		return fmt.Errorf("cannot scan %T into CycleMonth", src)
	}
	*m = NewCycleMonth(t)
	return nil
}

func (m CycleMonth) Value() (driver.Value, error) {
	return m.Time, nil
}

type Budget struct {
	ID           int        `json:"budget_id" db:"id"`
	UserID       int        `json:"user_id" db:"user_id"`
	CategoryID   int        `json:"category_id" db:"category_id"`
	BudgetAmount float64    `json:"budget_amount" db:"budget_amount"`
	CycleMonth   CycleMonth `json:"cycle_month" db:"cycle_month"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}
