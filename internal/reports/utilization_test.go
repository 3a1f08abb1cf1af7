package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtilizationHalfSpent(t *testing.T) {
	remaining, pct := Utilization(200, 100)
	assert.Equal(t, 100.0, remaining)
	assert.Equal(t, 50.0, pct)
}

func TestUtilizationNothingSpent(t *testing.T) {
	remaining, pct := Utilization(200, 0)
	assert.Equal(t, 200.0, remaining)
	assert.Equal(t, 0.0, pct)
}

// Overspend is signaled by a negative remaining, not clamped.
func TestUtilizationOverspend(t *testing.T) {
	remaining, pct := Utilization(100, 150)
	assert.Equal(t, -50.0, remaining)
	assert.Equal(t, 150.0, pct)
}

func TestUtilizationZeroBudget(t *testing.T) {
	remaining, pct := Utilization(0, 50)
	assert.Equal(t, -50.0, remaining)
	assert.Equal(t, 0.0, pct)
}

func TestUtilizationRoundsToTwoDecimals(t *testing.T) {
	_, pct := Utilization(300, 100)
	assert.Equal(t, 33.33, pct)
}

func TestUtilizationInvariant(t *testing.T) {
	cases := []struct{ budget, spent float64 }{
		{200, 100},
		{100, 150},
		{59.99, 59.99},
		{0.01, 1000},
	}
	for _, tc := range cases {
		remaining, _ := Utilization(tc.budget, tc.spent)
		assert.InDelta(t, tc.budget, remaining+tc.spent, 1e-9)
	}
}
