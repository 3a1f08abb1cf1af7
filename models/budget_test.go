package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCycleMonth(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-03", "2024-03", true},
		{"2024-03-15", "2024-03", true}, // full dates collapse to their month
		{"2024-02-29", "2024-02", true},
		{"march 2024", "", false},
		{"2024", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		m, err := ParseCycleMonth(tc.in)
		if !tc.ok {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, m.String())
		assert.Equal(t, 1, m.Day())
	}
}

func TestCycleMonthRange(t *testing.T) {
	m, err := ParseCycleMonth("2024-02")
	require.NoError(t, err)
	start, end := m.Range()
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestCycleMonthJSON(t *testing.T) {
	var b Budget
	require.NoError(t, json.Unmarshal([]byte(`{"cycle_month":"2024-03","budget_amount":200}`), &b))
	assert.Equal(t, "2024-03", b.CycleMonth.String())

	out, err := json.Marshal(b.CycleMonth)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03"`, string(out))
}
