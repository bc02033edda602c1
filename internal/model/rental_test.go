package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, 6, 15, 23, 7, 9, 123, time.UTC)
	assert.Equal(t, day(2024, 6, 15), DateOnly(in))
}

func TestRentalClose(t *testing.T) {
	base := Rental{StartDate: day(2024, 1, 5), EndDate: day(2024, 1, 10)}

	t.Run("return before start is rejected", func(t *testing.T) {
		r := base
		err := r.Close(day(2024, 1, 4))
		assert.ErrorIs(t, err, ErrReturnBeforeStart)
		assert.Nil(t, r.ActualReturnDate)
	})

	t.Run("same day return is fine", func(t *testing.T) {
		r := base
		require.NoError(t, r.Close(day(2024, 1, 5)))
		require.NotNil(t, r.ActualReturnDate)
		assert.Equal(t, day(2024, 1, 5), *r.ActualReturnDate)
	})

	t.Run("time of day is discarded", func(t *testing.T) {
		r := base
		require.NoError(t, r.Close(time.Date(2024, 1, 8, 18, 30, 0, 0, time.UTC)))
		assert.Equal(t, day(2024, 1, 8), *r.ActualReturnDate)
	})
}

func TestRentalIsActive(t *testing.T) {
	r := Rental{StartDate: day(2024, 1, 5), EndDate: day(2024, 1, 10)}
	assert.True(t, r.IsActive())
	require.NoError(t, r.Close(day(2024, 1, 9)))
	assert.False(t, r.IsActive())
}

func TestRentalIsOverdue(t *testing.T) {
	r := Rental{StartDate: day(2024, 1, 5), EndDate: day(2024, 1, 10)}

	t.Run("active rental compared against the check date", func(t *testing.T) {
		assert.False(t, r.IsOverdue(day(2024, 1, 10)))
		assert.True(t, r.IsOverdue(day(2024, 1, 11)))
	})

	t.Run("closed rental ignores the check date", func(t *testing.T) {
		closed := r
		require.NoError(t, closed.Close(day(2024, 1, 9)))
		assert.False(t, closed.IsOverdue(day(2024, 2, 1)))

		late := r
		require.NoError(t, late.Close(day(2024, 1, 12)))
		assert.True(t, late.IsOverdue(day(2024, 1, 1)))
	})
}

func TestRentalCalculatePenalty(t *testing.T) {
	cases := []struct {
		name     string
		returned *time.Time
		rate     float64
		want     float64
	}{
		{"still active", nil, 50, 0},
		{"returned on time", ptr(day(2024, 1, 10)), 50, 0},
		{"returned early", ptr(day(2024, 1, 8)), 50, 0},
		{"one day late", ptr(day(2024, 1, 11)), 50, 50},
		{"three days late", ptr(day(2024, 1, 13)), 50, 150},
		{"late but free of charge", ptr(day(2024, 1, 13)), 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Rental{
				StartDate:         day(2024, 1, 5),
				EndDate:           day(2024, 1, 10),
				PenaltyRatePerDay: tc.rate,
				ActualReturnDate:  tc.returned,
			}
			assert.InDelta(t, tc.want, r.CalculatePenalty(), 1e-9)
		})
	}
}

func ptr(t time.Time) *time.Time { return &t }
