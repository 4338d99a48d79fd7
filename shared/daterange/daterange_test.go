package daterange_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentacar/shared/daterange"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalize(t *testing.T) {
	jan10 := day(2026, time.January, 10)
	jan14 := day(2026, time.January, 14)

	tests := []struct {
		name     string
		in       daterange.Range
		wantFrom time.Time
		wantTo   time.Time
		wantOK   bool
	}{
		{
			name:     "already ordered",
			in:       daterange.Range{From: jan10, To: jan14},
			wantFrom: jan10,
			wantTo:   jan14,
			wantOK:   true,
		},
		{
			name:     "reversed selection",
			in:       daterange.Range{From: jan14, To: jan10},
			wantFrom: jan10,
			wantTo:   jan14,
			wantOK:   true,
		},
		{
			name:     "same day",
			in:       daterange.Range{From: jan10, To: jan10},
			wantFrom: jan10,
			wantTo:   jan10,
			wantOK:   true,
		},
		{
			name:   "missing to",
			in:     daterange.Range{From: jan10},
			wantOK: false,
		},
		{
			name:   "missing from",
			in:     daterange.Range{To: jan14},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.Normalize()

			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.wantFrom, got.From)
				assert.Equal(t, tt.wantTo, got.To)
			}
		})
	}
}

func TestNormalizeIsCommutative(t *testing.T) {
	a := day(2026, time.March, 3)
	b := day(2026, time.March, 21)

	forward, okForward := daterange.Range{From: a, To: b}.Normalize()
	backward, okBackward := daterange.Range{From: b, To: a}.Normalize()

	require.True(t, okForward)
	require.True(t, okBackward)
	assert.Equal(t, forward, backward)
	assert.True(t, !forward.To.Before(forward.From))
}

func TestChargeableDays(t *testing.T) {
	mar1 := day(2026, time.March, 1)

	t.Run("same day charges one day", func(t *testing.T) {
		days := daterange.Range{From: mar1, To: mar1}.ChargeableDays()

		require.Len(t, days, 1)
		assert.Equal(t, mar1, days[0])
	})

	t.Run("checkout day is excluded", func(t *testing.T) {
		days := daterange.Range{From: mar1, To: mar1.AddDate(0, 0, 3)}.ChargeableDays()

		require.Len(t, days, 3)
		assert.Equal(t, mar1, days[0])
		assert.Equal(t, mar1.AddDate(0, 0, 2), days[2])
	})

	t.Run("reversed range charges the same days", func(t *testing.T) {
		days := daterange.Range{From: mar1.AddDate(0, 0, 3), To: mar1}.ChargeableDays()

		require.Len(t, days, 3)
		assert.Equal(t, mar1, days[0])
	})

	t.Run("incomplete range has no chargeable days", func(t *testing.T) {
		assert.Empty(t, daterange.Range{From: mar1}.ChargeableDays())
		assert.Empty(t, daterange.Range{}.ChargeableDays())
	})
}

func TestOverlaps(t *testing.T) {
	blocking := daterange.Range{
		From: day(2026, time.January, 10),
		To:   day(2026, time.January, 12),
	}

	tests := []struct {
		name      string
		candidate daterange.Range
		want      bool
	}{
		{
			name:      "touching start boundary overlaps",
			candidate: daterange.Range{From: day(2026, time.January, 12), To: day(2026, time.January, 14)},
			want:      true,
		},
		{
			name:      "touching end boundary overlaps",
			candidate: daterange.Range{From: day(2026, time.January, 8), To: day(2026, time.January, 10)},
			want:      true,
		},
		{
			name:      "fully inside",
			candidate: daterange.Range{From: day(2026, time.January, 11), To: day(2026, time.January, 11)},
			want:      true,
		},
		{
			name:      "after the interval",
			candidate: daterange.Range{From: day(2026, time.January, 13), To: day(2026, time.January, 15)},
			want:      false,
		},
		{
			name:      "before the interval",
			candidate: daterange.Range{From: day(2026, time.January, 7), To: day(2026, time.January, 9)},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.candidate.Overlaps(blocking))
			assert.Equal(t, tt.want, blocking.Overlaps(tt.candidate))
		})
	}
}

func TestContains(t *testing.T) {
	r := daterange.Range{
		From: day(2026, time.May, 5),
		To:   day(2026, time.May, 8),
	}

	assert.True(t, r.Contains(day(2026, time.May, 5)))
	assert.True(t, r.Contains(day(2026, time.May, 8)))
	assert.True(t, r.Contains(day(2026, time.May, 6)))
	assert.False(t, r.Contains(day(2026, time.May, 4)))
	assert.False(t, r.Contains(day(2026, time.May, 9)))
}

func TestParseDay(t *testing.T) {
	parsed, err := daterange.ParseDay("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.March, 1), parsed)

	parsed, err = daterange.ParseDay("2026-03-01T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.March, 1), parsed)

	_, err = daterange.ParseDay("not-a-date")
	assert.Error(t, err)
}
