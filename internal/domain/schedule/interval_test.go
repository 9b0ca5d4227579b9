//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"roombook/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval(t *testing.T, start, end time.Time) schedule.Interval {
	t.Helper()
	iv, err := schedule.NewInterval(start, end)
	require.NoError(t, err)
	return iv
}

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.UTC)
}

func TestNewInterval(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		iv, err := schedule.NewInterval(at(9, 0), at(12, 0))
		require.NoError(t, err)
		assert.Equal(t, at(9, 0), iv.Start())
		assert.Equal(t, at(12, 0), iv.End())
		assert.Equal(t, 3*time.Hour, iv.Duration())
	})

	t.Run("start equals end", func(t *testing.T) {
		_, err := schedule.NewInterval(at(9, 0), at(9, 0))
		assert.ErrorIs(t, err, schedule.ErrInvalidInterval)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := schedule.NewInterval(at(12, 0), at(9, 0))
		assert.ErrorIs(t, err, schedule.ErrInvalidInterval)
	})
}

func TestInterval_Overlaps(t *testing.T) {
	testCases := []struct {
		name string
		a, b schedule.Interval
		want bool
	}{
		{
			name: "disjoint",
			a:    mustInterval(t, at(9, 0), at(10, 0)),
			b:    mustInterval(t, at(11, 0), at(12, 0)),
			want: false,
		},
		{
			name: "touching endpoints do not overlap",
			a:    mustInterval(t, at(9, 0), at(10, 0)),
			b:    mustInterval(t, at(10, 0), at(11, 0)),
			want: false,
		},
		{
			name: "partial overlap",
			a:    mustInterval(t, at(9, 0), at(10, 30)),
			b:    mustInterval(t, at(10, 0), at(11, 0)),
			want: true,
		},
		{
			name: "containment overlaps",
			a:    mustInterval(t, at(9, 0), at(12, 0)),
			b:    mustInterval(t, at(10, 0), at(11, 0)),
			want: true,
		},
		{
			name: "identical",
			a:    mustInterval(t, at(9, 0), at(10, 0)),
			b:    mustInterval(t, at(9, 0), at(10, 0)),
			want: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a), "overlap must be symmetric")
		})
	}
}

func TestInterval_Contains(t *testing.T) {
	outer := mustInterval(t, at(9, 0), at(12, 0))

	assert.True(t, outer.Contains(mustInterval(t, at(10, 0), at(11, 0))))
	assert.True(t, outer.Contains(outer), "containment is closed at both endpoints")
	assert.False(t, outer.Contains(mustInterval(t, at(8, 0), at(10, 0))))
	assert.False(t, outer.Contains(mustInterval(t, at(11, 0), at(13, 0))))
	assert.False(t, outer.Contains(mustInterval(t, at(8, 0), at(13, 0))))
}

func TestInterval_Before(t *testing.T) {
	assert.True(t, mustInterval(t, at(9, 0), at(10, 0)).Before(mustInterval(t, at(10, 0), at(11, 0))))
	assert.True(t, mustInterval(t, at(9, 0), at(10, 0)).Before(mustInterval(t, at(9, 0), at(11, 0))),
		"equal starts order by end")
	assert.False(t, mustInterval(t, at(9, 0), at(10, 0)).Before(mustInterval(t, at(9, 0), at(10, 0))))
}
