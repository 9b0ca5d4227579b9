//go:build unit

package timedelta_test

import (
	"testing"
	"time"

	"roombook/internal/pkg/timedelta"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{name: "booking window", value: "72:00:00", want: 72 * time.Hour},
		{name: "max duration", value: "04:00:00", want: 4 * time.Hour},
		{name: "mixed components", value: "01:30:15", want: time.Hour + 30*time.Minute + 15*time.Second},
		{name: "zero", value: "00:00:00", want: 0},
		{name: "surrounding whitespace", value: " 02:00:00 ", want: 2 * time.Hour},
		{name: "missing component", value: "04:00", wantErr: true},
		{name: "not a number", value: "aa:00:00", wantErr: true},
		{name: "minutes out of range", value: "00:60:00", wantErr: true},
		{name: "negative hours", value: "-1:00:00", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := timedelta.Parse(tc.value)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
