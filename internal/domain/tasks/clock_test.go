package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"08:00", 8 * 60},
		{"09:45", 9*60 + 45},
		{"23:59", 23*60 + 59},
	}

	for _, tc := range cases {
		ct, err := ParseClockTime(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, ct.Minutes(), tc.in)
		assert.Equal(t, tc.in, ct.String(), tc.in)
	}
}

func TestParseClockTime_Invalid(t *testing.T) {
	for _, in := range []string{"", "8:00am", "25:00", "07:60", "0800", "12", "12:30:00", "aa:bb"} {
		_, err := ParseClockTime(in)
		assert.ErrorIs(t, err, ErrInvalidScheduledTime, in)
	}
}

func TestClockTime_AddWrapsOnRender(t *testing.T) {
	ct, err := ParseClockTime("23:30")
	require.NoError(t, err)

	end := ct.Add(60)
	// la aritmética no envuelve, el render sí
	assert.Equal(t, 24*60+30, end.Minutes())
	assert.Equal(t, "00:30", end.String())
}
