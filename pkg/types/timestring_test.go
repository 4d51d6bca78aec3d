package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	cases := []struct {
		in      string
		wantErr bool
	}{
		{"00:00", false},
		{"09:30", false},
		{"23:59", false},
		{"24:00", true},
		{"12:60", true},
		{"9:30", true},
		{"09-30", true},
		{"0930", true},
		{"ab:cd", true},
		{"", true},
	}

	for _, tc := range cases {
		got, err := NewTimeStringFromString(tc.in)
		if tc.wantErr {
			assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", tc.in)
		} else {
			require.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.in, got.String())
		}
	}
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.True(t, TimeString("14:00").Equal("14:00"))
	assert.Equal(t, -1, TimeString("00:00").Compare("23:59"))
	assert.Equal(t, 1, TimeString("12:00").Compare("11:00"))
	assert.Equal(t, 0, TimeString("12:00").Compare("12:00"))
}

func TestTimeString_InRange_InclusiveBoundaries(t *testing.T) {
	start, end := TimeString("09:00"), TimeString("18:00")

	assert.True(t, TimeString("09:00").InRange(start, end))
	assert.True(t, TimeString("18:00").InRange(start, end))
	assert.True(t, TimeString("12:30").InRange(start, end))
	assert.False(t, TimeString("08:59").InRange(start, end))
	assert.False(t, TimeString("18:01").InRange(start, end))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	got, err = TimeString("23:00").AddMinutes(59)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:59"), got)

	// no wrapping past the end of the day
	_, err = TimeString("23:30").AddMinutes(31)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = TimeString("00:30").AddMinutes(-31)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestTimeString_At(t *testing.T) {
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("14:45").At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 14, 45, 0, 0, time.UTC), got)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2024, 6, 1, 7, 5, 33, 0, time.UTC))
	assert.Equal(t, TimeString("07:05"), ts)
}
