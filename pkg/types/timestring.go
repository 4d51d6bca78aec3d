package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeString represents a wall-clock time of day with minute precision,
// stored in "HH:MM" format (zero-padded, 24-hour).
// Times are total-ordered by the number of minutes from midnight.
type TimeString string

var (
	// ErrInvalidFormat is returned when a string does not match "HH:MM"
	ErrInvalidFormat = errors.New("invalid time string format")

	// ErrOutOfRange is returned when time arithmetic would leave the [00:00, 23:59] range
	ErrOutOfRange = errors.New("time out of range")
)

const minutesPerDay = 24 * 60

// NewTimeString creates a TimeString from the time-of-day part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	t := TimeString(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// NewTimeStringFromMinutes creates a TimeString from minutes since midnight
func NewTimeStringFromMinutes(m int) (TimeString, error) {
	if m < 0 || m >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrOutOfRange, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// Validate checks that the value matches "HH:MM" with valid hour and minute ranges
func (t TimeString) Validate() error {
	if len(t) != 5 || t[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	for _, i := range []int{0, 1, 3, 4} {
		if t[i] < '0' || t[i] > '9' {
			return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
		}
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	minutes := int(t[3]-'0')*10 + int(t[4]-'0')
	if hours > 23 || minutes > 59 {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// Minutes returns the number of minutes from midnight
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	hours := int(t[0]-'0')*10 + int(t[1]-'0')
	minutes := int(t[3]-'0')*10 + int(t[4]-'0')
	return hours*60 + minutes, nil
}

// minutesOrNegative returns minutes from midnight, or -1 for malformed values.
// Comparisons treat malformed values as less than any valid value.
func (t TimeString) minutesOrNegative() int {
	m, err := t.Minutes()
	if err != nil {
		return -1
	}
	return m
}

// IsZero returns true for an empty (unset) value
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}

// Compare returns -1, 0 or 1 depending on the order of t relative to other
func (t TimeString) Compare(other TimeString) int {
	a, b := t.minutesOrNegative(), other.minutesOrNegative()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsBefore returns true if t is strictly earlier than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Compare(other) < 0
}

// IsAfter returns true if t is strictly later than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Compare(other) > 0
}

// Equal returns true if both values denote the same minute
func (t TimeString) Equal(other TimeString) bool {
	return t.Compare(other) == 0
}

// InRange reports whether t lies within [start, end].
// Both boundaries are inclusive.
func (t TimeString) InRange(start, end TimeString) bool {
	return t.Compare(start) >= 0 && t.Compare(end) <= 0
}

// AddMinutes returns the time n minutes later.
// The result must stay within the same day; crossing midnight is an error,
// generation code is expected to stop before overflow.
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(m + n)
}

// SinceMidnight returns the duration from midnight to t
func (t TimeString) SinceMidnight() (time.Duration, error) {
	m, err := t.Minutes()
	if err != nil {
		return 0, err
	}
	return time.Duration(m) * time.Minute, nil
}

// At anchors the time-of-day on the given calendar date, in the date's location
func (t TimeString) At(date time.Time) (time.Time, error) {
	m, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), m/60, m%60, 0, 0, date.Location()), nil
}
