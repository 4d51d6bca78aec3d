package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMB-BookingService/pkg/types"
)

var (
	// ErrInvalidScheduleConfig is returned for generation parameters that are
	// nonsensical or would not terminate (non-positive duration or interval,
	// inverted hours, slot definitions with start >= end)
	ErrInvalidScheduleConfig = errors.New("invalid schedule config")

	// ErrUnsupportedScheduleType is returned for a schedule type the engine
	// does not know. This is a defect to surface, not to swallow.
	ErrUnsupportedScheduleType = errors.New("unsupported schedule type")
)

// ScheduleType determines how an item generates its bookable slots
type ScheduleType string

const (
	// ScheduleTypeFixed uses a weekly rule per day of week as the slot list
	ScheduleTypeFixed ScheduleType = "fixed"
	// ScheduleTypeFlexible generates slots from start/end hours with an interval step
	ScheduleTypeFlexible ScheduleType = "flexible"
	// ScheduleTypeContinuous generates back-to-back slots (interval == duration)
	ScheduleTypeContinuous ScheduleType = "continuous"
)

// SlotDefinition describes one bookable interval within a day.
// Invariant: StartTime < EndTime.
type SlotDefinition struct {
	StartTime           types.TimeString `json:"startTime"`
	EndTime             types.TimeString `json:"endTime"`
	MaxBookingsPerSlot  int              `json:"maxBookingsPerSlot"`
	MinPeoplePerBooking *int             `json:"minPeoplePerBooking,omitempty"`
	MaxPeoplePerBooking *int             `json:"maxPeoplePerBooking,omitempty"`
	BufferMinutes       *int             `json:"bufferMinutes,omitempty"`
	IsActive            bool             `json:"isActive"`
}

// Validate checks the definition invariants
func (d *SlotDefinition) Validate() error {
	if err := d.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: slot start: %v", ErrInvalidScheduleConfig, err)
	}
	if err := d.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: slot end: %v", ErrInvalidScheduleConfig, err)
	}
	if !d.StartTime.IsBefore(d.EndTime) {
		return fmt.Errorf("%w: slot %s-%s: start must be before end",
			ErrInvalidScheduleConfig, d.StartTime, d.EndTime)
	}
	if d.MaxBookingsPerSlot <= 0 {
		return fmt.Errorf("%w: slot %s: maxBookingsPerSlot must be positive",
			ErrInvalidScheduleConfig, d.StartTime)
	}
	return nil
}

// WeeklySlotRule holds the slot definitions for one day of week.
// A day with IsAvailable=false produces no slots regardless of its slot list.
type WeeklySlotRule struct {
	DayOfWeek   time.Weekday     `json:"dayOfWeek"` // 0=Sunday .. 6=Saturday
	IsAvailable bool             `json:"isAvailable"`
	Slots       []SlotDefinition `json:"slots"`
}

// GenerationParams parameters for flexible/continuous slot generation
type GenerationParams struct {
	StartHour           int  `json:"startHour"`
	EndHour             int  `json:"endHour"`
	SlotDurationMinutes int  `json:"slotDurationMinutes"`
	IntervalMinutes     int  `json:"intervalMinutes"`
	MaxBookingsPerSlot  int  `json:"maxBookingsPerSlot"`
	MinPeoplePerBooking *int `json:"minPeoplePerBooking,omitempty"`
	MaxPeoplePerBooking *int `json:"maxPeoplePerBooking,omitempty"`
	BufferMinutes       *int `json:"bufferMinutes,omitempty"`
}

// DateOverride replaces the weekly-derived slots for one specific date entirely
type DateOverride struct {
	Date        time.Time        `json:"date"`
	IsAvailable bool             `json:"isAvailable"`
	Reason      *string          `json:"reason,omitempty"`
	Slots       []SlotDefinition `json:"slots,omitempty"`
}

// ExceptionType kind of a schedule exception
type ExceptionType string

const (
	ExceptionClosed        ExceptionType = "closed"
	ExceptionModifiedHours ExceptionType = "modified_hours"
	ExceptionSpecialEvent  ExceptionType = "special_event"
)

// ScheduleException overrides a date or a date range, taking precedence
// over both date overrides and the weekly schedule
type ScheduleException struct {
	Type    ExceptionType    `json:"type"`
	Date    time.Time        `json:"date"`
	EndDate *time.Time       `json:"endDate,omitempty"`
	Reason  string           `json:"reason"`
	Slots   []SlotDefinition `json:"slots,omitempty"`
}

// Covers reports whether the exception applies to the given date
func (e *ScheduleException) Covers(date time.Time) bool {
	d := DateOnly(date)
	start := DateOnly(e.Date)
	if e.EndDate == nil {
		return d.Equal(start)
	}
	return !d.Before(start) && !d.After(DateOnly(*e.EndDate))
}

// ScheduleConfig describes how a bookable item generates slots.
// It is a tagged variant: exactly the fields relevant to Type are set.
//
// Weekly is used by ScheduleTypeFixed; Generation by ScheduleTypeFlexible and
// ScheduleTypeContinuous. Overrides and Exceptions apply to every type, with
// precedence (highest first): exception > date override > weekly-derived slots.
type ScheduleConfig struct {
	Type       ScheduleType        `json:"type"`
	Weekly     []WeeklySlotRule    `json:"weekly,omitempty"`
	Generation *GenerationParams   `json:"generation,omitempty"`
	Overrides  []DateOverride      `json:"overrides,omitempty"`
	Exceptions []ScheduleException `json:"exceptions,omitempty"`
}

// ResolveSlots returns the final ordered list of slot definitions for a date,
// applying the precedence rule. The configured order is authoritative and is
// never re-sorted; callers must not assume it is chronological.
func (c *ScheduleConfig) ResolveSlots(date time.Time) ([]SlotDefinition, error) {
	// 1. Per-date exception wins over everything
	for i := range c.Exceptions {
		exc := &c.Exceptions[i]
		if !exc.Covers(date) {
			continue
		}
		if exc.Type == ExceptionClosed || len(exc.Slots) == 0 {
			// an exception without slots closes the date
			return []SlotDefinition{}, nil
		}
		return activeSlots(exc.Slots)
	}

	// 2. Date-specific override replaces the weekly-derived slots entirely
	for i := range c.Overrides {
		ov := &c.Overrides[i]
		if !SameDate(ov.Date, date) {
			continue
		}
		if !ov.IsAvailable {
			return []SlotDefinition{}, nil
		}
		return activeSlots(ov.Slots)
	}

	// 3. Weekly schedule derived from the configured type
	switch c.Type {
	case ScheduleTypeFixed:
		return c.resolveFixed(date)
	case ScheduleTypeFlexible, ScheduleTypeContinuous:
		return GenerateSlots(c.Generation)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheduleType, c.Type)
	}
}

func (c *ScheduleConfig) resolveFixed(date time.Time) ([]SlotDefinition, error) {
	weekday := date.Weekday()
	for i := range c.Weekly {
		rule := &c.Weekly[i]
		if rule.DayOfWeek != weekday {
			continue
		}
		if !rule.IsAvailable {
			return []SlotDefinition{}, nil
		}
		return activeSlots(rule.Slots)
	}
	// no rule for this weekday means the item is not offered that day
	return []SlotDefinition{}, nil
}

// activeSlots filters out inactive definitions, preserving configured order
func activeSlots(defs []SlotDefinition) ([]SlotDefinition, error) {
	result := make([]SlotDefinition, 0, len(defs))
	for i := range defs {
		if !defs[i].IsActive {
			continue
		}
		if err := defs[i].Validate(); err != nil {
			return nil, err
		}
		result = append(result, defs[i])
	}
	return result, nil
}

// GenerateSlots produces slot definitions for flexible/continuous schedules.
// The cursor walks from startHour:00 in steps of IntervalMinutes; a slot
// [cursor, cursor+duration) is emitted while its end does not exceed
// endHour:00. Terminates because the cursor strictly increases and is
// bounded by the end hour.
func GenerateSlots(p *GenerationParams) ([]SlotDefinition, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: generation params missing", ErrInvalidScheduleConfig)
	}
	if p.SlotDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: slotDuration must be positive, got %d",
			ErrInvalidScheduleConfig, p.SlotDurationMinutes)
	}
	if p.IntervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: intervalMinutes must be positive, got %d",
			ErrInvalidScheduleConfig, p.IntervalMinutes)
	}
	if p.StartHour < 0 || p.EndHour > 23 || p.StartHour >= p.EndHour {
		return nil, fmt.Errorf("%w: invalid hours %d..%d",
			ErrInvalidScheduleConfig, p.StartHour, p.EndHour)
	}
	if p.MaxBookingsPerSlot <= 0 {
		return nil, fmt.Errorf("%w: maxBookingsPerSlot must be positive, got %d",
			ErrInvalidScheduleConfig, p.MaxBookingsPerSlot)
	}

	startMinutes := p.StartHour * 60
	endMinutes := p.EndHour * 60

	slots := make([]SlotDefinition, 0, (endMinutes-startMinutes)/p.IntervalMinutes+1)
	for cursor := startMinutes; cursor+p.SlotDurationMinutes <= endMinutes; cursor += p.IntervalMinutes {
		start, err := types.NewTimeStringFromMinutes(cursor)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidScheduleConfig, err)
		}
		end, err := types.NewTimeStringFromMinutes(cursor + p.SlotDurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidScheduleConfig, err)
		}

		slots = append(slots, SlotDefinition{
			StartTime:           start,
			EndTime:             end,
			MaxBookingsPerSlot:  p.MaxBookingsPerSlot,
			MinPeoplePerBooking: p.MinPeoplePerBooking,
			MaxPeoplePerBooking: p.MaxPeoplePerBooking,
			BufferMinutes:       p.BufferMinutes,
			IsActive:            true,
		})
	}

	return slots, nil
}
