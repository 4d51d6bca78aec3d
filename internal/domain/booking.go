package domain

import (
	"time"

	"github.com/m04kA/SMB-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending       BookingStatus = "pending"
	StatusConfirmed     BookingStatus = "confirmed"
	StatusCompleted     BookingStatus = "completed"
	StatusCancelled     BookingStatus = "cancelled"
	StatusNoShow        BookingStatus = "no_show"
	StatusRescheduled   BookingStatus = "rescheduled"
	StatusPartialRefund BookingStatus = "partial_refund"
)

// statusTransitions allowed transitions of the booking lifecycle
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending: {
		StatusConfirmed,
		StatusCancelled,
	},
	StatusConfirmed: {
		StatusCompleted,
		StatusCancelled,
		StatusNoShow,
		StatusRescheduled,
		StatusPartialRefund,
	},
}

// ParseBookingStatus validates a raw status string
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled,
		StatusNoShow, StatusRescheduled, StatusPartialRefund:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// HoldsCapacity returns true if a booking in this status consumes slot capacity
func (s BookingStatus) HoldsCapacity() bool {
	for _, h := range CapacityHoldingStatuses {
		if s == h {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are allowed from this status
func (s BookingStatus) IsTerminal() bool {
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// CanTransitionTo returns true if the lifecycle allows moving from s to next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Booking represents a booking of a shop item in the system
type Booking struct {
	ID              int64
	UserID          int64
	ShopID          int64
	ItemID          int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	NumberOfPeople  int
	Status          BookingStatus

	// Denormalized data for history. ItemPrice is nil when the catalog
	// item carries no price.
	ItemName  string
	ItemPrice *float64
	ExtraIDs  []int64
	Notes     *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HoldsCapacity returns true if the booking consumes slot capacity
func (b *Booking) HoldsCapacity() bool {
	return b.Status.HoldsCapacity()
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// OccupiesSlot returns true if the booking holds capacity for the given
// slot start on the given date
func (b *Booking) OccupiesSlot(date time.Time, start types.TimeString) bool {
	return b.HoldsCapacity() && SameDate(b.BookingDate, date) && b.StartTime.Equal(start)
}

// ShopBookingsFilter фильтр для получения бронирований магазина
type ShopBookingsFilter struct {
	ShopID          int64          // Обязательный параметр
	ItemID          *int64         // Фильтр по позиции (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли бронирования, не удерживающие вместимость
}

// SameDate reports whether two timestamps fall on the same calendar date
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly truncates a timestamp to midnight of its calendar date
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
