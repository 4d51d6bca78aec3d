package domain

// Business validation constants
const (
	MinSlotDurationMinutes      = 5
	MaxSlotDurationMinutes      = 480 // 8 hours
	MinPartySize                = 1
	MaxPartySize                = 100
	MaxAdvanceBookingDays       = 365 // 1 year
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxOverrideReasonLength     = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CapacityHoldingStatuses статусы бронирований, которые удерживают вместимость слота.
// Явное именованное решение: pending удерживает место наравне с confirmed, чтобы
// исключить двойное бронирование в окне подтверждения; rescheduled и partial_refund
// место НЕ удерживают. Используется при подсчете remaining capacity и при проверке
// конфликтов.
var CapacityHoldingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses конечные статусы жизненного цикла бронирования
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}
