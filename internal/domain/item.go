package domain

// BookingCapacity describes how many parties and people an item can serve per slot
type BookingCapacity struct {
	MaxCapacity     int
	DurationMinutes int
	IsExclusive     bool // a single booking consumes the whole slot (e.g. a rental car)
	GroupCapacity   *int // capacity applied once per booking rather than per person
}

// BookingLimits governs which otherwise-valid slots are actually offered
// relative to the current moment
type BookingLimits struct {
	MinAdvanceHours   int
	MaxAdvanceDays    int
	SameDayBooking    bool
	LastMinuteBooking bool
}

// HasMaxAdvanceLimit returns true if there is a limit on how far ahead
// bookings can be made
func (l *BookingLimits) HasMaxAdvanceLimit() bool {
	return l.MaxAdvanceDays > 0
}
