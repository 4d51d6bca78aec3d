package domain

import "github.com/m04kA/SMB-BookingService/pkg/types"

// AvailableSlot represents a time slot offered for booking on a specific date,
// annotated with the capacity left after subtracting existing bookings
type AvailableSlot struct {
	StartTime         types.TimeString
	EndTime           types.TimeString
	RemainingCapacity int
	TotalCapacity     int
	IsAvailable       bool
}

// IsFull returns true if the slot has no remaining capacity
func (s *AvailableSlot) IsFull() bool {
	return s.RemainingCapacity <= 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (s *AvailableSlot) OccupancyRate() float64 {
	if s.TotalCapacity == 0 {
		return 0
	}
	occupied := s.TotalCapacity - s.RemainingCapacity
	return float64(occupied) / float64(s.TotalCapacity) * 100
}

// RemainingCapacityFor computes the remaining capacity of a slot with the
// given per-slot maximum against the bookings that hold capacity at the exact
// slot start. For exclusive items a single capacity-holding booking consumes
// the whole slot regardless of the declared maximum.
func RemainingCapacityFor(def *SlotDefinition, isExclusive bool, occupying []*Booking) int {
	if isExclusive {
		if len(occupying) > 0 {
			return 0
		}
		return 1
	}

	taken := 0
	for _, b := range occupying {
		taken += b.NumberOfPeople
	}

	remaining := def.MaxBookingsPerSlot - taken
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}
