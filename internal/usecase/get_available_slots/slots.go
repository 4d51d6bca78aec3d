package get_available_slots

import (
	"time"

	"github.com/m04kA/SMB-BookingService/internal/domain"
	"github.com/m04kA/SMB-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/SMB-BookingService/pkg/types"
)

// dateGate причина, по которой дата целиком не предлагается для бронирования
type dateGate int

const (
	dateAllowed dateGate = iota
	datePast             // дата в прошлом
	dateSameDayForbidden // сегодня, но sameDayBooking выключен
	dateTooFar           // дальше maxAdvanceDays от сегодня
)

// checkDateGates проверяет дату целиком против лимитов бронирования.
// Порядок проверок фиксирован: прошлое -> same-day -> максимальный горизонт.
func checkDateGates(date, now time.Time, limits *domain.BookingLimits) dateGate {
	dateOnly := domain.DateOnly(date)
	today := domain.DateOnly(now)

	if dateOnly.Before(today) {
		return datePast
	}

	if dateOnly.Equal(today) && !limits.SameDayBooking {
		return dateSameDayForbidden
	}

	if limits.HasMaxAdvanceLimit() {
		maxDate := today.AddDate(0, 0, limits.MaxAdvanceDays)
		if dateOnly.After(maxDate) {
			return dateTooFar
		}
	}

	return dateAllowed
}

// filterByBusinessHours оставляет слоты, целиком попадающие в рабочие часы
// магазина (границы включительно: слот может начинаться ровно в открытие
// и заканчиваться ровно в закрытие). Если магазин закрыт в этот день -
// слотов нет.
func filterByBusinessHours(defs []domain.SlotDefinition, hours catalogservice.DaySchedule) []domain.SlotDefinition {
	if !hours.IsOpen || hours.OpenTime == nil || hours.CloseTime == nil {
		return []domain.SlotDefinition{}
	}

	open := types.TimeString(*hours.OpenTime)
	close := types.TimeString(*hours.CloseTime)

	result := make([]domain.SlotDefinition, 0, len(defs))
	for _, def := range defs {
		if def.StartTime.InRange(open, close) && def.EndTime.InRange(open, close) {
			result = append(result, def)
		}
	}
	return result
}

// filterByMinAdvance оставляет слоты, начинающиеся не раньше чем через
// minAdvanceHours от текущего момента. Это единственный last-minute фильтр:
// дополнительных порогов для lastMinuteBooking нет.
func filterByMinAdvance(defs []domain.SlotDefinition, date, now time.Time, limits *domain.BookingLimits) ([]domain.SlotDefinition, error) {
	minAdvance := time.Duration(limits.MinAdvanceHours) * time.Hour

	result := make([]domain.SlotDefinition, 0, len(defs))
	for _, def := range defs {
		slotStart, err := def.StartTime.At(date)
		if err != nil {
			return nil, err
		}
		// Слот ровно на границе minAdvanceHours включается
		if slotStart.Sub(now) >= minAdvance {
			result = append(result, def)
		}
	}
	return result, nil
}

// calculateAvailability вычисляет остаточную вместимость каждого слота.
// Учитываются только бронирования с точно совпадающим временем начала и
// статусом из domain.CapacityHoldingStatuses. Порядок генерации сохраняется.
func calculateAvailability(
	defs []domain.SlotDefinition,
	date time.Time,
	bookings []*domain.Booking,
	isExclusive bool,
) []Slot {
	result := make([]Slot, len(defs))

	for i := range defs {
		def := &defs[i]

		occupying := make([]*domain.Booking, 0)
		for _, b := range bookings {
			if b.OccupiesSlot(date, def.StartTime) {
				occupying = append(occupying, b)
			}
		}

		remaining := domain.RemainingCapacityFor(def, isExclusive, occupying)

		total := def.MaxBookingsPerSlot
		if isExclusive {
			// Эксклюзивная позиция: одно бронирование занимает слот целиком
			total = 1
		}

		result[i] = Slot{
			StartTime:         def.StartTime,
			EndTime:           def.EndTime,
			RemainingCapacity: remaining,
			TotalCapacity:     total,
			IsAvailable:       remaining > 0,
		}
	}

	return result
}

// getWorkingHoursForDay возвращает рабочие часы магазина на день недели даты
func getWorkingHoursForDay(shop *catalogservice.Shop, date time.Time) catalogservice.DaySchedule {
	switch date.Weekday() {
	case time.Monday:
		return shop.WorkingHours.Monday
	case time.Tuesday:
		return shop.WorkingHours.Tuesday
	case time.Wednesday:
		return shop.WorkingHours.Wednesday
	case time.Thursday:
		return shop.WorkingHours.Thursday
	case time.Friday:
		return shop.WorkingHours.Friday
	case time.Saturday:
		return shop.WorkingHours.Saturday
	case time.Sunday:
		return shop.WorkingHours.Sunday
	default:
		return catalogservice.DaySchedule{IsOpen: false}
	}
}
