package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMB-BookingService/internal/domain"
	"github.com/m04kA/SMB-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/SMB-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ShopID <= 0 {
		return fmt.Errorf("%w: shopID must be positive", ErrInvalidInput)
	}

	if req.ItemID <= 0 {
		return fmt.Errorf("%w: itemID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.NumberOfPeople < 1 {
		return fmt.Errorf("%w: numberOfPeople must be at least 1", ErrInvalidInput)
	}

	return nil
}

// validateExtras проверяет, что все запрошенные доп. услуги принадлежат позиции
func validateExtras(item *catalogservice.Item, extraIDs []int64) error {
	for _, extraID := range extraIDs {
		found := false
		for i := range item.Extras {
			if item.Extras[i].ID != extraID {
				continue
			}
			found = true
			if item.Extras[i].RequiredItemID != nil && *item.Extras[i].RequiredItemID != item.ID {
				return fmt.Errorf("%w: extra id=%d", ErrExtraRequiresItem, extraID)
			}
			break
		}
		if !found {
			return fmt.Errorf("%w: extra id=%d", ErrExtraNotFound, extraID)
		}
	}
	return nil
}

// validateDateLimits проверяет дату целиком против лимитов бронирования.
// Порядок проверок фиксирован: прошлое -> same-day -> максимальный горизонт.
func validateDateLimits(date, now time.Time, limits *domain.BookingLimits) error {
	dateOnly := domain.DateOnly(date)
	today := domain.DateOnly(now)

	if dateOnly.Before(today) {
		return ErrInvalidDate
	}

	if dateOnly.Equal(today) && !limits.SameDayBooking {
		return ErrSameDayBookingNotAllowed
	}

	if limits.HasMaxAdvanceLimit() {
		maxDate := today.AddDate(0, 0, limits.MaxAdvanceDays)
		if dateOnly.After(maxDate) {
			return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, limits.MaxAdvanceDays)
		}
	}

	return nil
}

// validateMinAdvance проверяет, что до начала слота остается не меньше minAdvanceHours.
// Слот ровно на границе допустим.
func validateMinAdvance(date time.Time, startTime types.TimeString, now time.Time, limits *domain.BookingLimits) error {
	slotStart, err := startTime.At(date)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve slot start: %v", ErrInternal, err)
	}

	minAdvance := time.Duration(limits.MinAdvanceHours) * time.Hour
	if slotStart.Sub(now) < minAdvance {
		return fmt.Errorf("%w: must book at least %d hours in advance", ErrTooLateToBook, limits.MinAdvanceHours)
	}

	return nil
}

// validatePartySize проверяет количество человек против границ слота
func validatePartySize(def *domain.SlotDefinition, numberOfPeople int) error {
	if def.MinPeoplePerBooking != nil && numberOfPeople < *def.MinPeoplePerBooking {
		return fmt.Errorf("%w: at least %d people required", ErrPartySizeOutOfBounds, *def.MinPeoplePerBooking)
	}
	if def.MaxPeoplePerBooking != nil && numberOfPeople > *def.MaxPeoplePerBooking {
		return fmt.Errorf("%w: at most %d people allowed", ErrPartySizeOutOfBounds, *def.MaxPeoplePerBooking)
	}
	return nil
}

// findOfferedSlot ищет слот с точно совпадающим временем начала
func findOfferedSlot(defs []domain.SlotDefinition, startTime types.TimeString) *domain.SlotDefinition {
	for i := range defs {
		if defs[i].StartTime.Equal(startTime) {
			return &defs[i]
		}
	}
	return nil
}

// slotWithinWorkingHours проверяет, что слот целиком попадает в рабочие часы
// магазина (границы включительно)
func slotWithinWorkingHours(def *domain.SlotDefinition, hours catalogservice.DaySchedule) bool {
	if !hours.IsOpen || hours.OpenTime == nil || hours.CloseTime == nil {
		return false
	}
	open := types.TimeString(*hours.OpenTime)
	close := types.TimeString(*hours.CloseTime)
	return def.StartTime.InRange(open, close) && def.EndTime.InRange(open, close)
}

// slotDurationMinutes вычисляет длительность слота по его границам
func slotDurationMinutes(def *domain.SlotDefinition) (int, error) {
	start, err := def.StartTime.Minutes()
	if err != nil {
		return 0, err
	}
	end, err := def.EndTime.Minutes()
	if err != nil {
		return 0, err
	}
	return end - start, nil
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
