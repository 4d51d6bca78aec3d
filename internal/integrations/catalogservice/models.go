package catalogservice

import "github.com/m04kA/SMB-BookingService/internal/domain"

// Shop модель магазина из CatalogService
type Shop struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	ManagerIDs   []int64      `json:"manager_ids"`
	WorkingHours WeekSchedule `json:"working_hours"`
}

// IsManager проверяет, является ли пользователь менеджером магазина
func (s *Shop) IsManager(userID int64) bool {
	for _, id := range s.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// WeekSchedule расписание работы магазина по дням недели
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// DaySchedule рабочие часы магазина на один день недели
type DaySchedule struct {
	IsOpen    bool    `json:"is_open"`
	OpenTime  *string `json:"open_time,omitempty"`  // "09:00"
	CloseTime *string `json:"close_time,omitempty"` // "18:00"
}

// Item бронируемая позиция магазина: расписание, вместимость и лимиты
type Item struct {
	ID       int64                  `json:"id"`
	ShopID   int64                  `json:"shop_id"`
	Name     string                 `json:"name"`
	Price    *float64               `json:"price,omitempty"`
	Schedule domain.ScheduleConfig  `json:"schedule"`
	Capacity domain.BookingCapacity `json:"capacity"`
	Limits   domain.BookingLimits   `json:"limits"`
	Extras   []Extra                `json:"extras,omitempty"`
}

// Extra дополнительная услуга, опционально привязанная к конкретной позиции
type Extra struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Price          *float64 `json:"price,omitempty"`
	RequiredItemID *int64   `json:"required_item_id,omitempty"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
