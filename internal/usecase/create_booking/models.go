package create_booking

import (
	"time"

	"github.com/m04kA/SMB-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID         int64            // ID пользователя
	ShopID         int64            // ID магазина
	ItemID         int64            // ID бронируемой позиции
	Date           time.Time        // Дата бронирования (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")
	NumberOfPeople int              // Количество человек в бронировании
	ExtraIDs       []int64          // ID дополнительных услуг (опционально)
	Notes          *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	UserID          int64            // ID пользователя
	ShopID          int64            // ID магазина
	ItemID          int64            // ID позиции
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	NumberOfPeople  int              // Количество человек
	Status          string           // Статус бронирования

	// Денормализованные данные позиции
	ItemName  string   // Название позиции
	ItemPrice *float64 // Цена позиции
	ExtraIDs  []int64  // ID выбранных доп. услуг
	Notes     *string  // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
