package get_available_slots

import (
	"time"

	"github.com/m04kA/SMB-BookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID int64     // ID пользователя (для логирования, не влияет на результат)
	ShopID int64     // ID магазина
	ItemID int64     // ID бронируемой позиции
	Date   time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date   time.Time // Дата, на которую запрашивались слоты
	ShopID int64     // ID магазина
	ItemID int64     // ID позиции
	Slots  []Slot    // Список слотов в порядке генерации
}

// Slot модель временного слота с остаточной вместимостью
type Slot struct {
	StartTime         types.TimeString // Время начала слота (например, "10:00")
	EndTime           types.TimeString // Время конца слота
	RemainingCapacity int              // Остаточная вместимость
	TotalCapacity     int              // Полная вместимость слота
	IsAvailable       bool             // remainingCapacity > 0
}
