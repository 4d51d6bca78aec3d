package get_available_slots

import (
	"time"

	"github.com/m04kA/SMB-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMB-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date   string          `json:"date"`
	ShopID int64           `json:"shopId"`
	ItemID int64           `json:"itemId"`
	Slots  []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime         string `json:"startTime"`
	EndTime           string `json:"endTime"`
	RemainingCapacity int    `json:"remainingCapacity"`
	TotalCapacity     int    `json:"totalCapacity"`
	IsAvailable       bool   `json:"isAvailable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:         slot.StartTime.String(),
			EndTime:           slot.EndTime.String(),
			RemainingCapacity: slot.RemainingCapacity,
			TotalCapacity:     slot.TotalCapacity,
			IsAvailable:       slot.IsAvailable,
		}
	}

	return &AvailableSlotsResponse{
		Date:   resp.Date.Format(domain.DateFormat),
		ShopID: resp.ShopID,
		ItemID: resp.ItemID,
		Slots:  slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(userID, shopID, itemID int64, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		UserID: userID,
		ShopID: shopID,
		ItemID: itemID,
		Date:   date,
	}, nil
}
