package update_schedule_overrides

import (
	"github.com/m04kA/SMB-BookingService/internal/service/schedule/models"
)

// UpdateOverridesRequest HTTP request model: полная замена CUSTOM-слоя позиции
type UpdateOverridesRequest struct {
	Overrides  []models.DateOverrideDTO      `json:"overrides"`
	Exceptions []models.ScheduleExceptionDTO `json:"exceptions"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateOverridesRequest) ToServiceRequest(userID, shopID, itemID int64) *models.ReplaceOverridesRequest {
	return &models.ReplaceOverridesRequest{
		UserID:     userID,
		ShopID:     shopID,
		ItemID:     itemID,
		Overrides:  r.Overrides,
		Exceptions: r.Exceptions,
	}
}
