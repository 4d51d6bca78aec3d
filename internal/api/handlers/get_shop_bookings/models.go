package get_shop_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMB-BookingService/internal/domain"
	"github.com/m04kA/SMB-BookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	shopID int64,
	userID int64,
	itemIDStr string,
	statusStr string,
	startDateStr string,
	endDateStr string,
	includeInactiveStr string,
) (*models.GetShopBookingsRequest, error) {
	req := &models.GetShopBookingsRequest{
		UserID:          userID,
		ShopID:          shopID,
		IncludeInactive: false, // По умолчанию только удерживающие вместимость
	}

	// Парсим itemId если указан
	if itemIDStr != "" {
		itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ItemID = &itemID
	}

	// Парсим status если указан
	if statusStr != "" {
		req.Status = &statusStr
	}

	// Парсим период если указан. Одна дата задает период в один день.
	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
		req.EndDate = &startDate
	}
	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		if req.StartDate == nil {
			req.StartDate = &endDate
		}
		req.EndDate = &endDate
	}

	// Парсим includeInactive если указан
	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
