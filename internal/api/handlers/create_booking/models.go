package create_booking

import (
	"time"

	"github.com/m04kA/SMB-BookingService/internal/domain"
	createBooking "github.com/m04kA/SMB-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMB-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ShopID         int64   `json:"shopId"`
	ItemID         int64   `json:"itemId"`
	BookingDate    string  `json:"bookingDate"` // "2025-10-15"
	StartTime      string  `json:"startTime"`   // "10:00"
	NumberOfPeople int     `json:"numberOfPeople"`
	ExtraIDs       []int64 `json:"extraIds,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64    `json:"id"`
	UserID          int64    `json:"userId"`
	ShopID          int64    `json:"shopId"`
	ItemID          int64    `json:"itemId"`
	BookingDate     string   `json:"bookingDate"`
	StartTime       string   `json:"startTime"`
	DurationMinutes int      `json:"durationMinutes"`
	NumberOfPeople  int      `json:"numberOfPeople"`
	Status          string   `json:"status"`
	ItemName        string   `json:"itemName"`
	ItemPrice       *float64 `json:"itemPrice,omitempty"`
	ExtraIDs        []int64  `json:"extraIds,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:         userID,
		ShopID:         r.ShopID,
		ItemID:         r.ItemID,
		Date:           bookingDate,
		StartTime:      startTime,
		NumberOfPeople: r.NumberOfPeople,
		ExtraIDs:       r.ExtraIDs,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		ShopID:          resp.ShopID,
		ItemID:          resp.ItemID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		NumberOfPeople:  resp.NumberOfPeople,
		Status:          resp.Status,
		ItemName:        resp.ItemName,
		ItemPrice:       resp.ItemPrice,
		ExtraIDs:        resp.ExtraIDs,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
