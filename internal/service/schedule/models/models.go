package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMB-BookingService/internal/domain"
	"github.com/m04kA/SMB-BookingService/pkg/types"
)

var (
	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidExceptionType возвращается при неизвестном типе исключения
	ErrInvalidExceptionType = errors.New("invalid exception type")
)

// Request модели

// SlotDefinitionDTO описание слота в запросе/ответе
type SlotDefinitionDTO struct {
	StartTime           string `json:"startTime"` // "10:00"
	EndTime             string `json:"endTime"`   // "11:00"
	MaxBookingsPerSlot  int    `json:"maxBookingsPerSlot"`
	MinPeoplePerBooking *int   `json:"minPeoplePerBooking,omitempty"`
	MaxPeoplePerBooking *int   `json:"maxPeoplePerBooking,omitempty"`
	BufferMinutes       *int   `json:"bufferMinutes,omitempty"`
	IsActive            bool   `json:"isActive"`
}

// DateOverrideDTO переопределение расписания на конкретную дату
type DateOverrideDTO struct {
	Date        string              `json:"date"` // "2025-10-15"
	IsAvailable bool                `json:"isAvailable"`
	Reason      *string             `json:"reason,omitempty"`
	Slots       []SlotDefinitionDTO `json:"slots,omitempty"`
}

// ScheduleExceptionDTO исключение из расписания
type ScheduleExceptionDTO struct {
	Type    string              `json:"type"` // closed | modified_hours | special_event
	Date    string              `json:"date"`
	EndDate *string             `json:"endDate,omitempty"`
	Reason  string              `json:"reason"`
	Slots   []SlotDefinitionDTO `json:"slots,omitempty"`
}

// ReplaceOverridesRequest запрос на полную замену CUSTOM-слоя позиции
type ReplaceOverridesRequest struct {
	UserID     int64                  `json:"userId"`
	ShopID     int64                  `json:"shopId"`
	ItemID     int64                  `json:"itemId"`
	Overrides  []DateOverrideDTO      `json:"overrides"`
	Exceptions []ScheduleExceptionDTO `json:"exceptions"`
}

// ListOverridesRequest запрос на получение CUSTOM-слоя позиции
type ListOverridesRequest struct {
	UserID int64 `json:"userId"`
	ShopID int64 `json:"shopId"`
	ItemID int64 `json:"itemId"`
}

// Response модели

// OverridesResponse ответ с CUSTOM-слоем позиции
type OverridesResponse struct {
	ItemID     int64                  `json:"itemId"`
	Overrides  []DateOverrideDTO      `json:"overrides"`
	Exceptions []ScheduleExceptionDTO `json:"exceptions"`
}

// Методы конвертации

// ToDomainSlot конвертирует DTO в domain модель
func (s *SlotDefinitionDTO) ToDomainSlot() domain.SlotDefinition {
	return domain.SlotDefinition{
		StartTime:           types.TimeString(s.StartTime),
		EndTime:             types.TimeString(s.EndTime),
		MaxBookingsPerSlot:  s.MaxBookingsPerSlot,
		MinPeoplePerBooking: s.MinPeoplePerBooking,
		MaxPeoplePerBooking: s.MaxPeoplePerBooking,
		BufferMinutes:       s.BufferMinutes,
		IsActive:            s.IsActive,
	}
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.SlotDefinition) SlotDefinitionDTO {
	return SlotDefinitionDTO{
		StartTime:           s.StartTime.String(),
		EndTime:             s.EndTime.String(),
		MaxBookingsPerSlot:  s.MaxBookingsPerSlot,
		MinPeoplePerBooking: s.MinPeoplePerBooking,
		MaxPeoplePerBooking: s.MaxPeoplePerBooking,
		BufferMinutes:       s.BufferMinutes,
		IsActive:            s.IsActive,
	}
}

// ToDomainOverride конвертирует DTO в domain модель
func (o *DateOverrideDTO) ToDomainOverride() (domain.DateOverride, error) {
	date, err := time.Parse(domain.DateFormat, o.Date)
	if err != nil {
		return domain.DateOverride{}, ErrInvalidDate
	}

	slots := make([]domain.SlotDefinition, len(o.Slots))
	for i := range o.Slots {
		slots[i] = o.Slots[i].ToDomainSlot()
	}

	return domain.DateOverride{
		Date:        date,
		IsAvailable: o.IsAvailable,
		Reason:      o.Reason,
		Slots:       slots,
	}, nil
}

// FromDomainOverride конвертирует domain модель в DTO
func FromDomainOverride(o *domain.DateOverride) DateOverrideDTO {
	slots := make([]SlotDefinitionDTO, len(o.Slots))
	for i := range o.Slots {
		slots[i] = FromDomainSlot(&o.Slots[i])
	}

	return DateOverrideDTO{
		Date:        o.Date.Format(domain.DateFormat),
		IsAvailable: o.IsAvailable,
		Reason:      o.Reason,
		Slots:       slots,
	}
}

// ToDomainException конвертирует DTO в domain модель
func (e *ScheduleExceptionDTO) ToDomainException() (domain.ScheduleException, error) {
	excType := domain.ExceptionType(e.Type)
	switch excType {
	case domain.ExceptionClosed, domain.ExceptionModifiedHours, domain.ExceptionSpecialEvent:
	default:
		return domain.ScheduleException{}, ErrInvalidExceptionType
	}

	date, err := time.Parse(domain.DateFormat, e.Date)
	if err != nil {
		return domain.ScheduleException{}, ErrInvalidDate
	}

	var endDate *time.Time
	if e.EndDate != nil {
		parsed, err := time.Parse(domain.DateFormat, *e.EndDate)
		if err != nil {
			return domain.ScheduleException{}, ErrInvalidDate
		}
		endDate = &parsed
	}

	slots := make([]domain.SlotDefinition, len(e.Slots))
	for i := range e.Slots {
		slots[i] = e.Slots[i].ToDomainSlot()
	}

	return domain.ScheduleException{
		Type:    excType,
		Date:    date,
		EndDate: endDate,
		Reason:  e.Reason,
		Slots:   slots,
	}, nil
}

// FromDomainException конвертирует domain модель в DTO
func FromDomainException(e *domain.ScheduleException) ScheduleExceptionDTO {
	slots := make([]SlotDefinitionDTO, len(e.Slots))
	for i := range e.Slots {
		slots[i] = FromDomainSlot(&e.Slots[i])
	}

	var endDate *string
	if e.EndDate != nil {
		formatted := e.EndDate.Format(domain.DateFormat)
		endDate = &formatted
	}

	return ScheduleExceptionDTO{
		Type:    string(e.Type),
		Date:    e.Date.Format(domain.DateFormat),
		EndDate: endDate,
		Reason:  e.Reason,
		Slots:   slots,
	}
}

// FromDomainLayers конвертирует CUSTOM-слой позиции в ответ
func FromDomainLayers(itemID int64, overrides []domain.DateOverride, exceptions []domain.ScheduleException) *OverridesResponse {
	resp := &OverridesResponse{
		ItemID:     itemID,
		Overrides:  make([]DateOverrideDTO, len(overrides)),
		Exceptions: make([]ScheduleExceptionDTO, len(exceptions)),
	}
	for i := range overrides {
		resp.Overrides[i] = FromDomainOverride(&overrides[i])
	}
	for i := range exceptions {
		resp.Exceptions[i] = FromDomainException(&exceptions[i])
	}
	return resp
}
