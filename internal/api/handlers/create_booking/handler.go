package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMB-BookingService/internal/api/handlers"
	"github.com/m04kA/SMB-BookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMB-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgShopNotFound         = "магазин не найден"
	msgItemNotFound         = "позиция не найдена"
	msgItemNotInShop        = "позиция недоступна в выбранном магазине"
	msgExtraNotFound        = "дополнительная услуга не найдена"
	msgExtraRequiresItem    = "дополнительная услуга недоступна для выбранной позиции"
	msgInvalidBookingDate   = "некорректная дата бронирования"
	msgSameDayForbidden     = "бронирование на сегодня недоступно"
	msgDateTooFar           = "дата бронирования слишком далеко в будущем"
	msgShopClosed           = "магазин закрыт в выбранную дату"
	msgSlotNotOffered       = "выбранное время не предлагается для бронирования"
	msgTooLateToBook        = "слишком поздно для бронирования этого слота"
	msgPartySizeOutOfBounds = "недопустимое количество человек для этого слота"
	msgSlotAlreadyTaken     = "выбранный слот уже занят"
	msgCapacityExceeded     = "в выбранном слоте недостаточно мест"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createBooking.ErrSlotAlreadyTaken):
			h.logger.Warn("POST /bookings - Slot already taken: user_id=%d, shop_id=%d", userID, req.ShopID)
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyTaken)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: user_id=%d, shop_id=%d", userID, req.ShopID)
			handlers.RespondError(w, http.StatusConflict, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrShopNotFound):
			h.logger.Warn("POST /bookings - Shop not found: shop_id=%d", req.ShopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, createBooking.ErrItemNotFound):
			h.logger.Warn("POST /bookings - Item not found: shop_id=%d, item_id=%d", req.ShopID, req.ItemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, createBooking.ErrItemNotInShop):
			h.logger.Warn("POST /bookings - Item not in shop: shop_id=%d, item_id=%d", req.ShopID, req.ItemID)
			handlers.RespondBadRequest(w, msgItemNotInShop)

		case errors.Is(err, createBooking.ErrExtraNotFound):
			h.logger.Warn("POST /bookings - Extra not found: item_id=%d", req.ItemID)
			handlers.RespondNotFound(w, msgExtraNotFound)

		case errors.Is(err, createBooking.ErrExtraRequiresItem):
			h.logger.Warn("POST /bookings - Extra requires different item: item_id=%d", req.ItemID)
			handlers.RespondBadRequest(w, msgExtraRequiresItem)

		case errors.Is(err, createBooking.ErrShopClosed):
			h.logger.Warn("POST /bookings - Shop closed: user_id=%d, shop_id=%d", userID, req.ShopID)
			handlers.RespondBadRequest(w, msgShopClosed)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, shop_id=%d", userID, req.ShopID)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrSameDayBookingNotAllowed):
			h.logger.Warn("POST /bookings - Same-day booking forbidden: user_id=%d, shop_id=%d", userID, req.ShopID)
			handlers.RespondBadRequest(w, msgSameDayForbidden)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /bookings - Date too far in future: user_id=%d, shop_id=%d", userID, req.ShopID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrSlotNotOffered):
			h.logger.Warn("POST /bookings - Slot not offered: user_id=%d, shop_id=%d", userID, req.ShopID)
			handlers.RespondBadRequest(w, msgSlotNotOffered)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: user_id=%d, shop_id=%d", userID, req.ShopID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrPartySizeOutOfBounds):
			h.logger.Warn("POST /bookings - Party size out of bounds: user_id=%d, shop_id=%d", userID, req.ShopID)
			handlers.RespondBadRequest(w, msgPartySizeOutOfBounds)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, shop_id=%d, error=%v",
				userID, req.ShopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, shop_id=%d",
		result.ID, userID, req.ShopID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
