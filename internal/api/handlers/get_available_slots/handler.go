package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMB-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMB-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidShopID  = "некорректный ID магазина"
	msgInvalidItemID  = "некорректный ID позиции"
	msgMissingDate    = "дата обязательна"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgShopNotFound   = "магазин не найден"
	msgItemNotFound   = "позиция не найдена"
	msgItemNotInShop  = "позиция недоступна в выбранном магазине"
	msgInvalidRequest = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/items/{itemId}/available-slots
// Query params: date (required, YYYY-MM-DD), userId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем shopId из URL
	shopID, err := strconv.ParseInt(vars["shopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{id}/items/{id}/available-slots - Invalid shop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	// Извлекаем itemId из URL
	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{id}/items/{id}/available-slots - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /shops/{id}/items/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// userId опционален: эндпоинт публичный, ID используется для логирования
	var userID int64
	if userIDStr := r.URL.Query().Get("userId"); userIDStr != "" {
		userID, _ = strconv.ParseInt(userIDStr, 10, 64)
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(userID, shopID, itemID, dateStr)
	if err != nil {
		h.logger.Warn("GET /shops/{id}/items/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrShopNotFound):
			h.logger.Warn("GET /shops/{id}/items/{id}/available-slots - Shop not found: shop_id=%d", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, getAvailableSlots.ErrItemNotFound):
			h.logger.Warn("GET /shops/{id}/items/{id}/available-slots - Item not found: shop_id=%d, item_id=%d",
				shopID, itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, getAvailableSlots.ErrItemNotInShop):
			h.logger.Warn("GET /shops/{id}/items/{id}/available-slots - Item not in shop: shop_id=%d, item_id=%d",
				shopID, itemID)
			handlers.RespondBadRequest(w, msgItemNotInShop)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /shops/{id}/items/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /shops/{id}/items/{id}/available-slots - Failed to get slots: shop_id=%d, item_id=%d, error=%v",
				shopID, itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /shops/{id}/items/{id}/available-slots - Slots retrieved successfully: shop_id=%d, item_id=%d, slots_count=%d",
		shopID, itemID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
