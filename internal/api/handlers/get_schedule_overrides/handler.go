package get_schedule_overrides

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMB-BookingService/internal/api/handlers"
	"github.com/m04kA/SMB-BookingService/internal/api/middleware"
	"github.com/m04kA/SMB-BookingService/internal/service/schedule"
	"github.com/m04kA/SMB-BookingService/internal/service/schedule/models"
)

const (
	msgInvalidShopID = "некорректный ID магазина"
	msgInvalidItemID = "некорректный ID позиции"
	msgMissingUserID = "отсутствует ID пользователя"
	msgShopNotFound  = "магазин не найден"
	msgItemNotFound  = "позиция не найдена"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/items/{itemId}/schedule-overrides
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	shopID, err := strconv.ParseInt(vars["shopId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{id}/items/{id}/schedule-overrides - Invalid shop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	itemID, err := strconv.ParseInt(vars["itemId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{id}/items/{id}/schedule-overrides - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /shops/{id}/items/{id}/schedule-overrides - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем CUSTOM-слой (сервис сам проверит права менеджера)
	result, err := h.service.ListOverrides(r.Context(), &models.ListOverridesRequest{
		UserID: userID,
		ShopID: shopID,
		ItemID: itemID,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrShopNotFound):
			h.logger.Warn("GET /shops/{id}/items/{id}/schedule-overrides - Shop not found: shop_id=%d", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, schedule.ErrItemNotFound), errors.Is(err, schedule.ErrItemNotInShop):
			h.logger.Warn("GET /shops/{id}/items/{id}/schedule-overrides - Item not found: shop_id=%d, item_id=%d",
				shopID, itemID)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("GET /shops/{id}/items/{id}/schedule-overrides - Access denied: shop_id=%d, user_id=%d",
				shopID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /shops/{id}/items/{id}/schedule-overrides - Failed to list overrides: item_id=%d, error=%v",
				itemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops/{id}/items/{id}/schedule-overrides - Overrides retrieved: item_id=%d, overrides=%d, exceptions=%d",
		itemID, len(result.Overrides), len(result.Exceptions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
