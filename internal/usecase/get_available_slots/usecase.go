package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMB-BookingService/internal/domain"
	catalogClient "github.com/m04kA/SMB-BookingService/internal/integrations/catalogservice"
)

// UseCase use case для получения доступных слотов для бронирования.
// Для фиксированных (item, date, now, bookings) результат детерминирован:
// никаких скрытых обращений к часам, кроме timeProvider.
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	catalogClient CatalogServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		catalogClient: catalogClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, shop=%d, item=%d, date=%s",
		req.UserID, req.ShopID, req.ItemID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем магазин
	shop, err := uc.catalogClient.GetShop(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrShopNotFound) {
			uc.logger.Warn("GetAvailableSlots: shop id=%d not found", req.ShopID)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get shop id=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	// 4. Получаем позицию с конфигурацией расписания и лимитами
	item, err := uc.catalogClient.GetItem(ctx, req.ShopID, req.ItemID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrItemNotFound) {
			uc.logger.Warn("GetAvailableSlots: item id=%d not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get item id=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}
	if item.ShopID != req.ShopID {
		uc.logger.Warn("GetAvailableSlots: item id=%d belongs to shop id=%d, not %d",
			req.ItemID, item.ShopID, req.ShopID)
		return nil, ErrItemNotInShop
	}

	// 5. Проверяем дату целиком против лимитов бронирования.
	// Прошлая дата, запрещенный same-day и превышение горизонта - не ошибки,
	// а пустой список слотов.
	if gate := checkDateGates(req.Date, now, &item.Limits); gate != dateAllowed {
		uc.logger.Info("GetAvailableSlots: date %s dropped (gate=%d) for item=%d",
			req.Date.Format(domain.DateFormat), gate, req.ItemID)
		return emptyResponse(req), nil
	}

	// 6. Загружаем CUSTOM-слой расписания (переопределения дат и исключения)
	cfg := item.Schedule
	storedOverrides, err := uc.scheduleRepo.GetOverridesByItem(ctx, req.ItemID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get overrides for item=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get schedule overrides: %v", ErrInternal, err)
	}
	storedExceptions, err := uc.scheduleRepo.GetExceptionsByItem(ctx, req.ItemID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get exceptions for item=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get schedule exceptions: %v", ErrInternal, err)
	}
	// Локально управляемый слой имеет приоритет над поставляемым каталогом
	cfg.Overrides = append(storedOverrides, cfg.Overrides...)
	cfg.Exceptions = append(storedExceptions, cfg.Exceptions...)

	// 7. Разрешаем слоты на дату (exception > override > weekly)
	defs, err := cfg.ResolveSlots(req.Date)
	if err != nil {
		// Некорректная конфигурация расписания - дефект, который нужно
		// поднять наверх, а не молча вернуть пустой список
		uc.logger.Error("GetAvailableSlots: failed to resolve slots for item=%d: %v", req.ItemID, err)
		return nil, err
	}

	// 8. Отбрасываем слоты вне рабочих часов магазина
	workingHours := getWorkingHoursForDay(shop, req.Date)
	defs = filterByBusinessHours(defs, workingHours)

	// 9. Отбрасываем слоты ближе minAdvanceHours к текущему моменту
	defs, err = filterByMinAdvance(defs, req.Date, now, &item.Limits)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to filter by min advance: %v", err)
		return nil, fmt.Errorf("%w: failed to filter slots: %v", ErrInternal, err)
	}

	// 10. Получаем бронирования, удерживающие вместимость на эту дату
	bookings, err := uc.bookingRepo.GetByItemAndDate(ctx, req.ItemID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 11. Вычисляем остаточную вместимость каждого слота
	slots := calculateAvailability(defs, req.Date, bookings, item.Capacity.IsExclusive)

	uc.logger.Info("GetAvailableSlots: %d slots for shop=%d, item=%d, date=%s",
		len(slots), req.ShopID, req.ItemID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:   req.Date,
		ShopID: req.ShopID,
		ItemID: req.ItemID,
		Slots:  slots,
	}, nil
}

func emptyResponse(req *Request) *Response {
	return &Response{
		Date:   req.Date,
		ShopID: req.ShopID,
		ItemID: req.ItemID,
		Slots:  []Slot{},
	}
}
