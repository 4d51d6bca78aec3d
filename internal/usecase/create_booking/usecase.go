package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMB-BookingService/internal/domain"
	catalogClient "github.com/m04kA/SMB-BookingService/internal/integrations/catalogservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка вместимости и вставка выполняются в одной сериализуемой
// транзакции: два конкурентных запроса на последнее место не могут
// пройти проверку одновременно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, shop=%d, item=%d, date=%s, time=%s, people=%d",
		req.UserID, req.ShopID, req.ItemID, req.Date.Format(domain.DateFormat), req.StartTime, req.NumberOfPeople)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем магазин
	shop, err := uc.catalogClient.GetShop(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrShopNotFound) {
			uc.logger.Warn("CreateBooking: shop id=%d not found", req.ShopID)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("CreateBooking: failed to get shop id=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	// 4. Получаем позицию с конфигурацией расписания и лимитами
	item, err := uc.catalogClient.GetItem(ctx, req.ShopID, req.ItemID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrItemNotFound) {
			uc.logger.Warn("CreateBooking: item id=%d not found", req.ItemID)
			return nil, ErrItemNotFound
		}
		uc.logger.Error("CreateBooking: failed to get item id=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
	}
	if item.ShopID != req.ShopID {
		uc.logger.Warn("CreateBooking: item id=%d belongs to shop id=%d, not %d",
			req.ItemID, item.ShopID, req.ShopID)
		return nil, ErrItemNotInShop
	}

	// 5. Проверяем запрошенные доп. услуги
	if err := validateExtras(item, req.ExtraIDs); err != nil {
		uc.logger.Warn("CreateBooking: extras validation failed: %v", err)
		return nil, err
	}

	// 6. Проверяем дату против лимитов бронирования
	if err := validateDateLimits(req.Date, now, &item.Limits); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 7. Проверяем, что магазин открыт в этот день
	workingHours := getWorkingHoursForDay(shop, req.Date)
	if !workingHours.IsOpen {
		uc.logger.Warn("CreateBooking: shop is closed on %s", req.Date.Format(domain.DateFormat))
		return nil, ErrShopClosed
	}

	// 8. Проверяем minAdvanceHours для запрошенного времени
	if err := validateMinAdvance(req.Date, req.StartTime, now, &item.Limits); err != nil {
		uc.logger.Warn("CreateBooking: min advance validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 9. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 9.1. Загружаем CUSTOM-слой расписания и разрешаем слоты на дату
		cfg := item.Schedule
		storedOverrides, err := uc.scheduleRepo.GetOverridesByItem(txCtx, req.ItemID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get overrides for item=%d: %v", req.ItemID, err)
			return fmt.Errorf("%w: failed to get schedule overrides: %v", ErrInternal, err)
		}
		storedExceptions, err := uc.scheduleRepo.GetExceptionsByItem(txCtx, req.ItemID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get exceptions for item=%d: %v", req.ItemID, err)
			return fmt.Errorf("%w: failed to get schedule exceptions: %v", ErrInternal, err)
		}
		cfg.Overrides = append(storedOverrides, cfg.Overrides...)
		cfg.Exceptions = append(storedExceptions, cfg.Exceptions...)

		defs, err := cfg.ResolveSlots(req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to resolve slots for item=%d: %v", req.ItemID, err)
			return err
		}

		// 9.2. Запрошенное время должно точно совпадать с одним из слотов
		def := findOfferedSlot(defs, req.StartTime)
		if def == nil {
			uc.logger.Warn("CreateBooking: slot %s is not offered on %s",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotOffered
		}

		// 9.3. Слот должен целиком попадать в рабочие часы магазина
		if !slotWithinWorkingHours(def, workingHours) {
			uc.logger.Warn("CreateBooking: slot %s-%s is outside working hours", def.StartTime, def.EndTime)
			return ErrSlotNotOffered
		}

		// 9.4. Проверяем количество человек против границ слота
		if err := validatePartySize(def, req.NumberOfPeople); err != nil {
			uc.logger.Warn("CreateBooking: party size validation failed: %v", err)
			return err
		}

		// 9.5. Получаем бронирования, удерживающие вместимость, с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByItemAndDate(txCtx, req.ItemID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 9.6. Проверяем остаточную вместимость слота.
		// Учитываются только бронирования с точно совпадающим временем начала.
		occupying := make([]*domain.Booking, 0)
		for _, b := range bookings {
			if b.OccupiesSlot(req.Date, def.StartTime) {
				occupying = append(occupying, b)
			}
		}

		remaining := domain.RemainingCapacityFor(def, item.Capacity.IsExclusive, occupying)
		if item.Capacity.IsExclusive {
			if remaining < 1 {
				uc.logger.Warn("CreateBooking: exclusive slot %s already taken", def.StartTime)
				return ErrSlotAlreadyTaken
			}
		} else if remaining < req.NumberOfPeople {
			uc.logger.Warn("CreateBooking: capacity exceeded, %d remaining, %d requested",
				remaining, req.NumberOfPeople)
			return ErrCapacityExceeded
		}

		uc.logger.Info("CreateBooking: slot available, %d remaining before booking", remaining)

		duration, err := slotDurationMinutes(def)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to compute slot duration: %v", err)
			return fmt.Errorf("%w: failed to compute slot duration: %v", ErrInternal, err)
		}

		// 9.7. Создаем бронирование с денормализацией данных позиции
		booking := &domain.Booking{
			UserID:          req.UserID,
			ShopID:          req.ShopID,
			ItemID:          req.ItemID,
			BookingDate:     req.Date,
			StartTime:       def.StartTime,
			DurationMinutes: duration,
			NumberOfPeople:  req.NumberOfPeople,
			Status:          domain.StatusPending,
			// Денормализация данных позиции
			ItemName:  item.Name,
			ItemPrice: item.Price,
			ExtraIDs:  req.ExtraIDs,
			// Заметки
			Notes: req.Notes,
		}

		// 9.8. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		ShopID:          result.ShopID,
		ItemID:          result.ItemID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		NumberOfPeople:  result.NumberOfPeople,
		Status:          string(result.Status),
		ItemName:        result.ItemName,
		ItemPrice:       result.ItemPrice,
		ExtraIDs:        result.ExtraIDs,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
