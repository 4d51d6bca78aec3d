package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMB-BookingService/internal/domain"
	catalogClient "github.com/m04kA/SMB-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/SMB-BookingService/internal/service/schedule/models"
)

// Service сервис для управления CUSTOM-слоем расписания позиции:
// переопределениями дат и исключениями. Базовое недельное расписание
// живет в CatalogService и здесь не редактируется.
type Service struct {
	scheduleRepo  ScheduleRepository
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:  scheduleRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// ListOverrides возвращает CUSTOM-слой позиции
// Доступно только менеджерам магазина
func (s *Service) ListOverrides(ctx context.Context, req *models.ListOverridesRequest) (*models.OverridesResponse, error) {
	s.logger.Info("ListOverrides: shop=%d, item=%d, user=%d", req.ShopID, req.ItemID, req.UserID)

	if err := s.checkItemAccess(ctx, req.ShopID, req.ItemID, req.UserID); err != nil {
		return nil, err
	}

	overrides, err := s.scheduleRepo.GetOverridesByItem(ctx, req.ItemID)
	if err != nil {
		s.logger.Error("ListOverrides: repository error for item=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: ListOverrides - repository error: %v", ErrInternal, err)
	}

	exceptions, err := s.scheduleRepo.GetExceptionsByItem(ctx, req.ItemID)
	if err != nil {
		s.logger.Error("ListOverrides: repository error for item=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: ListOverrides - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListOverrides: %d overrides, %d exceptions for item=%d",
		len(overrides), len(exceptions), req.ItemID)
	return models.FromDomainLayers(req.ItemID, overrides, exceptions), nil
}

// ReplaceOverrides полностью заменяет CUSTOM-слой позиции.
// Замена атомарна: удаление старого слоя и вставка нового выполняются
// в одной транзакции. Доступно только менеджерам магазина.
func (s *Service) ReplaceOverrides(ctx context.Context, req *models.ReplaceOverridesRequest) (*models.OverridesResponse, error) {
	s.logger.Info("ReplaceOverrides: shop=%d, item=%d, user=%d, overrides=%d, exceptions=%d",
		req.ShopID, req.ItemID, req.UserID, len(req.Overrides), len(req.Exceptions))

	if err := s.checkItemAccess(ctx, req.ShopID, req.ItemID, req.UserID); err != nil {
		return nil, err
	}

	overrides, exceptions, err := s.convertAndValidate(req)
	if err != nil {
		s.logger.Warn("ReplaceOverrides: validation failed for item=%d: %v", req.ItemID, err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.ReplaceForItem(txCtx, req.ItemID, overrides, exceptions)
	})
	if err != nil {
		s.logger.Error("ReplaceOverrides: repository error for item=%d: %v", req.ItemID, err)
		return nil, fmt.Errorf("%w: ReplaceOverrides - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceOverrides: successfully replaced layer for item=%d", req.ItemID)
	return models.FromDomainLayers(req.ItemID, overrides, exceptions), nil
}

// convertAndValidate конвертирует DTO в domain модели и валидирует слоты
func (s *Service) convertAndValidate(req *models.ReplaceOverridesRequest) ([]domain.DateOverride, []domain.ScheduleException, error) {
	overrides := make([]domain.DateOverride, len(req.Overrides))
	for i := range req.Overrides {
		ov, err := req.Overrides[i].ToDomainOverride()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: override %d: %v", ErrInvalidInput, i, err)
		}
		for j := range ov.Slots {
			if err := ov.Slots[j].Validate(); err != nil {
				return nil, nil, fmt.Errorf("%w: override %d, slot %d: %v", ErrInvalidInput, i, j, err)
			}
		}
		overrides[i] = ov
	}

	exceptions := make([]domain.ScheduleException, len(req.Exceptions))
	for i := range req.Exceptions {
		exc, err := req.Exceptions[i].ToDomainException()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: exception %d: %v", ErrInvalidInput, i, err)
		}
		for j := range exc.Slots {
			if err := exc.Slots[j].Validate(); err != nil {
				return nil, nil, fmt.Errorf("%w: exception %d, slot %d: %v", ErrInvalidInput, i, j, err)
			}
		}
		exceptions[i] = exc
	}

	return overrides, exceptions, nil
}

// checkItemAccess проверяет, что позиция принадлежит магазину, а пользователь
// является его менеджером
func (s *Service) checkItemAccess(ctx context.Context, shopID, itemID, userID int64) error {
	shop, err := s.catalogClient.GetShop(ctx, shopID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrShopNotFound) {
			s.logger.Warn("checkItemAccess: shop id=%d not found", shopID)
			return ErrShopNotFound
		}
		s.logger.Error("checkItemAccess: failed to get shop id=%d: %v", shopID, err)
		return fmt.Errorf("%w: checkItemAccess - failed to get shop: %v", ErrInternal, err)
	}

	if !shop.IsManager(userID) {
		s.logger.Warn("checkItemAccess: user=%d is not a manager of shop=%d", userID, shopID)
		return ErrAccessDenied
	}

	item, err := s.catalogClient.GetItem(ctx, shopID, itemID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrItemNotFound) {
			s.logger.Warn("checkItemAccess: item id=%d not found", itemID)
			return ErrItemNotFound
		}
		s.logger.Error("checkItemAccess: failed to get item id=%d: %v", itemID, err)
		return fmt.Errorf("%w: checkItemAccess - failed to get item: %v", ErrInternal, err)
	}

	if item.ShopID != shopID {
		s.logger.Warn("checkItemAccess: item id=%d belongs to shop id=%d, not %d", itemID, item.ShopID, shopID)
		return ErrItemNotInShop
	}

	return nil
}
