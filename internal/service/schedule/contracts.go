package schedule

import (
	"context"

	"github.com/m04kA/SMB-BookingService/internal/domain"
	"github.com/m04kA/SMB-BookingService/internal/integrations/catalogservice"
)

// ScheduleRepository интерфейс репозитория переопределений расписания
type ScheduleRepository interface {
	GetOverridesByItem(ctx context.Context, itemID int64) ([]domain.DateOverride, error)
	GetExceptionsByItem(ctx context.Context, itemID int64) ([]domain.ScheduleException, error)
	ReplaceForItem(ctx context.Context, itemID int64, overrides []domain.DateOverride, exceptions []domain.ScheduleException) error
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetShop(ctx context.Context, shopID int64) (*catalogservice.Shop, error)
	GetItem(ctx context.Context, shopID, itemID int64) (*catalogservice.Item, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
