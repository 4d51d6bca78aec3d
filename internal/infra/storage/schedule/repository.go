// Package schedule хранит CUSTOM-слой расписания: точечные переопределения
// дат и исключения (закрытия, измененные часы, события) для позиций магазинов.
// Базовое расписание (weekly/flexible) поставляется каталогом и здесь
// не хранится.
package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMB-BookingService/internal/domain"
	"github.com/m04kA/SMB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SMB-BookingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс выполнения запросов (см. dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий переопределений расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOverridesByItem получает все переопределения дат для позиции
func (r *Repository) GetOverridesByItem(ctx context.Context, itemID int64) ([]domain.DateOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"override_date",
		"is_available",
		"reason",
		"slots",
	).
		From("schedule_overrides").
		Where(squirrel.Eq{"item_id": itemID}).
		OrderBy("override_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOverridesByItem - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverridesByItem - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]domain.DateOverride, 0)
	for rows.Next() {
		var ov domain.DateOverride
		var slots []byte

		if err := rows.Scan(&ov.Date, &ov.IsAvailable, &ov.Reason, &slots); err != nil {
			return nil, fmt.Errorf("%w: GetOverridesByItem - scan row: %v", ErrScanRow, err)
		}
		if len(slots) > 0 {
			if err := json.Unmarshal(slots, &ov.Slots); err != nil {
				return nil, fmt.Errorf("%w: GetOverridesByItem - unmarshal slots: %v", ErrScanRow, err)
			}
		}
		overrides = append(overrides, ov)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOverridesByItem - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// GetExceptionsByItem получает все исключения расписания для позиции
func (r *Repository) GetExceptionsByItem(ctx context.Context, itemID int64) ([]domain.ScheduleException, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"exception_type",
		"start_date",
		"end_date",
		"reason",
		"slots",
	).
		From("schedule_exceptions").
		Where(squirrel.Eq{"item_id": itemID}).
		OrderBy("start_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptionsByItem - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptionsByItem - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]domain.ScheduleException, 0)
	for rows.Next() {
		var exc domain.ScheduleException
		var endDate sql.NullTime
		var reason sql.NullString
		var slots []byte

		if err := rows.Scan(&exc.Type, &exc.Date, &endDate, &reason, &slots); err != nil {
			return nil, fmt.Errorf("%w: GetExceptionsByItem - scan row: %v", ErrScanRow, err)
		}
		if endDate.Valid {
			d := endDate.Time
			exc.EndDate = &d
		}
		exc.Reason = reason.String
		if len(slots) > 0 {
			if err := json.Unmarshal(slots, &exc.Slots); err != nil {
				return nil, fmt.Errorf("%w: GetExceptionsByItem - unmarshal slots: %v", ErrScanRow, err)
			}
		}
		exceptions = append(exceptions, exc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetExceptionsByItem - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}

// ReplaceForItem заменяет весь CUSTOM-слой позиции: удаляет существующие
// переопределения и исключения и вставляет новые. Вызывается внутри
// транзакции (см. service/schedule).
func (r *Repository) ReplaceForItem(
	ctx context.Context,
	itemID int64,
	overrides []domain.DateOverride,
	exceptions []domain.ScheduleException,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, table := range []string{"schedule_overrides", "schedule_exceptions"} {
		query, args, err := psqlbuilder.Delete(table).
			Where(squirrel.Eq{"item_id": itemID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: ReplaceForItem - build delete query: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: ReplaceForItem - execute delete: %v", ErrExecQuery, err)
		}
	}

	for i := range overrides {
		ov := &overrides[i]

		slots, err := marshalSlots(ov.Slots)
		if err != nil {
			return fmt.Errorf("%w: ReplaceForItem - marshal override slots: %v", ErrBuildQuery, err)
		}

		query, args, err := psqlbuilder.Insert("schedule_overrides").
			Columns("item_id", "override_date", "is_available", "reason", "slots").
			Values(itemID, domain.DateOnly(ov.Date), ov.IsAvailable, ov.Reason, slots).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: ReplaceForItem - build override insert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: ReplaceForItem - execute override insert: %v", ErrExecQuery, err)
		}
	}

	for i := range exceptions {
		exc := &exceptions[i]

		slots, err := marshalSlots(exc.Slots)
		if err != nil {
			return fmt.Errorf("%w: ReplaceForItem - marshal exception slots: %v", ErrBuildQuery, err)
		}

		var endDate interface{}
		if exc.EndDate != nil {
			endDate = domain.DateOnly(*exc.EndDate)
		}

		query, args, err := psqlbuilder.Insert("schedule_exceptions").
			Columns("item_id", "exception_type", "start_date", "end_date", "reason", "slots").
			Values(itemID, exc.Type, domain.DateOnly(exc.Date), endDate, exc.Reason, slots).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: ReplaceForItem - build exception insert: %v", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: ReplaceForItem - execute exception insert: %v", ErrExecQuery, err)
		}
	}

	return nil
}

func marshalSlots(slots []domain.SlotDefinition) (interface{}, error) {
	if len(slots) == 0 {
		return nil, nil
	}
	return json.Marshal(slots)
}
