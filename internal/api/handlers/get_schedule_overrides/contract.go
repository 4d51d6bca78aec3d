package get_schedule_overrides

import (
	"context"

	"github.com/m04kA/SMB-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ListOverrides(ctx context.Context, req *models.ListOverridesRequest) (*models.OverridesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
