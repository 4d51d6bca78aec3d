package update_schedule_overrides

import (
	"context"

	"github.com/m04kA/SMB-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	ReplaceOverrides(ctx context.Context, req *models.ReplaceOverridesRequest) (*models.OverridesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
