package jobs

import (
	"context"
	"time"
)

// BookingRepository операции фоновой чистки бронирований
type BookingRepository interface {
	MarkCompletedBefore(ctx context.Context, date time.Time) (int64, error)
	CancelPendingBefore(ctx context.Context, date time.Time, reason string) (int64, error)
}

type Logger interface {
	Info(format string, args ...interface{})
	Error(format string, args ...interface{})
}
