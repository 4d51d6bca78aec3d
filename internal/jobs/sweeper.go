package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Причина отмены для бронирований, не подтвержденных до даты визита
const expiredPendingReason = "бронирование не было подтверждено"

// Sweeper фоновая задача переводит прошедшие бронирования в финальные статусы:
// подтвержденные - в completed, неподтвержденные - в cancelled.
// Оба перехода разрешены машиной статусов бронирования.
type Sweeper struct {
	bookingRepo BookingRepository
	logger      Logger
	cron        *cron.Cron
	timeout     time.Duration
}

func NewSweeper(bookingRepo BookingRepository, logger Logger) *Sweeper {
	return &Sweeper{
		bookingRepo: bookingRepo,
		logger:      logger,
		cron:        cron.New(),
		timeout:     time.Minute,
	}
}

// Start регистрирует задачу по cron-выражению и запускает планировщик
func (s *Sweeper) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return fmt.Errorf("jobs: add sweep job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Jobs: booking sweeper started, schedule=%q", schedule)
	return nil
}

// Stop останавливает планировщик и дожидается завершения текущего запуска
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Jobs: booking sweeper stopped")
}

func (s *Sweeper) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.Sweep(ctx, time.Now()); err != nil {
		s.logger.Error("Jobs: sweep failed: %v", err)
	}
}

// Sweep закрывает бронирования с датой раньше сегодняшней
func (s *Sweeper) Sweep(ctx context.Context, now time.Time) error {
	completed, err := s.bookingRepo.MarkCompletedBefore(ctx, now)
	if err != nil {
		return fmt.Errorf("mark completed: %w", err)
	}

	cancelled, err := s.bookingRepo.CancelPendingBefore(ctx, now, expiredPendingReason)
	if err != nil {
		return fmt.Errorf("cancel expired pending: %w", err)
	}

	if completed > 0 || cancelled > 0 {
		s.logger.Info("Jobs: sweep done, completed=%d, cancelled=%d", completed, cancelled)
	}

	return nil
}
