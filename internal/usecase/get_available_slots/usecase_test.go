package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMB-BookingService/internal/domain"
	"github.com/m04kA/SMB-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/SMB-BookingService/pkg/ptr"
	"github.com/m04kA/SMB-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByItemAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeScheduleRepo struct {
	overrides  []domain.DateOverride
	exceptions []domain.ScheduleException
}

func (f *fakeScheduleRepo) GetOverridesByItem(_ context.Context, _ int64) ([]domain.DateOverride, error) {
	return f.overrides, nil
}

func (f *fakeScheduleRepo) GetExceptionsByItem(_ context.Context, _ int64) ([]domain.ScheduleException, error) {
	return f.exceptions, nil
}

type fakeCatalogClient struct {
	shop    *catalogservice.Shop
	shopErr error
	item    *catalogservice.Item
	itemErr error
}

func (f *fakeCatalogClient) GetShop(_ context.Context, _ int64) (*catalogservice.Shop, error) {
	return f.shop, f.shopErr
}

func (f *fakeCatalogClient) GetItem(_ context.Context, _, _ int64) (*catalogservice.Item, error) {
	return f.item, f.itemErr
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func allWeekOpen(open, close string) catalogservice.WeekSchedule {
	day := catalogservice.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr(open),
		CloseTime: ptr.Ptr(close),
	}
	return catalogservice.WeekSchedule{
		Monday:    day,
		Tuesday:   day,
		Wednesday: day,
		Thursday:  day,
		Friday:    day,
		Saturday:  day,
		Sunday:    day,
	}
}

func testShop() *catalogservice.Shop {
	return &catalogservice.Shop{
		ID:           1,
		Name:         "Test Shop",
		WorkingHours: allWeekOpen("09:00", "21:00"),
	}
}

// fixedItem - позиция с фиксированным недельным расписанием:
// вторник 14:00-15:00, вместимость 2.
func fixedItem() *catalogservice.Item {
	return &catalogservice.Item{
		ID:     10,
		ShopID: 1,
		Name:   "Haircut",
		Schedule: domain.ScheduleConfig{
			Type: domain.ScheduleTypeFixed,
			Weekly: []domain.WeeklySlotRule{
				{
					DayOfWeek:   time.Tuesday,
					IsAvailable: true,
					Slots: []domain.SlotDefinition{
						{StartTime: "14:00", EndTime: "15:00", MaxBookingsPerSlot: 2, IsActive: true},
					},
				},
			},
		},
		Capacity: domain.BookingCapacity{MaxCapacity: 2, DurationMinutes: 60},
		Limits: domain.BookingLimits{
			MinAdvanceHours: 2,
			MaxAdvanceDays:  30,
			SameDayBooking:  true,
		},
	}
}

func newTestUseCase(
	bookingRepo *fakeBookingRepo,
	scheduleRepo *fakeScheduleRepo,
	catalog *fakeCatalogClient,
	now time.Time,
) *UseCase {
	uc := NewUseCase(bookingRepo, scheduleRepo, catalog, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

// Вторник 2025-06-10.
var tuesday = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

func TestExecute_SameDayMinAdvanceCutoff(t *testing.T) {
	ctx := context.Background()
	req := &Request{UserID: 7, ShopID: 1, ItemID: 10, Date: tuesday}

	t.Run("slot within min advance window is dropped", func(t *testing.T) {
		// 13:30, слот 14:00 через 30 минут < 2 часов
		now := time.Date(2025, 6, 10, 13, 30, 0, 0, time.UTC)
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), item: fixedItem()}, now)

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("slot outside min advance window is offered", func(t *testing.T) {
		// 11:30, слот 14:00 через 2.5 часа >= 2 часов
		now := time.Date(2025, 6, 10, 11, 30, 0, 0, time.UTC)
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), item: fixedItem()}, now)

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, types.TimeString("14:00"), resp.Slots[0].StartTime)
		assert.Equal(t, 2, resp.Slots[0].RemainingCapacity)
		assert.True(t, resp.Slots[0].IsAvailable)
	})

	t.Run("slot exactly on min advance boundary is offered", func(t *testing.T) {
		// 12:00, слот 14:00 ровно через 2 часа
		now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), item: fixedItem()}, now)

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
	})
}

func TestExecute_DateGates(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	t.Run("past date returns empty slots", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), item: fixedItem()}, now)

		resp, err := uc.Execute(ctx, &Request{ShopID: 1, ItemID: 10, Date: tuesday.AddDate(0, 0, -7)})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("same day forbidden returns empty slots", func(t *testing.T) {
		item := fixedItem()
		item.Limits.SameDayBooking = false
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), item: item}, now)

		resp, err := uc.Execute(ctx, &Request{ShopID: 1, ItemID: 10, Date: tuesday})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("date beyond max advance returns empty slots", func(t *testing.T) {
		item := fixedItem()
		item.Limits.MaxAdvanceDays = 7
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), item: item}, now)

		resp, err := uc.Execute(ctx, &Request{ShopID: 1, ItemID: 10, Date: tuesday.AddDate(0, 0, 14)})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("date exactly at max advance is allowed", func(t *testing.T) {
		item := fixedItem()
		item.Limits.MaxAdvanceDays = 7
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), item: item}, now)

		// 2025-06-17 - следующий вторник, ровно через 7 дней
		resp, err := uc.Execute(ctx, &Request{ShopID: 1, ItemID: 10, Date: tuesday.AddDate(0, 0, 7)})
		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
	})

	t.Run("zero max advance disables the horizon gate", func(t *testing.T) {
		item := fixedItem()
		item.Limits.MaxAdvanceDays = 0
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), item: item}, now)

		// Вторник через год: без настроенного горизонта дата доступна
		resp, err := uc.Execute(ctx, &Request{ShopID: 1, ItemID: 10, Date: tuesday.AddDate(0, 0, 364)})
		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
	})
}

func TestExecute_CapacityFromBookings(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	req := &Request{ShopID: 1, ItemID: 10, Date: tuesday}

	t.Run("confirmed booking reduces capacity by party size", func(t *testing.T) {
		bookings := []*domain.Booking{
			{ID: 1, ItemID: 10, BookingDate: tuesday, StartTime: "14:00", NumberOfPeople: 1, Status: domain.StatusConfirmed},
		}
		uc := newTestUseCase(&fakeBookingRepo{bookings: bookings}, &fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), item: fixedItem()}, now)

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, 1, resp.Slots[0].RemainingCapacity)
		assert.True(t, resp.Slots[0].IsAvailable)
	})

	t.Run("full slot stays listed with zero capacity", func(t *testing.T) {
		bookings := []*domain.Booking{
			{ID: 1, ItemID: 10, BookingDate: tuesday, StartTime: "14:00", NumberOfPeople: 1, Status: domain.StatusConfirmed},
			{ID: 2, ItemID: 10, BookingDate: tuesday, StartTime: "14:00", NumberOfPeople: 1, Status: domain.StatusPending},
		}
		uc := newTestUseCase(&fakeBookingRepo{bookings: bookings}, &fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), item: fixedItem()}, now)

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, 0, resp.Slots[0].RemainingCapacity)
		assert.False(t, resp.Slots[0].IsAvailable)
	})

	t.Run("exclusive item has capacity one regardless of slot max", func(t *testing.T) {
		item := fixedItem()
		item.Capacity.IsExclusive = true
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), item: item}, now)

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, 1, resp.Slots[0].TotalCapacity)
		assert.Equal(t, 1, resp.Slots[0].RemainingCapacity)
	})
}

func TestExecute_StoredOverridesAndExceptions(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	req := &Request{ShopID: 1, ItemID: 10, Date: tuesday}

	t.Run("stored override replaces weekly slots", func(t *testing.T) {
		scheduleRepo := &fakeScheduleRepo{
			overrides: []domain.DateOverride{
				{
					Date:        tuesday,
					IsAvailable: true,
					Slots: []domain.SlotDefinition{
						{StartTime: "16:00", EndTime: "17:00", MaxBookingsPerSlot: 5, IsActive: true},
					},
				},
			},
		}
		uc := newTestUseCase(&fakeBookingRepo{}, scheduleRepo, &fakeCatalogClient{shop: testShop(), item: fixedItem()}, now)

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
		assert.Equal(t, types.TimeString("16:00"), resp.Slots[0].StartTime)
		assert.Equal(t, 5, resp.Slots[0].TotalCapacity)
	})

	t.Run("stored closed exception wins over weekly", func(t *testing.T) {
		scheduleRepo := &fakeScheduleRepo{
			exceptions: []domain.ScheduleException{
				{Type: domain.ExceptionClosed, Date: tuesday, Reason: "renovation"},
			},
		}
		uc := newTestUseCase(&fakeBookingRepo{}, scheduleRepo, &fakeCatalogClient{shop: testShop(), item: fixedItem()}, now)

		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})
}

func TestExecute_BusinessHoursClamp(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	t.Run("slot ending exactly at close time is kept", func(t *testing.T) {
		shop := testShop()
		shop.WorkingHours = allWeekOpen("09:00", "15:00")
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogClient{shop: shop, item: fixedItem()}, now)

		resp, err := uc.Execute(ctx, &Request{ShopID: 1, ItemID: 10, Date: tuesday})
		require.NoError(t, err)
		require.Len(t, resp.Slots, 1)
	})

	t.Run("slot past close time is dropped", func(t *testing.T) {
		shop := testShop()
		shop.WorkingHours = allWeekOpen("09:00", "14:30")
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogClient{shop: shop, item: fixedItem()}, now)

		resp, err := uc.Execute(ctx, &Request{ShopID: 1, ItemID: 10, Date: tuesday})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("closed day yields empty slots", func(t *testing.T) {
		shop := testShop()
		shop.WorkingHours.Tuesday = catalogservice.DaySchedule{IsOpen: false}
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogClient{shop: shop, item: fixedItem()}, now)

		resp, err := uc.Execute(ctx, &Request{ShopID: 1, ItemID: 10, Date: tuesday})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})
}

func TestExecute_Errors(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	t.Run("shop not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogClient{shopErr: catalogservice.ErrShopNotFound}, now)

		_, err := uc.Execute(ctx, &Request{ShopID: 99, ItemID: 10, Date: tuesday})
		assert.ErrorIs(t, err, ErrShopNotFound)
	})

	t.Run("item not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), itemErr: catalogservice.ErrItemNotFound}, now)

		_, err := uc.Execute(ctx, &Request{ShopID: 1, ItemID: 99, Date: tuesday})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("item from another shop", func(t *testing.T) {
		item := fixedItem()
		item.ShopID = 2
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), item: item}, now)

		_, err := uc.Execute(ctx, &Request{ShopID: 1, ItemID: 10, Date: tuesday})
		assert.ErrorIs(t, err, ErrItemNotInShop)
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogClient{}, now)

		_, err := uc.Execute(ctx, &Request{ShopID: 0, ItemID: 10, Date: tuesday})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecute_Deterministic(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	req := &Request{ShopID: 1, ItemID: 10, Date: tuesday}

	item := &catalogservice.Item{
		ID:     10,
		ShopID: 1,
		Schedule: domain.ScheduleConfig{
			Type: domain.ScheduleTypeFlexible,
			Generation: &domain.GenerationParams{
				StartHour:           10,
				EndHour:             14,
				SlotDurationMinutes: 60,
				IntervalMinutes:     30,
				MaxBookingsPerSlot:  3,
			},
		},
		Capacity: domain.BookingCapacity{MaxCapacity: 3, DurationMinutes: 60},
		Limits:   domain.BookingLimits{MinAdvanceHours: 1, SameDayBooking: true},
	}

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), item: item}, now)

	first, err := uc.Execute(ctx, req)
	require.NoError(t, err)
	require.NotEmpty(t, first.Slots)

	for i := 0; i < 5; i++ {
		next, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, first.Slots, next.Slots)
	}

	// Слоты идут в порядке генерации: 10:00, 10:30, ..., 13:00
	require.Len(t, first.Slots, 7)
	assert.Equal(t, types.TimeString("10:00"), first.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("13:00"), first.Slots[6].StartTime)
}
