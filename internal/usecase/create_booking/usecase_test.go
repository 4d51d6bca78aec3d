package create_booking

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

// fakeBookingRepo хранит бронирования в памяти и присваивает ID по порядку
type fakeBookingRepo struct {
	bookings []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	b := *booking
	b.ID = f.nextID
	b.CreatedAt = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b.UpdatedAt = b.CreatedAt
	f.bookings = append(f.bookings, &b)
	return &b, nil
}

func (f *fakeBookingRepo) GetByItemAndDate(_ context.Context, itemID int64, date time.Time) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.ItemID == itemID && domain.SameDate(b.BookingDate, date) && b.HoldsCapacity() {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) cancel(id int64) {
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = domain.StatusCancelled
		}
	}
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

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

// tableItem - позиция с вместимостью 4 человека на слот
func tableItem() *catalogservice.Item {
	return &catalogservice.Item{
		ID:     10,
		ShopID: 1,
		Name:   "Large Table",
		Price:  ptr.Ptr(50.0),
		Schedule: domain.ScheduleConfig{
			Type: domain.ScheduleTypeFixed,
			Weekly: []domain.WeeklySlotRule{
				{
					DayOfWeek:   time.Tuesday,
					IsAvailable: true,
					Slots: []domain.SlotDefinition{
						{StartTime: "14:00", EndTime: "15:00", MaxBookingsPerSlot: 4, IsActive: true},
					},
				},
			},
		},
		Capacity: domain.BookingCapacity{MaxCapacity: 4, DurationMinutes: 60},
		Limits: domain.BookingLimits{
			MinAdvanceHours: 2,
			MaxAdvanceDays:  30,
			SameDayBooking:  true,
		},
		Extras: []catalogservice.Extra{
			{ID: 100, Name: "Decoration", Price: ptr.Ptr(10.0)},
			{ID: 101, Name: "Cake", RequiredItemID: ptr.Ptr(int64(11))},
		},
	}
}

// roomItem - эксклюзивная позиция: одно бронирование занимает слот целиком
func roomItem() *catalogservice.Item {
	item := tableItem()
	item.Name = "Private Room"
	item.Capacity.IsExclusive = true
	item.Extras = nil
	return item
}

func newTestUseCase(
	bookingRepo *fakeBookingRepo,
	catalog *fakeCatalogClient,
	now time.Time,
) *UseCase {
	uc := NewUseCase(bookingRepo, &fakeScheduleRepo{}, catalog, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

// Вторник 2025-06-10.
var (
	tuesday = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	morning = time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
)

func validRequest() *Request {
	return &Request{
		UserID:         7,
		ShopID:         1,
		ItemID:         10,
		Date:           tuesday,
		StartTime:      "14:00",
		NumberOfPeople: 2,
	}
}

func TestExecute_Success(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeCatalogClient{shop: testShop(), item: tableItem()}, morning)

	resp, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, types.TimeString("14:00"), resp.StartTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, "Large Table", resp.ItemName)
	require.NotNil(t, resp.ItemPrice)
	assert.Equal(t, 50.0, *resp.ItemPrice)
}

func TestExecute_ItemWithoutPrice(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBookingRepo{}
	item := tableItem()
	item.Price = nil
	uc := newTestUseCase(repo, &fakeCatalogClient{shop: testShop(), item: item}, morning)

	resp, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	// Позиция без цены в каталоге денормализуется с пустой ценой
	assert.Nil(t, resp.ItemPrice)
	require.Len(t, repo.bookings, 1)
	assert.Nil(t, repo.bookings[0].ItemPrice)
}

func TestExecute_CapacityExhaustion(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeCatalogClient{shop: testShop(), item: tableItem()}, morning)

	// Два бронирования по 2 человека заполняют слот на 4
	req := validRequest()
	_, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	second, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	// Третье не помещается
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// Отмена освобождает места, и бронирование снова проходит
	repo.cancel(second.ID)
	_, err = uc.Execute(ctx, req)
	require.NoError(t, err)
}

func TestExecute_PartialCapacityLeft(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeCatalogClient{shop: testShop(), item: tableItem()}, morning)

	req := validRequest()
	req.NumberOfPeople = 3
	_, err := uc.Execute(ctx, req)
	require.NoError(t, err)

	// Осталось 1 место, группа из 2 не помещается
	req2 := validRequest()
	req2.NumberOfPeople = 2
	_, err = uc.Execute(ctx, req2)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// Одиночное бронирование проходит
	req3 := validRequest()
	req3.NumberOfPeople = 1
	_, err = uc.Execute(ctx, req3)
	require.NoError(t, err)
}

func TestExecute_ExclusiveItem(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeCatalogClient{shop: testShop(), item: roomItem()}, morning)

	first, err := uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	// Второе бронирование на тот же слот не проходит независимо от размера группы
	req := validRequest()
	req.NumberOfPeople = 1
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrSlotAlreadyTaken)

	// После отмены слот снова свободен
	repo.cancel(first.ID)
	_, err = uc.Execute(ctx, req)
	require.NoError(t, err)
}

func TestExecute_SlotNotOffered(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogClient{shop: testShop(), item: tableItem()}, morning)

	t.Run("time between slots", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "14:30"
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrSlotNotOffered)
	})

	t.Run("day without slots", func(t *testing.T) {
		req := validRequest()
		req.Date = tuesday.AddDate(0, 0, 1) // среда, правила нет
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrSlotNotOffered)
	})

	t.Run("closed exception wins over weekly", func(t *testing.T) {
		scheduleRepo := &fakeScheduleRepo{
			exceptions: []domain.ScheduleException{
				{Type: domain.ExceptionClosed, Date: tuesday, Reason: "holiday"},
			},
		}
		uc := NewUseCase(&fakeBookingRepo{}, scheduleRepo, &fakeCatalogClient{shop: testShop(), item: tableItem()}, fakeTxManager{}, nopLogger{})
		uc.timeProvider = &fakeTimeProvider{now: morning}

		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrSlotNotOffered)
	})
}

func TestExecute_DateLimits(t *testing.T) {
	ctx := context.Background()

	t.Run("past date", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogClient{shop: testShop(), item: tableItem()}, morning)
		req := validRequest()
		req.Date = tuesday.AddDate(0, 0, -7)
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("same day forbidden", func(t *testing.T) {
		item := tableItem()
		item.Limits.SameDayBooking = false
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogClient{shop: testShop(), item: item}, morning)
		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrSameDayBookingNotAllowed)
	})

	t.Run("too far in future", func(t *testing.T) {
		item := tableItem()
		item.Limits.MaxAdvanceDays = 7
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogClient{shop: testShop(), item: item}, morning)
		req := validRequest()
		req.Date = tuesday.AddDate(0, 0, 14)
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("too late to book", func(t *testing.T) {
		// 13:00, слот 14:00 через час < 2 часов
		now := time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC)
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogClient{shop: testShop(), item: tableItem()}, now)
		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrTooLateToBook)
	})

	t.Run("exactly on min advance boundary", func(t *testing.T) {
		now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogClient{shop: testShop(), item: tableItem()}, now)
		_, err := uc.Execute(ctx, validRequest())
		require.NoError(t, err)
	})
}

func TestExecute_PartySizeBounds(t *testing.T) {
	ctx := context.Background()
	item := tableItem()
	item.Schedule.Weekly[0].Slots[0].MinPeoplePerBooking = ptr.Ptr(2)
	item.Schedule.Weekly[0].Slots[0].MaxPeoplePerBooking = ptr.Ptr(3)
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogClient{shop: testShop(), item: item}, morning)

	req := validRequest()
	req.NumberOfPeople = 1
	_, err := uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrPartySizeOutOfBounds)

	req.NumberOfPeople = 4
	_, err = uc.Execute(ctx, req)
	assert.ErrorIs(t, err, ErrPartySizeOutOfBounds)

	req.NumberOfPeople = 3
	_, err = uc.Execute(ctx, req)
	require.NoError(t, err)
}

func TestExecute_Extras(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogClient{shop: testShop(), item: tableItem()}, morning)

	t.Run("known extra accepted", func(t *testing.T) {
		req := validRequest()
		req.ExtraIDs = []int64{100}
		resp, err := uc.Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, []int64{100}, resp.ExtraIDs)
	})

	t.Run("unknown extra rejected", func(t *testing.T) {
		req := validRequest()
		req.ExtraIDs = []int64{999}
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrExtraNotFound)
	})

	t.Run("extra bound to another item rejected", func(t *testing.T) {
		req := validRequest()
		req.ExtraIDs = []int64{101}
		_, err := uc.Execute(ctx, req)
		assert.ErrorIs(t, err, ErrExtraRequiresItem)
	})
}

func TestExecute_ShopClosed(t *testing.T) {
	ctx := context.Background()
	shop := testShop()
	shop.WorkingHours.Tuesday = catalogservice.DaySchedule{IsOpen: false}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogClient{shop: shop, item: tableItem()}, morning)

	_, err := uc.Execute(ctx, validRequest())
	assert.ErrorIs(t, err, ErrShopClosed)
}

func TestExecute_InvalidInput(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogClient{}, morning)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero user", func(r *Request) { r.UserID = 0 }},
		{"zero shop", func(r *Request) { r.ShopID = 0 }},
		{"zero item", func(r *Request) { r.ItemID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = "25:99" }},
		{"zero people", func(r *Request) { r.NumberOfPeople = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(ctx, req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_NotFound(t *testing.T) {
	ctx := context.Background()

	t.Run("shop not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogClient{shopErr: catalogservice.ErrShopNotFound}, morning)
		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrShopNotFound)
	})

	t.Run("item not found", func(t *testing.T) {
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogClient{shop: testShop(), itemErr: catalogservice.ErrItemNotFound}, morning)
		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("item from another shop", func(t *testing.T) {
		item := tableItem()
		item.ShopID = 2
		uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogClient{shop: testShop(), item: item}, morning)
		_, err := uc.Execute(ctx, validRequest())
		assert.ErrorIs(t, err, ErrItemNotInShop)
	})
}
