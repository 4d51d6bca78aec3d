package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMB-BookingService/internal/domain"
	"github.com/m04kA/SMB-BookingService/internal/integrations/catalogservice"
	"github.com/m04kA/SMB-BookingService/internal/service/schedule/models"
	"github.com/m04kA/SMB-BookingService/pkg/ptr"
)

type fakeScheduleRepo struct {
	overrides  []domain.DateOverride
	exceptions []domain.ScheduleException
	replaced   bool
}

func (f *fakeScheduleRepo) GetOverridesByItem(_ context.Context, _ int64) ([]domain.DateOverride, error) {
	return f.overrides, nil
}

func (f *fakeScheduleRepo) GetExceptionsByItem(_ context.Context, _ int64) ([]domain.ScheduleException, error) {
	return f.exceptions, nil
}

func (f *fakeScheduleRepo) ReplaceForItem(_ context.Context, _ int64, overrides []domain.DateOverride, exceptions []domain.ScheduleException) error {
	f.overrides = overrides
	f.exceptions = exceptions
	f.replaced = true
	return nil
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

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const managerID = int64(50)

func testShop() *catalogservice.Shop {
	return &catalogservice.Shop{ID: 1, Name: "Test Shop", ManagerIDs: []int64{managerID}}
}

func testItem() *catalogservice.Item {
	return &catalogservice.Item{ID: 10, ShopID: 1, Name: "Haircut"}
}

func validReplaceRequest() *models.ReplaceOverridesRequest {
	return &models.ReplaceOverridesRequest{
		UserID: managerID,
		ShopID: 1,
		ItemID: 10,
		Overrides: []models.DateOverrideDTO{
			{
				Date:        "2025-10-15",
				IsAvailable: true,
				Slots: []models.SlotDefinitionDTO{
					{StartTime: "10:00", EndTime: "11:00", MaxBookingsPerSlot: 3, IsActive: true},
				},
			},
		},
		Exceptions: []models.ScheduleExceptionDTO{
			{Type: "closed", Date: "2025-12-31", Reason: "holiday"},
		},
	}
}

func TestReplaceOverrides(t *testing.T) {
	ctx := context.Background()

	t.Run("manager replaces layer", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		svc := NewService(repo, &fakeCatalogClient{shop: testShop(), item: testItem()}, fakeTxManager{}, nopLogger{})

		resp, err := svc.ReplaceOverrides(ctx, validReplaceRequest())
		require.NoError(t, err)
		assert.True(t, repo.replaced)
		require.Len(t, resp.Overrides, 1)
		assert.Equal(t, "2025-10-15", resp.Overrides[0].Date)
		require.Len(t, resp.Exceptions, 1)
		assert.Equal(t, "closed", resp.Exceptions[0].Type)
	})

	t.Run("non-manager denied", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		svc := NewService(repo, &fakeCatalogClient{shop: testShop(), item: testItem()}, fakeTxManager{}, nopLogger{})

		req := validReplaceRequest()
		req.UserID = 99
		_, err := svc.ReplaceOverrides(ctx, req)
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.False(t, repo.replaced)
	})

	t.Run("item from another shop rejected", func(t *testing.T) {
		item := testItem()
		item.ShopID = 2
		svc := NewService(&fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), item: item}, fakeTxManager{}, nopLogger{})

		_, err := svc.ReplaceOverrides(ctx, validReplaceRequest())
		assert.ErrorIs(t, err, ErrItemNotInShop)
	})

	t.Run("malformed override date rejected", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), item: testItem()}, fakeTxManager{}, nopLogger{})

		req := validReplaceRequest()
		req.Overrides[0].Date = "15.10.2025"
		_, err := svc.ReplaceOverrides(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("invalid slot definition rejected", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), item: testItem()}, fakeTxManager{}, nopLogger{})

		req := validReplaceRequest()
		// Конец раньше начала
		req.Overrides[0].Slots[0].EndTime = "09:00"
		_, err := svc.ReplaceOverrides(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown exception type rejected", func(t *testing.T) {
		svc := NewService(&fakeScheduleRepo{}, &fakeCatalogClient{shop: testShop(), item: testItem()}, fakeTxManager{}, nopLogger{})

		req := validReplaceRequest()
		req.Exceptions[0].Type = "vacation"
		_, err := svc.ReplaceOverrides(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestListOverrides(t *testing.T) {
	ctx := context.Background()
	repo := &fakeScheduleRepo{
		exceptions: []domain.ScheduleException{
			{
				Type:    domain.ExceptionModifiedHours,
				Date:    mustDate(t, "2025-11-01"),
				EndDate: ptr.Ptr(mustDate(t, "2025-11-03")),
				Reason:  "short hours",
				Slots: []domain.SlotDefinition{
					{StartTime: "12:00", EndTime: "13:00", MaxBookingsPerSlot: 1, IsActive: true},
				},
			},
		},
	}
	svc := NewService(repo, &fakeCatalogClient{shop: testShop(), item: testItem()}, fakeTxManager{}, nopLogger{})

	t.Run("manager lists layer", func(t *testing.T) {
		resp, err := svc.ListOverrides(ctx, &models.ListOverridesRequest{UserID: managerID, ShopID: 1, ItemID: 10})
		require.NoError(t, err)
		assert.Empty(t, resp.Overrides)
		require.Len(t, resp.Exceptions, 1)
		assert.Equal(t, "modified_hours", resp.Exceptions[0].Type)
		require.NotNil(t, resp.Exceptions[0].EndDate)
		assert.Equal(t, "2025-11-03", *resp.Exceptions[0].EndDate)
	})

	t.Run("non-manager denied", func(t *testing.T) {
		_, err := svc.ListOverrides(ctx, &models.ListOverridesRequest{UserID: 99, ShopID: 1, ItemID: 10})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing shop", func(t *testing.T) {
		svc := NewService(repo, &fakeCatalogClient{shopErr: catalogservice.ErrShopNotFound}, fakeTxManager{}, nopLogger{})
		_, err := svc.ListOverrides(ctx, &models.ListOverridesRequest{UserID: managerID, ShopID: 404, ItemID: 10})
		assert.ErrorIs(t, err, ErrShopNotFound)
	})
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateFormat, s)
	require.NoError(t, err)
	return d
}
