package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMB-BookingService/internal/domain"
)

func TestGetExceptionsByItem(t *testing.T) {
	t.Run("scans row with null reason and end date", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		start := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"exception_type", "start_date", "end_date", "reason", "slots"}).
			AddRow("closed", start, nil, nil, nil)

		mock.ExpectQuery("SELECT exception_type, start_date, end_date, reason, slots FROM schedule_exceptions").
			WithArgs(int64(10)).
			WillReturnRows(rows)

		repo := NewRepository(db)
		exceptions, err := repo.GetExceptionsByItem(context.Background(), 10)

		require.NoError(t, err)
		require.Len(t, exceptions, 1)
		assert.Equal(t, domain.ExceptionClosed, exceptions[0].Type)
		assert.Equal(t, "", exceptions[0].Reason)
		assert.Nil(t, exceptions[0].EndDate)
		assert.Nil(t, exceptions[0].Slots)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("scans fully populated row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"exception_type", "start_date", "end_date", "reason", "slots"}).
			AddRow("modified_hours", start, end, "летний график",
				[]byte(`[{"startTime":"10:00","endTime":"11:00","maxBookingsPerSlot":2,"isActive":true}]`))

		mock.ExpectQuery("SELECT exception_type, start_date, end_date, reason, slots FROM schedule_exceptions").
			WithArgs(int64(10)).
			WillReturnRows(rows)

		repo := NewRepository(db)
		exceptions, err := repo.GetExceptionsByItem(context.Background(), 10)

		require.NoError(t, err)
		require.Len(t, exceptions, 1)
		assert.Equal(t, domain.ExceptionModifiedHours, exceptions[0].Type)
		assert.Equal(t, "летний график", exceptions[0].Reason)
		require.NotNil(t, exceptions[0].EndDate)
		assert.Equal(t, end, *exceptions[0].EndDate)
		require.Len(t, exceptions[0].Slots, 1)
		assert.Equal(t, 2, exceptions[0].Slots[0].MaxBookingsPerSlot)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetOverridesByItem_NullReason(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"override_date", "is_available", "reason", "slots"}).
		AddRow(date, false, nil, nil)

	mock.ExpectQuery("SELECT override_date, is_available, reason, slots FROM schedule_overrides").
		WithArgs(int64(10)).
		WillReturnRows(rows)

	repo := NewRepository(db)
	overrides, err := repo.GetOverridesByItem(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, overrides, 1)
	assert.False(t, overrides[0].IsAvailable)
	assert.Nil(t, overrides[0].Reason)
	require.NoError(t, mock.ExpectationsWereMet())
}
