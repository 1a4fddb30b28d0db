//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"booking-api/internal/infra"
	sqlc "booking-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingReadQueries struct {
	mock.Mock
}

func (m *MockBookingReadQueries) ListBookings(ctx context.Context, db sqlc.DBTX) ([]sqlc.Bookings, error) {
	args := m.Called(ctx, db)
	return args.Get(0).([]sqlc.Bookings), args.Error(1)
}

func (m *MockBookingReadQueries) ListUpcomingBookingsByPhoneSuffix(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingBookingsByPhoneSuffixParams) ([]sqlc.ListUpcomingBookingsByPhoneSuffixRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListUpcomingBookingsByPhoneSuffixRow), args.Error(1)
}

func ts(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func TestListAll(t *testing.T) {
	start := time.Date(2030, 5, 1, 17, 0, 0, 0, time.UTC)
	row := sqlc.Bookings{
		ID:        uuid.New(),
		Name:      "Juan Reyes",
		Phone:     pgtype.Text{String: "+15305551234", Valid: true},
		Service:   "Regular Cut ($25)",
		Notes:     "",
		StartAt:   ts(start),
		Status:    pgtype.Text{},
		CreatedAt: ts(start.Add(-time.Hour)),
		UpdatedAt: ts(start.Add(-time.Hour)),
	}

	t.Run("maps nullable columns", func(t *testing.T) {
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("ListBookings", mock.Anything, mock.Anything).Return([]sqlc.Bookings{row}, nil)

		store := NewBookingReadStore(mockQueries, nil)
		views, err := store.ListAll(context.Background())

		require.NoError(t, err)
		require.Len(t, views, 1)
		v := views[0]
		assert.Equal(t, row.ID, v.ID)
		require.NotNil(t, v.Phone)
		assert.Equal(t, "+15305551234", *v.Phone)
		assert.Nil(t, v.Email)
		assert.Nil(t, v.Status)
		assert.True(t, start.Equal(v.StartAt))
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockBookingReadQueries)
		mockQueries.On("ListBookings", mock.Anything, mock.Anything).Return([]sqlc.Bookings(nil), assert.AnError)

		store := NewBookingReadStore(mockQueries, nil)
		views, err := store.ListAll(context.Background())

		assert.Nil(t, views)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestListUpcomingByPhoneSuffix(t *testing.T) {
	now := time.Date(2030, 5, 1, 12, 0, 0, 0, time.UTC)
	row := sqlc.ListUpcomingBookingsByPhoneSuffixRow{
		ID:      uuid.New(),
		Name:    "Juan Reyes",
		Service: "House Call ($50)",
		StartAt: ts(now.Add(2 * time.Hour)),
		Notes:   "gate code 42",
	}

	mockQueries := new(MockBookingReadQueries)
	mockQueries.On("ListUpcomingBookingsByPhoneSuffix", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.ListUpcomingBookingsByPhoneSuffixParams) bool {
		return p.Suffix == "1234" && p.Now.Time.Equal(now)
	})).Return([]sqlc.ListUpcomingBookingsByPhoneSuffixRow{row}, nil)

	store := NewBookingReadStore(mockQueries, nil)
	views, err := store.ListUpcomingByPhoneSuffix(context.Background(), "1234", now)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, row.ID, views[0].ID)
	assert.Equal(t, "gate code 42", views[0].Notes)
	mockQueries.AssertExpectations(t)
}
