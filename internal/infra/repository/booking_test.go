//go:build unit

package repository

import (
	"context"
	"testing"

	"booking-api/internal/domain/booking"
	"booking-api/internal/infra"
	sqlc "booking-api/internal/infra/sqlc/generated"
	"booking-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingWriteQueries struct {
	mock.Mock
}

func (m *MockBookingWriteQueries) CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockBookingWriteQueries) UpdateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

// sqlc.DBTX implementation for MockBookingWriteQueries
func (m *MockBookingWriteQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockBookingWriteQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockBookingWriteQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func newTestBooking(t *testing.T) *booking.Booking {
	t.Helper()
	phone := "(530) 555-1234"
	b, err := booking.NewBooking(booking.Draft{
		Name:    "Juan Reyes",
		Phone:   &phone,
		Service: "Regular Cut ($25)",
		StartAt: "2030-05-01T17:00:00Z",
	})
	require.NoError(t, err)
	return b
}

func TestCreate(t *testing.T) {
	newID := uuid.New()

	tests := []struct {
		name      string
		mockID    uuid.UUID
		mockError error
		wantError bool
	}{
		{name: "success", mockID: newID},
		{name: "database error", mockID: uuid.Nil, mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBooking(t)
			mockQueries := new(MockBookingWriteQueries)
			mockQueries.On("CreateBooking", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateBookingParams) bool {
				return p.Name == "Juan Reyes" &&
					p.Phone.Valid && p.Phone.String == "+15305551234" &&
					!p.Email.Valid &&
					p.Notes == "" &&
					p.StartAt.Time.Equal(b.StartAt())
			})).Return(tt.mockID, tt.mockError)

			repo := NewBookingRepository(mockQueries)
			id, err := repo.Create(context.Background(), mockQueries, b)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, newID, id)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestUpdate(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name      string
		affected  int64
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "unknown id", affected: 0, wantKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockBookingWriteQueries)
			mockQueries.On("UpdateBooking", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.UpdateBookingParams) bool {
				return p.ID == id && !p.Status.Valid
			})).Return(tt.affected, tt.mockError)

			repo := NewBookingRepository(mockQueries)
			err := repo.Update(context.Background(), mockQueries, id, newTestBooking(t))

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
			if tt.wantKind == infra.KindNotFound {
				assert.True(t, errs.Is(err, errs.ErrNotFound))
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
