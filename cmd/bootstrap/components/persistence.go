package components

import (
	"booking-api/internal/infra/readstore"
	sqlc "booking-api/internal/infra/sqlc/generated"
	"booking-api/internal/infra/uow"
	"booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			sqlc.New,
			fx.As(fx.Self()),
			fx.As(new(readstore.BookingReadQueries)),
		),
		NewDBTX,
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
