package components

import (
	"hotel-booking/internal/infra/filestore"
	repo_impl "hotel-booking/internal/infra/repository"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewAccountRepository,
			fx.As(new(usecase.AccountRepository)),
		),
		fx.Annotate(
			repo_impl.NewHotelRepository,
			fx.As(new(usecase.HotelRepository)),
		),
		fx.Annotate(
			repo_impl.NewRoomRepository,
			fx.As(new(usecase.RoomRepository)),
		),
		fx.Annotate(
			repo_impl.NewDiscountRepository,
			fx.As(new(usecase.DiscountRepository)),
		),
		fx.Annotate(
			repo_impl.NewReservationRepository,
			fx.As(new(usecase.ReservationRepository)),
		),
		fx.Annotate(
			repo_impl.NewHotelMediaRepository,
			fx.As(new(usecase.HotelMediaRepository)),
		),
		fx.Annotate(
			repo_impl.NewRoomMediaRepository,
			fx.As(new(usecase.RoomMediaRepository)),
		),
		fx.Annotate(
			repo_impl.NewRoomExtraRepository,
			fx.As(new(usecase.RoomExtraRepository)),
		),
		NewFileStore,
	),
)

func NewFileStore(cfg config.Config) filestore.Store {
	return filestore.NewLocalStore(cfg.Media.Dir)
}
