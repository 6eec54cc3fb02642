package components

import (
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewAccountUseCase,
		usecase.NewHotelUseCase,
		usecase.NewRoomUseCase,
		usecase.NewDiscountUseCase,
		usecase.NewReservationUseCase,
		usecase.NewHotelMediaUseCase,
		usecase.NewRoomMediaUseCase,
		usecase.NewRoomExtraUseCase,
		usecase.NewTokenValidator,
	),
)
