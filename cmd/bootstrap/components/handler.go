package components

import (
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAccountHandler,
		api.NewHotelHandler,
		api.NewRoomHandler,
		api.NewDiscountHandler,
		api.NewReservationHandler,
		api.NewHotelMediaHandler,
		api.NewRoomMediaHandler,
		api.NewRoomExtraHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	account *api.AccountHandler,
	hotel *api.HotelHandler,
	room *api.RoomHandler,
	discount *api.DiscountHandler,
	reservation *api.ReservationHandler,
	hotelMedia *api.HotelMediaHandler,
	roomMedia *api.RoomMediaHandler,
	roomExtra *api.RoomExtraHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Account:     account,
		Hotel:       hotel,
		Room:        room,
		Discount:    discount,
		Reservation: reservation,
		HotelMedia:  hotelMedia,
		RoomMedia:   roomMedia,
		RoomExtra:   roomExtra,
	}
}
