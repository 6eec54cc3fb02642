package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers bundles the API handlers so the router constructor stays readable.
type Handlers struct {
	Auth        *api.AuthHandler
	Account     *api.AccountHandler
	Hotel       *api.HotelHandler
	Room        *api.RoomHandler
	Discount    *api.DiscountHandler
	Reservation *api.ReservationHandler
	HotelMedia  *api.HotelMediaHandler
	RoomMedia   *api.RoomMediaHandler
	RoomExtra   *api.RoomExtraHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		accounts := apiGroup.Group("/accounts")
		{
			addRoutes(accounts, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Account.Register},
			})

			authed := accounts.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Account.Get},
			})

			staff := accounts.Group("")
			staff.Use(authMiddleware.RequireAuth(), authMiddleware.RequireStaff())
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Account.List},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Account.Update},
				{Method: http.MethodPost, Path: "/:id/activate", Handler: h.Account.Activate},
				{Method: http.MethodPost, Path: "/:id/deactivate", Handler: h.Account.Deactivate},
			})

			super := accounts.Group("")
			super.Use(authMiddleware.RequireAuth(), authMiddleware.RequireSuperuser())
			addRoutes(super, []route{
				{Method: http.MethodPost, Path: "/staff", Handler: h.Account.CreateStaff},
				{Method: http.MethodPost, Path: "/superusers", Handler: h.Account.CreateSuperuser},
				{Method: http.MethodPost, Path: "/:id/grant-staff", Handler: h.Account.GrantStaff},
				{Method: http.MethodPost, Path: "/:id/revoke-staff", Handler: h.Account.RevokeStaff},
				{Method: http.MethodPost, Path: "/:id/grant-superuser", Handler: h.Account.GrantSuperuser},
				{Method: http.MethodPost, Path: "/:id/revoke-superuser", Handler: h.Account.RevokeSuperuser},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Account.Delete},
			})
		}

		hotels := apiGroup.Group("/hotels")
		hotels.Use(authMiddleware.RequireAuth(), authMiddleware.RequireStaff())
		{
			addRoutes(hotels, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Hotel.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Hotel.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Hotel.Get},
				{Method: http.MethodGet, Path: "/:id/rooms", Handler: h.Hotel.ListRooms},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Hotel.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Hotel.Delete},
				{Method: http.MethodPost, Path: "/:id/media", Handler: h.HotelMedia.Upload},
				{Method: http.MethodGet, Path: "/:id/media", Handler: h.HotelMedia.ListByHotel},
			})
		}

		hotelMedia := apiGroup.Group("/hotel-media")
		hotelMedia.Use(authMiddleware.RequireAuth(), authMiddleware.RequireStaff())
		{
			addRoutes(hotelMedia, []route{
				{Method: http.MethodDelete, Path: "/:id", Handler: h.HotelMedia.Delete},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth(), authMiddleware.RequireStaff())
		{
			addRoutes(rooms, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Room.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Room.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Room.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Room.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Room.Delete},
			})
		}

		roomMedia := apiGroup.Group("/room-media")
		roomMedia.Use(authMiddleware.RequireAuth(), authMiddleware.RequireStaff())
		{
			addRoutes(roomMedia, []route{
				{Method: http.MethodPost, Path: "", Handler: h.RoomMedia.Upload},
				{Method: http.MethodGet, Path: "", Handler: h.RoomMedia.List},
				{Method: http.MethodDelete, Path: "/:id/rooms/:roomId", Handler: h.RoomMedia.RemoveRoom},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.RoomMedia.Delete},
			})
		}

		roomExtras := apiGroup.Group("/room-extras")
		roomExtras.Use(authMiddleware.RequireAuth(), authMiddleware.RequireStaff())
		{
			addRoutes(roomExtras, []route{
				{Method: http.MethodPut, Path: "", Handler: h.RoomExtra.CreateOrUpdate},
				{Method: http.MethodGet, Path: "", Handler: h.RoomExtra.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.RoomExtra.Get},
				{Method: http.MethodDelete, Path: "/:id/rooms/:roomId", Handler: h.RoomExtra.RemoveRoom},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.RoomExtra.Delete},
			})
		}

		discounts := apiGroup.Group("/discounts")
		discounts.Use(authMiddleware.RequireAuth(), authMiddleware.RequireStaff())
		{
			addRoutes(discounts, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Discount.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Discount.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Discount.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Discount.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Discount.Delete},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodGet, Path: "/mine", Handler: h.Reservation.Mine},
			})

			staff := reservations.Group("")
			staff.Use(authMiddleware.RequireStaff())
			addRoutes(staff, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Update},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
