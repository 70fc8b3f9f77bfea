package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pawhaus/boarding/internal/addon"
	addondomain "github.com/pawhaus/boarding/internal/addon/domain"
	"github.com/pawhaus/boarding/internal/booking"
	bookingdomain "github.com/pawhaus/boarding/internal/booking/domain"
	"github.com/pawhaus/boarding/internal/capacity"
	capacitydomain "github.com/pawhaus/boarding/internal/capacity/domain"
	"github.com/pawhaus/boarding/internal/config"
	"github.com/pawhaus/boarding/internal/discount"
	discountdomain "github.com/pawhaus/boarding/internal/discount/domain"
	"github.com/pawhaus/boarding/internal/dog"
	dogdomain "github.com/pawhaus/boarding/internal/dog/domain"
	"github.com/pawhaus/boarding/internal/observability"
	obsmiddleware "github.com/pawhaus/boarding/internal/observability/logger"
	obsmetrics "github.com/pawhaus/boarding/internal/observability/metrics"
	obstracing "github.com/pawhaus/boarding/internal/observability/tracing"
	"github.com/pawhaus/boarding/internal/price"
	pricedomain "github.com/pawhaus/boarding/internal/price/domain"
	"github.com/pawhaus/boarding/internal/pricing"
	pricingdomain "github.com/pawhaus/boarding/internal/pricing/domain"
	"github.com/pawhaus/boarding/internal/room"
	roomdomain "github.com/pawhaus/boarding/internal/room/domain"
	"github.com/pawhaus/boarding/internal/season"
	seasondomain "github.com/pawhaus/boarding/internal/season/domain"
	"github.com/pawhaus/boarding/internal/specialdate"
	specialdomain "github.com/pawhaus/boarding/internal/specialdate/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	dog.Module,
	room.Module,
	price.Module,
	season.Module,
	specialdate.Module,
	addon.Module,
	discount.Module,
	pricing.Module,
	booking.Module,
	capacity.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	dogSvc      dogdomain.Service
	roomSvc     roomdomain.Service
	priceSvc    pricedomain.Service
	seasonSvc   seasondomain.Service
	specialSvc  specialdomain.Service
	addonSvc    addondomain.Service
	discountSvc discountdomain.Service
	pricingSvc  pricingdomain.Service
	bookingSvc  bookingdomain.Service
	capacitySvc capacitydomain.Service
}

type ServerParams struct {
	fx.In

	Gin         *gin.Engine
	DogSvc      dogdomain.Service
	RoomSvc     roomdomain.Service
	PriceSvc    pricedomain.Service
	SeasonSvc   seasondomain.Service
	SpecialSvc  specialdomain.Service
	AddonSvc    addondomain.Service
	DiscountSvc discountdomain.Service
	PricingSvc  pricingdomain.Service
	BookingSvc  bookingdomain.Service
	CapacitySvc capacitydomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:      p.Gin,
		dogSvc:      p.DogSvc,
		roomSvc:     p.RoomSvc,
		priceSvc:    p.PriceSvc,
		seasonSvc:   p.SeasonSvc,
		specialSvc:  p.SpecialSvc,
		addonSvc:    p.AddonSvc,
		discountSvc: p.DiscountSvc,
		pricingSvc:  p.PricingSvc,
		bookingSvc:  p.BookingSvc,
		capacitySvc: p.CapacitySvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	v1 := s.engine.Group("/v1", OrgContext())

	// -------- Pricing --------
	v1.POST("/pricing/quote", s.QuoteStay)

	// -------- Dogs --------
	v1.GET("/dogs", s.ListDogs)
	v1.POST("/dogs", s.CreateDog)
	v1.GET("/dogs/:id", s.GetDogByID)
	v1.PUT("/dogs/:id", s.UpdateDog)
	v1.GET("/dogs/:id/vaccinations", s.GetDogVaccinations)

	// -------- Rooms --------
	v1.GET("/rooms", s.ListRooms)
	v1.POST("/rooms", s.CreateRoom)
	v1.GET("/rooms/:id", s.GetRoomByID)
	v1.PUT("/rooms/:id", s.UpdateRoom)
	v1.GET("/rooms/:id/capacity", s.CheckRoomCapacity)
	v1.GET("/rooms/:id/occupancy", s.GetRoomOccupancy)

	// -------- Bookings --------
	v1.GET("/bookings", s.ListBookings)
	v1.POST("/bookings", s.CreateBooking)
	v1.GET("/bookings/:id", s.GetBookingByID)
	v1.PUT("/bookings/:id", s.UpdateBooking)
	v1.POST("/bookings/:id/cancel", s.CancelBooking)

	// -------- Prices --------
	v1.GET("/prices", s.ListPrices)
	v1.POST("/prices", s.CreatePrice)
	v1.PUT("/prices/:id", s.UpdatePrice)
	v1.DELETE("/prices/:id", s.DeletePrice)

	// -------- Seasons --------
	v1.GET("/seasons", s.ListSeasons)
	v1.POST("/seasons", s.CreateSeason)
	v1.PUT("/seasons/:id", s.UpdateSeason)
	v1.DELETE("/seasons/:id", s.DeleteSeason)

	// -------- Special dates --------
	v1.GET("/special-dates", s.ListSpecialDates)
	v1.POST("/special-dates", s.CreateSpecialDate)
	v1.PUT("/special-dates/:id", s.UpdateSpecialDate)
	v1.DELETE("/special-dates/:id", s.DeleteSpecialDate)

	// -------- Addon services --------
	v1.GET("/addons", s.ListAddons)
	v1.POST("/addons", s.CreateAddon)
	v1.GET("/addons/:id", s.GetAddonByID)
	v1.PUT("/addons/:id", s.UpdateAddon)
	v1.DELETE("/addons/:id", s.DeleteAddon)

	// -------- Discounts --------
	v1.GET("/discounts", s.ListDiscounts)
	v1.POST("/discounts", s.CreateDiscount)
	v1.PUT("/discounts/:id", s.UpdateDiscount)
	v1.DELETE("/discounts/:id", s.DeleteDiscount)
}
