// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cabsafar/internal/http/handlers"
	"cabsafar/internal/http/middleware"
	mapssvc "cabsafar/internal/maps"
	"cabsafar/internal/modules/booking"
	"cabsafar/internal/modules/catalog"
	"cabsafar/internal/modules/leads"
	"cabsafar/internal/modules/quote"
	"cabsafar/internal/modules/rates"
)

type RouterDeps struct {
	Quote     *quote.Service
	Booking   *booking.Service
	Catalog   *catalog.Service
	Leads     *leads.Service
	RateStore *rates.Store
	Places    *mapssvc.PlacesService
	JWTSecret string
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	quoteHandler := handlers.NewQuoteHandler(deps.Quote, deps.Catalog)
	bookingHandler := handlers.NewBookingHandler(deps.Booking, quoteHandler)
	catalogHandler := handlers.NewCatalogHandler(deps.Catalog)
	leadsHandler := handlers.NewLeadsHandler(deps.Leads)
	ratesHandler := handlers.NewRatesHandler(deps.RateStore)

	// A typed nil pointer must not become a non-nil PlaceSource.
	var placeSrc handlers.PlaceSource
	if deps.Places != nil {
		placeSrc = deps.Places
	}
	placesHandler := handlers.NewPlacesHandler(placeSrc, deps.Catalog)

	api := r.Group("/api")
	{
		api.GET("/cities", catalogHandler.ListCities)
		api.GET("/vehicles", catalogHandler.ListVehicles)
		api.GET("/packages", catalogHandler.ListPackages)
		api.GET("/places/autocomplete", placesHandler.Autocomplete)
		api.GET("/places/details", placesHandler.Detail)

		api.POST("/quotes", quoteHandler.Search)
		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings/:id", bookingHandler.Get)
		api.GET("/tickets/:ticket", bookingHandler.GetByTicket)
		api.POST("/leads", leadsHandler.Capture)
	}

	admin := r.Group("/api/admin", middleware.AdminAuth(deps.JWTSecret))
	{
		admin.POST("/cities", catalogHandler.CreateCity)
		admin.DELETE("/cities/:id", catalogHandler.DeleteCity)
		admin.POST("/vehicles", catalogHandler.CreateVehicle)
		admin.PATCH("/vehicles/:id", catalogHandler.SetVehicleActive)
		admin.POST("/packages", catalogHandler.CreatePackage)

		admin.POST("/rates/route", ratesHandler.UpsertRouteRate)
		admin.DELETE("/rates/route/:id", ratesHandler.DeleteRouteRate)
		admin.POST("/rates/common", ratesHandler.UpsertCommonRate)
		admin.DELETE("/rates/common/:id", ratesHandler.DeleteCommonRate)

		admin.GET("/bookings", bookingHandler.List)
		admin.PATCH("/bookings/:id", bookingHandler.AdminUpdate)
		admin.GET("/leads", leadsHandler.List)
		admin.PATCH("/leads/:id", leadsHandler.Update)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
