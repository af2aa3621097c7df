// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cabsafar/internal/config"
	httptransport "cabsafar/internal/http"
	"cabsafar/internal/infra"
	"cabsafar/internal/maps"
	"cabsafar/internal/modules/booking"
	"cabsafar/internal/modules/catalog"
	"cabsafar/internal/modules/distance"
	"cabsafar/internal/modules/leads"
	"cabsafar/internal/modules/quote"
	"cabsafar/internal/modules/rates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := infra.Migrate("file://migrations", cfg.DB.DSN); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	// Maps services are optional; without an API key every distance comes
	// from the static table and autocomplete serves catalog cities only.
	var roadDistance distance.RoadDistance
	var placesSvc *maps.PlacesService
	if cfg.Maps.APIKey != "" {
		distSvc, err := maps.NewDistanceService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		roadDistance = distSvc
		placesSvc, err = maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("places init: %v", err)
		}
	} else {
		log.Printf("GOOGLE_MAPS_API_KEY not set; using estimated distances")
	}

	distanceSvc := distance.NewService(roadDistance)

	rateStore := rates.NewStore(dbPool)
	rateCache := rates.NewCache(redisClient, time.Duration(cfg.Rates.CacheTTLSeconds)*time.Second)
	rateSvc := rates.NewService(rateStore, distanceSvc, rateCache)

	catalogStore := catalog.NewStore(dbPool)
	catalogSvc := catalog.NewService(catalogStore)

	quoteSvc := quote.NewService(catalogStore, rateSvc)

	bookingStore := booking.NewStore(dbPool)
	bookingSvc := booking.NewService(bookingStore, rateSvc)

	leadStore := leads.NewStore(dbPool)
	leadSvc := leads.NewService(leadStore)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Quote:     quoteSvc,
		Booking:   bookingSvc,
		Catalog:   catalogSvc,
		Leads:     leadSvc,
		RateStore: rateStore,
		Places:    placesSvc,
		JWTSecret: cfg.Auth.JWTSecret,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
