package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/primeticket/primeticket-api/internal/booking"
	"github.com/primeticket/primeticket-api/internal/catalog"
	"github.com/primeticket/primeticket-api/internal/config"
	"github.com/primeticket/primeticket-api/internal/database"
	"github.com/primeticket/primeticket-api/internal/event"
	"github.com/primeticket/primeticket-api/internal/handler"
	"github.com/primeticket/primeticket-api/internal/identity"
	"github.com/primeticket/primeticket-api/internal/router"
	"github.com/primeticket/primeticket-api/internal/storage"
	"github.com/primeticket/primeticket-api/internal/theater"
	"github.com/primeticket/primeticket-api/internal/userdata"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	store := newStore(cfg)
	bus := event.NewBus()

	client, err := catalog.NewClient(cfg.CatalogBaseURL, cfg.CatalogAPIKey,
		cfg.CatalogImages, cfg.CatalogBackdrop, cfg.CatalogTimeout, nil)
	if err != nil {
		log.Fatalf("catalog client: %v", err)
	}
	catalogSvc := catalog.NewService(client, catalog.NewCache(store), nil)

	ids := identity.NewStore(store, bus, cfg.BcryptCost)
	data := userdata.NewStore(ids, bus)
	theaters := theater.NewDirectory(store)

	// Readers re-query the stores on these signals; logging them keeps
	// the broadcast observable during development.
	for _, topic := range []event.Topic{event.AuthChanged, event.FavoritesChanged, event.BookingsChanged} {
		bus.Subscribe(topic, func(t event.Topic) { log.Printf("event: %s", t) })
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, ids), cfg.JWTSecret)

	bookingHandler := handler.NewBookingHandler(catalogSvc, theaters, ids, data, booking.NewSimulatedAuthorizer())
	router.RegisterCatalog(e, handler.NewCatalogHandler(catalogSvc), handler.NewTheaterHandler(theaters), bookingHandler)
	router.RegisterUserData(e, handler.NewUserDataHandler(data), bookingHandler, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreBackend)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// newStore picks the slot store backend. Redis and MySQL fall back to
// memory with a warning when unreachable so a dev machine can run with
// nothing installed.
func newStore(cfg config.Config) storage.Store {
	switch cfg.StoreBackend {
	case "redis":
		if client := config.NewRedisClient(); client != nil {
			return storage.NewRedis(client)
		}
		log.Printf("redis unreachable, falling back to in-memory store")
	case "mysql":
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err == nil {
			if store, err := storage.NewMySQL(context.Background(), db); err == nil {
				return store
			}
		}
		log.Printf("mysql unreachable, falling back to in-memory store")
	}
	return storage.NewMemory()
}
