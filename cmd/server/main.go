package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"cinema_rental/internal/config"
	"cinema_rental/internal/handler"
	"cinema_rental/internal/registry"
	"cinema_rental/internal/router"
	"cinema_rental/internal/storage"
)

func main() {
	cfg := config.Load()

	path := cfg.DataFile
	if path == "" {
		path = storage.DefaultPath()
	}
	store := storage.New(path)

	reg := registry.New(cfg.AllowReclose)
	if err := store.LoadInto(reg); err != nil {
		log.Fatalf("load catalog from %s: %v", store.Path(), err)
	}
	log.Printf("catalog loaded from %s (%d cinemas, %d suppliers, %d films, %d rentals)",
		store.Path(), len(reg.Cinemas()), len(reg.Suppliers()), len(reg.Films()), len(reg.Rentals()))

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, running without cache and rate limiting")
	}

	router.Register(e, handler.NewAuthHandler(cfg), handler.NewHandler(cfg, reg, store), rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
