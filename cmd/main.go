package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Ankit-Samanta/college-admin-dashboard/config"
	"github.com/Ankit-Samanta/college-admin-dashboard/database"
	"github.com/Ankit-Samanta/college-admin-dashboard/middlewares"
	"github.com/Ankit-Samanta/college-admin-dashboard/routes"
)

func main() {
	cfg := config.Load()

	// early fail if the database is not up
	database.Connect(cfg)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(middlewares.RequestTimeout(database.QueryTimeout))

	routes.Register(e, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
