package main

import (
	"log"

	"github.com/2605335342/sky-take-out/configs"
	"github.com/2605335342/sky-take-out/middlewares"
	"github.com/2605335342/sky-take-out/routes"
	"github.com/2605335342/sky-take-out/ws"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	hub := ws.NewNotifyHub()
	go hub.Run()

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, cfg, configs.DB(), hub)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
