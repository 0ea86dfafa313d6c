package main

import (
	"fmt"
	"log"

	"github.com/moeinteractive/ohtommys-sub000/configs"
	"github.com/moeinteractive/ohtommys-sub000/middlewares"
	"github.com/moeinteractive/ohtommys-sub000/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedAdmin(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedContent(db); err != nil {
		log.Fatalf("seed content failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.AllowOrigins))

	// Serve uploaded menu pictures
	r.Static("/uploads", "./uploads")

	routes.RegisterRoutes(r, db, cfg)

	port := cfg.Port
	if port == "" {
		port = "8000"
	}
	log.Printf("listening on :%s", port)
	if err := r.Run(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
