package main

import (
	"context"
	"log"

	"sharenotes-be/internal/bootstrap"
	"sharenotes-be/internal/config"
	"sharenotes-be/internal/server"
	"sharenotes-be/internal/tracer"
	"sharenotes-be/pkg/database"
)

func main() {
	cfg := config.Load()

	shutdownTracer := tracer.InitTracer(cfg.App.OtlpEndpoint)
	defer shutdownTracer(context.Background())

	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
