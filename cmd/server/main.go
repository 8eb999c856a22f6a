package main

import (
	"fmt"
	"log"

	"bahikhata/internal/config"
	"bahikhata/internal/handler"
	"bahikhata/internal/router"
	"bahikhata/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize services
	taxSvc := service.NewTaxService()
	returnSvc := service.NewReturnService()

	// Initialize handlers
	taxH := handler.NewTaxHandler(taxSvc)
	returnsH := handler.NewReturnsHandler(returnSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, taxH, returnsH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
