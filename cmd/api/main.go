package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"bess-valuation/internal/api/handlers"
	"bess-valuation/internal/api/middleware"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler())

	valuationHandler := handlers.NewValuationHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/calculate", valuationHandler.Calculate)
		api.POST("/optimize", valuationHandler.Optimize)

		api.GET("/mills", handlers.ListMills)
		api.GET("/tariffs", handlers.ListTariffs)
		api.GET("/technologies", handlers.ListTechnologies)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
