package main

import (
	"log"
	"os"

	"datacenter-optimizer/internal/api/handlers"
	"datacenter-optimizer/internal/api/middleware"
	"datacenter-optimizer/internal/solver"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	for name, available := range solver.Names() {
		log.Printf("solver backend %s available=%v", name, available)
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	optimizeHandler := handlers.NewOptimizeHandler()
	solverHandler := handlers.NewSolverHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/optimize", optimizeHandler.Optimize)
		v1.POST("/optimize/demo", optimizeHandler.OptimizeDemo)
		v1.GET("/solvers", solverHandler.ListSolvers)
	}

	log.Printf("API listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
