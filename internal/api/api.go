// internal/api/api.go
package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/danisworo/stocklens/internal/api/handlers"
	"github.com/danisworo/stocklens/internal/api/middleware"
	"github.com/danisworo/stocklens/internal/service"
)

// NewRouter wires the analysis endpoints behind logging, recovery and CORS.
func NewRouter(analysisService *service.AnalysisService) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	apiGroup := router.Group("/api/v1")

	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	analysisGroup := apiGroup.Group("/analysis")
	{
		analysisGroup.POST("", analysisHandler.Analyze)
		analysisGroup.GET("/runs", analysisHandler.Runs)
	}

	return router
}
