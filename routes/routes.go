package routes

import (
	"net/http"

	"github.com/foundanand/trackmygov/controllers"
	"github.com/foundanand/trackmygov/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize controllers
	issueController := controllers.NewIssueController(db)
	noteController := controllers.NewCommunityNoteController(db)
	analyticsController := controllers.NewAnalyticsController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// No route here is authenticated; X-Client-Id is only a pseudo-identity.
	api := r.Group("/api")
	api.Use(middleware.ClientIdentity())
	{
		SetupIssueRoutes(api, issueController)
		SetupCommunityNoteRoutes(api, noteController)
		SetupAnalyticsRoutes(api, analyticsController)
	}
}
