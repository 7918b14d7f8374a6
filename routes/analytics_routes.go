package routes

import (
	"github.com/foundanand/trackmygov/controllers"
	"github.com/gin-gonic/gin"
)

func SetupAnalyticsRoutes(api *gin.RouterGroup, analyticsController *controllers.AnalyticsController) {
	api.GET("/analytics", analyticsController.GetAnalytics)
	api.GET("/categories", analyticsController.GetCategories)
}
