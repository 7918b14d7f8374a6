package routes

import (
	"github.com/foundanand/trackmygov/controllers"
	"github.com/gin-gonic/gin"
)

func SetupIssueRoutes(api *gin.RouterGroup, issueController *controllers.IssueController) {
	issues := api.Group("/issues")
	{
		issues.POST("", issueController.CreateIssue)
		issues.GET("", issueController.ListIssues)
		issues.GET("/bounds", issueController.ListIssuesByBounds)
		issues.GET("/geojson", issueController.GetIssuesGeoJSON)
		issues.GET("/clusters", issueController.GetIssueClusters)
		issues.GET("/:id", issueController.GetIssue)
		issues.POST("/:id/upvote", issueController.UpvoteIssue)
		issues.PATCH("/:id/status", issueController.UpdateIssueStatus)
	}
}
