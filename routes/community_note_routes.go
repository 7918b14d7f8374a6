package routes

import (
	"github.com/foundanand/trackmygov/controllers"
	"github.com/gin-gonic/gin"
)

func SetupCommunityNoteRoutes(api *gin.RouterGroup, noteController *controllers.CommunityNoteController) {
	// Notes hang off their issue for create and list
	issues := api.Group("/issues")
	{
		issues.POST("/:id/notes", noteController.CreateNote)
		issues.GET("/:id/notes", noteController.GetNotesByIssue)
	}

	notes := api.Group("/notes")
	{
		notes.POST("/:id/rate", noteController.RateNote)
		notes.DELETE("/:id", noteController.DeleteNote)
	}
}
