package controllers

import (
	"net/http"

	"github.com/foundanand/trackmygov/models"
	"github.com/foundanand/trackmygov/services"
	"github.com/foundanand/trackmygov/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommunityNoteController struct {
	Notes *services.CommunityNoteService
}

type CreateNoteRequest struct {
	Content   string `json:"content"`
	CreatedBy string `json:"createdBy"`
}

type RateNoteRequest struct {
	Rating    models.NoteRating `json:"rating" binding:"required"`
	IsHelpful *bool             `json:"isHelpful" binding:"required"`
}

type DeleteNoteRequest struct {
	CreatedBy string `json:"createdBy"`
}

func NewCommunityNoteController(db *gorm.DB) *CommunityNoteController {
	return &CommunityNoteController{Notes: services.NewCommunityNoteService(db)}
}

// CreateNote godoc
// @Summary Add a community note to an issue
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Param note body CreateNoteRequest true "Note"
// @Success 201 {object} models.CommunityNote
// @Router /issues/{id}/notes [post]
func (nc *CommunityNoteController) CreateNote(c *gin.Context) {
	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	note, err := nc.Notes.Create(c.Request.Context(), services.CreateNoteInput{
		Content:   req.Content,
		IssueID:   c.Param("id"),
		CreatedBy: utils.ClientIDOr(c, req.CreatedBy),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

// GetNotesByIssue godoc
// @Summary List an issue's notes, best rated first
// @Tags notes
// @Produce json
// @Param id path string true "Issue ID"
// @Success 200 {array} models.CommunityNote
// @Router /issues/{id}/notes [get]
func (nc *CommunityNoteController) GetNotesByIssue(c *gin.Context) {
	notes, err := nc.Notes.GetByIssue(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

// RateNote godoc
// @Summary Rate a community note
// @Description Overwrites the rating and bumps the helpful or not-helpful count
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param body body RateNoteRequest true "Rating"
// @Success 200 {object} models.CommunityNote
// @Router /notes/{id}/rate [post]
func (nc *CommunityNoteController) RateNote(c *gin.Context) {
	var req RateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	note, err := nc.Notes.Rate(c.Request.Context(), c.Param("id"), services.RateNoteInput{
		Rating:    req.Rating,
		IsHelpful: *req.IsHelpful,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

// DeleteNote godoc
// @Summary Delete a note the caller created
// @Description createdBy comes from the query, the body or X-Client-Id
// @Tags notes
// @Param id path string true "Note ID"
// @Param createdBy query string false "Creator"
// @Success 204
// @Router /notes/{id} [delete]
func (nc *CommunityNoteController) DeleteNote(c *gin.Context) {
	createdBy := c.Query("createdBy")
	if createdBy == "" {
		var req DeleteNoteRequest
		if err := bindOptionalJSON(c, &req); err != nil {
			badRequest(c, err)
			return
		}
		createdBy = utils.ClientIDOr(c, req.CreatedBy)
	}
	if err := nc.Notes.Delete(c.Request.Context(), c.Param("id"), createdBy); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
