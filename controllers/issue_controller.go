package controllers

import (
	"errors"
	"net/http"

	"github.com/foundanand/trackmygov/models"
	"github.com/foundanand/trackmygov/services"
	"github.com/foundanand/trackmygov/types"
	"github.com/foundanand/trackmygov/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type IssueController struct {
	Issues *services.IssueService
}

type ListIssuesQuery struct {
	State    string               `form:"state"`
	City     string               `form:"city"`
	Category models.IssueCategory `form:"category"`
	Status   models.IssueStatus   `form:"status"`
	Skip     int                  `form:"skip,default=0" binding:"min=0"`
	Take     int                  `form:"take,default=20" binding:"min=1"`
}

type UpvoteRequest struct {
	UserID string `json:"userId"`
}

type UpdateStatusRequest struct {
	Status models.IssueStatus `json:"status" binding:"required"`
}

func NewIssueController(db *gorm.DB) *IssueController {
	return &IssueController{Issues: services.NewIssueService(db)}
}

// CreateIssue godoc
// @Summary Report a new issue
// @Description Creates an issue in REPORTED status with zero upvotes
// @Tags issues
// @Accept json
// @Produce json
// @Param issue body services.CreateIssueInput true "Issue report"
// @Success 201 {object} models.Issue
// @Router /issues [post]
func (ic *IssueController) CreateIssue(c *gin.Context) {
	var req services.CreateIssueInput
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.CreatedBy = utils.ClientIDOr(c, req.CreatedBy)

	issue, err := ic.Issues.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, issue)
}

// GetIssue godoc
// @Summary Get an issue with its community notes
// @Tags issues
// @Produce json
// @Param id path string true "Issue ID"
// @Success 200 {object} models.Issue
// @Router /issues/{id} [get]
func (ic *IssueController) GetIssue(c *gin.Context) {
	issue, err := ic.Issues.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

// ListIssuesByBounds godoc
// @Summary Issues inside the visible map rectangle
// @Description Each issue carries at most its three newest notes
// @Tags issues
// @Produce json
// @Param neLat query number true "North-east latitude"
// @Param neLng query number true "North-east longitude"
// @Param swLat query number true "South-west latitude"
// @Param swLng query number true "South-west longitude"
// @Param category query string false "Category filter"
// @Param status query string false "Status filter"
// @Success 200 {array} models.Issue
// @Router /issues/bounds [get]
func (ic *IssueController) ListIssuesByBounds(c *gin.Context) {
	filter, ok := bindBoundsFilter(c)
	if !ok {
		return
	}
	issues, err := ic.Issues.ListByBounds(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, issues)
}

// GetIssuesGeoJSON godoc
// @Summary Issues inside the map rectangle as a GeoJSON FeatureCollection
// @Tags issues
// @Produce json
// @Router /issues/geojson [get]
func (ic *IssueController) GetIssuesGeoJSON(c *gin.Context) {
	filter, ok := bindBoundsFilter(c)
	if !ok {
		return
	}
	fc, err := ic.Issues.GeoJSON(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fc)
}

// GetIssueClusters godoc
// @Summary Issue pins grouped into map clusters
// @Tags issues
// @Produce json
// @Success 200 {array} types.Cluster
// @Router /issues/clusters [get]
func (ic *IssueController) GetIssueClusters(c *gin.Context) {
	filter, ok := bindBoundsFilter(c)
	if !ok {
		return
	}
	clusters, err := ic.Issues.Clusters(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clusters)
}

// ListIssues godoc
// @Summary Issues by state and city, newest first
// @Description State and city match exactly, including case and spacing
// @Tags issues
// @Produce json
// @Param state query string false "State"
// @Param city query string false "City"
// @Param category query string false "Category filter"
// @Param status query string false "Status filter"
// @Param skip query integer false "Offset (default: 0)"
// @Param take query integer false "Page size (default: 20)"
// @Success 200 {array} models.Issue
// @Router /issues [get]
func (ic *IssueController) ListIssues(c *gin.Context) {
	var query ListIssuesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}
	issues, err := ic.Issues.ListByLocation(c.Request.Context(), services.LocationFilter{
		State:    query.State,
		City:     query.City,
		Category: query.Category,
		Status:   query.Status,
		Skip:     query.Skip,
		Take:     query.Take,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, issues)
}

// UpvoteIssue godoc
// @Summary Toggle the caller's upvote
// @Description A second upvote by the same user removes the first
// @Tags issues
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Param body body UpvoteRequest false "userId, or send X-Client-Id"
// @Success 200 {object} models.Issue
// @Router /issues/{id}/upvote [post]
func (ic *IssueController) UpvoteIssue(c *gin.Context) {
	var req UpvoteRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		badRequest(c, err)
		return
	}
	issue, err := ic.Issues.Upvote(c.Request.Context(), c.Param("id"), utils.ClientIDOr(c, req.UserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

// UpdateIssueStatus godoc
// @Summary Set an issue's status
// @Tags issues
// @Accept json
// @Produce json
// @Param id path string true "Issue ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} models.Issue
// @Router /issues/{id}/status [patch]
func (ic *IssueController) UpdateIssueStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	issue, err := ic.Issues.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

func bindBoundsFilter(c *gin.Context) (services.BoundsFilter, bool) {
	var query types.BoundsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return services.BoundsFilter{}, false
	}
	return services.BoundsFilter{
		Bounds:   query.Bounds(),
		Category: query.Category,
		Status:   query.Status,
	}, true
}

// bindOptionalJSON binds the body when there is one.
func bindOptionalJSON(c *gin.Context, v interface{}) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(v); err != nil {
		return errors.New("invalid request body: " + err.Error())
	}
	return nil
}
