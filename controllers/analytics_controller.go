package controllers

import (
	"errors"
	"net/http"

	"github.com/foundanand/trackmygov/models"
	"github.com/foundanand/trackmygov/services"
	"github.com/foundanand/trackmygov/types"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnalyticsController struct {
	Issues *services.IssueService
}

type AnalyticsQuery struct {
	NorthEastLat *float64             `form:"neLat"`
	NorthEastLng *float64             `form:"neLng"`
	SouthWestLat *float64             `form:"swLat"`
	SouthWestLng *float64             `form:"swLng"`
	Category     models.IssueCategory `form:"category"`
	Status       models.IssueStatus   `form:"status"`
}

var errPartialBounds = errors.New("neLat, neLng, swLat and swLng must be given together")

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{Issues: services.NewIssueService(db)}
}

// bounds returns nil when no corner is set.
func (q AnalyticsQuery) bounds() (*types.Bounds, error) {
	corners := []*float64{q.NorthEastLat, q.NorthEastLng, q.SouthWestLat, q.SouthWestLng}
	set := 0
	for _, v := range corners {
		if v != nil {
			set++
		}
	}
	switch set {
	case 0:
		return nil, nil
	case len(corners):
		return &types.Bounds{
			NorthEast: types.LatLng{Lat: *q.NorthEastLat, Lng: *q.NorthEastLng},
			SouthWest: types.LatLng{Lat: *q.SouthWestLat, Lng: *q.SouthWestLng},
		}, nil
	default:
		return nil, errPartialBounds
	}
}

// GetAnalytics godoc
// @Summary Issue counts per category and status
// @Description Optional bounds restrict the count to the visible map
// @Tags analytics
// @Produce json
// @Success 200 {object} types.AnalyticsSummary
// @Router /analytics [get]
func (ac *AnalyticsController) GetAnalytics(c *gin.Context) {
	var query AnalyticsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, err)
		return
	}
	bounds, err := query.bounds()
	if err != nil {
		badRequest(c, err)
		return
	}
	summary, err := ac.Issues.Analytics(c.Request.Context(), services.AnalyticsFilter{
		Bounds:   bounds,
		Category: query.Category,
		Status:   query.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetCategories godoc
// @Summary The issue categories with their display colors
// @Tags analytics
// @Produce json
// @Success 200 {array} types.CategoryInfo
// @Router /categories [get]
func (ac *AnalyticsController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, services.Categories())
}
