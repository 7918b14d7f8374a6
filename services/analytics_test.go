package services

import (
	"context"
	"testing"

	"github.com/foundanand/trackmygov/models"
	"github.com/foundanand/trackmygov/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issuesOf(pairs ...interface{}) []models.Issue {
	out := make([]models.Issue, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, models.Issue{
			Category: pairs[i].(models.IssueCategory),
			Status:   pairs[i+1].(models.IssueStatus),
		})
	}
	return out
}

func TestAggregate(t *testing.T) {
	issues := issuesOf(
		models.CategoryPothole, models.StatusResolved,
		models.CategoryPothole, models.StatusReported,
		models.CategoryWater, models.StatusInProgress,
	)

	got := Aggregate(issues)

	assert.Equal(t, 3, got.TotalIssues)
	assert.Equal(t, 1, got.ResolvedIssues)
	require.Len(t, got.Categories, 2)
	assert.Equal(t, types.CategoryStats{
		Category: models.CategoryPothole,
		Color:    models.CategoryPothole.Color(),
		Total:    2,
		Resolved: 1,
		Reported: 1,
	}, got.Categories[0])
	assert.Equal(t, types.CategoryStats{
		Category:   models.CategoryWater,
		Color:      models.CategoryWater.Color(),
		Total:      1,
		InProgress: 1,
	}, got.Categories[1])
}

func TestAggregateTiesKeepEnumerationOrder(t *testing.T) {
	issues := issuesOf(
		models.CategoryOther, models.StatusReported,
		models.CategoryCrime, models.StatusReported,
		models.CategoryCorruption, models.StatusReported,
	)

	got := Aggregate(issues)
	require.Len(t, got.Categories, 3)
	assert.Equal(t, models.CategoryCorruption, got.Categories[0].Category)
	assert.Equal(t, models.CategoryCrime, got.Categories[1].Category)
	assert.Equal(t, models.CategoryOther, got.Categories[2].Category)
}

func TestAggregateUnmodeledValues(t *testing.T) {
	issues := issuesOf(
		models.CategoryPothole, models.IssueStatus("ESCALATED"),
		models.CategoryPothole, models.StatusInProgress,
		models.IssueCategory("TRAFFIC"), models.StatusResolved,
	)

	got := Aggregate(issues)

	assert.Equal(t, 3, got.TotalIssues)
	assert.Equal(t, 1, got.ResolvedIssues)
	require.Len(t, got.Categories, 1)
	assert.Equal(t, types.CategoryStats{
		Category:   models.CategoryPothole,
		Color:      models.CategoryPothole.Color(),
		Total:      2,
		InProgress: 1,
		Reported:   1,
	}, got.Categories[0])
}

func TestAggregateEmpty(t *testing.T) {
	got := Aggregate(nil)
	assert.Zero(t, got.TotalIssues)
	assert.Zero(t, got.ResolvedIssues)
	assert.NotNil(t, got.Categories)
	assert.Empty(t, got.Categories)
}

func TestAggregateSumsMatchTotals(t *testing.T) {
	var issues []models.Issue
	for i, c := range models.IssueCategories {
		for j := 0; j <= i; j++ {
			issues = append(issues, models.Issue{
				Category: c,
				Status:   models.IssueStatuses[j%len(models.IssueStatuses)],
			})
		}
	}

	got := Aggregate(issues)
	sum := 0
	for i, cs := range got.Categories {
		assert.Equal(t, cs.Total, cs.Resolved+cs.InProgress+cs.Reported)
		if i > 0 {
			assert.LessOrEqual(t, cs.Total, got.Categories[i-1].Total)
		}
		sum += cs.Total
	}
	assert.Equal(t, got.TotalIssues, sum)
	assert.Equal(t, models.CategoryOther, got.Categories[0].Category)
}

func TestCategories(t *testing.T) {
	got := Categories()
	require.Len(t, got, len(models.IssueCategories))
	for i, c := range got {
		assert.Equal(t, models.IssueCategories[i], c.Category)
		assert.NotEmpty(t, c.Color)
	}
}

func TestIssueServiceAnalytics(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db)
	ctx := context.Background()

	seedIssue(t, db, models.Issue{Category: models.CategoryPothole, Status: models.StatusResolved, Latitude: 20, Longitude: 75})
	seedIssue(t, db, models.Issue{Category: models.CategoryPothole, Latitude: 21, Longitude: 76})
	seedIssue(t, db, models.Issue{Category: models.CategoryWater, Status: models.StatusInProgress, Latitude: 40, Longitude: 75})

	summary, err := svc.Analytics(ctx, AnalyticsFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalIssues)
	assert.Equal(t, 1, summary.ResolvedIssues)
	require.Len(t, summary.Categories, 2)
	assert.Equal(t, models.CategoryPothole, summary.Categories[0].Category)

	summary, err = svc.Analytics(ctx, AnalyticsFilter{Bounds: &types.Bounds{
		NorthEast: types.LatLng{Lat: 30, Lng: 80},
		SouthWest: types.LatLng{Lat: 10, Lng: 70},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalIssues)
	require.Len(t, summary.Categories, 1)

	summary, err = svc.Analytics(ctx, AnalyticsFilter{Status: models.StatusInProgress})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalIssues)
	assert.Equal(t, models.CategoryWater, summary.Categories[0].Category)
}
