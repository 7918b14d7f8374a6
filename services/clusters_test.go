package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/foundanand/trackmygov/models"
	"github.com/foundanand/trackmygov/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var indiaBounds = types.Bounds{
	NorthEast: types.LatLng{Lat: 37, Lng: 97},
	SouthWest: types.LatLng{Lat: 6, Lng: 68},
}

func TestClusterLevelGrowsAsViewportShrinks(t *testing.T) {
	country := ClusterLevel(indiaBounds)
	city := ClusterLevel(types.Bounds{
		NorthEast: types.LatLng{Lat: 19.3, Lng: 73.1},
		SouthWest: types.LatLng{Lat: 18.9, Lng: 72.7},
	})
	street := ClusterLevel(types.Bounds{
		NorthEast: types.LatLng{Lat: 19.077, Lng: 72.878},
		SouthWest: types.LatLng{Lat: 19.075, Lng: 72.876},
	})

	assert.GreaterOrEqual(t, country, minClusterLevel)
	assert.LessOrEqual(t, street, maxClusterLevel)
	assert.Less(t, country, city)
	assert.LessOrEqual(t, city, street)
}

func TestClusterIssues(t *testing.T) {
	issues := []models.Issue{
		{ID: "a", Latitude: 19.0760, Longitude: 72.8777},
		{ID: "b", Latitude: 19.0762, Longitude: 72.8779},
		{ID: "c", Latitude: 28.6139, Longitude: 77.2090},
	}

	clusters := ClusterIssues(indiaBounds, issues)
	require.Len(t, clusters, 2)

	assert.Equal(t, 2, clusters[0].Count)
	assert.ElementsMatch(t, []string{"a", "b"}, clusters[0].IssueIDs)
	assert.InDelta(t, 19.0761, clusters[0].Latitude, 1e-9)
	assert.InDelta(t, 72.8778, clusters[0].Longitude, 1e-9)
	assert.NotEmpty(t, clusters[0].CellID)

	assert.Equal(t, 1, clusters[1].Count)
	assert.Equal(t, []string{"c"}, clusters[1].IssueIDs)
}

func TestClusterIssuesEmpty(t *testing.T) {
	clusters := ClusterIssues(indiaBounds, nil)
	assert.NotNil(t, clusters)
	assert.Empty(t, clusters)
}

func TestIssueServiceClustersAndGeoJSON(t *testing.T) {
	db := newTestDB(t)
	svc := NewIssueService(db)
	ctx := context.Background()

	inside := seedIssue(t, db, models.Issue{Latitude: 19.076, Longitude: 72.8777, Category: models.CategoryWater})
	seedIssue(t, db, models.Issue{Latitude: 51.5, Longitude: -0.12})

	clusters, err := svc.Clusters(ctx, BoundsFilter{Bounds: indiaBounds})
	require.NoError(t, err)
	require.Len(t, clusters, 1)
	assert.Equal(t, []string{inside.ID}, clusters[0].IssueIDs)

	fc, err := svc.GeoJSON(ctx, BoundsFilter{Bounds: indiaBounds})
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	f := fc.Features[0]
	assert.Equal(t, inside.ID, f.ID)
	require.True(t, f.Geometry.IsPoint())
	assert.Equal(t, []float64{72.8777, 19.076}, f.Geometry.Point)
	assert.Equal(t, "WATER", f.Properties["category"])
	assert.Equal(t, "REPORTED", f.Properties["status"])
	assert.Equal(t, models.CategoryWater.Color(), f.Properties["color"])

	raw, err := json.Marshal(fc)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"type":"FeatureCollection"`)
}
