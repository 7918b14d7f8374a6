package services

import (
	"context"

	"github.com/foundanand/trackmygov/models"
	geojson "github.com/paulmach/go.geojson"
)

// IssuesToFeatureCollection renders issues as GeoJSON points for map layers.
func IssuesToFeatureCollection(issues []models.Issue) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, issue := range issues {
		// GeoJSON positions are [lng, lat].
		f := geojson.NewPointFeature([]float64{issue.Longitude, issue.Latitude})
		f.ID = issue.ID
		f.SetProperty("title", issue.Title)
		f.SetProperty("category", string(issue.Category))
		f.SetProperty("status", string(issue.Status))
		f.SetProperty("upvotes", issue.Upvotes)
		f.SetProperty("color", issue.Category.Color())
		fc.AddFeature(f)
	}
	return fc
}

// GeoJSON returns the issues inside the rectangle as a feature collection.
func (s *IssueService) GeoJSON(ctx context.Context, f BoundsFilter) (*geojson.FeatureCollection, error) {
	issues, err := s.issuesInBounds(ctx, f)
	if err != nil {
		return nil, err
	}
	return IssuesToFeatureCollection(issues), nil
}
