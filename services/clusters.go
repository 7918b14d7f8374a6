package services

import (
	"sort"

	"github.com/foundanand/trackmygov/models"
	"github.com/foundanand/trackmygov/types"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

const (
	expectedCells   = 16
	minClusterLevel = 2
	maxClusterLevel = 18
)

// ClusterLevel picks the S2 level at which roughly expectedCells cells cover
// the viewport.
func ClusterLevel(b types.Bounds) int {
	sw := s2.LatLngFromDegrees(b.SouthWest.Lat, b.SouthWest.Lng)
	ne := s2.LatLngFromDegrees(b.NorthEast.Lat, b.NorthEast.Lng)
	rect := s2.Rect{
		Lat: r1.Interval{Lo: sw.Lat.Radians(), Hi: ne.Lat.Radians()},
		Lng: s1.Interval{Lo: sw.Lng.Radians(), Hi: ne.Lng.Radians()},
	}
	area := rect.Area()

	center := s2.CellIDFromLatLng(s2.LatLngFromDegrees(
		(b.SouthWest.Lat+b.NorthEast.Lat)/2,
		(b.SouthWest.Lng+b.NorthEast.Lng)/2,
	))
	for lv := maxClusterLevel; lv >= minClusterLevel; lv-- {
		cell := s2.CellFromCellID(center.Parent(lv))
		if area/cell.ApproxArea() < expectedCells {
			return lv
		}
	}
	return minClusterLevel
}

// ClusterIssues buckets issues by S2 cell. Each cluster sits at the mean
// position of its pins. Output is ordered by count, then cell token.
func ClusterIssues(b types.Bounds, issues []models.Issue) []types.Cluster {
	level := ClusterLevel(b)

	type acc struct {
		latSum, lngSum float64
		ids            []string
	}
	cells := make(map[s2.CellID]*acc)
	for _, issue := range issues {
		id := s2.CellIDFromLatLng(s2.LatLngFromDegrees(issue.Latitude, issue.Longitude)).Parent(level)
		a, ok := cells[id]
		if !ok {
			a = &acc{}
			cells[id] = a
		}
		a.latSum += issue.Latitude
		a.lngSum += issue.Longitude
		a.ids = append(a.ids, issue.ID)
	}

	out := make([]types.Cluster, 0, len(cells))
	for id, a := range cells {
		n := float64(len(a.ids))
		out = append(out, types.Cluster{
			CellID:    id.ToToken(),
			Latitude:  a.latSum / n,
			Longitude: a.lngSum / n,
			Count:     len(a.ids),
			IssueIDs:  a.ids,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].CellID < out[j].CellID
	})
	return out
}
