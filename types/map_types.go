package types

import "github.com/foundanand/trackmygov/models"

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Bounds is the visible map rectangle. Boxes crossing the antimeridian are
// not supported.
type Bounds struct {
	NorthEast LatLng `json:"northEast"`
	SouthWest LatLng `json:"southWest"`
}

// Contains reports whether the point lies inside the box, edges included.
func (b Bounds) Contains(lat, lng float64) bool {
	return lat >= b.SouthWest.Lat && lat <= b.NorthEast.Lat &&
		lng >= b.SouthWest.Lng && lng <= b.NorthEast.Lng
}

// BoundsQuery is the query-string form of a bounds request. The corners are
// pointers so a zero coordinate still satisfies required.
type BoundsQuery struct {
	NorthEastLat *float64             `form:"neLat" binding:"required"`
	NorthEastLng *float64             `form:"neLng" binding:"required"`
	SouthWestLat *float64             `form:"swLat" binding:"required"`
	SouthWestLng *float64             `form:"swLng" binding:"required"`
	Category     models.IssueCategory `form:"category"`
	Status       models.IssueStatus   `form:"status"`
}

func (q BoundsQuery) Bounds() Bounds {
	return Bounds{
		NorthEast: LatLng{Lat: *q.NorthEastLat, Lng: *q.NorthEastLng},
		SouthWest: LatLng{Lat: *q.SouthWestLat, Lng: *q.SouthWestLng},
	}
}

// Cluster is a group of issue pins that share an S2 cell.
type Cluster struct {
	CellID    string   `json:"cellId"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Count     int      `json:"count"`
	IssueIDs  []string `json:"issueIds,omitempty"`
}
