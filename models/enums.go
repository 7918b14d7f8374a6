package models

// IssueCategory enum
type IssueCategory string

const (
	CategoryCorruption       IssueCategory = "CORRUPTION"
	CategoryPothole          IssueCategory = "POTHOLE"
	CategoryWater            IssueCategory = "WATER"
	CategoryElectricity      IssueCategory = "ELECTRICITY"
	CategoryDomesticViolence IssueCategory = "DOMESTIC_VIOLENCE"
	CategoryCrime            IssueCategory = "CRIME"
	CategorySanitation       IssueCategory = "SANITATION"
	CategoryEducation        IssueCategory = "EDUCATION"
	CategoryHealthcare       IssueCategory = "HEALTHCARE"
	CategoryEnvironment      IssueCategory = "ENVIRONMENT"
	CategoryOther            IssueCategory = "OTHER"
)

// IssueCategories lists every category in display order. Aggregation,
// validation and the color map all iterate this slice.
var IssueCategories = []IssueCategory{
	CategoryCorruption,
	CategoryPothole,
	CategoryWater,
	CategoryElectricity,
	CategoryDomesticViolence,
	CategoryCrime,
	CategorySanitation,
	CategoryEducation,
	CategoryHealthcare,
	CategoryEnvironment,
	CategoryOther,
}

var categoryColors = map[IssueCategory]string{
	CategoryCorruption:       "bg-red-50 text-red-700",
	CategoryPothole:          "bg-cyan-50 text-cyan-700",
	CategoryWater:            "bg-blue-50 text-blue-700",
	CategoryElectricity:      "bg-orange-50 text-orange-700",
	CategoryDomesticViolence: "bg-purple-50 text-purple-700",
	CategoryCrime:            "bg-yellow-50 text-yellow-700",
	CategorySanitation:       "bg-indigo-50 text-indigo-700",
	CategoryEducation:        "bg-teal-50 text-teal-700",
	CategoryHealthcare:       "bg-pink-50 text-pink-700",
	CategoryEnvironment:      "bg-green-50 text-green-700",
	CategoryOther:            "bg-gray-50 text-gray-700",
}

func (c IssueCategory) Valid() bool {
	_, ok := categoryColors[c]
	return ok
}

// Color returns the display classes used by the analytics table.
func (c IssueCategory) Color() string {
	return categoryColors[c]
}

// IssueStatus enum
type IssueStatus string

const (
	StatusReported   IssueStatus = "REPORTED"
	StatusInProgress IssueStatus = "IN_PROGRESS"
	StatusResolved   IssueStatus = "RESOLVED"
)

var IssueStatuses = []IssueStatus{StatusReported, StatusInProgress, StatusResolved}

func (s IssueStatus) Valid() bool {
	switch s {
	case StatusReported, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// NoteRating enum
type NoteRating string

const (
	RatingHelpful          NoteRating = "HELPFUL"
	RatingPartiallyHelpful NoteRating = "PARTIALLY_HELPFUL"
	RatingNotHelpful       NoteRating = "NOT_HELPFUL"
)

func (r NoteRating) Valid() bool {
	return r.Rank() > 0
}

// Rank orders ratings for display; unrated notes rank 0.
func (r NoteRating) Rank() int {
	switch r {
	case RatingHelpful:
		return 3
	case RatingPartiallyHelpful:
		return 2
	case RatingNotHelpful:
		return 1
	}
	return 0
}
