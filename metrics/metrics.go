package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	// IssuesCreatedTotal counts accepted issue reports by category.
	IssuesCreatedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trackmygov",
		Subsystem: "issues",
		Name:      "created_total",
		Help:      "Total number of issues reported, labeled by category.",
	}, []string{"category"})

	// StatusUpdatesTotal counts status changes by the new status.
	StatusUpdatesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trackmygov",
		Subsystem: "issues",
		Name:      "status_updates_total",
		Help:      "Total number of issue status updates, labeled by new status.",
	}, []string{"status"})

	// UpvoteTogglesTotal counts upvote toggles; action is "added" or "removed".
	UpvoteTogglesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trackmygov",
		Subsystem: "issues",
		Name:      "upvote_toggles_total",
		Help:      "Total number of upvote toggles, labeled by action.",
	}, []string{"action"})

	NotesCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "trackmygov",
		Subsystem: "notes",
		Name:      "created_total",
		Help:      "Total number of community notes created.",
	})

	NotesDeletedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "trackmygov",
		Subsystem: "notes",
		Name:      "deleted_total",
		Help:      "Total number of community notes deleted by their creator.",
	})

	NoteRatingsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trackmygov",
		Subsystem: "notes",
		Name:      "ratings_total",
		Help:      "Total number of community note ratings, labeled by rating.",
	}, []string{"rating"})

	// HTTPRequestDurationSeconds is handler latency by route template.
	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "trackmygov",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Time spent serving HTTP requests.",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"method", "route", "status"})
)

// Register registers the service metrics with the default Prometheus
// registry. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			IssuesCreatedTotal,
			StatusUpdatesTotal,
			UpvoteTogglesTotal,
			NotesCreatedTotal,
			NotesDeletedTotal,
			NoteRatingsTotal,
			HTTPRequestDurationSeconds,
		)
	})
}
