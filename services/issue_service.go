package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/foundanand/trackmygov/metrics"
	"github.com/foundanand/trackmygov/models"
	"github.com/foundanand/trackmygov/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// boundsNoteLimit caps the notes attached to each issue on the map view.
	boundsNoteLimit = 3
	defaultTake     = 20
)

type IssueService struct {
	DB *gorm.DB
}

func NewIssueService(db *gorm.DB) *IssueService {
	return &IssueService{DB: db}
}

type CreateIssueInput struct {
	Title       string               `json:"title" validate:"required,max=100"`
	Description string               `json:"description" validate:"min=10"`
	Category    models.IssueCategory `json:"category" validate:"issue_category"`
	Latitude    *float64             `json:"latitude" validate:"required"`
	Longitude   *float64             `json:"longitude" validate:"required"`
	State       string               `json:"state" validate:"required"`
	City        string               `json:"city" validate:"required"`
	Area        *string              `json:"area"`
	Pincode     *string              `json:"pincode"`
	ImageURLs   []string             `json:"imageUrls"`
	CreatedBy   string               `json:"createdBy" validate:"required"`
}

// BoundsFilter selects issues inside a map rectangle.
type BoundsFilter struct {
	Bounds   types.Bounds
	Category models.IssueCategory `json:"category" validate:"omitempty,issue_category"`
	Status   models.IssueStatus   `json:"status" validate:"omitempty,issue_status"`
}

// LocationFilter selects issues by exact state/city text. Take of 0 means
// the default page size.
type LocationFilter struct {
	State    string               `json:"state"`
	City     string               `json:"city"`
	Category models.IssueCategory `json:"category" validate:"omitempty,issue_category"`
	Status   models.IssueStatus   `json:"status" validate:"omitempty,issue_status"`
	Skip     int                  `json:"skip" validate:"gte=0"`
	Take     int                  `json:"take" validate:"gte=0"`
}

// AnalyticsFilter narrows the issues fed to Aggregate. A nil Bounds means
// every issue.
type AnalyticsFilter struct {
	Bounds   *types.Bounds
	Category models.IssueCategory `json:"category" validate:"omitempty,issue_category"`
	Status   models.IssueStatus   `json:"status" validate:"omitempty,issue_status"`
}

// Create persists a new report. Coordinates must be present but are taken
// as given; the map client is responsible for keeping pins inside India.
func (s *IssueService) Create(ctx context.Context, in CreateIssueInput) (*models.Issue, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	issue := models.Issue{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Status:      models.StatusReported,
		Latitude:    *in.Latitude,
		Longitude:   *in.Longitude,
		State:       in.State,
		City:        in.City,
		Area:        in.Area,
		Pincode:     in.Pincode,
		ImageURLs:   models.ImageURLs(in.ImageURLs),
		CreatedBy:   in.CreatedBy,
	}
	if err := s.DB.WithContext(ctx).Create(&issue).Error; err != nil {
		return nil, fmt.Errorf("create issue: %w", err)
	}

	metrics.IssuesCreatedTotal.WithLabelValues(string(issue.Category)).Inc()
	log.WithFields(log.Fields{
		"issue_id": issue.ID,
		"category": issue.Category,
		"city":     issue.City,
	}).Info("issue created")
	return &issue, nil
}

// GetByID loads an issue with all of its notes, newest first.
func (s *IssueService) GetByID(ctx context.Context, id string) (*models.Issue, error) {
	var issue models.Issue
	err := s.DB.WithContext(ctx).
		Preload("CommunityNotes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("id = ?", id).
		Take(&issue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get issue %s: %w", id, err)
	}
	return &issue, nil
}

// ListByBounds returns the issues whose pin lies inside the rectangle, each
// with at most its three most recent notes.
func (s *IssueService) ListByBounds(ctx context.Context, f BoundsFilter) ([]models.Issue, error) {
	issues, err := s.issuesInBounds(ctx, f)
	if err != nil {
		return nil, err
	}
	if err := s.attachRecentNotes(ctx, issues, boundsNoteLimit); err != nil {
		return nil, err
	}
	return issues, nil
}

func (s *IssueService) issuesInBounds(ctx context.Context, f BoundsFilter) ([]models.Issue, error) {
	if err := validate(f); err != nil {
		return nil, err
	}
	query := withBounds(s.DB.WithContext(ctx), f.Bounds)
	query = withCategoryStatus(query, f.Category, f.Status)

	issues := []models.Issue{}
	if err := query.Find(&issues).Error; err != nil {
		return nil, fmt.Errorf("list issues by bounds: %w", err)
	}
	return issues, nil
}

// attachRecentNotes loads the notes of all issues in one query and keeps the
// newest limit per issue.
func (s *IssueService) attachRecentNotes(ctx context.Context, issues []models.Issue, limit int) error {
	if len(issues) == 0 {
		return nil
	}
	ids := make([]string, len(issues))
	index := make(map[string]int, len(issues))
	for i := range issues {
		ids[i] = issues[i].ID
		index[issues[i].ID] = i
		issues[i].CommunityNotes = []models.CommunityNote{}
	}

	var notes []models.CommunityNote
	err := s.DB.WithContext(ctx).
		Where("issue_id IN ?", ids).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		return fmt.Errorf("load notes for %d issues: %w", len(ids), err)
	}
	for _, n := range notes {
		i := index[n.IssueID]
		if len(issues[i].CommunityNotes) < limit {
			issues[i].CommunityNotes = append(issues[i].CommunityNotes, n)
		}
	}
	return nil
}

// ListByLocation pages through issues matching state and city exactly,
// newest first, with every note attached.
func (s *IssueService) ListByLocation(ctx context.Context, f LocationFilter) ([]models.Issue, error) {
	if err := validate(f); err != nil {
		return nil, err
	}
	take := f.Take
	if take == 0 {
		take = defaultTake
	}

	query := s.DB.WithContext(ctx).Model(&models.Issue{})
	if f.State != "" {
		query = query.Where("state = ?", f.State)
	}
	if f.City != "" {
		query = query.Where("city = ?", f.City)
	}
	query = withCategoryStatus(query, f.Category, f.Status)

	issues := []models.Issue{}
	err := query.
		Preload("CommunityNotes", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Order("created_at DESC").
		Offset(f.Skip).
		Limit(take).
		Find(&issues).Error
	if err != nil {
		return nil, fmt.Errorf("list issues by location: %w", err)
	}
	return issues, nil
}

// Upvote toggles userID's upvote on the issue and returns the issue with its
// new count. The issue row is locked for the whole toggle so the counter
// always equals the number of upvote rows.
func (s *IssueService) Upvote(ctx context.Context, issueID, userID string) (*models.Issue, error) {
	if userID == "" {
		return nil, invalidField("userId", "userId is required")
	}

	var issue models.Issue
	action := "added"
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", issueID).
			Take(&issue).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		delta := 1
		var existing models.IssueUpvote
		err = tx.Where("issue_id = ? AND user_id = ?", issueID, userID).Take(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			delta = -1
			action = "removed"
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.IssueUpvote{IssueID: issueID, UserID: userID}).Error; err != nil {
				return err
			}
		default:
			return err
		}

		res := tx.Model(&models.Issue{}).
			Where("id = ?", issueID).
			Update("upvotes", gorm.Expr("upvotes + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("id = ?", issueID).Take(&issue).Error
	})
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("toggle upvote on %s: %w", issueID, err)
	}

	metrics.UpvoteTogglesTotal.WithLabelValues(action).Inc()
	log.WithFields(log.Fields{
		"issue_id": issueID,
		"action":   action,
		"upvotes":  issue.Upvotes,
	}).Debug("upvote toggled")
	return &issue, nil
}

// UpdateStatus sets any status from any status.
func (s *IssueService) UpdateStatus(ctx context.Context, id string, status models.IssueStatus) (*models.Issue, error) {
	if !status.Valid() {
		return nil, invalidField("status", "status must be one of REPORTED, IN_PROGRESS, RESOLVED")
	}

	var issue models.Issue
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Issue{}).Where("id = ?", id).Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("id = ?", id).Take(&issue).Error
	})
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update status of %s: %w", id, err)
	}

	metrics.StatusUpdatesTotal.WithLabelValues(string(status)).Inc()
	log.WithFields(log.Fields{"issue_id": id, "status": status}).Info("issue status updated")
	return &issue, nil
}

// Analytics aggregates the issues matching f.
func (s *IssueService) Analytics(ctx context.Context, f AnalyticsFilter) (*types.AnalyticsSummary, error) {
	if err := validate(f); err != nil {
		return nil, err
	}
	query := s.DB.WithContext(ctx).Model(&models.Issue{}).Select("id", "category", "status")
	if f.Bounds != nil {
		query = withBounds(query, *f.Bounds)
	}
	query = withCategoryStatus(query, f.Category, f.Status)

	var issues []models.Issue
	if err := query.Find(&issues).Error; err != nil {
		return nil, fmt.Errorf("load issues for analytics: %w", err)
	}
	summary := Aggregate(issues)
	return &summary, nil
}

// Clusters groups the pins inside the rectangle into S2 cells sized to the
// viewport.
func (s *IssueService) Clusters(ctx context.Context, f BoundsFilter) ([]types.Cluster, error) {
	issues, err := s.issuesInBounds(ctx, f)
	if err != nil {
		return nil, err
	}
	return ClusterIssues(f.Bounds, issues), nil
}

func withBounds(db *gorm.DB, b types.Bounds) *gorm.DB {
	return db.
		Where("latitude >= ? AND latitude <= ?", b.SouthWest.Lat, b.NorthEast.Lat).
		Where("longitude >= ? AND longitude <= ?", b.SouthWest.Lng, b.NorthEast.Lng)
}

func withCategoryStatus(db *gorm.DB, category models.IssueCategory, status models.IssueStatus) *gorm.DB {
	if category != "" {
		db = db.Where("category = ?", category)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}
	return db
}
