package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/foundanand/trackmygov/metrics"
	"github.com/foundanand/trackmygov/models"
	"gorm.io/gorm"
)

// noteOrder ranks HELPFUL > PARTIALLY_HELPFUL > NOT_HELPFUL > unrated, then
// by helpful votes.
var noteOrder = fmt.Sprintf(
	"CASE rating WHEN '%s' THEN 3 WHEN '%s' THEN 2 WHEN '%s' THEN 1 ELSE 0 END DESC, helpful DESC, created_at DESC",
	models.RatingHelpful, models.RatingPartiallyHelpful, models.RatingNotHelpful,
)

type CommunityNoteService struct {
	DB *gorm.DB
}

func NewCommunityNoteService(db *gorm.DB) *CommunityNoteService {
	return &CommunityNoteService{DB: db}
}

type CreateNoteInput struct {
	Content   string `json:"content" validate:"min=10"`
	IssueID   string `json:"issueId" validate:"required"`
	CreatedBy string `json:"createdBy" validate:"required"`
}

type RateNoteInput struct {
	Rating    models.NoteRating `json:"rating" validate:"note_rating"`
	IsHelpful bool              `json:"isHelpful"`
}

// Create attaches a note to an issue. A missing issue is reported as
// ErrReferentialIntegrity; the foreign key backs this up.
func (s *CommunityNoteService) Create(ctx context.Context, in CreateNoteInput) (*models.CommunityNote, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	note := models.CommunityNote{
		Content:   in.Content,
		IssueID:   in.IssueID,
		CreatedBy: in.CreatedBy,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Issue{}).Where("id = ?", in.IssueID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrReferentialIntegrity
		}
		return tx.Create(&note).Error
	})
	if errors.Is(err, ErrReferentialIntegrity) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return nil, ErrReferentialIntegrity
	}
	if err != nil {
		return nil, fmt.Errorf("create note on %s: %w", in.IssueID, err)
	}

	metrics.NotesCreatedTotal.Inc()
	log.WithFields(log.Fields{"note_id": note.ID, "issue_id": note.IssueID}).Info("community note created")
	return &note, nil
}

// GetByIssue lists an issue's notes, best rated first.
func (s *CommunityNoteService) GetByIssue(ctx context.Context, issueID string) ([]models.CommunityNote, error) {
	notes := []models.CommunityNote{}
	err := s.DB.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Order(noteOrder).
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("list notes for %s: %w", issueID, err)
	}
	return notes, nil
}

// Rate overwrites the note's rating and bumps exactly one of the helpful
// counters. The two are not reconciled: the last rating wins regardless of
// the tallies.
func (s *CommunityNoteService) Rate(ctx context.Context, id string, in RateNoteInput) (*models.CommunityNote, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"rating": in.Rating}
	if in.IsHelpful {
		updates["helpful"] = gorm.Expr("helpful + ?", 1)
	} else {
		updates["not_helpful"] = gorm.Expr("not_helpful + ?", 1)
	}

	var note models.CommunityNote
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.CommunityNote{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("id = ?", id).Take(&note).Error
	})
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("rate note %s: %w", id, err)
	}

	metrics.NoteRatingsTotal.WithLabelValues(string(in.Rating)).Inc()
	return &note, nil
}

// Delete removes a note when createdBy matches its stored creator. This is a
// string comparison against whatever the client sent, not authentication.
// A missing note fails the same way as a mismatch.
func (s *CommunityNoteService) Delete(ctx context.Context, id, createdBy string) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var note models.CommunityNote
		err := tx.Where("id = ?", id).Take(&note).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUnauthorized
		}
		if err != nil {
			return err
		}
		if note.CreatedBy != createdBy {
			return ErrUnauthorized
		}
		return tx.Delete(&note).Error
	})
	if errors.Is(err, ErrUnauthorized) {
		log.WithFields(log.Fields{"note_id": id}).Warn("note delete rejected: creator mismatch")
		return ErrUnauthorized
	}
	if err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}

	metrics.NotesDeletedTotal.Inc()
	log.WithFields(log.Fields{"note_id": id}).Info("community note deleted")
	return nil
}
