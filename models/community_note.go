package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommunityNote is a free-text annotation on an issue.
type CommunityNote struct {
	ID         string      `json:"id" gorm:"primaryKey;size:36"`
	Content    string      `json:"content" gorm:"not null;type:text"`
	IssueID    string      `json:"issueId" gorm:"not null;size:36;index"`
	CreatedBy  string      `json:"createdBy" gorm:"not null"`
	Rating     *NoteRating `json:"rating" gorm:"size:20"`
	Helpful    int         `json:"helpful" gorm:"not null;default:0"`
	NotHelpful int         `json:"notHelpful" gorm:"not null;default:0"`
	CreatedAt  time.Time   `json:"createdAt" gorm:"index"`
}

func (n *CommunityNote) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
