package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IssueUpvote is one user's live upvote on an issue. At most one row exists
// per (issue, user).
type IssueUpvote struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	IssueID   string    `json:"issueId" gorm:"not null;size:36;uniqueIndex:idx_issue_upvotes_issue_user"`
	UserID    string    `json:"userId" gorm:"not null;uniqueIndex:idx_issue_upvotes_issue_user"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (u *IssueUpvote) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
