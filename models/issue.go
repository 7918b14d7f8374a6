package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Issue is a reported civic problem pinned on the map.
type Issue struct {
	ID             string          `json:"id" gorm:"primaryKey;size:36"`
	Title          string          `json:"title" gorm:"not null;size:100"`
	Description    string          `json:"description" gorm:"not null;type:text"`
	Category       IssueCategory   `json:"category" gorm:"not null;size:32;index"`
	Status         IssueStatus     `json:"status" gorm:"not null;size:16;default:'REPORTED';index"`
	Latitude       float64         `json:"latitude" gorm:"not null;index:idx_issues_lat_lng"`
	Longitude      float64         `json:"longitude" gorm:"not null;index:idx_issues_lat_lng"`
	State          string          `json:"state" gorm:"not null;index:idx_issues_state_city"`
	City           string          `json:"city" gorm:"not null;index:idx_issues_state_city"`
	Area           *string         `json:"area"`
	Pincode        *string         `json:"pincode"`
	ImageURLs      ImageURLs       `json:"imageUrls" gorm:"column:image_urls"`
	Upvotes        int             `json:"upvotes" gorm:"not null;default:0"`
	CreatedBy      string          `json:"createdBy" gorm:"not null"`
	CommunityNotes []CommunityNote `json:"communityNotes,omitempty" gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE"`
	IssueUpvotes   []IssueUpvote   `json:"-" gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time       `json:"createdAt" gorm:"index"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func (i *Issue) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if i.Status == "" {
		i.Status = StatusReported
	}
	if i.ImageURLs == nil {
		i.ImageURLs = ImageURLs{}
	}
	return nil
}
