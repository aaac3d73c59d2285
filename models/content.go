package models

import "time"

type ContentStatus string

const (
	StatusDraft       ContentStatus = "DRAFT"
	StatusPublished   ContentStatus = "PUBLISHED"
	StatusHighlighted ContentStatus = "HIGHLIGHTED"
	StatusArchived    ContentStatus = "ARCHIVED"
)

// Valid reports whether s is one of the four workflow states.
func (s ContentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusHighlighted, StatusArchived:
		return true
	}
	return false
}

// Live reports whether items in this state are visible to the public.
func (s ContentStatus) Live() bool {
	return s == StatusPublished || s == StatusHighlighted
}

// ContentState is the workflow portion of every content item. Highlighted
// and Archived mirror Status and are only ever written by the workflow engine.
type ContentState struct {
	Status        ContentStatus `json:"status" gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	Highlighted   bool          `json:"highlighted" gorm:"not null;default:false;index"`
	Archived      bool          `json:"archived" gorm:"not null;default:false"`
	DatePublished *time.Time    `json:"datePublished" gorm:"index"`
}

// NewContentState returns the state of a freshly created item.
func NewContentState() ContentState {
	return ContentState{Status: StatusDraft}
}
