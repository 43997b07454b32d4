package models

import (
	"time"

	"github.com/musiconnect/musiconnect-api/internal/catalog"
)

// Collaboration is a time-boxed project. Creation always yields PENDING;
// edits may move the status to any of the three values. The creator never
// appears in Collaborators.
type Collaboration struct {
	ID            uint64                      `gorm:"primaryKey" json:"id"`
	Title         string                      `gorm:"size:50;not null" json:"title"`
	Description   string                      `gorm:"type:text" json:"description"`
	StartDate     time.Time                   `gorm:"not null" json:"start_date"`
	EndDate       time.Time                   `gorm:"not null" json:"end_date"`
	Status        catalog.CollaborationStatus `gorm:"size:20;not null" json:"status"`
	CreatorID     uint64                      `gorm:"not null;index" json:"creator_id"`
	Creator       User                        `gorm:"foreignKey:CreatorID" json:"-"`
	Collaborators []User                      `gorm:"many2many:collaboration_members" json:"collaborators"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

func (c *Collaboration) HasCollaborator(userID uint64) bool {
	for i := range c.Collaborators {
		if c.Collaborators[i].ID == userID {
			return true
		}
	}
	return false
}
