package models

import "time"

// Convocation is an open call with a deadline. Active is an independently
// set flag; expiry of the deadline does not flip it automatically, it only
// blocks further edits.
type Convocation struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	CreatorID   uint64    `gorm:"not null;index" json:"creator_id"`
	Creator     User      `gorm:"foreignKey:CreatorID" json:"-"`
	Title       string    `gorm:"size:50;not null" json:"title"`
	Description string    `gorm:"size:300" json:"description"`
	Deadline    time.Time `gorm:"not null" json:"deadline"`
	Active      bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Expired reports whether the stored deadline lies strictly before today.
func (c *Convocation) Expired(today time.Time) bool {
	y1, m1, d1 := c.Deadline.Date()
	y2, m2, d2 := today.Date()
	deadline := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	now := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return deadline.Before(now)
}

// ConvocationFavorite is the (user, convocation) join row, unique per pair.
type ConvocationFavorite struct {
	ID            uint64      `gorm:"primaryKey" json:"id"`
	UserID        uint64      `gorm:"not null;uniqueIndex:uk_favorite_pair" json:"user_id"`
	ConvocationID uint64      `gorm:"not null;uniqueIndex:uk_favorite_pair;index" json:"convocation_id"`
	Convocation   Convocation `gorm:"foreignKey:ConvocationID" json:"-"`
	CreatedAt     time.Time   `json:"created_at"`
}
