package models

import (
	"time"

	"github.com/musiconnect/musiconnect-api/internal/catalog"
)

// Post is an authored publication. Deleting a post deletes its comments in
// the same transaction; the cascade is explicit in the service layer, not a
// storage annotation.
type Post struct {
	ID          uint64           `gorm:"primaryKey" json:"id"`
	AuthorID    uint64           `gorm:"not null;index" json:"author_id"`
	Author      User             `gorm:"foreignKey:AuthorID" json:"-"`
	Content     string           `gorm:"size:500;not null" json:"content"`
	Type        catalog.PostType `gorm:"size:15;not null" json:"type"`
	PublishedAt time.Time        `gorm:"not null" json:"published_at"`
	Comments    []Comment        `gorm:"foreignKey:PostID" json:"comments"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Comment is mutable and deletable only by its author.
type Comment struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	AuthorID  uint64    `gorm:"not null;index" json:"author_id"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"-"`
	PostID    uint64    `gorm:"not null;index" json:"post_id"`
	Content   string    `gorm:"size:300;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
