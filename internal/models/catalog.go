package models

import "github.com/musiconnect/musiconnect-api/internal/catalog"

// MusicGenre is a catalog row; the table is seeded once at startup from the
// fixed enum universe and never mutated afterwards.
type MusicGenre struct {
	ID   uint64             `gorm:"primaryKey" json:"id"`
	Name catalog.MusicGenre `gorm:"size:30;not null;uniqueIndex" json:"name"`
}

// Role is a catalog row, seeded the same way as MusicGenre.
type Role struct {
	ID   uint64       `gorm:"primaryKey" json:"id"`
	Name catalog.Role `gorm:"size:20;not null;uniqueIndex" json:"name"`
}
