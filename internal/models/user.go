package models

import "time"

// User is a musician or producer profile. The admin role exists in the
// catalog but is never assignable through registration.
type User struct {
	ID           uint64       `gorm:"primaryKey" json:"id"`
	Email        string       `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Password     string       `gorm:"size:255;not null" json:"-"`
	ArtisticName string       `gorm:"size:50;not null" json:"artistic_name"`
	Instruments  string       `gorm:"size:255" json:"instruments"`
	Bio          string       `gorm:"size:300" json:"bio"`
	Location     string       `gorm:"size:120" json:"location"`
	Available    bool         `gorm:"not null;default:true" json:"available"`
	RoleID       uint64       `gorm:"not null;index" json:"role_id"`
	Role         Role         `gorm:"foreignKey:RoleID" json:"role"`
	Genres       []MusicGenre `gorm:"many2many:user_music_genres" json:"genres"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
