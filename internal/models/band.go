package models

import "time"

// Band has exactly one administrator, fixed at creation. The administrator
// is conceptually a member but is kept out of the roster list; "is this user
// associated with this band" is always computed as admin-or-roster, never
// denormalized.
type Band struct {
	ID          uint64       `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"size:50;not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	AdminID     uint64       `gorm:"not null;index" json:"admin_id"`
	Admin       User         `gorm:"foreignKey:AdminID" json:"-"`
	Genres      []MusicGenre `gorm:"many2many:band_music_genres" json:"genres"`
	Members     []User       `gorm:"many2many:band_members" json:"members"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// IsAssociated reports whether the user is the administrator or on the roster.
func (b *Band) IsAssociated(userID uint64) bool {
	if b.AdminID == userID {
		return true
	}
	return b.HasMember(userID)
}

func (b *Band) HasMember(userID uint64) bool {
	for i := range b.Members {
		if b.Members[i].ID == userID {
			return true
		}
	}
	return false
}
