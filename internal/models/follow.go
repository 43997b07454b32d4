package models

import "time"

// FollowTargetKind tags the variant of a follow target.
type FollowTargetKind string

const (
	FollowTargetUser FollowTargetKind = "User"
	FollowTargetBand FollowTargetKind = "Band"
)

// FollowTarget is the tagged union the service layer works with: exactly one
// target of a known kind. The exactly-one-of check happens once, where the
// two optional wire fields are collapsed into this type.
type FollowTarget struct {
	Kind FollowTargetKind
	ID   uint64
}

// Follow is a directed edge from a user to exactly one of another user or a
// band. Postgres treats NULLs as distinct, so the two composite unique
// indexes enforce at most one edge per (follower, target) pair for each
// target kind without colliding with each other.
type Follow struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	FollowerID     uint64    `gorm:"not null;index;uniqueIndex:uk_follow_user;uniqueIndex:uk_follow_band" json:"follower_id"`
	FollowedUserID *uint64   `gorm:"uniqueIndex:uk_follow_user" json:"followed_user_id,omitempty"`
	FollowedBandID *uint64   `gorm:"uniqueIndex:uk_follow_band" json:"followed_band_id,omitempty"`
	FollowedUser   *User     `gorm:"foreignKey:FollowedUserID" json:"-"`
	FollowedBand   *Band     `gorm:"foreignKey:FollowedBandID" json:"-"`
	FollowedAt     time.Time `gorm:"not null" json:"followed_at"`
}
