// Package catalog holds the closed enumerations the domain is built on.
// The universes are fixed at compile time and seeded into their lookup
// tables once at process start; there is no runtime mutation path.
package catalog

import "strings"

type MusicGenre string

const (
	GenreRock       MusicGenre = "ROCK"
	GenrePop        MusicGenre = "POP"
	GenreJazz       MusicGenre = "JAZZ"
	GenreBlues      MusicGenre = "BLUES"
	GenreMetal      MusicGenre = "METAL"
	GenrePunk       MusicGenre = "PUNK"
	GenreFolk       MusicGenre = "FOLK"
	GenreClassical  MusicGenre = "CLASSICAL"
	GenreElectronic MusicGenre = "ELECTRONIC"
	GenreHipHop     MusicGenre = "HIP_HOP"
	GenreReggae     MusicGenre = "REGGAE"
	GenreLatin      MusicGenre = "LATIN"
)

// MusicGenres lists the full universe in declaration order.
func MusicGenres() []MusicGenre {
	return []MusicGenre{
		GenreRock, GenrePop, GenreJazz, GenreBlues, GenreMetal, GenrePunk,
		GenreFolk, GenreClassical, GenreElectronic, GenreHipHop, GenreReggae,
		GenreLatin,
	}
}

// ParseMusicGenre maps a user-supplied name onto the enum, case-insensitively.
func ParseMusicGenre(name string) (MusicGenre, bool) {
	g := MusicGenre(strings.ToUpper(strings.TrimSpace(name)))
	for _, known := range MusicGenres() {
		if g == known {
			return g, true
		}
	}
	return "", false
}

type Role string

const (
	RoleMusician Role = "MUSICIAN"
	RoleProducer Role = "PRODUCER"
	RoleAdmin    Role = "ADMIN"
)

func Roles() []Role {
	return []Role{RoleMusician, RoleProducer, RoleAdmin}
}

type CollaborationStatus string

const (
	StatusPending    CollaborationStatus = "PENDING"
	StatusInProgress CollaborationStatus = "IN_PROGRESS"
	StatusCompleted  CollaborationStatus = "COMPLETED"
)

// CollaborationStatuses returns the three statuses in their literal order.
// The state machine is flat: any explicit transition among the three is
// accepted at edit time.
func CollaborationStatuses() []CollaborationStatus {
	return []CollaborationStatus{StatusPending, StatusInProgress, StatusCompleted}
}

func ParseCollaborationStatus(name string) (CollaborationStatus, bool) {
	s := CollaborationStatus(strings.ToUpper(strings.TrimSpace(name)))
	for _, known := range CollaborationStatuses() {
		if s == known {
			return s, true
		}
	}
	return "", false
}

type PostType string

const (
	PostText       PostType = "TEXT"
	PostMultimedia PostType = "MULTIMEDIA"
)

func ParsePostType(name string) (PostType, bool) {
	t := PostType(strings.ToUpper(strings.TrimSpace(name)))
	if t == PostText || t == PostMultimedia {
		return t, true
	}
	return "", false
}
