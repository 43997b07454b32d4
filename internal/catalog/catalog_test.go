package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMusicGenre(t *testing.T) {
	g, ok := ParseMusicGenre("rock")
	assert.True(t, ok)
	assert.Equal(t, GenreRock, g)

	g, ok = ParseMusicGenre("  Hip_Hop ")
	assert.True(t, ok)
	assert.Equal(t, GenreHipHop, g)

	_, ok = ParseMusicGenre("polka")
	assert.False(t, ok)

	_, ok = ParseMusicGenre("")
	assert.False(t, ok)
}

func TestMusicGenreUniverse(t *testing.T) {
	assert.Len(t, MusicGenres(), 12)
}

func TestParseCollaborationStatus(t *testing.T) {
	s, ok := ParseCollaborationStatus("in_progress")
	assert.True(t, ok)
	assert.Equal(t, StatusInProgress, s)

	_, ok = ParseCollaborationStatus("ARCHIVED")
	assert.False(t, ok)
}

func TestCollaborationStatusOrder(t *testing.T) {
	assert.Equal(t,
		[]CollaborationStatus{StatusPending, StatusInProgress, StatusCompleted},
		CollaborationStatuses())
}

func TestParsePostType(t *testing.T) {
	p, ok := ParsePostType("multimedia")
	assert.True(t, ok)
	assert.Equal(t, PostMultimedia, p)

	_, ok = ParsePostType("video")
	assert.False(t, ok)
}

func TestRoles(t *testing.T) {
	assert.Equal(t, []Role{RoleMusician, RoleProducer, RoleAdmin}, Roles())
}
