package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBandAssociation(t *testing.T) {
	band := Band{
		AdminID: 1,
		Members: []User{{ID: 2}, {ID: 3}},
	}

	assert.True(t, band.IsAssociated(1))
	assert.True(t, band.IsAssociated(2))
	assert.False(t, band.IsAssociated(4))

	// The administrator is associated but not on the roster.
	assert.False(t, band.HasMember(1))
	assert.True(t, band.HasMember(3))
}

func TestConvocationExpired(t *testing.T) {
	today := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	conv := Convocation{Deadline: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)}

	// Deadline day itself is not expired; only strictly earlier days are.
	assert.False(t, conv.Expired(today))

	conv.Deadline = time.Date(2026, 8, 27, 23, 59, 0, 0, time.UTC)
	assert.True(t, conv.Expired(today))

	conv.Deadline = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, conv.Expired(today))
}

func TestCollaborationHasCollaborator(t *testing.T) {
	collab := Collaboration{Collaborators: []User{{ID: 5}}}

	assert.True(t, collab.HasCollaborator(5))
	assert.False(t, collab.HasCollaborator(6))
}
