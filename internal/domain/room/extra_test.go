//go:build unit

package room

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtra(t *testing.T) {
	roomA := uuid.New()

	_, err := NewExtra(true, false, nil)
	assert.ErrorIs(t, err, ErrEmptyRoomSet)

	e, err := NewExtra(true, false, []uuid.UUID{roomA, roomA})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{roomA}, e.RoomIDs(), "duplicates collapse")
	assert.True(t, e.Matches(true, false))
	assert.False(t, e.Matches(true, true))
}

func TestExtraMergeRooms(t *testing.T) {
	roomA := uuid.New()
	roomB := uuid.New()
	roomC := uuid.New()

	e, err := NewExtra(true, true, []uuid.UUID{roomA, roomB})
	require.NoError(t, err)

	merged := e.MergeRooms([]uuid.UUID{roomB, roomC})

	assert.ElementsMatch(t, []uuid.UUID{roomA, roomB, roomC}, merged.RoomIDs())
	assert.ElementsMatch(t, []uuid.UUID{roomA, roomB}, e.RoomIDs(), "original value is not mutated")

	// Merging is additive only: repeating the call changes nothing.
	again := merged.MergeRooms([]uuid.UUID{roomB, roomC})
	assert.ElementsMatch(t, []uuid.UUID{roomA, roomB, roomC}, again.RoomIDs())
}

func TestExtraDetachRoom(t *testing.T) {
	roomA := uuid.New()
	roomB := uuid.New()

	e, err := NewExtra(false, true, []uuid.UUID{roomA, roomB})
	require.NoError(t, err)

	detached, err := e.DetachRoom(roomA)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{roomB}, detached.RoomIDs())

	_, err = e.DetachRoom(uuid.New())
	assert.ErrorIs(t, err, ErrRoomNotInSet)
}

func TestMediaDetachRoom(t *testing.T) {
	roomA := uuid.New()
	roomB := uuid.New()

	m, err := NewMedia("media_room/pool.jpg", []uuid.UUID{roomA, roomB})
	require.NoError(t, err)

	detached, err := m.DetachRoom(roomB)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{roomA}, detached.RoomIDs())

	_, err = m.DetachRoom(roomB)
	require.NoError(t, err)

	_, err = detached.DetachRoom(roomB)
	assert.ErrorIs(t, err, ErrRoomNotInSet)
}
