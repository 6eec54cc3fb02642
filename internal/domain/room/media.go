package room

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyMediaPath = errors.New("media path cannot be empty")
	ErrEmptyRoomSet   = errors.New("at least one room is required")
	ErrRoomNotInSet   = errors.New("room is not attached")
)

// Media is one stored image shared by a non-empty set of rooms.
type Media struct {
	id      uuid.UUID
	path    string
	roomIDs []uuid.UUID
}

func NewMedia(path string, roomIDs []uuid.UUID) (*Media, error) {
	if path == "" {
		return nil, ErrEmptyMediaPath
	}
	if len(roomIDs) == 0 {
		return nil, ErrEmptyRoomSet
	}
	return &Media{
		id:      uuid.New(),
		path:    path,
		roomIDs: dedupe(roomIDs),
	}, nil
}

func ReconstructMedia(id uuid.UUID, path string, roomIDs []uuid.UUID) *Media {
	return &Media{id: id, path: path, roomIDs: roomIDs}
}

// DetachRoom removes one room from the set. The set may become empty; the
// record then only holds the file.
func (m *Media) DetachRoom(roomID uuid.UUID) (*Media, error) {
	next := *m
	kept := make([]uuid.UUID, 0, len(m.roomIDs))
	found := false
	for _, id := range m.roomIDs {
		if id == roomID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	if !found {
		return nil, ErrRoomNotInSet
	}
	next.roomIDs = kept
	return &next, nil
}

func (m *Media) ID() uuid.UUID        { return m.id }
func (m *Media) Path() string         { return m.path }
func (m *Media) RoomIDs() []uuid.UUID { return m.roomIDs }

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
