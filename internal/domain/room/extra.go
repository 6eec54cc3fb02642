package room

import (
	"github.com/google/uuid"
)

// Extra is an amenity pair shared by a set of rooms. The boolean pair
// (hasInternet, hasTV) is the natural key: create-or-update must never
// produce two rows for the same pair.
type Extra struct {
	id          uuid.UUID
	hasInternet bool
	hasTV       bool
	roomIDs     []uuid.UUID
}

func NewExtra(hasInternet, hasTV bool, roomIDs []uuid.UUID) (*Extra, error) {
	if len(roomIDs) == 0 {
		return nil, ErrEmptyRoomSet
	}
	return &Extra{
		id:          uuid.New(),
		hasInternet: hasInternet,
		hasTV:       hasTV,
		roomIDs:     dedupe(roomIDs),
	}, nil
}

func ReconstructExtra(id uuid.UUID, hasInternet, hasTV bool, roomIDs []uuid.UUID) *Extra {
	return &Extra{id: id, hasInternet: hasInternet, hasTV: hasTV, roomIDs: roomIDs}
}

// MergeRooms unions the incoming room set into the existing one. It never
// removes existing associations.
func (e *Extra) MergeRooms(roomIDs []uuid.UUID) *Extra {
	next := *e
	next.roomIDs = dedupe(append(append([]uuid.UUID{}, e.roomIDs...), roomIDs...))
	return &next
}

func (e *Extra) DetachRoom(roomID uuid.UUID) (*Extra, error) {
	next := *e
	kept := make([]uuid.UUID, 0, len(e.roomIDs))
	found := false
	for _, id := range e.roomIDs {
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

func (e *Extra) Matches(hasInternet, hasTV bool) bool {
	return e.hasInternet == hasInternet && e.hasTV == hasTV
}

func (e *Extra) ID() uuid.UUID        { return e.id }
func (e *Extra) HasInternet() bool    { return e.hasInternet }
func (e *Extra) HasTV() bool          { return e.hasTV }
func (e *Extra) RoomIDs() []uuid.UUID { return e.roomIDs }
