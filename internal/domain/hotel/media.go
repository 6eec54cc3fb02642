package hotel

import (
	"errors"

	"github.com/google/uuid"
)

var ErrEmptyMediaPath = errors.New("media path cannot be empty")

// Media is one stored image attached to a hotel. Deleting the record also
// releases the stored binary; the file store handles that side effect.
type Media struct {
	id      uuid.UUID
	hotelID uuid.UUID
	path    string
}

func NewMedia(hotelID uuid.UUID, path string) (*Media, error) {
	if path == "" {
		return nil, ErrEmptyMediaPath
	}
	return &Media{
		id:      uuid.New(),
		hotelID: hotelID,
		path:    path,
	}, nil
}

func ReconstructMedia(id, hotelID uuid.UUID, path string) *Media {
	return &Media{id: id, hotelID: hotelID, path: path}
}

func (m *Media) ID() uuid.UUID      { return m.id }
func (m *Media) HotelID() uuid.UUID { return m.hotelID }
func (m *Media) Path() string       { return m.path }
