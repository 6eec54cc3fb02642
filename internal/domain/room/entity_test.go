//go:build unit

package room

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func i32Ptr(i int32) *int32   { return &i }

func TestNewRoomIdentifierRule(t *testing.T) {
	hotelID := uuid.New()

	tests := []struct {
		name    string
		rName   *string
		rNumber *int32
		wantErr error
	}{
		{name: "name only", rName: strPtr("Sea View")},
		{name: "number only", rNumber: i32Ptr(101)},
		{name: "both", rName: strPtr("Sea View"), rNumber: i32Ptr(101)},
		{name: "neither", wantErr: ErrMissingIdentifier},
		{name: "empty name without number", rName: strPtr(""), wantErr: ErrMissingIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRoom(hotelID, tt.rName, tt.rNumber, "", StatusAvailable, TypeDouble, 10000, 2, 1, nil)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewRoomDefaults(t *testing.T) {
	r, err := NewRoom(uuid.New(), strPtr("Standard"), nil, "", "", "", 10000, 2, 1, nil)

	require.NoError(t, err)
	assert.Equal(t, StatusAvailable, r.Status())
	assert.Equal(t, TypeUnknown, r.RoomType())
}

func TestNewRoomBounds(t *testing.T) {
	hotelID := uuid.New()
	name := strPtr("Standard")

	tests := []struct {
		name     string
		price    int64
		capacity int16
		beds     int16
		wantErr  error
	}{
		{name: "valid", price: 0, capacity: 1, beds: 1},
		{name: "max capacity and beds", price: 10000, capacity: 10, beds: 12},
		{name: "negative price", price: -1, capacity: 2, beds: 1, wantErr: ErrNegativePrice},
		{name: "zero capacity", price: 0, capacity: 0, beds: 1, wantErr: ErrInvalidCapacity},
		{name: "capacity too high", price: 0, capacity: 11, beds: 1, wantErr: ErrInvalidCapacity},
		{name: "zero beds", price: 0, capacity: 1, beds: 0, wantErr: ErrInvalidBedCount},
		{name: "beds too high", price: 0, capacity: 1, beds: 13, wantErr: ErrInvalidBedCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRoom(hotelID, name, nil, "", StatusAvailable, TypeDouble, tt.price, tt.capacity, tt.beds, nil)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomApplyUpdateRevalidates(t *testing.T) {
	r, err := NewRoom(uuid.New(), strPtr("Standard"), nil, "", StatusAvailable, TypeDouble, 10000, 2, 1, nil)
	require.NoError(t, err)

	badCapacity := int16(0)
	_, err = r.ApplyUpdate(Update{Capacity: &badCapacity})
	assert.ErrorIs(t, err, ErrInvalidCapacity)

	newStatus := StatusDirty
	updated, err := r.ApplyUpdate(Update{Status: &newStatus})
	require.NoError(t, err)
	assert.Equal(t, StatusDirty, updated.Status())
	assert.Equal(t, StatusAvailable, r.Status(), "original value is not mutated")
}
