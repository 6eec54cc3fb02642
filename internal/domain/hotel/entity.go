package hotel

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName      = errors.New("hotel name cannot be empty")
	ErrEmptyAddress   = errors.New("hotel address cannot be empty")
	ErrNameTooLong    = errors.New("hotel name is too long (max 250 characters)")
	ErrAddressTooLong = errors.New("hotel address is too long (max 250 characters)")
	ErrInvalidStars   = errors.New("stars must be between 0 and 5")
)

const (
	MaxNameLength    = 250
	MaxAddressLength = 250
	MaxStars         = 5
)

type Hotel struct {
	id          uuid.UUID
	name        string
	address     string
	description string
	stars       int16
	updatedBy   *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewHotel(name, address, description string, stars int16, updatedBy *uuid.UUID) (*Hotel, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)

	if err := validate(name, address, stars); err != nil {
		return nil, err
	}

	return &Hotel{
		id:          uuid.New(),
		name:        name,
		address:     address,
		description: description,
		stars:       stars,
		updatedBy:   updatedBy,
	}, nil
}

func ReconstructHotel(
	id uuid.UUID,
	name, address, description string,
	stars int16,
	updatedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Hotel {
	return &Hotel{
		id:          id,
		name:        name,
		address:     address,
		description: description,
		stars:       stars,
		updatedBy:   updatedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

type Update struct {
	Name        *string
	Address     *string
	Description *string
	Stars       *int16
	UpdatedBy   *uuid.UUID
}

func (h *Hotel) ApplyUpdate(u Update) (*Hotel, error) {
	next := *h
	if u.Name != nil {
		next.name = strings.TrimSpace(*u.Name)
	}
	if u.Address != nil {
		next.address = strings.TrimSpace(*u.Address)
	}
	if u.Description != nil {
		next.description = *u.Description
	}
	if u.Stars != nil {
		next.stars = *u.Stars
	}
	if u.UpdatedBy != nil {
		next.updatedBy = u.UpdatedBy
	}

	if err := validate(next.name, next.address, next.stars); err != nil {
		return nil, err
	}
	return &next, nil
}

func validate(name, address string, stars int16) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if address == "" {
		return ErrEmptyAddress
	}
	if len(address) > MaxAddressLength {
		return ErrAddressTooLong
	}
	if stars < 0 || stars > MaxStars {
		return ErrInvalidStars
	}
	return nil
}

func (h *Hotel) ID() uuid.UUID         { return h.id }
func (h *Hotel) Name() string          { return h.name }
func (h *Hotel) Address() string       { return h.address }
func (h *Hotel) Description() string   { return h.description }
func (h *Hotel) Stars() int16          { return h.stars }
func (h *Hotel) UpdatedBy() *uuid.UUID { return h.updatedBy }
func (h *Hotel) CreatedAt() time.Time  { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time  { return h.updatedAt }
