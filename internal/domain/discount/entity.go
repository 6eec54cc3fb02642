package discount

import (
	"time"

	"github.com/google/uuid"
)

type Discount struct {
	id        uuid.UUID
	code      Code
	terms     Terms
	updatedBy *uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewDiscount(code Code, terms Terms, updatedBy *uuid.UUID) *Discount {
	return &Discount{
		id:        uuid.New(),
		code:      code,
		terms:     terms,
		updatedBy: updatedBy,
	}
}

func ReconstructDiscount(
	id uuid.UUID,
	code Code,
	terms Terms,
	updatedBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Discount {
	return &Discount{
		id:        id,
		code:      code,
		terms:     terms,
		updatedBy: updatedBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

type Update struct {
	Code      *Code
	Terms     *Terms
	UpdatedBy *uuid.UUID
}

func (d *Discount) ApplyUpdate(u Update) *Discount {
	next := *d
	if u.Code != nil {
		next.code = *u.Code
	}
	if u.Terms != nil {
		next.terms = *u.Terms
	}
	if u.UpdatedBy != nil {
		next.updatedBy = u.UpdatedBy
	}
	return &next
}

func (d *Discount) ID() uuid.UUID         { return d.id }
func (d *Discount) Code() Code            { return d.code }
func (d *Discount) Terms() Terms          { return d.terms }
func (d *Discount) UpdatedBy() *uuid.UUID { return d.updatedBy }
func (d *Discount) CreatedAt() time.Time  { return d.createdAt }
func (d *Discount) UpdatedAt() time.Time  { return d.updatedAt }
