package account

import (
	"time"

	"github.com/google/uuid"
)

// Account carries identity plus three independent privilege flags. The flags
// have no cross-validation: a superuser without the staff flag is legal.
type Account struct {
	id           uuid.UUID
	email        Email
	name         string
	lastName     string
	passwordHash string
	isStaff      bool
	isSuperuser  bool
	isActive     bool
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewAccount sets privilege flags from the tier. Self-registered users start
// inactive and must be activated; operator-created staff and superusers start
// active.
func NewAccount(email Email, name, lastName, passwordHash string, tier Tier) *Account {
	a := &Account{
		id:           uuid.New(),
		email:        email,
		name:         name,
		lastName:     lastName,
		passwordHash: passwordHash,
	}

	switch tier {
	case TierStaff:
		a.isStaff = true
		a.isActive = true
	case TierSuperuser:
		a.isStaff = true
		a.isSuperuser = true
		a.isActive = true
	default:
		// TierUser: all flags stay false
	}

	return a
}

func ReconstructAccount(
	id uuid.UUID,
	email Email,
	name, lastName, passwordHash string,
	isStaff, isSuperuser, isActive bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *Account {
	return &Account{
		id:           id,
		email:        email,
		name:         name,
		lastName:     lastName,
		passwordHash: passwordHash,
		isStaff:      isStaff,
		isSuperuser:  isSuperuser,
		isActive:     isActive,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Update holds the fields the generic update path may change. Privilege flags
// are deliberately absent: requests carrying them are accepted but those
// fields are no-ops, never errors.
type Update struct {
	Email        *Email
	Name         *string
	LastName     *string
	PasswordHash *string
	IsActive     *bool
}

// ApplyUpdate returns a copy with the requested changes applied.
func (a *Account) ApplyUpdate(u Update) *Account {
	next := *a
	if u.Email != nil {
		next.email = *u.Email
	}
	if u.Name != nil {
		next.name = *u.Name
	}
	if u.LastName != nil {
		next.lastName = *u.LastName
	}
	if u.PasswordHash != nil {
		next.passwordHash = *u.PasswordHash
	}
	if u.IsActive != nil {
		next.isActive = *u.IsActive
	}
	return &next
}

// Flag mutations are idempotent: repeating one is a no-op.

func (a *Account) Activate() *Account   { return a.withActive(true) }
func (a *Account) Deactivate() *Account { return a.withActive(false) }

func (a *Account) GrantStaff() *Account      { return a.withStaff(true) }
func (a *Account) RevokeStaff() *Account     { return a.withStaff(false) }
func (a *Account) GrantSuperuser() *Account  { return a.withSuperuser(true) }
func (a *Account) RevokeSuperuser() *Account { return a.withSuperuser(false) }

func (a *Account) withActive(v bool) *Account {
	next := *a
	next.isActive = v
	return &next
}

func (a *Account) withStaff(v bool) *Account {
	next := *a
	next.isStaff = v
	return &next
}

func (a *Account) withSuperuser(v bool) *Account {
	next := *a
	next.isSuperuser = v
	return &next
}

func (a *Account) FullName() string {
	return a.name + " " + a.lastName
}

func (a *Account) ID() uuid.UUID         { return a.id }
func (a *Account) Email() Email          { return a.email }
func (a *Account) Name() string          { return a.name }
func (a *Account) LastName() string      { return a.lastName }
func (a *Account) PasswordHash() string  { return a.passwordHash }
func (a *Account) IsStaff() bool         { return a.isStaff }
func (a *Account) IsSuperuser() bool     { return a.isSuperuser }
func (a *Account) IsActive() bool        { return a.isActive }
func (a *Account) LastLogin() *time.Time { return a.lastLogin }
func (a *Account) CreatedAt() time.Time  { return a.createdAt }
func (a *Account) UpdatedAt() time.Time  { return a.updatedAt }
