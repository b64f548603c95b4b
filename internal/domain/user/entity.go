package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a back-office account (operator, developer or admin).
// Shoppers never authenticate.
type User struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(email Email, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

// Reconstruct rebuilds a persisted user without re-validating it.
func Reconstruct(id uuid.UUID, email Email, passwordHash string, role Role, lastLogin *time.Time, isActive bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

// CanManageFlashOffers reports whether the account may start or stop the flash offer.
func (u *User) CanManageFlashOffers() bool {
	return u.isActive && u.role.AtLeast(RoleOperator)
}

// CanConfigurePromotions reports whether the account may change discount settings.
func (u *User) CanConfigurePromotions() bool {
	return u.isActive && u.role.AtLeast(RoleDeveloper)
}
