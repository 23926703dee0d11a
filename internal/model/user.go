package model

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleParent  UserRole = "parent"
	RolePartner UserRole = "partner"
	RoleChild   UserRole = "child"
	RoleGuest   UserRole = "guest"
)

var userRoleNames = map[UserRole]string{
	RoleParent:  "親",
	RolePartner: "パートナー",
	RoleChild:   "子ども",
	RoleGuest:   "ゲスト",
}

// AllUserRoles returns every role in declaration order.
func AllUserRoles() []UserRole {
	return []UserRole{RoleParent, RolePartner, RoleChild, RoleGuest}
}

func (r UserRole) Valid() bool {
	_, ok := userRoleNames[r]
	return ok
}

func (r UserRole) DisplayName() string {
	return userRoleNames[r]
}

func (r *UserRole) UnmarshalText(text []byte) error {
	v, err := parseEnum("user role", text, UserRole.Valid)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

type User struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name" validate:"required"`
	Email       *string   `json:"email"`
	Role        UserRole  `json:"role" validate:"enum"`
	Families    []string  `json:"families"`
	FCMTokens   []string  `json:"fcm_tokens"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewUser returns a guest user with a fresh identifier.
func NewUser(displayName string, now time.Time) User {
	return User{
		ID:          uuid.NewString(),
		DisplayName: displayName,
		Role:        RoleGuest,
		Families:    []string{},
		FCMTokens:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// InFamily reports whether the user belongs to familyID.
func (u User) InFamily(familyID string) bool {
	for _, f := range u.Families {
		if f == familyID {
			return true
		}
	}
	return false
}
