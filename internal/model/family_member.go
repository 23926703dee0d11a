package model

import (
	"time"

	"github.com/google/uuid"
)

// FamilyMember links a user to a family with a role.
type FamilyMember struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id" validate:"required"`
	FamilyID string    `json:"family_id" validate:"required"`
	Role     UserRole  `json:"role" validate:"enum"`
	Nickname *string   `json:"nickname"`
	JoinedAt time.Time `json:"joined_at"`
}

func NewFamilyMember(userID, familyID string, role UserRole, now time.Time) FamilyMember {
	return FamilyMember{
		ID:       uuid.NewString(),
		UserID:   userID,
		FamilyID: familyID,
		Role:     role,
		JoinedAt: now,
	}
}
