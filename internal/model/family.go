package model

import (
	"time"

	"github.com/google/uuid"
)

// Family is a group of users sharing threads and topics.
type Family struct {
	ID         string    `json:"id"`
	Name       string    `json:"name" validate:"required,maxchars=50"`
	InviteCode *string   `json:"invite_code"`
	CreatedBy  string    `json:"created_by" validate:"required"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewFamily(name, createdBy string, now time.Time) Family {
	return Family{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Invite is an outstanding invite code for a family. Its ID is the code.
type Invite struct {
	Code      string    `json:"code"`
	FamilyID  string    `json:"family_id"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (i Invite) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}
