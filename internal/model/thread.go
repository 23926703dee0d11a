package model

import (
	"time"

	"github.com/google/uuid"
)

// Thread is a conversation inside a family.
type Thread struct {
	ID             string    `json:"id"`
	FamilyID       string    `json:"family_id" validate:"required"`
	Title          string    `json:"title" validate:"required"`
	Description    *string   `json:"description"`
	CreatedBy      string    `json:"created_by" validate:"required"`
	LastMessageAt  time.Time `json:"last_message_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	IsArchived     bool      `json:"is_archived"`
	ParticipantIDs []string  `json:"participant_ids"`
}

func NewThread(familyID, title, createdBy string, now time.Time) Thread {
	return Thread{
		ID:             uuid.NewString(),
		FamilyID:       familyID,
		Title:          title,
		CreatedBy:      createdBy,
		LastMessageAt:  now,
		CreatedAt:      now,
		UpdatedAt:      now,
		ParticipantIDs: []string{},
	}
}

// HasParticipant reports whether userID takes part in the thread. An empty
// participant list means the whole family.
func (t Thread) HasParticipant(userID string) bool {
	if len(t.ParticipantIDs) == 0 {
		return true
	}
	for _, id := range t.ParticipantIDs {
		if id == userID {
			return true
		}
	}
	return false
}
