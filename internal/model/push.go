package model

import "time"

// PushToken is a device token registered for push delivery.
type PushToken struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
