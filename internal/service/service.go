// Package service applies validation and family rules on top of the
// document store.
package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/dukerupert/uchitopi/internal/store"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrFamilyFull         = errors.New("family is full")
	ErrAlreadyMember      = errors.New("already a family member")
	ErrInviteExpired      = errors.New("invite code expired")
	ErrInviteCodeConflict = errors.New("could not generate a unique invite code")
	ErrThreadArchived     = errors.New("thread is archived")
	ErrNotAuthor          = errors.New("only the author can edit a message")
	ErrAlreadyConverted   = errors.New("message already converted to a task")
)

// Services bundles every service over one set of repositories.
type Services struct {
	Families      *FamilyService
	Users         *UserService
	Threads       *ThreadService
	Topics        *TopicService
	Notifications *NotificationService
}

func New(repos *store.Repositories, tokens *store.PushTokenStore, inviteTTL time.Duration, logger *slog.Logger) *Services {
	return &Services{
		Families:      NewFamilyService(repos, inviteTTL, logger),
		Users:         NewUserService(repos, tokens, logger),
		Threads:       NewThreadService(repos, logger),
		Topics:        NewTopicService(repos, logger),
		Notifications: NewNotificationService(repos, tokens, logger),
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}
