package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dukerupert/uchitopi/internal/model"
	"github.com/dukerupert/uchitopi/internal/store"
	"github.com/dukerupert/uchitopi/internal/textutil"
	"github.com/dukerupert/uchitopi/internal/validator"
)

type NotificationService struct {
	repos  *store.Repositories
	tokens *store.PushTokenStore
	logger *slog.Logger
	now    func() time.Time
}

func NewNotificationService(repos *store.Repositories, tokens *store.PushTokenStore, logger *slog.Logger) *NotificationService {
	return &NotificationService{
		repos:  repos,
		tokens: tokens,
		logger: logger.With("component", "notification"),
		now:    utcNow,
	}
}

// Notify stores an in-app notification for userID. Push delivery to the
// user's registered devices happens outside this process.
func (s *NotificationService) Notify(userID, familyID string, kind model.NotificationKind, title, body string, ref *model.Reference) (*model.Notification, error) {
	n := model.NewNotification(userID, familyID, kind, textutil.Trimmed(title), textutil.Trimmed(body), s.now())
	if ref != nil {
		n = n.WithReference(*ref)
	}
	if err := validator.Notification(n); err != nil {
		return nil, err
	}
	if err := s.repos.Notifications.Create(n); err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	devices, err := s.tokens.ListByUser(userID)
	if err != nil {
		s.logger.Warn("list push tokens", "user_id", userID, "error", err)
	}
	s.logger.Debug("notification stored", "notification_id", n.ID, "kind", kind, "devices", len(devices))
	return &n, nil
}

// MarkRead marks a notification read. Marking it again keeps the first
// ReadAt.
func (s *NotificationService) MarkRead(notificationID string) (*model.Notification, error) {
	n, err := s.repos.Notifications.Get(notificationID)
	if err != nil {
		return nil, fmt.Errorf("get notification: %w", err)
	}
	if n == nil {
		return nil, fmt.Errorf("notification %s: %w", notificationID, ErrNotFound)
	}
	if n.IsRead {
		return n, nil
	}

	now := s.now()
	n.IsRead = true
	n.ReadAt = &now
	if _, err := s.repos.Notifications.Update(*n); err != nil {
		return nil, fmt.Errorf("update notification: %w", err)
	}
	return n, nil
}

// MarkAllRead marks every unread notification of userID read and returns how
// many changed.
func (s *NotificationService) MarkAllRead(userID string) (int, error) {
	unread, err := s.Unread(userID)
	if err != nil {
		return 0, err
	}
	for _, n := range unread {
		if _, err := s.MarkRead(n.ID); err != nil {
			return 0, err
		}
	}
	return len(unread), nil
}

// Notifications returns every notification of userID oldest first.
func (s *NotificationService) Notifications(userID string) ([]model.Notification, error) {
	ns, err := s.repos.Notifications.List(store.Filter{OwnerID: userID})
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return ns, nil
}

func (s *NotificationService) Unread(userID string) ([]model.Notification, error) {
	all, err := s.Notifications(userID)
	if err != nil {
		return nil, err
	}
	var unread []model.Notification
	for _, n := range all {
		if !n.IsRead {
			unread = append(unread, n)
		}
	}
	return unread, nil
}
