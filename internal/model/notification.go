package model

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	KindNewMessage      NotificationKind = "newMessage"
	KindTaskAssigned    NotificationKind = "taskAssigned"
	KindTaskUpdated     NotificationKind = "taskUpdated"
	KindTaskCompleted   NotificationKind = "taskCompleted"
	KindEventReminder   NotificationKind = "eventReminder"
	KindDueDateReminder NotificationKind = "dueDateReminder"
	KindFamilyInvite    NotificationKind = "familyInvite"
	KindSystem          NotificationKind = "system"
)

var notificationKindLabels = map[NotificationKind]struct{ name, icon string }{
	KindNewMessage:      {"新着メッセージ", "message"},
	KindTaskAssigned:    {"タスク割り当て", "checkmark.circle"},
	KindTaskUpdated:     {"タスク更新", "checkmark.circle"},
	KindTaskCompleted:   {"タスク完了", "checkmark.circle"},
	KindEventReminder:   {"イベントリマインダー", "bell"},
	KindDueDateReminder: {"期限リマインダー", "bell"},
	KindFamilyInvite:    {"家族への招待", "person.badge.plus"},
	KindSystem:          {"システム通知", "info.circle"},
}

func AllNotificationKinds() []NotificationKind {
	return []NotificationKind{
		KindNewMessage, KindTaskAssigned, KindTaskUpdated, KindTaskCompleted,
		KindEventReminder, KindDueDateReminder, KindFamilyInvite, KindSystem,
	}
}

func (k NotificationKind) Valid() bool {
	_, ok := notificationKindLabels[k]
	return ok
}

func (k NotificationKind) DisplayName() string { return notificationKindLabels[k].name }
func (k NotificationKind) IconName() string { return notificationKindLabels[k].icon }

func (k *NotificationKind) UnmarshalText(text []byte) error {
	v, err := parseEnum("notification kind", text, NotificationKind.Valid)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

type ReferenceType string

const (
	RefThread  ReferenceType = "thread"
	RefMessage ReferenceType = "message"
	RefTopic   ReferenceType = "topic"
	RefFamily  ReferenceType = "family"
)

func (r ReferenceType) Valid() bool {
	switch r {
	case RefThread, RefMessage, RefTopic, RefFamily:
		return true
	}
	return false
}

func (r *ReferenceType) UnmarshalText(text []byte) error {
	v, err := parseEnum("reference type", text, ReferenceType.Valid)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Reference points a notification at the record it is about.
type Reference struct {
	Type ReferenceType
	ID   string
}

type Notification struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id" validate:"required"`
	FamilyID      string           `json:"family_id" validate:"required"`
	Kind          NotificationKind `json:"kind" validate:"enum"`
	Title         string           `json:"title"`
	Body          string           `json:"body"`
	ReferenceType *ReferenceType   `json:"reference_type" validate:"omitnil,enum"`
	ReferenceID   *string          `json:"reference_id"`
	IsRead        bool             `json:"is_read"`
	ReadAt        *time.Time       `json:"read_at"`
	CreatedAt     time.Time        `json:"created_at"`
}

func NewNotification(userID, familyID string, kind NotificationKind, title, body string, now time.Time) Notification {
	return Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		FamilyID:  familyID,
		Kind:      kind,
		Title:     title,
		Body:      body,
		CreatedAt: now,
	}
}

// WithReference returns a copy of n pointing at ref.
func (n Notification) WithReference(ref Reference) Notification {
	t, id := ref.Type, ref.ID
	n.ReferenceType = &t
	n.ReferenceID = &id
	return n
}
