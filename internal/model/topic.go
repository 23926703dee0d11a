package model

import (
	"time"

	"github.com/google/uuid"
)

type TopicType string

const (
	TopicTask  TopicType = "task"
	TopicEvent TopicType = "event"
	TopicNote  TopicType = "note"
)

var topicTypeLabels = map[TopicType]struct{ name, icon string }{
	TopicTask:  {"タスク", "checkmark.circle"},
	TopicEvent: {"イベント", "calendar"},
	TopicNote:  {"メモ", "note.text"},
}

func AllTopicTypes() []TopicType {
	return []TopicType{TopicTask, TopicEvent, TopicNote}
}

func (t TopicType) Valid() bool {
	_, ok := topicTypeLabels[t]
	return ok
}

func (t TopicType) DisplayName() string { return topicTypeLabels[t].name }
func (t TopicType) IconName() string { return topicTypeLabels[t].icon }

func (t *TopicType) UnmarshalText(text []byte) error {
	v, err := parseEnum("topic type", text, TopicType.Valid)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

type TopicStatus string

const (
	StatusPending    TopicStatus = "pending"
	StatusInProgress TopicStatus = "inProgress"
	StatusCompleted  TopicStatus = "completed"
	StatusCancelled  TopicStatus = "cancelled"
)

var topicStatusNames = map[TopicStatus]string{
	StatusPending:    "未着手",
	StatusInProgress: "進行中",
	StatusCompleted:  "完了",
	StatusCancelled:  "キャンセル",
}

func AllTopicStatuses() []TopicStatus {
	return []TopicStatus{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}
}

func (s TopicStatus) Valid() bool {
	_, ok := topicStatusNames[s]
	return ok
}

func (s TopicStatus) DisplayName() string { return topicStatusNames[s] }

// Done reports whether the topic no longer needs attention.
func (s TopicStatus) Done() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s *TopicStatus) UnmarshalText(text []byte) error {
	v, err := parseEnum("topic status", text, TopicStatus.Valid)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var priorityLabels = map[Priority]struct{ name, color string }{
	PriorityLow:    {"低", "gray"},
	PriorityMedium: {"中", "blue"},
	PriorityHigh:   {"高", "orange"},
	PriorityUrgent: {"緊急", "red"},
}

func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}

func (p Priority) Valid() bool {
	_, ok := priorityLabels[p]
	return ok
}

func (p Priority) DisplayName() string { return priorityLabels[p].name }
func (p Priority) Color() string { return priorityLabels[p].color }

// Rank orders priorities from low (0) to urgent (3); unknown values rank -1.
func (p Priority) Rank() int {
	for i, v := range AllPriorities() {
		if v == p {
			return i
		}
	}
	return -1
}

func (p *Priority) UnmarshalText(text []byte) error {
	v, err := parseEnum("priority", text, Priority.Valid)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Topic is a task, event or note tracked by a family.
type Topic struct {
	ID              string      `json:"id"`
	FamilyID        string      `json:"family_id" validate:"required"`
	Type            TopicType   `json:"type" validate:"enum"`
	Title           string      `json:"title" validate:"required,maxchars=100"`
	Description     *string     `json:"description"`
	AssigneeID      *string     `json:"assignee_id"`
	Status          TopicStatus `json:"status" validate:"enum"`
	Priority        Priority    `json:"priority" validate:"enum"`
	Labels          []string    `json:"labels"`
	StartAt         *time.Time  `json:"start_at"`
	DueAt           *time.Time  `json:"due_at"`
	CompletedAt     *time.Time  `json:"completed_at"`
	SourceMessageID *string     `json:"source_message_id"`
	SourceThreadID  *string     `json:"source_thread_id"`
	CreatedBy       string      `json:"created_by" validate:"required"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// NewTopic returns a pending, medium priority topic.
func NewTopic(familyID string, typ TopicType, title, createdBy string, now time.Time) Topic {
	return Topic{
		ID:        uuid.NewString(),
		FamilyID:  familyID,
		Type:      typ,
		Title:     title,
		Status:    StatusPending,
		Priority:  PriorityMedium,
		Labels:    []string{},
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOverdue reports whether the topic has a due date before now and is still open.
func (t Topic) IsOverdue(now time.Time) bool {
	return t.DueAt != nil && t.DueAt.Before(now) && !t.Status.Done()
}
