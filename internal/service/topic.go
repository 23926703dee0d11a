package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dukerupert/uchitopi/internal/config"
	"github.com/dukerupert/uchitopi/internal/model"
	"github.com/dukerupert/uchitopi/internal/store"
	"github.com/dukerupert/uchitopi/internal/textutil"
	"github.com/dukerupert/uchitopi/internal/validator"
)

// TopicInput holds the user-supplied fields of a new topic. Zero values
// take the topic defaults.
type TopicInput struct {
	FamilyID    string
	Type        model.TopicType
	Title       string
	Description *string
	AssigneeID  *string
	Priority    model.Priority
	Labels      []string
	StartAt     *time.Time
	DueAt       *time.Time
	CreatedBy   string
}

type TopicService struct {
	repos  *store.Repositories
	logger *slog.Logger
	now    func() time.Time
}

func NewTopicService(repos *store.Repositories, logger *slog.Logger) *TopicService {
	return &TopicService{
		repos:  repos,
		logger: logger.With("component", "topic"),
		now:    utcNow,
	}
}

func (s *TopicService) CreateTopic(in TopicInput) (*model.Topic, error) {
	if _, err := validator.TaskTitle(in.Title); err != nil {
		return nil, err
	}
	if in.Description != nil {
		if _, err := validator.TaskDescription(*in.Description); err != nil {
			return nil, err
		}
	}
	if in.StartAt != nil && in.DueAt != nil {
		if _, _, err := validator.DateRange(*in.StartAt, *in.DueAt); err != nil {
			return nil, err
		}
	}

	typ := in.Type
	if typ == "" {
		typ = model.TopicTask
	}
	t := model.NewTopic(in.FamilyID, typ, textutil.Trimmed(in.Title), in.CreatedBy, s.now())
	if !textutil.IsNilOrBlank(in.Description) {
		d := textutil.Trimmed(*in.Description)
		t.Description = &d
	}
	if in.Priority != "" {
		t.Priority = in.Priority
	}
	if len(in.Labels) > 0 {
		t.Labels = in.Labels
	}
	t.AssigneeID = in.AssigneeID
	t.StartAt = in.StartAt
	t.DueAt = in.DueAt

	if err := validator.Topic(t); err != nil {
		return nil, err
	}
	if err := s.repos.Topics.Create(t); err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	s.logger.Info("topic created", "topic_id", t.ID, "family_id", t.FamilyID, "type", t.Type)
	return &t, nil
}

func (s *TopicService) Get(topicID string) (*model.Topic, error) {
	t, err := s.repos.Topics.Get(topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("topic %s: %w", topicID, ErrNotFound)
	}
	return t, nil
}

func (s *TopicService) Topics(familyID string) ([]model.Topic, error) {
	topics, err := s.repos.Topics.List(store.Filter{FamilyID: familyID})
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

// ConvertMessageToTask creates a task whose title is the first line of the
// message and links the two. The full body becomes the description, cut to
// the description limit.
func (s *TopicService) ConvertMessageToTask(messageID, createdBy string) (*model.Topic, error) {
	m, err := s.repos.Messages.Get(messageID)
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("message %s: %w", messageID, ErrNotFound)
	}
	if m.TaskID != nil {
		return nil, fmt.Errorf("message %s: %w", messageID, ErrAlreadyConverted)
	}
	th, err := s.repos.Threads.Get(m.ThreadID)
	if err != nil {
		return nil, fmt.Errorf("get thread: %w", err)
	}
	if th == nil {
		return nil, fmt.Errorf("thread %s: %w", m.ThreadID, ErrNotFound)
	}

	firstLine, _, _ := strings.Cut(textutil.Trimmed(m.Body), "\n")
	title := textutil.Truncated(textutil.Trimmed(firstLine), config.MaxTaskTitleLength-1, textutil.DefaultTrailing)
	in := TopicInput{
		FamilyID:  th.FamilyID,
		Type:      model.TopicTask,
		Title:     title,
		CreatedBy: createdBy,
	}
	if title != m.Body {
		desc := textutil.Truncated(textutil.Trimmed(m.Body), config.MaxTaskDescriptionLength-1, textutil.DefaultTrailing)
		in.Description = &desc
	}
	t, err := s.CreateTopic(in)
	if err != nil {
		return nil, err
	}

	t.SourceMessageID = &m.ID
	t.SourceThreadID = &m.ThreadID
	if _, err := s.repos.Topics.Update(*t); err != nil {
		return nil, fmt.Errorf("link topic: %w", err)
	}
	m.TaskID = &t.ID
	if _, err := s.repos.Messages.Update(*m); err != nil {
		return nil, fmt.Errorf("link message: %w", err)
	}
	return t, nil
}

// UpdateStatus changes a topic's status. CompletedAt is set on completion
// and cleared for every other status.
func (s *TopicService) UpdateStatus(topicID string, status model.TopicStatus) (*model.Topic, error) {
	if !status.Valid() {
		return nil, validator.InvalidFormat()
	}
	t, err := s.Get(topicID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	t.Status = status
	t.UpdatedAt = now
	if status == model.StatusCompleted {
		t.CompletedAt = &now
	} else {
		t.CompletedAt = nil
	}
	if _, err := s.repos.Topics.Update(*t); err != nil {
		return nil, fmt.Errorf("update topic: %w", err)
	}

	s.logger.Info("topic status changed", "topic_id", topicID, "status", status)
	return t, nil
}

// Overdue returns the family's open topics whose due date has passed.
func (s *TopicService) Overdue(familyID string) ([]model.Topic, error) {
	topics, err := s.Topics(familyID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	var overdue []model.Topic
	for _, t := range topics {
		if t.IsOverdue(now) {
			overdue = append(overdue, t)
		}
	}
	return overdue, nil
}
