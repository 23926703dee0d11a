package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dukerupert/uchitopi/internal/config"
	"github.com/dukerupert/uchitopi/internal/model"
	"github.com/dukerupert/uchitopi/internal/store"
	"github.com/dukerupert/uchitopi/internal/textutil"
	"github.com/dukerupert/uchitopi/internal/validator"
)

type ThreadService struct {
	repos  *store.Repositories
	logger *slog.Logger
	now    func() time.Time
}

func NewThreadService(repos *store.Repositories, logger *slog.Logger) *ThreadService {
	return &ThreadService{
		repos:  repos,
		logger: logger.With("component", "thread"),
		now:    utcNow,
	}
}

// CreateThread opens a thread in familyID. An empty participant list means
// the whole family.
func (s *ThreadService) CreateThread(familyID, title, createdBy string, participants []string) (*model.Thread, error) {
	if _, err := validator.ThreadTitle(title); err != nil {
		return nil, err
	}
	f, err := s.repos.Families.Get(familyID)
	if err != nil {
		return nil, fmt.Errorf("get family: %w", err)
	}
	if f == nil {
		return nil, fmt.Errorf("family %s: %w", familyID, ErrNotFound)
	}

	t := model.NewThread(familyID, textutil.Trimmed(title), createdBy, s.now())
	if len(participants) > 0 {
		t.ParticipantIDs = participants
	}
	if err := validator.Thread(t); err != nil {
		return nil, err
	}
	if err := s.repos.Threads.Create(t); err != nil {
		return nil, fmt.Errorf("create thread: %w", err)
	}

	s.logger.Info("thread created", "thread_id", t.ID, "family_id", familyID)
	return &t, nil
}

func (s *ThreadService) Get(threadID string) (*model.Thread, error) {
	t, err := s.repos.Threads.Get(threadID)
	if err != nil {
		return nil, fmt.Errorf("get thread: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("thread %s: %w", threadID, ErrNotFound)
	}
	return t, nil
}

// Threads lists the family's threads, skipping archived ones unless
// includeArchived is set.
func (s *ThreadService) Threads(familyID string, includeArchived bool) ([]model.Thread, error) {
	all, err := s.repos.Threads.List(store.Filter{FamilyID: familyID})
	if err != nil {
		return nil, fmt.Errorf("list threads: %w", err)
	}
	if includeArchived {
		return all, nil
	}
	threads := all[:0]
	for _, t := range all {
		if !t.IsArchived {
			threads = append(threads, t)
		}
	}
	return threads, nil
}

// PostMessage appends a message to threadID and bumps its LastMessageAt.
func (s *ThreadService) PostMessage(threadID, authorID, body string, attachments []model.MessageAttachment) (*model.Message, error) {
	if _, err := validator.MessageBody(body); err != nil {
		return nil, err
	}
	if err := validator.Attachments(attachments); err != nil {
		return nil, err
	}
	t, err := s.Get(threadID)
	if err != nil {
		return nil, err
	}
	if t.IsArchived {
		return nil, fmt.Errorf("thread %s: %w", threadID, ErrThreadArchived)
	}

	now := s.now()
	m := model.NewMessage(threadID, authorID, body, now)
	if len(attachments) > 0 {
		m.Attachments = attachments
	}
	if err := validator.Message(m); err != nil {
		return nil, err
	}
	if err := s.repos.Messages.Create(m); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	t.LastMessageAt = now
	t.UpdatedAt = now
	if _, err := s.repos.Threads.Update(*t); err != nil {
		return nil, fmt.Errorf("update thread: %w", err)
	}

	s.logger.Debug("message posted", "thread_id", threadID, "message_id", m.ID)
	return &m, nil
}

// EditMessage replaces the body of a message written by editorID.
func (s *ThreadService) EditMessage(messageID, editorID, body string) (*model.Message, error) {
	if _, err := validator.MessageBody(body); err != nil {
		return nil, err
	}
	m, err := s.repos.Messages.Get(messageID)
	if err != nil {
		return nil, fmt.Errorf("get message: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("message %s: %w", messageID, ErrNotFound)
	}
	if m.AuthorID != editorID {
		return nil, ErrNotAuthor
	}

	now := s.now()
	m.Body = body
	m.IsEdited = true
	m.UpdatedAt = &now
	if _, err := s.repos.Messages.Update(*m); err != nil {
		return nil, fmt.Errorf("update message: %w", err)
	}
	return m, nil
}

// Messages returns the newest limit messages of threadID, oldest first. A
// limit of zero uses the default page size.
func (s *ThreadService) Messages(threadID string, limit int) ([]model.Message, error) {
	if limit <= 0 {
		limit = config.MessagesPageSize
	}
	msgs, err := s.repos.Messages.List(store.Filter{FamilyID: threadID, Limit: limit, Latest: true})
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

// MarkRead records messageID as the last message userID has read in
// threadID.
func (s *ThreadService) MarkRead(userID, threadID, messageID string) (*model.MessageRead, error) {
	r := model.MessageRead{
		UserID:     userID,
		MessageID:  messageID,
		ThreadID:   threadID,
		LastReadAt: s.now(),
	}
	if err := s.repos.Reads.Put(r); err != nil {
		return nil, fmt.Errorf("mark read: %w", err)
	}
	return &r, nil
}

// LastRead returns nil, nil when userID has not read threadID.
func (s *ThreadService) LastRead(userID, threadID string) (*model.MessageRead, error) {
	r, err := s.repos.Reads.Get(model.ReadID(userID, threadID))
	if err != nil {
		return nil, fmt.Errorf("get read: %w", err)
	}
	return r, nil
}

func (s *ThreadService) Archive(threadID string) error {
	t, err := s.Get(threadID)
	if err != nil {
		return err
	}
	if t.IsArchived {
		return nil
	}
	t.IsArchived = true
	t.UpdatedAt = s.now()
	if _, err := s.repos.Threads.Update(*t); err != nil {
		return fmt.Errorf("archive thread: %w", err)
	}

	s.logger.Info("thread archived", "thread_id", threadID)
	return nil
}
