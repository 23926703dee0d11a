package model

import (
	"time"

	"github.com/google/uuid"
)

type AttachmentType string

const (
	AttachmentImage    AttachmentType = "image"
	AttachmentDocument AttachmentType = "document"
	AttachmentVideo    AttachmentType = "video"
	AttachmentAudio    AttachmentType = "audio"
	AttachmentOther    AttachmentType = "other"
)

func AllAttachmentTypes() []AttachmentType {
	return []AttachmentType{AttachmentImage, AttachmentDocument, AttachmentVideo, AttachmentAudio, AttachmentOther}
}

func (a AttachmentType) Valid() bool {
	switch a {
	case AttachmentImage, AttachmentDocument, AttachmentVideo, AttachmentAudio, AttachmentOther:
		return true
	}
	return false
}

func (a *AttachmentType) UnmarshalText(text []byte) error {
	v, err := parseEnum("attachment type", text, AttachmentType.Valid)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

type Message struct {
	ID          string              `json:"id"`
	ThreadID    string              `json:"thread_id" validate:"required"`
	AuthorID    string              `json:"author_id" validate:"required"`
	Body        string              `json:"body" validate:"required"`
	Attachments []MessageAttachment `json:"attachments" validate:"dive"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   *time.Time          `json:"updated_at"`
	IsEdited    bool                `json:"is_edited"`
	TaskID      *string             `json:"task_id"`
}

func NewMessage(threadID, authorID, body string, now time.Time) Message {
	return Message{
		ID:          uuid.NewString(),
		ThreadID:    threadID,
		AuthorID:    authorID,
		Body:        body,
		Attachments: []MessageAttachment{},
		CreatedAt:   now,
	}
}

type MessageAttachment struct {
	ID           string         `json:"id"`
	Type         AttachmentType `json:"type" validate:"enum"`
	URL          string         `json:"url" validate:"required"`
	FileName     string         `json:"file_name" validate:"required"`
	FileSize     *int64         `json:"file_size"`
	ThumbnailURL *string        `json:"thumbnail_url"`
}

func NewMessageAttachment(typ AttachmentType, url, fileName string) MessageAttachment {
	return MessageAttachment{
		ID:       uuid.NewString(),
		Type:     typ,
		URL:      url,
		FileName: fileName,
	}
}

// MessageRead records how far a user has read in a thread.
type MessageRead struct {
	UserID     string    `json:"user_id"`
	MessageID  string    `json:"message_id"`
	ThreadID   string    `json:"thread_id"`
	LastReadAt time.Time `json:"last_read_at"`
}

// ReadID is the document id of the read marker for a user in a thread.
func ReadID(userID, threadID string) string {
	return threadID + ":" + userID
}
