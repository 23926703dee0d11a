package store

import (
	"github.com/dukerupert/uchitopi/internal/config"
	"github.com/dukerupert/uchitopi/internal/model"
)

// Repositories bundles the typed collections used by the services.
//
// Messages and reads have no family of their own; they are partitioned by
// thread, so their FamilyID filter takes a thread id.
type Repositories struct {
	Docs          *DocumentStore
	Users         *Collection[model.User]
	Families      *Collection[model.Family]
	Members       *Collection[model.FamilyMember]
	Threads       *Collection[model.Thread]
	Messages      *Collection[model.Message]
	Reads         *Collection[model.MessageRead]
	Topics        *Collection[model.Topic]
	Notifications *Collection[model.Notification]
	Invites       *Collection[model.Invite]
}

func NewRepositories(docs *DocumentStore) *Repositories {
	return &Repositories{
		Docs: docs,
		Users: NewCollection(docs, config.CollectionUsers, func(u model.User) (string, string, string) {
			return u.ID, "", u.ID
		}),
		Families: NewCollection(docs, config.CollectionFamilies, func(f model.Family) (string, string, string) {
			return f.ID, f.ID, f.CreatedBy
		}),
		Members: NewCollection(docs, config.CollectionMembers, func(m model.FamilyMember) (string, string, string) {
			return m.ID, m.FamilyID, m.UserID
		}),
		Threads: NewCollection(docs, config.CollectionThreads, func(t model.Thread) (string, string, string) {
			return t.ID, t.FamilyID, t.CreatedBy
		}),
		Messages: NewCollection(docs, config.CollectionMessages, func(m model.Message) (string, string, string) {
			return m.ID, m.ThreadID, m.AuthorID
		}),
		Reads: NewCollection(docs, config.CollectionReads, func(r model.MessageRead) (string, string, string) {
			return model.ReadID(r.UserID, r.ThreadID), r.ThreadID, r.UserID
		}),
		Topics: NewCollection(docs, config.CollectionTopics, func(t model.Topic) (string, string, string) {
			return t.ID, t.FamilyID, t.CreatedBy
		}),
		Notifications: NewCollection(docs, config.CollectionNotifications, func(n model.Notification) (string, string, string) {
			return n.ID, n.FamilyID, n.UserID
		}),
		Invites: NewCollection(docs, config.CollectionInvites, func(i model.Invite) (string, string, string) {
			return i.Code, i.FamilyID, i.CreatedBy
		}),
	}
}
