package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dukerupert/uchitopi/internal/config"
	"github.com/dukerupert/uchitopi/internal/feed"
)

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrDuplicate         = errors.New("document already exists")
	ErrMissingID         = errors.New("document id is required")
)

// Document is one JSON record in a named collection. FamilyID and OwnerID
// are indexed copies of fields inside Data used for filtering.
type Document struct {
	Collection string
	ID         string
	FamilyID   string
	OwnerID    string
	Data       json.RawMessage
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Filter narrows List. Empty fields match everything; Limit 0 means no limit.
// With Latest set, Limit keeps the newest documents instead of the oldest.
type Filter struct {
	FamilyID string
	OwnerID  string
	Limit    int
	Latest   bool
}

// DocumentStore keeps the per-collection records the app would otherwise
// sync from its backend, and publishes every write to a feed.Hub.
type DocumentStore struct {
	db  *sql.DB
	hub *feed.Hub
	now func() time.Time
}

// NewDocumentStore creates a store publishing to hub. A nil hub gets a
// private one so Subscribe still works.
func NewDocumentStore(db *sql.DB, hub *feed.Hub) *DocumentStore {
	if hub == nil {
		hub = feed.NewHub(1, slog.Default())
	}
	return &DocumentStore{
		db:  db,
		hub: hub,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func checkCollection(name string) error {
	if !slices.Contains(config.Collections, name) {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, name)
	}
	return nil
}

func scanDocument(scanner interface{ Scan(...any) error }) (*Document, error) {
	var d Document
	var data string
	err := scanner.Scan(&d.Collection, &d.ID, &d.FamilyID, &d.OwnerID, &data, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	d.Data = json.RawMessage(data)
	return &d, nil
}

const documentCols = `collection, id, family_id, owner_id, data, created_at, updated_at`

// Create inserts doc and returns the stored copy. It fails with ErrDuplicate
// when the id is already taken in the collection.
func (s *DocumentStore) Create(doc Document) (*Document, error) {
	if err := checkCollection(doc.Collection); err != nil {
		return nil, err
	}
	if doc.ID == "" {
		return nil, ErrMissingID
	}
	now := s.now()
	result, err := s.db.Exec(
		`INSERT INTO documents (`+documentCols+`) VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(collection, id) DO NOTHING`,
		doc.Collection, doc.ID, doc.FamilyID, doc.OwnerID, string(doc.Data), now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s/%s", ErrDuplicate, doc.Collection, doc.ID)
	}

	s.publish(doc.Collection, feed.ActionCreated, doc.ID, doc.FamilyID)
	return s.Get(doc.Collection, doc.ID)
}

// Get returns nil, nil when the document does not exist.
func (s *DocumentStore) Get(collection, id string) (*Document, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	row := s.db.QueryRow(`SELECT `+documentCols+` FROM documents WHERE collection = ? AND id = ?`, collection, id)
	d, err := scanDocument(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

// Update replaces the data of an existing document. It returns nil, nil when
// the document does not exist.
func (s *DocumentStore) Update(doc Document) (*Document, error) {
	if err := checkCollection(doc.Collection); err != nil {
		return nil, err
	}
	result, err := s.db.Exec(
		`UPDATE documents SET family_id = ?, owner_id = ?, data = ?, updated_at = ? WHERE collection = ? AND id = ?`,
		doc.FamilyID, doc.OwnerID, string(doc.Data), s.now(), doc.Collection, doc.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return nil, nil
	}

	s.publish(doc.Collection, feed.ActionUpdated, doc.ID, doc.FamilyID)
	return s.Get(doc.Collection, doc.ID)
}

// Delete removes a document. Deleting a missing document is not an error.
func (s *DocumentStore) Delete(collection, id string) error {
	if err := checkCollection(collection); err != nil {
		return err
	}
	var familyID string
	err := s.db.QueryRow(
		`DELETE FROM documents WHERE collection = ? AND id = ? RETURNING family_id`,
		collection, id,
	).Scan(&familyID)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}

	s.publish(collection, feed.ActionDeleted, id, familyID)
	return nil
}

// List returns matching documents oldest first.
func (s *DocumentStore) List(collection string, f Filter) ([]Document, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}

	query := `SELECT ` + documentCols + ` FROM documents WHERE collection = ?`
	args := []any{collection}
	if f.FamilyID != "" {
		query += ` AND family_id = ?`
		args = append(args, f.FamilyID)
	}
	if f.OwnerID != "" {
		query += ` AND owner_id = ?`
		args = append(args, f.OwnerID)
	}
	if f.Latest {
		query += ` ORDER BY created_at DESC, rowid DESC`
	} else {
		query += ` ORDER BY created_at, rowid`
	}
	if f.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if f.Latest {
		slices.Reverse(docs)
	}
	return docs, nil
}

// Count returns the number of matching documents.
func (s *DocumentStore) Count(collection string, f Filter) (int, error) {
	if err := checkCollection(collection); err != nil {
		return 0, err
	}
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM documents
		 WHERE collection = ? AND (? = '' OR family_id = ?) AND (? = '' OR owner_id = ?)`,
		collection, f.FamilyID, f.FamilyID, f.OwnerID, f.OwnerID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count documents: %w", err)
	}
	return n, nil
}

// Subscribe returns a subscription receiving every write to collection.
func (s *DocumentStore) Subscribe(collection string) (*feed.Subscription, error) {
	if err := checkCollection(collection); err != nil {
		return nil, err
	}
	return s.hub.Subscribe(collection), nil
}

func (s *DocumentStore) publish(collection, action, id, familyID string) {
	s.hub.Publish(feed.NewChange(collection, action, id, familyID))
}
