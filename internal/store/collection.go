package store

import (
	"encoding/json"
	"fmt"
)

// Keys extracts the document id and the indexed fields of a record.
type Keys[T any] func(v T) (id, familyID, ownerID string)

// Collection is a typed view over one DocumentStore collection, storing
// each record as its JSON encoding.
type Collection[T any] struct {
	docs *DocumentStore
	name string
	keys Keys[T]
}

func NewCollection[T any](docs *DocumentStore, name string, keys func(v T) (id, familyID, ownerID string)) *Collection[T] {
	return &Collection[T]{docs: docs, name: name, keys: keys}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

func (c *Collection[T]) document(v T) (Document, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Document{}, fmt.Errorf("marshal %s: %w", c.name, err)
	}
	id, familyID, ownerID := c.keys(v)
	return Document{Collection: c.name, ID: id, FamilyID: familyID, OwnerID: ownerID, Data: data}, nil
}

func (c *Collection[T]) decode(d *Document) (*T, error) {
	var v T
	if err := json.Unmarshal(d.Data, &v); err != nil {
		return nil, fmt.Errorf("unmarshal %s/%s: %w", c.name, d.ID, err)
	}
	return &v, nil
}

func (c *Collection[T]) Create(v T) error {
	doc, err := c.document(v)
	if err != nil {
		return err
	}
	_, err = c.docs.Create(doc)
	return err
}

// Get returns nil, nil when no record has the id.
func (c *Collection[T]) Get(id string) (*T, error) {
	d, err := c.docs.Get(c.name, id)
	if err != nil || d == nil {
		return nil, err
	}
	return c.decode(d)
}

// Update stores v over an existing record and reports whether it existed.
func (c *Collection[T]) Update(v T) (bool, error) {
	doc, err := c.document(v)
	if err != nil {
		return false, err
	}
	d, err := c.docs.Update(doc)
	if err != nil {
		return false, err
	}
	return d != nil, nil
}

// Put creates v or replaces the existing record with the same id.
func (c *Collection[T]) Put(v T) error {
	ok, err := c.Update(v)
	if err != nil || ok {
		return err
	}
	return c.Create(v)
}

func (c *Collection[T]) Delete(id string) error {
	return c.docs.Delete(c.name, id)
}

func (c *Collection[T]) List(f Filter) ([]T, error) {
	docs, err := c.docs.List(c.name, f)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(docs))
	for i := range docs {
		v, err := c.decode(&docs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}

func (c *Collection[T]) Count(f Filter) (int, error) {
	return c.docs.Count(c.name, f)
}
