package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/dukerupert/uchitopi/internal/config"
	"github.com/dukerupert/uchitopi/internal/model"
)

var preferenceKeys = []string{
	config.KeyNotificationEnabled,
	config.KeyTheme,
	config.KeyLanguage,
}

// SettingsStore persists local key/value preferences.
type SettingsStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (s *SettingsStore) Get(key string) (string, error) {
	value, ok, err := s.Lookup(key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("setting %q not found", key)
	}
	return value, nil
}

// Lookup returns the value of key and whether it is set.
func (s *SettingsStore) Lookup(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SettingsStore) GetAll() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("get all settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

// GetPreferences returns the user-facing preferences that are set.
func (s *SettingsStore) GetPreferences() (map[string]string, error) {
	settings := make(map[string]string)
	for _, key := range preferenceKeys {
		value, ok, err := s.Lookup(key)
		if err != nil {
			return nil, err
		}
		if ok {
			settings[key] = value
		}
	}
	return settings, nil
}

func (s *SettingsStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, s.now(),
	)
	if err != nil {
		return fmt.Errorf("set setting %q: %w", key, err)
	}
	return nil
}

func (s *SettingsStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete setting %q: %w", key, err)
	}
	return nil
}

// GetBool returns def when key is unset or not a boolean.
func (s *SettingsStore) GetBool(key string, def bool) (bool, error) {
	value, ok, err := s.Lookup(key)
	if err != nil || !ok {
		return def, err
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return def, nil
	}
	return b, nil
}

func (s *SettingsStore) SetBool(key string, value bool) error {
	return s.Set(key, strconv.FormatBool(value))
}

// EnsureFirstLaunch reports whether this is the first launch, recording the
// flag on the very first call.
func (s *SettingsStore) EnsureFirstLaunch() (bool, error) {
	_, ok, err := s.Lookup(config.KeyIsFirstLaunch)
	if err != nil {
		return false, err
	}
	if !ok {
		if err := s.SetBool(config.KeyIsFirstLaunch, true); err != nil {
			return false, err
		}
		return true, nil
	}
	return s.GetBool(config.KeyIsFirstLaunch, false)
}

// CompleteFirstLaunch clears the first launch flag.
func (s *SettingsStore) CompleteFirstLaunch() error {
	return s.SetBool(config.KeyIsFirstLaunch, false)
}

// Entries returns every setting ordered by key.
func (s *SettingsStore) Entries() ([]model.Setting, error) {
	rows, err := s.db.Query(`SELECT key, value, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var entries []model.Setting
	for rows.Next() {
		var e model.Setting
		if err := rows.Scan(&e.Key, &e.Value, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
