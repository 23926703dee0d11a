package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dukerupert/uchitopi/internal/model"
)

// PushTokenStore keeps device push tokens per user.
type PushTokenStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewPushTokenStore(db *sql.DB) *PushTokenStore {
	return &PushTokenStore{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Register stores token for userID. A token already registered moves to the
// new user.
func (s *PushTokenStore) Register(userID, token string) (*model.PushToken, error) {
	_, err := s.db.Exec(
		`INSERT INTO push_tokens (token, user_id, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(token) DO UPDATE SET user_id = excluded.user_id`,
		token, userID, s.now(),
	)
	if err != nil {
		return nil, fmt.Errorf("register push token: %w", err)
	}

	var pt model.PushToken
	err = s.db.QueryRow(
		`SELECT token, user_id, created_at FROM push_tokens WHERE token = ?`, token,
	).Scan(&pt.Token, &pt.UserID, &pt.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get push token: %w", err)
	}
	return &pt, nil
}

func (s *PushTokenStore) Unregister(token string) error {
	if _, err := s.db.Exec(`DELETE FROM push_tokens WHERE token = ?`, token); err != nil {
		return fmt.Errorf("unregister push token: %w", err)
	}
	return nil
}

func (s *PushTokenStore) ListByUser(userID string) ([]model.PushToken, error) {
	rows, err := s.db.Query(
		`SELECT token, user_id, created_at FROM push_tokens WHERE user_id = ? ORDER BY created_at, token`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list push tokens by user: %w", err)
	}
	defer rows.Close()

	var tokens []model.PushToken
	for rows.Next() {
		var pt model.PushToken
		if err := rows.Scan(&pt.Token, &pt.UserID, &pt.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan push token: %w", err)
		}
		tokens = append(tokens, pt)
	}
	return tokens, rows.Err()
}

func (s *PushTokenStore) DeleteByUser(userID string) error {
	if _, err := s.db.Exec(`DELETE FROM push_tokens WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("delete push tokens by user: %w", err)
	}
	return nil
}
