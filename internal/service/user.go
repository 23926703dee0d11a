package service

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dukerupert/uchitopi/internal/model"
	"github.com/dukerupert/uchitopi/internal/store"
	"github.com/dukerupert/uchitopi/internal/textutil"
	"github.com/dukerupert/uchitopi/internal/validator"
)

type UserService struct {
	repos  *store.Repositories
	tokens *store.PushTokenStore
	logger *slog.Logger
	now    func() time.Time
}

func NewUserService(repos *store.Repositories, tokens *store.PushTokenStore, logger *slog.Logger) *UserService {
	return &UserService{
		repos:  repos,
		tokens: tokens,
		logger: logger.With("component", "user"),
		now:    utcNow,
	}
}

// Register creates a guest user. A nil or blank email is stored as absent.
func (s *UserService) Register(displayName string, email *string) (*model.User, error) {
	if _, err := validator.DisplayName(displayName); err != nil {
		return nil, err
	}

	u := model.NewUser(textutil.Trimmed(displayName), s.now())
	if !textutil.IsNilOrBlank(email) {
		addr, err := validator.Email(*email)
		if err != nil {
			return nil, err
		}
		u.Email = &addr
	}
	if err := validator.User(u); err != nil {
		return nil, err
	}
	if err := s.repos.Users.Create(u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", u.ID)
	return &u, nil
}

func (s *UserService) Get(userID string) (*model.User, error) {
	u, err := s.repos.Users.Get(userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	return u, nil
}

// AddFCMToken records a device push token on the user and in the token
// registry. Adding a token twice is a no-op.
func (s *UserService) AddFCMToken(userID, token string) error {
	token, err := validator.NotEmptyString(token)
	if err != nil {
		return err
	}
	u, err := s.Get(userID)
	if err != nil {
		return err
	}

	if !slices.Contains(u.FCMTokens, token) {
		u.FCMTokens = append(u.FCMTokens, token)
		u.UpdatedAt = s.now()
		if _, err := s.repos.Users.Update(*u); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
	}
	if _, err := s.tokens.Register(userID, token); err != nil {
		return err
	}

	s.logger.Debug("push token added", "user_id", userID)
	return nil
}

func (s *UserService) RemoveFCMToken(userID, token string) error {
	u, err := s.Get(userID)
	if err != nil {
		return err
	}

	if i := slices.Index(u.FCMTokens, token); i >= 0 {
		u.FCMTokens = slices.Delete(u.FCMTokens, i, i+1)
		u.UpdatedAt = s.now()
		if _, err := s.repos.Users.Update(*u); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
	}
	return s.tokens.Unregister(token)
}
