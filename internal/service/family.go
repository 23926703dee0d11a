package service

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dukerupert/uchitopi/internal/model"
	"github.com/dukerupert/uchitopi/internal/store"
	"github.com/dukerupert/uchitopi/internal/textutil"
	"github.com/dukerupert/uchitopi/internal/validator"
)

const maxInviteAttempts = 10

type FamilyService struct {
	repos     *store.Repositories
	inviteTTL time.Duration
	logger    *slog.Logger
	now       func() time.Time
	newCode   func() string
}

func NewFamilyService(repos *store.Repositories, inviteTTL time.Duration, logger *slog.Logger) *FamilyService {
	return &FamilyService{
		repos:     repos,
		inviteTTL: inviteTTL,
		logger:    logger.With("component", "family"),
		now:       utcNow,
		newCode:   textutil.RandomInviteCode,
	}
}

// CreateFamily creates a family with a fresh invite code and makes createdBy
// its first parent member.
func (s *FamilyService) CreateFamily(name, createdBy string) (*model.Family, error) {
	if _, err := validator.FamilyName(name); err != nil {
		return nil, err
	}

	now := s.now()
	f := model.NewFamily(textutil.Trimmed(name), createdBy, now)
	if err := validator.Family(f); err != nil {
		return nil, err
	}
	inv, err := s.issueInvite(f.ID, createdBy, now)
	if err != nil {
		return nil, err
	}
	f.InviteCode = &inv.Code
	if err := s.repos.Families.Create(f); err != nil {
		if derr := s.repos.Invites.Delete(inv.Code); derr != nil {
			s.logger.Error("delete orphaned invite", "code", inv.Code, "error", derr)
		}
		return nil, fmt.Errorf("create family: %w", err)
	}

	m := model.NewFamilyMember(createdBy, f.ID, model.RoleParent, now)
	if err := s.repos.Members.Create(m); err != nil {
		return nil, fmt.Errorf("create parent member: %w", err)
	}
	if err := s.linkUser(createdBy, f.ID, now); err != nil {
		return nil, err
	}

	s.logger.Info("family created", "family_id", f.ID, "created_by", createdBy)
	return &f, nil
}

// JoinByInviteCode adds userID to the family owning code.
func (s *FamilyService) JoinByInviteCode(code, userID string, role model.UserRole, nickname string) (*model.FamilyMember, error) {
	code, err := validator.InviteCode(code)
	if err != nil {
		return nil, err
	}
	if _, err := validator.Nickname(nickname); err != nil {
		return nil, err
	}

	inv, err := s.repos.Invites.Get(code)
	if err != nil {
		return nil, fmt.Errorf("get invite: %w", err)
	}
	if inv == nil {
		return nil, fmt.Errorf("invite %s: %w", code, ErrNotFound)
	}
	now := s.now()
	if inv.IsExpired(now) {
		return nil, fmt.Errorf("invite %s: %w", code, ErrInviteExpired)
	}

	members, err := s.Members(inv.FamilyID)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if m.UserID == userID {
			return nil, fmt.Errorf("user %s in family %s: %w", userID, inv.FamilyID, ErrAlreadyMember)
		}
	}
	if err := validator.MemberCount(len(members)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFamilyFull, err)
	}

	m := model.NewFamilyMember(userID, inv.FamilyID, role, now)
	if nick := textutil.Trimmed(nickname); nick != "" {
		m.Nickname = &nick
	}
	if err := validator.Member(m); err != nil {
		return nil, err
	}
	if err := s.repos.Members.Create(m); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}
	if err := s.linkUser(userID, inv.FamilyID, now); err != nil {
		return nil, err
	}

	s.logger.Info("member joined", "family_id", inv.FamilyID, "user_id", userID, "role", role)
	return &m, nil
}

// RegenerateInviteCode replaces the family's invite code and returns the
// new one. The previous code stops working immediately.
func (s *FamilyService) RegenerateInviteCode(familyID, requestedBy string) (string, error) {
	f, err := s.repos.Families.Get(familyID)
	if err != nil {
		return "", fmt.Errorf("get family: %w", err)
	}
	if f == nil {
		return "", fmt.Errorf("family %s: %w", familyID, ErrNotFound)
	}

	now := s.now()
	inv, err := s.issueInvite(familyID, requestedBy, now)
	if err != nil {
		return "", err
	}
	if f.InviteCode != nil {
		if err := s.repos.Invites.Delete(*f.InviteCode); err != nil {
			return "", fmt.Errorf("delete old invite: %w", err)
		}
	}
	f.InviteCode = &inv.Code
	f.UpdatedAt = now
	if _, err := s.repos.Families.Update(*f); err != nil {
		return "", fmt.Errorf("update family: %w", err)
	}

	s.logger.Info("invite code regenerated", "family_id", familyID)
	return inv.Code, nil
}

// Members returns the members of familyID in join order.
func (s *FamilyService) Members(familyID string) ([]model.FamilyMember, error) {
	members, err := s.repos.Members.List(store.Filter{FamilyID: familyID})
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	return members, nil
}

func (s *FamilyService) issueInvite(familyID, createdBy string, now time.Time) (*model.Invite, error) {
	for i := 0; i < maxInviteAttempts; i++ {
		inv := model.Invite{
			Code:      s.newCode(),
			FamilyID:  familyID,
			CreatedBy: createdBy,
			CreatedAt: now,
			ExpiresAt: now.Add(s.inviteTTL),
		}
		err := s.repos.Invites.Create(inv)
		if errors.Is(err, store.ErrDuplicate) {
			s.logger.Debug("invite code collision", "code", inv.Code)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("create invite: %w", err)
		}
		return &inv, nil
	}
	return nil, ErrInviteCodeConflict
}

// linkUser records familyID on the user document when the user is known.
func (s *FamilyService) linkUser(userID, familyID string, now time.Time) error {
	u, err := s.repos.Users.Get(userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if u == nil || slices.Contains(u.Families, familyID) {
		return nil
	}
	u.Families = append(u.Families, familyID)
	u.UpdatedAt = now
	if _, err := s.repos.Users.Update(*u); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
