package group

import (
	"context"
	"fmt"
	"strings"
	"susuhub/domain"
	"susuhub/pkg/logger"

	"github.com/google/uuid"
	"github.com/pobyzaarif/goshortcute"
)

// GroupRepository contract interface
type GroupRepository interface {
	Create(ctx context.Context, group *domain.SavingsGroup, creatorID string) error
	FindByID(ctx context.Context, id string) (domain.SavingsGroup, error)
	FindAll(ctx context.Context) ([]domain.SavingsGroup, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	FindByUser(ctx context.Context, userID string) ([]domain.UserGroup, error)
}

type GroupService struct {
	groupRepo GroupRepository
}

func NewGroupService(groupRepo GroupRepository) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
	}
}

// CreateGroup inserts the group, with the optional creator joined as an
// ACTIVE ADMIN and members_count set to 1, all-or-nothing.
func (s *GroupService) CreateGroup(ctx context.Context, group *domain.SavingsGroup, creatorID string) error {
	if group.Name == "" {
		return fmt.Errorf("%w: missing group name", domain.ErrValidation)
	}
	if group.ContributionAmount < 0 {
		return fmt.Errorf("%w: contribution amount cannot be negative", domain.ErrValidation)
	}
	if group.Frequency != "" && !domain.ValidFrequencies[group.Frequency] {
		return fmt.Errorf("%w: invalid frequency %q", domain.ErrValidation, group.Frequency)
	}

	if group.ID == "" {
		group.ID = uuid.NewString()
	}
	if group.InviteCode == "" {
		group.InviteCode = newInviteCode()
	}

	if err := s.groupRepo.Create(ctx, group, creatorID); err != nil {
		logger.Error("Failed to create group", err)
		return err
	}

	return nil
}

func (s *GroupService) GetAllGroups(ctx context.Context) ([]domain.SavingsGroup, error) {
	groups, err := s.groupRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get all groups", err)
		return nil, err
	}

	return groups, nil
}

func (s *GroupService) GetGroupByID(ctx context.Context, id string) (domain.SavingsGroup, error) {
	group, err := s.groupRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get group by ID", err)
		return domain.SavingsGroup{}, err
	}

	return group, nil
}

// UpdateGroup applies the patch. Returns false without touching the store
// when the patch carries no fields.
func (s *GroupService) UpdateGroup(ctx context.Context, id string, patch domain.GroupPatch) (bool, error) {
	if id == "" {
		return false, fmt.Errorf("%w: missing group id", domain.ErrValidation)
	}

	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.ContributionAmount != nil {
		fields["contribution_amount"] = *patch.ContributionAmount
	}
	if patch.Currency != nil {
		fields["currency"] = *patch.Currency
	}
	if patch.Frequency != nil {
		if !domain.ValidFrequencies[*patch.Frequency] {
			return false, fmt.Errorf("%w: invalid frequency %q", domain.ErrValidation, *patch.Frequency)
		}
		fields["frequency"] = *patch.Frequency
	}
	if patch.WelcomeMessage != nil {
		fields["welcome_message"] = *patch.WelcomeMessage
	}
	if patch.Icon != nil {
		fields["icon"] = *patch.Icon
	}
	if patch.PayoutSchedule != nil {
		fields["payout_schedule"] = patch.PayoutSchedule
	}

	if len(fields) == 0 {
		return false, nil
	}

	if err := s.groupRepo.UpdateFields(ctx, id, fields); err != nil {
		logger.Error("Failed to update group", err)
		return false, err
	}

	return true, nil
}

// GetGroupsByUser returns the user's non-suspended groups with membership
// details, most recently joined first.
func (s *GroupService) GetGroupsByUser(ctx context.Context, userID string) ([]domain.UserGroup, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: missing user id", domain.ErrValidation)
	}

	groups, err := s.groupRepo.FindByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to get user groups", err)
		return nil, err
	}

	return groups, nil
}

// newInviteCode derives a short shareable code from a fresh UUID.
func newInviteCode() string {
	encoded := goshortcute.StringtoBase64Encode(uuid.NewString())
	code := strings.ToUpper(strings.NewReplacer("+", "", "/", "", "=", "").Replace(encoded))
	if len(code) > 8 {
		code = code[:8]
	}
	return code
}
