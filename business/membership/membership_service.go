package membership

import (
	"context"
	"errors"
	"fmt"
	"susuhub/domain"
	"susuhub/pkg/logger"
)

// MembershipRepository contract interface
type MembershipRepository interface {
	Find(ctx context.Context, userID, groupID string) (domain.GroupMembership, error)
	FindAll(ctx context.Context) ([]domain.GroupMembership, error)
	Join(ctx context.Context, userID, groupID string) error
	Block(ctx context.Context, userID, groupID string) error
	Reactivate(ctx context.Context, userID, groupID string) error
	SoftDelete(ctx context.Context, userID, groupID string) error
}

// MembershipService owns the (user, group) lifecycle. All five operations
// are idempotent upserts; callers never distinguish create from update.
type MembershipService struct {
	membershipRepo MembershipRepository
}

func NewMembershipService(membershipRepo MembershipRepository) *MembershipService {
	return &MembershipService{
		membershipRepo: membershipRepo,
	}
}

func validatePair(userID, groupID string) error {
	if userID == "" {
		return fmt.Errorf("%w: missing user id", domain.ErrValidation)
	}
	if groupID == "" {
		return fmt.Errorf("%w: missing group id", domain.ErrValidation)
	}
	return nil
}

// GetStatus reports the pair's effective state. A pair with no row is
// NOT_MEMBER with both flags clear, not an error.
func (s *MembershipService) GetStatus(ctx context.Context, userID, groupID string) (domain.MembershipState, error) {
	if err := validatePair(userID, groupID); err != nil {
		return domain.MembershipState{}, err
	}

	membership, err := s.membershipRepo.Find(ctx, userID, groupID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.MembershipState{
				Status:    domain.MembershipStatusNotMember,
				IsBlocked: false,
				IsDeleted: false,
			}, nil
		}
		logger.Error("Failed to load membership status", err)
		return domain.MembershipState{}, err
	}

	return domain.MembershipState{
		Status:    membership.Status,
		IsBlocked: membership.IsBlocked,
		IsDeleted: membership.IsDeleted,
	}, nil
}

// Join resets the pair to an active, unblocked, undeleted membership.
// Joining after a block clears the block; blocking is not sticky.
func (s *MembershipService) Join(ctx context.Context, userID, groupID string) error {
	if err := validatePair(userID, groupID); err != nil {
		return err
	}

	if err := s.membershipRepo.Join(ctx, userID, groupID); err != nil {
		logger.Error("Failed to join group", err)
		return err
	}

	return nil
}

// Block sets is_blocked without touching status or is_deleted. A pair with
// no row gets one created blocked with status=PENDING.
func (s *MembershipService) Block(ctx context.Context, userID, groupID string) error {
	if err := validatePair(userID, groupID); err != nil {
		return err
	}

	if err := s.membershipRepo.Block(ctx, userID, groupID); err != nil {
		logger.Error("Failed to block membership", err)
		return err
	}

	return nil
}

// Reactivate clears a soft delete. A missing pair is a no-op, not an error.
func (s *MembershipService) Reactivate(ctx context.Context, userID, groupID string) error {
	if err := validatePair(userID, groupID); err != nil {
		return err
	}

	if err := s.membershipRepo.Reactivate(ctx, userID, groupID); err != nil {
		logger.Error("Failed to reactivate membership", err)
		return err
	}

	return nil
}

// SoftDelete suspends the pair without removing the row. A missing pair is
// a no-op, not an error.
func (s *MembershipService) SoftDelete(ctx context.Context, userID, groupID string) error {
	if err := validatePair(userID, groupID); err != nil {
		return err
	}

	if err := s.membershipRepo.SoftDelete(ctx, userID, groupID); err != nil {
		logger.Error("Failed to soft-delete membership", err)
		return err
	}

	return nil
}

// GetAll returns every membership row, unfiltered.
func (s *MembershipService) GetAll(ctx context.Context) ([]domain.GroupMembership, error) {
	memberships, err := s.membershipRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to list memberships", err)
		return nil, err
	}

	return memberships, nil
}
