package postgres

import (
	"context"
	"errors"
	"susuhub/domain"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepository struct {
	DB *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{
		DB: db,
	}
}

func (r *MembershipRepository) Find(ctx context.Context, userID, groupID string) (domain.GroupMembership, error) {
	var membership domain.GroupMembership

	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroupMembership{}, domain.ErrNotFound
		}
		return domain.GroupMembership{}, err
	}

	return membership, nil
}

func (r *MembershipRepository) FindAll(ctx context.Context) ([]domain.GroupMembership, error) {
	var memberships []domain.GroupMembership

	if err := r.DB.WithContext(ctx).Find(&memberships).Error; err != nil {
		return nil, err
	}

	return memberships, nil
}

// Join upserts the pair into the active state. An existing row is reset to
// status=ACTIVE with both soft flags cleared; a fresh row joins as MEMBER.
func (r *MembershipRepository) Join(ctx context.Context, userID, groupID string) error {
	now := time.Now()
	membership := domain.GroupMembership{
		UserID:    userID,
		GroupID:   groupID,
		Role:      domain.RoleMember,
		Status:    domain.MembershipStatusActive,
		IsBlocked: false,
		IsDeleted: false,
		JoinedAt:  now,
	}

	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "group_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":     domain.MembershipStatusActive,
			"is_blocked": false,
			"is_deleted": false,
			"updated_at": now,
		}),
	}).Create(&membership).Error
}

// Block upserts the pair with is_blocked set. An existing row keeps its
// status and is_deleted; a fresh row is created blocked with status=PENDING.
func (r *MembershipRepository) Block(ctx context.Context, userID, groupID string) error {
	now := time.Now()
	membership := domain.GroupMembership{
		UserID:    userID,
		GroupID:   groupID,
		Role:      domain.RoleMember,
		Status:    domain.MembershipStatusPending,
		IsBlocked: true,
		IsDeleted: false,
		JoinedAt:  now,
	}

	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "group_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"is_blocked": true,
			"updated_at": now,
		}),
	}).Create(&membership).Error
}

// Reactivate clears the soft-delete flag; updating a missing pair affects
// zero rows and is not an error.
func (r *MembershipRepository) Reactivate(ctx context.Context, userID, groupID string) error {
	return r.DB.WithContext(ctx).Model(&domain.GroupMembership{}).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Updates(map[string]interface{}{
			"status":     domain.MembershipStatusActive,
			"is_deleted": false,
			"updated_at": time.Now(),
		}).Error
}

// SoftDelete suspends the pair; updating a missing pair affects zero rows
// and is not an error.
func (r *MembershipRepository) SoftDelete(ctx context.Context, userID, groupID string) error {
	return r.DB.WithContext(ctx).Model(&domain.GroupMembership{}).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		Updates(map[string]interface{}{
			"status":     domain.MembershipStatusSuspended,
			"is_deleted": true,
			"updated_at": time.Now(),
		}).Error
}
