package postgres

import (
	"context"
	"errors"
	"susuhub/domain"
	"time"

	"gorm.io/gorm"
)

type GroupRepository struct {
	DB *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{
		DB: db,
	}
}

// Create inserts the group and, when creatorID is set, its first ADMIN
// membership with members_count pinned to 1. One database transaction:
// on any failure nothing persists.
func (r *GroupRepository) Create(ctx context.Context, group *domain.SavingsGroup, creatorID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if creatorID != "" {
			group.MembersCount = 1
		}

		if err := tx.Create(group).Error; err != nil {
			return err
		}

		if creatorID == "" {
			return nil
		}

		membership := domain.GroupMembership{
			UserID:   creatorID,
			GroupID:  group.ID,
			Role:     domain.RoleAdmin,
			Status:   domain.MembershipStatusActive,
			JoinedAt: time.Now(),
		}

		return tx.Create(&membership).Error
	})
}

func (r *GroupRepository) FindByID(ctx context.Context, id string) (domain.SavingsGroup, error) {
	var group domain.SavingsGroup

	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SavingsGroup{}, domain.ErrNotFound
		}
		return domain.SavingsGroup{}, err
	}

	return group, nil
}

func (r *GroupRepository) FindAll(ctx context.Context) ([]domain.SavingsGroup, error) {
	var groups []domain.SavingsGroup

	if err := r.DB.WithContext(ctx).Order("name ASC").Find(&groups).Error; err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *GroupRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := r.DB.WithContext(ctx).Model(&domain.SavingsGroup{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

// FindByUser returns groups joined with the user's membership row for every
// non-suspended membership, most recently joined first.
func (r *GroupRepository) FindByUser(ctx context.Context, userID string) ([]domain.UserGroup, error) {
	var rows []domain.UserGroup

	err := r.DB.WithContext(ctx).
		Table("group_memberships").
		Select(`savings_groups.id, savings_groups.name, savings_groups.contribution_amount,
			savings_groups.currency, savings_groups.frequency, savings_groups.total_pool,
			savings_groups.members_count, savings_groups.invite_code, savings_groups.icon,
			group_memberships.role AS member_role, group_memberships.status AS member_status,
			group_memberships.joined_at`).
		Joins("JOIN savings_groups ON savings_groups.id = group_memberships.group_id").
		Where("group_memberships.user_id = ? AND group_memberships.status <> ?", userID, domain.MembershipStatusSuspended).
		Order("group_memberships.joined_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
