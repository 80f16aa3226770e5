package domain

import (
	"time"
)

// GroupMembership is the join row between a user and a savings group.
// Exactly one row per (user_id, group_id); lifecycle transitions mutate it
// in place and rows are only removed by cascade on user or group deletion.
type GroupMembership struct {
	UserID    string    `gorm:"column:user_id;primaryKey" json:"userId"`
	GroupID   string    `gorm:"column:group_id;primaryKey" json:"groupId"`
	Role      string    `gorm:"column:role;default:MEMBER" json:"role"`
	Status    string    `gorm:"column:status;default:ACTIVE" json:"status"`
	IsBlocked bool      `gorm:"column:is_blocked;default:false" json:"isBlocked"`
	IsDeleted bool      `gorm:"column:is_deleted;default:false" json:"isDeleted"`
	JoinedAt  time.Time `gorm:"column:joined_at" json:"joinedAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (GroupMembership) TableName() string {
	return "group_memberships"
}

const (
	MembershipStatusActive    = "ACTIVE"
	MembershipStatusPending   = "PENDING"
	MembershipStatusSuspended = "SUSPENDED"
	MembershipStatusInvited   = "INVITED"

	// MembershipStatusNotMember is synthetic: reported for a pair with no row.
	MembershipStatusNotMember = "NOT_MEMBER"
)

var ValidMembershipStatuses = map[string]bool{
	MembershipStatusActive:    true,
	MembershipStatusPending:   true,
	MembershipStatusSuspended: true,
	MembershipStatusInvited:   true,
}

// MembershipState is the externally visible status of a (user, group) pair.
type MembershipState struct {
	Status    string `json:"status"`
	IsBlocked bool   `json:"isBlocked"`
	IsDeleted bool   `json:"isDeleted"`
}
