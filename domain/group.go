package domain

import (
	"time"

	"gorm.io/datatypes"
)

type SavingsGroup struct {
	ID                 string         `gorm:"primaryKey" json:"id"`
	Name               string         `gorm:"column:name;not null" json:"name"`
	ContributionAmount float64        `gorm:"column:contribution_amount" json:"contributionAmount"`
	Currency           string         `gorm:"column:currency" json:"currency"`
	Frequency          string         `gorm:"column:frequency" json:"frequency"`
	TotalPool          float64        `gorm:"column:total_pool;default:0" json:"totalPool"`
	MembersCount       int            `gorm:"column:members_count;default:0" json:"membersCount"`
	InviteCode         string         `gorm:"column:invite_code;unique" json:"inviteCode"`
	WelcomeMessage     string         `gorm:"column:welcome_message" json:"welcomeMessage"`
	Icon               string         `gorm:"column:icon" json:"icon"`
	PayoutSchedule     datatypes.JSON `gorm:"column:payout_schedule" json:"payoutSchedule,omitempty"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

func (SavingsGroup) TableName() string {
	return "savings_groups"
}

const (
	FrequencyWeekly   = "Weekly"
	FrequencyMonthly  = "Monthly"
	FrequencyBiWeekly = "Bi-Weekly"
)

var ValidFrequencies = map[string]bool{
	FrequencyWeekly:   true,
	FrequencyMonthly:  true,
	FrequencyBiWeekly: true,
}

// GroupPatch carries a partial update; nil fields are left unchanged.
// PayoutSchedule, when present, replaces the stored schedule wholesale.
type GroupPatch struct {
	Name               *string        `json:"name"`
	ContributionAmount *float64       `json:"contributionAmount"`
	Currency           *string        `json:"currency"`
	Frequency          *string        `json:"frequency"`
	WelcomeMessage     *string        `json:"welcomeMessage"`
	Icon               *string        `json:"icon"`
	PayoutSchedule     datatypes.JSON `json:"payoutSchedule"`
}

// UserGroup is a savings group joined with the caller's membership row,
// as returned by the user's-groups listing.
type UserGroup struct {
	ID                 string    `gorm:"column:id" json:"id"`
	Name               string    `gorm:"column:name" json:"name"`
	ContributionAmount float64   `gorm:"column:contribution_amount" json:"contributionAmount"`
	Currency           string    `gorm:"column:currency" json:"currency"`
	Frequency          string    `gorm:"column:frequency" json:"frequency"`
	TotalPool          float64   `gorm:"column:total_pool" json:"totalPool"`
	MembersCount       int       `gorm:"column:members_count" json:"membersCount"`
	InviteCode         string    `gorm:"column:invite_code" json:"inviteCode"`
	Icon               string    `gorm:"column:icon" json:"icon"`
	MemberRole         string    `gorm:"column:member_role" json:"memberRole"`
	MemberStatus       string    `gorm:"column:member_status" json:"memberStatus"`
	JoinedAt           time.Time `gorm:"column:joined_at" json:"joinedAt"`
}
