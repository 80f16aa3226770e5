package domain

import (
	"time"
)

// Transaction is immutable once created; completion is recorded by inserting
// it already COMPLETED. GroupID is empty for personal transactions.
type Transaction struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;index;not null" json:"userId"`
	GroupID   string    `gorm:"column:group_id;index" json:"groupId,omitempty"`
	Type      string    `gorm:"column:type" json:"type"`
	Amount    float64   `gorm:"column:amount" json:"amount"`
	Status    string    `gorm:"column:status" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Transaction) TableName() string {
	return "transactions"
}

const (
	TransactionContribution = "CONTRIBUTION"
	TransactionPayout       = "PAYOUT"
	TransactionWithdrawal   = "WITHDRAWAL"
	TransactionDeposit      = "DEPOSIT"
	TransactionFee          = "FEE"
)

const (
	TransactionCompleted = "COMPLETED"
	TransactionPending   = "PENDING"
	TransactionFailed    = "FAILED"
)

var ValidTransactionTypes = map[string]bool{
	TransactionContribution: true,
	TransactionPayout:       true,
	TransactionWithdrawal:   true,
	TransactionDeposit:      true,
	TransactionFee:          true,
}

var ValidTransactionStatuses = map[string]bool{
	TransactionCompleted: true,
	TransactionPending:   true,
	TransactionFailed:    true,
}

// ContributionEntry is a contribution transaction joined with the
// contributor's name for the group contributions listing.
type ContributionEntry struct {
	ID        string    `gorm:"column:id" json:"id"`
	UserID    string    `gorm:"column:user_id" json:"userId"`
	UserName  string    `gorm:"column:user_name" json:"userName"`
	GroupID   string    `gorm:"column:group_id" json:"groupId"`
	Amount    float64   `gorm:"column:amount" json:"amount"`
	Status    string    `gorm:"column:status" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}
