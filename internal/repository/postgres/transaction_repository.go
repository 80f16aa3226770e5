package postgres

import (
	"context"
	"susuhub/domain"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{
		DB: db,
	}
}

// Record inserts the transaction and, iff it targets a group and is already
// COMPLETED, adjusts that group's total_pool in the same database
// transaction: contributions add to the pool, every other type subtracts.
func (r *TransactionRepository) Record(ctx context.Context, transaction *domain.Transaction) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}

		if transaction.GroupID == "" || transaction.Status != domain.TransactionCompleted {
			return nil
		}

		delta := transaction.Amount
		if transaction.Type != domain.TransactionContribution {
			delta = -transaction.Amount
		}

		return tx.Model(&domain.SavingsGroup{}).
			Where("id = ?", transaction.GroupID).
			Update("total_pool", gorm.Expr("total_pool + ?", delta)).Error
	})
}

func (r *TransactionRepository) FindByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	var transactions []domain.Transaction

	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// FindGroupContributions returns the group's CONTRIBUTION transactions
// joined with the contributor's name, newest first.
func (r *TransactionRepository) FindGroupContributions(ctx context.Context, groupID string) ([]domain.ContributionEntry, error) {
	var entries []domain.ContributionEntry

	err := r.DB.WithContext(ctx).
		Table("transactions").
		Select(`transactions.id, transactions.user_id, users.name AS user_name,
			transactions.group_id, transactions.amount, transactions.status, transactions.created_at`).
		Joins("JOIN users ON users.id = transactions.user_id").
		Where("transactions.group_id = ? AND transactions.type = ?", groupID, domain.TransactionContribution).
		Order("transactions.created_at DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}
