package transaction

import (
	"context"
	"fmt"
	"susuhub/domain"
	"susuhub/pkg/logger"

	"github.com/google/uuid"
)

// TransactionRepository contract interface
type TransactionRepository interface {
	Record(ctx context.Context, transaction *domain.Transaction) error
	FindByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
	FindGroupContributions(ctx context.Context, groupID string) ([]domain.ContributionEntry, error)
}

type TransactionService struct {
	transactionRepo TransactionRepository
}

func NewTransactionService(transactionRepo TransactionRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
	}
}

// Record persists the transaction and lets the repository settle the group
// pool for COMPLETED group transactions. Transactions are immutable after
// this point.
func (s *TransactionService) Record(ctx context.Context, transaction *domain.Transaction) error {
	if transaction.UserID == "" {
		return fmt.Errorf("%w: missing user id", domain.ErrValidation)
	}
	if transaction.Amount < 0 {
		return fmt.Errorf("%w: amount cannot be negative", domain.ErrValidation)
	}
	if !domain.ValidTransactionTypes[transaction.Type] {
		return fmt.Errorf("%w: invalid transaction type %q", domain.ErrValidation, transaction.Type)
	}
	if !domain.ValidTransactionStatuses[transaction.Status] {
		return fmt.Errorf("%w: invalid transaction status %q", domain.ErrValidation, transaction.Status)
	}

	if transaction.ID == "" {
		transaction.ID = uuid.NewString()
	}

	if err := s.transactionRepo.Record(ctx, transaction); err != nil {
		logger.Error("Failed to record transaction", err)
		return err
	}

	return nil
}

func (s *TransactionService) GetByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: missing user id", domain.ErrValidation)
	}

	transactions, err := s.transactionRepo.FindByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to get user transactions", err)
		return nil, err
	}

	return transactions, nil
}

func (s *TransactionService) GetGroupContributions(ctx context.Context, groupID string) ([]domain.ContributionEntry, error) {
	if groupID == "" {
		return nil, fmt.Errorf("%w: missing group id", domain.ErrValidation)
	}

	entries, err := s.transactionRepo.FindGroupContributions(ctx, groupID)
	if err != nil {
		logger.Error("Failed to get group contributions", err)
		return nil, err
	}

	return entries, nil
}
