package transaction

import (
	"context"
	"errors"
	"fmt"
	"susuhub/domain"
	"susuhub/internal/repository/postgres"
	"susuhub/pkg/database"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*TransactionService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return NewTransactionService(postgres.NewTransactionRepository(db)), db
}

func seedGroup(t *testing.T, db *gorm.DB, id string, pool float64) {
	t.Helper()
	group := domain.SavingsGroup{ID: id, Name: "Market Women Circle", InviteCode: "INV-" + id, TotalPool: pool}
	if err := db.Create(&group).Error; err != nil {
		t.Fatalf("failed to seed group: %v", err)
	}
}

func groupPool(t *testing.T, db *gorm.DB, id string) float64 {
	t.Helper()
	var group domain.SavingsGroup
	if err := db.Where("id = ?", id).First(&group).Error; err != nil {
		t.Fatalf("failed to load group: %v", err)
	}
	return group.TotalPool
}

func TestCompletedContributionAddsToPool(t *testing.T) {
	svc, db := newTestService(t)
	seedGroup(t, db, "g1", 100)

	err := svc.Record(context.Background(), &domain.Transaction{
		ID: "t1", UserID: "u1", GroupID: "g1",
		Type: domain.TransactionContribution, Amount: 50, Status: domain.TransactionCompleted,
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if pool := groupPool(t, db, "g1"); pool != 150 {
		t.Errorf("total_pool = %v, want 150", pool)
	}
}

func TestCompletedPayoutSubtractsFromPool(t *testing.T) {
	svc, db := newTestService(t)
	seedGroup(t, db, "g1", 150)

	err := svc.Record(context.Background(), &domain.Transaction{
		ID: "t1", UserID: "u1", GroupID: "g1",
		Type: domain.TransactionPayout, Amount: 30, Status: domain.TransactionCompleted,
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if pool := groupPool(t, db, "g1"); pool != 120 {
		t.Errorf("total_pool = %v, want 120", pool)
	}
}

// Every non-CONTRIBUTION type subtracts, DEPOSIT included.
func TestCompletedDepositSubtractsFromPool(t *testing.T) {
	svc, db := newTestService(t)
	seedGroup(t, db, "g1", 100)

	err := svc.Record(context.Background(), &domain.Transaction{
		ID: "t1", UserID: "u1", GroupID: "g1",
		Type: domain.TransactionDeposit, Amount: 40, Status: domain.TransactionCompleted,
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if pool := groupPool(t, db, "g1"); pool != 60 {
		t.Errorf("total_pool = %v, want 60", pool)
	}
}

func TestPendingTransactionLeavesPoolUntouched(t *testing.T) {
	svc, db := newTestService(t)
	seedGroup(t, db, "g1", 100)

	err := svc.Record(context.Background(), &domain.Transaction{
		ID: "t1", UserID: "u1", GroupID: "g1",
		Type: domain.TransactionContribution, Amount: 999, Status: domain.TransactionPending,
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if pool := groupPool(t, db, "g1"); pool != 100 {
		t.Errorf("total_pool = %v, want 100 (pending must not settle)", pool)
	}

	var count int64
	db.Model(&domain.Transaction{}).Count(&count)
	if count != 1 {
		t.Errorf("transaction row count = %d, want 1", count)
	}
}

func TestPersonalTransactionSkipsPool(t *testing.T) {
	svc, db := newTestService(t)
	seedGroup(t, db, "g1", 100)

	err := svc.Record(context.Background(), &domain.Transaction{
		ID: "t1", UserID: "u1",
		Type: domain.TransactionDeposit, Amount: 25, Status: domain.TransactionCompleted,
	})
	if err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	if pool := groupPool(t, db, "g1"); pool != 100 {
		t.Errorf("total_pool = %v, want 100 (no group id)", pool)
	}
}

func TestRecordRejectsBadInput(t *testing.T) {
	svc, db := newTestService(t)

	cases := []struct {
		name string
		tx   domain.Transaction
	}{
		{"missing user", domain.Transaction{Type: domain.TransactionFee, Amount: 1, Status: domain.TransactionCompleted}},
		{"negative amount", domain.Transaction{UserID: "u1", Type: domain.TransactionFee, Amount: -1, Status: domain.TransactionCompleted}},
		{"bad type", domain.Transaction{UserID: "u1", Type: "REFUND", Amount: 1, Status: domain.TransactionCompleted}},
		{"bad status", domain.Transaction{UserID: "u1", Type: domain.TransactionFee, Amount: 1, Status: "DONE"}},
	}
	for _, tc := range cases {
		tx := tc.tx
		if err := svc.Record(context.Background(), &tx); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("%s: err = %v, want validation error", tc.name, err)
		}
	}

	var count int64
	db.Model(&domain.Transaction{}).Count(&count)
	if count != 0 {
		t.Errorf("rejected input reached the store: %d rows", count)
	}
}

func TestGetByUserNewestFirst(t *testing.T) {
	svc, db := newTestService(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		tx := domain.Transaction{
			ID: fmt.Sprintf("t%d", i), UserID: "u1",
			Type: domain.TransactionDeposit, Amount: float64(i), Status: domain.TransactionPending,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
		if err := db.Create(&tx).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	transactions, err := svc.GetByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetByUser failed: %v", err)
	}
	if len(transactions) != 3 {
		t.Fatalf("got %d transactions, want 3", len(transactions))
	}
	if transactions[0].ID != "t2" || transactions[2].ID != "t0" {
		t.Errorf("transactions not newest-first: %v, %v, %v", transactions[0].ID, transactions[1].ID, transactions[2].ID)
	}
}

func TestGroupContributionsJoinUserName(t *testing.T) {
	svc, db := newTestService(t)
	seedGroup(t, db, "g1", 0)

	user := domain.User{ID: "u1", Name: "Ama Serwaa", Email: "ama@example.com"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	if err := svc.Record(context.Background(), &domain.Transaction{
		ID: "t1", UserID: "u1", GroupID: "g1",
		Type: domain.TransactionContribution, Amount: 10, Status: domain.TransactionCompleted,
	}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := svc.Record(context.Background(), &domain.Transaction{
		ID: "t2", UserID: "u1", GroupID: "g1",
		Type: domain.TransactionPayout, Amount: 5, Status: domain.TransactionCompleted,
	}); err != nil {
		t.Fatalf("Record failed: %v", err)
	}

	entries, err := svc.GetGroupContributions(context.Background(), "g1")
	if err != nil {
		t.Fatalf("GetGroupContributions failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 (contributions only)", len(entries))
	}
	if entries[0].UserName != "Ama Serwaa" {
		t.Errorf("user name = %q, want joined name", entries[0].UserName)
	}
}
