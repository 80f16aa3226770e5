package membership

import (
	"context"
	"errors"
	"fmt"
	"susuhub/domain"
	"susuhub/internal/repository/postgres"
	"susuhub/pkg/database"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*MembershipService, *postgres.MembershipRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	repo := postgres.NewMembershipRepository(db)
	return NewMembershipService(repo), repo
}

func TestJoinCreatesActiveMembership(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	if err := svc.Join(ctx, "u1", "g1"); err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	state, err := svc.GetStatus(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if state.Status != domain.MembershipStatusActive || state.IsBlocked || state.IsDeleted {
		t.Errorf("unexpected state after join: %+v", state)
	}

	row, err := repo.Find(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if row.Role != domain.RoleMember {
		t.Errorf("fresh join role = %q, want %q", row.Role, domain.RoleMember)
	}
}

func TestJoinIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := svc.Join(ctx, "u1", "g1"); err != nil {
			t.Fatalf("Join #%d failed: %v", i+1, err)
		}
	}

	state, err := svc.GetStatus(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if state.Status != domain.MembershipStatusActive || state.IsBlocked || state.IsDeleted {
		t.Errorf("unexpected state after repeated joins: %+v", state)
	}
}

func TestBlockAfterJoinKeepsStatus(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.Join(ctx, "u1", "g1"); err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if err := svc.Block(ctx, "u1", "g1"); err != nil {
		t.Fatalf("Block failed: %v", err)
	}

	state, err := svc.GetStatus(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if !state.IsBlocked {
		t.Error("expected is_blocked=true after block")
	}
	if state.Status != domain.MembershipStatusActive {
		t.Errorf("block changed status to %q, want it untouched (%q)", state.Status, domain.MembershipStatusActive)
	}
	if state.IsDeleted {
		t.Error("block must not touch is_deleted")
	}
}

func TestBlockWithoutExistingRow(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.Block(ctx, "u1", "g1"); err != nil {
		t.Fatalf("Block failed: %v", err)
	}

	state, err := svc.GetStatus(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if state.Status != domain.MembershipStatusPending || !state.IsBlocked || state.IsDeleted {
		t.Errorf("fresh block state = %+v, want PENDING/blocked/not-deleted", state)
	}
}

func TestJoinAfterBlockClearsBlock(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.Block(ctx, "u1", "g1"); err != nil {
		t.Fatalf("Block failed: %v", err)
	}
	if err := svc.Join(ctx, "u1", "g1"); err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	state, err := svc.GetStatus(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if state.IsBlocked {
		t.Error("join must clear is_blocked")
	}
	if state.Status != domain.MembershipStatusActive {
		t.Errorf("status after join = %q, want ACTIVE", state.Status)
	}
}

func TestSoftDeleteAndReactivate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.Join(ctx, "u1", "g1"); err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	if err := svc.SoftDelete(ctx, "u1", "g1"); err != nil {
		t.Fatalf("SoftDelete failed: %v", err)
	}
	state, err := svc.GetStatus(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if state.Status != domain.MembershipStatusSuspended || !state.IsDeleted {
		t.Errorf("state after soft delete = %+v, want SUSPENDED/deleted", state)
	}

	if err := svc.Reactivate(ctx, "u1", "g1"); err != nil {
		t.Fatalf("Reactivate failed: %v", err)
	}
	state, err = svc.GetStatus(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if state.Status != domain.MembershipStatusActive || state.IsDeleted {
		t.Errorf("state after reactivate = %+v, want ACTIVE/not-deleted", state)
	}
}

func TestReactivateMissingPairIsNoop(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.Reactivate(ctx, "u1", "g1"); err != nil {
		t.Fatalf("Reactivate on missing pair returned error: %v", err)
	}

	state, err := svc.GetStatus(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if state.Status != domain.MembershipStatusNotMember {
		t.Errorf("reactivate on missing pair created a row: %+v", state)
	}
}

func TestSoftDeleteMissingPairIsNoop(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.SoftDelete(ctx, "u1", "g1"); err != nil {
		t.Fatalf("SoftDelete on missing pair returned error: %v", err)
	}

	state, err := svc.GetStatus(ctx, "u1", "g1")
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if state.Status != domain.MembershipStatusNotMember {
		t.Errorf("soft delete on missing pair created a row: %+v", state)
	}
}

func TestGetStatusMissingPair(t *testing.T) {
	svc, _ := newTestService(t)

	state, err := svc.GetStatus(context.Background(), "u1", "g1")
	if err != nil {
		t.Fatalf("GetStatus failed: %v", err)
	}
	if state.Status != domain.MembershipStatusNotMember || state.IsBlocked || state.IsDeleted {
		t.Errorf("missing pair state = %+v, want NOT_MEMBER with both flags false", state)
	}
}

func TestOperationsRejectMissingIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ops := map[string]func() error{
		"join":       func() error { return svc.Join(ctx, "", "g1") },
		"block":      func() error { return svc.Block(ctx, "u1", "") },
		"reactivate": func() error { return svc.Reactivate(ctx, "", "") },
		"softDelete": func() error { return svc.SoftDelete(ctx, "", "g1") },
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("%s with missing id: err = %v, want validation error", name, err)
		}
	}

	if _, err := svc.GetStatus(ctx, "u1", ""); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("getStatus with missing group id: err = %v, want validation error", err)
	}
}
