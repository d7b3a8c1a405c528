package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/mmynk/tipsplit/internal/calculator"
	"github.com/mmynk/tipsplit/internal/form"
	"github.com/mmynk/tipsplit/internal/models"
	"github.com/mmynk/tipsplit/internal/storage"
)

type fakeRecorder struct {
	commits     []models.Receipt
	parseErrors []string
}

func (f *fakeRecorder) RecordCommit(r models.Receipt) { f.commits = append(f.commits, r) }

func (f *fakeRecorder) RecordParseError(billText string, err error) {
	f.parseErrors = append(f.parseErrors, billText)
}

// setupTestService creates a service backed by a fresh in-memory store
func setupTestService(t *testing.T) (*TipService, *fakeRecorder, func()) {
	t.Helper()

	store := storage.NewMemoryStore()
	rec := &fakeRecorder{}
	svc := NewTipService(store, rec)

	cleanup := func() {
		store.Close()
	}
	return svc, rec, cleanup
}

func TestCommit_StoresReceipt(t *testing.T) {
	svc, rec, cleanup := setupTestService(t)
	defer cleanup()

	state := form.State{BillText: "100 ", TipFraction: 0.2, SplitCount: 4}
	receipt, err := svc.Commit(context.Background(), state)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	if receipt.ID == "" {
		t.Error("expected receipt ID to be assigned")
	}
	if receipt.BillText != "100" {
		t.Errorf("BillText = %q, want 100", receipt.BillText)
	}
	if receipt.TipPercentage != 20 || receipt.SplitBy != 4 {
		t.Errorf("unexpected tip/split: %+v", receipt)
	}
	if math.Abs(receipt.TotalTip-20) > 0.001 {
		t.Errorf("TotalTip = %v, want 20", receipt.TotalTip)
	}
	if math.Abs(receipt.TotalPerPerson-30) > 0.001 {
		t.Errorf("TotalPerPerson = %v, want 30", receipt.TotalPerPerson)
	}
	if math.Abs(receipt.Total()-120) > 0.001 {
		t.Errorf("Total() = %v, want 120", receipt.Total())
	}
	if len(rec.commits) != 1 || rec.commits[0].ID != receipt.ID {
		t.Errorf("recorder commits = %+v", rec.commits)
	}
}

func TestCommit_InvalidBill(t *testing.T) {
	svc, rec, cleanup := setupTestService(t)
	defer cleanup()

	_, err := svc.Commit(context.Background(), form.State{BillText: "ten", SplitCount: 1})
	if !errors.Is(err, calculator.ErrInvalidBill) {
		t.Fatalf("Commit error = %v, want ErrInvalidBill", err)
	}
	if len(rec.parseErrors) != 1 || rec.parseErrors[0] != "ten" {
		t.Errorf("recorder parse errors = %v, want [ten]", rec.parseErrors)
	}

	recent, err := svc.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 0 {
		t.Errorf("expected nothing stored, got %d receipts", len(recent))
	}
}

func TestCommit_LeadingSpaceIsNotANumber(t *testing.T) {
	svc, rec, cleanup := setupTestService(t)
	defer cleanup()

	_, err := svc.Commit(context.Background(), form.State{BillText: " 50", SplitCount: 1})
	if !errors.Is(err, calculator.ErrInvalidBill) {
		t.Fatalf("Commit error = %v, want ErrInvalidBill", err)
	}
	if len(rec.commits) != 0 {
		t.Errorf("expected no commits, got %+v", rec.commits)
	}
	if len(rec.parseErrors) != 1 || rec.parseErrors[0] != "50" {
		t.Errorf("recorder parse errors = %q, want [50]", rec.parseErrors)
	}
}

func TestCommit_NilRecorder(t *testing.T) {
	svc := NewTipService(storage.NewMemoryStore(), nil)

	if _, err := svc.Commit(context.Background(), form.State{BillText: "12", SplitCount: 2}); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if _, err := svc.Commit(context.Background(), form.State{BillText: "x", SplitCount: 2}); err == nil {
		t.Error("expected parse error")
	}
}

func TestRecent_Limit(t *testing.T) {
	svc, _, cleanup := setupTestService(t)
	defer cleanup()

	ctx := context.Background()
	for _, bill := range []string{"10", "20", "30", "40"} {
		if _, err := svc.Commit(ctx, form.State{BillText: bill, SplitCount: 1}); err != nil {
			t.Fatalf("Commit(%s) failed: %v", bill, err)
		}
	}

	recent, err := svc.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 receipts, got %d", len(recent))
	}
	if recent[0].BillText != "40" || recent[1].BillText != "30" {
		t.Errorf("Recent order = [%s %s], want [40 30]", recent[0].BillText, recent[1].BillText)
	}
}
