package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mianwali/crop-advisory/internal/infrastructure/memory"
	"github.com/mianwali/crop-advisory/internal/infrastructure/seed"
)

var fixedNow = time.Date(2024, 12, 29, 8, 30, 0, 0, time.UTC)

// newSeededAdvisory builds an Advisory over the embedded seed with a fixed
// clock and the cheapest bcrypt cost.
func newSeededAdvisory(t *testing.T) *Advisory {
	t.Helper()
	d, err := seed.Default()
	if err != nil {
		t.Fatalf("load seed: %v", err)
	}
	catalog := memory.NewCatalogStore()
	users := memory.NewUserDirectory()
	if err := d.Populate(catalog, users, bcrypt.MinCost); err != nil {
		t.Fatalf("populate seed: %v", err)
	}
	return NewAdvisory(catalog, users, memory.NewAuditLog(), WithClock(func() time.Time { return fixedNow }))
}

func lastAudit(t *testing.T, a *Advisory) string {
	t.Helper()
	snap := a.AuditSnapshot(context.Background())
	if len(snap) == 0 {
		t.Fatalf("audit log is empty")
	}
	return snap[len(snap)-1].Message
}

func TestNewAdvisory_WritesInitEntry(t *testing.T) {
	a := newSeededAdvisory(t)

	snap := a.AuditSnapshot(context.Background())
	if len(snap) != 1 {
		t.Fatalf("expected 1 audit entry, got %d", len(snap))
	}
	if snap[0].Message != InitMessage {
		t.Fatalf("unexpected first entry: %q", snap[0].Message)
	}
	if !snap[0].Time.Equal(fixedNow) {
		t.Fatalf("entry not stamped with injected clock: %v", snap[0].Time)
	}
}

func TestAppendAudit_BoundedAt100(t *testing.T) {
	a := newSeededAdvisory(t)
	ctx := context.Background()

	for i := 1; i <= 101; i++ {
		a.AppendAudit(ctx, fmt.Sprintf("entry %d", i))
	}

	snap := a.AuditSnapshot(ctx)
	if len(snap) != memory.AuditCapacity {
		t.Fatalf("expected %d entries, got %d", memory.AuditCapacity, len(snap))
	}
	// The init entry and entry 1 have both been evicted.
	if snap[0].Message != "entry 2" {
		t.Fatalf("expected oldest entry to be 'entry 2', got %q", snap[0].Message)
	}
	if snap[99].Message != "entry 101" {
		t.Fatalf("expected newest entry to be 'entry 101', got %q", snap[99].Message)
	}
}
