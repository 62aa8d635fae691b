package profiles

import (
	"context"
	"errors"
	"testing"
	"time"

	"phishguard/internal/adapters/memory"
	"phishguard/internal/domain"
)

func TestGetLatest(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	if _, err := store.UpsertAggregate(ctx, "id-1", domain.Verdict{URL: "https://Shop.example", Status: domain.StatusSafe}, time.Now()); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	svc := New(store)

	rec, err := svc.GetLatest(ctx, "HTTPS://shop.EXAMPLE")
	if err != nil {
		t.Fatalf("get latest: %v", err)
	}
	if rec.ID != "id-1" || rec.ScanCount != 1 {
		t.Fatalf("record = %+v", rec)
	}

	_, err = svc.GetLatest(ctx, "https://other.example")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}
