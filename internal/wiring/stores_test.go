package wiring

import (
	"context"
	"testing"

	"phishguard/internal/adapters/memory"
)

func TestOpenWithoutDatabaseURLUsesMemory(t *testing.T) {
	st, err := Open(context.Background(), "", true)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer st.Close()
	if st.DB != nil {
		t.Fatalf("expected no postgres handle")
	}
	if _, ok := st.Ledger.(*memory.Store); !ok {
		t.Fatalf("ledger = %T", st.Ledger)
	}
	if any(st.Ledger) != any(st.Aggregates) {
		t.Fatalf("ledger and aggregates should share one store")
	}
}

func TestOpenBadDatabaseURL(t *testing.T) {
	if _, err := Open(context.Background(), "postgres://%zz", false); err == nil {
		t.Fatalf("expected parse error")
	}
}
