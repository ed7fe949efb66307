package scan

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/xpenseai/expense-tracker/internal/entity"
)

func openTestStore(t *testing.T) *BoltStore {
	t.Helper()
	store, err := NewBoltStore(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestBoltStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)

	snap := Snapshot{
		ID: "sess-1",
		Items: []entity.DraftItem{
			{ID: uuid.New(), Description: "MILK 2 PCT", Amount: "3.49", Category: "Food"},
		},
		Summary:   entity.ReceiptSummary{Subtotal: "3.49", Tax: "0.00", Total: "3.49", Store: "ACME"},
		ReceiptID: "photo-9",
		SavedAt:   time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
	if err := store.Save(snap); err != nil {
		t.Fatal(err)
	}

	got, found, err := store.Load("sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Fatal("snapshot not found after save")
	}
	if got.ID != snap.ID || len(got.Items) != 1 || got.Items[0].ID != snap.Items[0].ID {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if got.Summary != snap.Summary || got.ReceiptID != snap.ReceiptID {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestBoltStoreSaveReplaces(t *testing.T) {
	store := openTestStore(t)

	if err := store.Save(Snapshot{ID: "sess-1", ReceiptID: "a"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Save(Snapshot{ID: "sess-1", ReceiptID: "b"}); err != nil {
		t.Fatal(err)
	}

	got, found, err := store.Load("sess-1")
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if got.ReceiptID != "b" {
		t.Fatalf("save did not replace, got %q", got.ReceiptID)
	}
}

func TestBoltStoreMissingAndDelete(t *testing.T) {
	store := openTestStore(t)

	if _, found, err := store.Load("nope"); err != nil || found {
		t.Fatalf("missing id: found=%v err=%v", found, err)
	}
	// deleting a missing id is a no-op
	if err := store.Delete("nope"); err != nil {
		t.Fatal(err)
	}

	if err := store.Save(Snapshot{ID: "sess-1"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete("sess-1"); err != nil {
		t.Fatal(err)
	}
	if _, found, _ := store.Load("sess-1"); found {
		t.Fatal("snapshot survived delete")
	}
}
