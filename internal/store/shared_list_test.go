package store

import (
	"testing"

	"github.com/dpetersen/larder/internal/database"
)

func setupSharedListTestDB(t *testing.T) *SharedListStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSharedListStore(db)
}

func TestSharedListPartition(t *testing.T) {
	ss := setupSharedListTestDB(t)

	family := "Smith#2"
	ss.Create("Bread", &family, 1, "2026-09-01T09:00:00Z", nil)
	ss.Create("Cheese", &family, 2, "2026-09-01T09:05:00Z", nil)
	ss.Create("Birthday gift", nil, 1, "2026-09-01T09:10:00Z", strptr("for mom"))

	// Family scope sees every family row, whoever added it.
	items, err := ss.ListByFamily("Smith#2")
	if err != nil {
		t.Fatalf("list by family: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 family items, got %d", len(items))
	}
	for _, item := range items {
		if item.FamilyID == nil || *item.FamilyID != "Smith#2" {
			t.Errorf("family_id = %v, want Smith#2", item.FamilyID)
		}
	}

	// Personal scope sees only the creator's unshared rows, never the
	// family rows the same user added.
	items, err = ss.ListPersonal(1)
	if err != nil {
		t.Fatalf("list personal: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 personal item, got %d", len(items))
	}
	if items[0].Name != "Birthday gift" {
		t.Errorf("name = %q, want %q", items[0].Name, "Birthday gift")
	}
	if items[0].Notes == nil || *items[0].Notes != "for mom" {
		t.Errorf("notes = %v, want 'for mom'", items[0].Notes)
	}
}

func TestSharedListPersonalExcludesOtherUsers(t *testing.T) {
	ss := setupSharedListTestDB(t)

	ss.Create("Mine", nil, 1, "2026-09-01T09:00:00Z", nil)
	ss.Create("Theirs", nil, 2, "2026-09-01T09:00:00Z", nil)

	items, err := ss.ListPersonal(1)
	if err != nil {
		t.Fatalf("list personal: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Mine" {
		t.Fatalf("expected only user 1's item, got %v", items)
	}
}

func TestSharedListFamilyNoMatch(t *testing.T) {
	ss := setupSharedListTestDB(t)

	family := "Smith#2"
	ss.Create("Bread", &family, 1, "2026-09-01T09:00:00Z", nil)

	items, err := ss.ListByFamily("Smith")
	if err != nil {
		t.Fatalf("list by family: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items for different family id, got %d", len(items))
	}
}

func TestSharedListDelete(t *testing.T) {
	ss := setupSharedListTestDB(t)

	ss.Create("Bread", nil, 1, "2026-09-01T09:00:00Z", nil)
	items, _ := ss.ListPersonal(1)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	count, err := ss.Delete(items[0].ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if count != 1 {
		t.Fatalf("deleted %d rows, want 1", count)
	}

	count, err = ss.Delete(items[0].ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if count != 0 {
		t.Fatalf("deleted %d rows, want 0", count)
	}
}
