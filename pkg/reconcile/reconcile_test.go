package reconcile

import (
	"testing"

	"tableflip.dev/checklist/pkg/checklist"
	"tableflip.dev/checklist/pkg/palette"
	"tableflip.dev/checklist/pkg/store"
)

func TestItemsOverridesWin(t *testing.T) {
	o := store.NewMemory()
	if err := o.SetItemCompletion("c1", "x", true); err != nil {
		t.Fatalf("seed completion: %v", err)
	}
	if err := o.SetItemName("c1", "y", "Renamed"); err != nil {
		t.Fatalf("seed name: %v", err)
	}

	raws := []checklist.Raw{
		{"id": "x", "name": "Milk", "completed": false},
		{"id": "y", "completed": true},
	}
	items := Items("c1", raws, o)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if !items[0].Completed {
		t.Errorf("completion override should beat the server flag")
	}
	if items[0].Name != "Milk" {
		t.Errorf("server name should survive, got %q", items[0].Name)
	}
	if items[1].Name != "Renamed" {
		t.Errorf("name override should fill the missing server name, got %q", items[1].Name)
	}
	if !items[1].Completed {
		t.Errorf("server completion should survive without an override")
	}
}

func TestItemsUntitledFallback(t *testing.T) {
	o := store.NewMemory()
	items := Items("c1", []checklist.Raw{{"id": "x"}}, o)
	if items[0].Name != checklist.UntitledItem {
		t.Fatalf("expected untitled placeholder, got %q", items[0].Name)
	}
}

func TestItemsIdempotent(t *testing.T) {
	o := store.NewMemory()
	if err := o.SetItemCompletion("c1", "x", true); err != nil {
		t.Fatalf("seed completion: %v", err)
	}
	raws := []checklist.Raw{{"id": "x", "name": "Milk"}}

	first := Items("c1", raws, o)
	second := Items("c1", raws, o)
	if len(first) != len(second) {
		t.Fatalf("reconciling twice changed the item count")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("reconciling twice changed item %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestChecklistsColorOverride(t *testing.T) {
	o := store.NewMemory()
	if err := o.SetColor("c1", "green"); err != nil {
		t.Fatalf("seed color: %v", err)
	}
	if err := o.SetColor("c2", "red"); err != nil {
		t.Fatalf("seed color: %v", err)
	}

	raws := []checklist.Raw{
		{"id": "c1", "name": "Groceries"},
		{"id": "c2", "name": "Chores", "color": "blue"},
	}
	lists := Checklists(raws, o)
	if lists[0].Color != "green" {
		t.Errorf("override should fill the missing server color, got %q", lists[0].Color)
	}
	if lists[1].Color != "blue" {
		t.Errorf("a deliberate server color should not be masked, got %q", lists[1].Color)
	}
}

func TestChecklistsDefaults(t *testing.T) {
	o := store.NewMemory()
	lists := Checklists([]checklist.Raw{{"id": "c1"}}, o)
	if lists[0].Name != checklist.DefaultName {
		t.Errorf("expected default name, got %q", lists[0].Name)
	}
	if lists[0].Color != palette.Default {
		t.Errorf("expected default color, got %q", lists[0].Color)
	}
}

func TestSortOrderOverride(t *testing.T) {
	lists := []checklist.Checklist{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	got := Sort(lists, []string{"c", "a"})
	want := []string{"c", "a", "b"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestDetailColorKeyedByChecklistID(t *testing.T) {
	o := store.NewMemory()
	if err := o.SetColor("c1", "purple"); err != nil {
		t.Fatalf("seed color: %v", err)
	}
	// Metadata fetch failed, meta is empty.
	c := Detail("c1", checklist.Raw{}, o)
	if c.ID != "c1" {
		t.Errorf("detail must keep the requested id, got %q", c.ID)
	}
	if c.Color != "purple" {
		t.Errorf("color override should apply to the requested id, got %q", c.Color)
	}
	if c.Name != "My Checklist" {
		t.Errorf("expected detail fallback name, got %q", c.Name)
	}
}
