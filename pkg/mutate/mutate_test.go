package mutate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"tableflip.dev/checklist/pkg/api"
	"tableflip.dev/checklist/pkg/checklist"
	"tableflip.dev/checklist/pkg/store"
	"tableflip.dev/checklist/pkg/view"
)

// fakeService is an in-memory stand-in for the checklist backend, speaking
// the same envelope protocol. Individual endpoints can be switched to fail
// to exercise rollback paths.
type fakeService struct {
	mu     sync.Mutex
	nextID int
	lists  map[string]checklist.Raw
	items  map[string][]checklist.Raw

	failRename bool
	failStatus bool
	failDelete bool
}

func newFakeService() *fakeService {
	return &fakeService{
		lists: map[string]checklist.Raw{},
		items: map[string][]checklist.Raw{},
	}
}

func (f *fakeService) id() string {
	f.nextID++
	return fmt.Sprintf("srv%d", f.nextID)
}

func (f *fakeService) send(w http.ResponseWriter, data any) {
	raw, _ := json.Marshal(data)
	_ = json.NewEncoder(w).Encode(api.Envelope{StatusCode: 200, Data: raw})
}

func (f *fakeService) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /checklist", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		out := []checklist.Raw{}
		for _, c := range f.lists {
			out = append(out, c)
		}
		f.send(w, out)
	})
	mux.HandleFunc("POST /checklist", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		var body checklist.Raw
		_ = json.NewDecoder(r.Body).Decode(&body)
		id := f.id()
		body["id"] = id
		f.lists[id] = body
		f.send(w, body)
	})
	mux.HandleFunc("GET /checklist/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.send(w, f.lists[r.PathValue("id")])
	})
	mux.HandleFunc("DELETE /checklist/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failDelete {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		delete(f.lists, r.PathValue("id"))
		delete(f.items, r.PathValue("id"))
		f.send(w, nil)
	})
	mux.HandleFunc("GET /checklist/{id}/item", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.send(w, f.items[r.PathValue("id")])
	})
	mux.HandleFunc("POST /checklist/{id}/item", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		var body checklist.Raw
		_ = json.NewDecoder(r.Body).Decode(&body)
		body["id"] = f.id()
		cid := r.PathValue("id")
		f.items[cid] = append(f.items[cid], body)
		f.send(w, body)
	})
	mux.HandleFunc("PUT /checklist/{id}/item/{itemId}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failStatus {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var body checklist.Raw
		_ = json.NewDecoder(r.Body).Decode(&body)
		for _, it := range f.items[r.PathValue("id")] {
			if it["id"] == r.PathValue("itemId") {
				for k, v := range body {
					it[k] = v
				}
			}
		}
		f.send(w, nil)
	})
	mux.HandleFunc("PUT /checklist/{id}/item/rename/{itemId}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.failRename {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		var body checklist.Raw
		_ = json.NewDecoder(r.Body).Decode(&body)
		for _, it := range f.items[r.PathValue("id")] {
			if it["id"] == r.PathValue("itemId") {
				it["name"] = body["name"]
			}
		}
		f.send(w, nil)
	})
	mux.HandleFunc("DELETE /checklist/{id}/item/{itemId}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		cid := r.PathValue("id")
		kept := f.items[cid][:0]
		for _, it := range f.items[cid] {
			if it["id"] != r.PathValue("itemId") {
				kept = append(kept, it)
			}
		}
		f.items[cid] = kept
		f.send(w, nil)
	})

	return mux
}

func setup(t *testing.T) (*fakeService, *api.Client, store.Overrides) {
	t.Helper()
	f := newFakeService()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	return f, api.New(srv.URL, "tok"), store.NewMemory()
}

func TestCreateChecklistSwapsServerID(t *testing.T) {
	_, client, overrides := setup(t)
	ctx := context.Background()

	m := ForDashboard(client, overrides)
	if err := m.Reload(ctx); err != nil {
		t.Fatalf("initial load: %v", err)
	}

	if err := m.CreateChecklist(ctx, "Groceries", "green"); err != nil {
		t.Fatalf("create checklist: %v", err)
	}

	lists := m.Model.Lists()
	if len(lists) != 1 {
		t.Fatalf("expected 1 checklist, got %d", len(lists))
	}
	if strings.HasPrefix(lists[0].ID, "tmp_") {
		t.Errorf("temporary id should be swapped for the server id, got %q", lists[0].ID)
	}
	if lists[0].Name != "Groceries" || lists[0].Color != "green" {
		t.Errorf("unexpected checklist: %+v", lists[0])
	}
	if overrides.Colors()[lists[0].ID] != "green" {
		t.Errorf("color override should be persisted under the server id")
	}
}

func TestCreateToggleRoundTrip(t *testing.T) {
	f, client, overrides := setup(t)
	ctx := context.Background()

	dash := ForDashboard(client, overrides)
	if err := dash.Reload(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := dash.CreateChecklist(ctx, "Groceries", "green"); err != nil {
		t.Fatalf("create checklist: %v", err)
	}
	cid := dash.Model.Lists()[0].ID

	m := ForChecklist(client, overrides, cid)
	if err := m.Reload(ctx); err != nil {
		t.Fatalf("load detail: %v", err)
	}

	if err := m.CreateItem(ctx, cid, "Milk"); err != nil {
		t.Fatalf("create item: %v", err)
	}
	c, ok := m.Model.Find(cid)
	if !ok || len(c.Items) != 1 {
		t.Fatalf("expected 1 item, got %+v", c)
	}
	itemID := c.Items[0].ID
	if strings.HasPrefix(itemID, "tmp_") {
		t.Fatalf("item should carry the server id, got %q", itemID)
	}
	if overrides.ItemNames(cid)[itemID] != "Milk" {
		t.Errorf("name override should be persisted under the server id")
	}

	if err := m.ToggleItem(ctx, cid, itemID, true); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	c, _ = m.Model.Find(cid)
	completed, total := c.Counts()
	if completed != 1 || total != 1 {
		t.Fatalf("expected 1/1, got %d/%d", completed, total)
	}
	if view.Percent(completed, total) != 100 {
		t.Fatalf("expected 100%%")
	}
	if got := overrides.ItemCompletion(cid)[itemID]; !got {
		t.Errorf("completion override should record the toggle")
	}
	if len(f.items[cid]) != 1 {
		t.Errorf("server should hold the item")
	}
}

func TestRenameFailureRollsBack(t *testing.T) {
	f, client, overrides := setup(t)
	ctx := context.Background()

	dash := ForDashboard(client, overrides)
	_ = dash.Reload(ctx)
	if err := dash.CreateChecklist(ctx, "Groceries", "green"); err != nil {
		t.Fatalf("create checklist: %v", err)
	}
	cid := dash.Model.Lists()[0].ID

	m := ForChecklist(client, overrides, cid)
	if err := m.Reload(ctx); err != nil {
		t.Fatalf("load detail: %v", err)
	}
	if err := m.CreateItem(ctx, cid, "Milk"); err != nil {
		t.Fatalf("create item: %v", err)
	}
	c, _ := m.Model.Find(cid)
	itemID := c.Items[0].ID

	f.failRename = true
	err := m.RenameItem(ctx, cid, itemID, "Oat milk")
	if err == nil {
		t.Fatalf("expected rename to fail")
	}
	if m.Model.Error() == "" {
		t.Errorf("expected an error banner after a failed rename")
	}
	c, _ = m.Model.Find(cid)
	if len(c.Items) != 1 {
		t.Fatalf("rollback lost the item: %+v", c)
	}
	// The rollback reload refetches from the server, whose name field is
	// intact, so the optimistic rename is discarded.
	if c.Items[0].Name != "Milk" {
		t.Fatalf("expected the server name after rollback, got %q", c.Items[0].Name)
	}
	if f.items[cid][0]["name"] != "Milk" {
		t.Fatalf("server name should be unchanged after the failure")
	}
	// The name override must not record the unconfirmed rename: if it did,
	// a server record with a dropped name field would resurrect it.
	if got := overrides.ItemNames(cid)[itemID]; got != "Milk" {
		t.Fatalf("override should still hold the confirmed name, got %q", got)
	}
}

func TestToggleFailureRollsBack(t *testing.T) {
	f, client, overrides := setup(t)
	ctx := context.Background()

	dash := ForDashboard(client, overrides)
	_ = dash.Reload(ctx)
	if err := dash.CreateChecklist(ctx, "Groceries", "green"); err != nil {
		t.Fatalf("create checklist: %v", err)
	}
	cid := dash.Model.Lists()[0].ID

	m := ForChecklist(client, overrides, cid)
	if err := m.Reload(ctx); err != nil {
		t.Fatalf("load detail: %v", err)
	}
	if err := m.CreateItem(ctx, cid, "Milk"); err != nil {
		t.Fatalf("create item: %v", err)
	}
	c, _ := m.Model.Find(cid)
	itemID := c.Items[0].ID

	f.failStatus = true
	if err := m.ToggleItem(ctx, cid, itemID, true); err == nil {
		t.Fatalf("expected toggle to fail")
	}
	if m.Model.Error() == "" {
		t.Errorf("expected an error banner after a failed toggle")
	}
	// The rollback reload must discard the optimistic toggle. This only
	// holds if the completion override waited for the server: an override
	// written before the call would win reconciliation and re-complete
	// the item on every reload.
	c, _ = m.Model.Find(cid)
	if len(c.Items) != 1 || c.Items[0].Completed {
		t.Fatalf("failed toggle should revert, got %+v", c.Items)
	}
	if got := overrides.ItemCompletion(cid)[itemID]; got {
		t.Fatalf("override must not record the unconfirmed toggle")
	}
}

func TestDeleteItemPurgesOverrides(t *testing.T) {
	_, client, overrides := setup(t)
	ctx := context.Background()

	dash := ForDashboard(client, overrides)
	_ = dash.Reload(ctx)
	if err := dash.CreateChecklist(ctx, "Groceries", "green"); err != nil {
		t.Fatalf("create checklist: %v", err)
	}
	cid := dash.Model.Lists()[0].ID

	m := ForChecklist(client, overrides, cid)
	if err := m.Reload(ctx); err != nil {
		t.Fatalf("load detail: %v", err)
	}
	if err := m.CreateItem(ctx, cid, "Milk"); err != nil {
		t.Fatalf("create item: %v", err)
	}
	c, _ := m.Model.Find(cid)
	itemID := c.Items[0].ID
	if err := m.ToggleItem(ctx, cid, itemID, true); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if err := m.DeleteItem(ctx, cid, itemID); err != nil {
		t.Fatalf("delete item: %v", err)
	}
	if _, ok := overrides.ItemNames(cid)[itemID]; ok {
		t.Errorf("name override should be purged with the item")
	}
	if _, ok := overrides.ItemCompletion(cid)[itemID]; ok {
		t.Errorf("completion override should be purged with the item")
	}
}

func TestDeleteChecklistCascades(t *testing.T) {
	f, client, overrides := setup(t)
	ctx := context.Background()

	dash := ForDashboard(client, overrides)
	_ = dash.Reload(ctx)
	if err := dash.CreateChecklist(ctx, "Groceries", "green"); err != nil {
		t.Fatalf("create checklist: %v", err)
	}
	cid := dash.Model.Lists()[0].ID
	if err := dash.CreateItem(ctx, cid, "Milk"); err != nil {
		t.Fatalf("create item: %v", err)
	}
	if err := dash.CreateItem(ctx, cid, "Bread"); err != nil {
		t.Fatalf("create item: %v", err)
	}

	warning, err := dash.DeleteChecklist(ctx, cid)
	if err != nil {
		t.Fatalf("delete checklist: %v", err)
	}
	if warning != "" {
		t.Fatalf("expected no warning on a clean delete, got %q", warning)
	}
	if _, ok := f.lists[cid]; ok {
		t.Errorf("server should have dropped the checklist")
	}
	if _, ok := dash.Model.Find(cid); ok {
		t.Errorf("model should have dropped the checklist")
	}
	if len(overrides.ItemNames(cid)) != 0 {
		t.Errorf("overrides should be purged")
	}
}

func TestDeleteChecklistServerFailureStillRemovesLocally(t *testing.T) {
	f, client, overrides := setup(t)
	ctx := context.Background()

	dash := ForDashboard(client, overrides)
	_ = dash.Reload(ctx)
	if err := dash.CreateChecklist(ctx, "Groceries", "green"); err != nil {
		t.Fatalf("create checklist: %v", err)
	}
	cid := dash.Model.Lists()[0].ID

	f.failDelete = true
	warning, err := dash.DeleteChecklist(ctx, cid)
	if err != nil {
		t.Fatalf("delete must not fail outright: %v", err)
	}
	if warning == "" {
		t.Fatalf("expected a warning when the server delete fails")
	}
	if _, ok := dash.Model.Find(cid); ok {
		t.Errorf("checklist should still be removed from the local view")
	}
	if _, ok := overrides.Colors()[cid]; ok {
		t.Errorf("overrides should still be purged")
	}
}

func TestRecolorFailureIsSwallowed(t *testing.T) {
	_, client, overrides := setup(t)
	ctx := context.Background()

	dash := ForDashboard(client, overrides)
	_ = dash.Reload(ctx)
	if err := dash.CreateChecklist(ctx, "Groceries", "yellow"); err != nil {
		t.Fatalf("create checklist: %v", err)
	}
	cid := dash.Model.Lists()[0].ID

	// Point the client at a dead server so every color verb fails.
	dead := httptest.NewServer(http.NotFoundHandler())
	dead.Close()
	broken := api.New(dead.URL, "tok")
	dash.Client = broken

	if err := dash.Recolor(ctx, cid, "purple"); err != nil {
		t.Fatalf("recolor must not surface sync failures: %v", err)
	}
	if c, _ := dash.Model.Find(cid); c.Color != "purple" {
		t.Errorf("model should keep the new color, got %q", c.Color)
	}
	if overrides.Colors()[cid] != "purple" {
		t.Errorf("override store should keep the new color")
	}
}

func TestReorderIsLocalOnly(t *testing.T) {
	_, client, overrides := setup(t)
	ctx := context.Background()

	dash := ForDashboard(client, overrides)
	_ = dash.Reload(ctx)
	for _, name := range []string{"A", "B", "C"} {
		if err := dash.CreateChecklist(ctx, name, "yellow"); err != nil {
			t.Fatalf("create checklist: %v", err)
		}
	}
	lists := dash.Model.Lists()
	last := lists[len(lists)-1].ID

	if err := dash.Reorder(last, 0); err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if dash.Model.Lists()[0].ID != last {
		t.Fatalf("reorder did not move the checklist")
	}
	if order := overrides.Order(); len(order) != 3 || order[0] != last {
		t.Fatalf("order override not persisted: %v", order)
	}
}
