// Package reconcile merges freshly fetched raw records with the local
// override store into the canonical view. Overrides win over server values
// when both exist and disagree: the service has been observed to drop or
// mangle data it was handed, so anything this client wrote itself is the
// better source of truth.
package reconcile

import (
	"sort"

	"tableflip.dev/checklist/pkg/checklist"
	"tableflip.dev/checklist/pkg/extract"
	"tableflip.dev/checklist/pkg/palette"
	"tableflip.dev/checklist/pkg/store"
)

// Items builds the canonical item list for a checklist, preserving input
// order. Empty extracted names fall back to the name override, then to the
// untitled placeholder; a completion override always beats the extracted
// flag.
func Items(checklistID string, raws []checklist.Raw, overrides store.Overrides) []checklist.Item {
	names := overrides.ItemNames(checklistID)
	completion := overrides.ItemCompletion(checklistID)

	items := make([]checklist.Item, 0, len(raws))
	for i, raw := range raws {
		id := extract.ID(raw, i)

		name := extract.Name(raw)
		if name == "" {
			if override, ok := names[id]; ok && override != "" {
				name = override
			} else {
				name = checklist.UntitledItem
			}
		}

		completed := extract.Completed(raw)
		if override, ok := completion[id]; ok {
			completed = override
		}

		items = append(items, checklist.Item{ID: id, Name: name, Completed: completed})
	}
	return items
}

// Checklists builds the canonical checklist collection. The color override
// applies only when the server color is absent or still the default, so a
// deliberate server-side color is not masked by a stale local one. The
// order override resorts the collection; unlisted checklists sort last and
// keep their relative order.
func Checklists(raws []checklist.Raw, overrides store.Overrides) []checklist.Checklist {
	colors := overrides.Colors()

	lists := make([]checklist.Checklist, 0, len(raws))
	for i, raw := range raws {
		id := checklistID(raw, i)

		name := extract.Name(raw)
		if name == "" {
			name = checklist.DefaultName
		}

		color := palette.Normalize(serverColor(raw))
		if override, ok := colors[id]; ok && palette.Valid(override) {
			if serverColor(raw) == "" || color == palette.Default {
				color = override
			}
		}

		lists = append(lists, checklist.Checklist{ID: id, Name: name, Color: color})
	}

	return Sort(lists, overrides.Order())
}

// Detail builds the canonical checklist for a detail view from its
// (possibly absent) metadata record. A failed metadata fetch degrades to
// defaults instead of failing the view.
func Detail(checklistID string, meta checklist.Raw, overrides store.Overrides) checklist.Checklist {
	name := extract.Name(meta)
	if name == "" {
		name = "My Checklist"
	}

	color := palette.Normalize(serverColor(meta))
	if override, ok := overrides.Colors()[checklistID]; ok && palette.Valid(override) {
		if serverColor(meta) == "" || color == palette.Default {
			color = override
		}
	}

	return checklist.Checklist{ID: checklistID, Name: name, Color: color}
}

// Sort applies a persisted display order: listed ids by stored index,
// everything else after, otherwise stable.
func Sort(lists []checklist.Checklist, order []string) []checklist.Checklist {
	if len(order) == 0 {
		return lists
	}
	index := make(map[string]int, len(order))
	for i, id := range order {
		index[id] = i
	}
	rank := func(c checklist.Checklist) int {
		if i, ok := index[c.ID]; ok {
			return i
		}
		return len(order)
	}
	sort.SliceStable(lists, func(i, j int) bool {
		return rank(lists[i]) < rank(lists[j])
	})
	return lists
}

// checklistID prefers the server id fields seen for checklist records.
func checklistID(raw checklist.Raw, fallbackIndex int) string {
	for _, field := range []string{"id", "checklistId"} {
		if s, ok := raw[field].(string); ok && s != "" {
			return s
		}
		if f, ok := raw[field].(float64); ok {
			return extract.ID(checklist.Raw{"id": f}, fallbackIndex)
		}
	}
	return extract.ID(raw, fallbackIndex)
}

func serverColor(raw checklist.Raw) string {
	s, _ := raw["color"].(string)
	return s
}
