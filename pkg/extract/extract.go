// Package extract derives canonical item fields from loosely shaped
// backend records. The service does not reliably echo the field names it
// was given, so every accessor here is a best-effort scan that always
// returns a usable value and never fails.
package extract

import (
	"fmt"
	"strings"

	"tableflip.dev/checklist/pkg/checklist"
)

// nameFields is scanned in priority order; the first non-empty trimmed
// string wins.
var nameFields = []string{"name", "title", "description", "itemName", "text", "content", "label", "value"}

// skipFields are identity or status keys that never hold a display name.
var skipFields = map[string]bool{"id": true, "completed": true, "status": true}

// Name returns the display name carried by raw, or "" when no string
// field plausibly holds one. Callers decide the fallback text.
func Name(raw checklist.Raw) string {
	for _, field := range nameFields {
		if s, ok := raw[field].(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	for key, value := range raw {
		if skipFields[key] || isNameField(key) {
			continue
		}
		if s, ok := value.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

func isNameField(key string) bool {
	for _, field := range nameFields {
		if key == field {
			return true
		}
	}
	return false
}

// ID returns a stable identity for raw. Server-provided ids win; failing
// that, an id is derived from the item content, and as a last resort from
// the item's position in the fetched collection.
//
// The content-derived form collides for items sharing length and leading
// character. It is kept for compatibility with ids already persisted in
// override stores; new optimistic items get uuid ids instead (pkg/mutate).
func ID(raw checklist.Raw, fallbackIndex int) string {
	for _, field := range []string{"id", "itemId", "checklistItemId"} {
		if id := stringish(raw[field]); id != "" {
			return id
		}
	}
	for _, field := range []string{"name", "title", "description"} {
		if s, ok := raw[field].(string); ok && s != "" {
			return fmt.Sprintf("item_%d_%d", len(s), s[0])
		}
	}
	return fmt.Sprintf("item_index_%d", fallbackIndex)
}

// Completed reports whether raw is marked done under any of the spellings
// the backend has been observed to use.
func Completed(raw checklist.Raw) bool {
	if truthy(raw["completed"]) {
		return true
	}
	if s, ok := raw["status"].(string); ok && s == "completed" {
		return true
	}
	return truthy(raw["isDone"]) || truthy(raw["done"])
}

// stringish renders server ids, which arrive as strings or JSON numbers.
func stringish(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	}
	return ""
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != "" && t != "false" && t != "0"
	case float64:
		return t != 0
	}
	return false
}
