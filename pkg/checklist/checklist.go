package checklist

// Raw is a checklist or item record exactly as the backend returned it.
// The service is not consistent about field names, so nothing beyond
// "JSON object" is assumed here; pkg/extract derives canonical fields.
type Raw map[string]any

// Item is the canonical form of a checklist item.
type Item struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// Checklist is the canonical form of a checklist with its reconciled items.
type Checklist struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Items []Item `json:"items,omitempty"`

	// Cached counts for dashboard cards rendered before items load.
	ItemCount      int `json:"itemCount"`
	CompletedCount int `json:"completedCount"`
}

// Counts returns completed and total item counts, preferring the live
// item collection over the cached dashboard counts.
func (c *Checklist) Counts() (completed, total int) {
	if len(c.Items) == 0 {
		return c.CompletedCount, c.ItemCount
	}
	for _, it := range c.Items {
		if it.Completed {
			completed++
		}
	}
	return completed, len(c.Items)
}

// DefaultName is used when the backend returns a checklist without one.
const DefaultName = "New Checklist"

// UntitledItem is the placeholder shown for items whose name could not be
// recovered from the backend or the override store.
const UntitledItem = "Untitled Item"
