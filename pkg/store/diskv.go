// Package store is the local override store: a durable key-value shadow of
// everything this client has written to the checklist service. The service
// does not reliably echo back names, completion flags, or colors, so
// reconciliation (pkg/reconcile) treats these maps as more trustworthy than
// a fresh fetch. The store also holds the session token.
package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Kind names one override namespace family.
type Kind string

const (
	// KindItemNames maps itemID -> display name, per checklist.
	KindItemNames Kind = "names"
	// KindItemCompletion maps itemID -> completion flag, per checklist.
	KindItemCompletion Kind = "done"
	// KindColors maps checklistID -> color, one global map.
	KindColors Kind = "colors"
	// KindOrder holds the dashboard display order, one global sequence.
	KindOrder Kind = "order"
	// KindSession holds the auth token.
	KindSession Kind = "session"
)

// globalNamespace scopes the kinds that are not per-checklist.
const globalNamespace = "global"

const tokenKey = "token"

// Overrides is the persistence contract for local corrections. Reads never
// fail: missing or corrupt data degrades to an empty map so a bad write can
// never take the UI down.
type Overrides interface {
	ItemNames(checklistID string) map[string]string
	SetItemName(checklistID, itemID, name string) error
	ItemCompletion(checklistID string) map[string]bool
	SetItemCompletion(checklistID, itemID string, done bool) error
	Colors() map[string]string
	SetColor(checklistID, color string) error
	Order() []string
	SetOrder(ids []string) error
	RemoveItem(checklistID, itemID string) error
	RemoveNamespace(checklistID string) error
	Token() string
	SetToken(token string) error
	ClearToken() error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates an Overrides backed by diskv using the provided config.
func Load(cfg Config) (Overrides, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &overrides{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type overrides struct {
	d        *diskv.Diskv
	basePath string
}

// readMap returns the stored map for (kind, namespace), empty when absent
// or unparsable. Corruption degrades, it does not propagate.
func (o *overrides) readMap(kind Kind, namespace string) map[string]json.RawMessage {
	val, err := o.d.Read(toKey(kind, namespace))
	if err != nil {
		return map[string]json.RawMessage{}
	}
	m := map[string]json.RawMessage{}
	if err := json.Unmarshal(val, &m); err != nil {
		return map[string]json.RawMessage{}
	}
	return m
}

func (o *overrides) writeMap(kind Kind, namespace string, m map[string]json.RawMessage) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if err := o.d.Write(toKey(kind, namespace), data); err != nil {
		return fmt.Errorf("store: write %s/%s: %w", kind, namespace, err)
	}
	return nil
}

// setEntry is the shared read-modify-write; last write wins.
func (o *overrides) setEntry(kind Kind, namespace, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m := o.readMap(kind, namespace)
	m[key] = raw
	return o.writeMap(kind, namespace, m)
}

func (o *overrides) deleteEntry(kind Kind, namespace, key string) error {
	m := o.readMap(kind, namespace)
	if _, ok := m[key]; !ok {
		return nil
	}
	delete(m, key)
	return o.writeMap(kind, namespace, m)
}

func (o *overrides) ItemNames(checklistID string) map[string]string {
	out := map[string]string{}
	for k, raw := range o.readMap(KindItemNames, checklistID) {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out[k] = s
		}
	}
	return out
}

func (o *overrides) SetItemName(checklistID, itemID, name string) error {
	return o.setEntry(KindItemNames, checklistID, itemID, name)
}

func (o *overrides) ItemCompletion(checklistID string) map[string]bool {
	out := map[string]bool{}
	for k, raw := range o.readMap(KindItemCompletion, checklistID) {
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			out[k] = b
		}
	}
	return out
}

func (o *overrides) SetItemCompletion(checklistID, itemID string, done bool) error {
	return o.setEntry(KindItemCompletion, checklistID, itemID, done)
}

func (o *overrides) Colors() map[string]string {
	out := map[string]string{}
	for k, raw := range o.readMap(KindColors, globalNamespace) {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out[k] = s
		}
	}
	return out
}

func (o *overrides) SetColor(checklistID, color string) error {
	return o.setEntry(KindColors, globalNamespace, checklistID, color)
}

func (o *overrides) Order() []string {
	val, err := o.d.Read(toKey(KindOrder, globalNamespace))
	if err != nil {
		return nil
	}
	var ids []string
	if err := json.Unmarshal(val, &ids); err != nil {
		return nil
	}
	return ids
}

func (o *overrides) SetOrder(ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return o.d.Write(toKey(KindOrder, globalNamespace), data)
}

// RemoveItem drops a deleted item's name and completion entries.
func (o *overrides) RemoveItem(checklistID, itemID string) error {
	if err := o.deleteEntry(KindItemNames, checklistID, itemID); err != nil {
		return err
	}
	return o.deleteEntry(KindItemCompletion, checklistID, itemID)
}

// RemoveNamespace purges every override held for a deleted checklist:
// its name and completion maps, its color entry, and its order slot.
func (o *overrides) RemoveNamespace(checklistID string) error {
	for _, kind := range []Kind{KindItemNames, KindItemCompletion} {
		if err := o.d.Erase(toKey(kind, checklistID)); err != nil && o.d.Has(toKey(kind, checklistID)) {
			return fmt.Errorf("store: purge %s/%s: %w", kind, checklistID, err)
		}
	}
	if err := o.deleteEntry(KindColors, globalNamespace, checklistID); err != nil {
		return err
	}
	order := o.Order()
	if len(order) == 0 {
		return nil
	}
	kept := make([]string, 0, len(order))
	for _, id := range order {
		if id != checklistID {
			kept = append(kept, id)
		}
	}
	if len(kept) == len(order) {
		return nil
	}
	return o.SetOrder(kept)
}

func (o *overrides) Token() string {
	for k, raw := range o.readMap(KindSession, globalNamespace) {
		if k != tokenKey {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return ""
}

func (o *overrides) SetToken(token string) error {
	return o.setEntry(KindSession, globalNamespace, tokenKey, token)
}

func (o *overrides) ClearToken() error {
	return o.deleteEntry(KindSession, globalNamespace, tokenKey)
}

// toKey makes `kind-namespace`; the namespace is base64 encoded because
// checklist ids are server controlled and may contain the separator.
func toKey(kind Kind, namespace string) string {
	return fmt.Sprintf("%s-%s", kind, base64.StdEncoding.EncodeToString([]byte(namespace)))
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) == 1 {
		return &diskv.PathKey{Path: []string{}, FileName: parts[0]}
	}
	return &diskv.PathKey{
		Path:     parts[:1],
		FileName: parts[1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

func fromNamespace(s string) string {
	namespace, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return ""
	}
	return string(namespace)
}
