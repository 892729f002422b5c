package store

import (
	"context"
	"testing"
	"time"
)

func TestWatchSeesExternalWrites(t *testing.T) {
	base := t.TempDir()
	watcherSide, err := Load(&testConfig{base: base})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	writerSide, err := Load(&testConfig{base: base})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := watcherSide.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	if err := writerSide.SetItemName("c1", "x", "Milk"); err != nil {
		t.Fatalf("set name: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatalf("watch channel closed before an event arrived")
			}
			if ev.Kind == KindItemNames && ev.Checklist == "c1" {
				return
			}
		case <-deadline:
			t.Fatalf("no store event within deadline")
		}
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	o, err := Load(&testConfig{base: t.TempDir()})
	if err != nil {
		t.Fatalf("load store: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	events, err := o.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	select {
	case _, ok := <-events:
		if ok {
			// Drain stray events until the close.
			for range events {
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("watch channel did not close after cancel")
	}
}
