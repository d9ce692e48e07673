package antispam

import (
	"fmt"
	"testing"
	"time"
)

func TestWindowStoreCapacity(t *testing.T) {
	ws := NewWindowStore()
	base := time.Now()

	var window []MessageRecord
	for i := 0; i < WindowCapacity+5; i++ {
		window = ws.Record("g1", "u1", base.Add(time.Duration(i)*time.Second), fmt.Sprintf("msg-%d", i))
	}

	if len(window) != WindowCapacity {
		t.Fatalf("window length = %d, want %d", len(window), WindowCapacity)
	}

	// oldest entries must be evicted in FIFO order
	if window[0].Content != "msg-5" {
		t.Errorf("oldest entry = %q, want %q", window[0].Content, "msg-5")
	}
	if window[len(window)-1].Content != fmt.Sprintf("msg-%d", WindowCapacity+4) {
		t.Errorf("newest entry = %q, want %q", window[len(window)-1].Content, fmt.Sprintf("msg-%d", WindowCapacity+4))
	}
}

func TestWindowStoreIsolatesKeys(t *testing.T) {
	ws := NewWindowStore()
	now := time.Now()

	ws.Record("g1", "u1", now, "a")
	ws.Record("g1", "u2", now, "b")
	w := ws.Record("g2", "u1", now, "c")

	if len(w) != 1 {
		t.Errorf("window for (g2,u1) has %d entries, want 1", len(w))
	}
	if ws.Users() != 3 {
		t.Errorf("Users() = %d, want 3", ws.Users())
	}
}

func TestWindowStoreSnapshotIsACopy(t *testing.T) {
	ws := NewWindowStore()
	now := time.Now()

	snap := ws.Record("g1", "u1", now, "first")
	ws.Record("g1", "u1", now.Add(time.Second), "second")

	if len(snap) != 1 || snap[0].Content != "first" {
		t.Errorf("snapshot mutated by later Record: %+v", snap)
	}
}
