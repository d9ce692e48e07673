package antispam

import (
	"sync"
	"time"
)

// WindowCapacity is the maximum number of messages remembered per user and guild
const WindowCapacity = 15

// MessageRecord is one remembered message. Immutable once created.
type MessageRecord struct {
	Timestamp time.Time
	Content   string
	AuthorID  string
}

type windowKey struct {
	guildID  string
	authorID string
}

// WindowStore keeps a bounded FIFO of recent messages per (guild, author).
// State lives in memory only: a restart loses the history, which is fine
// because detection cares about recent bursts, not long-term memory.
// discordgo dispatches each event on its own goroutine, so access is locked.
type WindowStore struct {
	mu      sync.Mutex
	windows map[windowKey][]MessageRecord
}

// NewWindowStore creates an empty WindowStore
func NewWindowStore() *WindowStore {
	return &WindowStore{
		windows: make(map[windowKey][]MessageRecord),
	}
}

// Record appends a message to the (guild, author) window, evicting the oldest
// entry past capacity, and returns a snapshot of the updated window for
// immediate evaluation. The newest message is always the last element.
func (ws *WindowStore) Record(guildID, authorID string, ts time.Time, content string) []MessageRecord {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	key := windowKey{guildID: guildID, authorID: authorID}
	window := append(ws.windows[key], MessageRecord{
		Timestamp: ts,
		Content:   content,
		AuthorID:  authorID,
	})
	if len(window) > WindowCapacity {
		window = window[len(window)-WindowCapacity:]
	}
	ws.windows[key] = window

	snapshot := make([]MessageRecord, len(window))
	copy(snapshot, window)
	return snapshot
}

// Forget drops the window of a (guild, author) pair. Used when a member
// leaves so detection state does not outlive them.
func (ws *WindowStore) Forget(guildID, authorID string) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	delete(ws.windows, windowKey{guildID: guildID, authorID: authorID})
}

// Users returns how many (guild, author) windows are currently tracked
func (ws *WindowStore) Users() int {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return len(ws.windows)
}
