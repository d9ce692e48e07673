package antispam

import (
	"sync"
	"time"
)

// PunishmentDebounce is the minimum spacing between punishment actions for
// the same author. Independent of guild policy.
const PunishmentDebounce = 10 * time.Second

// CooldownGate enforces at most one punishment per author per debounce
// window. The check and the set happen under one lock so two near
// simultaneous detections cannot both pass the gate.
type CooldownGate struct {
	mu   sync.Mutex
	last map[windowKey]time.Time
}

// NewCooldownGate creates an empty gate
func NewCooldownGate() *CooldownGate {
	return &CooldownGate{
		last: make(map[windowKey]time.Time),
	}
}

// TryArm returns true and records the action instant if the author is clear;
// false if a punishment already happened within the debounce window. The
// entry is recorded before any action executes, closing the race window.
func (g *CooldownGate) TryArm(guildID, authorID string, now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	key := windowKey{guildID: guildID, authorID: authorID}
	if last, ok := g.last[key]; ok && now.Sub(last) < PunishmentDebounce {
		return false
	}
	g.last[key] = now
	return true
}
