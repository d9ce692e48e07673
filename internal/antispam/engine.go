package antispam

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/google/uuid"
)

// PolicySource supplies the per-guild policy for the hot path
type PolicySource interface {
	Policy(guildID string) (*models.AntiSpamPolicy, error)
}

// IncidentSink receives every detection record. Implementations must not
// block the message path; slow work happens on their own goroutines.
type IncidentSink interface {
	PublishIncident(inc *models.Incident)
}

// EngineStats are the hot-path counters exposed by the web API
type EngineStats struct {
	MessagesSeen uint64 `json:"messagesSeen"`
	Detections   uint64 `json:"detections"`
	Punishments  uint64 `json:"punishments"`
	PolicyErrors uint64 `json:"policyErrors"`
	TrackedUsers int    `json:"trackedUsers"`
}

// Engine owns the window store, the cooldown gate and the punisher, and
// drives the full flow for one inbound message: record, classify, punish,
// publish. One instance per process.
type Engine struct {
	windows  *WindowStore
	gate     *CooldownGate
	punisher *Punisher
	policies PolicySource
	sinks    []IncidentSink
	now      func() time.Time

	messagesSeen uint64
	detections   uint64
	punishments  uint64
	policyErrors uint64
}

var (
	engine *Engine
	once   sync.Once
)

// Init initializes the global engine instance
func Init(mod Moderator, policies PolicySource, sinks ...IncidentSink) *Engine {
	once.Do(func() {
		engine = NewEngine(mod, policies, sinks...)
	})
	return engine
}

// Get returns the global engine instance
func Get() *Engine {
	return engine
}

// NewEngine creates an Engine over the given capabilities
func NewEngine(mod Moderator, policies PolicySource, sinks ...IncidentSink) *Engine {
	gate := NewCooldownGate()
	return &Engine{
		windows:  NewWindowStore(),
		gate:     gate,
		punisher: NewPunisher(mod, gate),
		policies: policies,
		sinks:    sinks,
		now:      time.Now,
	}
}

// HandleMessage processes one inbound message end to end. It never returns
// an error: a policy read failure skips the message (fail-open) and every
// downstream fault is swallowed inside the punisher.
func (e *Engine) HandleMessage(msg *InboundMessage) {
	atomic.AddUint64(&e.messagesSeen, 1)

	if msg.AuthorBot || msg.Webhook || msg.GuildID == "" {
		return
	}

	p, err := e.policies.Policy(msg.GuildID)
	if err != nil {
		atomic.AddUint64(&e.policyErrors, 1)
		logger.Debug(fmt.Sprintf("Política ilegible para %s, mensaje omitido: %v", msg.GuildID, err), "AntiSpam")
		return
	}

	// Exempt traffic never enters the window, so it cannot count toward a
	// later detection in a channel that is not exempt
	if p.IsChannelExempt(msg.ChannelID) || p.IsUserExempt(msg.AuthorID) || p.IsRoleExempt(msg.Roles) {
		return
	}

	window := e.windows.Record(msg.GuildID, msg.AuthorID, msg.Timestamp, msg.Content)

	det := Classify(msg, window, p, e.now())
	if det == nil {
		return
	}
	atomic.AddUint64(&e.detections, 1)
	logger.Info(fmt.Sprintf("🛡️ Detección %s para %s en %s", det.Signature, msg.AuthorID, msg.GuildID), "AntiSpam")

	punished := e.punisher.Punish(msg, det, p)
	if punished {
		atomic.AddUint64(&e.punishments, 1)
	}

	inc := &models.Incident{
		ID:          uuid.New().String(),
		GuildID:     msg.GuildID,
		ChannelID:   msg.ChannelID,
		UserID:      msg.AuthorID,
		Username:    msg.AuthorName,
		Signature:   string(det.Signature),
		Description: det.Signature.Description(),
		Punishment:  string(p.Punishment),
		Punished:    punished,
		Evidence:    truncate(det.Evidence, evidenceLimit),
		Timestamp:   e.now().Unix(),
	}
	for _, sink := range e.sinks {
		sink.PublishIncident(inc)
	}
}

// ForgetUser drops the tracked window of a member, typically after they
// leave the guild
func (e *Engine) ForgetUser(guildID, userID string) {
	e.windows.Forget(guildID, userID)
}

// Stats returns a snapshot of the engine counters
func (e *Engine) Stats() EngineStats {
	return EngineStats{
		MessagesSeen: atomic.LoadUint64(&e.messagesSeen),
		Detections:   atomic.LoadUint64(&e.detections),
		Punishments:  atomic.LoadUint64(&e.punishments),
		PolicyErrors: atomic.LoadUint64(&e.policyErrors),
		TrackedUsers: e.windows.Users(),
	}
}
