package antispam

import (
	"errors"
	"testing"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

type fakePolicySource struct {
	policy *models.AntiSpamPolicy
	err    error
}

func (f *fakePolicySource) Policy(guildID string) (*models.AntiSpamPolicy, error) {
	return f.policy, f.err
}

type fakeSink struct {
	incidents []*models.Incident
}

func (f *fakeSink) PublishIncident(inc *models.Incident) {
	f.incidents = append(f.incidents, inc)
}

func TestEngineFailsOpenOnPolicyError(t *testing.T) {
	mod := &fakeModerator{}
	sink := &fakeSink{}
	e := NewEngine(mod, &fakePolicySource{err: errors.New("db down")}, sink)

	e.HandleMessage(testMessage("spam"))

	if len(sink.incidents) != 0 {
		t.Error("incident published despite an unreadable policy")
	}
	if got := e.Stats().PolicyErrors; got != 1 {
		t.Errorf("PolicyErrors = %d, want 1", got)
	}
	if got := e.Stats().TrackedUsers; got != 0 {
		t.Errorf("TrackedUsers = %d, want 0 (message skipped)", got)
	}
}

func TestEngineDetectsAndPublishes(t *testing.T) {
	mod := &fakeModerator{}
	sink := &fakeSink{}
	p := testPolicy()
	p.MessageLimit = 3
	p.IntervalSeconds = 5
	e := NewEngine(mod, &fakePolicySource{policy: p}, sink)

	base := time.Now()
	for i := 0; i < 3; i++ {
		msg := testMessage("spam spam spam")
		msg.Timestamp = base.Add(time.Duration(i) * time.Second)
		e.HandleMessage(msg)
	}

	if len(sink.incidents) != 1 {
		t.Fatalf("incidents published = %d, want 1", len(sink.incidents))
	}
	inc := sink.incidents[0]
	if inc.Signature != string(SigFlood) {
		t.Errorf("incident signature = %q, want %q", inc.Signature, SigFlood)
	}
	if !inc.Punished {
		t.Error("incident not marked as punished")
	}
	if inc.ID == "" {
		t.Error("incident has no id")
	}

	stats := e.Stats()
	if stats.MessagesSeen != 3 {
		t.Errorf("MessagesSeen = %d, want 3", stats.MessagesSeen)
	}
	if stats.Detections != 1 || stats.Punishments != 1 {
		t.Errorf("Detections/Punishments = %d/%d, want 1/1", stats.Detections, stats.Punishments)
	}
}

func TestEngineKeepsExemptMessagesOutOfWindow(t *testing.T) {
	sink := &fakeSink{}
	p := testPolicy()
	p.MessageLimit = 3
	p.IntervalSeconds = 5
	p.ExemptChannels = []string{"chan-exempt"}
	e := NewEngine(&fakeModerator{}, &fakePolicySource{policy: p}, sink)

	base := time.Now()

	// Two messages in the exempt channel, then two in a normal one. If the
	// exempt pair leaked into the window the fourth message would flood.
	for i, channel := range []string{"chan-exempt", "chan-exempt", "chan-1", "chan-1"} {
		msg := testMessage("spam spam spam")
		msg.ChannelID = channel
		msg.Timestamp = base.Add(time.Duration(i) * time.Second)
		e.HandleMessage(msg)
	}

	if len(sink.incidents) != 0 {
		t.Errorf("incidents = %d, want 0 (exempt messages counted toward flood)", len(sink.incidents))
	}
	if got := e.Stats().TrackedUsers; got != 1 {
		t.Errorf("TrackedUsers = %d, want 1", got)
	}
}

func TestEngineIgnoresBots(t *testing.T) {
	sink := &fakeSink{}
	e := NewEngine(&fakeModerator{}, &fakePolicySource{policy: testPolicy()}, sink)

	msg := testMessage("spam")
	msg.AuthorBot = true
	e.HandleMessage(msg)

	if got := e.Stats().TrackedUsers; got != 0 {
		t.Errorf("bot message was recorded in the window store (%d users)", got)
	}
}
