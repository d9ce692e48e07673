package antispam

import (
	"testing"
	"time"
)

func floodWindow(now time.Time) []MessageRecord {
	return windowOf(now, "spam", "spam", "spam", "spam", "spam")
}

func TestClassifyIsDeterministic(t *testing.T) {
	p := testPolicy()
	now := time.Now()
	msg := testMessage("spam")
	window := floodWindow(now)

	first := Classify(msg, window, p, now)
	second := Classify(msg, window, p, now)

	if first == nil || second == nil {
		t.Fatal("expected a detection on a flooding window")
	}
	if first.Signature != second.Signature || first.Evidence != second.Evidence {
		t.Errorf("classifier is not deterministic: %+v vs %+v", first, second)
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// a flooding window whose newest message also mass-mentions: only the
	// earlier evaluator in the fixed order may report
	p := testPolicy()
	now := time.Now()
	msg := testMessage("hola @everyone")
	msg.Mentions = []string{"1", "2", "3", "4", "5", "6"}
	window := floodWindow(now)

	det := Classify(msg, window, p, now)
	if det == nil {
		t.Fatal("expected a detection")
	}
	if det.Signature != SigFlood {
		t.Errorf("signature = %q, want %q (first match wins)", det.Signature, SigFlood)
	}
}

func TestClassifySkipsWhenDisabled(t *testing.T) {
	p := testPolicy()
	p.Enabled = false
	now := time.Now()

	if det := Classify(testMessage("spam"), floodWindow(now), p, now); det != nil {
		t.Error("classifier ran with the policy disabled")
	}
	if det := Classify(testMessage("spam"), floodWindow(now), nil, now); det != nil {
		t.Error("classifier ran without a policy")
	}
}

func TestClassifySkipsBotsAndWebhooks(t *testing.T) {
	p := testPolicy()
	now := time.Now()

	bot := testMessage("spam")
	bot.AuthorBot = true
	if det := Classify(bot, floodWindow(now), p, now); det != nil {
		t.Error("classifier ran for a bot author")
	}

	hook := testMessage("spam")
	hook.Webhook = true
	if det := Classify(hook, floodWindow(now), p, now); det != nil {
		t.Error("classifier ran for a webhook message")
	}
}

func TestClassifyHonorsExemptions(t *testing.T) {
	now := time.Now()
	window := floodWindow(now)

	p := testPolicy()
	p.ExemptChannels = []string{"chan-1"}
	if det := Classify(testMessage("spam"), window, p, now); det != nil {
		t.Error("classifier ran on an exempt channel")
	}

	p = testPolicy()
	p.ExemptUsers = []string{"user-1"}
	if det := Classify(testMessage("spam"), window, p, now); det != nil {
		t.Error("classifier ran for an exempt user")
	}

	p = testPolicy()
	p.ExemptRoles = []string{"role-vip"}
	msg := testMessage("spam")
	msg.Roles = []string{"role-common", "role-vip"}
	if det := Classify(msg, window, p, now); det != nil {
		t.Error("classifier ran for an exempt role")
	}
}

func TestClassifyEmptyContentNeverFires(t *testing.T) {
	p := testPolicy()
	now := time.Now()

	msg := testMessage("")
	window := windowOf(now, "", "")
	if det := Classify(msg, window, p, now); det != nil {
		t.Errorf("empty content produced %q", det.Signature)
	}
}
