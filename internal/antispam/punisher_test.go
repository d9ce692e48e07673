package antispam

import (
	"errors"
	"testing"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// fakeModerator records every capability call and can be told to fail them
type fakeModerator struct {
	deleted      []string
	timeouts     []string
	kicks        []string
	bans         []string
	rolesAdded   []string
	rolesRemoved []string
	embeds       []*discordgo.MessageEmbed
	permissions  int64

	timeoutErr error
	deleteErr  error
}

func (f *fakeModerator) DeleteMessage(channelID, messageID string) error {
	f.deleted = append(f.deleted, messageID)
	return f.deleteErr
}

func (f *fakeModerator) Timeout(guildID, userID string, until time.Time) error {
	if f.timeoutErr != nil {
		return f.timeoutErr
	}
	f.timeouts = append(f.timeouts, userID)
	return nil
}

func (f *fakeModerator) RemoveTimeout(guildID, userID string) error { return nil }

func (f *fakeModerator) Kick(guildID, userID, reason string) error {
	f.kicks = append(f.kicks, userID)
	return nil
}

func (f *fakeModerator) Ban(guildID, userID, reason string) error {
	f.bans = append(f.bans, userID)
	return nil
}

func (f *fakeModerator) AddRole(guildID, userID, roleID string) error {
	f.rolesAdded = append(f.rolesAdded, roleID)
	return nil
}

func (f *fakeModerator) RemoveRole(guildID, userID, roleID string) error {
	f.rolesRemoved = append(f.rolesRemoved, roleID)
	return nil
}

func (f *fakeModerator) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	f.embeds = append(f.embeds, embed)
	return nil
}

func (f *fakeModerator) BotPermissions(channelID string) (int64, error) {
	return f.permissions, nil
}

func newTestPunisher(mod Moderator, now time.Time) (*Punisher, *time.Time) {
	clock := now
	pu := NewPunisher(mod, NewCooldownGate())
	pu.now = func() time.Time { return clock }
	pu.after = func(d time.Duration, fn func()) { fn() } // run delayed work inline
	return pu, &clock
}

func TestCooldownGateDebounce(t *testing.T) {
	g := NewCooldownGate()
	now := time.Now()

	if !g.TryArm("g1", "u1", now) {
		t.Fatal("first TryArm must pass")
	}
	if g.TryArm("g1", "u1", now.Add(5*time.Second)) {
		t.Error("second TryArm passed within the debounce window")
	}
	if !g.TryArm("g1", "u1", now.Add(PunishmentDebounce)) {
		t.Error("TryArm failed after the debounce window elapsed")
	}
	if !g.TryArm("g1", "u2", now) {
		t.Error("debounce leaked across authors")
	}
}

func TestPunishAtMostOncePerDebounce(t *testing.T) {
	mod := &fakeModerator{}
	now := time.Now()
	pu, clock := newTestPunisher(mod, now)

	p := testPolicy()
	det := &Detection{Signature: SigFlood, Evidence: "x"}
	msg := testMessage("spam")

	if !pu.Punish(msg, det, p) {
		t.Fatal("first punishment did not run")
	}
	*clock = now.Add(3 * time.Second)
	if pu.Punish(msg, det, p) {
		t.Error("second punishment ran within 10 seconds")
	}
	if len(mod.timeouts) != 1 {
		t.Errorf("timeouts applied = %d, want 1", len(mod.timeouts))
	}
}

func TestPunishDeletesTriggeringMessage(t *testing.T) {
	mod := &fakeModerator{}
	pu, _ := newTestPunisher(mod, time.Now())

	pu.Punish(testMessage("spam"), &Detection{Signature: SigFlood}, testPolicy())
	if len(mod.deleted) != 1 || mod.deleted[0] != "msg-1" {
		t.Errorf("deleted = %v, want [msg-1]", mod.deleted)
	}
}

func TestPunishKindSelection(t *testing.T) {
	for _, kind := range []models.PunishmentKind{models.PunishmentKick, models.PunishmentBan, models.PunishmentNone} {
		mod := &fakeModerator{}
		pu, _ := newTestPunisher(mod, time.Now())
		p := testPolicy()
		p.Punishment = kind

		pu.Punish(testMessage("spam"), &Detection{Signature: SigFlood}, p)

		switch kind {
		case models.PunishmentKick:
			if len(mod.kicks) != 1 {
				t.Errorf("kick: calls = %d, want 1", len(mod.kicks))
			}
		case models.PunishmentBan:
			if len(mod.bans) != 1 {
				t.Errorf("ban: calls = %d, want 1", len(mod.bans))
			}
		case models.PunishmentNone:
			if len(mod.kicks)+len(mod.bans)+len(mod.timeouts) != 0 {
				t.Error("none: a sanction was applied")
			}
		}
	}
}

func TestTimeoutFallsBackToMutedRole(t *testing.T) {
	mod := &fakeModerator{timeoutErr: errors.New("missing permission")}
	pu, _ := newTestPunisher(mod, time.Now())

	p := testPolicy()
	p.MutedRole = "role-muted"

	pu.Punish(testMessage("spam"), &Detection{Signature: SigFlood}, p)

	if len(mod.rolesAdded) != 1 || mod.rolesAdded[0] != "role-muted" {
		t.Fatalf("rolesAdded = %v, want [role-muted]", mod.rolesAdded)
	}
	// the deferred un-apply ran inline in tests
	if len(mod.rolesRemoved) != 1 || mod.rolesRemoved[0] != "role-muted" {
		t.Errorf("rolesRemoved = %v, want [role-muted]", mod.rolesRemoved)
	}
}

func TestLogEmissionRequiresPermissions(t *testing.T) {
	needed := int64(discordgo.PermissionSendMessages | discordgo.PermissionEmbedLinks)

	mod := &fakeModerator{permissions: needed}
	pu, _ := newTestPunisher(mod, time.Now())
	p := testPolicy()
	p.LogChannel = "chan-logs"

	pu.Punish(testMessage("spam"), &Detection{Signature: SigZalgo, Evidence: "marcas"}, p)
	if len(mod.embeds) != 1 {
		t.Fatalf("embeds sent = %d, want 1", len(mod.embeds))
	}

	mod = &fakeModerator{permissions: discordgo.PermissionSendMessages} // no embed links
	pu, _ = newTestPunisher(mod, time.Now())
	pu.Punish(testMessage("spam"), &Detection{Signature: SigZalgo, Evidence: "marcas"}, p)
	if len(mod.embeds) != 0 {
		t.Error("embed sent without embed-links permission")
	}
}

func TestLogEvidenceIsTruncated(t *testing.T) {
	needed := int64(discordgo.PermissionSendMessages | discordgo.PermissionEmbedLinks)
	mod := &fakeModerator{permissions: needed}
	pu, _ := newTestPunisher(mod, time.Now())

	p := testPolicy()
	p.LogChannel = "chan-logs"

	huge := make([]byte, 0, 3000)
	for i := 0; i < 3000; i++ {
		huge = append(huge, 'a')
	}
	pu.Punish(testMessage("spam"), &Detection{Signature: SigFlood, Evidence: string(huge)}, p)

	if len(mod.embeds) != 1 {
		t.Fatal("expected one embed")
	}
	value := mod.embeds[0].Fields[0].Value
	if len(value) > 1100 {
		t.Errorf("evidence field too long: %d chars", len(value))
	}
}

func TestPunishSurvivesDeleteFailure(t *testing.T) {
	mod := &fakeModerator{deleteErr: errors.New("forbidden")}
	pu, _ := newTestPunisher(mod, time.Now())

	if !pu.Punish(testMessage("spam"), &Detection{Signature: SigFlood}, testPolicy()) {
		t.Error("punishment aborted because the message delete failed")
	}
	if len(mod.timeouts) != 1 {
		t.Errorf("timeouts = %d, want 1", len(mod.timeouts))
	}
}
