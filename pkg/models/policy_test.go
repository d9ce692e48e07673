package models

import "testing"

func TestDefaultPolicyIsValidButDisabled(t *testing.T) {
	p := DefaultAntiSpamPolicy("guild-1")

	if p.Enabled {
		t.Error("default policy must start disabled")
	}
	if err := p.Validate(); err != nil {
		t.Errorf("default policy failed validation: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *AntiSpamPolicy)
	}{
		{"empty guild", func(p *AntiSpamPolicy) { p.GuildID = "" }},
		{"zero message limit", func(p *AntiSpamPolicy) { p.MessageLimit = 0 }},
		{"zero interval", func(p *AntiSpamPolicy) { p.IntervalSeconds = 0 }},
		{"similarity at zero", func(p *AntiSpamPolicy) { p.SimilarityThreshold = 0 }},
		{"similarity at one", func(p *AntiSpamPolicy) { p.SimilarityThreshold = 1 }},
		{"zero ascii threshold", func(p *AntiSpamPolicy) { p.AsciiArtThreshold = 0 }},
		{"zero ascii lines", func(p *AntiSpamPolicy) { p.AsciiArtMinLines = 0 }},
		{"zero emoji total", func(p *AntiSpamPolicy) { p.EmojiTotalThreshold = 0 }},
		{"zero emoji unique", func(p *AntiSpamPolicy) { p.EmojiUniqueThreshold = 0 }},
		{"unknown punishment", func(p *AntiSpamPolicy) { p.Punishment = "yeet" }},
		{"timeout without duration", func(p *AntiSpamPolicy) {
			p.Punishment = PunishmentTimeout
			p.TimeoutSeconds = 0
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultAntiSpamPolicy("guild-1")
			tc.mutate(p)
			if err := p.Validate(); err == nil {
				t.Error("expected a validation error, got nil")
			}
		})
	}
}

func TestValidateAcceptsNonePunishmentWithoutDuration(t *testing.T) {
	p := DefaultAntiSpamPolicy("guild-1")
	p.Punishment = PunishmentNone
	p.TimeoutSeconds = 0

	if err := p.Validate(); err != nil {
		t.Errorf("none punishment should not require a duration: %v", err)
	}
}

func TestExemptions(t *testing.T) {
	p := DefaultAntiSpamPolicy("guild-1")
	p.ExemptChannels = []string{"chan-1"}
	p.ExemptRoles = []string{"role-1", "role-2"}
	p.ExemptUsers = []string{"user-1"}

	if !p.IsChannelExempt("chan-1") {
		t.Error("chan-1 should be exempt")
	}
	if p.IsChannelExempt("chan-2") {
		t.Error("chan-2 should not be exempt")
	}
	if !p.IsUserExempt("user-1") {
		t.Error("user-1 should be exempt")
	}
	if !p.IsRoleExempt([]string{"role-9", "role-2"}) {
		t.Error("member holding role-2 should be exempt")
	}
	if p.IsRoleExempt([]string{"role-9"}) {
		t.Error("member without exempt roles should not be exempt")
	}
	if p.IsRoleExempt(nil) {
		t.Error("member with no roles should not be exempt")
	}
}

func TestPunishmentKindIsValid(t *testing.T) {
	for _, k := range []PunishmentKind{PunishmentTimeout, PunishmentKick, PunishmentBan, PunishmentNone} {
		if !k.IsValid() {
			t.Errorf("%q should be valid", k)
		}
	}
	if PunishmentKind("").IsValid() {
		t.Error("empty kind should be invalid")
	}
}
