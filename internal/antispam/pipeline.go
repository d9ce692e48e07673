package antispam

import (
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// InboundMessage is the platform-neutral view of a received message that the
// pipeline operates on. It is built once per MessageCreate event.
type InboundMessage struct {
	GuildID    string
	ChannelID  string
	MessageID  string
	AuthorID   string
	AuthorName string
	AuthorBot  bool
	Webhook    bool
	Content    string
	Mentions   []string // resolved user mention ids
	Roles      []string // role ids of the author
	Timestamp  time.Time
}

// evaluatorFunc classifies a message/window pair against a policy. Pure:
// same input, same result, and it never fails on malformed content.
type evaluatorFunc func(msg *InboundMessage, window []MessageRecord, p *models.AntiSpamPolicy, now time.Time) *Detection

// evaluators run in this fixed order; the first match wins and later
// evaluators are not consulted, so one message logs at most one signature.
var evaluators = []evaluatorFunc{
	evalFlood,
	evalCopypastaShort,
	evalCopypastaLong,
	evalASCIIArt,
	evalEmojiSpam,
	evalZalgo,
	evalMassMention,
}

// Classify runs the evaluator pipeline over a message and its window.
// It returns nil when the policy is disabled, the author is exempt (bot,
// webhook, exempt user/role) or the channel is exempt.
func Classify(msg *InboundMessage, window []MessageRecord, p *models.AntiSpamPolicy, now time.Time) *Detection {
	if p == nil || !p.Enabled {
		return nil
	}
	if msg.AuthorBot || msg.Webhook {
		return nil
	}
	if p.IsChannelExempt(msg.ChannelID) || p.IsUserExempt(msg.AuthorID) || p.IsRoleExempt(msg.Roles) {
		return nil
	}

	for _, eval := range evaluators {
		if det := eval(msg, window, p, now); det != nil {
			return det
		}
	}
	return nil
}

// truncate limits s to max runes without splitting a multi-byte character
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
