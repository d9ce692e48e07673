package antispam

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/forPelevin/gomoji"
	"github.com/rivo/uniseg"
)

// customEmojiPattern matches Discord custom emoji tokens: an optional
// animated flag, a colon-delimited name and a numeric id.
var customEmojiPattern = regexp.MustCompile(`<a?:\w+:\d+>`)

// evalEmojiSpam counts custom-emoji tokens and Unicode emojis in the message
// and fires when the total reaches EmojiTotalThreshold or the number of
// distinct emojis reaches EmojiUniqueThreshold.
func evalEmojiSpam(msg *InboundMessage, window []MessageRecord, p *models.AntiSpamPolicy, now time.Time) *Detection {
	total, unique := countEmojis(msg.Content)
	if total < p.EmojiTotalThreshold && len(unique) < p.EmojiUniqueThreshold {
		return nil
	}

	evidence := fmt.Sprintf("Total: %d | Distintos: %d\nEmojis: %s\nMensaje: %s",
		total,
		len(unique),
		truncate(strings.Join(unique, " "), 400),
		truncate(msg.Content, 400),
	)
	return &Detection{Signature: SigEmojiSpam, Evidence: evidence}
}

// countEmojis returns the total number of emoji occurrences and the list of
// distinct emojis, in first-seen order. Unicode emojis are walked grapheme by
// grapheme so that multi-rune emojis count once per occurrence.
func countEmojis(content string) (int, []string) {
	total := 0
	seen := make(map[string]struct{})
	var unique []string

	mark := func(token string) {
		total++
		if _, ok := seen[token]; !ok {
			seen[token] = struct{}{}
			unique = append(unique, token)
		}
	}

	for _, token := range customEmojiPattern.FindAllString(content, -1) {
		mark(token)
	}

	gr := uniseg.NewGraphemes(content)
	for gr.Next() {
		g := gr.Str()
		if _, err := gomoji.GetInfo(g); err == nil {
			mark(g)
		}
	}

	return total, unique
}
