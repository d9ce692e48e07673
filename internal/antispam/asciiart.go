package antispam

import (
	"strings"
	"time"
	"unicode"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// evalASCIIArt fires on large ASCII blocks: the message needs at least
// AsciiArtMinLines lines in total and the same number of qualifying lines.
// A line qualifies when it is longer than AsciiArtThreshold and every
// non-whitespace rune is printable ASCII.
func evalASCIIArt(msg *InboundMessage, window []MessageRecord, p *models.AntiSpamPolicy, now time.Time) *Detection {
	lines := strings.Split(msg.Content, "\n")
	if len(lines) < p.AsciiArtMinLines {
		return nil
	}

	qualifying := 0
	for _, line := range lines {
		if len(line) <= p.AsciiArtThreshold {
			continue
		}
		if isASCIILine(line) {
			qualifying++
		}
	}
	if qualifying < p.AsciiArtMinLines {
		return nil
	}
	return &Detection{Signature: SigASCIIArt, Evidence: truncate(msg.Content, 600)}
}

func isASCIILine(line string) bool {
	for _, r := range line {
		if unicode.IsSpace(r) {
			continue
		}
		if r >= 128 {
			return false
		}
	}
	return true
}
