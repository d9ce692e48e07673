package antispam

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// zalgoThreshold is fixed: more combining marks than this is never organic
// text. Not configurable per guild.
const zalgoThreshold = 15

// evalZalgo counts Unicode combining diacritical marks (U+0300..U+036F and
// U+0489) and fires when the count exceeds the fixed threshold.
func evalZalgo(msg *InboundMessage, window []MessageRecord, p *models.AntiSpamPolicy, now time.Time) *Detection {
	count := 0
	for _, r := range msg.Content {
		if (r >= 0x0300 && r <= 0x036F) || r == 0x0489 {
			count++
		}
	}
	if count <= zalgoThreshold {
		return nil
	}

	evidence := fmt.Sprintf("Marcas combinadas: %d\nMensaje: %s", count, truncate(msg.Content, 400))
	return &Detection{Signature: SigZalgo, Evidence: evidence}
}
