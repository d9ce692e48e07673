package antispam

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// massMentionThreshold is how many resolved user mentions count as mass
// mention. Broadcast tokens fire regardless of the count.
const massMentionThreshold = 5

func evalMassMention(msg *InboundMessage, window []MessageRecord, p *models.AntiSpamPolicy, now time.Time) *Detection {
	everyone := strings.Contains(msg.Content, "@everyone")
	here := strings.Contains(msg.Content, "@here")

	if len(msg.Mentions) < massMentionThreshold && !everyone && !here {
		return nil
	}

	evidence := fmt.Sprintf("Menciones (%d): %s\n@everyone: %t | @here: %t\nMensaje: %s",
		len(msg.Mentions),
		strings.Join(msg.Mentions, ", "),
		everyone,
		here,
		truncate(msg.Content, 400),
	)
	return &Detection{Signature: SigMassMention, Evidence: evidence}
}
