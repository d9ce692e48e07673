package antispam

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

// evalFlood fires when the author sent MessageLimit or more messages within
// the last IntervalSeconds. The evidence lists every qualifying entry.
func evalFlood(msg *InboundMessage, window []MessageRecord, p *models.AntiSpamPolicy, now time.Time) *Detection {
	interval := time.Duration(p.IntervalSeconds) * time.Second

	var hits []MessageRecord
	for _, rec := range window {
		if now.Sub(rec.Timestamp) < interval {
			hits = append(hits, rec)
		}
	}
	if len(hits) < p.MessageLimit {
		return nil
	}

	var b strings.Builder
	for _, rec := range hits {
		fmt.Fprintf(&b, "(%s) %s\n", rec.Timestamp.Format(time.RFC3339), truncate(rec.Content, 200))
	}
	return &Detection{Signature: SigFlood, Evidence: b.String()}
}
