package antispam

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/pmezard/go-difflib/difflib"
)

// copypastaLongWindow is how far back the 5-minute variant looks
const copypastaLongWindow = 300 * time.Second

// copypastaMinMatches is how many near-identical priors are needed to fire
const copypastaMinMatches = 2

// Similarity returns the Ratcliff/Obershelp ratio between two strings,
// in [0,1]. Empty content never matches instead of failing. Comparison is
// rune level so accented and emoji content measures the same as plain text.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	// Autojunk off: on long messages it would discount repeated runes,
	// which is exactly what spam is made of.
	m := difflib.NewMatcherWithJunk(strings.Split(a, ""), strings.Split(b, ""), false, nil)
	return m.Ratio()
}

// evalCopypastaShort compares the newest message against the three messages
// before it; two or more ratios strictly above the threshold fire a match.
func evalCopypastaShort(msg *InboundMessage, window []MessageRecord, p *models.AntiSpamPolicy, now time.Time) *Detection {
	if len(window) < 2 {
		return nil
	}
	priors := window[:len(window)-1]
	if len(priors) > 3 {
		priors = priors[len(priors)-3:]
	}
	matches := similarPriors(msg.Content, priors, p.SimilarityThreshold)
	if len(matches) < copypastaMinMatches {
		return nil
	}
	return &Detection{Signature: SigCopypasta, Evidence: copypastaEvidence(msg.Content, matches)}
}

// evalCopypastaLong applies the same similarity test to every window entry of
// the last five minutes, excluding the newest message itself.
func evalCopypastaLong(msg *InboundMessage, window []MessageRecord, p *models.AntiSpamPolicy, now time.Time) *Detection {
	if len(window) < 2 {
		return nil
	}
	var priors []MessageRecord
	for _, rec := range window[:len(window)-1] {
		if now.Sub(rec.Timestamp) < copypastaLongWindow {
			priors = append(priors, rec)
		}
	}
	matches := similarPriors(msg.Content, priors, p.SimilarityThreshold)
	if len(matches) < copypastaMinMatches {
		return nil
	}
	return &Detection{Signature: SigCopypasta5m, Evidence: copypastaEvidence(msg.Content, matches)}
}

func similarPriors(newest string, priors []MessageRecord, threshold float64) []MessageRecord {
	var matches []MessageRecord
	for _, rec := range priors {
		if Similarity(newest, rec.Content) > threshold {
			matches = append(matches, rec)
		}
	}
	return matches
}

func copypastaEvidence(newest string, matches []MessageRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mensaje: %s\n", truncate(newest, 400))
	for _, rec := range matches {
		fmt.Fprintf(&b, "Similar a (%s): %s\n", rec.Timestamp.Format(time.RFC3339), truncate(rec.Content, 400))
	}
	return b.String()
}
