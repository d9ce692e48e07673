package antispam

import (
	"strings"
	"testing"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

func testPolicy() *models.AntiSpamPolicy {
	p := models.DefaultAntiSpamPolicy("guild-1")
	p.Enabled = true
	return p
}

func testMessage(content string) *InboundMessage {
	return &InboundMessage{
		GuildID:    "guild-1",
		ChannelID:  "chan-1",
		MessageID:  "msg-1",
		AuthorID:   "user-1",
		AuthorName: "tester",
		Content:    content,
		Timestamp:  time.Now(),
	}
}

func windowOf(now time.Time, contents ...string) []MessageRecord {
	window := make([]MessageRecord, 0, len(contents))
	for i, c := range contents {
		window = append(window, MessageRecord{
			Timestamp: now.Add(time.Duration(i-len(contents)+1) * time.Second),
			Content:   c,
			AuthorID:  "user-1",
		})
	}
	return window
}

func TestFloodBelowLimitNeverFires(t *testing.T) {
	p := testPolicy()
	p.MessageLimit = 3
	p.IntervalSeconds = 5
	now := time.Now()

	window := windowOf(now, "a", "b")
	if det := evalFlood(testMessage("b"), window, p, now); det != nil {
		t.Errorf("flood fired with %d messages, limit %d", len(window), p.MessageLimit)
	}
}

func TestFloodScenario(t *testing.T) {
	// three messages at t=0,1,2 with limit 3 / interval 5s
	p := testPolicy()
	p.MessageLimit = 3
	p.IntervalSeconds = 5

	base := time.Now()
	window := []MessageRecord{
		{Timestamp: base, Content: "uno", AuthorID: "user-1"},
		{Timestamp: base.Add(1 * time.Second), Content: "dos", AuthorID: "user-1"},
		{Timestamp: base.Add(2 * time.Second), Content: "tres", AuthorID: "user-1"},
	}

	det := evalFlood(testMessage("tres"), window, p, base.Add(2*time.Second))
	if det == nil {
		t.Fatal("flood did not fire on the third message")
	}
	if det.Signature != SigFlood {
		t.Errorf("signature = %q, want %q", det.Signature, SigFlood)
	}
	if lines := strings.Count(strings.TrimSpace(det.Evidence), "\n") + 1; lines != 3 {
		t.Errorf("evidence lists %d entries, want 3:\n%s", lines, det.Evidence)
	}
}

func TestFloodIgnoresOldMessages(t *testing.T) {
	p := testPolicy()
	p.MessageLimit = 3
	p.IntervalSeconds = 5
	now := time.Now()

	window := []MessageRecord{
		{Timestamp: now.Add(-time.Minute), Content: "viejo", AuthorID: "user-1"},
		{Timestamp: now.Add(-time.Second), Content: "a", AuthorID: "user-1"},
		{Timestamp: now, Content: "b", AuthorID: "user-1"},
	}
	if det := evalFlood(testMessage("b"), window, p, now); det != nil {
		t.Error("flood fired counting a message outside the interval")
	}
}

func TestSimilarityProperties(t *testing.T) {
	a, b := "buy now!!!", "cheap pills here"
	if got, want := Similarity(a, b), Similarity(b, a); got != want {
		t.Errorf("similarity is not symmetric: %v vs %v", got, want)
	}
	if got := Similarity(a, a); got != 1.0 {
		t.Errorf("similarity(a,a) = %v, want 1.0", got)
	}
	if got := Similarity("", "algo"); got != 0 {
		t.Errorf("similarity with empty string = %v, want 0", got)
	}
}

func TestSimilarityRatio(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"abcd", "bcde", 0.75}, // shared "bcd": 2*3/8
		{"hola mundo", "hola mundo", 1.0},
		{"aaaa", "bbbb", 0.0},
	}
	for _, tc := range cases {
		if got := Similarity(tc.a, tc.b); got != tc.want {
			t.Errorf("Similarity(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCopypastaThresholds(t *testing.T) {
	now := time.Now()
	window := windowOf(now, "buy now!!", "buy now!!", "buy now!!!")
	msg := testMessage("buy now!!!")

	p := testPolicy()
	p.SimilarityThreshold = 0.85
	det := evalCopypastaShort(msg, window, p, now)
	if det == nil {
		t.Fatal("copypasta did not fire at threshold 0.85")
	}
	if det.Signature != SigCopypasta {
		t.Errorf("signature = %q, want %q", det.Signature, SigCopypasta)
	}

	p.SimilarityThreshold = 0.99
	if det := evalCopypastaShort(msg, window, p, now); det != nil {
		t.Error("copypasta fired at threshold 0.99")
	}
}

func TestCopypastaNeedsTwoMatches(t *testing.T) {
	now := time.Now()
	// only one of the priors resembles the newest message
	window := windowOf(now, "totalmente distinto", "buy now!!", "buy now!!!")
	p := testPolicy()
	p.SimilarityThreshold = 0.85

	if det := evalCopypastaShort(testMessage("buy now!!!"), window, p, now); det != nil {
		t.Error("copypasta fired with a single similar prior")
	}
}

func TestCopypastaLongWindowExcludesStale(t *testing.T) {
	now := time.Now()
	p := testPolicy()
	p.SimilarityThreshold = 0.85

	window := []MessageRecord{
		{Timestamp: now.Add(-10 * time.Minute), Content: "buy now!!!", AuthorID: "user-1"},
		{Timestamp: now.Add(-9 * time.Minute), Content: "buy now!!!", AuthorID: "user-1"},
		{Timestamp: now, Content: "buy now!!!", AuthorID: "user-1"},
	}
	if det := evalCopypastaLong(testMessage("buy now!!!"), window, p, now); det != nil {
		t.Error("5-minute copypasta counted messages older than 300s")
	}

	window[0].Timestamp = now.Add(-time.Minute)
	window[1].Timestamp = now.Add(-30 * time.Second)
	det := evalCopypastaLong(testMessage("buy now!!!"), window, p, now)
	if det == nil {
		t.Fatal("5-minute copypasta did not fire on recent repeats")
	}
	if det.Signature != SigCopypasta5m {
		t.Errorf("signature = %q, want %q", det.Signature, SigCopypasta5m)
	}
}

func TestASCIIArtRespectsMinLines(t *testing.T) {
	p := testPolicy()
	p.AsciiArtThreshold = 10
	p.AsciiArtMinLines = 4
	now := time.Now()

	long := strings.Repeat("#", 40)
	threeLines := strings.Join([]string{long, long, long}, "\n")
	if det := evalASCIIArt(testMessage(threeLines), nil, p, now); det != nil {
		t.Error("ascii-art fired with fewer lines than the minimum")
	}

	fourLines := strings.Join([]string{long, long, long, long}, "\n")
	det := evalASCIIArt(testMessage(fourLines), nil, p, now)
	if det == nil {
		t.Fatal("ascii-art did not fire on a qualifying block")
	}
	if det.Signature != SigASCIIArt {
		t.Errorf("signature = %q, want %q", det.Signature, SigASCIIArt)
	}
}

func TestASCIIArtIgnoresNonASCIILines(t *testing.T) {
	p := testPolicy()
	p.AsciiArtThreshold = 10
	p.AsciiArtMinLines = 2
	now := time.Now()

	unicodeLine := strings.Repeat("ñ", 40)
	content := unicodeLine + "\n" + unicodeLine
	if det := evalASCIIArt(testMessage(content), nil, p, now); det != nil {
		t.Error("ascii-art fired on lines with non-ASCII characters")
	}
}

func TestCountEmojisMixed(t *testing.T) {
	total, unique := countEmojis("hola <:pepe:123456789> 🔥 mundo")
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	if len(unique) != 2 {
		t.Errorf("unique = %d, want 2", len(unique))
	}
}

func TestEmojiSpamRepeatedEmoji(t *testing.T) {
	p := testPolicy()
	p.EmojiTotalThreshold = 15
	now := time.Now()

	msg := testMessage(strings.Repeat("🔥", 20))
	det := evalEmojiSpam(msg, nil, p, now)
	if det == nil {
		t.Fatal("emoji spam did not fire on 20 repeated emojis")
	}
	if !strings.Contains(det.Evidence, "Total: 20") {
		t.Errorf("evidence missing total count: %s", det.Evidence)
	}
	if !strings.Contains(det.Evidence, "Distintos: 1") {
		t.Errorf("evidence missing unique count: %s", det.Evidence)
	}
}

func TestEmojiSpamUniqueThreshold(t *testing.T) {
	p := testPolicy()
	p.EmojiTotalThreshold = 100
	p.EmojiUniqueThreshold = 3
	now := time.Now()

	if det := evalEmojiSpam(testMessage("😀 😃 😄"), nil, p, now); det == nil {
		t.Error("emoji spam did not fire on the unique threshold")
	}
	if det := evalEmojiSpam(testMessage("😀 😃"), nil, p, now); det != nil {
		t.Error("emoji spam fired below both thresholds")
	}
}

func TestZalgoFixedThreshold(t *testing.T) {
	p := testPolicy()
	now := time.Now()

	calm := "hola" + strings.Repeat("́", 15)
	if det := evalZalgo(testMessage(calm), nil, p, now); det != nil {
		t.Error("zalgo fired at exactly 15 marks")
	}

	cursed := "hola" + strings.Repeat("́", 16)
	det := evalZalgo(testMessage(cursed), nil, p, now)
	if det == nil {
		t.Fatal("zalgo did not fire above 15 marks")
	}
	if !strings.Contains(det.Evidence, "16") {
		t.Errorf("evidence missing mark count: %s", det.Evidence)
	}
}

func TestMassMentionByCount(t *testing.T) {
	p := testPolicy()
	now := time.Now()

	msg := testMessage("miren esto")
	msg.Mentions = []string{"1", "2", "3", "4", "5", "6"}

	det := evalMassMention(msg, nil, p, now)
	if det == nil {
		t.Fatal("mass mention did not fire on 6 mentions")
	}
	for _, id := range msg.Mentions {
		if !strings.Contains(det.Evidence, id) {
			t.Errorf("evidence missing mention %s: %s", id, det.Evidence)
		}
	}

	msg.Mentions = msg.Mentions[:4]
	if det := evalMassMention(msg, nil, p, now); det != nil {
		t.Error("mass mention fired below the threshold without broadcast tokens")
	}
}

func TestMassMentionBroadcastTokens(t *testing.T) {
	p := testPolicy()
	now := time.Now()

	if det := evalMassMention(testMessage("hola @everyone"), nil, p, now); det == nil {
		t.Error("mass mention did not fire on @everyone")
	}
	if det := evalMassMention(testMessage("hola @here"), nil, p, now); det == nil {
		t.Error("mass mention did not fire on @here")
	}
}

func TestTruncateIsRuneSafe(t *testing.T) {
	if got := truncate("ññññ", 2); got != "ññ" {
		t.Errorf("truncate = %q, want %q", got, "ññ")
	}
	if got := truncate("corto", 10); got != "corto" {
		t.Errorf("truncate = %q, want %q", got, "corto")
	}
}
