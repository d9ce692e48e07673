package mod

import (
	"fmt"
	"strings"
	"testing"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// The autocomplete flow depends on this responder existing on the shared
// command context; the handler in this package calls it directly.
var _ func([]*discordgo.ApplicationCommandOptionChoice) error = (&discord.CommandContext{}).SendAutoCompleteChoices

func TestWarnChoicesBuildsNameAndValue(t *testing.T) {
	warns := []models.Warn{
		{ID: "w-1", Reason: "flood en general"},
		{ID: "w-2", Reason: "lenguaje"},
	}

	choices := warnChoices(warns)
	if len(choices) != 2 {
		t.Fatalf("choices = %d, want 2", len(choices))
	}
	if choices[0].Value != "w-1" {
		t.Errorf("choice value = %v, want w-1", choices[0].Value)
	}
	if want := "ID: w-1 - Razón: flood en general"; choices[0].Name != want {
		t.Errorf("choice name = %q, want %q", choices[0].Name, want)
	}
}

func TestWarnChoicesCapsAtTwentyFive(t *testing.T) {
	warns := make([]models.Warn, 40)
	for i := range warns {
		warns[i] = models.Warn{ID: fmt.Sprintf("w-%d", i), Reason: "spam"}
	}

	if got := len(warnChoices(warns)); got != 25 {
		t.Errorf("choices = %d, want 25", got)
	}
}

func TestWarnChoicesTruncatesLongNames(t *testing.T) {
	warns := []models.Warn{{ID: "w-1", Reason: strings.Repeat("a", 200)}}

	name := warnChoices(warns)[0].Name
	if len(name) != 100 {
		t.Errorf("name length = %d, want 100", len(name))
	}
	if !strings.HasSuffix(name, "...") {
		t.Errorf("truncated name does not end in ellipsis: %q", name)
	}
}
