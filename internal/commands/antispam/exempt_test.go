package antispam

import (
	"strings"
	"testing"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
)

func TestUpdateIDListAdd(t *testing.T) {
	ids := updateIDList([]string{"a", "b"}, "c", true)
	if len(ids) != 3 || ids[2] != "c" {
		t.Errorf("expected [a b c], got %v", ids)
	}

	// adding an existing id keeps the list free of duplicates
	ids = updateIDList(ids, "b", true)
	count := 0
	for _, v := range ids {
		if v == "b" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("id b duplicated: %v", ids)
	}
}

func TestUpdateIDListRemove(t *testing.T) {
	ids := updateIDList([]string{"a", "b", "c"}, "b", false)
	if len(ids) != 2 {
		t.Errorf("expected 2 ids, got %v", ids)
	}
	for _, v := range ids {
		if v == "b" {
			t.Errorf("id b still present: %v", ids)
		}
	}

	// removing an absent id is a no-op
	ids = updateIDList(ids, "zzz", false)
	if len(ids) != 2 {
		t.Errorf("removing an absent id changed the list: %v", ids)
	}
}

func TestFormatExemptions(t *testing.T) {
	p := models.DefaultAntiSpamPolicy("guild-1")
	if got := formatExemptions(p); got != "Ninguna" {
		t.Errorf("empty exemptions should render as Ninguna, got %q", got)
	}

	p.ExemptChannels = []string{"111"}
	p.ExemptRoles = []string{"222"}
	p.ExemptUsers = []string{"333"}

	got := formatExemptions(p)
	for _, want := range []string{"<#111>", "<@&222>", "<@333>"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s in %q", want, got)
		}
	}
}

func TestPunishmentLabelCoversAllKinds(t *testing.T) {
	for _, k := range []models.PunishmentKind{
		models.PunishmentTimeout,
		models.PunishmentKick,
		models.PunishmentBan,
		models.PunishmentNone,
	} {
		if punishmentLabel(k) == string(k) {
			t.Errorf("no label for kind %q", k)
		}
	}
}
