package components

import (
	"strings"
	"testing"

	"github.com/mtarnawa/keyack/internal/models"
)

func TestGateShowsSelectableKey(t *testing.T) {
	out := RenderGate(models.GateSession{
		Phase:  models.OpenUnconfirmed,
		Secret: "AB12-CD34-EF56",
	})

	if !strings.Contains(out, "AB12-CD34-EF56") {
		t.Fatal("key must be rendered as plain selectable text")
	}
	if !strings.Contains(out, "[ ]") {
		t.Fatal("unconfirmed gate must show an unchecked box")
	}
	if strings.Contains(out, "enter continue") {
		t.Fatal("continue hint must be hidden while unconfirmed")
	}
	if strings.Contains(out, "copied") {
		t.Fatal("copy indicator must be off before a copy")
	}
}

func TestGateConfirmedAndCopied(t *testing.T) {
	out := RenderGate(models.GateSession{
		Phase:          models.OpenConfirmed,
		Secret:         "key",
		Confirmed:      true,
		CopiedRecently: true,
	})

	if !strings.Contains(out, "[x]") {
		t.Fatal("confirmed gate must show a checked box")
	}
	if !strings.Contains(out, "enter continue") {
		t.Fatal("continue hint must appear once confirmed")
	}
	if !strings.Contains(out, "copied") {
		t.Fatal("copy indicator missing")
	}
}

func TestWarningNamesBothPaths(t *testing.T) {
	out := RenderWarning()

	if !strings.Contains(out, "go back") {
		t.Fatal("safe path missing")
	}
	if !strings.Contains(out, "discard") {
		t.Fatal("destructive path must be explicit about the loss")
	}
}
