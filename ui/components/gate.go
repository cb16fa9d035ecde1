package components

import (
	"strings"

	"github.com/mtarnawa/keyack/internal/models"
	"github.com/mtarnawa/keyack/ui/styles"
)

// RenderGate draws the primary surface: the key, the acknowledgment
// checkbox, and the action hints.
func RenderGate(session models.GateSession) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle().Render("Your recovery key"))
	b.WriteString("\n\n")
	b.WriteString(styles.HintStyle().Render(
		"This key is shown only once. Store it somewhere safe:\n" +
			"without it, a lost password means your data is unrecoverable."))
	b.WriteString("\n\n")

	b.WriteString(styles.KeyStyle().Render(session.Secret))
	if session.CopiedRecently {
		b.WriteString("  ")
		b.WriteString(styles.CopiedStyle().Render("✓ copied"))
	}
	b.WriteString("\n\n")

	b.WriteString(renderCheckbox(session.Confirmed))
	b.WriteString("\n\n")
	b.WriteString(renderHints(session.Confirmed))

	return styles.CardStyle().Render(b.String())
}

func renderCheckbox(confirmed bool) string {
	box := "[ ]"
	if confirmed {
		box = "[x]"
	}
	return styles.CheckboxStyle(confirmed).Render(box + " I have saved this key")
}

func renderHints(confirmed bool) string {
	hints := []string{"space toggle", "c copy", "esc close"}
	if confirmed {
		hints = append([]string{"enter continue"}, hints...)
	}
	return styles.HintStyle().Render(strings.Join(hints, " • "))
}
