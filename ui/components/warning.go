package components

import (
	"strings"

	"github.com/mtarnawa/keyack/ui/styles"
)

// RenderWarning draws the dismiss-interception dialog. The override is the
// one route to losing the key forever, so it is rendered as the loud,
// destructive choice and never the default.
func RenderWarning() string {
	var b strings.Builder

	b.WriteString(styles.WarningTitleStyle().Render("You haven't confirmed your recovery key"))
	b.WriteString("\n\n")
	b.WriteString(styles.HintStyle().Render(
		"If you close now, the key will never be shown again.\n" +
			"Losing it means losing access to your data if you forget\n" +
			"your password."))
	b.WriteString("\n\n")
	b.WriteString(styles.SafeStyle().Render("esc go back"))
	b.WriteString(styles.HintStyle().Render("  •  "))
	b.WriteString(styles.DangerStyle().Render("y discard the key anyway"))

	return styles.WarningBoxStyle().Render(b.String())
}
