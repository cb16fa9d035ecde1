package styles

import "github.com/charmbracelet/lipgloss"

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true).
		Padding(0, 1)
}

func CardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)
}

// KeyStyle renders the recovery key itself. Plain foreground on purpose:
// the text must stay selectable for the manual copy fallback.
func KeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Bold(true).
		Padding(0, 1)
}

func CopiedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))
}

func CheckboxStyle(checked bool) lipgloss.Style {
	if checked {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
}

func HintStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

// Warning surface: the destructive path must read as destructive.

func WarningBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color("196")).
		Padding(1, 2)
}

func WarningTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)
}

func DangerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)
}

func SafeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)
}
