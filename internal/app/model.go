package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtarnawa/keyack/internal/dispatcher"
	"github.com/mtarnawa/keyack/internal/models"
	"github.com/mtarnawa/keyack/internal/update"
	"github.com/mtarnawa/keyack/ui/components"
)

func (m *AppModel) Init() tea.Cmd {
	return m.dispatcher.ListenForCoreEvents()
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(dispatcher.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	// Everything else goes through the event bus
	eventBus := m.dispatcher.GetEventBus()
	cmd := update.HandleUpdate(&m.appModel, msg, eventBus)

	return m, cmd
}

func (m *AppModel) View() string {
	var b strings.Builder

	switch m.appModel.Session.Phase {
	case models.WarningShown:
		b.WriteString(components.RenderWarning())
	case models.OpenUnconfirmed, models.OpenConfirmed:
		b.WriteString(components.RenderGate(m.appModel.Session))
	default:
		// Closed: nothing to show while the program tears down.
		return ""
	}

	b.WriteString("\n")
	b.WriteString(components.RenderStatus(m.appModel.Status, m.appModel.Width))

	return b.String()
}
