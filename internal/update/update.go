package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtarnawa/keyack/internal/dispatcher"
	"github.com/mtarnawa/keyack/internal/eventbus"
	"github.com/mtarnawa/keyack/internal/models"
)

func HandleUpdate(appModel *models.AppModel, msg tea.Msg, eb *eventbus.EventBus) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(appModel, msg, eb)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil
	case dispatcher.CoreEventMsg:
		return HandleCoreEvent(appModel, msg)
	}
	return nil
}
