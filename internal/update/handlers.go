package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtarnawa/keyack/internal/dispatcher"
	"github.com/mtarnawa/keyack/internal/eventbus"
	"github.com/mtarnawa/keyack/internal/models"
)

// HandleKeyMsg routes keyboard input to the gate core via the event bus.
// Keys are surface-scoped: the warning dialog owns the keyboard while it is
// visible. There is deliberately no key that quits the program directly;
// every close gesture goes through the gate as a dismiss request.
func HandleKeyMsg(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	if appModel.Released {
		return nil
	}

	switch appModel.Session.Phase {
	case models.WarningShown:
		handleWarningKeys(appModel, keyMsg, eb)
	case models.OpenUnconfirmed, models.OpenConfirmed:
		handlePrimaryKeys(appModel, keyMsg, eb)
	}
	return nil
}

func handlePrimaryKeys(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) {
	switch keyMsg.String() {
	case "esc", "q", "ctrl+c":
		// Indirect close attempt: the gate decides whether this
		// releases or forks into the warning.
		sendToCore(appModel, eb, eventbus.DismissRequestedEvent{})
	case "c":
		sendToCore(appModel, eb, eventbus.CopyRequestedEvent{})
	case " ":
		sendToCore(appModel, eb, eventbus.ConfirmChangedEvent{
			Confirmed: !appModel.Session.Confirmed,
		})
	case "enter":
		if appModel.Session.Confirmed {
			sendToCore(appModel, eb, eventbus.ReleaseRequestedEvent{})
		} else {
			appModel.Status = "Confirm you saved the key first"
		}
	}
}

func handleWarningKeys(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) {
	switch keyMsg.String() {
	case "y":
		sendToCore(appModel, eb, eventbus.WarningAcceptedEvent{})
	case "esc", "n", "enter":
		// Going back is the default; the destructive path needs the
		// explicit key.
		sendToCore(appModel, eb, eventbus.WarningDismissedEvent{})
	}
}

func sendToCore(appModel *models.AppModel, eb *eventbus.EventBus, event eventbus.UIEvent) {
	if err := eb.SendToCore(event); err != nil {
		appModel.Status = "Error sending event: " + err.Error()
	}
}

// HandleCoreEvent processes events pushed by the gate core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg dispatcher.CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.StateUpdateEvent:
		appModel.Session = event.Session
		appModel.Status = statusFor(event.Session)
	case eventbus.ReleasedEvent:
		appModel.Released = true
		appModel.Overridden = !event.Confirmed
		return tea.Quit
	}
	return nil
}

func statusFor(session models.GateSession) string {
	switch {
	case session.Phase == models.WarningShown:
		return "Recovery key not confirmed"
	case session.CopiedRecently:
		return "Copied to clipboard"
	case session.Confirmed:
		return "Press enter to continue"
	default:
		return "Save your recovery key"
	}
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}
