package dispatcher

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtarnawa/keyack/internal/eventbus"
)

// CoreEventMsg wraps gate core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// EventDispatcher handles routing events between the gate core and UI
type EventDispatcher struct {
	eventBus *eventbus.EventBus
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewEventDispatcher(eventBus *eventbus.EventBus) *EventDispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &EventDispatcher{
		eventBus: eventBus,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// ListenForCoreEvents returns a command that delivers the next core event to
// the UI loop. The UI re-issues it after each delivery to keep listening.
func (ed *EventDispatcher) ListenForCoreEvents() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ed.ctx.Done():
			return nil
		case event, ok := <-ed.eventBus.CoreToUI():
			if !ok {
				return nil
			}
			return CoreEventMsg{Event: event}
		}
	}
}

func (ed *EventDispatcher) Stop() {
	ed.cancel()
}

func (ed *EventDispatcher) GetEventBus() *eventbus.EventBus {
	return ed.eventBus
}
