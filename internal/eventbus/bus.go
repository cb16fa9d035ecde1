package eventbus

import (
	"errors"

	"github.com/mtarnawa/keyack/internal/models"
)

// UIEvent represents events sent from UI to the gate core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from the gate core to UI
type CoreEvent interface {
	CoreEvent()
}

// CopyRequestedEvent - UI asks the gate to write the secret to the clipboard
type CopyRequestedEvent struct{}

func (e CopyRequestedEvent) UIEvent() {}

// ConfirmChangedEvent - user toggled the "I have saved this key" control
type ConfirmChangedEvent struct {
	Confirmed bool
}

func (e ConfirmChangedEvent) UIEvent() {}

// DismissRequestedEvent - host-level close gesture (escape, quit key)
type DismissRequestedEvent struct{}

func (e DismissRequestedEvent) UIEvent() {}

// ReleaseRequestedEvent - primary continue action
type ReleaseRequestedEvent struct{}

func (e ReleaseRequestedEvent) UIEvent() {}

// WarningAcceptedEvent - destructive override from the warning surface
type WarningAcceptedEvent struct{}

func (e WarningAcceptedEvent) UIEvent() {}

// WarningDismissedEvent - "go back" from the warning surface
type WarningDismissedEvent struct{}

func (e WarningDismissedEvent) UIEvent() {}

// StateUpdateEvent - gate core pushes a session snapshot to UI
type StateUpdateEvent struct {
	Session models.GateSession
}

func (e StateUpdateEvent) CoreEvent() {}

// ReleasedEvent - terminal transition fired; Confirmed is false when the
// release happened through the destructive override
type ReleasedEvent struct {
	Confirmed bool
}

func (e ReleasedEvent) CoreEvent() {}

// EventBus handles communication between UI and the gate core. Sends are
// non-blocking: a full channel returns an error instead of stalling the
// event loop on either side.
type EventBus struct {
	uiToCore chan UIEvent
	coreToUI chan CoreEvent
}

func NewEventBus() *EventBus {
	return &EventBus{
		uiToCore: make(chan UIEvent, 64),
		coreToUI: make(chan CoreEvent, 64),
	}
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	select {
	case eb.uiToCore <- event:
		return nil
	default:
		return errors.New("UI to core channel is full")
	}
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	select {
	case eb.coreToUI <- event:
		return nil
	default:
		return errors.New("core to UI channel is full")
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

func (eb *EventBus) Close() {
	close(eb.uiToCore)
	close(eb.coreToUI)
}
