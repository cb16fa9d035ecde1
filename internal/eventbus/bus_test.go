package eventbus

import (
	"testing"

	"github.com/mtarnawa/keyack/internal/models"
)

func TestSendToCoreDelivers(t *testing.T) {
	eb := NewEventBus()

	if err := eb.SendToCore(ConfirmChangedEvent{Confirmed: true}); err != nil {
		t.Fatal(err)
	}

	event := <-eb.UIToCore()
	confirm, ok := event.(ConfirmChangedEvent)
	if !ok || !confirm.Confirmed {
		t.Fatalf("expected ConfirmChangedEvent{true}, got %#v", event)
	}
}

func TestSendToUIDelivers(t *testing.T) {
	eb := NewEventBus()

	session := models.GateSession{Phase: models.OpenConfirmed, Confirmed: true}
	if err := eb.SendToUI(StateUpdateEvent{Session: session}); err != nil {
		t.Fatal(err)
	}

	event := <-eb.CoreToUI()
	st, ok := event.(StateUpdateEvent)
	if !ok || st.Session.Phase != models.OpenConfirmed {
		t.Fatalf("expected state update, got %#v", event)
	}
}

func TestSendNeverBlocksWhenFull(t *testing.T) {
	eb := NewEventBus()

	var err error
	for i := 0; i < 1000; i++ {
		if err = eb.SendToCore(CopyRequestedEvent{}); err != nil {
			break
		}
	}
	if err == nil {
		t.Fatal("expected an error once the channel filled")
	}
}
