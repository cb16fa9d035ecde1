package core

import (
	"context"
	"sync"
	"time"

	"github.com/mtarnawa/keyack/internal/clipboard"
	"github.com/mtarnawa/keyack/internal/eventbus"
)

// internalEvent carries completions of the gate's own async work (clipboard
// writes, indicator decay) back into the event loop, so every state mutation
// is serialized with UI events.
type internalEvent interface {
	internalEvent()
}

type copyResultEvent struct {
	sessionGen uint64
	err        error
}

func (copyResultEvent) internalEvent() {}

type copyExpiredEvent struct {
	sessionGen uint64
	copyGen    uint64
}

func (copyExpiredEvent) internalEvent() {}

// GateService is the acknowledgment gate core. It owns the session, consumes
// UI events from the bus on a single goroutine, and pushes snapshots back.
// One loop means no two transitions are ever in flight at once.
type GateService struct {
	state      *GateState
	eventBus   *eventbus.EventBus
	clip       clipboard.Writer // may be nil: copy requests become no-ops
	copyWindow time.Duration
	internal   chan internalEvent
	ctx        context.Context
	cancel     context.CancelFunc

	mu         sync.Mutex
	onReleased func(confirmed bool)
}

// NewGateService creates the gate core. clip may be nil when the host has no
// clipboard; copyWindow is how long the copy indicator stays lit.
func NewGateService(eb *eventbus.EventBus, clip clipboard.Writer, copyWindow time.Duration) *GateService {
	ctx, cancel := context.WithCancel(context.Background())
	return &GateService{
		state:      NewGateState(),
		eventBus:   eb,
		clip:       clip,
		copyWindow: copyWindow,
		internal:   make(chan internalEvent, 16),
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Present opens the gate with the given secret and begins a fresh session.
// onReleased is invoked exactly once per session, on the terminal
// transition, whether release came via confirmed completion or the
// destructive override. Re-presenting starts over: nothing carries across
// sessions.
func (gs *GateService) Present(secret string, onReleased func(confirmed bool)) {
	gs.mu.Lock()
	gs.onReleased = onReleased
	gs.mu.Unlock()

	gs.state.BeginSession(secret)
	gs.pushStateToUI()
}

// Start runs the gate event loop in a goroutine
func (gs *GateService) Start() {
	go gs.eventLoop()
}

func (gs *GateService) Stop() {
	gs.cancel()
}

func (gs *GateService) eventLoop() {
	for {
		select {
		case <-gs.ctx.Done():
			return
		case event, ok := <-gs.eventBus.UIToCore():
			if !ok {
				return
			}
			gs.handleUIEvent(event)
		case event := <-gs.internal:
			gs.handleInternalEvent(event)
		}
	}
}

func (gs *GateService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.CopyRequestedEvent:
		gs.copySecretToClipboard()
	case eventbus.ConfirmChangedEvent:
		gs.state.SetConfirmed(e.Confirmed)
		gs.pushStateToUI()
	case eventbus.DismissRequestedEvent:
		released := gs.state.RequestDismiss()
		gs.pushStateToUI()
		if released {
			gs.fireReleased(true)
		}
	case eventbus.ReleaseRequestedEvent:
		released := gs.state.ReleaseNow()
		gs.pushStateToUI()
		if released {
			gs.fireReleased(true)
		}
	case eventbus.WarningAcceptedEvent:
		released := gs.state.AcceptWarningOverride()
		gs.pushStateToUI()
		if released {
			gs.fireReleased(false)
		}
	case eventbus.WarningDismissedEvent:
		gs.state.DismissWarning()
		gs.pushStateToUI()
	}
}

func (gs *GateService) handleInternalEvent(event internalEvent) {
	switch e := event.(type) {
	case copyResultEvent:
		// Clipboard failure is swallowed: the rendered key stays
		// selectable, so copy is convenience, not a requirement.
		if e.err != nil {
			return
		}
		copyGen, ok := gs.state.MarkCopied(e.sessionGen)
		if !ok {
			// Write finished after the session was torn down.
			return
		}
		gs.pushStateToUI()
		gs.scheduleCopyDecay(e.sessionGen, copyGen)
	case copyExpiredEvent:
		// A later copy restarts the window; its bump makes this decay
		// stale and ClearCopied rejects it.
		if gs.state.ClearCopied(e.sessionGen, e.copyGen) {
			gs.pushStateToUI()
		}
	}
}

// copySecretToClipboard starts a best-effort async write of the secret. The
// loop stays responsive while the write is pending; its result re-enters the
// loop as an internal event tagged with the session it belongs to.
func (gs *GateService) copySecretToClipboard() {
	session := gs.state.Snapshot()
	if !session.Open() || gs.clip == nil {
		return
	}
	sessionGen := gs.state.SessionGen()
	secret := session.Secret

	go func() {
		err := gs.clip.WriteText(secret)
		gs.postInternal(copyResultEvent{sessionGen: sessionGen, err: err})
	}()
}

func (gs *GateService) scheduleCopyDecay(sessionGen, copyGen uint64) {
	time.AfterFunc(gs.copyWindow, func() {
		gs.postInternal(copyExpiredEvent{sessionGen: sessionGen, copyGen: copyGen})
	})
}

// postInternal never blocks: if the loop is gone or the buffer is full the
// event is dropped, which is safe because every internal event is a
// revalidated hint, not a command.
func (gs *GateService) postInternal(event internalEvent) {
	select {
	case gs.internal <- event:
	case <-gs.ctx.Done():
	default:
	}
}

func (gs *GateService) fireReleased(confirmed bool) {
	gs.mu.Lock()
	onReleased := gs.onReleased
	gs.onReleased = nil
	gs.mu.Unlock()

	if onReleased != nil {
		onReleased(confirmed)
	}
	gs.eventBus.SendToUI(eventbus.ReleasedEvent{Confirmed: confirmed})
}

func (gs *GateService) pushStateToUI() {
	gs.eventBus.SendToUI(eventbus.StateUpdateEvent{Session: gs.state.Snapshot()})
}
