package core

import (
	"sync"

	"github.com/mtarnawa/keyack/internal/models"
)

// GateState owns the live session for event-driven architecture. All
// mutations go through the pure transitions in session.go under the lock,
// so each event observes and produces a consistent session.
//
// The generation counters guard asynchronous completions: a clipboard write
// or indicator decay that finishes after the session it belongs to was torn
// down (or after a later copy restarted the window) must be a no-op.
type GateState struct {
	mu         sync.RWMutex
	session    models.GateSession
	sessionGen uint64 // bumped on every Present
	copyGen    uint64 // bumped on every successful clipboard write
}

func NewGateState() *GateState {
	return &GateState{
		session: models.GateSession{Phase: models.Closed},
	}
}

// BeginSession resets to a fresh session for the given secret and returns
// the new session generation. Prior sessions' pending async work is
// invalidated by the bump.
func (gs *GateState) BeginSession(secret string) uint64 {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.sessionGen++
	gs.copyGen = 0
	gs.session = newSession(secret)
	return gs.sessionGen
}

func (gs *GateState) Snapshot() models.GateSession {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.session
}

func (gs *GateState) SessionGen() uint64 {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.sessionGen
}

func (gs *GateState) SetConfirmed(confirmed bool) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.session = setConfirmed(gs.session, confirmed)
}

// RequestDismiss applies the dismiss fork. Reports whether this call
// released the gate.
func (gs *GateState) RequestDismiss() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	var released bool
	gs.session, released = requestDismiss(gs.session)
	return released
}

func (gs *GateState) ReleaseNow() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	var released bool
	gs.session, released = releaseNow(gs.session)
	return released
}

func (gs *GateState) AcceptWarningOverride() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	var released bool
	gs.session, released = acceptWarningOverride(gs.session)
	return released
}

func (gs *GateState) DismissWarning() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.session = dismissWarning(gs.session)
}

// MarkCopied records a successful clipboard write for the given session
// generation and returns the copy generation owning the decay window.
// Returns ok=false for stale sessions, which the caller must drop.
func (gs *GateState) MarkCopied(sessionGen uint64) (uint64, bool) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if sessionGen != gs.sessionGen || !gs.session.Open() {
		return 0, false
	}
	gs.copyGen++
	gs.session = setCopied(gs.session, true)
	return gs.copyGen, true
}

// ClearCopied reverts the copy indicator if the given generations still own
// it. A later copy restarts the window by bumping copyGen, which makes the
// earlier decay stale here.
func (gs *GateState) ClearCopied(sessionGen, copyGen uint64) bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	if sessionGen != gs.sessionGen || copyGen != gs.copyGen || !gs.session.Open() {
		return false
	}
	gs.session = setCopied(gs.session, false)
	return true
}
