package core

import "github.com/mtarnawa/keyack/internal/models"

// Pure transition functions over the session value. Every transition returns
// the next session; transitions that can close the gate also report whether
// this call released it. Closed is terminal: no transition leaves it.

func newSession(secret string) models.GateSession {
	return models.GateSession{
		Phase:  models.OpenUnconfirmed,
		Secret: secret,
	}
}

// closeSession discards the session, secret included. The owner of the
// secret keeps its own copy; the gate never hands it back.
func closeSession(models.GateSession) models.GateSession {
	return models.GateSession{Phase: models.Closed}
}

// setConfirmed is bound to the "I have saved this key" control. It is only
// reachable from the two open phases; the control does not exist on the
// warning surface.
func setConfirmed(s models.GateSession, confirmed bool) models.GateSession {
	switch s.Phase {
	case models.OpenUnconfirmed, models.OpenConfirmed:
		s.Confirmed = confirmed
		if confirmed {
			s.Phase = models.OpenConfirmed
		} else {
			s.Phase = models.OpenUnconfirmed
		}
	}
	return s
}

// requestDismiss handles any indirect close gesture. Confirmed sessions
// release immediately; unconfirmed ones are forked into the warning surface
// instead of closing, so a stray escape can never silently discard the key.
func requestDismiss(s models.GateSession) (models.GateSession, bool) {
	switch s.Phase {
	case models.OpenConfirmed:
		return closeSession(s), true
	case models.OpenUnconfirmed:
		s.Phase = models.WarningShown
		s.WarningVisible = true
	}
	// A dismiss while the warning is already up is a no-op: the warning
	// is the dismiss fork and must not stack.
	return s, false
}

// releaseNow is the primary continue action; inert unless confirmed.
func releaseNow(s models.GateSession) (models.GateSession, bool) {
	if s.Phase != models.OpenConfirmed {
		return s, false
	}
	return closeSession(s), true
}

// acceptWarningOverride is the single sanctioned way to leave the gate
// without confirming. Only reachable from the warning surface.
func acceptWarningOverride(s models.GateSession) (models.GateSession, bool) {
	if s.Phase != models.WarningShown {
		return s, false
	}
	return closeSession(s), true
}

func dismissWarning(s models.GateSession) models.GateSession {
	if s.Phase == models.WarningShown {
		s.Phase = models.OpenUnconfirmed
		s.WarningVisible = false
	}
	return s
}

// setCopied mutates the copy indicator without causing a phase transition.
// Valid in any open phase; dropped once the session is closed.
func setCopied(s models.GateSession, copied bool) models.GateSession {
	if s.Open() {
		s.CopiedRecently = copied
	}
	return s
}
