package models

type Phase int

const (
	Closed Phase = iota
	OpenUnconfirmed
	OpenConfirmed
	WarningShown
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case OpenUnconfirmed:
		return "open"
	case OpenConfirmed:
		return "open-confirmed"
	case WarningShown:
		return "warning"
	}
	return "unknown"
}

// GateSession is the gate's state for one presentation of a recovery key.
// It is a plain value: transitions live in internal/core and produce a new
// session rather than mutating shared state.
type GateSession struct {
	Phase          Phase
	Secret         string // opaque, externally owned; never logged or persisted
	Confirmed      bool   // the sole gatekeeper for the safe release path
	WarningVisible bool
	CopiedRecently bool // short-lived indicator after a successful clipboard write
}

// Open reports whether the session is in any presented state.
func (s GateSession) Open() bool {
	return s.Phase != Closed
}
