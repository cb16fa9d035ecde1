package models

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Session    GateSession // latest snapshot pushed by the gate core
	Status     string      // Status bar text
	Released   bool        // gate fired its release; UI is shutting down
	Overridden bool        // release happened via the destructive override
	Width      int         // Terminal width
	Height     int         // Terminal height
}
