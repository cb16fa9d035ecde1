package app

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtarnawa/keyack/internal/clipboard"
	"github.com/mtarnawa/keyack/internal/config"
	"github.com/mtarnawa/keyack/internal/core"
	"github.com/mtarnawa/keyack/internal/dispatcher"
	"github.com/mtarnawa/keyack/internal/eventbus"
	"github.com/mtarnawa/keyack/internal/models"
)

// Outcome reports how a presentation ended. Confirmed is false when the user
// took the destructive override.
type Outcome struct {
	Released  bool
	Confirmed bool
}

// Application wires the gate core, event bus, and UI for one presentation.
// It is the gate's host: it supplies the secret and receives the release.
type Application struct {
	config     *config.Config
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	gate       *core.GateService
	model      *AppModel
	secret     string

	mu      sync.Mutex
	outcome Outcome
}

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
}

func NewApplication(cfg *config.Config, secret string) *Application {
	eb := eventbus.NewEventBus()
	disp := dispatcher.NewEventDispatcher(eb)

	var clip clipboard.Writer
	if !cfg.DisableClipboard {
		clip = clipboard.System()
	}
	gate := core.NewGateService(eb, clip, cfg.CopyWindow())

	model := &AppModel{
		appModel:   models.AppModel{Status: "Save your recovery key"},
		dispatcher: disp,
	}

	return &Application{
		config:     cfg,
		eventBus:   eb,
		dispatcher: disp,
		gate:       gate,
		model:      model,
		secret:     secret,
	}
}

// Run presents the secret and blocks until the gate releases or the UI
// fails. The secret is the application's to dispose of afterwards.
func (app *Application) Run() (Outcome, error) {
	app.gate.Present(app.secret, func(confirmed bool) {
		app.mu.Lock()
		app.outcome = Outcome{Released: true, Confirmed: confirmed}
		app.mu.Unlock()
	})
	app.gate.Start()

	p := tea.NewProgram(app.model)
	_, err := p.Run()

	app.Stop()

	app.mu.Lock()
	outcome := app.outcome
	app.mu.Unlock()
	return outcome, err
}

func (app *Application) Stop() {
	app.gate.Stop()
	app.dispatcher.Stop()
}
