package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/handwave/catchball/internal/core"
	"github.com/handwave/catchball/internal/game"
	"github.com/handwave/catchball/internal/storage"
)

// Virtual hand motion tuning. The flick moves the hand fast enough for
// two consecutive frames to cross the throw threshold.
const (
	moveStep   = 0.025
	flickStep  = 0.06
	flickTicks = 2
)

// virtualHand is one keyboard-driven stand-in for a tracked hand.
type virtualHand struct {
	pos     core.Vec2
	present bool
	flick   int // upward flick ticks remaining
}

// DemoModel runs the engine against keyboard-controlled virtual hands.
// It produces the same landmark frames a camera client would, so the
// full catch/throw pipeline is exercised without a browser.
type DemoModel struct {
	game   *game.Game
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig

	keyMapper *KeyMapper
	input     core.InputFrame

	hands  [core.NumHands]virtualHand
	active core.HandSide

	started                time.Time
	throws, catches, drops int

	quitting bool
}

// NewDemoModel creates a demo model. The store may be nil; session
// results are then not persisted.
func NewDemoModel(store *storage.Store, cfg core.RuntimeConfig, width, height int) DemoModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 30
	}

	m := DemoModel{
		game:      game.New(),
		screen:    core.NewScreen(width, height),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		input:     core.NewInputFrame(),
		active:    core.HandLeft,
	}
	m.hands[core.HandLeft] = virtualHand{pos: core.Vec2{X: 0.35, Y: 0.7}, present: true}
	m.hands[core.HandRight] = virtualHand{pos: core.Vec2{X: 0.65, Y: 0.7}, present: true}
	return m
}

// Init initializes the demo.
func (m DemoModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m DemoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keyMapper.MapKeyToFrame(msg, &m.input) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleTick applies pending input, moves the virtual hands, and steps
// the simulation one frame.
func (m DemoModel) handleTick() (tea.Model, tea.Cmd) {
	if m.input.Has(core.ActionStart) {
		m.toggleSession()
	}
	if m.input.Has(core.ActionSwap) {
		m.active = core.HandSide(1 - int(m.active))
	}
	if m.input.Has(core.ActionPresence) {
		m.hands[m.active].present = !m.hands[m.active].present
	}
	if m.input.Has(core.ActionFlick) {
		m.hands[m.active].flick = flickTicks
	}

	h := &m.hands[m.active]
	if m.input.Has(core.ActionLeft) {
		h.pos.X -= moveStep
	}
	if m.input.Has(core.ActionRight) {
		h.pos.X += moveStep
	}
	if m.input.Has(core.ActionUp) {
		h.pos.Y -= moveStep
	}
	if m.input.Has(core.ActionDown) {
		h.pos.Y += moveStep
	}
	h.pos.X = core.ClampF(h.pos.X, 0, 1)
	h.pos.Y = core.ClampF(h.pos.Y, 0, 1)

	// Flicks run over multiple ticks so the throw gesture has a real
	// per-frame velocity, exactly like a camera would report.
	for side := range m.hands {
		vh := &m.hands[side]
		if vh.flick > 0 {
			vh.pos.Y -= flickStep
			vh.flick--
		}
	}

	result := m.game.Step(m.frame(), time.Now())
	m.countEvents(result.Events)

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// toggleSession starts an idle session or stops a playing one, saving
// the result on stop.
func (m *DemoModel) toggleSession() {
	if m.game.State() == game.StatePlaying {
		m.game.Stop()
		m.saveSession()
		return
	}

	m.game.Start(time.Now())
	m.started = time.Now()
	m.throws, m.catches, m.drops = 0, 0, 0
}

func (m *DemoModel) saveSession() {
	if m.store == nil {
		return
	}

	duration := 0
	if !m.started.IsZero() {
		duration = int(time.Since(m.started).Seconds())
	}
	//nolint:errcheck // Best-effort save
	m.store.SaveSession(storage.SessionResult{
		Score:       m.game.Score(),
		Throws:      m.throws,
		Catches:     m.catches,
		Drops:       m.drops,
		TargetBalls: m.game.TargetBalls(),
		Duration:    duration,
		EndReason:   "stopped",
	})
}

// frame builds the synthetic landmark frame for this tick.
func (m *DemoModel) frame() core.Frame {
	var frame core.Frame
	for side := range m.hands {
		vh := &m.hands[side]
		if !vh.present {
			continue
		}
		hf := core.HandFrame(core.HandSide(side), vh.pos)
		frame.Hands = append(frame.Hands, hf.Hands[0])
	}
	return frame
}

func (m *DemoModel) countEvents(events []game.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case game.EventThrown:
			m.throws++
		case game.EventCaught:
			m.catches++
		case game.EventDropped:
			m.drops++
		}
	}
}

// View renders the playfield plus a one-line key legend.
func (m DemoModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) +
		"\narrows/wasd move · space flick · h presence · tab swap hand · enter start/stop · q quit"
}

// IsQuitting returns true if the user requested to quit.
func (m DemoModel) IsQuitting() bool {
	return m.quitting
}

// Run starts the demo in the local terminal and blocks until exit.
func Run(store *storage.Store, cfg core.RuntimeConfig, width, height int) error {
	p := tea.NewProgram(
		NewDemoModel(store, cfg, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
