package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/audio"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
	"github.com/vovakirdan/skyhop/internal/storage"
)

// Services are the optional collaborators of a game session.
// Nil fields disable the matching feature.
type Services struct {
	Runs   *storage.Store // Run log; finished rounds are appended
	Cues   *audio.Cues    // Sound cues
	Logger *log.Logger
	Player string // Name recorded in the run log
}

// Model is the Bubble Tea model for one skyhop session.
type Model struct {
	game       *skyhop.Game
	screen     *core.Screen
	renderer   *Renderer
	svc        Services
	config     core.RuntimeConfig
	keys       *KeyMapper
	holds      *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *skyhop.Game, cfg core.RuntimeConfig, svc Services) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if svc.Logger == nil {
		svc.Logger = log.Default()
	}

	gc := game.Config()
	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		renderer:   NewRenderer(gc.Palette().Background),
		svc:        svc,
		config:     cfg,
		keys:       NewKeyMapper(),
		holds:      NewHoldTracker(time.Duration(gc.Input.HoldMillis) * time.Millisecond),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// World coordinates do not depend on the terminal, so the round survives a resize
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		// The round in progress is abandoned, not submitted
		m.svc.Logger.Info("quit", "player", m.svc.Player, "phase", m.game.Phase(), "score", m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}

	if action, _ := m.keys.MapKey(msg); action == core.ActionLeft || action == core.ActionRight {
		m.holds.Press(action, m.now())
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.holds.Apply(&m.inputFrame, now)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.dispatch(result.Cues)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// dispatch forwards cues to sound and logging, and records finished rounds.
func (m Model) dispatch(cues []core.Cue) {
	if len(cues) == 0 {
		return
	}
	m.svc.Cues.Play(cues...)

	for _, c := range cues {
		switch c {
		case core.CueRoundStart:
			m.holds.Release()
			m.svc.Logger.Info("round started", "player", m.svc.Player, "best", m.game.Best())
		case core.CueGameOver:
			stats := m.game.Stats()
			m.svc.Logger.Info("round over",
				"player", m.svc.Player,
				"score", stats.Score,
				"frames", stats.Frames,
				"retired", stats.Retired,
			)
			m.saveRun(stats)
		case core.CueHighScore:
			m.svc.Logger.Info("new high score", "player", m.svc.Player, "score", m.game.Stats().Score)
		default:
			m.svc.Logger.Debug("cue", "cue", c)
		}
	}
}

// saveRun appends a finished round to the run log. Empty rounds are skipped.
func (m Model) saveRun(stats skyhop.RoundStats) {
	if m.svc.Runs == nil || stats.Score <= 0 {
		return
	}
	_, err := m.svc.Runs.SaveRun(storage.Run{
		Player:  m.svc.Player,
		Score:   stats.Score,
		Frames:  stats.Frames,
		Retired: stats.Retired,
	})
	if err != nil {
		m.svc.Logger.Error("failed to save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".skyhop", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.svc.Logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.svc.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.svc.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return m.renderer.RenderScreen(m.screen)
}

// Quitting reports whether the player asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game.
func Run(game *skyhop.Game, cfg core.RuntimeConfig, svc Services) error {
	p := tea.NewProgram(
		NewModel(game, cfg, svc),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok && m.Quitting() {
		m.svc.Logger.Debug("session closed by player")
	}
	return err
}
