package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/stagehand/internal/config"
	"github.com/1broseidon/stagehand/internal/geom"
	"github.com/1broseidon/stagehand/internal/gesture"
	"github.com/1broseidon/stagehand/internal/panel"
	"github.com/1broseidon/stagehand/internal/prefs"
)

// Cell-unit layout constants. The terminal stage works in character cells,
// so panel minimums are far smaller than the pixel minimums the daemon uses.
const (
	minPanelWidthCells  = 18
	minPanelHeightCells = 5

	defaultComposerRows = 3
	maxComposerRows     = 10
)

// commitMsg carries a committed registry snapshot into the update loop.
// Frame-coalesced gesture commits land on a scheduler goroutine, so they
// cross into bubbletea through a channel rather than mutating the model.
type commitMsg panel.Snapshot

// model is the root bubbletea model for the stage.
type model struct {
	reg  *panel.Registry
	gest *gesture.Controller

	snap    panel.Snapshot
	commits chan panel.Snapshot

	composerRows int

	// Terminal dimensions
	width  int
	height int

	status string
}

func newModel(cfg *config.Config) *model {
	defaults := map[panel.Kind]panel.Default{
		panel.KindChat:        {Rect: geom.Rect{X: 2, Y: 1, Width: 46, Height: 16}, Open: true},
		panel.KindJobs:        {Rect: geom.Rect{X: 30, Y: 4, Width: 40, Height: 12}},
		panel.KindAgentConfig: {Rect: geom.Rect{X: 16, Y: 8, Width: 38, Height: 14}},
	}
	for k, d := range cfg.PanelDefaultsByKind() {
		if existing, ok := defaults[k]; ok {
			existing.Open = d.Open
			defaults[k] = existing
		}
	}

	// Stage starts empty; the first WindowSizeMsg reflows everything into
	// the real terminal size.
	reg := panel.NewRegistry(
		geom.Rect{},
		geom.Size{Width: minPanelWidthCells, Height: minPanelHeightCells},
		defaults,
	)

	interval := gesture.DefaultFrameInterval
	if cfg.FrameIntervalMS > 0 {
		interval = time.Duration(cfg.FrameIntervalMS) * time.Millisecond
	}

	m := &model{
		reg:          reg,
		gest:         gesture.NewController(reg, gesture.NewTickScheduler(interval)),
		snap:         reg.Snapshot(),
		commits:      make(chan panel.Snapshot, 1),
		composerRows: defaultComposerRows,
	}

	if rows, ok := prefs.ComposerHeight(); ok && rows <= maxComposerRows {
		m.composerRows = rows
	}

	reg.SetRenderFunc(m.pushCommit)

	return m
}

// pushCommit hands a snapshot to the update loop, replacing any stale one
// still waiting. Only the latest committed frame matters.
func (m *model) pushCommit(snap panel.Snapshot) {
	for {
		select {
		case m.commits <- snap:
			return
		default:
			select {
			case <-m.commits:
			default:
			}
		}
	}
}

func (m *model) listenForCommits() tea.Cmd {
	return func() tea.Msg {
		return commitMsg(<-m.commits)
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return m.listenForCommits()
}

// Update implements tea.Model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commitMsg:
		m.snap = panel.Snapshot(msg)
		return m, m.listenForCommits()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Bottom row is the help bar; the rest is stage.
		m.reg.Reflow(geom.Rect{Width: m.width, Height: m.height - 1})
		m.snap = m.reg.Snapshot()
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.gest.Close()
		return m, tea.Quit

	case "esc":
		m.gest.Cancel()
		m.snap = m.reg.Snapshot()

	case "c":
		m.reg.ToggleOpen(panel.KindChat)
		m.snap = m.reg.Snapshot()
	case "j":
		m.reg.ToggleOpen(panel.KindJobs)
		m.snap = m.reg.Snapshot()
	case "a":
		m.reg.ToggleOpen(panel.KindAgentConfig)
		m.snap = m.reg.Snapshot()

	case "m":
		if k := topmostOpen(m.snap); k != "" {
			m.reg.ToggleMaximize(k)
			m.snap = m.reg.Snapshot()
		}

	case "+", "=":
		m.adjustComposer(1)
	case "-":
		m.adjustComposer(-1)
	}

	return m, nil
}

// adjustComposer resizes the chat composer area and persists the preference.
func (m *model) adjustComposer(delta int) {
	rows := m.composerRows + delta
	if rows < 1 || rows > maxComposerRows {
		return
	}
	m.composerRows = rows
	if err := prefs.SaveComposerHeight(rows); err != nil {
		m.status = fmt.Sprintf("composer height not saved: %v", err)
	}
}

func (m *model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.handlePress(msg.X, msg.Y)

	case tea.MouseActionMotion:
		if m.gest.Active() {
			m.gest.Update(msg.X, msg.Y)
		}

	case tea.MouseActionRelease:
		if m.gest.Active() {
			m.gest.End()
			m.snap = m.reg.Snapshot()
		}
	}

	return m, nil
}

// handlePress routes a left press by hit region. Buttons act immediately;
// the title bar and resize handle start gestures; the body just raises.
func (m *model) handlePress(x, y int) {
	k, reg := hitTest(m.snap, x, y)
	if k == "" {
		return
	}

	switch reg {
	case regionClose:
		m.reg.ToggleOpen(k)
		m.snap = m.reg.Snapshot()
	case regionMaximize:
		m.reg.ToggleMaximize(k)
		m.snap = m.reg.Snapshot()
	case regionTitleBar:
		m.gest.Begin(k, gesture.KindMove, x, y)
		m.snap = m.reg.Snapshot()
	case regionResize:
		m.gest.Begin(k, gesture.KindResize, x, y)
		m.snap = m.reg.Snapshot()
	case regionBody:
		m.reg.BringToFront(k)
		m.snap = m.reg.Snapshot()
	}
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

// View implements tea.Model.
func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	stageRect := geom.Rect{Width: m.width, Height: m.height - 1}
	content := renderStage(m.snap, stageRect, topmostOpen(m.snap), m.composerRows)

	help := m.status
	if help == "" {
		help = "c/j/a toggle panels · m maximize · drag title to move · drag corner to resize · +/- composer · q quit"
	}

	return content + "\n" + helpStyle.Render(truncateTo(help, m.width))
}

func truncateTo(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w])
}
