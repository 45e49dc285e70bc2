// Package tui is the interactive trace player: a bubbletea program that
// steps through a trace by hand or on a timer.
//
// The model is used only from the bubbletea event loop.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ansonlam23/algorithm-visualizer/internal/render"
	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

const (
	speedStep       = 0.5
	defaultBarWidth = 40
	chromeWidth     = 12
)

// Options configures the player.
type Options struct {
	Speed            float64
	Autoplay         bool
	ShowDescriptions bool
}

// tickMsg advances playback. gen discards ticks scheduled before the last
// play, pause or speed change.
type tickMsg struct {
	gen int
}

// Model is the bubbletea model of the player.
type Model struct {
	info     sorting.Info
	counters replay.Counters
	player   *replay.Player
	opts     Options

	keys keyMap
	help help.Model

	styles map[replay.Status]lipgloss.Style
	width  int
	gen    int

	quitting bool
}

// New creates a player for res.
func New(res sorting.Result, opts Options) (Model, error) {
	info, err := sorting.Lookup(res.Algorithm)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	player := replay.NewPlayer(res.Trace)

	if opts.Speed > 0 {
		if err := player.SetSpeed(opts.Speed); err != nil {
			return Model{}, fmt.Errorf("tui: %w", err)
		}
	}

	styles := make(map[replay.Status]lipgloss.Style, len(replay.Statuses()))
	for _, status := range replay.Statuses() {
		styles[status] = lipgloss.NewStyle().Foreground(lipgloss.Color(render.StatusHex(status)))
	}

	m := Model{
		info:     info,
		counters: res.Counters,
		player:   player,
		opts:     opts,
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   styles,
		width:    defaultBarWidth + chromeWidth,
	}

	if opts.Autoplay {
		m.player.Play()
	}

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.player.Playing() {
		return m.tick()
	}

	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tickMsg:
		if msg.gen != m.gen || !m.player.Playing() {
			return m, nil
		}

		if m.player.Advance() {
			return m, m.tick()
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true

		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.player.Toggle()

		return m.restartTicks()
	case key.Matches(msg, m.keys.Prev):
		m.player.Pause()
		m.player.Prev()
	case key.Matches(msg, m.keys.Next):
		m.player.Pause()
		m.player.Next()
	case key.Matches(msg, m.keys.First):
		m.player.Pause()
		m.player.First()
	case key.Matches(msg, m.keys.Last):
		m.player.Pause()
		m.player.Last()
	case key.Matches(msg, m.keys.Faster):
		_ = m.player.SetSpeed(m.player.Speed() + speedStep)

		return m.restartTicks()
	case key.Matches(msg, m.keys.Slower):
		_ = m.player.SetSpeed(max(replay.MinSpeed, m.player.Speed()-speedStep))

		return m.restartTicks()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// restartTicks invalidates pending ticks and schedules a fresh one at the
// current interval when playing.
func (m Model) restartTicks() (tea.Model, tea.Cmd) {
	m.gen++

	if !m.player.Playing() {
		return m, nil
	}

	return m, m.tick()
}

func (m Model) tick() tea.Cmd {
	gen := m.gen

	return tea.Tick(m.player.Interval(), func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Index returns the current step.
func (m Model) Index() int { return m.player.Index() }

// Playing reports whether autoplay is running.
func (m Model) Playing() bool { return m.player.Playing() }

// Speed returns the playback speed multiplier.
func (m Model) Speed() float64 { return m.player.Speed() }

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	statsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	descStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("250"))
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap, ok := m.player.Current()
	if !ok {
		return "Empty trace.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.info.Title))
	b.WriteString("  ")
	b.WriteString(statsStyle.Render(fmt.Sprintf("%s time, %s space", m.info.TimeComplexity, m.info.SpaceComplexity)))
	b.WriteString("\n\n")
	b.WriteString(m.bars(snap))
	b.WriteString("\n")

	state := "paused"
	if m.player.Playing() {
		state = "playing"
	}

	b.WriteString(statsStyle.Render(fmt.Sprintf("Step %d/%d  %.1fx  %s  %d comparisons  %d exchanges",
		m.player.Index(), m.player.TotalSteps(), m.player.Speed(), state,
		m.counters.Comparisons, m.counters.Exchanges)))
	b.WriteString("\n")

	if m.opts.ShowDescriptions && snap.Description != "" {
		b.WriteString(descStyle.Render(snap.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")

	return b.String()
}

func (m Model) bars(snap replay.Snapshot) string {
	if len(snap.Array) == 0 {
		return "(empty)\n"
	}

	maxAbs := 1
	for _, el := range snap.Array {
		maxAbs = max(maxAbs, abs(el.Value))
	}

	barWidth := max(render.DefaultWidth/8, m.width-chromeWidth)

	var b strings.Builder

	for _, el := range snap.Array {
		length := max(abs(el.Value)*barWidth/maxAbs, min(1, abs(el.Value)))
		bar := m.styles[el.Status].Render(strings.Repeat("█", length))
		fmt.Fprintf(&b, "%3d │%s %s\n", el.Index, bar, strconv.Itoa(el.Value))
	}

	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Run plays res in the terminal until the user quits or ctx ends.
func Run(ctx context.Context, res sorting.Result, opts Options) error {
	model, err := New(res, opts)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return fmt.Errorf("run player: %w", err)
	}

	return nil
}
