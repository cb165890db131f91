package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/jukebox/internal/playlist"
	"github.com/desertthunder/jukebox/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	LibraryView ViewState = iota
	PlayingView
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	view         ViewState
	engine       *tasks.Engine
	library      *playlist.Basic
	logger       *log.Logger
	width        int
	height       int
	trackList    list.Model
	shuffle      bool
	repeat       int
	monitored    *playlist.Monitored
	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	result       *tasks.PlayResult
	err          error
	help         help.Model
	keys         keyMap
}

type progressUpdateMsg tasks.ProgressUpdate

type playbackCompleteMsg struct {
	result *tasks.PlayResult
	err    error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, engine *tasks.Engine, library *playlist.Basic, logger *log.Logger) *Model {
	tracks := library.Tracks()
	items := make([]list.Item, len(tracks))
	for i, track := range tracks {
		items[i] = trackItem{track: track}
	}

	trackList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	trackList.Title = fmt.Sprintf("Library: %s", library.Name())

	return &Model{
		ctx:       ctx,
		view:      LibraryView,
		engine:    engine,
		library:   library,
		logger:    logger,
		trackList: trackList,
		repeat:    1,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init implements [tea.Model]; the library is available immediately.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.trackList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case LibraryView:
			return m.handleLibraryKeys(msg)
		case PlayingView:
			return m.handlePlayingKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case progressUpdateMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case playbackCompleteMsg:
		m.result = msg.result
		m.err = msg.err
		m.view = ResultView
		m.progressChan = nil
		return m, nil
	}

	var cmd tea.Cmd
	if m.view == LibraryView {
		m.trackList, cmd = m.trackList.Update(msg)
	}
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil && m.view != ResultView {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case LibraryView:
		return m.renderLibrary()
	case PlayingView:
		return m.renderPlaying()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

func (m *Model) handleLibraryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.shuffle):
		m.shuffle = !m.shuffle
		return m, nil
	case key.Matches(msg, m.keys.repeat):
		m.repeat++
		if m.repeat > 3 {
			m.repeat = 1
		}
		return m, nil
	case key.Matches(msg, m.keys.volUp):
		m.engine.Player().SetVolume(m.engine.Player().Volume() + 5)
		return m, nil
	case key.Matches(msg, m.keys.volDown):
		m.engine.Player().SetVolume(m.engine.Player().Volume() - 5)
		return m, nil
	case key.Matches(msg, m.keys.play):
		m.view = PlayingView
		return m, m.startPlayback()
	}

	var cmd tea.Cmd
	m.trackList, cmd = m.trackList.Update(msg)
	return m, cmd
}

func (m *Model) handlePlayingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.restart):
		m.view = LibraryView
		m.result = nil
		m.err = nil
		return m, nil
	}
	return m, nil
}

// buildChain assembles the enhancer chain from the current toggles.
// Monitoring is always outermost so the result view can show analytics.
func (m *Model) buildChain() playlist.Playlist {
	var pl playlist.Playlist = m.library
	if m.shuffle {
		pl = playlist.NewShuffled(pl, m.engine, m.logger)
	}
	if m.repeat > 1 {
		pl = playlist.NewRepeated(pl, m.repeat, 300*time.Millisecond, m.logger)
	}
	m.monitored = playlist.NewMonitored(pl, m.logger, playlist.MonitorOpts{Label: m.library.Name()})
	return m.monitored
}

func (m *Model) startPlayback() tea.Cmd {
	chain := m.buildChain()
	m.progressChan = make(chan tasks.ProgressUpdate, 50)

	go func() {
		result, err := m.engine.Play(m.ctx, m.progressChan, chain)
		m.result = result
		m.err = err
		close(m.progressChan)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return playbackCompleteMsg{result: m.result, err: m.err}
		}

		update, ok := <-m.progressChan
		if !ok {
			return playbackCompleteMsg{result: m.result, err: m.err}
		}
		return progressUpdateMsg(update)
	}
}

func (m *Model) renderLibrary() string {
	toggles := fmt.Sprintf(
		"Shuffle: %s  Repeat: %dx  Volume: %d",
		onOff(m.shuffle), m.repeat, m.engine.Player().Volume(),
	)

	helpKeys := []key.Binding{m.keys.play, m.keys.shuffle, m.keys.repeat, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n\n%s\n%s", m.trackList.View(), styles.warn.Render(toggles), helpView)
}

func (m *Model) renderPlaying() string {
	title := styles.title.Render("Now Playing")

	var phase string
	switch m.progress.Phase {
	case tasks.StartPlayback:
		phase = m.progress.Message
	case tasks.PlayTrack:
		phase = fmt.Sprintf("♪ %s", m.progress.Message)
	case tasks.PlaybackDone:
		phase = m.progress.Message
	default:
		phase = "Starting..."
	}

	status := m.engine.Player().Status()
	return fmt.Sprintf("%s\n\n%s\n\n%s", title, phase, styles.help.Render(status.String()))
}

func (m *Model) renderResult() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Playback failed: %v\n\nPress b to go back, q to quit", m.err))
	}

	if m.result == nil {
		return styles.err.Render("No result available\n\nPress b to go back, q to quit")
	}

	title := styles.ok.Render("✓ Playback Complete")
	info := fmt.Sprintf("\n%s\nElapsed: %.1fs", m.result.Description, m.result.Elapsed.Seconds())

	var analytics string
	if m.monitored != nil {
		a := m.monitored.Analytics()
		analytics = fmt.Sprintf("\nPlays: %d  Total: %.1fs  Average: %.1fs", a.PlayCount, a.TotalSeconds, a.AverageSeconds)
	}

	helpKeys := []key.Binding{m.keys.restart, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s%s\n\n%s", title, info, analytics, helpView)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
