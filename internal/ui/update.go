package ui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Cyclone1070/cassette/internal/catalog"
	"github.com/Cyclone1070/cassette/internal/config"
	"github.com/Cyclone1070/cassette/internal/dispatch"
	provider "github.com/Cyclone1070/cassette/internal/provider/models"
	"github.com/Cyclone1070/cassette/internal/shell"
	"github.com/Cyclone1070/cassette/internal/tool/chat"
	"github.com/Cyclone1070/cassette/internal/tool/document"
	"github.com/Cyclone1070/cassette/internal/tool/monitor"
	"github.com/Cyclone1070/cassette/internal/tool/unsupported"
	"github.com/Cyclone1070/cassette/internal/ui/services"
	"github.com/Cyclone1070/cassette/internal/ui/views"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type focusArea int

const (
	focusGrid focusArea = iota
	focusBreadcrumbs
)

type clockMsg time.Time

// BubbleTeaModel implements tea.Model
type BubbleTeaModel struct {
	ctx    context.Context
	tree   *catalog.Tree
	cfg    *config.Config
	logger *zap.Logger

	responder  chat.Responder
	renderer   services.MarkdownRenderer
	newSampler func() monitor.Sampler
	newMountID func() string

	state    shell.State
	selected int
	focus    focusArea
	crumb    int

	tool    toolModel
	mountID string

	keys  keyMap
	help  help.Model
	clock time.Time

	width  int
	height int
}

func newBubbleTeaModel(ctx context.Context, deps Dependencies) BubbleTeaModel {
	if deps.Tree == nil {
		deps.Tree = catalog.Default()
	}
	if deps.Config == nil {
		deps.Config = config.DefaultConfig()
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Responder == nil {
		deps.Responder = chat.NewUnavailableResponder(provider.ErrMissingAPIKey, deps.Logger)
	}
	if deps.NewSampler == nil {
		deps.NewSampler = func() monitor.Sampler {
			return monitor.NewRandomSampler(uint64(time.Now().UnixNano()))
		}
	}
	if deps.NewMountID == nil {
		deps.NewMountID = uuid.NewString
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	h := help.New()
	h.ShortSeparator = " · "

	return BubbleTeaModel{
		ctx:        ctx,
		tree:       deps.Tree,
		cfg:        deps.Config,
		logger:     deps.Logger,
		responder:  deps.Responder,
		renderer:   deps.Renderer,
		newSampler: deps.NewSampler,
		newMountID: deps.NewMountID,
		state:      shell.New(deps.Tree),
		keys:       defaultKeyMap(),
		help:       h,
		clock:      deps.Now(),
		width:      80,
		height:     24,
	}
}

// State returns the shell state.
func (m BubbleTeaModel) State() shell.State {
	return m.state
}

// Init starts the clock.
func (m BubbleTeaModel) Init() tea.Cmd {
	return m.tickClock()
}

// Update handles messages
func (m BubbleTeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.tool != nil {
			m.tool = m.tool.resize(m.toolSize())
		}
		return m, nil

	case clockMsg:
		m.clock = time.Time(msg)
		return m, m.tickClock()

	case chat.ResponseMsg:
		return m.routeToTool(msg.MountID, msg)

	case monitor.TickMsg:
		return m.routeToTool(msg.MountID, msg)
	}

	// spinner ticks, cursor blinks
	if m.tool != nil {
		var cmd tea.Cmd
		m.tool, cmd = m.tool.update(msg)
		return m, cmd
	}
	return m, nil
}

// routeToTool delivers msg to the mounted tool if it was produced by that mount.
func (m BubbleTeaModel) routeToTool(mountID string, msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.tool == nil || mountID != m.mountID {
		m.logger.Debug("dropped stale tool message",
			zap.String("mount_id", mountID),
			zap.String("current_mount_id", m.mountID),
			zap.String("type", fmt.Sprintf("%T", msg)),
		)
		return m, nil
	}
	var cmd tea.Cmd
	m.tool, cmd = m.tool.update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m BubbleTeaModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.unmount()
		return m, tea.Quit
	}

	// While a tool runs only the terminate control is routed to the shell.
	if !m.state.Browsing() {
		if key.Matches(msg, m.keys.Terminate) {
			return m.apply(shell.Terminate{})
		}
		if m.tool == nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.tool, cmd = m.tool.update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Jump):
		n, err := strconv.Atoi(msg.String())
		if err != nil || n > len(m.state.Trail) {
			return m, nil
		}
		m.focus = focusGrid
		return m.apply(shell.JumpTo{ID: m.state.Trail[n-1].ID})
	}

	if m.focus == focusBreadcrumbs {
		return m.handleBreadcrumbKey(msg)
	}

	columns := max(m.cfg.UI.GridColumns, 1)
	switch {
	case key.Matches(msg, m.keys.Focus):
		m.focus = focusBreadcrumbs
		m.crumb = len(m.state.Trail) - 1
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-columns)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(columns)
	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Open):
		items := m.items()
		if m.selected < 0 || m.selected >= len(items) {
			return m, nil
		}
		return m.apply(shell.Activate{Item: items[m.selected]})
	}
	return m, nil
}

func (m BubbleTeaModel) handleBreadcrumbKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Terminate):
		m.focus = focusGrid
	case key.Matches(msg, m.keys.Left):
		if m.crumb > 0 {
			m.crumb--
		}
	case key.Matches(msg, m.keys.Right):
		if m.crumb < len(m.state.Trail)-1 {
			m.crumb++
		}
	case key.Matches(msg, m.keys.Open):
		m.focus = focusGrid
		return m.apply(shell.JumpToIndex{Index: m.crumb})
	}
	return m, nil
}

// apply runs event through the reducer and mounts or unmounts the tool on a mode change.
// A rejected event leaves the state untouched.
func (m BubbleTeaModel) apply(event shell.Event) (tea.Model, tea.Cmd) {
	prev := m.state
	next, err := shell.Reduce(m.tree, m.state, event)
	if err != nil {
		m.logger.Error("shell transition rejected",
			zap.String("event", fmt.Sprintf("%T", event)),
			zap.Stringer("trail", prev.Trail),
			zap.Error(err),
		)
		return m, nil
	}
	m.state = next

	trailChanged := !prev.Trail.Equal(next.Trail)
	if trailChanged || prev.Mode() != next.Mode() {
		m.logger.Info("shell transition",
			zap.String("from", string(prev.Mode())),
			zap.String("to", string(next.Mode())),
			zap.Stringer("trail", next.Trail),
		)
	}
	if trailChanged {
		m.selected = 0
	}

	var cmd tea.Cmd
	switch {
	case prev.Active == nil && next.Active != nil:
		cmd = m.mount(next.Active, next.View)
	case prev.Active != nil && next.Active == nil:
		m.unmount()
	}
	return m, cmd
}

func (m *BubbleTeaModel) mount(file *catalog.File, view dispatch.View) tea.Cmd {
	m.mountID = m.newMountID()
	width, height := m.toolSize()

	var tool toolModel
	switch v := view.(type) {
	case dispatch.ChatConsoleView:
		tool = chatTool{chat.NewConsole(m.ctx, m.mountID, m.responder, chat.Options{
			Greeting: m.cfg.Chat.Greeting,
			Renderer: m.renderer,
			Logger:   m.logger,
		})}
	case dispatch.MonitorView:
		tool = monitorTool{monitor.New(m.mountID, m.newSampler(), monitor.Options{
			WindowSize:    m.cfg.Monitor.WindowSize,
			Interval:      time.Duration(m.cfg.Monitor.RefreshIntervalMs) * time.Millisecond,
			FooterSampler: m.newSampler(),
		})}
	case dispatch.DocumentView:
		tool = documentTool{document.New(v.Content)}
	case dispatch.UnsupportedView:
		tool = unsupportedTool{unsupported.New(v.Tool)}
	default:
		tool = unsupportedTool{unsupported.New(file.Tool())}
	}
	m.tool = tool.resize(width, height)

	m.logger.Info("tool mounted",
		zap.String("mount_id", m.mountID),
		zap.String("item", file.ID()),
		zap.String("tool", string(file.Tool())),
	)
	return m.tool.Init()
}

func (m *BubbleTeaModel) unmount() {
	if m.tool == nil {
		return
	}
	m.tool.close()
	m.logger.Info("tool unmounted", zap.String("mount_id", m.mountID))
	m.tool = nil
	m.mountID = ""
}

func (m *BubbleTeaModel) moveSelection(delta int) {
	next := m.selected + delta
	if next < 0 || next >= len(m.items()) {
		return
	}
	m.selected = next
}

// items returns the children of the current folder.
func (m BubbleTeaModel) items() []catalog.Item {
	folder, err := m.state.Folder(m.tree)
	if err != nil {
		m.logger.Error("resolve current folder", zap.Stringer("trail", m.state.Trail), zap.Error(err))
		return nil
	}
	return folder.Children()
}

func (m BubbleTeaModel) toolSize() (int, int) {
	return max(m.width, 20), max(m.height-views.ChromeHeight, 5)
}

func (m BubbleTeaModel) tickClock() tea.Cmd {
	interval := time.Duration(m.cfg.UI.ClockIntervalMs) * time.Millisecond
	if interval <= 0 {
		interval = time.Second
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

// View renders the UI
func (m BubbleTeaModel) View() string {
	screen := views.Screen{
		Width:      m.width,
		Height:     m.height,
		Now:        m.clock,
		Trail:      m.state.Trail,
		Columns:    m.cfg.UI.GridColumns,
		CrumbFocus: m.focus == focusBreadcrumbs,
		CrumbIndex: m.crumb,
	}

	switch {
	case !m.state.Browsing() && m.tool != nil:
		screen.Tool = &views.ToolFrame{
			Name:  m.state.Active.Name(),
			Title: m.state.View.Title(),
			Body:  m.tool.View(),
		}
		screen.Help = m.help.ShortHelpView(m.keys.runningHelp())
	case m.focus == focusBreadcrumbs:
		screen.Items = m.items()
		screen.Selected = m.selected
		screen.Help = m.help.ShortHelpView(m.keys.breadcrumbHelp())
	default:
		screen.Items = m.items()
		screen.Selected = m.selected
		screen.Help = m.help.ShortHelpView(m.keys.browsingHelp())
	}

	return views.RenderRoot(screen)
}
