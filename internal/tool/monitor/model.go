package monitor

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWindowSize = 20
	defaultInterval   = 500 * time.Millisecond
)

var titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#92400e"))

// TickMsg asks the monitor mounted as MountID to take a sample.
type TickMsg struct {
	MountID string
	Time    time.Time
}

// Options configures a Model.
type Options struct {
	WindowSize int
	Interval   time.Duration
	// FooterSampler drives the memory readout. Nil uses a time-seeded RandomSampler.
	FooterSampler Sampler
}

// Model is the Bubble Tea model of the visualizer.
type Model struct {
	mountID  string
	sampler  Sampler
	footer   Sampler
	window   Window
	interval time.Duration

	memMB  int
	swapMB int

	width  int
	height int
}

// New creates a visualizer for one mount, pre-filling the window from sampler.
// Only the window consumes sampler, so it always holds the latest samples in order.
func New(mountID string, sampler Sampler, opts Options) Model {
	if opts.WindowSize < 1 {
		opts.WindowSize = defaultWindowSize
	}
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.FooterSampler == nil {
		opts.FooterSampler = NewRandomSampler(uint64(time.Now().UnixNano()))
	}
	m := Model{
		mountID:  mountID,
		sampler:  sampler,
		footer:   opts.FooterSampler,
		window:   NewWindow(opts.WindowSize, sampler),
		interval: opts.Interval,
		width:    80,
		height:   20,
	}
	m.readMemory()
	return m
}

// Init schedules the first refresh.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// MountID returns the id of the mount this monitor belongs to.
func (m Model) MountID() string {
	return m.mountID
}

// Window returns the current samples.
func (m Model) Window() Window {
	return m.window
}

// SetSize resizes the chart area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update takes a sample on each tick of this mount and schedules the next one.
// Ticks from other mounts end their chain here.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if msg.MountID != m.mountID {
			return m, nil
		}
		m.window.Push(m.sampler.Sample())
		m.readMemory()
		return m, m.tick()
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

// View renders the chart and footer.
func (m Model) View() string {
	// title, axis and footer take five lines
	rows := max(m.height-5, 4)
	colWidth := max((m.width-6)/m.window.Len()-1, 1)

	var b strings.Builder
	b.WriteString(titleStyle.Render("LOAD %  //  CPU_CORE_TEMP"))
	b.WriteString("\n")
	b.WriteString(RenderChart(m.window.Samples(), rows, colWidth))
	b.WriteString("\n")
	b.WriteString(RenderFooter(m.memMB, m.swapMB))
	return b.String()
}

func (m *Model) readMemory() {
	m.memMB = int(m.footer.Sample() * 10.24)
	m.swapMB = int(m.footer.Sample() * 5.12)
}

func (m Model) tick() tea.Cmd {
	id := m.mountID
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return TickMsg{MountID: id, Time: t}
	})
}
