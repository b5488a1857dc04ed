package chat

import (
	"context"
	"strings"

	"github.com/Cyclone1070/cassette/internal/ui/services"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// PendingIndicator is shown while a request is in flight.
const PendingIndicator = ">> PROCESSING... [||||||    ]"

var (
	operatorLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#92400e"))
	operatorTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#fcd34d"))
	motherLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#92400e"))
	motherTextStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
	failureTextStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	pendingStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#b45309"))
	promptStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
)

// ResponseMsg carries a reply back to the console that asked for it.
type ResponseMsg struct {
	MountID string
	Prompt  string
	Reply   Reply
}

// Options configures a Console.
type Options struct {
	Greeting string
	Renderer services.MarkdownRenderer
	Logger   *zap.Logger
}

// Console is the Bubble Tea model of the AI console.
type Console struct {
	mountID    string
	responder  Responder
	renderer   services.MarkdownRenderer
	logger     *zap.Logger
	transcript Transcript

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	pending  bool

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// NewConsole creates a console for one mount of the tool. Requests run under a
// context derived from parent that is cancelled by Close.
func NewConsole(parent context.Context, mountID string, responder Responder, opts Options) Console {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "ENTER COMMAND..."
	ti.Prompt = promptStyle.Render("> ")
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = pendingStyle

	ctx, cancel := context.WithCancel(parent)

	c := Console{
		mountID:    mountID,
		responder:  responder,
		renderer:   opts.Renderer,
		logger:     logger,
		transcript: NewTranscript(opts.Greeting),
		input:      ti,
		viewport:   viewport.New(80, 20),
		spinner:    sp,
		ctx:        ctx,
		cancel:     cancel,
		width:      80,
		height:     24,
	}
	c.refresh()
	return c
}

// Init starts the cursor blink.
func (c Console) Init() tea.Cmd {
	return textinput.Blink
}

// MountID returns the id of the mount this console belongs to.
func (c Console) MountID() string {
	return c.mountID
}

// Transcript returns the conversation so far.
func (c Console) Transcript() Transcript {
	return c.transcript
}

// Pending reports whether a request is in flight.
func (c Console) Pending() bool {
	return c.pending
}

// Close cancels any request in flight. The console must not be used afterwards.
func (c Console) Close() {
	c.cancel()
}

// SetSize resizes the console to the given outer dimensions.
func (c *Console) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.input.Width = max(width-4, 1)
	c.viewport.Width = width
	// input line and pending line
	c.viewport.Height = max(height-2, 1)
	c.refresh()
}

// Update handles input, replies and spinner ticks.
func (c Console) Update(msg tea.Msg) (Console, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return c.submit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			c.viewport, cmd = c.viewport.Update(msg)
			return c, cmd
		}

	case ResponseMsg:
		if msg.MountID != c.mountID {
			return c, nil
		}
		c.pending = false
		c.transcript.Append(Message{
			Role:   RoleAssistant,
			Text:   msg.Reply.Text,
			Failed: msg.Reply.Failed,
		})
		c.refresh()
		return c, nil

	case spinner.TickMsg:
		if !c.pending {
			return c, nil
		}
		var cmd tea.Cmd
		c.spinner, cmd = c.spinner.Update(msg)
		return c, cmd

	case tea.WindowSizeMsg:
		c.SetSize(msg.Width, msg.Height)
		return c, nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

func (c Console) submit() (Console, tea.Cmd) {
	prompt := strings.TrimSpace(c.input.Value())
	if c.pending || prompt == "" {
		return c, nil
	}

	c.input.SetValue("")
	c.transcript.Append(Message{Role: RoleUser, Text: prompt})
	c.pending = true
	c.refresh()

	c.logger.Debug("chat prompt submitted", zap.String("mount_id", c.mountID), zap.Int("length", len(prompt)))

	return c, tea.Batch(c.request(prompt), c.spinner.Tick)
}

func (c Console) request(prompt string) tea.Cmd {
	ctx, responder, mountID := c.ctx, c.responder, c.mountID
	return func() tea.Msg {
		return ResponseMsg{
			MountID: mountID,
			Prompt:  prompt,
			Reply:   responder.Respond(ctx, prompt),
		}
	}
}

// View renders the transcript, the pending indicator and the input line.
func (c Console) View() string {
	status := ""
	if c.pending {
		status = pendingStyle.Render(PendingIndicator + " " + c.spinner.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		c.viewport.View(),
		status,
		c.input.View(),
	)
}

func (c *Console) refresh() {
	c.viewport.SetContent(FormatTranscript(c.transcript, c.width, c.renderer))
	c.viewport.GotoBottom()
}

// FormatTranscript renders messages for the console viewport. Assistant text is
// rendered as markdown when a renderer is available, falling back to plain text.
func FormatTranscript(t Transcript, width int, renderer services.MarkdownRenderer) string {
	var lines []string
	for _, msg := range t.messages {
		switch msg.Role {
		case RoleUser:
			lines = append(lines,
				operatorLabelStyle.Render(">> OPERATOR"),
				operatorTextStyle.Render(msg.Text),
			)
		default:
			lines = append(lines, motherLabelStyle.Render(">> MOTHER"))
			switch {
			case msg.Failed:
				lines = append(lines, failureTextStyle.Render(msg.Text))
			case renderer != nil:
				rendered, err := services.RenderMarkdown(msg.Text, width-4, renderer)
				if err != nil {
					lines = append(lines, motherTextStyle.Render(msg.Text))
				} else {
					lines = append(lines, rendered)
				}
			default:
				lines = append(lines, motherTextStyle.Render(msg.Text))
			}
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
