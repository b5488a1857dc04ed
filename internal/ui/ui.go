// Package ui hosts the shell in a Bubble Tea program.
package ui

import (
	"context"
	"time"

	"github.com/Cyclone1070/cassette/internal/catalog"
	"github.com/Cyclone1070/cassette/internal/config"
	"github.com/Cyclone1070/cassette/internal/tool/chat"
	"github.com/Cyclone1070/cassette/internal/tool/monitor"
	"github.com/Cyclone1070/cassette/internal/ui/services"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Dependencies holds everything the shell needs. Nil fields get defaults.
type Dependencies struct {
	Tree      *catalog.Tree
	Config    *config.Config
	Responder chat.Responder
	Renderer  services.MarkdownRenderer
	Logger    *zap.Logger

	// NewSampler is called twice on every monitor mount: once for the chart and once for the memory footer.
	NewSampler func() monitor.Sampler
	// NewMountID returns a unique id for each tool activation.
	NewMountID func() string
	Now        func() time.Time
}

// UI runs the shell.
type UI struct {
	program *tea.Program
	cancel  context.CancelFunc
}

// NewUI creates the Bubble Tea program. Requests started by tools are
// cancelled when ctx is done or the program exits.
func NewUI(ctx context.Context, deps Dependencies) *UI {
	ctx, cancel := context.WithCancel(ctx)
	model := newBubbleTeaModel(ctx, deps)

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if model.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	return &UI{
		program: tea.NewProgram(model, opts...),
		cancel:  cancel,
	}
}

// Start runs the program until the user quits.
func (u *UI) Start() error {
	defer u.cancel()
	_, err := u.program.Run()
	return err
}
