package ui

import (
	"github.com/Cyclone1070/cassette/internal/tool/chat"
	"github.com/Cyclone1070/cassette/internal/tool/document"
	"github.com/Cyclone1070/cassette/internal/tool/monitor"
	"github.com/Cyclone1070/cassette/internal/tool/unsupported"
	tea "github.com/charmbracelet/bubbletea"
)

// toolModel is a mounted tool as seen by the host.
type toolModel interface {
	Init() tea.Cmd
	View() string
	update(msg tea.Msg) (toolModel, tea.Cmd)
	resize(width, height int) toolModel
	close()
}

type chatTool struct{ chat.Console }

func (t chatTool) update(msg tea.Msg) (toolModel, tea.Cmd) {
	c, cmd := t.Console.Update(msg)
	return chatTool{c}, cmd
}

func (t chatTool) resize(width, height int) toolModel {
	t.Console.SetSize(width, height)
	return t
}

func (t chatTool) close() { t.Console.Close() }

type monitorTool struct{ monitor.Model }

func (t monitorTool) update(msg tea.Msg) (toolModel, tea.Cmd) {
	m, cmd := t.Model.Update(msg)
	return monitorTool{m}, cmd
}

func (t monitorTool) resize(width, height int) toolModel {
	t.Model.SetSize(width, height)
	return t
}

// Pending ticks are dropped by mount id.
func (t monitorTool) close() {}

type documentTool struct{ document.Model }

func (t documentTool) update(msg tea.Msg) (toolModel, tea.Cmd) {
	m, cmd := t.Model.Update(msg)
	return documentTool{m}, cmd
}

func (t documentTool) resize(width, height int) toolModel {
	t.Model.SetSize(width, height)
	return t
}

func (t documentTool) close() {}

type unsupportedTool struct{ unsupported.Model }

func (t unsupportedTool) update(msg tea.Msg) (toolModel, tea.Cmd) {
	m, cmd := t.Model.Update(msg)
	return unsupportedTool{m}, cmd
}

func (t unsupportedTool) resize(width, height int) toolModel {
	t.Model.SetSize(width, height)
	return t
}

func (t unsupportedTool) close() {}
