package views

import "github.com/charmbracelet/lipgloss"

// Amber phosphor palette.
var (
	amber100 = lipgloss.Color("#fef3c7")
	amber400 = lipgloss.Color("#fbbf24")
	amber500 = lipgloss.Color("#f59e0b")
	amber600 = lipgloss.Color("#d97706")
	amber700 = lipgloss.Color("#b45309")
	amber800 = lipgloss.Color("#92400e")
	amber900 = lipgloss.Color("#78350f")
)

var (
	TitleStyle    = lipgloss.NewStyle().Foreground(amber500).Bold(true)
	TitleOSStyle  = lipgloss.NewStyle().Foreground(amber700).Bold(true)
	SubtitleStyle = lipgloss.NewStyle().Foreground(amber800)
	ClockStyle    = lipgloss.NewStyle().Foreground(amber500).Bold(true)
	DateStyle     = lipgloss.NewStyle().Foreground(amber700)

	HeaderStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, true, false).
			BorderForeground(amber600).
			Padding(0, 1)

	PromptStyle        = lipgloss.NewStyle().Foreground(amber700)
	SeparatorStyle     = lipgloss.NewStyle().Foreground(amber700)
	CrumbStyle         = lipgloss.NewStyle().Foreground(amber600)
	CrumbCurrentStyle  = lipgloss.NewStyle().Foreground(amber400).Bold(true)
	CrumbFocusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(amber500).Bold(true)
	BreadcrumbBarStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(amber900)

	CellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(amber900).
			Align(lipgloss.Center).
			Padding(0, 1)
	CellSelectedStyle = CellStyle.
				BorderForeground(amber500).
				Foreground(amber100)
	FolderIconStyle = lipgloss.NewStyle().Foreground(amber600)
	FileIconStyle   = lipgloss.NewStyle().Foreground(amber400)
	ItemNameStyle   = lipgloss.NewStyle().Foreground(amber500)
	ItemDescStyle   = lipgloss.NewStyle().Foreground(amber800)

	EmptyTitleStyle = lipgloss.NewStyle().Foreground(amber700).Bold(true)
	EmptyStyle      = lipgloss.NewStyle().Foreground(amber800)

	FolderFooterStyle = lipgloss.NewStyle().
				Foreground(amber800).
				Border(lipgloss.NormalBorder(), true, false, false, false).
				BorderForeground(amber900)

	ToolTitleStyle = lipgloss.NewStyle().Foreground(amber400).Bold(true)
	TerminateStyle = lipgloss.NewStyle().
			Foreground(amber500).
			Border(lipgloss.NormalBorder()).
			BorderForeground(amber500).
			Padding(0, 1).
			Bold(true)
	ToolBarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(amber700)

	StatusStyle = lipgloss.NewStyle().Foreground(amber900)
)
