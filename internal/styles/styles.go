package styles

import "github.com/charmbracelet/lipgloss"

var (
	Indigo  = lipgloss.Color("#7C6CFF")
	Pink    = lipgloss.Color("#FF2E97")
	Gray    = lipgloss.Color("#8A8F98")
	DimGray = lipgloss.Color("#3D4250")
	Green   = lipgloss.Color("#39FF14")
	Red     = lipgloss.Color("#FF3131")
	Cyan    = lipgloss.Color("#00F0FF")

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Cyan)

	Subtitle = lipgloss.NewStyle().
			Foreground(Cyan)

	Selected = lipgloss.NewStyle().
			Foreground(Pink).
			Bold(true)

	// Active marks the tool the session currently has selected.
	Active = lipgloss.NewStyle().
		Foreground(Indigo).
		Bold(true)

	Dimmed = lipgloss.NewStyle().
		Foreground(DimGray)

	Label = lipgloss.NewStyle().
		Foreground(Gray).
		Bold(true)

	Success = lipgloss.NewStyle().
		Foreground(Green)

	Err = lipgloss.NewStyle().
		Foreground(Red)

	Help = lipgloss.NewStyle().
		Foreground(DimGray).
		Italic(true)

	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(1, 2)

	Output = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(DimGray).
		Padding(0, 1)

	HistoryTool = lipgloss.NewStyle().
			Foreground(Indigo).
			Bold(true)

	UpdateBanner = lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true)
)
