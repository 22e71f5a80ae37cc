package main

import "github.com/charmbracelet/lipgloss"

const (
	canvasBGColor  = "#1c1c1c"
	axisColor      = "#808080"
	tickColor      = "#a0a0a0"
	titleColor     = "#e0e0e0"
	dimTextColor   = "#9a9a9a"
	tooltipBGColor = "#f0f0f0"
	tooltipFGColor = "#101010"

	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
)

const emptyFilterText = "No Pokémon match"

var (
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(titleColor))
	rowStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color(rowTextFGColor))
	rowSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(rowSelectedBGColor)).
				Foreground(lipgloss.Color(rowSelectedTextFGColor))
	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	tableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))

	drawerArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")). // subtle gray
			Padding(0, 0).BorderLeft(true)

	controlLabelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(tickColor))
	controlValueStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(titleColor))
	controlOptionStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(dimTextColor))
	controlHighlightStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#ff9f1c")).
				Foreground(lipgloss.Color("#000000"))

	legendTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(titleColor))
	legendLabel      = lipgloss.NewStyle().Foreground(lipgloss.Color(rowTextFGColor))

	errorBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("1")).
			Padding(1, 2)
)
