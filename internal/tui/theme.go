package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Base     lipgloss.Style
	Header   lipgloss.Style
	Question lipgloss.Style
	Clock    lipgloss.Style
	Bar      lipgloss.Style
	Break    lipgloss.Style
	Error    lipgloss.Style
	Dim      lipgloss.Style
}

var CurrentTheme = Theme{
	Base:     lipgloss.NewStyle().Margin(1, 2),
	Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	Question: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	Clock:    lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
	Bar:      lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	Break:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}
