// Copyright (c) 2025 Quantsweep Corp

package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorInk    = lipgloss.Color("#1C1C1E")
	colorGold   = lipgloss.Color("#D9B44A")
	colorTeal   = lipgloss.Color("#3D8C8C")
	colorPaper  = lipgloss.Color("#F4F1E8")
	colorFailed = lipgloss.Color("#C0392B")

	headerStyle = lipgloss.NewStyle().Foreground(colorGold).Background(colorInk)
	footerStyle = lipgloss.NewStyle().Foreground(colorPaper).Background(colorInk)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorFailed)
	paneStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).BorderForeground(colorTeal)

	resultsTableStyles = table.Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(colorGold).Padding(0, 1),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(colorTeal),
		Cell:     lipgloss.NewStyle().Padding(0, 1),
	}
)
