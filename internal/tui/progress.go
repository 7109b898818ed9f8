// Copyright (c) 2025 Quantsweep Corp

package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quantsweep/sweepbt/engine"
	"github.com/quantsweep/sweepbt/strategy"
)

// runResultMsg carries the outcome of the background experiment run back
// into the bubbletea update loop.
type runResultMsg struct {
	stats []strategy.Stats
	err   error
}

func runExperiment(ctx context.Context, registry *strategy.Registry, cfg engine.RunConfig) tea.Cmd {
	return func() tea.Msg {
		stats, err := engine.Run(ctx, registry, cfg)
		return runResultMsg{stats: stats, err: err}
	}
}

type progressModel struct {
	ctx      context.Context
	registry *strategy.Registry
	cfg      engine.RunConfig

	running bool
	err     error
	table   table.Model
	width   int
	height  int
}

func newProgressModel(ctx context.Context, registry *strategy.Registry, cfg engine.RunConfig) progressModel {
	t := table.New(table.WithColumns([]table.Column{
		{Title: "config", Width: 12},
		{Title: "roi", Width: 10},
		{Title: "trades", Width: 8},
		{Title: "max_dd", Width: 10},
		{Title: "sharpe", Width: 10},
	}), table.WithStyles(resultsTableStyles), table.WithFocused(true))

	return progressModel{ctx: ctx, registry: registry, cfg: cfg, running: true, table: t, width: 60, height: 20}
}

func (m progressModel) Init() tea.Cmd {
	return runExperiment(m.ctx, m.registry, m.cfg)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetWidth(m.width - 4)
		m.table.SetHeight(m.height - 6)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd

	case runResultMsg:
		m.running = false
		m.err = msg.err
		if msg.err == nil {
			m.table.SetRows(statsToRows(msg.stats))
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	header := headerStyle.Render(fmt.Sprintf(" sweepbt — %s ", m.cfg.StrategyName))
	if m.running {
		return header + "\n\nrunning experiment...\n"
	}
	if m.err != nil {
		return header + "\n\n" + errorStyle.Render("error: "+m.err.Error()) + "\n"
	}
	body := paneStyle.Render(m.table.View())
	footer := footerStyle.Render(" q: quit ")
	return header + "\n" + body + "\n" + footer
}

func statsToRows(stats []strategy.Stats) []table.Row {
	rows := make([]table.Row, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, table.Row{
			fmt.Sprintf("%v", s["name"]),
			fmt.Sprintf("%.4f", asFloat(s["roi"])),
			fmt.Sprintf("%v", s["trades"]),
			fmt.Sprintf("%.4f", asFloat(s["max_dd"])),
			fmt.Sprintf("%.4f", asFloat(s["sharpe"])),
		})
	}
	return rows
}

func asFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	default:
		return 0
	}
}

// runProgressView launches the bubbletea program that runs cfg in the
// background and renders a live results table once it completes.
func runProgressView(ctx context.Context, registry *strategy.Registry, cfg engine.RunConfig) error {
	model := newProgressModel(ctx, registry, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
