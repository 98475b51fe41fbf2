// Package tui provides a live terminal view of a running integration.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/ddalab/internal/dda"
	"github.com/san-kum/ddalab/internal/driver"
	"github.com/san-kum/ddalab/internal/signal"
)

const (
	graphWidth      = 80
	graphHeight     = 14
	historyCapacity = 600
	stepsPerFrame   = 4
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

type Model struct {
	src     signal.Source
	rule    dda.Rule
	cfg     driver.Config
	acc     float64
	sample  float64
	t       float64
	history []float64
	running bool
	done    bool
}

// NewModel seeds stateful rules with the t=0 sample, matching the
// driver's policy, and starts ticking immediately.
func NewModel(src signal.Source, rule dda.Rule, cfg driver.Config) Model {
	rule.Reset()
	if p, ok := rule.(interface{ Prime(float64) }); ok {
		p.Prime(src.Sample(0))
	}

	return Model{
		src:     src,
		rule:    rule,
		cfg:     cfg,
		acc:     cfg.Acc0,
		history: append(make([]float64, 0, historyCapacity), cfg.Acc0),
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		}

	case TickMsg:
		if m.running && !m.done {
			m.advance()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}

	return m, nil
}

func (m *Model) advance() {
	for i := 0; i < stepsPerFrame; i++ {
		if m.t >= m.cfg.Duration {
			m.done = true
			return
		}
		m.t += m.cfg.Dt
		m.sample = m.src.Sample(m.t)
		m.acc = m.rule.Step(m.acc, m.sample, m.cfg.Dt)

		m.history = append(m.history, m.acc)
		if len(m.history) > historyCapacity {
			m.history = m.history[1:]
		}
	}
}

func (m *Model) reset() {
	m.rule.Reset()
	if p, ok := m.rule.(interface{ Prime(float64) }); ok {
		p.Prime(m.src.Sample(0))
	}
	m.acc = m.cfg.Acc0
	m.sample = 0
	m.t = 0
	m.history = append(m.history[:0], m.cfg.Acc0)
	m.done = false
	m.running = true
}

func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("ddalab  %s / %s", m.src.Name(), m.rule.Method()))

	graph := asciigraph.Plot(m.history,
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
		asciigraph.Caption("accumulator"),
	)

	status := "running"
	if m.done {
		status = doneStyle.Render("done")
	} else if !m.running {
		status = "paused"
	}

	stats := labelStyle.Render("t") + valueStyle.Render(fmt.Sprintf("%.3f", m.t)) + "\n" +
		labelStyle.Render("sample") + valueStyle.Render(fmt.Sprintf("%.6f", m.sample)) + "\n" +
		labelStyle.Render("accumulator") + valueStyle.Render(fmt.Sprintf("%.6f", m.acc)) + "\n" +
		labelStyle.Render("status") + status

	help := helpStyle.Render("space pause  r reset  q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, graphStyle.Render(graph), stats, help)
}
