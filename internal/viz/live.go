package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/pdebench/internal/engine"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 2)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model drives an engine.Session one frame at a time.
type Model struct {
	session       *engine.Session
	cfg           engine.Config
	stepsPerFrame int
	running       bool
	done          bool
	err           error
}

func NewModel(cfg engine.Config) (Model, error) {
	session, err := engine.NewSession(cfg)
	if err != nil {
		return Model{}, err
	}
	// Aim for the run to span a few seconds of screen time.
	total := int(cfg.TMax / cfg.Dt)
	perFrame := total / 300
	if perFrame < 1 {
		perFrame = 1
	}
	return Model{
		session:       session,
		cfg:           cfg,
		stepsPerFrame: perFrame,
		running:       true,
	}, nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		}
	case TickMsg:
		if m.running && !m.done && m.err == nil {
			for i := 0; i < m.stepsPerFrame; i++ {
				if m.session.Time() >= m.cfg.TMax {
					m.done = true
					break
				}
				if err := m.session.Step(); err != nil {
					m.err = err
					break
				}
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("%s / %s", m.cfg.Params.Equation, m.session.SchemeName()))

	graph := graphStyle.Render(asciigraph.Plot(m.session.Field(),
		asciigraph.Height(14),
		asciigraph.Width(68),
	))

	v := m.session.Verdict()
	stats := lipgloss.JoinVertical(lipgloss.Left,
		row("t", fmt.Sprintf("%.4f / %.4f", m.session.Time(), m.cfg.TMax)),
		row("steps", fmt.Sprintf("%d", m.session.Steps())),
		row("cfl", fmt.Sprintf("%.3f (%s)", v.Ratio, v.Status)),
	)
	if v.Ratio > 1 {
		stats = lipgloss.JoinVertical(lipgloss.Left, stats,
			warnStyle.Render("dt exceeds the stability limit"))
	}
	if m.err != nil {
		stats = lipgloss.JoinVertical(lipgloss.Left, stats,
			warnStyle.Render(m.err.Error()))
	}
	if m.done {
		stats = lipgloss.JoinVertical(lipgloss.Left, stats,
			valueStyle.Render("run complete"))
	}

	help := helpStyle.Render("space pause · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, graph, stats, help)
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render(label), valueStyle.Render(value))
}

// RunLive launches the live view for a configuration.
func RunLive(cfg engine.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}
