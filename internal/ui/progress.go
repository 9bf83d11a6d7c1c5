package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"typefuzz/internal/campaign"
	"typefuzz/internal/solver"
)

type progressModel struct {
	title   string
	events  <-chan campaign.Event
	spinner spinner.Model
	prog    progress.Model
	items   []caseItem
	done    int
	width   int
	quit    bool
}

type caseItem struct {
	label  string
	status string
}

type eventMsg campaign.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders live campaign
// progress: one status line per test case plus an overall bar.
func NewProgressModel(title string, total int, events <-chan campaign.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76 // Default width

	items := make([]caseItem, total)
	for i := range items {
		items[i] = caseItem{label: "case " + strconv.Itoa(i+1), status: string(campaign.StatusQueued)}
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   items,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(campaign.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.quit = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.quit {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) applyEvent(ev campaign.Event) tea.Cmd {
	if ev.Index < 0 || ev.Index >= len(m.items) {
		return nil
	}
	item := &m.items[ev.Index]
	switch ev.Status {
	case campaign.StatusRunning:
		item.status = "running"
	case campaign.StatusDone:
		item.status = ev.Outcome.Status.String()
		m.done++
		return m.prog.SetPercent(float64(m.done) / float64(len(m.items)))
	}
	return nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if m.quit {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	statusWidth := 12
	nameWidth := m.width - statusWidth - 4
	if nameWidth < 20 {
		nameWidth = 20
	}

	for _, item := range m.items {
		name := truncate(item.label, nameWidth)
		statusStyled := styleStatus(item.status).Render(fmt.Sprintf("%12s", item.status))
		line := fmt.Sprintf("  %s %s", statusStyled, name)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.quit {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")

	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case solver.StatusSat.String():
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case solver.StatusUnsat.String():
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	case solver.StatusUnknown.String():
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	case solver.StatusError.String():
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	case "running":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	}
	return lipgloss.NewStyle().Faint(true)
}

func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
