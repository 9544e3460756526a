package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
	"go.trai.ch/cuv/internal/core/domain"
)

const (
	statusRunning   = "running"
	statusCompleted = "completed"
	statusCached    = "cached"
	statusFailed    = "failed"
)

// VertexState represents the current state of a recorded step in the TUI.
type VertexState struct {
	ID     string
	Name   string
	Status string
	// Expanded shows the step's log lines below it.
	Expanded bool
}

type styles struct {
	running   lipgloss.Style
	completed lipgloss.Style
	cached    lipgloss.Style
	failed    lipgloss.Style
	log       lipgloss.Style
}

// Model is the Bubble Tea model for the progress view.
type Model struct {
	tape     TapeSource
	vertices []VertexState
	logs     map[string][]string
	width    int
	height   int
	spinner  spinner.Model
	styles   styles

	// MinLogLevel hides log lines below this level.
	MinLogLevel domain.LogLevel
}

// NewModel creates a new TUI model with the given tape source.
func NewModel(tape TapeSource) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	return &Model{
		tape:        tape,
		logs:        make(map[string][]string),
		spinner:     s,
		MinLogLevel: domain.LogLevelInfo,
		styles: styles{
			running:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			completed: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),  // Green
			cached:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),  // Blue
			failed:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")), // Red
			log:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")), // Gray
		},
	}
}

// Init initializes the model and starts reading from the tape.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForTape(m.tape),
		m.spinner.Tick,
	)
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgTapeUpdate:
		m.processUpdate(msg.Update)
		return m, WaitForTape(m.tape)
	case MsgTapeEnded:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "+":
		m.MinLogLevel = m.MinLogLevel.Louder()
	case "-":
		m.MinLogLevel = m.MinLogLevel.Quieter()
	}
	return m, nil
}

func (m *Model) processUpdate(update *progrock.StatusUpdate) {
	if update == nil {
		return
	}
	for _, v := range update.Vertexes {
		if v.Internal {
			continue
		}
		m.updateOrAddVertex(v)
	}
	for _, l := range update.Logs {
		text := strings.TrimRight(string(l.Data), "\n")
		if text == "" {
			continue
		}
		m.logs[l.Vertex] = append(m.logs[l.Vertex], strings.Split(text, "\n")...)
	}
}

func (m *Model) updateOrAddVertex(v *progrock.Vertex) {
	status := vertexStatus(v)
	for i := range m.vertices {
		if m.vertices[i].ID == v.Id {
			m.vertices[i].Status = status
			if status == statusFailed {
				m.vertices[i].Expanded = true
			}
			return
		}
	}
	m.vertices = append(m.vertices, VertexState{
		ID:       v.Id,
		Name:     v.Name,
		Status:   status,
		Expanded: status == statusFailed,
	})
}

func vertexStatus(v *progrock.Vertex) string {
	switch {
	case v.Completed == nil:
		return statusRunning
	case v.Error != nil:
		return statusFailed
	case v.Cached:
		return statusCached
	default:
		return statusCompleted
	}
}

// View renders the current state of the model as a string.
func (m *Model) View() string {
	var lines []string
	for _, v := range m.vertices {
		lines = append(lines, m.renderVertex(v))
		if v.Expanded {
			for _, line := range m.logs[v.ID] {
				if level, _ := domain.ParseLogLine(line); level >= m.MinLogLevel {
					lines = append(lines, "    "+m.styles.log.Render(line))
				}
			}
		}
	}

	// Keep the most recent lines when the terminal is too short.
	if m.height > 0 && len(lines) > m.height {
		lines = lines[len(lines)-m.height:]
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m *Model) renderVertex(v VertexState) string {
	var icon string
	var style lipgloss.Style
	switch v.Status {
	case statusRunning:
		icon = m.spinner.View()
		style = m.styles.running
	case statusCompleted:
		icon = "✓"
		style = m.styles.completed
	case statusCached:
		icon = "↺"
		style = m.styles.cached
	default:
		icon = "✗"
		style = m.styles.failed
	}
	return fmt.Sprintf("%s %s", style.Render(icon), v.Name)
}

