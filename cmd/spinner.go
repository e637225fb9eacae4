package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/symcheck/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// spinnerTask describes the remote call being waited on. Tier tints the
// spinner so a critical symptom report stands out while it is analyzed.
type spinnerTask struct {
	label string
	tier  domain.Tier
}

func plainTask(label string) spinnerTask {
	return spinnerTask{label: label, tier: domain.TierNormal}
}

// analysisTask labels a symptom submission with its turn number and severity echo.
func analysisTask(turn int, severity int) spinnerTask {
	band := domain.SeverityEcho(severity)
	return spinnerTask{
		label: fmt.Sprintf("Analyzing turn %d (severity %d/10, %s)...", turn, severity, band.Level),
		tier:  band.Tier,
	}
}

func (t spinnerTask) color() lipgloss.Color {
	switch t.tier {
	case domain.TierCritical:
		return lipgloss.Color("196")
	case domain.TierElevated:
		return lipgloss.Color("214")
	default:
		return lipgloss.Color("69")
	}
}

type workDoneMsg struct {
	err error
}

type taskSpinnerModel struct {
	spinner spinner.Model
	task    spinnerTask
	started time.Time
	now     time.Time
	work    tea.Cmd
	err     error
	done    bool
}

func newTaskSpinnerModel(task spinnerTask, work tea.Cmd, started time.Time) taskSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(task.color())),
	)

	return taskSpinnerModel{
		spinner: s,
		task:    task,
		started: started,
		now:     started,
		work:    work,
	}
}

func (m taskSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m taskSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		m.now = msg.Time
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case workDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m taskSpinnerModel) View() string {
	if m.done {
		return ""
	}

	view := fmt.Sprintf("%s %s", m.spinner.View(), m.task.label)
	if elapsed := m.now.Sub(m.started); elapsed >= time.Second {
		view += fmt.Sprintf(" %ds", int(elapsed/time.Second))
	}
	return view
}

// runWithSpinner shows the task on output until work returns.
func runWithSpinner(ctx context.Context, output io.Writer, task spinnerTask, work func(context.Context) error) error {
	workCmd := func() tea.Msg {
		return workDoneMsg{err: work(ctx)}
	}

	p := tea.NewProgram(
		newTaskSpinnerModel(task, workCmd, time.Now()),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(taskSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
