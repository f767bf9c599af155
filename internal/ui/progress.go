// Package ui renders live batch progress in the terminal.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"bigint/internal/batch"
)

const labelWidth = 10

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	counterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

// fileRow is the last known state of one input file.
type fileRow struct {
	path    string
	stage   batch.Stage
	status  batch.Status
	elapsed time.Duration
	err     error
}

func (r fileRow) finished() bool {
	switch r.status {
	case batch.StatusDone, batch.StatusError, batch.StatusCached:
		return true
	}
	return false
}

// weight is the share of a file's work considered complete.
func (r fileRow) weight() float64 {
	if r.finished() {
		return 1
	}
	if r.status != batch.StatusWorking {
		return 0
	}
	if r.stage == batch.StageEval {
		return 0.5
	}
	return 0.1
}

type batchModel struct {
	title   string
	events  <-chan batch.Event
	spinner spinner.Model
	bar     progress.Model
	rows    []fileRow
	byPath  map[string]int
	width   int
	closed  bool
}

type eventMsg batch.Event
type closedMsg struct{}

// NewProgressModel returns a Bubble Tea model that follows events from a
// batch run until the channel is closed.
func NewProgressModel(title string, files []string, events <-chan batch.Event) tea.Model {
	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(activeStyle))
	m := &batchModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(60)),
		rows:    make([]fileRow, 0, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	// Events are keyed by path, so a repeated path gets a single row.
	for _, path := range files {
		if _, seen := m.byPath[path]; seen {
			continue
		}
		m.byPath[path] = len(m.rows)
		m.rows = append(m.rows, fileRow{path: path, status: batch.StatusQueued})
	}
	return m
}

func (m *batchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.waitForEvent())
}

func (m *batchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.record(batch.Event(msg)), m.waitForEvent())
	case closedMsg:
		m.closed = true
		return m, tea.Quit
	case tea.KeyMsg:
		// Quitting early makes the runner cancel the batch.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = max(msg.Width-4, 10)
		}
	case spinner.TickMsg:
		if !m.closed {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *batchModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	if m.closed {
		b.WriteString(titleStyle.Render("finished " + m.title))
	} else {
		b.WriteString(m.spinner.View() + " " + titleStyle.Render(m.title))
	}
	b.WriteString("\n\n")

	pathWidth := max(m.width-labelWidth-16, 16)
	for _, row := range m.rows {
		label := fmt.Sprintf("%-*s", labelWidth, rowLabel(row))
		line := "  " + rowStyle(row).Render(label) + " " + clip(row.path, pathWidth)
		if row.finished() && row.elapsed > 0 {
			line += mutedStyle.Render(" " + row.elapsed.Round(time.Millisecond).String())
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	if m.closed {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n" + counterStyle.Render(m.counters()) + "\n")
	return b.String()
}

func (m *batchModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(ev)
	}
}

// record applies one event and animates the bar towards the new fraction.
func (m *batchModel) record(ev batch.Event) tea.Cmd {
	i, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	row := &m.rows[i]
	row.stage = ev.Stage
	row.status = ev.Status
	row.elapsed = ev.Elapsed
	row.err = ev.Err
	return m.bar.SetPercent(m.fraction())
}

func (m *batchModel) fraction() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	sum := 0.0
	for _, row := range m.rows {
		sum += row.weight()
	}
	return sum / float64(len(m.rows))
}

func (m *batchModel) counters() string {
	var done, failed, cached int
	for _, row := range m.rows {
		switch row.status {
		case batch.StatusDone:
			done++
		case batch.StatusError:
			failed++
		case batch.StatusCached:
			cached++
		}
	}
	return fmt.Sprintf("%d/%d files  %d ok  %d cached  %d failed",
		done+failed+cached, len(m.rows), done, cached, failed)
}

func rowLabel(row fileRow) string {
	switch row.status {
	case batch.StatusWorking:
		if row.stage == batch.StageEval {
			return "evaluating"
		}
		return "reading"
	case batch.StatusDone:
		return "done"
	case batch.StatusError:
		return "failed"
	case batch.StatusCached:
		return "cached"
	default:
		return "queued"
	}
}

func rowStyle(row fileRow) lipgloss.Style {
	switch row.status {
	case batch.StatusDone, batch.StatusCached:
		return okStyle
	case batch.StatusError:
		return failStyle
	case batch.StatusWorking:
		return activeStyle
	default:
		return mutedStyle
	}
}

// clip shortens s to width terminal cells, keeping the tail of the path,
// which is usually the part that tells files apart.
func clip(s string, width int) string {
	w := runewidth.StringWidth(s)
	if width <= 0 || w <= width {
		return s
	}
	if width <= 3 {
		return runewidth.TruncateLeft(s, w-width, "")
	}
	return runewidth.TruncateLeft(s, w-width+3, "...")
}
