// Package tui is an interactive viewer for generator output: a live
// histogram over the value range, running statistics, and a log of recent
// draws. Generators that support reverse stepping can be walked backwards
// to watch the histogram un-fill.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/randkit/internal/stats"
	"github.com/lox/randkit/rng"
)

const (
	histogramBuckets = 16
	batchSize        = 256
	maxLogLines      = 200
)

// Model is the Bubble Tea model for the generator viewer.
type Model struct {
	source  rng.Source
	summary *stats.Summary

	buckets [histogramBuckets]uint64
	drawn   uint64

	logViewport viewport.Model
	drawLog     []string

	width       int
	height      int
	initialized bool
	quitting    bool
}

// New returns a viewer for the given source.
func New(source rng.Source) Model {
	return Model{
		source:      source,
		summary:     stats.NewSummary(),
		logViewport: viewport.New(40, 10),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logViewport.Width = msg.Width - 4
		m.logViewport.Height = max(4, msg.Height-histogramBuckets-10)
		m.initialized = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case " ":
			m.sample(batchSize)
		case "s":
			m.sample(1)
		case "b":
			m.stepBack()
		case "r":
			m.reseed()
		}
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// sample draws n values and folds them into the histogram and summary.
func (m *Model) sample(n int) {
	for i := 0; i < n; i++ {
		v := m.source.Uint64()
		m.buckets[v>>60]++
		m.summary.Add(v)
		m.drawn++
		m.logDraw(v, false)
	}
}

// stepBack undoes one draw when the generator supports it. The summary is
// append-only, so only the histogram and counter rewind.
func (m *Model) stepBack() {
	rew, ok := m.source.(rng.Rewinder)
	if !ok || m.drawn == 0 {
		return
	}
	v := rew.Prev()
	m.buckets[v>>60]--
	m.drawn--
	m.logDraw(v, true)
}

// reseed restarts the generator from fresh entropy and clears the display.
func (m *Model) reseed() {
	m.source.Seed(rng.MakeSeed())
	m.buckets = [histogramBuckets]uint64{}
	m.drawn = 0
	m.summary = stats.NewSummary()
	m.drawLog = append(m.drawLog, WarningStyle.Render("-- reseeded --"))
	m.syncLog()
}

func (m *Model) logDraw(v uint64, backwards bool) {
	line := fmt.Sprintf("%016X", v)
	if backwards {
		line = WarningStyle.Render("undo " + line)
	} else {
		line = ValueStyle.Render(line)
	}
	m.drawLog = append(m.drawLog, line)
	if len(m.drawLog) > maxLogLines {
		m.drawLog = m.drawLog[len(m.drawLog)-maxLogLines:]
	}
	m.syncLog()
}

func (m *Model) syncLog() {
	m.logViewport.SetContent(strings.Join(m.drawLog, "\n"))
	m.logViewport.GotoBottom()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	header := fmt.Sprintf(" randviz %s (%d values) ", m.source.Tag(), m.drawn)
	b.WriteString(HeaderStyle.Render(header))
	b.WriteString("\n\n")
	b.WriteString(m.renderHistogram())
	b.WriteString("\n")
	b.WriteString(StatsStyle.Render(m.renderStats()))
	b.WriteString("\n")
	b.WriteString(m.logViewport.View())
	b.WriteString("\n")

	help := "space: draw 256  s: draw 1  r: reseed  q: quit"
	if m.source.Caps().Has(rng.CapPrev) {
		help += "  b: step back"
	}
	b.WriteString(HelpStyle.Render(help))

	return b.String()
}

// renderHistogram draws one bar per bucket of the top four output bits.
func (m Model) renderHistogram() string {
	var peak uint64 = 1
	for _, n := range m.buckets {
		if n > peak {
			peak = n
		}
	}

	barWidth := 40
	if m.initialized && m.width-16 < barWidth {
		barWidth = max(10, m.width-16)
	}

	var b strings.Builder
	for i, n := range m.buckets {
		filled := int(n * uint64(barWidth) / peak)
		bar := strings.Repeat("█", filled) + strings.Repeat("·", barWidth-filled)
		fmt.Fprintf(&b, "%X %s %d\n", i, BarStyle.Render(bar), n)
	}
	return b.String()
}

func (m Model) renderStats() string {
	if m.drawn == 0 {
		return "no samples yet"
	}
	bias, pos := m.summary.WorstBitBias()
	return fmt.Sprintf("mean %.4f  sd %.4f  chi2 %.1f  worst bit %d (%.4f)",
		m.summary.Mean(), m.summary.StdDev(), m.summary.ChiSquare(), pos, bias)
}

// DrawnCount reports how many samples the histogram currently holds.
func (m Model) DrawnCount() uint64 { return m.drawn }

// Bucket returns the histogram count for bucket i.
func (m Model) Bucket(i int) uint64 { return m.buckets[i] }
