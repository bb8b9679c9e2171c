// Package tui implements the interactive classification session: type a
// scenario, get the applicable principles and the overall verdict back.
package tui

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mgrindal/ethica/internal/pipeline"
	"github.com/mgrindal/ethica/internal/store"
	"github.com/mgrindal/ethica/internal/taxonomy"
)

// maxEntries bounds how many past classifications stay on screen.
const maxEntries = 4

// Options configures the interactive session.
type Options struct {
	Pipeline  *pipeline.Pipeline
	Store     *store.Store // optional; nil disables history persistence
	Threshold float64
	TrainSize int
}

type entry struct {
	text        string
	result      pipeline.Result
	confidences []float64
	storeErr    error
}

// Model is the root Bubble Tea model for the classify session.
type Model struct {
	opts    Options
	input   textinput.Model
	entries []entry // newest first
	width   int
	height  int
}

// New creates the session model.
func New(opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Describe an AI / robotics scenario..."
	ti.Focus()
	return Model{opts: opts, input: ti}
}

func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m = m.classify(text)
			m.input.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// classify runs the pipeline synchronously and prepends the result.
// Training completed before the session started, so this is a pure read.
func (m Model) classify(text string) Model {
	result, err := m.opts.Pipeline.Classify(text, m.opts.Threshold)
	if err != nil {
		// Only reachable against an untrained pipeline, which the
		// command layer never constructs; surface it anyway.
		m.entries = append([]entry{{text: text, storeErr: err}}, m.entries...)
		return m
	}
	confidences, _ := m.opts.Pipeline.Confidences(text)

	e := entry{text: text, result: result, confidences: confidences}
	if m.opts.Store != nil {
		e.storeErr = m.opts.Store.Append(context.Background(), &store.Record{
			Text:       text,
			Principles: result.Principles,
			Verdict:    string(result.Verdict),
			Threshold:  m.opts.Threshold,
		})
	}

	m.entries = append([]entry{e}, m.entries...)
	if len(m.entries) > maxEntries {
		m.entries = m.entries[:maxEntries]
	}
	return m
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.content())
	return v
}

// content renders the session screen.
func (m Model) content() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("ethica — AI ethics scenario classifier"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf(
		"trained on %d scenarios · threshold %.2f",
		m.opts.TrainSize, m.opts.Threshold)))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	for _, e := range m.entries {
		b.WriteString(renderEntry(e, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Enter: classify · Esc: quit"))
	return b.String()
}

func renderEntry(e entry, width int) string {
	var b strings.Builder
	b.WriteString(dimStyle.Render("> ") + bodyStyle.Render(truncate(e.text, width-8)))
	b.WriteString("\n")

	if e.storeErr != nil && e.result.Verdict == "" {
		b.WriteString(verdictStyles["unethical"].Render(e.storeErr.Error()))
		return cardStyle.Render(b.String())
	}

	style, ok := verdictStyles[string(e.result.Verdict)]
	if !ok {
		style = bodyStyle
	}
	b.WriteString(bodyStyle.Render("Verdict:    ") + style.Render(string(e.result.Verdict)))
	b.WriteString("\n")

	if len(e.result.Principles) == 0 {
		b.WriteString(bodyStyle.Render("Principles: ") + dimStyle.Render("none above threshold"))
	} else {
		b.WriteString(bodyStyle.Render("Principles: "))
		parts := make([]string, len(e.result.Principles))
		for i, id := range e.result.Principles {
			label := id
			if idx := taxonomy.Index(id); idx >= 0 && idx < len(e.confidences) {
				label = fmt.Sprintf("%s (%.2f)", id, e.confidences[idx])
			}
			parts[i] = label
		}
		b.WriteString(lipgloss.NewStyle().Foreground(colorPrimary).Render(strings.Join(parts, ", ")))
	}

	if e.storeErr != nil {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("history not saved: " + e.storeErr.Error()))
	}
	return cardStyle.Render(b.String())
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	if max < 8 {
		max = 8
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	return nil
}
