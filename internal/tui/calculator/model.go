// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     calculator
// Description: Bubbletea model of the interactive calculator
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package calculator

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	mdwerror "github.com/msto63/cardano/foundation/core/error"
	"github.com/msto63/cardano/internal/cardano/catalog"
	"github.com/msto63/cardano/internal/cardano/service"
)

// Evaluator evaluates requests, locally or through the gRPC client
type Evaluator interface {
	Evaluate(ctx context.Context, req service.Request) (*service.Result, error)
}

// Config holds calculator configuration
type Config struct {
	Evaluator Evaluator
	Catalog   *catalog.Catalog
	Source    string        // shown in the status bar, e.g. "lokal"
	Timeout   time.Duration // per evaluation
}

// Model is the Bubbletea model of the calculator
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	pending bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Transcript and input recall
	entries   []Entry
	recall    []string
	recallPos int

	// Configuration
	evaluator Evaluator
	catalog   *catalog.Catalog
	source    string
	timeout   time.Duration
}

// New creates a new calculator model
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "add 1 2 3 4"
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	cat := cfg.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	source := cfg.Source
	if source == "" {
		source = "lokal"
	}

	m := Model{
		input:     ti,
		viewport:  viewport.New(76, 16),
		evaluator: cfg.Evaluator,
		catalog:   cat,
		source:    source,
		timeout:   timeout,
	}
	m.addEntry(Entry{Kind: EntryInfo, Text: "Willkommen. \"help\" zeigt die Eingabeformen."})
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Transcript returns the transcript lines
func (m Model) Transcript() []Entry {
	return m.entries
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2 // Title + blank line
		footerHeight := 5 // Input, status bar, help and borders
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 3 {
			viewportHeight = 3
		}
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = viewportHeight
		m.input.Width = msg.Width - 6
		m.ready = true
		m.refresh()
		return m, nil

	case evalResultMsg:
		m.pending = false
		if msg.err != nil {
			m.appendError(msg.err)
		} else {
			m.addEntry(Entry{Kind: EntryResult, Text: msg.result.Rendered, Duration: msg.result.Duration})
		}
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		if m.pending {
			return m, nil
		}
		line := m.input.Value()
		m.input.SetValue("")
		return m.submit(line)

	case tea.KeyUp:
		if m.recallPos > 0 {
			m.recallPos--
			m.input.SetValue(m.recall[m.recallPos])
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.recallPos < len(m.recall)-1 {
			m.recallPos++
			m.input.SetValue(m.recall[m.recallPos])
			m.input.CursorEnd()
		} else {
			m.recallPos = len(m.recall)
			m.input.SetValue("")
		}
		return m, nil

	case tea.KeyPgUp, tea.KeyPgDown:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles one input line
func (m Model) submit(line string) (tea.Model, tea.Cmd) {
	line = strings.TrimSpace(line)
	if line == "" {
		return m, nil
	}

	m.recall = append(m.recall, line)
	m.recallPos = len(m.recall)

	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return m, tea.Quit
	case "clear":
		m.entries = nil
		m.refresh()
		return m, nil
	case "help", "hilfe", "?":
		m.addEntry(Entry{Kind: EntryInput, Text: line})
		m.addEntry(Entry{Kind: EntryInfo, Text: helpText})
		return m, nil
	case "ops":
		m.addEntry(Entry{Kind: EntryInput, Text: line})
		m.addEntry(Entry{Kind: EntryInfo, Text: m.operationList()})
		return m, nil
	}

	m.addEntry(Entry{Kind: EntryInput, Text: line})

	op, err := m.catalog.Lookup(fields[0])
	if err != nil {
		m.addEntry(Entry{Kind: EntryError, Text: fmt.Sprintf("unbekannte Operation %q", fields[0])})
		return m, nil
	}
	args, err := op.ParseArgs(fields[1:])
	if err != nil {
		m.appendError(err)
		return m, nil
	}
	if m.evaluator == nil {
		m.addEntry(Entry{Kind: EntryError, Text: "kein Rechenwerk konfiguriert"})
		return m, nil
	}

	m.pending = true
	return m, m.evaluate(service.Request{Operation: op.Name, Operands: args.Operands, Scalar: args.Scalar})
}

// evaluate runs the request off the update loop
func (m Model) evaluate(req service.Request) tea.Cmd {
	evaluator, timeout := m.evaluator, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		result, err := evaluator.Evaluate(ctx, req)
		return evalResultMsg{result: result, err: err}
	}
}

const helpText = `Eingabe: <operation> <zahlen...>, z.B. "add 1 2 3 4" für (1+2i)+(3+4i)
Komplexe Operanden als Real- und Imaginärteil, reelle Werte als eine Zahl.
Erlaubte Konstanten: pi, e, inf, nan (auch negiert).
Befehle: ops, help, clear, quit`

// operationList renders the catalog grouped by topic
func (m Model) operationList() string {
	groups := make(map[string][]string)
	for _, op := range m.catalog.Operations() {
		groups[op.Group] = append(groups[op.Group], op.Name)
	}
	names := make([]string, 0, len(groups))
	for g := range groups {
		names = append(names, g)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, g := range names {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s", g, strings.Join(groups[g], ", "))
	}
	return b.String()
}

func (m *Model) addEntry(e Entry) {
	m.entries = append(m.entries, e)
	m.refresh()
}

func (m *Model) appendError(err error) {
	text := err.Error()
	if mdwErr, ok := err.(*mdwerror.Error); ok {
		if usage, ok := mdwErr.Details()["usage"].(string); ok {
			text += " (Aufruf: " + usage + ")"
		}
	}
	m.addEntry(Entry{Kind: EntryError, Text: text})
}

// refresh renders the transcript into the viewport
func (m *Model) refresh() {
	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		lines = append(lines, renderEntry(e))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
	m.viewport.GotoBottom()
}

func renderEntry(e Entry) string {
	switch e.Kind {
	case EntryInput:
		return InputLineStyle.Render("› " + e.Text)
	case EntryResult:
		line := ResultStyle.Render("= " + e.Text)
		if e.Duration > 0 {
			line += " " + DurationStyle.Render(e.Duration.String())
		}
		return line
	case EntryError:
		return ErrorStyle.Render("✗ " + e.Text)
	default:
		return InfoStyle.Render(e.Text)
	}
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(LogoStyle.Render("Cardano"))
	b.WriteString(" ")
	b.WriteString(SubHeaderStyle.Render("Komplexe Arithmetik"))
	b.WriteString("\n\n")

	b.WriteString(TranscriptStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("Enter: berechnen • ↑/↓: Verlauf • PgUp/PgDn: blättern • Esc: beenden"))

	return b.String()
}

func (m Model) renderStatusBar() string {
	status := "bereit"
	if m.pending {
		status = "berechne..."
	}
	text := fmt.Sprintf("Quelle: %s │ %d Operationen │ %s", m.source, m.catalog.Len(), status)
	bar := StatusBarStyle
	if m.width > 0 {
		bar = bar.Width(m.width)
	}
	return bar.Render(text)
}

// Run starts the calculator TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
