package calculator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/msto63/cardano/internal/cardano/catalog"
	"github.com/msto63/cardano/internal/cardano/service"
)

type fakeEvaluator struct {
	requests []service.Request
	err      error
}

func (f *fakeEvaluator) Evaluate(ctx context.Context, req service.Request) (*service.Result, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	args := catalog.Args{Operands: req.Operands, Scalar: req.Scalar}
	v, err := catalog.Default().Apply(req.Operation, args)
	if err != nil {
		return nil, err
	}
	return &service.Result{Operation: req.Operation, Value: v, Rendered: v.String(), Duration: time.Millisecond}, nil
}

// enter types line and presses enter, running the resulting command once
func enter(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(line)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(Model), cmd
}

func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	next, _ := m.Update(cmd())
	return next.(Model)
}

func lastEntry(m Model) Entry {
	entries := m.Transcript()
	return entries[len(entries)-1]
}

func TestModel_Evaluate(t *testing.T) {
	eval := &fakeEvaluator{}
	m := New(Config{Evaluator: eval})

	tests := []struct {
		line string
		want string
	}{
		{"add 1 2 3 4", "4+6i"},
		{"SQRT 3 4", "2+1i"},
		{"abs 3 4", "5"},
		{"sqrtReal -4", "0+2i"},
		{"multIm 1 2 3", "-6+3i"},
		{"areEqual 1 1 1 1", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			next, cmd := enter(t, m, tt.line)
			if !next.pending {
				t.Error("model should be pending while evaluating")
			}
			if e := lastEntry(next); e.Kind != EntryInput || e.Text != tt.line {
				t.Errorf("input entry = %+v", e)
			}

			next = run(t, next, cmd)
			if next.pending {
				t.Error("model should not be pending after the result")
			}
			e := lastEntry(next)
			if e.Kind != EntryResult || e.Text != tt.want {
				t.Errorf("result entry = %+v, want %q", e, tt.want)
			}
			if e.Duration != time.Millisecond {
				t.Errorf("Duration = %v", e.Duration)
			}
		})
	}

	if len(eval.requests) != len(tests) {
		t.Fatalf("evaluator called %d times, want %d", len(eval.requests), len(tests))
	}
	if got := eval.requests[1].Operation; got != "sqrt" {
		t.Errorf("operation name should be canonical, got %q", got)
	}
	if s := eval.requests[3].Scalar; s == nil || *s != -4 {
		t.Errorf("sqrtReal scalar = %v", s)
	}
}

func TestModel_InputErrors(t *testing.T) {
	eval := &fakeEvaluator{}
	m := New(Config{Evaluator: eval})

	tests := []struct {
		line     string
		contains string
	}{
		{"frobnicate 1 2", "unbekannte Operation"},
		{"add 1 2", "Aufruf: add re1 im1 re2 im2"},
		{"exp one 2", "expected a number"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			next, cmd := enter(t, m, tt.line)
			if cmd != nil {
				t.Error("invalid input should not start an evaluation")
			}
			e := lastEntry(next)
			if e.Kind != EntryError || !strings.Contains(e.Text, tt.contains) {
				t.Errorf("entry = %+v, want error containing %q", e, tt.contains)
			}
		})
	}

	if len(eval.requests) != 0 {
		t.Errorf("evaluator called %d times", len(eval.requests))
	}
}

func TestModel_EvaluationError(t *testing.T) {
	m := New(Config{Evaluator: &fakeEvaluator{}})

	next, cmd := enter(t, m, "inverse 0 0")
	next = run(t, next, cmd)

	e := lastEntry(next)
	if e.Kind != EntryError || !strings.Contains(e.Text, "division by zero") {
		t.Errorf("entry = %+v", e)
	}

	failing := New(Config{Evaluator: &fakeEvaluator{err: errors.New("connection refused")}})
	next, cmd = enter(t, failing, "exp 0 0")
	next = run(t, next, cmd)
	if e := lastEntry(next); e.Kind != EntryError || e.Text != "connection refused" {
		t.Errorf("entry = %+v", e)
	}
}

func TestModel_Commands(t *testing.T) {
	m := New(Config{Evaluator: &fakeEvaluator{}})

	t.Run("help", func(t *testing.T) {
		next, _ := enter(t, m, "help")
		if e := lastEntry(next); e.Kind != EntryInfo || !strings.Contains(e.Text, "Befehle") {
			t.Errorf("entry = %+v", e)
		}
	})

	t.Run("ops", func(t *testing.T) {
		next, _ := enter(t, m, "ops")
		e := lastEntry(next)
		if e.Kind != EntryInfo || !strings.Contains(e.Text, "binary: add, areEqual, div, mult, sub") {
			t.Errorf("entry = %q", e.Text)
		}
	})

	t.Run("clear", func(t *testing.T) {
		next, _ := enter(t, m, "help")
		next, _ = enter(t, next, "clear")
		if len(next.Transcript()) != 0 {
			t.Errorf("Transcript() has %d entries after clear", len(next.Transcript()))
		}
	})

	t.Run("quit", func(t *testing.T) {
		_, cmd := enter(t, m, "quit")
		if cmd == nil {
			t.Fatal("quit should return a command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("quit should return tea.Quit")
		}
	})

	t.Run("empty line", func(t *testing.T) {
		next, cmd := enter(t, m, "   ")
		if cmd != nil || len(next.Transcript()) != len(m.Transcript()) {
			t.Error("empty input should be ignored")
		}
	})
}

func TestModel_Recall(t *testing.T) {
	m := New(Config{Evaluator: &fakeEvaluator{}})
	m, _ = enter(t, m, "help")
	m, _ = enter(t, m, "ops")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	if m.input.Value() != "ops" {
		t.Errorf("first recall = %q, want ops", m.input.Value())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	if m.input.Value() != "help" {
		t.Errorf("second recall = %q, want help", m.input.Value())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(Model).Update(tea.KeyMsg{Type: tea.KeyDown})
	if v := next.(Model).input.Value(); v != "" {
		t.Errorf("recall past the end = %q, want empty", v)
	}
}

func TestModel_PendingIgnoresEnter(t *testing.T) {
	m := New(Config{Evaluator: &fakeEvaluator{}})
	m, _ = enter(t, m, "exp 1 0")

	next, cmd := enter(t, m, "exp 2 0")
	if cmd != nil {
		t.Error("enter while pending should be ignored")
	}
	if next.input.Value() != "exp 2 0" {
		t.Errorf("input should be kept while pending, got %q", next.input.Value())
	}
}

func TestModel_WindowSizeAndView(t *testing.T) {
	m := New(Config{Evaluator: &fakeEvaluator{}, Source: "127.0.0.1:9300"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)

	if m.viewport.Width != 96 || m.viewport.Height != 23 {
		t.Errorf("viewport = %dx%d", m.viewport.Width, m.viewport.Height)
	}

	view := m.View()
	for _, want := range []string{"Cardano", "127.0.0.1:9300", "Willkommen"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	tiny, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 4})
	if h := tiny.(Model).viewport.Height; h != 3 {
		t.Errorf("viewport height = %d, want minimum 3", h)
	}
}

func TestModel_NoEvaluator(t *testing.T) {
	m := New(Config{})
	next, cmd := enter(t, m, "exp 0 0")
	if cmd != nil {
		t.Error("no command expected without an evaluator")
	}
	if e := lastEntry(next); e.Kind != EntryError {
		t.Errorf("entry = %+v", e)
	}
}

func TestRenderEntry(t *testing.T) {
	tests := []struct {
		entry Entry
		want  string
	}{
		{Entry{Kind: EntryInput, Text: "add 1 2 3 4"}, "› add 1 2 3 4"},
		{Entry{Kind: EntryResult, Text: "4+6i"}, "= 4+6i"},
		{Entry{Kind: EntryError, Text: "boom"}, "✗ boom"},
		{Entry{Kind: EntryInfo, Text: "hello"}, "hello"},
	}
	for _, tt := range tests {
		if got := renderEntry(tt.entry); !strings.Contains(got, tt.want) {
			t.Errorf("renderEntry(%v) = %q, want %q", tt.entry, got, tt.want)
		}
	}
}
