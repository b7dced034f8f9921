package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/conlangtools/chronlang-engine/internal/ast"
	"github.com/conlangtools/chronlang-engine/internal/module"
	"github.com/conlangtools/chronlang-engine/internal/tui"
)

type stubResolver struct{}

func (stubResolver) ResolveScoped(scope, path string) ([]ast.Stmt, string, error) { return nil, "", nil }
func (stubResolver) ResolveLocal(path string, absolute bool) ([]ast.Stmt, string, error) {
	return nil, "", nil
}

func spanned[T any](v T) ast.Spanned[T] { return ast.Spanned[T]{Value: v} }
func spannedPtr[T any](v T) *ast.Spanned[T] {
	s := spanned(v)
	return &s
}

func buildModule() *module.Module {
	stmts := []ast.Stmt{
		ast.Language{ID: spanned("OEng"), Name: spannedPtr("Old English")},
		ast.Milestone{Time: spannedPtr(ast.Time{Kind: ast.TimeInstant, Start: 1000}), Language: spannedPtr("OEng")},
		ast.Word{Gloss: spanned("stan"), Pronunciation: spanned("")},
	}
	return module.CompileModule(stmts, "demo", stubResolver{})
}

func key(runes string) tea.KeyMsg {
	switch runes {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(runes)}
	}
}

func TestBrowserAdvancesThroughStages(t *testing.T) {
	m := tui.New(buildModule())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(tui.Model)

	view := m.View()
	if !strings.Contains(view, "choose a language") {
		t.Fatalf("expected language picker, got %q", view)
	}

	updated, _ = m.Update(key("enter"))
	m = updated.(tui.Model)
	if !strings.Contains(m.View(), "snapshot time for OEng") {
		t.Fatalf("expected time picker, got %q", m.View())
	}

	for _, r := range "1500" {
		updated, _ = m.Update(key(string(r)))
		m = updated.(tui.Model)
	}
	updated, _ = m.Update(key("enter"))
	m = updated.(tui.Model)

	if !strings.Contains(m.View(), "OEng @ 1500") {
		t.Fatalf("expected browse view, got %q", m.View())
	}
}
