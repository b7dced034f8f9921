// Package tui is an interactive lexicon browser: pick a language, pick a
// point in time, then scroll the resulting snapshot.Build output. Built
// fresh for chronlang's own domain on the teacher's Bubble Tea conventions
// (internal/ui's model/Init/Update/View split, lipgloss for styling,
// go-runewidth for width-aware truncation) — the teacher's own UI is a
// build-pipeline progress bar with no browsing analog, so the model and
// its stages are new, not adapted.
package tui

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/conlangtools/chronlang-engine/internal/langtree"
	"github.com/conlangtools/chronlang-engine/internal/module"
	"github.com/conlangtools/chronlang-engine/internal/render"
	"github.com/conlangtools/chronlang-engine/internal/snapshot"
)

type stage int

const (
	stagePickLanguage stage = iota
	stagePickTime
	stageBrowse
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Model is the top-level Bubble Tea model for the browser.
type Model struct {
	mod       *module.Module
	languages []*langtree.Language
	langIndex int

	stage     stage
	timeInput textinput.Model
	viewport  viewport.Model

	snap    *snapshot.Snapshot
	errText string
	width   int
	height  int
}

// New builds a browser over mod's compiled languages. Languages are listed
// in ID order so the picker is stable across runs of the same module.
func New(mod *module.Module) Model {
	langs := make([]*langtree.Language, 0, len(mod.Languages))
	for _, l := range mod.Languages {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i].ID < langs[j].ID })

	ti := textinput.New()
	ti.Placeholder = "e.g. 1200"
	ti.Focus()
	ti.CharLimit = 20

	return Model{
		mod:       mod,
		languages: langs,
		timeInput: ti,
		viewport:  viewport.New(80, 20),
		width:     80,
		height:    24,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.stage != stagePickTime {
				return m, tea.Quit
			}
		}
		return m.updateStage(msg)
	}
	return m, nil
}

func (m Model) updateStage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.stage {
	case stagePickLanguage:
		return m.updatePickLanguage(msg)
	case stagePickTime:
		return m.updatePickTime(msg)
	default:
		return m.updateBrowse(msg)
	}
}

func (m Model) updatePickLanguage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.langIndex > 0 {
			m.langIndex--
		}
	case "down", "j":
		if m.langIndex < len(m.languages)-1 {
			m.langIndex++
		}
	case "enter":
		if len(m.languages) > 0 {
			m.stage = stagePickTime
			m.errText = ""
		}
	}
	return m, nil
}

func (m Model) updatePickTime(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stage = stagePickLanguage
		return m, nil
	case "enter":
		t, err := strconv.ParseInt(strings.TrimSpace(m.timeInput.Value()), 10, 64)
		if err != nil {
			m.errText = "enter a whole number"
			return m, nil
		}
		lang := m.languages[m.langIndex]
		m.snap = snapshot.Build(m.mod, lang, t)
		var buf bytes.Buffer
		render.Table(&buf, m.snap)
		m.viewport.SetContent(buf.String())
		m.viewport.GotoTop()
		m.stage = stageBrowse
		m.errText = ""
		return m, nil
	}
	var cmd tea.Cmd
	m.timeInput, cmd = m.timeInput.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" || msg.String() == "b" {
		m.stage = stagePickTime
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	switch m.stage {
	case stagePickLanguage:
		return m.viewPickLanguage()
	case stagePickTime:
		return m.viewPickTime()
	default:
		return m.viewBrowse()
	}
}

func (m Model) viewPickLanguage() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("choose a language"))
	b.WriteString("\n\n")
	if len(m.languages) == 0 {
		b.WriteString(dimStyle.Render("no languages declared in this module"))
		return b.String()
	}
	for i, lang := range m.languages {
		name := lang.Name
		if name == "" {
			name = lang.ID
		}
		line := fmt.Sprintf("%s (%s)", name, lang.ID)
		if i == m.langIndex {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("up/down to move, enter to pick, q to quit"))
	return b.String()
}

func (m Model) viewPickTime() string {
	lang := m.languages[m.langIndex]
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("snapshot time for %s", lang.ID)))
	b.WriteString("\n\n")
	b.WriteString(m.timeInput.View())
	b.WriteString("\n")
	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText))
		b.WriteString("\n")
	}
	b.WriteString(dimStyle.Render("enter to build, esc to go back"))
	return b.String()
}

func (m Model) viewBrowse() string {
	lang := m.languages[m.langIndex]
	header := titleStyle.Render(fmt.Sprintf("%s @ %d", lang.ID, m.snap.Time))
	if !m.snap.OK() {
		header += "  " + errorStyle.Render(fmt.Sprintf("(%d errors)", m.snap.Errors.Len()))
	}
	footer := dimStyle.Render("up/down to scroll, esc to pick a new time, ctrl+c to quit")
	return runewidth.Truncate(header, m.width, "") + "\n\n" + m.viewport.View() + "\n" + footer
}
