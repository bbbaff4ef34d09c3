package console

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

const prompt = "> "

type keyMap struct {
	Complete key.Binding
	Submit   key.Binding
	Prev     key.Binding
	Next     key.Binding
	Quit     key.Binding
}

var defaultKeys = keyMap{
	Complete: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
	Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Prev:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "previous")),
	Next:     key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+d", "quit")),
}

func isExit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return true
	}
	return false
}

type replModel struct {
	input   textinput.Model
	session *Session
	out     *bytes.Buffer
	styler  domain.Styler
	keys    keyMap

	history []string
	histPos int
	hint    string

	quitting bool
}

func newReplModel(session *Session, out *bytes.Buffer, styler domain.Styler) replModel {
	input := textinput.New()
	input.Prompt = styler.Info(prompt)
	input.Placeholder = "help"
	input.Focus()

	return replModel{
		input:   input,
		session: session,
		out:     out,
		styler:  styler,
		keys:    defaultKeys,
	}
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Complete):
		return m.complete(), nil

	case key.Matches(keyMsg, m.keys.Submit):
		return m.submit()

	case key.Matches(keyMsg, m.keys.Prev):
		return m.recall(-1), nil

	case key.Matches(keyMsg, m.keys.Next):
		return m.recall(1), nil
	}

	m.hint = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) complete() replModel {
	line := m.input.Value()
	candidates := m.session.Complete(line)

	m.hint = ""
	if len(candidates) == 0 {
		return m
	}
	if len(candidates) > 1 {
		m.hint = strings.Join(candidates, "  ")
	}

	m.input.SetValue(ApplyCompletion(line, candidates))
	m.input.CursorEnd()
	return m
}

func (m replModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.hint = ""

	if isExit(line) {
		m.quitting = true
		return m, tea.Quit
	}

	if strings.TrimSpace(line) != "" {
		m.history = append(m.history, line)
	}
	m.histPos = len(m.history)

	m.out.Reset()
	m.session.Execute(line)

	text := m.styler.Muted(prompt+line) + "\n" + strings.TrimRight(m.out.String(), "\n")
	return m, tea.Println(strings.TrimRight(text, "\n"))
}

// recall moves through previously submitted lines; moving past the newest
// clears the input.
func (m replModel) recall(step int) replModel {
	if len(m.history) == 0 {
		return m
	}

	m.histPos = min(max(m.histPos+step, 0), len(m.history))
	if m.histPos == len(m.history) {
		m.input.Reset()
	} else {
		m.input.SetValue(m.history[m.histPos])
		m.input.CursorEnd()
	}
	return m
}

func (m replModel) View() string {
	if m.quitting {
		return ""
	}

	view := m.input.View()
	if m.hint != "" {
		view += "\n" + m.styler.Muted(m.hint)
	}
	return view
}

// RunInteractive runs the prompt until the actor quits. The actor's output
// is captured and printed above the prompt after each command.
func RunInteractive(session *Session, actor *Actor, styler domain.Styler) error {
	var out bytes.Buffer
	actor.SetOutput(&out)

	_, err := tea.NewProgram(newReplModel(session, &out, styler)).Run()
	return err
}

// RunLines executes in line by line, for pipes and scripts. It stops at
// EOF or at an exit line and reports how many lines were not handled.
func RunLines(session *Session, in io.Reader) (int, error) {
	failures := 0

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if isExit(line) {
			break
		}
		if !session.Execute(line) {
			failures++
		}
	}

	return failures, scanner.Err()
}
