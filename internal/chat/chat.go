// Package chat is the terminal chat front end: a scrolling transcript
// plus a prompt that dispatches /commands through the command registry.
package chat

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/boffinbot/boffin/internal/command"
)

const transcriptCap = 500

type line struct {
	text string
	kind lineKind
}

type lineKind int

const (
	lineUser lineKind = iota
	lineBot
	lineErr
	lineRaw // preformatted, no styling (plots)
)

type model struct {
	reg    *command.Registry
	lines  []line
	input  string
	width  int
	height int
}

func newModel(reg *command.Registry) model {
	return model{
		reg: reg,
		lines: []line{
			{text: "boffin — /help for commands, /quit to leave", kind: lineBot},
		},
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
			return m, nil
		default:
			if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
				m.input += msg.String()
			}
			return m, nil
		}
	}
	return m, nil
}

func (m model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input)
	m.input = ""
	if text == "" {
		return m, nil
	}
	m.push(line{text: text, kind: lineUser})

	if !strings.HasPrefix(text, "/") {
		m.push(line{text: "commands start with /, try /help", kind: lineErr})
		return m, nil
	}
	name, argText, _ := strings.Cut(text[1:], " ")
	if name == "quit" || name == "exit" {
		return m, tea.Quit
	}

	resp, err := m.reg.Dispatch(context.Background(), name, argText)
	if err != nil {
		m.push(line{text: err.Error(), kind: lineErr})
		return m, nil
	}
	m.render(resp)
	return m, nil
}

func (m *model) render(resp *command.Response) {
	if resp.Code {
		for _, l := range strings.Split(resp.Text, "\n") {
			m.push(line{text: l, kind: lineRaw})
		}
	} else if resp.Text != "" {
		for _, l := range strings.Split(resp.Text, "\n") {
			m.push(line{text: l, kind: lineBot})
		}
	}
	for _, f := range resp.Fields {
		m.push(line{text: fmt.Sprintf("  %-24s %s", f.Name, f.Value), kind: lineBot})
	}
}

func (m *model) push(l line) {
	m.lines = append(m.lines, l)
	if len(m.lines) > transcriptCap {
		m.lines = m.lines[len(m.lines)-transcriptCap:]
	}
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("boffin") + dim.Render("  chemistry · math · physics") + "\n\n")

	visible := m.height - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if len(m.lines) > visible {
		start = len(m.lines) - visible
	}
	for _, l := range m.lines[start:] {
		switch l.kind {
		case lineUser:
			b.WriteString(promptStyle.Render("you ") + white.Render(l.text))
		case lineErr:
			b.WriteString(red.Render("err ") + yellow.Render(l.text))
		case lineRaw:
			b.WriteString(dim.Render(l.text))
		default:
			b.WriteString(cyan.Render("bot ") + green.Render(l.text))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + promptStyle.Render("› ") + white.Render(m.input) + cyan.Render("█"))
	return b.String()
}

// Run starts the chat UI and blocks until the user quits.
func Run(reg *command.Registry) error {
	p := tea.NewProgram(newModel(reg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
