package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/bizsim/internal/config"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

// ErrAborted is returned when the form is closed before the last field.
var ErrAborted = errors.New("tui: input aborted")

// Form asks for each assumption once, in order. Entering nothing keeps the
// value shown in brackets.
type Form struct {
	cfg    *config.Config
	fields []config.Field
	inputs []string
	cursor int
	buf    string

	result  *config.Config
	err     error
	aborted bool
}

func NewForm(cfg *config.Config) Form {
	fields := config.Fields()
	return Form{
		cfg:    cfg.Clone(),
		fields: fields,
		inputs: make([]string, len(fields)),
	}
}

func (f Form) Init() tea.Cmd { return nil }

func (f Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || f.Done() {
		return f, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		f.aborted = true
		return f, tea.Quit
	case tea.KeyEnter:
		f.inputs[f.cursor] = f.buf
		f.buf = ""
		f.cursor++
		if f.cursor == len(f.fields) {
			f.finish()
			return f, tea.Quit
		}
	case tea.KeyBackspace:
		if r := []rune(f.buf); len(r) > 0 {
			f.buf = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		f.buf += " "
	case tea.KeyRunes:
		f.buf += string(key.Runes)
	}
	return f, nil
}

// finish parses every entry in prompt order. The first value that is not a
// number ends the form with that error.
func (f *Form) finish() {
	cfg := f.cfg.Clone()
	for i, field := range f.fields {
		if strings.TrimSpace(f.inputs[i]) == "" {
			continue
		}
		if err := cfg.Set(field.Key, f.inputs[i]); err != nil {
			f.err = err
			return
		}
	}
	f.result = cfg
}

// Done reports whether the form has finished, successfully or not.
func (f Form) Done() bool {
	return f.aborted || f.err != nil || f.result != nil
}

// Result returns the collected config, ErrAborted, or the parse error.
func (f Form) Result() (*config.Config, error) {
	switch {
	case f.aborted:
		return nil, ErrAborted
	case f.err != nil:
		return nil, f.err
	case f.result == nil:
		return nil, ErrAborted
	}
	return f.result, nil
}

func (f Form) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("      " + cyan.Render("SaaS Business Scenario Modeler") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, field := range f.fields {
		current := f.cfg.Get(field.Key)
		label := fmt.Sprintf("%-36s", field.Prompt)
		switch {
		case i < f.cursor:
			shown := strings.TrimSpace(f.inputs[i])
			if shown == "" {
				shown = current
			}
			b.WriteString("      " + dim.Render(label) + green.Render(shown) + "\n")
		case i == f.cursor && !f.Done():
			b.WriteString("    " + cyan.Render("▸ ") + white.Render(label) +
				dim.Render("["+current+"] ") + white.Render(f.buf+"_") + "\n")
		default:
			b.WriteString("      " + dimmer.Render(label) + dimmer.Render("["+current+"]") + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      enter accept   backspace delete   esc quit") + "\n")
	return b.String()
}

// Collect runs the form as a bubbletea program and returns the populated
// config.
func Collect(cfg *config.Config, opts ...tea.ProgramOption) (*config.Config, error) {
	p := tea.NewProgram(NewForm(cfg), opts...)
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	f, ok := final.(Form)
	if !ok {
		return nil, fmt.Errorf("tui: unexpected model %T", final)
	}
	return f.Result()
}
