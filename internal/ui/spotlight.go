package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kmdapp/kmd/internal/clipboard"
	"github.com/kmdapp/kmd/internal/config"
	"github.com/kmdapp/kmd/internal/dispatch"
	"github.com/kmdapp/kmd/internal/hotkey"
	"github.com/kmdapp/kmd/internal/provider"
)

const (
	defaultPlaceholder = "Ask for a command..."
	pendingPlaceholder = "Thinking..."
)

// resultMsg delivers a dispatcher result into the update loop.
type resultMsg provider.Result

// Spotlight is the resident launcher surface: a single floating input row
// that submits through the dispatcher and shows the generated command. When
// hidden it collapses to a tray-style status line.
type Spotlight struct {
	input      textinput.Model
	dispatcher *dispatch.Dispatcher
	results    chan provider.Result
	toggle     key.Binding
	styles     Styles
	comboHelp  string

	visible bool
	pending bool
	result  *provider.Result
	copied  bool
	hint    string
	width   int
}

// NewSpotlight wires the surface to the configuration snapshot. The
// dispatcher re-reads nothing mid-flight: each submission constructs its
// provider from cfg as it stood at submit time.
func NewSpotlight(cfg *config.Config) *Spotlight {
	input := textinput.New()
	input.Placeholder = defaultPlaceholder
	input.Prompt = "❯ "
	input.CharLimit = 500
	input.Focus()

	toggle := hotkey.Parse(cfg.Hotkey)

	s := &Spotlight{
		input:     input,
		results:   make(chan provider.Result, 1),
		toggle:    toggle,
		styles:    LoadTheme(cfg.Theme).Styles(),
		comboHelp: toggle.Help().Key,
		visible:   true,
	}
	s.dispatcher = dispatch.New(
		func() provider.Provider { return provider.New(cfg) },
		func(r provider.Result) { s.results <- r },
		nil, // kill phrases surface as ErrShutdown and quit the program below
	)
	return s
}

func (s *Spotlight) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, s.waitForResult())
}

// waitForResult bridges the dispatcher's sink into the update loop.
func (s *Spotlight) waitForResult() tea.Cmd {
	return func() tea.Msg {
		return resultMsg(<-s.results)
	}
}

func (s *Spotlight) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		return s, nil

	case resultMsg:
		return s.handleResult(provider.Result(msg))

	case tea.KeyMsg:
		if key.Matches(msg, s.toggle) {
			if s.visible {
				s.hideSurface()
			} else {
				s.showSurface()
			}
			return s, nil
		}
		if !s.visible {
			return s.updateHidden(msg)
		}
		return s.updateVisible(msg)
	}

	if s.visible && !s.pending {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// handleResult returns the surface to its editable state and copies a
// successful command to the clipboard.
func (s *Spotlight) handleResult(r provider.Result) (tea.Model, tea.Cmd) {
	s.pending = false
	s.result = &r
	s.copied = false
	if r.Ok() {
		s.copied = clipboard.Copy(r.Command)
	}
	s.input.SetValue("")
	s.input.Placeholder = defaultPlaceholder
	s.input.Focus()
	return s, s.waitForResult()
}

// updateHidden handles the tray-style state: show, options, quit.
func (s *Spotlight) updateHidden(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s", "enter":
		s.showSurface()
	case "o":
		s.hint = "settings live in 'kmd configure'"
	case "q", "ctrl+c":
		return s, tea.Quit
	}
	return s, nil
}

func (s *Spotlight) updateVisible(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		s.hideSurface()
		return s, nil

	case tea.KeyCtrlC:
		return s, tea.Quit

	case tea.KeyEnter:
		if s.pending {
			return s, nil
		}
		err := s.dispatcher.Submit(s.input.Value())
		switch {
		case errors.Is(err, dispatch.ErrShutdown):
			return s, tea.Quit
		case err != nil:
			// empty query or (unreachably, given the pending guard
			// above) a still-outstanding request: ignore the keypress
			return s, nil
		}
		s.pending = true
		s.result = nil
		s.input.SetValue("")
		s.input.Placeholder = pendingPlaceholder
		s.input.Blur()
		return s, nil
	}

	if !s.pending {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// showSurface reveals the input row ready for typing.
func (s *Spotlight) showSurface() {
	s.visible = true
	s.hint = ""
	s.result = nil
	s.input.SetValue("")
	s.input.Placeholder = defaultPlaceholder
	s.input.Focus()
}

// hideSurface collapses to the tray line. Any in-flight request is
// cancelled so no late result mutates a dismissed surface.
func (s *Spotlight) hideSurface() {
	s.visible = false
	s.dispatcher.CancelPending()
	s.pending = false
	s.input.Blur()
	s.input.SetValue("")
	s.input.Placeholder = defaultPlaceholder
}

// Visible reports whether the input row is showing.
func (s *Spotlight) Visible() bool { return s.visible }

// Pending reports whether a request is outstanding.
func (s *Spotlight) Pending() bool { return s.pending }

func (s *Spotlight) View() string {
	if !s.visible {
		line := s.styles.Status.Render("● kmd") + "  " +
			s.styles.Help.Render(fmt.Sprintf("[%s]/[s] show · [o] options · [q] quit", s.comboHelp))
		if s.hint != "" {
			line += "\n" + s.styles.Status.Render(s.hint)
		}
		return line + "\n"
	}

	view := s.styles.Accent.Render("Kmd") + " " +
		s.styles.Status.Render("— describe the command you need") + "\n" +
		s.styles.Box.Render(s.input.View()) + "\n"

	if s.result != nil {
		if s.result.Ok() {
			view += s.styles.Result.Render(s.result.Command)
			if s.copied {
				view += s.styles.Status.Render("  (copied to clipboard)")
			}
		} else {
			view += s.styles.Error.Render(s.result.Display())
		}
		view += "\n"
	}

	view += s.styles.Help.Render("enter translate · esc hide · type exit to quit") + "\n"
	return view
}
