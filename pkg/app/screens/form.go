package screens

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kontent-tools/kontaudit/pkg/app/styles"
	"github.com/kontent-tools/kontaudit/pkg/services"
	"github.com/kontent-tools/kontaudit/pkg/sources"
)

// SessionReadyMsg tells the root screen a fetch finished and the audit views
// can take over.
type SessionReadyMsg struct {
	Session *services.Session
}

type fetchDoneMsg struct {
	gen     int
	session *services.Session
	err     error
}

// FormScreen collects the environment ID and the Management API key, runs the
// staged fetch and shows per-field errors inline. The API key is masked while
// typed and never rendered back.
type FormScreen struct {
	envInput textinput.Model
	keyInput textinput.Model
	focus    int
	spin     spinner.Model

	// gen guards against a stale response overwriting a newer submission.
	gen     int
	loading bool

	envErr string
	keyErr string

	newSource func(environmentID, apiKey string) sources.Source

	width  int
	height int
}

func NewFormScreen(defaultEnvironmentID string) *FormScreen {
	env := textinput.New()
	env.Placeholder = "Environment ID"
	env.CharLimit = 64
	env.Width = 40
	env.SetValue(defaultEnvironmentID)
	env.Focus()

	key := textinput.New()
	key.Placeholder = "Management API key"
	key.CharLimit = 2048
	key.Width = 40
	key.EchoMode = textinput.EchoPassword
	key.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StatusLoading

	return &FormScreen{
		envInput: env,
		keyInput: key,
		spin:     sp,
		newSource: func(environmentID, apiKey string) sources.Source {
			return sources.NewKontent(environmentID, apiKey)
		},
	}
}

func (s *FormScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *FormScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case spinner.TickMsg:
		if s.loading {
			s.spin, cmd = s.spin.Update(msg)
			return s, cmd
		}

	case tea.KeyMsg:
		// The submit control is disabled while a fetch is in flight.
		if s.loading {
			return s, nil
		}

		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			s.switchFocus()
			return s, textinput.Blink

		case "enter":
			return s, s.submit()
		}

	case fetchDoneMsg:
		if msg.gen != s.gen {
			// A newer submission superseded this response.
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.setError(msg.err)
			return s, nil
		}
		s.envErr = ""
		s.keyErr = ""
		return s, func() tea.Msg {
			return SessionReadyMsg{Session: msg.session}
		}
	}

	if s.envInput.Focused() {
		s.envInput, cmd = s.envInput.Update(msg)
	} else {
		s.keyInput, cmd = s.keyInput.Update(msg)
	}
	return s, cmd
}

func (s *FormScreen) switchFocus() {
	s.focus = (s.focus + 1) % 2
	if s.focus == 0 {
		s.envInput.Focus()
		s.keyInput.Blur()
	} else {
		s.envInput.Blur()
		s.keyInput.Focus()
	}
}

func (s *FormScreen) submit() tea.Cmd {
	environmentID := strings.TrimSpace(s.envInput.Value())
	apiKey := strings.TrimSpace(s.keyInput.Value())

	s.envErr = ""
	s.keyErr = ""
	if environmentID == "" {
		s.envErr = "Environment ID is required."
	}
	if apiKey == "" {
		s.keyErr = "Management API key is required."
	}
	if s.envErr != "" || s.keyErr != "" {
		return nil
	}

	s.loading = true
	s.gen++
	gen := s.gen
	source := s.newSource(environmentID, apiKey)

	load := func() tea.Msg {
		session := services.NewSession(environmentID, source)
		err := session.Load(context.Background())
		return fetchDoneMsg{gen: gen, session: session, err: err}
	}
	return tea.Batch(s.spin.Tick, load)
}

func (s *FormScreen) setError(err error) {
	field, message := services.UserMessage(err)
	switch field {
	case services.FieldAPIKey:
		s.keyErr = message
	default:
		s.envErr = message
	}
}

func (s *FormScreen) View() string {
	header := styles.TitleStyle.Render("🔎 Find empty asset descriptions")

	envStyle := styles.InputStyle
	keyStyle := styles.InputStyle
	if s.envInput.Focused() {
		envStyle = styles.FocusedInputStyle
	} else {
		keyStyle = styles.FocusedInputStyle
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(styles.TextStyle.Bold(true).Render("Environment ID"))
	b.WriteString("\n")
	b.WriteString(envStyle.Render(s.envInput.View()))
	b.WriteString("\n")
	if s.envErr != "" {
		b.WriteString(styles.StatusError.Render(s.envErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.TextStyle.Bold(true).Render("Management API key"))
	b.WriteString("\n")
	b.WriteString(keyStyle.Render(s.keyInput.View()))
	b.WriteString("\n")
	if s.keyErr != "" {
		b.WriteString(styles.StatusError.Render(s.keyErr))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if s.loading {
		b.WriteString(styles.StatusLoading.Render(fmt.Sprintf("%s Fetching assets...", s.spin.View())))
	} else {
		b.WriteString(styles.HelpStyle.Render("enter: get assets • tab: switch field • ctrl+c: quit"))
	}
	return b.String()
}
