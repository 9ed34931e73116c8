package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kontent-tools/kontaudit/pkg/app/styles"
	"github.com/kontent-tools/kontaudit/pkg/config"
	"github.com/kontent-tools/kontaudit/pkg/services"
)

type screenType int

const (
	formView screenType = iota
	auditView
	overviewView
)

// RootScreen owns the session lifecycle: the form until a fetch succeeds,
// then the audit and overview tabs, and back to a fresh form on reset.
type RootScreen struct {
	cfg     config.Config
	session *services.Session

	currentView screenType
	form        *FormScreen
	audit       *AuditScreen
	overview    *OverviewScreen

	width  int
	height int
}

func NewRootScreen(cfg config.Config) *RootScreen {
	return &RootScreen{
		cfg:         cfg,
		currentView: formView,
		form:        NewFormScreen(cfg.EnvironmentID),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.form.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			r.teardown()
			return r, tea.Quit

		case "q":
			// Typed "q" quits outside text entry; the form and the audit
			// search box consume it as text.
			if r.currentView == overviewView || (r.currentView == auditView && !r.audit.typing()) {
				r.teardown()
				return r, tea.Quit
			}

		case "ctrl+e":
			// Change settings: discard the whole session.
			if r.session != nil {
				r.teardown()
				r.session = nil
				r.audit = nil
				r.overview = nil
				r.form = NewFormScreen(r.cfg.EnvironmentID)
				r.currentView = formView
				return r, r.form.Init()
			}

		case "tab":
			switch r.currentView {
			case auditView:
				if !r.audit.typing() {
					r.currentView = overviewView
					return r, r.overview.Init()
				}
			case overviewView:
				r.currentView = auditView
				return r, r.audit.Init()
			}
		}

	case SessionReadyMsg:
		r.session = msg.Session
		r.audit = NewAuditScreen(msg.Session, r.cfg)
		r.overview = NewOverviewScreen(msg.Session)
		r.currentView = auditView
		return r, tea.Batch(r.audit.Init(), r.resize())
	}

	switch r.currentView {
	case formView:
		newModel, newCmd := r.form.Update(msg)
		r.form = newModel.(*FormScreen)
		return r, newCmd
	case auditView:
		newModel, newCmd := r.audit.Update(msg)
		r.audit = newModel.(*AuditScreen)
		return r, newCmd
	case overviewView:
		newModel, newCmd := r.overview.Update(msg)
		r.overview = newModel.(*OverviewScreen)
		return r, newCmd
	}

	return r, cmd
}

// resize replays the last window size to newly created screens.
func (r *RootScreen) resize() tea.Cmd {
	width, height := r.width, r.height
	if width == 0 {
		return nil
	}
	return func() tea.Msg {
		return tea.WindowSizeMsg{Width: width, Height: height}
	}
}

func (r *RootScreen) teardown() {
	if r.audit != nil {
		r.audit.Close()
	}
}

func (r *RootScreen) View() string {
	var content string
	switch r.currentView {
	case formView:
		return r.form.View()
	case auditView:
		content = r.audit.View()
	case overviewView:
		content = r.overview.View()
	}
	return fmt.Sprintf("%s\n\n%s", r.renderTabs(), content)
}

func (r *RootScreen) renderTabs() string {
	auditTab := "Assets"
	overviewTab := "Overview"

	if r.currentView == auditView {
		auditTab = styles.ActiveTabStyle.Render(auditTab)
		overviewTab = styles.InactiveTabStyle.Render(overviewTab)
	} else {
		auditTab = styles.InactiveTabStyle.Render(auditTab)
		overviewTab = styles.ActiveTabStyle.Render(overviewTab)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, auditTab, overviewTab)
}
