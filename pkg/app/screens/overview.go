package screens

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kontent-tools/kontaudit/pkg/app/styles"
	"github.com/kontent-tools/kontaudit/pkg/audit"
	"github.com/kontent-tools/kontaudit/pkg/data"
	"github.com/kontent-tools/kontaudit/pkg/services"
)

type overviewComputedMsg struct {
	rows []data.OverviewRow
}

// OverviewScreen shows per-language completeness for the whole session,
// untouched by the table filters.
type OverviewScreen struct {
	session *services.Session
	rows    []data.OverviewRow
	width   int
	height  int
}

func NewOverviewScreen(session *services.Session) *OverviewScreen {
	return &OverviewScreen{session: session}
}

// Init recomputes the aggregation; the root screen re-runs it on every tab
// switch so selection changes made on the audit screen are picked up.
func (s *OverviewScreen) Init() tea.Cmd {
	return s.compute
}

func (s *OverviewScreen) compute() tea.Msg {
	rows := audit.Overview(s.session.Assets, s.session.Languages, s.session.Selected)
	return overviewComputedMsg{rows: rows}
}

func (s *OverviewScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case overviewComputedMsg:
		s.rows = msg.rows

	case tea.KeyMsg:
		if msg.String() == "r" {
			return s, s.compute
		}
	}
	return s, nil
}

func (s *OverviewScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render(fmt.Sprintf("🌐 Description completeness · %s", s.session.EnvironmentID))

	if len(s.rows) == 0 {
		empty := styles.MutedStyle.Render("No languages selected")
		help := styles.HelpStyle.Render("tab: assets • ctrl+e: settings • q: quit")
		return fmt.Sprintf("%s\n\n%s\n\n%s", header, empty, help)
	}

	columns := []table.Column{
		{Title: "Language", Width: 24},
		{Title: "Described %", Width: 12},
		{Title: "Described", Width: 10},
		{Title: "Total", Width: 8},
		{Title: "Default", Width: 8},
	}

	rows := make([]table.Row, 0, len(s.rows))
	for _, row := range s.rows {
		def := ""
		if row.IsDefault {
			def = "yes"
		}
		rows = append(rows, table.Row{
			row.LanguageName,
			fmt.Sprintf("%d%%", row.Percent),
			strconv.Itoa(row.WithDescription),
			strconv.Itoa(row.TotalAssets),
			def,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)),
	)

	st := table.DefaultStyles()
	st.Header = st.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true).
		Bold(true)
	st.Selected = lipgloss.NewStyle()
	t.SetStyles(st)

	summary := styles.SubtitleStyle.Render(fmt.Sprintf(
		"%d assets fully described in all %d selected languages",
		s.rows[0].FullyDescribed, len(s.rows),
	))

	help := styles.HelpStyle.Render("r: refresh • tab: assets • ctrl+e: settings • q: quit")

	return fmt.Sprintf("%s\n%s\n\n%s\n%s", header, t.View(), summary, help)
}
