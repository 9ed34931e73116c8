package screens

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kontent-tools/kontaudit/pkg/app/components"
	"github.com/kontent-tools/kontaudit/pkg/app/styles"
	"github.com/kontent-tools/kontaudit/pkg/audit"
	"github.com/kontent-tools/kontaudit/pkg/config"
	"github.com/kontent-tools/kontaudit/pkg/data"
	"github.com/kontent-tools/kontaudit/pkg/integrations"
	"github.com/kontent-tools/kontaudit/pkg/services"
)

type exportDoneMsg struct {
	path string
	err  error
}

// AuditScreen is the main table: debounced search, language selection,
// missing-only filter and pagination over the session's assets, with the
// export actions.
type AuditScreen struct {
	session  *services.Session
	cfg      config.Config
	pageSize int

	search    textinput.Model
	deb       *components.Debouncer
	debounced string

	mem         *audit.PageMemory
	missingOnly bool

	picker     *components.LangPicker
	showPicker bool

	table *components.AssetTable
	pag   paginator.Model

	// Derived state, recomputed only when an engine input changes.
	visible   []data.Asset
	pageCount int
	filtered  int

	status    string
	statusErr bool

	width  int
	height int
}

func NewAuditScreen(session *services.Session, cfg config.Config) *AuditScreen {
	search := textinput.New()
	search.Placeholder = "Search title or description..."
	search.CharLimit = 200
	search.Width = 40

	pag := paginator.New()
	pag.Type = paginator.Dots
	pag.ActiveDot = styles.TitleStyle.Render("•")
	pag.InactiveDot = styles.MutedStyle.Render("•")

	s := &AuditScreen{
		session:  session,
		cfg:      cfg,
		pageSize: cfg.PageSize,
		search:   search,
		deb:      components.NewDebouncer(time.Duration(cfg.DebounceMs) * time.Millisecond),
		mem:      audit.NewPageMemory(),
		picker:   components.NewLangPicker(session.Languages, session.Selected),
		table:    components.NewAssetTable(),
		pag:      pag,
	}
	s.refresh()
	return s
}

func (s *AuditScreen) Init() tea.Cmd {
	return nil
}

// Close cancels the pending debounce so a timer firing after teardown is a
// no-op.
func (s *AuditScreen) Close() {
	s.deb.Cancel()
}

// typing reports whether keystrokes currently belong to the search box or the
// language picker rather than to global shortcuts.
func (s *AuditScreen) typing() bool {
	return s.search.Focused() || s.showPicker
}

func (s *AuditScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.table.Width = msg.Width - 4

	case components.DebounceTickMsg:
		if value, ok := s.deb.Resolve(msg); ok {
			query := strings.TrimSpace(value)
			if query != s.debounced {
				s.debounced = query
				s.mem.QueryChanged(query)
				s.refresh()
			}
		}

	case exportDoneMsg:
		if msg.err != nil {
			s.status = fmt.Sprintf("Export failed: %s", msg.err)
			s.statusErr = true
		} else {
			s.status = fmt.Sprintf("Wrote %s", msg.path)
			s.statusErr = false
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *AuditScreen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if s.showPicker {
		return s.handlePickerKey(msg)
	}

	if s.search.Focused() {
		switch msg.String() {
		case "enter", "esc":
			s.search.Blur()
			return s, nil
		default:
			var cmd tea.Cmd
			before := s.search.Value()
			s.search, cmd = s.search.Update(msg)
			if s.search.Value() != before {
				return s, tea.Batch(cmd, s.deb.Arm(s.search.Value()))
			}
			return s, cmd
		}
	}

	switch msg.String() {
	case "/":
		s.search.Focus()
		return s, textinput.Blink

	case "c":
		// Clear the search; the cleared value still runs through the
		// debouncer so page restoration happens on the stable query.
		if s.search.Value() != "" {
			s.search.SetValue("")
			return s, s.deb.Arm("")
		}

	case "m":
		s.missingOnly = !s.missingOnly
		s.mem.FiltersChanged()
		s.refresh()

	case "l":
		s.picker = components.NewLangPicker(s.session.Languages, s.session.Selected)
		s.showPicker = true

	case "left":
		if s.mem.Page() > 1 {
			s.mem.SetPage(s.mem.Page() - 1)
			s.refresh()
		}

	case "right":
		if s.mem.Page() < s.pageCount {
			s.mem.SetPage(s.mem.Page() + 1)
			s.refresh()
		}

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		page, _ := strconv.Atoi(msg.String())
		if page >= 1 && page <= s.pageCount {
			s.mem.SetPage(page)
			s.refresh()
		}

	case "o":
		return s, s.exportOverview()

	case "x":
		return s, s.exportAssets()

	case "e":
		return s, s.exportReport()

	case "s":
		return s, s.exportSnapshot()
	}

	return s, nil
}

func (s *AuditScreen) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "l", "q":
		s.showPicker = false

	case "up", "k":
		s.picker.Prev()

	case "down", "j":
		s.picker.Next()

	case " ":
		if lang, ok := s.picker.Current(); ok {
			s.session.ToggleLanguage(lang.ID)
			s.picker.Selected = s.session.Selected
			s.mem.FiltersChanged()
			s.refresh()
		}

	case "a":
		s.session.SelectAll()
		s.picker.Selected = s.session.Selected
		s.mem.FiltersChanged()
		s.refresh()
	}
	return s, nil
}

// refresh re-runs the pipeline. It is the only place derived state is
// produced, so the table recomputes exactly when an input changed.
func (s *AuditScreen) refresh() {
	filtered := audit.Filter(s.session.Assets, s.session.Selected, s.debounced, s.missingOnly)
	s.filtered = len(filtered)
	s.pageCount = audit.PageCount(len(filtered), s.pageSize)
	s.mem.Clamp(s.pageCount)
	s.visible = audit.Page(filtered, s.mem.Page(), s.pageSize)

	s.pag.Page = s.mem.Page() - 1
	if s.pageCount > 0 {
		s.pag.TotalPages = s.pageCount
	} else {
		s.pag.TotalPages = 1
	}
}

func (s *AuditScreen) exportOverview() tea.Cmd {
	rows := audit.Overview(s.session.Assets, s.session.Languages, s.session.Selected)
	exporter := integrations.NewCSVExporter(s.cfg.ExportDir)
	environmentID := s.session.EnvironmentID
	return func() tea.Msg {
		path, err := exporter.WriteOverview(environmentID, rows)
		return exportDoneMsg{path: path, err: err}
	}
}

func (s *AuditScreen) exportAssets() tea.Cmd {
	// The assets export covers the whole filtered set, not just the page.
	filtered := audit.Filter(s.session.Assets, s.session.Selected, s.debounced, s.missingOnly)
	exporter := integrations.NewCSVExporter(s.cfg.ExportDir)
	environmentID := s.session.EnvironmentID
	languages := s.session.Languages
	selected := s.session.Selected
	return func() tea.Msg {
		path, err := exporter.WriteAssets(environmentID, filtered, languages, selected)
		return exportDoneMsg{path: path, err: err}
	}
}

func (s *AuditScreen) exportReport() tea.Cmd {
	rows := audit.Overview(s.session.Assets, s.session.Languages, s.session.Selected)
	builder := integrations.NewReportBuilder(s.cfg.ExportDir)
	environmentID := s.session.EnvironmentID
	total := len(s.session.Assets)
	return func() tea.Msg {
		path, err := builder.CreateReport(environmentID, rows, total)
		return exportDoneMsg{path: path, err: err}
	}
}

func (s *AuditScreen) exportSnapshot() tea.Cmd {
	environmentID := s.session.EnvironmentID
	assets := s.session.Assets
	languages := s.session.Languages
	dir := s.cfg.ExportDir
	return func() tea.Msg {
		path := filepath.Join(dir, environmentID+"-snapshot.duckdb")
		snap, err := data.OpenSnapshot(path)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		defer snap.Close()
		if err := snap.Write(assets, languages); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func (s *AuditScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	if s.showPicker {
		return s.picker.View()
	}

	header := styles.TitleStyle.Render(fmt.Sprintf("🗂  Assets · %s", s.session.EnvironmentID))

	searchStyle := styles.InputStyle
	if s.search.Focused() {
		searchStyle = styles.FocusedInputStyle
	}
	searchView := searchStyle.Render(s.search.View())

	flags := make([]string, 0, 2)
	if s.missingOnly {
		flags = append(flags, styles.StatusOK.Render("missing only"))
	}
	flags = append(flags, styles.MutedStyle.Render(
		fmt.Sprintf("%d/%d languages", s.session.SelectedCount(), len(s.session.Languages)),
	))
	flagLine := strings.Join(flags, "  ")

	tableView := s.table.View(s.visible, s.session.Languages, s.session.Selected)

	pageLine := styles.MutedStyle.Render(
		fmt.Sprintf("%d assets • page %d of %d", s.filtered, s.mem.Page(), s.pageCount),
	)
	if s.pageCount > 1 {
		pageLine += "  " + s.pag.View()
	}

	var statusLine string
	if s.status != "" {
		if s.statusErr {
			statusLine = styles.StatusError.Render(s.status) + "\n"
		} else {
			statusLine = styles.StatusOK.Render(s.status) + "\n"
		}
	}

	help := styles.HelpStyle.Render(
		"/: search • c: clear • m: missing only • l: languages • ←/→: page • " +
			"o: overview csv • x: assets csv • e: report • s: snapshot • tab: overview • ctrl+e: settings • q: quit",
	)

	return fmt.Sprintf("%s\n%s  %s\n\n%s\n%s\n%s%s",
		header, searchView, flagLine, tableView, pageLine, statusLine, help,
	)
}
