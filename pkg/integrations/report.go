package integrations

import (
	"fmt"
	"html"
	"path/filepath"

	"github.com/go-shiori/go-epub"
	"github.com/kontent-tools/kontaudit/pkg/data"
)

// ReportBuilder renders the completeness overview as a readable EPUB
// document, one section per language, for sharing outside a spreadsheet.
type ReportBuilder struct {
	outputDir string
}

func NewReportBuilder(outputDir string) *ReportBuilder {
	return &ReportBuilder{outputDir: outputDir}
}

// CreateReport writes {env}-report.epub and returns its path.
func (b *ReportBuilder) CreateReport(environmentID string, rows []data.OverviewRow, totalAssets int) (string, error) {
	if len(rows) == 0 {
		return "", fmt.Errorf("no overview rows to report")
	}

	e, err := epub.NewEpub(fmt.Sprintf("Asset description audit: %s", environmentID))
	if err != nil {
		return "", fmt.Errorf("failed to create report: %w", err)
	}
	e.SetAuthor("kontaudit")
	e.SetDescription(fmt.Sprintf("Per-language description completeness for %d assets.", totalAssets))
	e.SetLang("en")

	summary := fmt.Sprintf(
		"<h1>Audit summary</h1>\n<p>Environment: %s</p>\n<p>Total assets: %d</p>\n<p>Fully described in every selected language: %d</p>\n",
		html.EscapeString(environmentID), totalAssets, rows[0].FullyDescribed,
	)
	if _, err := e.AddSection(summary, "Summary", "", ""); err != nil {
		return "", fmt.Errorf("failed to add summary: %w", err)
	}

	for _, row := range rows {
		title := row.LanguageName
		if row.IsDefault {
			title += " (default)"
		}
		body := fmt.Sprintf(
			"<h1>%s</h1>\n<p>Described: %d of %d (%d%%)</p>\n<p>Missing: %d</p>\n",
			html.EscapeString(title),
			row.WithDescription, row.TotalAssets, row.Percent,
			row.TotalAssets-row.WithDescription,
		)
		if _, err := e.AddSection(body, title, "", ""); err != nil {
			return "", fmt.Errorf("failed to add section for %s: %w", row.LanguageName, err)
		}
	}

	path := filepath.Join(b.outputDir, sanitizeFilename(environmentID)+"-report.epub")
	if err := e.Write(path); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
