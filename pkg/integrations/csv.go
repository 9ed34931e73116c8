package integrations

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kontent-tools/kontaudit/pkg/data"
)

// MissingCell is what an absent or empty description renders as in exports.
const MissingCell = "None"

// CSVExporter writes the overview and the filtered asset table as
// spreadsheet files named after the environment.
type CSVExporter struct {
	outputDir string
}

func NewCSVExporter(outputDir string) *CSVExporter {
	return &CSVExporter{outputDir: outputDir}
}

// EditLink is the in-app URL for one asset.
func EditLink(environmentID, assetID string) string {
	return fmt.Sprintf("https://app.kontent.ai/%s/content-inventory/assets/asset/%s", environmentID, assetID)
}

// WriteOverview writes {env}-overview.csv and returns its path.
func (e *CSVExporter) WriteOverview(environmentID string, rows []data.OverviewRow) (string, error) {
	path := filepath.Join(e.outputDir, sanitizeFilename(environmentID)+"-overview.csv")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create overview export: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"Language", "Described %", "Described", "Total assets", "Fully described", "Default"}); err != nil {
		return "", err
	}
	for _, row := range rows {
		record := []string{
			row.LanguageName,
			strconv.Itoa(row.Percent),
			strconv.Itoa(row.WithDescription),
			strconv.Itoa(row.TotalAssets),
			strconv.Itoa(row.FullyDescribed),
			strconv.FormatBool(row.IsDefault),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write overview export: %w", err)
	}
	return path, nil
}

// WriteAssets writes {env}-assets.csv: one row per asset with the edit link,
// the display title, and one column per selected language. Languages come in
// fetch order; missing descriptions render as "None".
func (e *CSVExporter) WriteAssets(environmentID string, assets []data.Asset, languages []data.Language, selected map[string]bool) (string, error) {
	columns := make([]data.Language, 0, len(languages))
	for _, lang := range languages {
		if selected[lang.ID] {
			columns = append(columns, lang)
		}
	}

	path := filepath.Join(e.outputDir, sanitizeFilename(environmentID)+"-assets.csv")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create assets export: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	header := []string{"Edit link", "Title"}
	for _, lang := range columns {
		header = append(header, lang.Name)
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, asset := range assets {
		record := []string{EditLink(environmentID, asset.ID), asset.DisplayTitle()}
		for _, lang := range columns {
			text := asset.DescriptionText(lang.ID)
			if text == "" {
				text = MissingCell
			}
			record = append(record, text)
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write assets export: %w", err)
	}
	return path, nil
}

// sanitizeFilename removes characters that are invalid in filenames.
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	return strings.Trim(result, ".")
}
