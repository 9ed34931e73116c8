package integrations

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kontent-tools/kontaudit/pkg/data"
)

func testLanguages() []data.Language {
	return []data.Language{
		{ID: "en", Name: "English", IsActive: true, IsDefault: true},
		{ID: "de", Name: "German", IsActive: true},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open export: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse export: %v", err)
	}
	return records
}

func TestWriteOverview(t *testing.T) {
	exporter := NewCSVExporter(t.TempDir())
	rows := []data.OverviewRow{
		{LanguageName: "English", Percent: 50, WithDescription: 1, TotalAssets: 2, FullyDescribed: 1, IsDefault: true},
	}

	path, err := exporter.WriteOverview("env-1", rows)
	if err != nil {
		t.Fatalf("WriteOverview() error = %v", err)
	}
	if filepath.Base(path) != "env-1-overview.csv" {
		t.Errorf("Unexpected export name %q", filepath.Base(path))
	}

	records := readCSV(t, path)
	if len(records) != 2 {
		t.Fatalf("Expected header + 1 row, got %d records", len(records))
	}
	want := []string{"English", "50", "1", "2", "1", "true"}
	for i, cell := range want {
		if records[1][i] != cell {
			t.Errorf("Column %d: expected %q, got %q", i, cell, records[1][i])
		}
	}
}

func TestWriteAssets(t *testing.T) {
	exporter := NewCSVExporter(t.TempDir())
	assets := []data.Asset{
		{
			ID:    "a1",
			Title: "Cat",
			Descriptions: []data.AssetDescription{
				{LanguageID: "en", Text: "A cat"},
			},
		},
		{ID: "a2", FileName: "dog.png"},
	}
	selected := map[string]bool{"en": true, "de": true}

	path, err := exporter.WriteAssets("env-1", assets, testLanguages(), selected)
	if err != nil {
		t.Fatalf("WriteAssets() error = %v", err)
	}
	if filepath.Base(path) != "env-1-assets.csv" {
		t.Errorf("Unexpected export name %q", filepath.Base(path))
	}

	records := readCSV(t, path)
	if len(records) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d records", len(records))
	}

	header := records[0]
	if header[2] != "English" || header[3] != "German" {
		t.Errorf("Expected one column per selected language, got %v", header)
	}

	first := records[1]
	if !strings.Contains(first[0], "env-1") || !strings.Contains(first[0], "a1") {
		t.Errorf("Expected edit link with environment and asset id, got %q", first[0])
	}
	if first[1] != "Cat" || first[2] != "A cat" || first[3] != MissingCell {
		t.Errorf("Unexpected first row %v", first)
	}

	second := records[2]
	if second[1] != "dog.png" || second[2] != MissingCell || second[3] != MissingCell {
		t.Errorf("Unexpected second row %v", second)
	}
}

func TestWriteAssetsUnselectedLanguageOmitted(t *testing.T) {
	exporter := NewCSVExporter(t.TempDir())
	assets := []data.Asset{{ID: "a1", FileName: "x.png"}}

	path, err := exporter.WriteAssets("env-1", assets, testLanguages(), map[string]bool{"en": true})
	if err != nil {
		t.Fatalf("WriteAssets() error = %v", err)
	}

	records := readCSV(t, path)
	if len(records[0]) != 3 {
		t.Errorf("Expected edit link + title + 1 language column, got %v", records[0])
	}
}

func TestSanitizeFilename(t *testing.T) {
	if got := sanitizeFilename("a/b:c"); got != "a_b_c" {
		t.Errorf("Expected 'a_b_c', got %q", got)
	}
}
