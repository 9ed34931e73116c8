package integrations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kontent-tools/kontaudit/pkg/data"
)

func TestCreateReport(t *testing.T) {
	builder := NewReportBuilder(t.TempDir())
	rows := []data.OverviewRow{
		{LanguageName: "English", Percent: 50, WithDescription: 1, TotalAssets: 2, FullyDescribed: 1, IsDefault: true},
		{LanguageName: "German", Percent: 0, WithDescription: 0, TotalAssets: 2, FullyDescribed: 1},
	}

	path, err := builder.CreateReport("env-1", rows, 2)
	if err != nil {
		t.Fatalf("CreateReport() error = %v", err)
	}
	if filepath.Base(path) != "env-1-report.epub" {
		t.Errorf("Unexpected report name %q", filepath.Base(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Report file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected non-empty report file")
	}
}

func TestCreateReportEmptyOverview(t *testing.T) {
	builder := NewReportBuilder(t.TempDir())
	if _, err := builder.CreateReport("env-1", nil, 0); err == nil {
		t.Error("Expected error for empty overview")
	}
}
