package data

import (
	"path/filepath"
	"testing"
)

func TestSnapshotWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.duckdb")
	snap, err := OpenSnapshot(path)
	if err != nil {
		t.Fatalf("OpenSnapshot() error = %v", err)
	}
	defer snap.Close()

	assets := []Asset{
		{
			ID: "a1", FileName: "cat.png", Title: "Cat", Size: 1024,
			Descriptions: []AssetDescription{
				{LanguageID: "en", Text: "A cat"},
				{LanguageID: "de", Text: ""},
			},
		},
		{ID: "a2", FileName: "dog.png"},
	}
	languages := []Language{
		{ID: "en", Name: "English", Codename: "en-us", IsActive: true, IsDefault: true},
	}

	if err := snap.Write(assets, languages); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	counts := map[string]int{"assets": 2, "languages": 1, "descriptions": 2}
	for table, want := range counts {
		var got int
		if err := snap.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&got); err != nil {
			t.Fatalf("Failed to count %s: %v", table, err)
		}
		if got != want {
			t.Errorf("Expected %d rows in %s, got %d", want, table, got)
		}
	}
}

func TestSnapshotRewriteReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.duckdb")
	snap, err := OpenSnapshot(path)
	if err != nil {
		t.Fatalf("OpenSnapshot() error = %v", err)
	}
	defer snap.Close()

	if err := snap.Write([]Asset{{ID: "a1"}}, nil); err != nil {
		t.Fatalf("first Write() error = %v", err)
	}
	if err := snap.Write([]Asset{{ID: "a2"}, {ID: "a3"}}, nil); err != nil {
		t.Fatalf("second Write() error = %v", err)
	}

	var got int
	if err := snap.db.QueryRow("SELECT COUNT(*) FROM assets").Scan(&got); err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("Expected rewrite to replace rows, got %d", got)
	}
}
