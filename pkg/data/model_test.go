package data

import "testing"

func TestDisplayTitle(t *testing.T) {
	asset := Asset{FileName: "dog.png", Title: "A dog"}
	if got := asset.DisplayTitle(); got != "A dog" {
		t.Errorf("Expected 'A dog', got '%s'", got)
	}

	asset.Title = ""
	if got := asset.DisplayTitle(); got != "dog.png" {
		t.Errorf("Expected fallback 'dog.png', got '%s'", got)
	}

	asset.Title = "   "
	if got := asset.DisplayTitle(); got != "dog.png" {
		t.Errorf("Expected whitespace title to fall back, got '%s'", got)
	}
}

func TestDescriptionForFirstMatchWins(t *testing.T) {
	asset := Asset{
		Descriptions: []AssetDescription{
			{LanguageID: "en", Text: "first"},
			{LanguageID: "en", Text: "second"},
			{LanguageID: "de", Text: "ein Hund"},
		},
	}

	d, ok := asset.DescriptionFor("en")
	if !ok {
		t.Fatal("Expected a description for 'en'")
	}
	if d.Text != "first" {
		t.Errorf("Expected first duplicate to win, got '%s'", d.Text)
	}

	if _, ok := asset.DescriptionFor("es"); ok {
		t.Error("Expected no description for 'es'")
	}
}

func TestDescribed(t *testing.T) {
	asset := Asset{
		Descriptions: []AssetDescription{
			{LanguageID: "en", Text: "A cat"},
			{LanguageID: "de", Text: "   "},
		},
	}

	if !asset.Described("en") {
		t.Error("Expected 'en' to count as described")
	}
	if asset.Described("de") {
		t.Error("Expected whitespace-only text to count as missing")
	}
	if asset.Described("es") {
		t.Error("Expected absent entry to count as missing")
	}
}

func TestActiveLanguages(t *testing.T) {
	languages := []Language{
		{ID: "en", Name: "English", IsActive: true, IsDefault: true},
		{ID: "la", Name: "Latin", IsActive: false},
		{ID: "de", Name: "German", IsActive: true},
	}

	active := ActiveLanguages(languages)
	if len(active) != 2 {
		t.Fatalf("Expected 2 active languages, got %d", len(active))
	}
	if active[0].ID != "en" || active[1].ID != "de" {
		t.Errorf("Expected fetch order preserved, got %s, %s", active[0].ID, active[1].ID)
	}
}
