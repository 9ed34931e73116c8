package data

import "strings"

// Asset is a media object tracked by the remote content environment, with
// optional per-language descriptions.
type Asset struct {
	ID           string
	FileName     string
	Title        string
	Type         string
	Size         int64
	Width        int
	Height       int
	URL          string
	Descriptions []AssetDescription
}

// AssetDescription is one language's description of an asset. A missing entry
// and an entry with empty or whitespace-only text are equivalent.
type AssetDescription struct {
	LanguageID string
	Text       string
}

// Language is a configured locale in the remote environment. Only active
// languages are audit-relevant.
type Language struct {
	ID        string
	Name      string
	Codename  string
	IsActive  bool
	IsDefault bool
}

// OverviewRow is one language's completeness summary. FullyDescribed is a
// global metric (assets described in every selected language) carried on each
// row so rows are self-contained.
type OverviewRow struct {
	LanguageID      string
	LanguageName    string
	Percent         int
	WithDescription int
	TotalAssets     int
	FullyDescribed  int
	IsDefault       bool
}

// DisplayTitle returns the asset title, falling back to the file name when
// the title is empty or whitespace.
func (a Asset) DisplayTitle() string {
	if t := strings.TrimSpace(a.Title); t != "" {
		return t
	}
	return a.FileName
}

// DescriptionFor returns the first description entry for the given language.
// The source data does not guarantee at most one entry per language; the
// first match wins.
func (a Asset) DescriptionFor(languageID string) (AssetDescription, bool) {
	for _, d := range a.Descriptions {
		if d.LanguageID == languageID {
			return d, true
		}
	}
	return AssetDescription{}, false
}

// DescriptionText returns the trimmed description text for the given
// language, or "" when the asset has no usable description in it.
func (a Asset) DescriptionText(languageID string) string {
	d, ok := a.DescriptionFor(languageID)
	if !ok {
		return ""
	}
	return strings.TrimSpace(d.Text)
}

// Described reports whether the asset has a non-empty description in the
// given language.
func (a Asset) Described(languageID string) bool {
	return a.DescriptionText(languageID) != ""
}

// ActiveLanguages filters a fetched language list down to the selectable set,
// preserving fetch order.
func ActiveLanguages(languages []Language) []Language {
	active := make([]Language, 0, len(languages))
	for _, lang := range languages {
		if lang.IsActive {
			active = append(active, lang)
		}
	}
	return active
}
