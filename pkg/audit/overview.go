package audit

import (
	"math"
	"sort"

	"github.com/kontent-tools/kontaudit/pkg/data"
)

// Overview aggregates per-language completeness over the full session asset
// set. It is independent of the table filters and pagination: toggling search
// or missing-only never changes these numbers.
//
// Rows come back sorted descending by described count; ties keep the language
// fetch order.
func Overview(assets []data.Asset, languages []data.Language, selected map[string]bool) []data.OverviewRow {
	total := len(assets)
	fully := fullyDescribed(assets, languages, selected)

	rows := make([]data.OverviewRow, 0, len(languages))
	for _, lang := range languages {
		if !selected[lang.ID] {
			continue
		}
		with := 0
		for _, asset := range assets {
			if asset.Described(lang.ID) {
				with++
			}
		}
		percent := 0
		if total > 0 {
			percent = int(math.Round(float64(with) / float64(total) * 100))
		}
		rows = append(rows, data.OverviewRow{
			LanguageID:      lang.ID,
			LanguageName:    lang.Name,
			Percent:         percent,
			WithDescription: with,
			TotalAssets:     total,
			FullyDescribed:  fully,
			IsDefault:       lang.IsDefault,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].WithDescription > rows[j].WithDescription
	})
	return rows
}

// fullyDescribed counts assets carrying a non-empty description in every
// selected language simultaneously. Zero selected languages means no asset
// qualifies.
func fullyDescribed(assets []data.Asset, languages []data.Language, selected map[string]bool) int {
	ids := make([]string, 0, len(languages))
	for _, lang := range languages {
		if selected[lang.ID] {
			ids = append(ids, lang.ID)
		}
	}
	if len(ids) == 0 {
		return 0
	}

	count := 0
	for _, asset := range assets {
		described := true
		for _, id := range ids {
			if !asset.Described(id) {
				described = false
				break
			}
		}
		if described {
			count++
		}
	}
	return count
}
