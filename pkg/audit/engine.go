// Package audit derives the table and overview views from a session's raw
// asset and language collections. Everything in here is pure: same inputs,
// same output, fresh allocations each call.
package audit

import (
	"strings"

	"github.com/kontent-tools/kontaudit/pkg/data"
)

// DefaultPageSize matches the page length of the original audit table.
const DefaultPageSize = 10

// Result is one complete derivation pass over the session data.
type Result struct {
	Visible   []data.Asset
	PageCount int
	Overview  []data.OverviewRow
}

// Compute runs the full pipeline: text filter, missing-only filter,
// pagination, plus the overview aggregation of the unfiltered asset set.
// The stage order is fixed so that PageCount always reflects every active
// filter.
func Compute(assets []data.Asset, languages []data.Language, selected map[string]bool, query string, missingOnly bool, page, pageSize int) Result {
	filtered := Filter(assets, selected, query, missingOnly)
	return Result{
		Visible:   Page(filtered, page, pageSize),
		PageCount: PageCount(len(filtered), pageSize),
		Overview:  Overview(assets, languages, selected),
	}
}

// Filter applies the text filter and then the missing-only filter, preserving
// input order. The returned slice is always freshly allocated.
func Filter(assets []data.Asset, selected map[string]bool, query string, missingOnly bool) []data.Asset {
	retained := make([]data.Asset, 0, len(assets))
	needle := strings.ToLower(strings.TrimSpace(query))
	for _, asset := range assets {
		if needle != "" && !matchesQuery(asset, needle) {
			continue
		}
		if missingOnly && !missingSomewhere(asset, selected) {
			continue
		}
		retained = append(retained, asset)
	}
	return retained
}

// matchesQuery reports whether the lower-cased needle is a substring of the
// display title or of the space-joined text of every description, across all
// languages rather than just the selected ones.
func matchesQuery(asset data.Asset, needle string) bool {
	if strings.Contains(strings.ToLower(asset.DisplayTitle()), needle) {
		return true
	}
	texts := make([]string, 0, len(asset.Descriptions))
	for _, d := range asset.Descriptions {
		texts = append(texts, d.Text)
	}
	return strings.Contains(strings.ToLower(strings.Join(texts, " ")), needle)
}

// missingSomewhere reports whether at least one selected language lacks a
// non-empty description. With nothing selected there is no language to be
// missing in, so nothing is retained.
func missingSomewhere(asset data.Asset, selected map[string]bool) bool {
	for id, on := range selected {
		if on && !asset.Described(id) {
			return true
		}
	}
	return false
}

// PageCount is ceil(total/pageSize); zero exactly when total is zero.
func PageCount(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Page slices out the 1-based page. Out-of-range pages yield an empty slice
// rather than panicking; callers clamp via PageMemory.
func Page(assets []data.Asset, page, pageSize int) []data.Asset {
	if page < 1 || pageSize < 1 {
		return []data.Asset{}
	}
	start := (page - 1) * pageSize
	if start >= len(assets) {
		return []data.Asset{}
	}
	end := start + pageSize
	if end > len(assets) {
		end = len(assets)
	}
	out := make([]data.Asset, end-start)
	copy(out, assets[start:end])
	return out
}
