package audit

// PageMemory tracks the current table page across a search session. Starting
// a search jumps to page 1 but remembers where the user was; clearing the
// search restores that page. Changing the language selection or the
// missing-only flag invalidates the remembered page entirely, even while a
// restore is pending.
type PageMemory struct {
	page      int
	savedPage int
	lastQuery string
}

func NewPageMemory() *PageMemory {
	return &PageMemory{page: 1, savedPage: 1}
}

// Page returns the current 1-based page.
func (p *PageMemory) Page() int {
	return p.page
}

// SetPage records explicit pagination by the user.
func (p *PageMemory) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	p.page = page
}

// QueryChanged feeds the controller the new debounced query. Only the
// empty/non-empty transitions matter; query-to-query edits while a search is
// active leave the page alone.
func (p *PageMemory) QueryChanged(query string) {
	was := p.lastQuery
	p.lastQuery = query

	switch {
	case was == "" && query != "":
		p.savedPage = p.page
		p.page = 1
	case was != "" && query == "":
		if p.savedPage != 1 {
			p.page = p.savedPage
		} else {
			p.page = 1
		}
		p.savedPage = 1
	}
}

// FiltersChanged resets both the page and the saved page. Filter changes
// always win over a pending search restore.
func (p *PageMemory) FiltersChanged() {
	p.page = 1
	p.savedPage = 1
}

// Clamp pulls the page back into range after the filtered set shrank. An
// empty result keeps the page at 1.
func (p *PageMemory) Clamp(pageCount int) {
	if pageCount < 1 {
		p.page = 1
		return
	}
	if p.page > pageCount {
		p.page = pageCount
	}
}
