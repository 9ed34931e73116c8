package components

import (
	"fmt"
	"strings"

	"github.com/kontent-tools/kontaudit/pkg/app/styles"
	"github.com/kontent-tools/kontaudit/pkg/data"
)

// LangPicker is the language multi-select overlay. It renders checkboxes over
// the session's selection map; mutating the map is left to the caller so the
// page reset that must accompany a selection change stays in one place.
type LangPicker struct {
	Languages []data.Language
	Selected  map[string]bool
	Cursor    int
}

func NewLangPicker(languages []data.Language, selected map[string]bool) *LangPicker {
	return &LangPicker{Languages: languages, Selected: selected}
}

func (p *LangPicker) Next() {
	if len(p.Languages) == 0 {
		return
	}
	p.Cursor++
	if p.Cursor >= len(p.Languages) {
		p.Cursor = 0
	}
}

func (p *LangPicker) Prev() {
	if len(p.Languages) == 0 {
		return
	}
	p.Cursor--
	if p.Cursor < 0 {
		p.Cursor = len(p.Languages) - 1
	}
}

// Current returns the language under the cursor.
func (p *LangPicker) Current() (data.Language, bool) {
	if len(p.Languages) == 0 || p.Cursor >= len(p.Languages) {
		return data.Language{}, false
	}
	return p.Languages[p.Cursor], true
}

func (p *LangPicker) View() string {
	if len(p.Languages) == 0 {
		return styles.MutedStyle.Render("No active languages")
	}

	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render("Languages"))
	b.WriteString("\n\n")

	for i, lang := range p.Languages {
		box := "[ ]"
		if p.Selected[lang.ID] {
			box = "[x]"
		}
		name := lang.Name
		if lang.IsDefault {
			name += " (default)"
		}
		line := fmt.Sprintf("%s %s", box, name)

		if i == p.Cursor {
			line = styles.TextStyle.Bold(true).Render("> " + line)
		} else {
			line = styles.TextStyle.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(styles.HelpStyle.Render("space: toggle • a: select all • esc: close"))
	return b.String()
}
