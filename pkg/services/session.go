package services

import (
	"context"
	"errors"

	"github.com/kontent-tools/kontaudit/pkg/data"
	"github.com/kontent-tools/kontaudit/pkg/sources"
)

// ErrEmptyProject means the asset fetch succeeded but the environment holds
// no assets. That is an error, not an empty table.
var ErrEmptyProject = errors.New("the environment contains no assets")

// Field says which form input an error message belongs next to.
type Field int

const (
	FieldEnvironment Field = iota
	FieldAPIKey
)

// Session owns one fetch's worth of raw data plus the language selection.
// Everything here is discarded on reset; derived rows never live here.
type Session struct {
	source sources.Source

	EnvironmentID string
	Assets        []data.Asset
	Languages     []data.Language
	Selected      map[string]bool
}

func NewSession(environmentID string, source sources.Source) *Session {
	return &Session{source: source, EnvironmentID: environmentID}
}

// Load fetches assets and then languages. The language fetch is only issued
// after a non-empty asset fetch; any failure leaves the session untouched, so
// a half-populated state is impossible.
func (s *Session) Load(ctx context.Context) error {
	assets, err := s.source.ListAssets(ctx)
	if err != nil {
		return err
	}
	if len(assets) == 0 {
		return ErrEmptyProject
	}

	languages, err := s.source.ListLanguages(ctx)
	if err != nil {
		return err
	}

	active := data.ActiveLanguages(languages)
	selected := make(map[string]bool, len(active))
	for _, lang := range active {
		selected[lang.ID] = true
	}

	s.Assets = assets
	s.Languages = active
	s.Selected = selected
	return nil
}

// Loaded reports whether a fetch has populated the session.
func (s *Session) Loaded() bool {
	return len(s.Assets) > 0
}

// ToggleLanguage flips one language in or out of the selection.
func (s *Session) ToggleLanguage(id string) {
	if s.Selected == nil {
		s.Selected = make(map[string]bool)
	}
	s.Selected[id] = !s.Selected[id]
}

// SelectAll puts every active language back into the selection.
func (s *Session) SelectAll() {
	selected := make(map[string]bool, len(s.Languages))
	for _, lang := range s.Languages {
		selected[lang.ID] = true
	}
	s.Selected = selected
}

// SelectedCount returns how many languages are currently selected.
func (s *Session) SelectedCount() int {
	count := 0
	for _, lang := range s.Languages {
		if s.Selected[lang.ID] {
			count++
		}
	}
	return count
}

// SelectedLanguages returns the selected languages in fetch order.
func (s *Session) SelectedLanguages() []data.Language {
	out := make([]data.Language, 0, len(s.Languages))
	for _, lang := range s.Languages {
		if s.Selected[lang.ID] {
			out = append(out, lang)
		}
	}
	return out
}

// UserMessage maps a load failure onto the form field it belongs to and the
// message shown there. A rejection carrying the API's numeric error code
// means the key itself was refused; anything else, including transport
// failures, reads as a bad environment ID.
func UserMessage(err error) (Field, string) {
	if errors.Is(err, ErrEmptyProject) {
		return FieldEnvironment, "The environment contains no assets."
	}
	var apiErr *sources.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode != 0 {
		return FieldAPIKey, "Invalid or unauthorized API key."
	}
	return FieldEnvironment, "Invalid environment ID."
}
