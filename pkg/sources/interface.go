package sources

import (
	"context"

	"github.com/kontent-tools/kontaudit/pkg/data"
)

// Source is the remote data gateway: two idempotent bulk fetches with the
// server-side pagination already exhausted.
type Source interface {
	ListAssets(ctx context.Context) ([]data.Asset, error)
	ListLanguages(ctx context.Context) ([]data.Language, error)
}
