package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kontent-tools/kontaudit/pkg/data"
	"github.com/kontent-tools/kontaudit/pkg/utils"
)

const managementBaseURL = "https://manage.kontent.ai/v2/projects"

// APIError is a rejection from the Management API. ErrorCode is the API's own
// numeric code; it is non-zero when the service recognized and refused the
// credential, as opposed to a plain transport-level failure.
type APIError struct {
	StatusCode int
	ErrorCode  int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("management api: %s (status %d, code %d)", e.Message, e.StatusCode, e.ErrorCode)
	}
	return fmt.Sprintf("management api: status %d", e.StatusCode)
}

type assetDTO struct {
	ID           string `json:"id"`
	FileName     string `json:"file_name"`
	Title        string `json:"title"`
	Type         string `json:"type"`
	Size         int64  `json:"size"`
	ImageWidth   int    `json:"image_width"`
	ImageHeight  int    `json:"image_height"`
	URL          string `json:"url"`
	Descriptions []struct {
		Language struct {
			ID string `json:"id"`
		} `json:"language"`
		Description string `json:"description"`
	} `json:"descriptions"`
}

func (a *assetDTO) toAsset() data.Asset {
	asset := data.Asset{
		ID:       a.ID,
		FileName: a.FileName,
		Title:    a.Title,
		Type:     a.Type,
		Size:     a.Size,
		Width:    a.ImageWidth,
		Height:   a.ImageHeight,
		URL:      a.URL,
	}
	asset.Descriptions = make([]data.AssetDescription, 0, len(a.Descriptions))
	for _, d := range a.Descriptions {
		asset.Descriptions = append(asset.Descriptions, data.AssetDescription{
			LanguageID: d.Language.ID,
			Text:       d.Description,
		})
	}
	return asset
}

type languageDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Codename  string `json:"codename"`
	IsActive  bool   `json:"is_active"`
	IsDefault bool   `json:"is_default"`
}

func (l *languageDTO) toLanguage() data.Language {
	return data.Language{
		ID:        l.ID,
		Name:      l.Name,
		Codename:  l.Codename,
		IsActive:  l.IsActive,
		IsDefault: l.IsDefault,
	}
}

type pagination struct {
	ContinuationToken string `json:"continuation_token"`
	NextPage          string `json:"next_page"`
}

// Kontent talks to the Kontent.ai Management API for one environment.
type Kontent struct {
	api *utils.API
}

func NewKontent(environmentID, apiKey string) *Kontent {
	return NewKontentWithBase(managementBaseURL, environmentID, apiKey)
}

// NewKontentWithBase exists for tests pointing at a local server.
func NewKontentWithBase(baseURL, environmentID, apiKey string) *Kontent {
	return &Kontent{api: utils.NewAPI(fmt.Sprintf("%s/%s", baseURL, environmentID), apiKey)}
}

// ListAssets drains the assets listing across continuation pages.
func (k *Kontent) ListAssets(ctx context.Context) ([]data.Asset, error) {
	var out []data.Asset
	continuation := ""
	for {
		var page struct {
			Assets     []assetDTO `json:"assets"`
			Pagination pagination `json:"pagination"`
		}
		if err := k.get(ctx, "/assets", continuation, &page); err != nil {
			return nil, fmt.Errorf("list assets: %w", err)
		}
		for i := range page.Assets {
			out = append(out, page.Assets[i].toAsset())
		}
		if page.Pagination.ContinuationToken == "" || page.Pagination.NextPage == "" {
			return out, nil
		}
		continuation = page.Pagination.ContinuationToken
	}
}

// ListLanguages fetches the configured languages. The listing is small enough
// that the API returns it in one page, but the continuation loop is kept for
// symmetry with assets.
func (k *Kontent) ListLanguages(ctx context.Context) ([]data.Language, error) {
	var out []data.Language
	continuation := ""
	for {
		var page struct {
			Languages  []languageDTO `json:"languages"`
			Pagination pagination    `json:"pagination"`
		}
		if err := k.get(ctx, "/languages", continuation, &page); err != nil {
			return nil, fmt.Errorf("list languages: %w", err)
		}
		for i := range page.Languages {
			out = append(out, page.Languages[i].toLanguage())
		}
		if page.Pagination.ContinuationToken == "" || page.Pagination.NextPage == "" {
			return out, nil
		}
		continuation = page.Pagination.ContinuationToken
	}
}

func (k *Kontent) get(ctx context.Context, path, continuation string, v any) error {
	err := k.api.Get(ctx, path, nil, continuation, v)
	if err == nil {
		return nil
	}

	var statusErr *utils.StatusError
	if errors.As(err, &statusErr) {
		apiErr := &APIError{StatusCode: statusErr.StatusCode}
		var body struct {
			Message   string `json:"message"`
			ErrorCode int    `json:"error_code"`
		}
		if json.Unmarshal(statusErr.Body, &body) == nil {
			apiErr.Message = body.Message
			apiErr.ErrorCode = body.ErrorCode
		}
		return apiErr
	}
	return err
}
