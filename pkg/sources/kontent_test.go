package sources

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kontent-tools/kontaudit/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestKontent_ListAssetsPagination(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/env-1/assets", r.URL.Path)

		if r.Header.Get(utils.ContinuationHeader) == "" {
			fmt.Fprint(w, `{
				"assets": [{
					"id": "a1",
					"file_name": "cat.png",
					"title": "Cat",
					"type": "image/png",
					"size": 1024,
					"image_width": 640,
					"image_height": 480,
					"url": "https://assets.example/cat.png",
					"external_id": "ignored",
					"descriptions": [
						{"language": {"id": "en"}, "description": "A cat"},
						{"language": {"id": "de"}, "description": ""}
					]
				}],
				"pagination": {"continuation_token": "tok-2", "next_page": "https://next"}
			}`)
			return
		}

		assert.Equal(t, "tok-2", r.Header.Get(utils.ContinuationHeader))
		fmt.Fprint(w, `{
			"assets": [{"id": "a2", "file_name": "dog.png", "descriptions": []}],
			"pagination": {"continuation_token": "", "next_page": ""}
		}`)
	}))
	defer server.Close()

	k := NewKontentWithBase(server.URL, "env-1", "secret-key")
	assets, err := k.ListAssets(context.Background())

	assert.NoError(t, err)
	assert.Len(t, assets, 2)
	assert.Equal(t, "Bearer secret-key", gotAuth)

	assert.Equal(t, "a1", assets[0].ID)
	assert.Equal(t, "cat.png", assets[0].FileName)
	assert.Equal(t, "Cat", assets[0].Title)
	assert.Equal(t, int64(1024), assets[0].Size)
	assert.Equal(t, 640, assets[0].Width)
	assert.Len(t, assets[0].Descriptions, 2)
	assert.Equal(t, "en", assets[0].Descriptions[0].LanguageID)
	assert.Equal(t, "A cat", assets[0].Descriptions[0].Text)

	assert.Equal(t, "a2", assets[1].ID)
}

func TestKontent_ListLanguages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/env-1/languages", r.URL.Path)
		fmt.Fprint(w, `{
			"languages": [
				{"id": "en", "name": "English", "codename": "en-us", "is_active": true, "is_default": true},
				{"id": "la", "name": "Latin", "codename": "la", "is_active": false, "is_default": false}
			],
			"pagination": {"continuation_token": "", "next_page": ""}
		}`)
	}))
	defer server.Close()

	k := NewKontentWithBase(server.URL, "env-1", "secret-key")
	languages, err := k.ListLanguages(context.Background())

	assert.NoError(t, err)
	assert.Len(t, languages, 2)
	assert.Equal(t, "English", languages[0].Name)
	assert.True(t, languages[0].IsActive)
	assert.True(t, languages[0].IsDefault)
	assert.False(t, languages[1].IsActive)
}

func TestKontent_APIErrorDecoding(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"message": "The provided API key is invalid.", "error_code": 2}`)
	}))
	defer server.Close()

	k := NewKontentWithBase(server.URL, "env-1", "bad-key")
	_, err := k.ListAssets(context.Background())

	var apiErr *APIError
	assert.Error(t, err)
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, 2, apiErr.ErrorCode)
	assert.Equal(t, "The provided API key is invalid.", apiErr.Message)
	// The credential must never leak into the error text.
	assert.NotContains(t, err.Error(), "bad-key")
}

func TestKontent_NotFoundWithoutErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	k := NewKontentWithBase(server.URL, "no-such-env", "key")
	_, err := k.ListAssets(context.Background())

	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, 0, apiErr.ErrorCode)
}
