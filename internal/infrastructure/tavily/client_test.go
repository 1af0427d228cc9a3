package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawpick/backend/internal/domain"
)

func TestConfigured(t *testing.T) {
	assert.False(t, NewClient("", "https://api.test", time.Second).Configured())
	assert.True(t, NewClient("key", "https://api.test", time.Second).Configured())
}

func TestSearch(t *testing.T) {
	t.Run("unconfigured client refuses to search", func(t *testing.T) {
		client := NewClient("", "https://api.test", time.Second)
		_, err := client.Search(context.Background(), "dog food review", 3)
		assert.ErrorIs(t, err, domain.ErrReviewSearchUnavailable)
	})

	t.Run("successful search returns snippets with source and query", func(t *testing.T) {
		var gotBody searchRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/search", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			json.NewEncoder(w).Encode(map[string]interface{}{
				"results": []map[string]string{
					{"title": "Review A", "url": "https://blog.test/a", "content": "Great for Labrador puppies"},
					{"title": "Review B", "url": "https://blog.test/b", "content": "Decent kibble"},
				},
			})
		}))
		defer server.Close()

		client := NewClient("key", server.URL, time.Second)
		snippets, err := client.Search(context.Background(), "dog food review", 3)
		require.NoError(t, err)

		assert.Equal(t, "key", gotBody.APIKey)
		assert.Equal(t, "dog food review", gotBody.Query)
		assert.Equal(t, "basic", gotBody.SearchDepth)
		assert.Equal(t, 3, gotBody.MaxResults)

		require.Len(t, snippets, 2)
		assert.Equal(t, "Great for Labrador puppies", snippets[0].Content)
		assert.Equal(t, "https://blog.test/a", snippets[0].Source)
		assert.Equal(t, "dog food review", snippets[0].Query)
	})

	t.Run("duplicate sources and empty content are dropped", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"results": []map[string]string{
					{"url": "https://blog.test/a", "content": "First"},
					{"url": "https://blog.test/a", "content": "Duplicate source"},
					{"url": "https://blog.test/b", "content": ""},
					{"url": "https://blog.test/c", "content": "Second"},
				},
			})
		}))
		defer server.Close()

		client := NewClient("key", server.URL, time.Second)
		snippets, err := client.Search(context.Background(), "q", 5)
		require.NoError(t, err)
		require.Len(t, snippets, 2)
		assert.Equal(t, "First", snippets[0].Content)
		assert.Equal(t, "Second", snippets[1].Content)
	})

	t.Run("results truncate at maxResults", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"results": []map[string]string{
					{"url": "https://blog.test/a", "content": "One"},
					{"url": "https://blog.test/b", "content": "Two"},
					{"url": "https://blog.test/c", "content": "Three"},
				},
			})
		}))
		defer server.Close()

		client := NewClient("key", server.URL, time.Second)
		snippets, err := client.Search(context.Background(), "q", 2)
		require.NoError(t, err)
		assert.Len(t, snippets, 2)
	})

	t.Run("api error maps to review search unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := NewClient("bad-key", server.URL, time.Second)
		_, err := client.Search(context.Background(), "q", 3)
		assert.ErrorIs(t, err, domain.ErrReviewSearchUnavailable)
	})

	t.Run("unreachable host maps to review search unavailable", func(t *testing.T) {
		client := NewClient("key", "http://127.0.0.1:1", time.Second)
		_, err := client.Search(context.Background(), "q", 3)
		assert.ErrorIs(t, err, domain.ErrReviewSearchUnavailable)
	})
}
