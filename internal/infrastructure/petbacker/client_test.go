package petbacker

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingPageHTML = `
<html><body>
<div class="sitter-card">
	<a class="profileimage-bg" href="/pet-service/grooming/happy-paws"></a>
	<img class="sitter-img" src="https://cdn.test/happy-paws.jpg">
	<div class="sitter-name">Happy Paws Grooming</div>
	<div class="list-group-item">  Makati,
		Metro Manila </div>
	<div class="sitter-description">Professional groomer with Labrador experience</div>
</div>
<div class="sitter-card">
	<div class="sitter-name">Budget Cuts</div>
</div>
</body></html>`

const listingItemPageHTML = `
<html><body>
<a class="listing-item" href="/pet-service/grooming/new-layout">
	<div class="sitter-name">New Layout Groomer</div>
</a>
</body></html>`

func TestSearchGroomers(t *testing.T) {
	t.Run("parses sitter cards", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(listingPageHTML))
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)
		groomers, err := client.SearchGroomers(context.Background(), "Labrador", "makati", 3)
		require.NoError(t, err)
		assert.Equal(t, "/s/dog-grooming/makati--philippines", gotPath)
		require.Len(t, groomers, 2)

		first := groomers[0]
		assert.Equal(t, "Happy Paws Grooming", first.Name)
		assert.Equal(t, server.URL+"/pet-service/grooming/happy-paws", first.URL)
		assert.Equal(t, "Makati, Metro Manila", first.Location, "whitespace collapses to single spaces")
		assert.Equal(t, "Professional groomer with Labrador experience", first.About)
		assert.Equal(t, "https://cdn.test/happy-paws.jpg", first.ImageURL)

		second := groomers[1]
		assert.Equal(t, "Budget Cuts", second.Name)
		assert.Equal(t, "Manila, Philippines", second.Location, "missing location falls back")
	})

	t.Run("falls back to the listing-item layout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(listingItemPageHTML))
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)
		groomers, err := client.SearchGroomers(context.Background(), "Poodle", "", 3)
		require.NoError(t, err)
		require.Len(t, groomers, 1)
		assert.Equal(t, "New Layout Groomer", groomers[0].Name)
		assert.Equal(t, server.URL+"/pet-service/grooming/new-layout", groomers[0].URL)
	})

	t.Run("truncates to maxResults", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(listingPageHTML))
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)
		groomers, err := client.SearchGroomers(context.Background(), "Labrador", "makati", 1)
		require.NoError(t, err)
		assert.Len(t, groomers, 1)
	})

	t.Run("directory error surfaces to the caller", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)
		_, err := client.SearchGroomers(context.Background(), "Labrador", "makati", 3)
		assert.Error(t, err)
	})
}

func TestLocationSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", defaultLocation},
		{"makati", "makati--philippines"},
		{"Quezon City", "quezon-city--philippines"},
		{"manila--metro-manila--philippines", "manila--metro-manila--philippines"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, locationSlug(tc.in), "location %q", tc.in)
	}
}
