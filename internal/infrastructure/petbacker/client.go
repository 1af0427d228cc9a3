package petbacker

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/pawpick/backend/internal/domain"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// defaultLocation is the grooming search slug used when the caller does not
// provide one.
const defaultLocation = "manila--metro-manila--philippines"

// Client scrapes the PetBacker groomer directory.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new groomer directory client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// SearchGroomers fetches the grooming listing page for a location and
// returns up to maxResults groomer profiles. The breed is not a filter on
// the directory side; suitability is scored downstream.
func (c *Client) SearchGroomers(ctx context.Context, breed, location string, maxResults int) ([]domain.GroomerProfile, error) {
	if maxResults <= 0 {
		maxResults = 3
	}
	slug := locationSlug(location)
	reqURL := fmt.Sprintf("%s/s/dog-grooming/%s", c.baseURL, slug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("groomer directory unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("groomer directory returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse groomer listing: %w", err)
	}

	groomers := c.parseListings(doc)
	log.Printf("[GROOMERS] Found %d groomer cards for %q", len(groomers), slug)

	if len(groomers) > maxResults {
		groomers = groomers[:maxResults]
	}
	return groomers, nil
}

// parseListings handles both the legacy .sitter-card layout and the newer
// a.listing-item layout of the directory.
func (c *Client) parseListings(doc *goquery.Document) []domain.GroomerProfile {
	cards := doc.Find(".sitter-card")
	if cards.Length() == 0 {
		cards = doc.Find("a.listing-item")
	}

	var groomers []domain.GroomerProfile
	cards.Each(func(_ int, card *goquery.Selection) {
		profileURL := ""
		if href, ok := card.Attr("href"); ok {
			profileURL = c.baseURL + href
		} else if href, ok := card.Find("a.profileimage-bg").Attr("href"); ok {
			profileURL = c.baseURL + href
		}

		name := strings.TrimSpace(card.Find(".sitter-name").Text())
		if name == "" {
			name = "Unknown Groomer"
		}

		location := strings.Join(strings.Fields(card.Find(".list-group-item").First().Text()), " ")
		if location == "" {
			location = "Manila, Philippines"
		}

		about := strings.TrimSpace(card.Find(".sitter-description").Text())
		imageURL := card.Find("img.sitter-img").AttrOr("src", "")

		groomers = append(groomers, domain.GroomerProfile{
			Name:     name,
			URL:      profileURL,
			Location: location,
			About:    about,
			ImageURL: imageURL,
		})
	})

	return groomers
}

// locationSlug normalizes a free-text location into the directory's URL slug
// format, e.g. "manila--metro-manila--philippines".
func locationSlug(location string) string {
	location = strings.ToLower(strings.TrimSpace(location))
	if location == "" {
		return defaultLocation
	}
	slug := strings.ReplaceAll(location, " ", "-")
	if !strings.Contains(slug, "philippines") {
		slug += "--philippines"
	}
	return slug
}
