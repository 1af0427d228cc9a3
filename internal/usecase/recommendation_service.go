package usecase

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/pawpick/backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

// parentheticalRegex strips marketing parentheticals from product titles
// before they are used as web-search queries.
var (
	parentheticalRegex = regexp.MustCompile(`\(.*?\)`)
	punctuationRegex   = regexp.MustCompile(`[^\w\s]`)
)

// Groomer scoring constants, applied to profile text.
const (
	groomerBreedBonus     = 5.0 // breed mentioned in name or profile text
	groomerIndicatorBonus = 1.0 // per experience indicator found
	groomerScoreMax       = 10.0
)

// experienceIndicators are profile keywords that suggest a capable groomer.
var experienceIndicators = []string{"experience", "professional", "certified", "trained", "specialist"}

// RecommendationConfig holds tunables for the recommendation pipeline.
type RecommendationConfig struct {
	MaxReviewsPerItem    int           // snippets gathered per candidate, bounded [1,5]
	MaxConcurrentFetches int           // review fetch worker cap
	FetchTimeout         time.Duration // per-item review fetch deadline
	GroomersEnabled      bool
	GroomerLocation      string
	MaxGroomers          int
}

// RecommendationService runs the recommendation pipeline: catalog search,
// concurrent review gathering, suitability scoring, ranking, and summary
// composition.
type RecommendationService struct {
	search   *SearchService
	reviews  domain.ReviewSearcher
	groomers domain.GroomerDirectory
	scorer   *Scorer
	config   RecommendationConfig
}

// NewRecommendationService creates a new recommendation service with
// dependencies. The groomer directory may be nil when groomer lookups are
// disabled.
func NewRecommendationService(
	search *SearchService,
	reviews domain.ReviewSearcher,
	groomers domain.GroomerDirectory,
	config RecommendationConfig,
) *RecommendationService {
	if config.MaxReviewsPerItem < 1 || config.MaxReviewsPerItem > 5 {
		config.MaxReviewsPerItem = 3
	}
	if config.MaxConcurrentFetches < 1 {
		config.MaxConcurrentFetches = 4
	}
	if config.FetchTimeout == 0 {
		config.FetchTimeout = 10 * time.Second
	}
	if config.MaxGroomers < 1 {
		config.MaxGroomers = 3
	}

	return &RecommendationService{
		search:   search,
		reviews:  reviews,
		groomers: groomers,
		scorer:   NewScorer(),
		config:   config,
	}
}

// Recommend produces ranked product recommendations for a breed and age.
// A catalog failure aborts the request; review failures degrade per item to
// empty snippet sets and floor scores.
func (s *RecommendationService) Recommend(
	ctx context.Context,
	query, breed, age string,
	page, limit, maxRecommendations int,
) (*domain.RecommendationResult, error) {
	breed = strings.TrimSpace(breed)
	if breed == "" {
		return nil, fmt.Errorf("%w: dog_breed is required", domain.ErrInvalidRequest)
	}
	if _, ok := ageTerms[strings.ToLower(age)]; !ok {
		return nil, fmt.Errorf("%w: age must be one of: puppy, adult", domain.ErrInvalidRequest)
	}

	searchResults, err := s.search.Search(ctx, query, page, limit)
	if err != nil {
		return nil, err
	}

	result := &domain.RecommendationResult{
		Query:           query,
		DogBreed:        breed,
		Age:             age,
		Recommendations: []domain.ScoredCandidate{},
	}

	if len(searchResults) == 0 {
		result.Summary = fmt.Sprintf("No products found for search term '%s'.", query)
		return result, nil
	}

	candidates := make([]domain.CatalogItem, 0, maxRecommendations)
	for _, r := range searchResults {
		candidates = append(candidates, r.CatalogItem)
		if len(candidates) == maxRecommendations {
			break
		}
	}

	reviewSets := s.fetchAllReviews(ctx, candidates, breed, age)

	scored := make([]domain.ScoredCandidate, 0, len(candidates))
	for i, item := range candidates {
		score, reason := s.scorer.Score(item, reviewSets[i], breed, age)
		scored = append(scored, domain.ScoredCandidate{
			ProductID:        item.ProductID,
			Title:            item.Title,
			URL:              item.URL,
			Price:            item.Price,
			ImageURL:         item.ImageURL,
			InStock:          item.InStock,
			Reviews:          snippetContents(reviewSets[i]),
			SuitabilityScore: score,
			Reason:           reason,
		})
	}

	result.Recommendations = rankCandidates(scored, maxRecommendations)
	result.Summary = composeSummary(query, breed, age, result.Recommendations)
	return result, nil
}

// fetchAllReviews gathers review snippets for every candidate concurrently,
// bounded by the configured worker cap. Results land in a slice indexed by
// candidate position so output order never depends on completion order.
// Failures and timeouts degrade that one item's reviews to empty.
func (s *RecommendationService) fetchAllReviews(ctx context.Context, candidates []domain.CatalogItem, breed, age string) [][]domain.ReviewSnippet {
	reviewSets := make([][]domain.ReviewSnippet, len(candidates))

	if !s.reviews.Configured() {
		log.Printf("[RECOMMEND] Review search not configured; scoring %d candidates with empty reviews", len(candidates))
		return reviewSets
	}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.MaxConcurrentFetches)

	for i, item := range candidates {
		g.Go(func() error {
			fetchCtx, cancel := context.WithTimeout(groupCtx, s.config.FetchTimeout)
			defer cancel()

			query := reviewQuery(item.Title, breed, age)
			snippets, err := s.reviews.Search(fetchCtx, query, s.config.MaxReviewsPerItem)
			if err != nil {
				// Degraded review fetch: one attempt, then empty.
				log.Printf("[RECOMMEND] Review fetch failed for %q: %v", item.Title, err)
				return nil
			}
			reviewSets[i] = snippets
			return nil
		})
	}

	// Workers only return nil; Wait is for completion, not errors.
	_ = g.Wait()

	return reviewSets
}

// reviewQuery builds the web-search query for one candidate.
func reviewQuery(title, breed, age string) string {
	clean := parentheticalRegex.ReplaceAllString(title, "")
	clean = punctuationRegex.ReplaceAllString(clean, " ")
	clean = multipleSpacesRegex.ReplaceAllString(clean, " ")
	return strings.TrimSpace(fmt.Sprintf("%s %s %s review", strings.TrimSpace(clean), breed, age))
}

// snippetContents extracts the raw text of each snippet for the response.
func snippetContents(snippets []domain.ReviewSnippet) []string {
	contents := make([]string, 0, len(snippets))
	for _, snippet := range snippets {
		contents = append(contents, snippet.Content)
	}
	return contents
}

// rankCandidates stable-sorts candidates by score descending, preserving
// catalog order between equals, and truncates to maxCount.
func rankCandidates(candidates []domain.ScoredCandidate, maxCount int) []domain.ScoredCandidate {
	ranked := make([]domain.ScoredCandidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].SuitabilityScore > ranked[j].SuitabilityScore
	})

	if maxCount > 0 && len(ranked) > maxCount {
		ranked = ranked[:maxCount]
	}
	return ranked
}

// composeSummary builds the deterministic response summary from the ranked
// candidates. Only the top candidate's reason is used.
func composeSummary(query, breed, age string, ranked []domain.ScoredCandidate) string {
	if len(ranked) == 0 {
		return fmt.Sprintf("No suitable products were found for '%s'.", query)
	}

	top := ranked[0]
	summary := fmt.Sprintf("Based on your search for '%s' for your %s %s, we recommend %s (suitability score %.1f/10). %s",
		query, breed, age, top.Title, top.SuitabilityScore, top.Reason)

	if extra := len(ranked) - 1; extra > 0 {
		summary += fmt.Sprintf(" We found %d other candidate product(s) that may also be suitable.", extra)
	}
	return summary
}

// RecommendGroomers looks up groomers for the breed and scores each profile.
// Directory failures degrade to a generic fallback recommendation; they never
// fail the product pipeline.
func (s *RecommendationService) RecommendGroomers(ctx context.Context, breed string) ([]domain.GroomerRecommendation, string) {
	if !s.config.GroomersEnabled || s.groomers == nil {
		return nil, ""
	}

	profiles, err := s.groomers.SearchGroomers(ctx, breed, s.config.GroomerLocation, s.config.MaxGroomers)
	if err != nil {
		log.Printf("[GROOMERS] Directory lookup failed: %v", err)
	}
	if len(profiles) == 0 {
		fallback := fallbackGroomer(breed)
		return []domain.GroomerRecommendation{fallback},
			fmt.Sprintf("We found a general grooming service that should be able to accommodate your %s.", breed)
	}

	recommendations := make([]domain.GroomerRecommendation, 0, len(profiles))
	for _, profile := range profiles {
		score, reason := scoreGroomer(profile, breed)
		recommendations = append(recommendations, domain.GroomerRecommendation{
			GroomerID:        groomerID(profile),
			Name:             profile.Name,
			URL:              profile.URL,
			Location:         profile.Location,
			Services:         profile.Services,
			SuitabilityScore: score,
			Reason:           reason,
			ImageURL:         profile.ImageURL,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].SuitabilityScore > recommendations[j].SuitabilityScore
	})
	if len(recommendations) > s.config.MaxGroomers {
		recommendations = recommendations[:s.config.MaxGroomers]
	}

	top := recommendations[0]
	summary := fmt.Sprintf("Based on our search for groomers that can handle %s dogs, we recommend %s (suitability score %.1f/10).", breed, top.Name, top.SuitabilityScore)
	if extra := len(recommendations) - 1; extra > 0 {
		summary += fmt.Sprintf(" We found %d other groomer(s) that may also be suitable.", extra)
	}
	return recommendations, summary
}

// scoreGroomer rates a groomer profile for a breed: a breed mention in the
// name or profile text counts most, then each experience indicator adds a
// point, clamped to 10.
func scoreGroomer(profile domain.GroomerProfile, breed string) (float64, string) {
	foldedBreed := strings.ToLower(strings.TrimSpace(breed))
	foldedText := strings.ToLower(profile.Name + " " + profile.About)

	score := 0.0
	if foldedBreed != "" && strings.Contains(foldedText, foldedBreed) {
		score += groomerBreedBonus
	}
	for _, indicator := range experienceIndicators {
		if strings.Contains(foldedText, indicator) {
			score += groomerIndicatorBonus
		}
	}
	if score > groomerScoreMax {
		score = groomerScoreMax
	}

	var reason string
	switch {
	case score >= 7.0:
		reason = fmt.Sprintf("Highly recommended groomer for %s dogs with specialized experience.", breed)
	case score >= 5.0:
		reason = fmt.Sprintf("Good groomer with some experience handling %s dogs.", breed)
	default:
		reason = fmt.Sprintf("General pet groomer that may be able to handle %s dogs.", breed)
	}
	return score, reason
}

// groomerID derives a stable identifier from the profile URL, falling back
// to a slug of the name.
func groomerID(profile domain.GroomerProfile) string {
	source := profile.URL
	if source == "" {
		source = profile.Name
	}
	id := strings.ToLower(source)
	id = punctuationRegex.ReplaceAllString(id, "-")
	id = multipleSpacesRegex.ReplaceAllString(id, "-")
	return strings.Trim(id, "-")
}

// fallbackGroomer is returned when the directory yields nothing usable.
func fallbackGroomer(breed string) domain.GroomerRecommendation {
	return domain.GroomerRecommendation{
		GroomerID:        "fallback-groomer",
		Name:             fmt.Sprintf("%s Grooming Service", breed),
		URL:              "https://www.petbacker.ph/s/dog-grooming/manila--metro-manila--philippines",
		Location:         "Philippines",
		Services:         []string{"Full Grooming", "Bathing", "Nail Trimming"},
		SuitabilityScore: 5.0,
		Reason:           fmt.Sprintf("General pet groomer that accepts all dog breeds including %s.", breed),
	}
}
