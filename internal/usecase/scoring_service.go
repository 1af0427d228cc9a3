package usecase

import (
	"fmt"
	"strings"

	"github.com/pawpick/backend/internal/domain"
)

// Scoring policy constants. The score starts at a neutral floor representing
// limited evidence and moves only on keyword evidence found in review text.
const (
	scoreFloor         = 4.0 // no evidence either way
	breedMatchBonus    = 3.5 // literal breed name (or alias) in a review
	breedTraitBonus    = 1.5 // breed-family physiology keyword in a review
	ageMatchBonus      = 1.0 // age-stage terminology consistent with the request
	ageConflictPenalty = 1.5 // review explicitly contradicts the age category
	scoreMax           = 10.0
	scoreMin           = 0.0
)

const fallbackReason = "General product, limited breed-specific evidence."

// Scorer computes the deterministic suitability score for one candidate.
// Scoring is a pure function of (item, reviews, breed, age): identical inputs
// always produce the identical score and reason.
type Scorer struct{}

// NewScorer creates a new suitability scorer
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score evaluates how well a catalog item fits the given breed and age based
// on its review snippets. Matching is case-folded substring search only; no
// language inference. Returns the clamped score in [0,10] and a reason string
// composed from the rules that fired, highest-priority rule first.
func (s *Scorer) Score(item domain.CatalogItem, reviews []domain.ReviewSnippet, breed, age string) (float64, string) {
	text := foldReviews(reviews)
	if text == "" {
		return scoreFloor, fallbackReason
	}

	score := scoreFloor
	var clauses []string

	// Rule 1: literal breed mention
	if term := firstMatch(text, breedMatchTerms(breed)); term != "" {
		score += breedMatchBonus
		clauses = append(clauses, fmt.Sprintf("reviews specifically mention %s, indicating breed-specific compatibility", capitalize(term)))
	}

	// Rule 2: breed-family trait keywords
	if trait := firstMatch(text, lookupBreed(breed).Traits); trait != "" {
		score += breedTraitBonus
		clauses = append(clauses, fmt.Sprintf("reviews cover %s care relevant to the breed", trait))
	}

	// Rule 3: age-stage terminology. An explicit contradiction suppresses
	// the positive age bonus.
	foldedAge := strings.ToLower(strings.TrimSpace(age))
	if phrase := firstMatch(text, ageConflicts[foldedAge]); phrase != "" {
		score -= ageConflictPenalty
		clauses = append(clauses, fmt.Sprintf("some reviews advise against %s dogs", foldedAge))
	} else if term := firstMatch(text, ageTerms[foldedAge]); term != "" {
		score += ageMatchBonus
		clauses = append(clauses, fmt.Sprintf("reviews indicate suitability for %s dogs", foldedAge))
	}

	if score > scoreMax {
		score = scoreMax
	}
	if score < scoreMin {
		score = scoreMin
	}

	if len(clauses) == 0 {
		return score, fallbackReason
	}
	return score, composeReason(clauses)
}

// foldReviews concatenates all review content into one lowercase haystack.
func foldReviews(reviews []domain.ReviewSnippet) string {
	if len(reviews) == 0 {
		return ""
	}
	var b strings.Builder
	for _, review := range reviews {
		b.WriteString(strings.ToLower(review.Content))
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}

// firstMatch returns the first term from terms found in the folded text, or
// "" when none match. Terms are checked in declaration order so the result
// is deterministic.
func firstMatch(text string, terms []string) string {
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(term)) {
			return term
		}
	}
	return ""
}

// composeReason joins fired-rule clauses into a single sentence, capitalizing
// the first clause.
func composeReason(clauses []string) string {
	joined := strings.Join(clauses, "; ")
	return capitalize(joined) + "."
}

// capitalize upper-cases the first byte of an ASCII string.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
