package domain

// ReviewSnippet is a fragment of review text retrieved from the web for one
// catalog item. Snippets live for a single request and are never cached.
type ReviewSnippet struct {
	Content string `json:"content"`
	Source  string `json:"source,omitempty"`
	Query   string `json:"query,omitempty"`
}

// ScoredCandidate is a catalog item with its fetched reviews and the
// deterministic suitability score computed for a given breed and age.
type ScoredCandidate struct {
	ProductID        string   `json:"product_id"`
	Title            string   `json:"title"`
	URL              string   `json:"url"`
	Price            string   `json:"price"`
	ImageURL         string   `json:"image_url,omitempty"`
	InStock          bool     `json:"in_stock"`
	Reviews          []string `json:"reviews"`
	SuitabilityScore float64  `json:"suitability_score"`
	Reason           string   `json:"recommendation_reason"`
}

// RecommendationResult is the complete outcome of one recommendation request.
// Recommendations are ordered by SuitabilityScore descending; equal scores
// preserve catalog order.
type RecommendationResult struct {
	Query           string            `json:"query"`
	DogBreed        string            `json:"dog_breed"`
	Age             string            `json:"age"`
	Recommendations []ScoredCandidate `json:"recommendations"`
	Summary         string            `json:"summary"`
}

// GroomerProfile is a raw groomer listing from the external directory.
type GroomerProfile struct {
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	Location string   `json:"location"`
	About    string   `json:"about"`
	Services []string `json:"services"`
	ImageURL string   `json:"image_url,omitempty"`
}

// GroomerRecommendation is a groomer profile scored for a specific breed.
type GroomerRecommendation struct {
	GroomerID        string   `json:"groomer_id"`
	Name             string   `json:"name"`
	URL              string   `json:"url"`
	Location         string   `json:"location"`
	Services         []string `json:"services"`
	SuitabilityScore float64  `json:"suitability_score"`
	Reason           string   `json:"recommendation_reason"`
	ImageURL         string   `json:"image_url,omitempty"`
}
