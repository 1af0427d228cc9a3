package domain

// CatalogItem represents a single product scraped from the Pet Express catalog.
// Items are immutable once created by the catalog client.
//
// ImageURL may contain a literal {width} placeholder token (Shopify image
// templates); callers must substitute it before rendering.
type CatalogItem struct {
	ProductID    string `json:"product_id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	ImageURL     string `json:"image_url"`
	Price        string `json:"price"`
	ComparePrice string `json:"compare_price,omitempty"`
	OnSale       bool   `json:"on_sale"`
	InStock      bool   `json:"in_stock"`
}

// SearchResult is a catalog item annotated with its relevance to the raw
// search query. Results are ordered by RelevanceScore descending with ties
// broken by catalog order.
type SearchResult struct {
	CatalogItem
	SearchQuery    string `json:"search_query"`
	RelevanceScore int    `json:"relevance_score"`
}

// ProductDetails holds the full information extracted from a product page.
type ProductDetails struct {
	ProductID      string            `json:"product_id"`
	URL            string            `json:"url"`
	Title          string            `json:"title"`
	Description    string            `json:"description,omitempty"`
	Price          string            `json:"price"`
	ComparePrice   string            `json:"compare_price,omitempty"`
	OnSale         bool              `json:"on_sale"`
	InStock        bool              `json:"in_stock"`
	Images         []string          `json:"images"`
	Variants       []string          `json:"variants"`
	Specifications map[string]string `json:"specifications"`
}

// Category represents a top-level navigation category on the storefront.
type Category struct {
	Name          string        `json:"name"`
	URL           string        `json:"url"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory is a single entry under a navigation category.
type Subcategory struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
