package petexpress

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pawpick/backend/internal/domain"
)

// parseProductCards extracts product listings from a search or collection
// page. Cards missing a product link are skipped rather than failing the
// whole page.
func parseProductCards(r io.Reader, baseURL string) ([]domain.CatalogItem, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var items []domain.CatalogItem
	doc.Find("div.product-item").Each(func(_ int, card *goquery.Selection) {
		href, ok := card.Find("a.product-item__image-wrapper").Attr("href")
		if !ok || href == "" {
			return
		}
		productURL := joinURL(baseURL, href)
		productID := extractProductID(productURL)
		if productID == "" {
			return
		}

		title := strings.TrimSpace(card.Find("a.product-item__title").Text())
		if title == "" {
			title = "Unknown Title"
		}

		imageURL := normalizeImageURL(card.Find("img.product-item__primary-image").AttrOr("data-src", ""))

		price := strings.TrimSpace(card.Find("span.price").First().Text())
		if price == "" {
			price = "Price not available"
		}

		comparePrice := strings.TrimSpace(card.Find("span.price--compare").First().Text())
		soldOut := card.Find("span.product-item__label--sold-out").Length() > 0

		items = append(items, domain.CatalogItem{
			ProductID:    productID,
			Title:        title,
			URL:          productURL,
			ImageURL:     imageURL,
			Price:        price,
			ComparePrice: comparePrice,
			OnSale:       comparePrice != "",
			InStock:      !soldOut,
		})
	})

	return items, nil
}

// parseProductDetails extracts the full product record from a product page.
func parseProductDetails(r io.Reader) (*domain.ProductDetails, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	details := &domain.ProductDetails{
		Images:         []string{},
		Variants:       []string{},
		Specifications: map[string]string{},
	}

	details.Title = strings.TrimSpace(doc.Find("h1.product-meta__title").Text())
	if details.Title == "" {
		details.Title = "Unknown Title"
	}

	details.Description = strings.TrimSpace(doc.Find("div.product-meta__description-content").Text())

	details.Price = strings.TrimSpace(doc.Find("span.product-meta__price").First().Text())
	if details.Price == "" {
		details.Price = "Price not available"
	}

	comparePrice := strings.TrimSpace(doc.Find("span.product-meta__price--compare").First().Text())
	details.ComparePrice = comparePrice
	details.OnSale = comparePrice != ""

	details.InStock = doc.Find("span.product-form__inventory--sold-out").Length() == 0

	doc.Find("div.product-gallery__carousel-item img").Each(func(_ int, img *goquery.Selection) {
		src := img.AttrOr("data-zoom", img.AttrOr("src", ""))
		if src != "" {
			details.Images = append(details.Images, normalizeImageURL(src))
		}
	})

	doc.Find("div.block-swatch div.block-swatch__item-text").Each(func(_ int, v *goquery.Selection) {
		name := strings.TrimSpace(v.Text())
		if name != "" {
			details.Variants = append(details.Variants, name)
		}
	})

	doc.Find("div.product-meta__table table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() == 2 {
			key := strings.TrimSpace(cells.Eq(0).Text())
			value := strings.TrimSpace(cells.Eq(1).Text())
			if key != "" {
				details.Specifications[key] = value
			}
		}
	})

	return details, nil
}

// parseCategories extracts the navigation category tree from the home page.
func parseCategories(r io.Reader, baseURL string) ([]domain.Category, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var categories []domain.Category
	doc.Find("nav.header__navigation ul.nav-bar li.nav-bar__item--has-dropdown").Each(func(_ int, nav *goquery.Selection) {
		link := nav.Find("a.nav-bar__link").First()
		name := strings.TrimSpace(link.Text())
		if name == "" {
			return
		}

		category := domain.Category{
			Name:          name,
			URL:           joinURL(baseURL, link.AttrOr("href", "")),
			Subcategories: []domain.Subcategory{},
		}

		nav.Find("ul.nav-dropdown li.nav-dropdown__item a").Each(func(_ int, sub *goquery.Selection) {
			subName := strings.TrimSpace(sub.Text())
			if subName == "" {
				return
			}
			category.Subcategories = append(category.Subcategories, domain.Subcategory{
				Name: subName,
				URL:  joinURL(baseURL, sub.AttrOr("href", "")),
			})
		})

		categories = append(categories, category)
	})

	return categories, nil
}

// extractProductID derives the catalog id from the product URL. Shopify
// product URLs end in products/{handle}.
func extractProductID(productURL string) string {
	idx := strings.Index(productURL, "products/")
	if idx < 0 {
		return ""
	}
	id := productURL[idx+len("products/"):]
	if q := strings.IndexAny(id, "?#"); q >= 0 {
		id = id[:q]
	}
	return id
}

// normalizeImageURL makes protocol-relative Shopify CDN URLs absolute. The
// {width} placeholder in image templates is preserved as-is.
func normalizeImageURL(src string) string {
	if strings.HasPrefix(src, "//") {
		return "https:" + src
	}
	return src
}

// joinURL resolves a possibly-relative href against the storefront base URL.
func joinURL(baseURL, href string) string {
	if href == "" {
		return baseURL
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return baseURL + href
}
