package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort selects the ordering applied after filtering.
type Sort string

const (
	SortName      Sort = "name"       // locale-aware name, ascending (default)
	SortPriceLow  Sort = "price-low"  // price ascending
	SortPriceHigh Sort = "price-high" // price descending
	SortRating    Sort = "rating"     // rating descending
)

// Sorts lists the selectable sort keys in cycle order.
func Sorts() []Sort {
	return []Sort{SortName, SortPriceLow, SortPriceHigh, SortRating}
}

var sortLabels = map[Sort]string{
	SortName:      "По названию",
	SortPriceLow:  "Цена: по возрастанию",
	SortPriceHigh: "Цена: по убыванию",
	SortRating:    "По рейтингу",
}

// Label returns the display label for the sort key.
func (s Sort) Label() string {
	if label, ok := sortLabels[s]; ok {
		return label
	}
	return string(s)
}

// Query describes one evaluation of the catalog pipeline.
type Query struct {
	Search   string
	Category string // CategoryAll disables category filtering
	Sort     Sort
}

// Pipeline evaluates queries against a fixed product list. It caches the last
// result so repeated evaluation with identical inputs does not re-filter.
type Pipeline struct {
	products []Product
	collator *collate.Collator

	lastQuery  Query
	lastResult []Product
	haveCached bool
}

// NewPipeline builds a pipeline over the given products. The product slice is
// copied so later mutation by the caller cannot skew cached results.
func NewPipeline(products []Product) *Pipeline {
	dup := make([]Product, len(products))
	copy(dup, products)
	return &Pipeline{
		products: dup,
		// Catalog names are Russian; collate for correct Cyrillic ordering.
		collator: collate.New(language.Russian),
	}
}

// Products returns a copy of the full, unfiltered catalog.
func (p *Pipeline) Products() []Product {
	dup := make([]Product, len(p.products))
	copy(dup, p.products)
	return dup
}

// Evaluate runs search filter, category filter and sort, in that order.
// An empty result is a valid outcome, not an error.
func (p *Pipeline) Evaluate(q Query) []Product {
	if q.Sort == "" {
		q.Sort = SortName
	}
	if q.Category == "" {
		q.Category = CategoryAll
	}

	if p.haveCached && q == p.lastQuery {
		return cloneProducts(p.lastResult)
	}

	filtered := make([]Product, 0, len(p.products))
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, prod := range p.products {
		if search != "" && !strings.Contains(strings.ToLower(prod.Name), search) {
			continue
		}
		if q.Category != CategoryAll && prod.Category != q.Category {
			continue
		}
		filtered = append(filtered, prod)
	}

	// Stable sort keeps catalog order for ties.
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch q.Sort {
		case SortPriceLow:
			return a.Price < b.Price
		case SortPriceHigh:
			return a.Price > b.Price
		case SortRating:
			return a.Rating > b.Rating
		default:
			return p.collator.CompareString(a.Name, b.Name) < 0
		}
	})

	p.lastQuery = q
	p.lastResult = filtered
	p.haveCached = true
	return cloneProducts(filtered)
}

func cloneProducts(products []Product) []Product {
	if len(products) == 0 {
		return nil
	}
	dup := make([]Product, len(products))
	copy(dup, products)
	return dup
}
