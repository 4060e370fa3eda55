// Package catalog holds the static product catalog and the pure query
// pipeline (search, category filter, sort) that feeds the storefront views.
package catalog

// Product is a single purchasable item. Products are immutable: the catalog
// is built once at startup and never mutated afterwards.
type Product struct {
	ID       int
	Name     string
	Category string
	Price    float64
	Rating   float64
	Image    string
}

// CategoryAll is the sentinel category that disables category filtering.
const CategoryAll = "all"

// Categories lists the selectable category tags, CategoryAll first.
func Categories() []string {
	return []string{CategoryAll, "electronics", "clothing", "footwear", "accessories", "home"}
}

var categoryLabels = map[string]string{
	"electronics": "Электроника",
	"clothing":    "Одежда",
	"footwear":    "Обувь",
	"accessories": "Аксессуары",
	"home":        "Дом",
	CategoryAll:   "Все",
}

// CategoryLabel returns the display label for a category tag, falling back to
// the raw tag when unknown.
func CategoryLabel(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return category
}

// Default returns the built-in demo catalog.
func Default() []Product {
	return []Product{
		{
			ID:       1,
			Name:     "Минималистичные наушники",
			Price:    299,
			Category: "electronics",
			Rating:   4.8,
			Image:    "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=400",
		},
		{
			ID:       2,
			Name:     "Элегантная рубашка",
			Price:    79,
			Category: "clothing",
			Rating:   4.5,
			Image:    "https://images.pexels.com/photos/996329/pexels-photo-996329.jpeg?auto=compress&cs=tinysrgb&w=400",
		},
		{
			ID:       3,
			Name:     "Современные кроссовки",
			Price:    149,
			Category: "footwear",
			Rating:   4.7,
			Image:    "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg?auto=compress&cs=tinysrgb&w=400",
		},
		{
			ID:       4,
			Name:     "Умные часы",
			Price:    399,
			Category: "electronics",
			Rating:   4.9,
			Image:    "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg?auto=compress&cs=tinysrgb&w=400",
		},
		{
			ID:       5,
			Name:     "Стильная сумка",
			Price:    199,
			Category: "accessories",
			Rating:   4.6,
			Image:    "https://images.pexels.com/photos/1152077/pexels-photo-1152077.jpeg?auto=compress&cs=tinysrgb&w=400",
		},
		{
			ID:       6,
			Name:     "Ароматная свеча",
			Price:    29,
			Category: "home",
			Rating:   4.4,
			Image:    "https://images.pexels.com/photos/6510616/pexels-photo-6510616.jpeg?auto=compress&cs=tinysrgb&w=400",
		},
	}
}
