package categorize

import (
	"strings"
)

// Category is one of the six fixed spending categories.
type Category string

const (
	CategoryTransfer       Category = "Transfer"
	CategoryFuelGas        Category = "Fuel & Gas"
	CategoryTransportation Category = "Transportation"
	CategoryTopUp          Category = "Top Up"
	CategoryFoodDining     Category = "Food & Dining"
	CategoryOthers         Category = "Others"
)

// Metadata is the display information attached to a category.
type Metadata struct {
	Color string
	Icon  string
}

var categoryOrder = []Category{
	CategoryTransfer,
	CategoryFuelGas,
	CategoryTransportation,
	CategoryTopUp,
	CategoryFoodDining,
	CategoryOthers,
}

var categoryMetadata = map[Category]Metadata{
	CategoryTransfer:       {Color: "#FF6B6B", Icon: "💸"},
	CategoryFuelGas:        {Color: "#4ECDC4", Icon: "⛽"},
	CategoryTransportation: {Color: "#DDA0DD", Icon: "🚗"},
	CategoryTopUp:          {Color: "#FFEAA7", Icon: "⬆️"},
	CategoryFoodDining:     {Color: "#96CEB4", Icon: "🍽️"},
	CategoryOthers:         {Color: "#45B7D1", Icon: "📦"},
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory resolves a category from its exact display name.
func ParseCategory(name string) (Category, bool) {
	c := Category(name)
	_, ok := categoryMetadata[c]
	return c, ok
}

// Metadata returns the colour and icon of the category.
func (c Category) Metadata() Metadata {
	return categoryMetadata[c]
}

func (c Category) String() string {
	return string(c)
}

// rule is a single priority level of the classifier. A rule matches when the
// lower-cased description contains any of descriptionTerms or the lower-cased
// merchant contains any of merchantTerms.
type rule struct {
	category         Category
	descriptionTerms []string
	merchantTerms    []string
}

// rules are evaluated top to bottom, the first match wins.
var rules = []rule{
	{
		category:         CategoryTransfer,
		descriptionTerms: []string{"transfer", "duitnow", "receive"},
	},
	{
		category:         CategoryFuelGas,
		descriptionTerms: []string{"setel", "fuel", "petrol"},
		merchantTerms:    []string{"setel"},
	},
	{
		category:         CategoryTransportation,
		descriptionTerms: []string{"paydirect"},
		merchantTerms:    []string{"toll", "suke", "pantai", "damansara", "penchala"},
	},
	{
		category:         CategoryTopUp,
		descriptionTerms: []string{"reload", "top up"},
		merchantTerms:    []string{"reload", "card reload"},
	},
	{
		category:      CategoryFoodDining,
		merchantTerms: []string{"mcdonald", "restaurant", "food", "nasi lemak"},
	},
}

func (r rule) matches(description, merchant string) bool {
	return containsAny(description, r.descriptionTerms) || containsAny(merchant, r.merchantTerms)
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// Classify assigns a transaction to exactly one category. Matching is
// case-insensitive and falls back to CategoryOthers.
func Classify(description, merchant string) Category {
	description = strings.ToLower(description)
	merchant = strings.ToLower(merchant)

	for _, r := range rules {
		if r.matches(description, merchant) {
			return r.category
		}
	}
	return CategoryOthers
}
