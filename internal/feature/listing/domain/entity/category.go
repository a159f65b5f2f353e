package entity

// Category is a closed enumeration of listing categories.
// The set is fixed; no row-backed category table exists.
type Category string

const (
	CategoryBooks       Category = "books"
	CategoryElectronics Category = "electronics"
	CategoryFashion     Category = "fashion"
	CategoryHome        Category = "home"
	CategoryMusic       Category = "music"
	CategoryOther       Category = "other"
	CategorySport       Category = "sport"
	CategoryToys        Category = "toys"
)

// categoryLabels maps each category code to its human-readable label.
var categoryLabels = map[Category]string{
	CategoryBooks:       "Books",
	CategoryElectronics: "Electronics",
	CategoryFashion:     "Fashion",
	CategoryHome:        "Home",
	CategoryMusic:       "Music & Instruments",
	CategoryOther:       "Other (undefined) category",
	CategorySport:       "Sports & Recreation",
	CategoryToys:        "Toys",
}

// categoryOrder fixes the presentation order of the category list.
var categoryOrder = []Category{
	CategoryBooks,
	CategoryElectronics,
	CategoryFashion,
	CategoryHome,
	CategoryMusic,
	CategoryOther,
	CategorySport,
	CategoryToys,
}

// Label returns the human-readable label for the category.
// Unknown codes fall back to the code itself.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// Valid reports whether c is one of the known category codes.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Categories returns all category codes in presentation order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}
