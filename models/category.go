package models

// Category is the closed set of transaction/budget categories.
type Category string

const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryUtilities      Category = "Utilities"
	CategorySalary         Category = "Salary"
	CategorySavings        Category = "Savings"
	CategoryOther          Category = "Other"
)

var categories = map[Category]bool{
	CategoryFood:           true,
	CategoryTransportation: true,
	CategoryEntertainment:  true,
	CategoryUtilities:      true,
	CategorySalary:         true,
	CategorySavings:        true,
	CategoryOther:          true,
}

// ParseCategory maps a raw string onto the closed set, falling back to Other
// for unknown or empty values.
func ParseCategory(s string) Category {
	if categories[Category(s)] {
		return Category(s)
	}
	return CategoryOther
}

// Valid reports whether c is a member of the closed set.
func (c Category) Valid() bool {
	return categories[c]
}
