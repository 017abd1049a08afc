package entity

import "strings"

// Category is the closed set of lodging kinds.
type Category string

const (
	CategoryHotel           Category = "HOTEL"
	CategoryHostel          Category = "HOSTEL"
	CategoryDepartment      Category = "DEPARTMENT"
	CategoryBedAndBreakfast Category = "BED_AND_BREAKFAST"
)

// Categories lists every valid category in declaration order.
func Categories() []Category {
	return []Category{CategoryHotel, CategoryHostel, CategoryDepartment, CategoryBedAndBreakfast}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is one of the declared values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryHotel, CategoryHostel, CategoryDepartment, CategoryBedAndBreakfast:
		return true
	default:
		return false
	}
}

// ParseCategory converts user input into a Category, ignoring case and
// accepting '-' or ' ' in place of '_'.
func ParseCategory(s string) (Category, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	c := Category(normalized)

	return c, c.IsValid()
}
