package taxonomy

import "fmt"

// Category is a top-level failure domain aligned to a numeric code range.
type Category string

const (
	CategoryModel         Category = "model"         // 1xx
	CategoryTool          Category = "tool"          // 2xx
	CategorySecurity      Category = "security"      // 3xx
	CategoryResource      Category = "resource"      // 4xx
	CategoryOrchestration Category = "orchestration" // 5xx
	CategoryData          Category = "data"          // 6xx
)

var categoryRanges = map[Category]int{
	CategoryModel:         100,
	CategoryTool:          200,
	CategorySecurity:      300,
	CategoryResource:      400,
	CategoryOrchestration: 500,
	CategoryData:          600,
}

// Categories returns all categories in ascending code-range order.
func Categories() []Category {
	return []Category{
		CategoryModel,
		CategoryTool,
		CategorySecurity,
		CategoryResource,
		CategoryOrchestration,
		CategoryData,
	}
}

// Valid reports whether c is one of the six known categories.
func (c Category) Valid() bool {
	_, ok := categoryRanges[c]
	return ok
}

// RangeStart returns the first code of the category's hundred-range
// (100 for model, 200 for tool, ...). Returns 0 for an unknown category.
func (c Category) RangeStart() int {
	return categoryRanges[c]
}

// Contains reports whether code falls inside the category's assigned range.
func (c Category) Contains(code int) bool {
	start := c.RangeStart()
	return start != 0 && code >= start && code < start+100
}

// ParseCategory converts a string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}
