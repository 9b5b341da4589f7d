package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Sign is a single catalogue entry. The catalogue is immutable; callers
// receive copies and never mutate shared state.
type Sign struct {
	ID          int
	CategoryID  int
	Word        string
	Description string
	VideoURL    string
	Keywords    []string
}

// Category groups signs for browsing. The member count is derived, not stored.
type Category struct {
	ID    int
	Title string
	Icon  string
	Color string
}

// catalogue holds the sign data with precomputed indices.
type catalogue struct {
	signs      []Sign
	categories []Category
	signByID   map[int]*Sign
	catByID    map[int]*Category
	byCategory map[int][]Sign
}

// c is the package-level catalogue singleton, set by init() in seed.go.
var c *catalogue

// buildCatalogue constructs the catalogue and its indices, preserving the
// seed order of signs within each category.
func buildCatalogue(categories []Category, signs []Sign) *catalogue {
	ct := &catalogue{
		signs:      signs,
		categories: categories,
		signByID:   make(map[int]*Sign, len(signs)),
		catByID:    make(map[int]*Category, len(categories)),
		byCategory: make(map[int][]Sign),
	}

	for i := range ct.categories {
		ct.catByID[ct.categories[i].ID] = &ct.categories[i]
	}
	for i := range ct.signs {
		s := &ct.signs[i]
		ct.signByID[s.ID] = s
		ct.byCategory[s.CategoryID] = append(ct.byCategory[s.CategoryID], *s)
	}

	return ct
}

// Categories returns all categories in display order.
func Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Signs returns every sign in catalogue order.
func Signs() []Sign {
	out := make([]Sign, len(c.signs))
	copy(out, c.signs)
	return out
}

// GetSign returns the sign with the given id.
func GetSign(id int) (Sign, error) {
	s, ok := c.signByID[id]
	if !ok {
		return Sign{}, fmt.Errorf("unknown sign id %d", id)
	}
	return *s, nil
}

// GetCategory returns the category with the given id.
func GetCategory(id int) (Category, error) {
	cat, ok := c.catByID[id]
	if !ok {
		return Category{}, fmt.Errorf("unknown category id %d", id)
	}
	return *cat, nil
}

// ByCategory returns the signs belonging to a category, in catalogue order.
// Unknown categories yield an empty slice.
func ByCategory(categoryID int) []Sign {
	signs := c.byCategory[categoryID]
	out := make([]Sign, len(signs))
	copy(out, signs)
	return out
}

// TotalSignCount returns the number of signs in the catalogue.
func TotalSignCount() int {
	return len(c.signs)
}

// CategoryCounts returns the number of signs per category id.
func CategoryCounts() map[int]int {
	counts := make(map[int]int, len(c.byCategory))
	for id, signs := range c.byCategory {
		counts[id] = len(signs)
	}
	return counts
}

// Search returns signs whose word or keywords contain the query,
// case-insensitively, sorted by id. An empty query matches nothing.
func Search(query string) []Sign {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []Sign
	for i := range c.signs {
		s := &c.signs[i]
		if strings.Contains(strings.ToLower(s.Word), q) {
			out = append(out, *s)
			continue
		}
		for _, kw := range s.Keywords {
			if strings.Contains(strings.ToLower(kw), q) {
				out = append(out, *s)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
