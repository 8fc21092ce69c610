package function

import (
	"fmt"
	"sort"
	"strings"
)

// Category groups scalars by purpose. Categories are bit flags so callers
// (the CLI, the daemon config) can select several at once.
type Category uint8

const (
	CategoryLength Category = 1 << iota
	CategoryCodec
	CategoryInteger
	CategoryDigest
	CategoryContentID

	CategoryAll = CategoryLength | CategoryCodec | CategoryInteger | CategoryDigest | CategoryContentID
)

var categoryNames = map[string]Category{
	"length":    CategoryLength,
	"codec":     CategoryCodec,
	"integer":   CategoryInteger,
	"digest":    CategoryDigest,
	"contentid": CategoryContentID,
	"all":       CategoryAll,
}

func (c Category) allows(want Category) bool { return c&want != 0 }

func (c Category) String() string {
	if c == CategoryAll {
		return "all"
	}
	var names []string
	for name, bit := range categoryNames {
		if bit != CategoryAll && c&bit != 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// ParseCategory parses a category name (case-insensitive).
func ParseCategory(s string) (Category, error) {
	c, ok := categoryNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("function: unknown category %q", s)
	}
	return c, nil
}

// ParseCategories ORs together a list of category names. An empty list
// selects CategoryAll.
func ParseCategories(names []string) (Category, error) {
	if len(names) == 0 {
		return CategoryAll, nil
	}
	var out Category
	for _, n := range names {
		c, err := ParseCategory(n)
		if err != nil {
			return 0, err
		}
		out |= c
	}
	return out, nil
}
