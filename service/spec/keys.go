package spec

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold trims, collapses inner whitespace and case-folds s. Keys and flag
// values are always compared folded.
func Fold(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

// Attribute is one dynamic key/value pair of a product.
type Attribute struct {
	ID           uint
	Key          string
	Value        string
	Group        string
	DisplayOrder int
	Visible      bool
}

type Attributes []Attribute

// Visible drops hidden (staging) attributes.
func (as Attributes) Visible() Attributes {
	out := make(Attributes, 0, len(as))
	for _, a := range as {
		if a.Visible {
			out = append(out, a)
		}
	}
	return out
}

// Find returns the attribute whose key equals one of keys, or, when there is
// none, the attribute whose key contains one of contains. keys and contains
// must already be folded. Among several matches the lowest DisplayOrder wins,
// then the lowest ID.
func (as Attributes) Find(keys, contains []string) (Attribute, bool) {
	if a, ok := as.first(func(k string) bool { return equalsAny(k, keys) }); ok {
		return a, true
	}
	return as.first(func(k string) bool { return containsAny(k, contains) })
}

func (as Attributes) first(match func(folded string) bool) (Attribute, bool) {
	var best Attribute
	found := false
	for _, a := range as {
		if !match(Fold(a.Key)) {
			continue
		}
		if !found || a.DisplayOrder < best.DisplayOrder ||
			(a.DisplayOrder == best.DisplayOrder && a.ID < best.ID) {
			best = a
			found = true
		}
	}
	return best, found
}

func equalsAny(s string, list []string) bool {
	for _, k := range list {
		if s == k {
			return true
		}
	}
	return false
}

func containsAny(s string, list []string) bool {
	for _, k := range list {
		if k != "" && strings.Contains(s, k) {
			return true
		}
	}
	return false
}
