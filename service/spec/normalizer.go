package spec

import "strings"

// Source is everything the normalizer may read for one product: its
// attributes and the labels of its referenced BTU and energy class rows.
type Source struct {
	Attributes       Attributes
	BTULabel         string
	EnergyClassLabel string
}

// Normalizer applies a rule table. It has no state besides the table and is
// safe for concurrent use.
type Normalizer struct {
	table *Table
}

var defaultNormalizer = NewNormalizer(NewTable(DefaultRules()...))

// Default returns the normalizer over DefaultRules.
func Default() *Normalizer { return defaultNormalizer }

func NewNormalizer(t *Table) *Normalizer {
	return &Normalizer{table: t}
}

func (n *Normalizer) Table() *Table { return n.table }

// Normalize reads f from src. It never fails: unknown fields and missing
// attributes give an empty Raw, unparsable text gives Raw with that text.
// Flag fields always give a Flag.
func (n *Normalizer) Normalize(f Field, src Source) Value {
	rule, ok := n.table.Rule(f)
	if !ok {
		return Raw("")
	}
	if rule.Reference != nil {
		if label := strings.TrimSpace(rule.Reference(src)); label != "" {
			if v := rule.apply(label); !v.IsRaw() {
				return v
			}
		}
	}
	if attr, found := src.Attributes.Find(rule.Keys, rule.Contains); found {
		return rule.apply(attr.Value)
	}
	if len(rule.Mentions) > 0 {
		return Flag(n.mentioned(rule.Mentions, src.Attributes))
	}
	return Raw("")
}

// Text returns the raw value of the attribute f resolves to, if any.
func (n *Normalizer) Text(f Field, src Source) (string, bool) {
	rule, ok := n.table.Rule(f)
	if !ok {
		return "", false
	}
	attr, found := src.Attributes.Find(rule.Keys, rule.Contains)
	return attr.Value, found
}

func (n *Normalizer) mentioned(mentions []string, attrs Attributes) bool {
	hl, ok := n.table.Rule(FieldHighlights)
	if !ok {
		return false
	}
	attr, found := attrs.Find(hl.Keys, hl.Contains)
	if !found {
		return false
	}
	text := Fold(PlainText(attr.Value))
	for _, m := range mentions {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}
