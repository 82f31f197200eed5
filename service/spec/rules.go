package spec

import "sort"

// Field names a semantic attribute the catalog knows how to read.
type Field string

const (
	FieldBTU             Field = "btu"
	FieldCoolingCapacity Field = "cooling_capacity"
	FieldHeatingCapacity Field = "heating_capacity"
	FieldPower           Field = "power"
	FieldEnergyClass     Field = "energy_class"
	FieldWiFi            Field = "wifi"
	FieldHighlights      Field = "highlights"
)

// Rule declares where a field is read from and how its text is typed.
type Rule struct {
	Field Field
	// Keys are matched exactly after folding.
	Keys []string
	// Contains are key substrings, consulted only when no exact key exists.
	Contains []string
	// Reference returns the fixed-column label that takes precedence over
	// attributes when it parses. Nil for attribute-only fields.
	Reference func(Source) string
	Extract   func(raw string) Value
	// Mentions are searched in the highlights text when the product has no
	// attribute for this field. Only meaningful for flag rules.
	Mentions []string
}

func (r Rule) apply(raw string) Value {
	if r.Extract == nil {
		return Raw(raw)
	}
	return r.Extract(raw)
}

// Table is an immutable set of rules keyed by field.
type Table struct {
	rules map[Field]Rule
}

// NewTable folds every key of rules. A later rule for the same field replaces
// an earlier one.
func NewTable(rules ...Rule) *Table {
	t := &Table{rules: make(map[Field]Rule, len(rules))}
	for _, r := range rules {
		r.Keys = foldAll(r.Keys)
		r.Contains = foldAll(r.Contains)
		r.Mentions = foldAll(r.Mentions)
		t.rules[r.Field] = r
	}
	return t
}

func (t *Table) Rule(f Field) (Rule, bool) {
	r, ok := t.rules[f]
	return r, ok
}

// Parse types raw with the rule for f, without any key lookup.
func (t *Table) Parse(f Field, raw string) (Value, bool) {
	r, ok := t.rules[f]
	if !ok {
		return Value{}, false
	}
	return r.apply(raw), true
}

// Fields lists the fields of t in name order.
func (t *Table) Fields() []Field {
	out := make([]Field, 0, len(t.rules))
	for f := range t.rules {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func foldAll(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = Fold(s)
	}
	return out
}

// DefaultRules is the rule set for the attribute keys used by the admin panel
// (Bulgarian labels) plus their English equivalents from supplier imports.
func DefaultRules() []Rule {
	return []Rule{
		{
			Field:     FieldBTU,
			Keys:      []string{"BTU", "Капацитет BTU", "BTU капацитет"},
			Contains:  []string{"btu"},
			Reference: func(s Source) string { return s.BTULabel },
			Extract:   ParseBTU,
		},
		{
			Field:    FieldCoolingCapacity,
			Keys:     []string{"Мощност на охлаждане", "Охлаждаща мощност", "Cooling capacity"},
			Contains: []string{"мощност на охлаждане", "охлаждаща мощност", "cooling capacity"},
			Extract:  ParseCapacity,
		},
		{
			Field:    FieldHeatingCapacity,
			Keys:     []string{"Мощност на отопление", "Отоплителна мощност", "Heating capacity"},
			Contains: []string{"мощност на отопление", "отоплителна мощност", "heating capacity"},
			Extract:  ParseCapacity,
		},
		{
			Field:    FieldPower,
			Keys:     []string{"Мощност", "Power", "Мощност (kW)"},
			Contains: []string{"номинална мощност", "rated power"},
			Extract:  ParseCapacity,
		},
		{
			Field:     FieldEnergyClass,
			Keys:      []string{"Енергиен клас", "Energy class"},
			Contains:  []string{"енергиен клас", "energy class"},
			Reference: func(s Source) string { return s.EnergyClassLabel },
			Extract:   ParseClass,
		},
		{
			Field:    FieldWiFi,
			Keys:     []string{"Wi-Fi модул в комплекта", "Wi-Fi модул", "WiFi", "Wi-Fi"},
			Extract:  ParseFlag,
			Mentions: []string{"wi-fi", "wifi"},
		},
		{
			Field: FieldHighlights,
			Keys:  []string{"Акценти", "Highlights"},
			Extract: func(raw string) Value {
				return Raw(PlainText(raw))
			},
		},
	}
}
