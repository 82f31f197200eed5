package spec

import (
	"math"
	"strconv"
	"strings"
)

// Kind discriminates the Value sum type.
type Kind uint8

const (
	KindRaw Kind = iota
	KindNumber
	KindTriple
	KindFlag
	KindClass
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindTriple:
		return "triple"
	case KindFlag:
		return "flag"
	case KindClass:
		return "class"
	default:
		return "raw"
	}
}

// Value is the typed result of applying an extraction rule to an attribute or
// a fixed column. Only the fields of its Kind are meaningful; a Raw value keeps
// the original input text so nothing is lost when a rule does not match.
type Value struct {
	Kind    Kind
	Number  float64
	Min     float64
	Nominal float64
	Max     float64
	Flag    bool
	Text    string
}

func Raw(s string) Value { return Value{Kind: KindRaw, Text: s} }

func Number(n float64) Value { return Value{Kind: KindNumber, Number: n} }

func Triple(lo, nominal, hi float64) Value {
	return Value{Kind: KindTriple, Min: lo, Nominal: nominal, Max: hi}
}

func Flag(b bool) Value { return Value{Kind: KindFlag, Flag: b} }

func Class(label string) Value { return Value{Kind: KindClass, Text: label} }

func (v Value) IsRaw() bool { return v.Kind == KindRaw }

// Missing reports a Raw value that had no source text at all.
func (v Value) Missing() bool {
	return v.Kind == KindRaw && strings.TrimSpace(v.Text) == ""
}

// Pick selects which reading of a capacity triple a caller wants.
type Pick uint8

const (
	PickNominal Pick = iota
	PickMax
	PickMin
)

// Float returns the numeric reading of v. Numbers ignore p.
func (v Value) Float(p Pick) (float64, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Number, true
	case KindTriple:
		switch p {
		case PickMax:
			return v.Max, true
		case PickMin:
			return v.Min, true
		}
		return v.Nominal, true
	}
	return 0, false
}

// Thousands returns the value divided by 1000, rounded half away from zero (9000 -> 9).
func (v Value) Thousands() (int, bool) {
	n, ok := v.Float(PickNominal)
	if !ok {
		return 0, false
	}
	return int(math.Round(n / 1000)), true
}

func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return FormatNumber(v.Number)
	case KindTriple:
		return FormatNumber(v.Min) + "/" + FormatNumber(v.Nominal) + "/" + FormatNumber(v.Max)
	case KindFlag:
		return strconv.FormatBool(v.Flag)
	}
	return v.Text
}

// FormatNumber renders n with '.' as decimal point and no trailing zeros.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
