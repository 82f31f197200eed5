package spec

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// a comma inside a number is a decimal separator ("2,5")
	numberToken = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

	// "12000", "12 000", "12.000", "9,000"
	groupedInteger = regexp.MustCompile(`\d{1,3}(?:[ .,\x{00A0}]\d{3})+\b|\d+`)

	classToken = regexp.MustCompile(`(?:^|[\s:(])([A-G])(\+{0,3})(?:[\s,;/)]|$)`)

	// Cyrillic capitals that are routinely typed in place of Latin class letters
	homoglyphs = strings.NewReplacer("А", "A", "В", "B", "С", "C", "Е", "E")

	truthy = map[string]bool{"да": true, "yes": true, "true": true, "wifi_yes": true}
)

// Numbers returns every numeric token of s in order of appearance.
func Numbers(s string) []float64 {
	tokens := numberToken.FindAllString(s, -1)
	out := make([]float64, 0, len(tokens))
	for _, t := range tokens {
		f, err := strconv.ParseFloat(strings.Replace(t, ",", ".", 1), 64)
		if err != nil {
			continue
		}
		out = append(out, f)
	}
	return out
}

// ParseCapacity reads "<min>/<nominal>/<max>" with optional units around each
// part. Exactly three numbers give a triple, exactly one number fills all
// three readings, anything else stays Raw.
func ParseCapacity(raw string) Value {
	nums := Numbers(raw)
	switch len(nums) {
	case 3:
		return Triple(nums[0], nums[1], nums[2])
	case 1:
		return Triple(nums[0], nums[0], nums[0])
	}
	return Raw(raw)
}

// ParseBTU reads the first integer of raw, tolerating thousands separators.
// Values below 100 are taken as thousands ("9K", "12k BTU").
func ParseBTU(raw string) Value {
	tok := groupedInteger.FindString(raw)
	if tok == "" {
		return Raw(raw)
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, tok)
	n, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return Raw(raw)
	}
	if n > 0 && n < 100 {
		n *= 1000
	}
	return Number(n)
}

// ParseFlag is true only for the affirmative spellings used by the admin forms.
func ParseFlag(raw string) Value {
	return Flag(truthy[Fold(raw)])
}

// ParseClass extracts an energy class label such as "A++" or "B".
func ParseClass(raw string) Value {
	m := classToken.FindStringSubmatch(homoglyphs.Replace(strings.ToUpper(raw)))
	if m == nil {
		return Raw(raw)
	}
	return Class(m[1] + m[2])
}
