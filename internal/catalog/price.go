package catalog

import (
	"strconv"
	"strings"
	"unicode"
)

// ParsePriceLabel extracts a price from display text by dropping every
// non-digit character ("$8.000" -> 8000). Text without digits, or with
// more digits than fit in Money, yields 0.
func ParsePriceLabel(label string) Money {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, label)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return Money(n)
}

// ResolvePrice returns the unit price charged when the product is added
// with the given variant selection.
//
// Precedence: selected variant price, structured base price, price parsed
// from the label, zero. ok is false only when the product requires a
// variant and the selection is missing, unknown or not positively priced;
// callers must then skip the add.
func ResolvePrice(p Product, variant string) (price Money, ok bool) {
	if p.HasVariants() {
		v, found := p.Variant(variant)
		if variant == "" || !found || v.Price <= 0 {
			return 0, false
		}
		return v.Price, true
	}
	if p.BasePrice > 0 {
		return p.BasePrice, true
	}
	if parsed := ParsePriceLabel(p.PriceLabel); parsed > 0 {
		return parsed, true
	}
	return 0, true
}

// priced reports whether the product satisfies the catalog price invariant.
func priced(p Product) bool {
	if p.HasVariants() {
		for _, v := range p.Variants {
			if v.Price <= 0 {
				return false
			}
		}
		return true
	}
	return p.BasePrice > 0 || ParsePriceLabel(p.PriceLabel) > 0
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
