// Package catalog holds the read-only product catalog and the filter state
// that decides which products are shown.
package catalog

import (
	"strings"
	"unicode"
)

// Money is an amount in whole currency units.
type Money int64

// DefaultProductName is used for products whose name is missing.
const DefaultProductName = "Producto"

// Variant is a selectable sub-option of a product (e.g. a size) that
// carries its own price.
type Variant struct {
	Label string `yaml:"label" json:"label"`
	Price Money  `yaml:"price" json:"price"`
}

// Product is one catalog entry.
type Product struct {
	ID         string    `yaml:"id" json:"id"`
	Name       string    `yaml:"name" json:"name"`
	Category   string    `yaml:"category" json:"category"`
	Brand      string    `yaml:"brand,omitempty" json:"brand,omitempty"`
	BasePrice  Money     `yaml:"price,omitempty" json:"price,omitempty"`
	PriceLabel string    `yaml:"price_label,omitempty" json:"price_label,omitempty"`
	Variants   []Variant `yaml:"variants,omitempty" json:"variants,omitempty"`
}

// HasVariants reports whether a variant must be selected to add the product.
func (p Product) HasVariants() bool {
	return len(p.Variants) > 0
}

// Variant looks up a variant by label.
func (p Product) Variant(label string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.Label == label {
			return v, true
		}
	}
	return Variant{}, false
}

// DisplayName returns the product name, or DefaultProductName when empty.
func (p Product) DisplayName() string {
	if p.Name == "" {
		return DefaultProductName
	}
	return p.Name
}

// LineKey derives the cart key for a product and an optional variant.
// A variant wins over the brand; with neither the bare name is used.
func LineKey(p Product, variant string) string {
	name := p.DisplayName()
	switch {
	case variant != "":
		return name + " (" + variant + ")"
	case p.Brand != "":
		return name + " (" + p.Brand + ")"
	default:
		return name
	}
}

// Slug derives a product ID from its name.
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
