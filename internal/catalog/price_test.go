package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriceLabel(t *testing.T) {
	tests := []struct {
		label string
		want  Money
	}{
		{"$8.000", 8000},
		{"$ 26.000,00", 2600000},
		{"precio: 1500", 1500},
		{"$--", 0},
		{"", 0},
		{"99999999999999999999999", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePriceLabel(tt.label), "label %q", tt.label)
	}
}

func TestResolvePrice(t *testing.T) {
	sized := Product{
		Name: "Pizza Napolitana",
		Variants: []Variant{
			{Label: "Chica", Price: 7000},
			{Label: "Grande", Price: 10000},
			{Label: "Gigante", Price: 0},
		},
		BasePrice: 9999,
	}

	tests := []struct {
		name      string
		product   Product
		variant   string
		wantPrice Money
		wantOK    bool
	}{
		{"variant price wins over base", sized, "Grande", 10000, true},
		{"missing variant selection skips", sized, "", 0, false},
		{"unknown variant skips", sized, "Familiar", 0, false},
		{"unpriced variant skips", sized, "Gigante", 0, false},
		{"base price", Product{Name: "Muzza", BasePrice: 8000, PriceLabel: "$1"}, "", 8000, true},
		{"label fallback", Product{Name: "Especial", PriceLabel: "$11.500"}, "", 11500, true},
		{"zero when nothing is priced", Product{Name: "Misterio"}, "", 0, true},
		{"variant ignored for plain products", Product{Name: "Agua", BasePrice: 1500}, "Grande", 1500, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok := ResolvePrice(tt.product, tt.variant)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPrice, price)
		})
	}
}

func TestLineKey(t *testing.T) {
	assert.Equal(t, "Pizza Napolitana (Grande)", LineKey(Product{Name: "Pizza Napolitana", Brand: "Casa"}, "Grande"))
	assert.Equal(t, "Coca Cola (Coca-Cola)", LineKey(Product{Name: "Coca Cola", Brand: "Coca-Cola"}, ""))
	assert.Equal(t, "Pizza Muzzarella", LineKey(Product{Name: "Pizza Muzzarella"}, ""))
	assert.Equal(t, "Producto", LineKey(Product{}, ""))
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "pizza-muzzarella", Slug("Pizza Muzzarella"))
	assert.Equal(t, "empanadas-de-carne-docena", Slug("Empanadas de Carne (docena)"))
	assert.Equal(t, "coca-cola-1-5l", Slug("  Coca Cola 1.5L "))
}
