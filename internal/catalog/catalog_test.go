package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDefault_LoadsEmbeddedCatalog(t *testing.T) {
	c, err := Default(zap.NewNop())
	require.NoError(t, err)
	require.Greater(t, c.Len(), 0)

	muzza, ok := c.Product("pizza-muzzarella")
	require.True(t, ok)
	assert.Equal(t, Money(8000), muzza.BasePrice)

	especial, ok := c.Product("pizza-especial")
	require.True(t, ok)
	assert.Equal(t, Money(11500), especial.BasePrice, "label price is hydrated at load")
}

func TestParse_DerivesIDsAndKeepsOrder(t *testing.T) {
	doc := `
products:
  - name: Pizza Muzzarella
    category: pizzas
    price: 8000
  - name: Coca Cola
    category: bebidas
    price_label: "$3.500"
  - name: Pizza Napolitana
    category: pizzas
    variants:
      - label: Grande
        price: 10000
`
	c, err := Parse(strings.NewReader(doc), nil)
	require.NoError(t, err)

	products := c.Products()
	require.Len(t, products, 3)
	assert.Equal(t, "pizza-muzzarella", products[0].ID)
	assert.Equal(t, "coca-cola", products[1].ID)
	assert.Equal(t, Money(3500), products[1].BasePrice)
	assert.Equal(t, []string{"all", "pizzas", "bebidas"}, c.Categories())
}

func TestDefault_RejectsUnknownFields(t *testing.T) {
	embedded := defaultCatalog
	t.Cleanup(func() { defaultCatalog = embedded })
	defaultCatalog = []byte("products:\n  - name: x\n    prize: 100\n")

	_, err := Default(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog")
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("products:\n  - name: x\n    colour: red\n"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog")
}

func TestParse_RejectsDuplicateIDs(t *testing.T) {
	doc := "products:\n  - name: Agua\n  - name: agua\n"
	_, err := Parse(strings.NewReader(doc), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate product id "agua"`)
}

func TestParse_WarnsAboutUnpricedProducts(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	doc := "products:\n  - name: Misterio\n    category: otros\n"

	c, err := Parse(strings.NewReader(doc), zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, logs.FilterMessage("catalog product without a usable price").Len())
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses the embedded catalog", func(t *testing.T) {
		c, err := Load("", nil)
		require.NoError(t, err)
		assert.Greater(t, c.Len(), 0)
	})

	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("products:\n  - name: Flan\n    price: 2500\n"), 0o600))

		c, err := Load(path, nil)
		require.NoError(t, err)
		flan, ok := c.Product("flan")
		require.True(t, ok)
		assert.Equal(t, Money(2500), flan.BasePrice)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "open catalog")
	})
}

func TestCatalog_ProductsReturnsCopy(t *testing.T) {
	c, err := New([]Product{{Name: "Flan", BasePrice: 2500}}, nil)
	require.NoError(t, err)
	products := c.Products()
	products[0].Name = "changed"
	flan, _ := c.Product("flan")
	assert.Equal(t, "Flan", flan.Name)
}
