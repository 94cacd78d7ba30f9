package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Catalog is the ordered, read-only product list.
type Catalog struct {
	products []Product
	byID     map[string]int
}

type catalogFile struct {
	Products []Product `yaml:"products"`
}

// New builds a catalog from products, deriving missing IDs from names and
// hydrating label prices. Invariant violations are logged, never fatal.
func New(products []Product, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if isBlank(p.Name) {
			logger.Warn("catalog product without name", zap.String("id", p.ID))
		}
		if p.ID == "" {
			p.ID = Slug(p.DisplayName())
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		p = hydrate(p)
		if !priced(p) {
			logger.Warn("catalog product without a usable price",
				zap.String("id", p.ID),
				zap.String("name", p.Name),
			)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// hydrate fills the structured base price from the label for variant-less
// products, so the displayed and the charged price agree.
func hydrate(p Product) Product {
	if p.HasVariants() || p.BasePrice > 0 {
		return p
	}
	if parsed := ParsePriceLabel(p.PriceLabel); parsed > 0 {
		p.BasePrice = parsed
	}
	return p
}

// Parse decodes a YAML catalog document.
func Parse(r io.Reader, logger *zap.Logger) (*Catalog, error) {
	var file catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(file.Products, logger)
}

// Load reads the catalog at path, or the embedded default when path is empty.
func Load(path string, logger *zap.Logger) (*Catalog, error) {
	if path == "" {
		return Default(logger)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f, logger)
}

// Default returns the embedded catalog.
func Default(logger *zap.Logger) (*Catalog, error) {
	return Parse(bytes.NewReader(defaultCatalog), logger)
}

// Products returns the products in catalog order.
func (c *Catalog) Products() []Product {
	return append([]Product(nil), c.products...)
}

// Product looks up a product by ID.
func (c *Catalog) Product(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// Categories returns "all" followed by the distinct product categories in
// order of first appearance.
func (c *Catalog) Categories() []string {
	seen := map[string]bool{AllCategories: true}
	cats := []string{AllCategories}
	for _, p := range c.products {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		cats = append(cats, p.Category)
	}
	return cats
}
