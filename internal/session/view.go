package session

import (
	"github.com/JeremiasReinoso/MiFelisa/internal/cart"
	"github.com/JeremiasReinoso/MiFelisa/internal/catalog"
	"github.com/JeremiasReinoso/MiFelisa/internal/order"
)

// EmptyCartText is shown in place of the line list when the cart is empty.
const EmptyCartText = "Todavía no agregaste productos."

// LineView is one rendered cart row.
type LineView struct {
	Key          string        `json:"key"`
	Quantity     int           `json:"quantity"`
	UnitPrice    catalog.Money `json:"unit_price"`
	Subtotal     catalog.Money `json:"subtotal"`
	UnitText     string        `json:"unit_text"`
	SubtotalText string        `json:"subtotal_text"`
}

// CartView is the rendered cart summary.
type CartView struct {
	Lines     []LineView    `json:"lines"`
	ItemCount int           `json:"item_count"`
	Total     catalog.Money `json:"total"`
	TotalText string        `json:"total_text"`
	Empty     bool          `json:"empty"`
	EmptyText string        `json:"empty_text,omitempty"`
}

// FilterView is the active filter.
type FilterView struct {
	Category string `json:"category"`
	Search   string `json:"search"`
}

// View is the full re-render produced after every command.
type View struct {
	SessionID string     `json:"session_id"`
	Cart      CartView   `json:"cart"`
	OrderLink string     `json:"order_link"`
	Filter    FilterView `json:"filter"`
	Visible   []string   `json:"visible"`
}

// VariantView is one selectable variant with its rendered price.
type VariantView struct {
	Label     string        `json:"label"`
	Price     catalog.Money `json:"price"`
	PriceText string        `json:"price_text"`
}

// ProductView is one catalog entry as shown to the visitor.
type ProductView struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Category  string        `json:"category"`
	Brand     string        `json:"brand,omitempty"`
	Price     catalog.Money `json:"price,omitempty"`
	PriceText string        `json:"price_text,omitempty"`
	Variants  []VariantView `json:"variants,omitempty"`
	Visible   bool          `json:"visible"`
}

// CatalogView lists every product, in catalog order, with its visibility.
type CatalogView struct {
	Categories []string      `json:"categories"`
	Filter     FilterView    `json:"filter"`
	Products   []ProductView `json:"products"`
}

func (c *Controller) render() View {
	money := c.composer.Money
	totals := c.ledger.Totals()

	cv := CartView{
		Lines:     renderLines(c.ledger.Lines(), money),
		ItemCount: totals.ItemCount,
		Total:     totals.GrandTotal,
		TotalText: money.Format(totals.GrandTotal),
		Empty:     c.ledger.Empty(),
	}
	if cv.Empty {
		cv.EmptyText = EmptyCartText
	}

	visible := []string{}
	for _, p := range c.filter.Visible(c.catalog.Products()) {
		visible = append(visible, p.ID)
	}

	return View{
		SessionID: c.id.String(),
		Cart:      cv,
		OrderLink: c.composer.Link(c.ledger),
		Filter:    FilterView{Category: c.filter.Category(), Search: c.filter.Search()},
		Visible:   visible,
	}
}

func renderLines(lines []cart.Line, money *order.Money) []LineView {
	out := make([]LineView, 0, len(lines))
	for _, l := range lines {
		out = append(out, LineView{
			Key:          l.Key,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			Subtotal:     l.Subtotal(),
			UnitText:     money.Format(l.UnitPrice),
			SubtotalText: money.Format(l.Subtotal()),
		})
	}
	return out
}

func renderCatalog(cat *catalog.Catalog, filter *catalog.Filter, money *order.Money) CatalogView {
	products := cat.Products()
	view := CatalogView{
		Categories: cat.Categories(),
		Filter:     FilterView{Category: filter.Category(), Search: filter.Search()},
		Products:   make([]ProductView, 0, len(products)),
	}
	for _, p := range products {
		pv := ProductView{
			ID:       p.ID,
			Name:     p.DisplayName(),
			Category: p.Category,
			Brand:    p.Brand,
			Visible:  filter.IsVisible(p),
		}
		if p.HasVariants() {
			for _, v := range p.Variants {
				pv.Variants = append(pv.Variants, VariantView{
					Label:     v.Label,
					Price:     v.Price,
					PriceText: money.PriceLabel(v.Price),
				})
			}
		} else {
			pv.Price, _ = catalog.ResolvePrice(p, "")
			pv.PriceText = money.PriceLabel(pv.Price)
		}
		view.Products = append(view.Products, pv)
	}
	return view
}
