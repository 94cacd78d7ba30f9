// Package order turns a cart ledger into the pre-filled WhatsApp order
// message and link.
package order

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/JeremiasReinoso/MiFelisa/internal/cart"
	"github.com/JeremiasReinoso/MiFelisa/internal/catalog"
)

// Defaults for the Mi Felisa shop.
const (
	DefaultGreeting   = "Hola Mi Felisa! Quiero pedir:"
	DefaultNumber     = "543815787398"
	DefaultTotalLabel = "Total aprox:"
	linkBase          = "https://wa.me/"
)

// Composer builds order messages and links.
type Composer struct {
	Greeting   string
	Number     string
	TotalLabel string
	Money      *Money
}

// NewComposer returns a composer with the shop defaults.
func NewComposer(money *Money) *Composer {
	if money == nil {
		money = DefaultMoney()
	}
	return &Composer{
		Greeting:   DefaultGreeting,
		Number:     DefaultNumber,
		TotalLabel: DefaultTotalLabel,
		Money:      money,
	}
}

// Message renders the greeting, one "- {key} x{qty} ({unit price})" line per
// cart line and the total line, separated by newlines.
func (c *Composer) Message(lines []cart.Line, total catalog.Money) string {
	var b strings.Builder
	b.WriteString(c.Greeting)
	b.WriteByte('\n')
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s x%d (%s)", line.Key, line.Quantity, c.Money.Format(line.UnitPrice))
	}
	fmt.Fprintf(&b, "\n%s %s", c.TotalLabel, c.Money.Format(total))
	return b.String()
}

// Link returns the chat link for the ledger. An empty ledger links to the
// bare chat with no message.
func (c *Composer) Link(ledger *cart.Ledger) string {
	base := linkBase + c.Number
	if ledger.Empty() {
		return base
	}
	msg := c.Message(ledger.Lines(), ledger.Totals().GrandTotal)
	return base + "?text=" + Escape(msg)
}

// componentUnescape restores the characters a URI component leaves
// literal but url.QueryEscape encodes.
var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// Escape percent-encodes s as a URI component: letters, digits and
// -_.!~*'() stay literal, spaces become %20.
func Escape(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}
