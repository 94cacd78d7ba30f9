package order

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/JeremiasReinoso/MiFelisa/internal/catalog"
)

// Default money formatting settings.
const (
	DefaultLocale         = "es-AR"
	DefaultCurrencySymbol = "$"
)

// Money formats whole currency amounts with a symbol prefix and the
// locale's thousands separator ("$26.000" for es-AR).
type Money struct {
	symbol  string
	printer *message.Printer
}

// NewMoney builds a formatter for a BCP 47 locale.
func NewMoney(locale, symbol string) (*Money, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Money{symbol: symbol, printer: message.NewPrinter(tag)}, nil
}

// DefaultMoney returns the es-AR peso formatter.
func DefaultMoney() *Money {
	return &Money{
		symbol:  DefaultCurrencySymbol,
		printer: message.NewPrinter(language.MustParse(DefaultLocale)),
	}
}

// Format renders an amount, e.g. "$26.000".
func (m *Money) Format(amount catalog.Money) string {
	return m.symbol + m.printer.Sprintf("%v", number.Decimal(int64(amount)))
}

// PriceLabel renders a selectable price, using "$--" for amounts that are
// not positive.
func (m *Money) PriceLabel(amount catalog.Money) string {
	if amount <= 0 {
		return m.symbol + "--"
	}
	return m.Format(amount)
}
