package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_FormatGroupsThousands(t *testing.T) {
	m := DefaultMoney()
	assert.Equal(t, "$26.000", m.Format(26000))
	assert.Equal(t, "$1.234.567", m.Format(1234567))
	assert.Equal(t, "$0", m.Format(0))
	assert.Equal(t, "$500", m.Format(500))
}

func TestMoney_LocaleControlsSeparator(t *testing.T) {
	m, err := NewMoney("en-US", "US$")
	require.NoError(t, err)
	assert.Equal(t, "US$26,000", m.Format(26000))
}

func TestMoney_RejectsBadLocale(t *testing.T) {
	_, err := NewMoney("not a locale!", "$")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse locale")
}

func TestMoney_PriceLabel(t *testing.T) {
	m := DefaultMoney()
	assert.Equal(t, "$--", m.PriceLabel(0))
	assert.Equal(t, "$--", m.PriceLabel(-5))
	assert.Equal(t, "$10.000", m.PriceLabel(10000))
}
