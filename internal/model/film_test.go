package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilmChangePrice(t *testing.T) {
	f := Film{Title: "Intergalactic", PurchaseCost: 1000}

	require.NoError(t, f.ChangePrice(750))
	assert.Equal(t, 750.0, f.PurchaseCost)

	assert.ErrorIs(t, f.ChangePrice(-1), ErrNegativeCost)
	assert.Equal(t, 750.0, f.PurchaseCost)

	require.NoError(t, f.ChangePrice(0))
	assert.Zero(t, f.PurchaseCost)
}

func TestAddressDisplayString(t *testing.T) {
	full := Address{Region: "Moscow Oblast", City: "Khimki", Street: "Lenina", House: "12b"}
	assert.Equal(t, "Moscow Oblast, Khimki, Lenina, 12b", full.DisplayString())

	partial := Address{City: "Khimki", House: "12b"}
	assert.Equal(t, "Khimki, 12b", partial.DisplayString())

	assert.Empty(t, Address{}.DisplayString())
}
