package money

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	d, ok := Find("50ct")
	require.True(t, ok)
	assert.Equal(t, 50, d.Value)
	assert.Equal(t, Coin, d.Kind)

	d, ok = Find("200€")
	require.True(t, ok)
	assert.Equal(t, 20000, d.Value)
	assert.Equal(t, Bill, d.Kind)

	_, ok = Find("500€")
	assert.False(t, ok)
}

func TestParseLabels(t *testing.T) {
	items, err := ParseLabels("20€ 2€ 50ct")
	require.NoError(t, err)
	assert.Equal(t, 2250, Sum(items))

	_, err = ParseLabels("20€ 3€")
	assert.ErrorIs(t, err, ErrUnknownLabel)

	items, err = ParseLabels("")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMatches(t *testing.T) {
	items, err := ParseLabels("10€ 5€ 20ct 5ct")
	require.NoError(t, err)
	assert.True(t, Matches(1525, items))
	assert.False(t, Matches(1526, items))
	assert.False(t, Matches(0, nil), "a zero target never matches")
}

func TestRandomTargetRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		c := RandomTarget(rng)
		require.GreaterOrEqual(t, c, 150)
		require.LessOrEqual(t, c, 85000)
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "12,34 €", FormatCents(1234))
	assert.Equal(t, "0,05 €", FormatCents(5))
	assert.Equal(t, "850,00 €", FormatCents(85000))
}
