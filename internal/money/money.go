// internal/money/money.go
//
// Euro money handling for the drag-and-drop counting game.
// Responsibilities:
//   - The denomination table (bills and coins, values in cents).
//   - Random target amounts in the game's range.
//   - Summing and matching a picked set of denominations against a
//     target, plus German-style amount formatting.
package money

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Kind distinguishes bills from coins.
type Kind string

const (
	Bill Kind = "bill"
	Coin Kind = "coin"
)

// Denomination is one kind of bill or coin. Value is in cents.
type Denomination struct {
	Value int
	Label string
	Kind  Kind
}

// Denominations lists every playable bill and coin, largest first.
var Denominations = []Denomination{
	{Value: 20000, Label: "200€", Kind: Bill},
	{Value: 10000, Label: "100€", Kind: Bill},
	{Value: 5000, Label: "50€", Kind: Bill},
	{Value: 2000, Label: "20€", Kind: Bill},
	{Value: 1000, Label: "10€", Kind: Bill},
	{Value: 500, Label: "5€", Kind: Bill},
	{Value: 200, Label: "2€", Kind: Coin},
	{Value: 100, Label: "1€", Kind: Coin},
	{Value: 50, Label: "50ct", Kind: Coin},
	{Value: 20, Label: "20ct", Kind: Coin},
	{Value: 10, Label: "10ct", Kind: Coin},
	{Value: 5, Label: "5ct", Kind: Coin},
	{Value: 2, Label: "2ct", Kind: Coin},
	{Value: 1, Label: "1ct", Kind: Coin},
}

// ErrUnknownLabel is returned by ParseLabels for an unknown denomination.
var ErrUnknownLabel = errors.New("unknown denomination")

// Find looks up a denomination by its label (case-insensitive).
func Find(label string) (Denomination, bool) {
	for _, d := range Denominations {
		if strings.EqualFold(d.Label, label) {
			return d, true
		}
	}
	return Denomination{}, false
}

// ParseLabels parses a whitespace-separated list of denomination
// labels, e.g. "20€ 2€ 50ct".
func ParseLabels(s string) ([]Denomination, error) {
	fields := strings.Fields(s)
	out := make([]Denomination, 0, len(fields))
	for _, f := range fields {
		d, ok := Find(f)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, f)
		}
		out = append(out, d)
	}
	return out, nil
}

// Sum totals the picked denominations in cents.
func Sum(items []Denomination) int {
	total := 0
	for _, d := range items {
		total += d.Value
	}
	return total
}

// Matches reports whether the picked denominations add up to target.
// A zero target never matches (there is nothing to count).
func Matches(target int, items []Denomination) bool {
	return target > 0 && Sum(items) == target
}

// RandomTarget picks a target amount between 1,50 € and 850,00 €.
func RandomTarget(rng *rand.Rand) int {
	return rng.Intn(84851) + 150
}

// FormatCents renders cents as a German amount string, e.g. "12,34 €".
func FormatCents(c int) string {
	return fmt.Sprintf("%d,%02d €", c/100, c%100)
}
