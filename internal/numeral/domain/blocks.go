package domain

import (
	"fmt"
	"strings"
)

// Place is a decimal place value, ordered from most to least significant.
type Place int

const (
	Thousands Place = iota
	Hundreds
	Tens
	Ones

	placeCount = 4
)

var placeNames = [placeCount]string{
	Thousands: "thousands",
	Hundreds:  "hundreds",
	Tens:      "tens",
	Ones:      "ones",
}

var placeWeights = [placeCount]int{
	Thousands: 1000,
	Hundreds:  100,
	Tens:      10,
	Ones:      1,
}

// placeBlocks holds the canonical block for each digit, indexed by place then digit.
// Digit 0 is always the empty block. Lowercase five-symbols appear only in the
// subtractive forms for 4 and 9.
var placeBlocks = [placeCount][]string{
	Thousands: {"", "M", "MM", "MMM"},
	Hundreds:  {"", "C", "CC", "CCC", "dD", "D", "DC", "DCC", "DCCC", "DdD"},
	Tens:      {"", "X", "XX", "XXX", "lL", "L", "LX", "LXX", "LXXX", "LlL"},
	Ones:      {"", "I", "II", "III", "vV", "V", "VI", "VII", "VIII", "VvV"},
}

// String returns the place name (e.g. "hundreds").
func (p Place) String() string {
	if p < 0 || p >= placeCount {
		return fmt.Sprintf("Place(%d)", int(p))
	}
	return placeNames[p]
}

// Weight returns the place multiplier (1000, 100, 10 or 1).
func (p Place) Weight() int {
	return placeWeights[p]
}

// Block is the substring encoding one decimal digit at one place value.
type Block struct {
	Place   Place
	Digit   int
	Symbols string
}

// Value returns the block contribution to the numeral value.
func (b Block) Value() int {
	return b.Digit * b.Place.Weight()
}

// isElbonianSymbol reports whether r belongs to the Elbonian alphabet.
func isElbonianSymbol(r rune) bool {
	return strings.ContainsRune("MDCLXVIdlv", r)
}

// matchPlaces decomposes s into one block per place starting at p, trying every table
// entry and backtracking when the remainder cannot be decomposed. The empty block is
// tried last. digits is filled in place order on success.
func matchPlaces(s string, p Place, digits *[placeCount]int) bool {
	if p == placeCount {
		return s == ""
	}

	blocks := placeBlocks[p]
	for d := len(blocks) - 1; d >= 0; d-- {
		if !strings.HasPrefix(s, blocks[d]) {
			continue
		}
		digits[p] = d
		if matchPlaces(s[len(blocks[d]):], p+1, digits) {
			return true
		}
	}

	digits[p] = 0
	return false
}

// splitDigits returns the decimal digits of value in place order. value must be in
// [0, MaxValue].
func splitDigits(value int) [placeCount]int {
	var digits [placeCount]int
	for p := Ones; p >= Thousands; p-- {
		digits[p] = value % 10
		value /= 10
	}
	return digits
}

// sumDigits is the inverse of splitDigits.
func sumDigits(digits [placeCount]int) int {
	value := 0
	for p := Thousands; p < placeCount; p++ {
		value += digits[p] * placeWeights[p]
	}
	return value
}

// encodeDigits concatenates the canonical blocks for digits in thousands-to-ones order.
func encodeDigits(digits [placeCount]int) string {
	var sb strings.Builder
	sb.Grow(MaxElbonianLength)
	for p := Thousands; p < placeCount; p++ {
		sb.WriteString(placeBlocks[p][digits[p]])
	}
	return sb.String()
}
