// Package domain defines the Elbonian numeral grammar, its validation and conversion to and
// from Arabic notation.
package domain

const (
	// MinValue is the smallest value representable in Elbonian notation.
	MinValue = 1

	// MaxValue is the largest value representable in Elbonian notation. The thousands place
	// has no five-symbol, so digits above 3 never occur there.
	MaxValue = 3999

	// MaxElbonianLength is the length of the longest canonical numeral (MMMDCCCLXXXVIII).
	MaxElbonianLength = 15
)

// Kind identifies the notation a numeral was written in.
type Kind string

const (
	// KindArabic is a string of decimal digits.
	KindArabic Kind = "arabic"
	// KindElbonian is a string of Elbonian digit blocks.
	KindElbonian Kind = "elbonian"
)

// String returns the notation name.
func (k Kind) String() string {
	return string(k)
}
