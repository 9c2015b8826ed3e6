package domain

import "strconv"

// Numeral is a validated numeral in either notation. It is immutable after construction and
// safe for concurrent use.
type Numeral struct {
	kind       Kind
	normalized string
	value      int
	digits     [placeCount]int
}

// Parse validates raw and returns the numeral it denotes.
//
// Spaces are removed before classification. Arabic input must lie in [MinValue, MaxValue],
// otherwise ErrValueOutOfBounds is returned. Elbonian input must be exactly the concatenation
// of one canonical block per place, otherwise ErrMalformedNumber is returned. Any other
// content (mixed digits and letters, foreign characters) is ErrMalformedNumber.
//
// The empty string is accepted as the empty Elbonian numeral with value 0.
func Parse(raw string) (*Numeral, error) {
	s := Normalize(raw)

	kind, err := Classify(s)
	if err != nil {
		return nil, err
	}

	if kind == KindArabic {
		value, err := parseArabic(s)
		if err != nil {
			return nil, err
		}
		return &Numeral{kind: KindArabic, normalized: s, value: value, digits: splitDigits(value)}, nil
	}

	digits, err := parseElbonian(s)
	if err != nil {
		return nil, err
	}
	return &Numeral{kind: KindElbonian, normalized: s, value: sumDigits(digits), digits: digits}, nil
}

// FromValue returns the Arabic numeral for value. Unlike Parse, zero is rejected.
func FromValue(value int) (*Numeral, error) {
	if err := checkBounds(value); err != nil {
		return nil, err
	}
	return &Numeral{kind: KindArabic, value: value, digits: splitDigits(value)}, nil
}

// Kind returns the notation the numeral was parsed from.
func (n *Numeral) Kind() Kind {
	return n.kind
}

// ToArabic returns the numeral value.
func (n *Numeral) ToArabic() int {
	return n.value
}

// ToElbonian returns the canonical Elbonian string. Elbonian input is echoed back.
func (n *Numeral) ToElbonian() string {
	if n.kind == KindElbonian {
		return n.normalized
	}
	return encodeDigits(n.digits)
}

// Digits returns the decimal digit for each place, thousands first.
func (n *Numeral) Digits() [4]int {
	return n.digits
}

// Blocks returns the per-place decomposition, thousands first. Places holding a zero digit
// are included with an empty block.
func (n *Numeral) Blocks() []Block {
	blocks := make([]Block, 0, placeCount)
	for p := Thousands; p < placeCount; p++ {
		blocks = append(blocks, Block{
			Place:   p,
			Digit:   n.digits[p],
			Symbols: placeBlocks[p][n.digits[p]],
		})
	}
	return blocks
}

// String returns the numeral in the notation it was written in.
func (n *Numeral) String() string {
	if n.kind == KindElbonian {
		return n.ToElbonian()
	}
	return strconv.Itoa(n.value)
}
