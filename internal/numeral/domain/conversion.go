package domain

// Conversion is the result of converting one input to both notations.
type Conversion struct {
	Input    string
	Kind     Kind
	Arabic   int
	Elbonian string
}

// NewConversion builds a Conversion for n, keeping the raw input as received.
func NewConversion(input string, n *Numeral) *Conversion {
	return &Conversion{
		Input:    input,
		Kind:     n.Kind(),
		Arabic:   n.ToArabic(),
		Elbonian: n.ToElbonian(),
	}
}

// Inspection is a Conversion together with its per-place block decomposition.
type Inspection struct {
	Conversion
	Blocks []Block
}

// NewInspection builds an Inspection for n.
func NewInspection(input string, n *Numeral) *Inspection {
	return &Inspection{
		Conversion: *NewConversion(input, n),
		Blocks:     n.Blocks(),
	}
}
