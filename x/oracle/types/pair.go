package types

import (
	"fmt"
	"strings"
)

// Pair is a directed currency pair. Base is the currency being priced, Quote
// the currency it is priced against. For a tree edge, Base is the child and
// Quote its parent.
type Pair struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}

// NewPair creates a new directed currency pair
func NewPair(base, quote string) Pair {
	return Pair{Base: base, Quote: quote}
}

// ParsePair parses a "BASE/QUOTE" string into a Pair
func ParsePair(s string) (Pair, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Pair{}, fmt.Errorf("invalid pair %q, expected BASE/QUOTE", s)
	}
	return Pair{Base: parts[0], Quote: parts[1]}, nil
}

// String returns the canonical BASE/QUOTE representation
func (p Pair) String() string {
	return p.Base + "/" + p.Quote
}

// Invert returns the pair with base and quote swapped
func (p Pair) Invert() Pair {
	return Pair{Base: p.Quote, Quote: p.Base}
}

// Validate checks both legs are well-formed currency symbols
func (p Pair) Validate() error {
	if err := ValidateSymbol(p.Base); err != nil {
		return fmt.Errorf("base: %w", err)
	}
	if err := ValidateSymbol(p.Quote); err != nil {
		return fmt.Errorf("quote: %w", err)
	}
	if p.Base == p.Quote {
		return fmt.Errorf("pair legs must differ, got %s", p.String())
	}
	return nil
}
