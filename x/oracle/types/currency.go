package types

import (
	"fmt"
	"strings"
)

// MaxPrecision bounds a currency's decimal precision to what the fixed-point
// rate representation can carry.
const MaxPrecision = 18

// Currency is a node of the currency tree. The tree is an arena of nodes
// addressed by symbol; Parent holds the parent's symbol rather than a direct
// reference, empty only for the single root.
type Currency struct {
	Symbol    string `json:"symbol"`
	Precision uint32 `json:"precision"`
	Parent    string `json:"parent,omitempty"`
}

// NewCurrency creates a new currency node
func NewCurrency(symbol string, precision uint32, parent string) Currency {
	return Currency{
		Symbol:    symbol,
		Precision: precision,
		Parent:    parent,
	}
}

// IsRoot reports whether the node is the tree root
func (c Currency) IsRoot() bool {
	return c.Parent == ""
}

// EdgePair returns the node's parent edge as a directed pair (child/parent).
// Meaningless for the root.
func (c Currency) EdgePair() Pair {
	return NewPair(c.Symbol, c.Parent)
}

// Validate checks the node is well-formed
func (c Currency) Validate() error {
	if err := ValidateSymbol(c.Symbol); err != nil {
		return err
	}
	if c.Parent != "" {
		if err := ValidateSymbol(c.Parent); err != nil {
			return fmt.Errorf("parent: %w", err)
		}
		if c.Parent == c.Symbol {
			return fmt.Errorf("currency %s cannot be its own parent", c.Symbol)
		}
	}
	if c.Precision > MaxPrecision {
		return fmt.Errorf("precision %d exceeds maximum %d", c.Precision, MaxPrecision)
	}
	return nil
}

// ValidateSymbol checks a currency identifier. Symbols appear inside store
// keys and pair strings, so separators are rejected.
func ValidateSymbol(symbol string) error {
	if symbol == "" {
		return fmt.Errorf("currency symbol cannot be empty")
	}
	if strings.ContainsAny(symbol, "/\x00") {
		return fmt.Errorf("currency symbol %q contains reserved characters", symbol)
	}
	return nil
}

// PathHop is one edge of a resolved conversion path. Pair is always the tree
// edge (child/parent); Up marks hops from the source toward the common
// ancestor, where composition multiplies by the edge rate instead of dividing.
type PathHop struct {
	Pair Pair `json:"pair"`
	Up   bool `json:"up"`
}
