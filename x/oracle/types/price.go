package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// FeederPrice is one feeder's most recent raw submission for a pair.
// Submission time is block height; wall-clock time never enters the core.
type FeederPrice struct {
	Feeder string         `json:"feeder"`
	Pair   Pair           `json:"pair"`
	Rate   math.LegacyDec `json:"rate"`
	Height int64          `json:"height"`
}

// NewFeederPrice creates a new raw price submission
func NewFeederPrice(feeder string, pair Pair, rate math.LegacyDec, height int64) FeederPrice {
	return FeederPrice{
		Feeder: feeder,
		Pair:   pair,
		Rate:   rate,
		Height: height,
	}
}

// Validate validates the raw submission
func (f FeederPrice) Validate() error {
	if f.Feeder == "" {
		return fmt.Errorf("feeder address cannot be empty")
	}
	if err := f.Pair.Validate(); err != nil {
		return err
	}
	if f.Rate.IsNil() || !f.Rate.IsPositive() {
		return ErrInvalidRate.Wrap("rate must be positive")
	}
	if f.Height < 0 {
		return fmt.Errorf("height cannot be negative")
	}
	return nil
}

// IsStale reports whether the submission falls outside the staleness window
// at the given height
func (f FeederPrice) IsStale(now int64, stalenessWindow uint64) bool {
	return now-f.Height > int64(stalenessWindow)
}

// AggregatedRate is the validated rate for one pair, derived on demand from
// the current submission set and never persisted.
type AggregatedRate struct {
	Pair        Pair           `json:"pair"`
	Rate        math.LegacyDec `json:"rate"`
	FeederCount uint32         `json:"feeder_count"`
	Height      int64          `json:"height"`
}

// Validate validates the aggregated rate
func (a AggregatedRate) Validate() error {
	if err := a.Pair.Validate(); err != nil {
		return err
	}
	if a.Rate.IsNil() || !a.Rate.IsPositive() {
		return fmt.Errorf("aggregated rate must be positive")
	}
	if a.FeederCount == 0 {
		return fmt.Errorf("aggregated rate must have at least one contributing feeder")
	}
	return nil
}

// RelativeDeviation returns |rate - median| / median
func RelativeDeviation(rate, median math.LegacyDec) math.LegacyDec {
	if median.IsZero() {
		return math.LegacyZeroDec()
	}
	return rate.Sub(median).Abs().Quo(median)
}

// WithinTolerance reports whether rate deviates from median by at most the
// tolerance band
func WithinTolerance(rate, median, tolerance math.LegacyDec) bool {
	return RelativeDeviation(rate, median).LTE(tolerance)
}
