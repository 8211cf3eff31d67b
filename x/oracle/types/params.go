package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Params are the oracle configuration parameters. They are owned by the
// governance collaborator and read-only to the core.
type Params struct {
	// MinFeeders is the minimum feeder quorum before a pair's rate is valid
	MinFeeders uint32 `json:"min_feeders"`
	// ToleranceBand is the maximum relative deviation from the median before
	// a submission is discarded as an outlier
	ToleranceBand math.LegacyDec `json:"tolerance_band"`
	// StalenessWindow is the maximum submission age in blocks
	StalenessWindow uint64 `json:"staleness_window"`
	// MaxDispatchPerCycle bounds the dispatch list of one evaluation cycle
	MaxDispatchPerCycle uint32 `json:"max_dispatch_per_cycle"`
}

// DefaultParams returns default oracle parameters
func DefaultParams() Params {
	return Params{
		MinFeeders:          3,
		ToleranceBand:       math.LegacyMustNewDecFromStr("0.05"),
		StalenessWindow:     50,
		MaxDispatchPerCycle: 100,
	}
}

// Validate validates the parameter set
func (p Params) Validate() error {
	if p.MinFeeders == 0 {
		return fmt.Errorf("min feeders must be positive")
	}
	if p.ToleranceBand.IsNil() || p.ToleranceBand.IsNegative() || p.ToleranceBand.GTE(math.LegacyOneDec()) {
		return fmt.Errorf("tolerance band must be in [0,1)")
	}
	if p.StalenessWindow == 0 {
		return fmt.Errorf("staleness window must be positive")
	}
	if p.MaxDispatchPerCycle == 0 {
		return fmt.Errorf("max dispatch per cycle must be positive")
	}
	return nil
}
