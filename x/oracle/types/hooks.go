package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
)

// OracleHooks defines the interface for oracle module callbacks. Collaborator
// modules (liquidation, swap) subscribe to price movement through these.
type OracleHooks interface {
	// AfterPriceSubmitted is called when a feeder submits a raw price.
	AfterPriceSubmitted(ctx context.Context, feeder string, pair Pair, rate sdkmath.LegacyDec) error

	// AfterAlarmDispatched is called once for every dispatch event of an
	// evaluation cycle, in event order.
	AfterAlarmDispatched(ctx context.Context, event DispatchEvent) error
}

// MultiOracleHooks combines multiple oracle hooks into a single hook that calls all of them.
type MultiOracleHooks []OracleHooks

// NewMultiOracleHooks creates a new MultiOracleHooks from a list of hooks.
func NewMultiOracleHooks(hooks ...OracleHooks) MultiOracleHooks {
	return hooks
}

// AfterPriceSubmitted calls AfterPriceSubmitted on all registered hooks.
func (h MultiOracleHooks) AfterPriceSubmitted(ctx context.Context, feeder string, pair Pair, rate sdkmath.LegacyDec) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterPriceSubmitted(ctx, feeder, pair, rate); err != nil {
			return err
		}
	}
	return nil
}

// AfterAlarmDispatched calls AfterAlarmDispatched on all registered hooks.
func (h MultiOracleHooks) AfterAlarmDispatched(ctx context.Context, event DispatchEvent) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterAlarmDispatched(ctx, event); err != nil {
			return err
		}
	}
	return nil
}
