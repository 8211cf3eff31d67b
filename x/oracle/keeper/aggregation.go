package keeper

import (
	"sort"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/atlas-protocol/atlas/x/oracle/types"
)

// Aggregate combines the live submissions for a pair into a single
// validated rate: the median of those observations that sit within the
// tolerance band around the overall median.
//
// The result is independent of submission order. Fails with
// ErrInsufficientFeeders when quorum is not met and with
// ErrPriceOutOfTolerance when too few submissions survive outlier
// filtering.
func (k Keeper) Aggregate(ctx sdk.Context, pair types.Pair) (types.AggregatedRate, error) {
	params := k.GetParams(ctx)

	ctx.GasMeter().ConsumeGas(5000, "oracle_aggregate_base")

	submissions := k.CurrentSubmissions(ctx, pair)
	if uint32(len(submissions)) < params.MinFeeders {
		return types.AggregatedRate{}, types.ErrInsufficientFeeders.Wrapf(
			"pair %s: %d live submissions, quorum %d", pair.String(), len(submissions), params.MinFeeders)
	}

	// Deterministic ordering regardless of store iteration quirks.
	sort.Slice(submissions, func(i, j int) bool {
		if submissions[i].Rate.Equal(submissions[j].Rate) {
			return submissions[i].Feeder < submissions[j].Feeder
		}
		return submissions[i].Rate.LT(submissions[j].Rate)
	})

	ctx.GasMeter().ConsumeGas(uint64(len(submissions))*500, "oracle_aggregate_median")

	rates := make([]sdkmath.LegacyDec, len(submissions))
	for i, sub := range submissions {
		rates[i] = sub.Rate
	}
	median := medianOfSorted(rates)

	// Drop outliers beyond the tolerance band around the median.
	retained := make([]sdkmath.LegacyDec, 0, len(rates))
	for _, rate := range rates {
		if types.WithinTolerance(rate, median, params.ToleranceBand) {
			retained = append(retained, rate)
		}
	}
	if uint32(len(retained)) < params.MinFeeders {
		return types.AggregatedRate{}, types.ErrPriceOutOfTolerance.Wrapf(
			"pair %s: %d of %d submissions within %s of median %s, quorum %d",
			pair.String(), len(retained), len(rates), params.ToleranceBand.String(), median.String(), params.MinFeeders)
	}

	return types.AggregatedRate{
		Pair:        pair,
		Rate:        medianOfSorted(retained),
		FeederCount: uint32(len(retained)),
		Height:      ctx.BlockHeight(),
	}, nil
}

// medianOfSorted returns the median of an ascending slice: the middle
// element for odd counts, the mean of the two middle elements for even
// counts.
func medianOfSorted(rates []sdkmath.LegacyDec) sdkmath.LegacyDec {
	n := len(rates)
	if n == 0 {
		return sdkmath.LegacyZeroDec()
	}
	if n%2 == 1 {
		return rates[n/2]
	}
	return rates[n/2-1].Add(rates[n/2]).QuoInt64(2)
}
