package keeper

import (
	"errors"
	"math/big"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/atlas-protocol/atlas/x/oracle/types"
)

// maxRateBitLen matches the LegacyDec representable range; a composed
// rate wider than this cannot be returned without truncation.
const maxRateBitLen = 315

var ten = big.NewInt(10)

// ResolveRate answers "rate between any two currencies" by composing
// validated edge rates along the tree path between them. Upward edges
// multiply, downward edges divide, so the rate of a fed pair comes
// back as its aggregated submission value. The composition runs on
// exact integer arithmetic and rounds once at the end.
//
// Any edge whose aggregation fails makes the whole cross rate
// unavailable; the error carries ErrStalePrice plus the underlying
// aggregation failure.
func (k Keeper) ResolveRate(ctx sdk.Context, from, to string) (types.AggregatedRate, error) {
	hops, err := k.ResolvePath(ctx, from, to)
	if err != nil {
		return types.AggregatedRate{}, err
	}

	ctx.GasMeter().ConsumeGas(uint64(len(hops)+1)*10000, "oracle_resolve_rate")

	// num collects upward (multiplying) edges, den downward (dividing)
	// ones. Each edge rate contributes its raw 18-decimal integer.
	num := big.NewInt(1)
	den := big.NewInt(1)
	upCount, downCount := 0, 0
	feederCount := uint32(0)

	for _, hop := range hops {
		edge, aggErr := k.Aggregate(ctx, hop.Pair)
		if aggErr != nil {
			k.metrics.RateResolutions.WithLabelValues("stale").Inc()
			return types.AggregatedRate{}, errors.Join(
				types.ErrStalePrice.Wrapf("edge %s unresolved", hop.Pair.String()), aggErr)
		}
		if feederCount == 0 || edge.FeederCount < feederCount {
			feederCount = edge.FeederCount
		}

		if hop.Up {
			num.Mul(num, edge.Rate.BigInt())
			upCount++
		} else {
			den.Mul(den, edge.Rate.BigInt())
			downCount++
		}
	}

	rate, err := composeScaled(num, den, upCount, downCount)
	if err != nil {
		k.metrics.RateResolutions.WithLabelValues("overflow").Inc()
		return types.AggregatedRate{}, err
	}
	if len(hops) == 0 {
		// Identity conversion has no edges and no feeders behind it.
		feederCount = 0
	}

	k.metrics.RateResolutions.WithLabelValues("ok").Inc()
	rateFloat, _ := rate.Float64()
	k.metrics.AggregatedRate.WithLabelValues(from + "/" + to).Set(rateFloat)

	return types.AggregatedRate{
		Pair:        types.NewPair(from, to),
		Rate:        rate,
		FeederCount: feederCount,
		Height:      ctx.BlockHeight(),
	}, nil
}

// composeScaled turns the accumulated edge products into one LegacyDec.
// Each of the upCount numerator factors and downCount denominator
// factors carries an implicit 10^18 scale; the result needs exactly one
// 10^18 scale, so the net power of ten is 18*(downCount - upCount + 1).
// Rounding is half up, applied once.
func composeScaled(num, den *big.Int, upCount, downCount int) (sdkmath.LegacyDec, error) {
	exp := 18 * (downCount - upCount + 1)
	scaled := new(big.Int).Set(num)
	if exp >= 0 {
		scaled.Mul(scaled, new(big.Int).Exp(ten, big.NewInt(int64(exp)), nil))
	} else {
		den = new(big.Int).Mul(den, new(big.Int).Exp(ten, big.NewInt(int64(-exp)), nil))
	}
	if den.Sign() == 0 {
		return sdkmath.LegacyDec{}, types.ErrInvalidRate.Wrap("zero edge rate in composition")
	}

	// Half-up: floor((2*scaled + den) / (2*den)).
	quo := new(big.Int).Mul(scaled, big.NewInt(2))
	quo.Add(quo, den)
	quo.Quo(quo, new(big.Int).Mul(den, big.NewInt(2)))

	if quo.BitLen() > maxRateBitLen {
		return sdkmath.LegacyDec{}, types.ErrRateOverflow.Wrapf("composed rate exceeds %d bits", maxRateBitLen)
	}
	return sdkmath.LegacyNewDecFromBigIntWithPrec(quo, sdkmath.LegacyPrecision), nil
}
