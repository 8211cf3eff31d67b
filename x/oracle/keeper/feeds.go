package keeper

import (
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/atlas-protocol/atlas/x/oracle/types"
)

// SetSubmission stores a raw feeder observation, overwriting any prior
// observation by the same feeder for the same pair.
func (k Keeper) SetSubmission(ctx sdk.Context, price types.FeederPrice) error {
	bz, err := k.cdc.Marshal(price)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(FeedKey(price.Pair, price.Feeder), bz)
	return nil
}

// GetSubmission returns one feeder's stored observation for a pair
func (k Keeper) GetSubmission(ctx sdk.Context, pair types.Pair, feeder string) (types.FeederPrice, bool) {
	bz := k.getStore(ctx).Get(FeedKey(pair, feeder))
	if bz == nil {
		return types.FeederPrice{}, false
	}

	var price types.FeederPrice
	if err := k.cdc.Unmarshal(bz, &price); err != nil {
		return types.FeederPrice{}, false
	}
	return price, true
}

// SubmitPrice validates and records a raw observation at the current
// block height. The pair must be a direct edge of the currency tree.
func (k Keeper) SubmitPrice(ctx sdk.Context, feeder string, pair types.Pair, rate sdkmath.LegacyDec) error {
	price := types.FeederPrice{
		Feeder: feeder,
		Pair:   pair,
		Rate:   rate,
		Height: ctx.BlockHeight(),
	}
	if err := price.Validate(); err != nil {
		return err
	}
	if err := k.requireTreeEdge(ctx, pair); err != nil {
		return err
	}

	if err := k.SetSubmission(ctx, price); err != nil {
		return err
	}

	if k.hooks != nil {
		if err := k.hooks.AfterPriceSubmitted(ctx, feeder, pair, rate); err != nil {
			return err
		}
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePriceSubmitted,
			sdk.NewAttribute(types.AttributeKeyFeeder, feeder),
			sdk.NewAttribute(types.AttributeKeyPair, pair.String()),
			sdk.NewAttribute(types.AttributeKeyRate, rate.String()),
		),
	)
	k.metrics.PriceSubmissions.WithLabelValues(pair.String()).Inc()
	return nil
}

// requireTreeEdge checks that a pair is a direct child/parent edge of
// the currency tree.
func (k Keeper) requireTreeEdge(ctx sdk.Context, pair types.Pair) error {
	base, found := k.GetCurrency(ctx, pair.Base)
	if !found {
		return types.ErrUnknownCurrency.Wrapf("currency %s not registered", pair.Base)
	}
	if base.IsRoot() || base.Parent != pair.Quote {
		return types.ErrUnknownCurrency.Wrapf("%s is not a tree edge", pair.String())
	}
	return nil
}

// CurrentSubmissions returns the non-stale observations for a pair in
// deterministic feeder order. Stale entries are skipped, not deleted;
// cleanup happens in the end blocker.
func (k Keeper) CurrentSubmissions(ctx sdk.Context, pair types.Pair) []types.FeederPrice {
	window := k.GetParams(ctx).StalenessWindow
	now := ctx.BlockHeight()

	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, FeedPairPrefix(pair))
	defer iterator.Close()

	var live []types.FeederPrice
	for ; iterator.Valid(); iterator.Next() {
		var price types.FeederPrice
		if err := k.cdc.Unmarshal(iterator.Value(), &price); err != nil {
			continue
		}
		if price.IsStale(now, window) {
			continue
		}
		live = append(live, price)
	}
	return live
}

// AllSubmissions returns every stored observation, stale or not, in key
// order. Used for genesis export and the cleanup sweep.
func (k Keeper) AllSubmissions(ctx sdk.Context) []types.FeederPrice {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, FeedKeyPrefix)
	defer iterator.Close()

	var all []types.FeederPrice
	for ; iterator.Valid(); iterator.Next() {
		var price types.FeederPrice
		if err := k.cdc.Unmarshal(iterator.Value(), &price); err != nil {
			continue
		}
		all = append(all, price)
	}
	return all
}

// CleanupStaleSubmissions deletes observations older than the staleness
// window and returns the number removed.
func (k Keeper) CleanupStaleSubmissions(ctx sdk.Context) int {
	window := k.GetParams(ctx).StalenessWindow
	now := ctx.BlockHeight()
	store := k.getStore(ctx)

	var staleKeys [][]byte
	iterator := storetypes.KVStorePrefixIterator(store, FeedKeyPrefix)
	for ; iterator.Valid(); iterator.Next() {
		var price types.FeederPrice
		if err := k.cdc.Unmarshal(iterator.Value(), &price); err != nil {
			continue
		}
		if price.IsStale(now, window) {
			key := make([]byte, len(iterator.Key()))
			copy(key, iterator.Key())
			staleKeys = append(staleKeys, key)
		}
	}
	iterator.Close()

	for _, key := range staleKeys {
		store.Delete(key)
	}
	if len(staleKeys) > 0 {
		k.metrics.StaleSubmissionCleanups.Add(float64(len(staleKeys)))
		k.Logger(ctx).Debug("pruned stale submissions", "count", len(staleKeys))
	}
	return len(staleKeys)
}

// hasSubmissions reports whether any observation is stored for a pair
func (k Keeper) hasSubmissions(ctx sdk.Context, pair types.Pair) bool {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, FeedPairPrefix(pair))
	defer iterator.Close()
	return iterator.Valid()
}
