package keeper

import (
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/atlas-protocol/atlas/x/oracle/types"
)

// SetCurrency stores a currency tree node
func (k Keeper) SetCurrency(ctx sdk.Context, currency types.Currency) error {
	bz, err := k.cdc.Marshal(currency)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(CurrencyKey(currency.Symbol), bz)
	return nil
}

// GetCurrency returns a currency tree node by symbol
func (k Keeper) GetCurrency(ctx sdk.Context, symbol string) (types.Currency, bool) {
	bz := k.getStore(ctx).Get(CurrencyKey(symbol))
	if bz == nil {
		return types.Currency{}, false
	}

	var currency types.Currency
	if err := k.cdc.Unmarshal(bz, &currency); err != nil {
		return types.Currency{}, false
	}
	return currency, true
}

// HasCurrency reports whether a symbol is registered
func (k Keeper) HasCurrency(ctx sdk.Context, symbol string) bool {
	return k.getStore(ctx).Has(CurrencyKey(symbol))
}

// GetAllCurrencies returns every currency tree node in symbol order
func (k Keeper) GetAllCurrencies(ctx sdk.Context) []types.Currency {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, CurrencyKeyPrefix)
	defer iterator.Close()

	var currencies []types.Currency
	for ; iterator.Valid(); iterator.Next() {
		var currency types.Currency
		if err := k.cdc.Unmarshal(iterator.Value(), &currency); err != nil {
			continue
		}
		currencies = append(currencies, currency)
	}
	return currencies
}

// AddCurrency grafts a new node onto the currency tree. A root node can
// only be added while the tree is empty; every other node must name an
// existing parent.
func (k Keeper) AddCurrency(ctx sdk.Context, currency types.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	if k.HasCurrency(ctx, currency.Symbol) {
		return types.ErrDuplicateCurrency.Wrapf("currency %s already registered", currency.Symbol)
	}

	if currency.IsRoot() {
		if len(k.GetAllCurrencies(ctx)) > 0 {
			return types.ErrCycleDetected.Wrap("tree already has a root")
		}
	} else {
		if !k.HasCurrency(ctx, currency.Parent) {
			return types.ErrUnknownCurrency.Wrapf("parent %s not registered", currency.Parent)
		}
	}

	if err := k.SetCurrency(ctx, currency); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCurrencyAdded,
			sdk.NewAttribute(types.AttributeKeySymbol, currency.Symbol),
			sdk.NewAttribute(types.AttributeKeyParent, currency.Parent),
		),
	)
	k.Logger(ctx).Info("currency added", "symbol", currency.Symbol, "parent", currency.Parent)
	return nil
}

// RemoveCurrency prunes a leaf from the currency tree. Nodes with
// children, live submissions or alarms cannot be removed.
func (k Keeper) RemoveCurrency(ctx sdk.Context, symbol string) error {
	currency, found := k.GetCurrency(ctx, symbol)
	if !found {
		return types.ErrUnknownCurrency.Wrapf("currency %s not registered", symbol)
	}

	for _, node := range k.GetAllCurrencies(ctx) {
		if node.Parent == symbol {
			return types.ErrCurrencyInUse.Wrapf("currency %s has child %s", symbol, node.Symbol)
		}
	}
	if !currency.IsRoot() && k.hasSubmissions(ctx, currency.EdgePair()) {
		return types.ErrCurrencyInUse.Wrapf("currency %s has live submissions", symbol)
	}
	if k.hasAlarmsReferencing(ctx, symbol) {
		return types.ErrCurrencyInUse.Wrapf("currency %s has registered alarms", symbol)
	}

	k.getStore(ctx).Delete(CurrencyKey(symbol))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCurrencyRemoved,
			sdk.NewAttribute(types.AttributeKeySymbol, symbol),
		),
	)
	k.Logger(ctx).Info("currency removed", "symbol", symbol)
	return nil
}

// ancestry returns the chain of symbols from a node up to the root,
// inclusive of both ends. Errors on unknown symbols or a corrupt
// parent chain.
func (k Keeper) ancestry(ctx sdk.Context, symbol string) ([]string, error) {
	var chain []string
	seen := make(map[string]struct{})

	current := symbol
	for {
		if _, ok := seen[current]; ok {
			return nil, types.ErrCycleDetected.Wrapf("parent chain of %s loops at %s", symbol, current)
		}
		seen[current] = struct{}{}

		node, found := k.GetCurrency(ctx, current)
		if !found {
			return nil, types.ErrUnknownCurrency.Wrapf("currency %s not registered", current)
		}
		chain = append(chain, current)
		if node.IsRoot() {
			return chain, nil
		}
		current = node.Parent
	}
}

// ResolvePath returns the sequence of tree edges connecting two
// currencies: up-hops from the source to the lowest common ancestor,
// then down-hops to the destination. Each hop's pair is oriented
// child/parent.
func (k Keeper) ResolvePath(ctx sdk.Context, from, to string) ([]types.PathHop, error) {
	if from == to {
		if !k.HasCurrency(ctx, from) {
			return nil, types.ErrUnknownCurrency.Wrapf("currency %s not registered", from)
		}
		return []types.PathHop{}, nil
	}

	upChain, err := k.ancestry(ctx, from)
	if err != nil {
		return nil, err
	}
	downChain, err := k.ancestry(ctx, to)
	if err != nil {
		return nil, err
	}

	// Trim the shared tail above the lowest common ancestor.
	depth := make(map[string]int, len(upChain))
	for i, symbol := range upChain {
		depth[symbol] = i
	}
	lcaUp, lcaDown := -1, -1
	for i, symbol := range downChain {
		if j, ok := depth[symbol]; ok {
			lcaUp, lcaDown = j, i
			break
		}
	}
	if lcaUp < 0 {
		// Both chains end at the root, so a common ancestor always
		// exists in a well formed tree.
		return nil, types.ErrCycleDetected.Wrapf("no common ancestor for %s and %s", from, to)
	}

	hops := make([]types.PathHop, 0, lcaUp+lcaDown)
	for i := 0; i < lcaUp; i++ {
		hops = append(hops, types.PathHop{
			Pair: types.NewPair(upChain[i], upChain[i+1]),
			Up:   true,
		})
	}
	for i := lcaDown; i > 0; i-- {
		hops = append(hops, types.PathHop{
			Pair: types.NewPair(downChain[i-1], downChain[i]),
			Up:   false,
		})
	}
	return hops, nil
}
