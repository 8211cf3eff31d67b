package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/atlas-protocol/atlas/x/oracle/types"
)

// RegisterInvariants registers all oracle invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "currency-tree", CurrencyTreeInvariant(k))
	ir.RegisterRoute(types.ModuleName, "alarm-index", AlarmIndexInvariant(k))
}

// AllInvariants runs all invariants of the oracle module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := CurrencyTreeInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return AlarmIndexInvariant(k)(ctx)
	}
}

// CurrencyTreeInvariant checks that the currency store always holds a
// well formed tree: exactly one root when non-empty, every parent
// registered, no parent-chain cycles.
func CurrencyTreeInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		currencies := k.GetAllCurrencies(ctx)
		if len(currencies) == 0 {
			return sdk.FormatInvariant(types.ModuleName, "currency-tree", "tree empty"), false
		}

		roots := 0
		for _, currency := range currencies {
			if currency.IsRoot() {
				roots++
				continue
			}
			if !k.HasCurrency(ctx, currency.Parent) {
				return sdk.FormatInvariant(types.ModuleName, "currency-tree",
					fmt.Sprintf("currency %s has unregistered parent %s", currency.Symbol, currency.Parent)), true
			}
		}
		if roots != 1 {
			return sdk.FormatInvariant(types.ModuleName, "currency-tree",
				fmt.Sprintf("expected exactly one root, found %d", roots)), true
		}

		for _, currency := range currencies {
			if _, err := k.ancestry(ctx, currency.Symbol); err != nil {
				return sdk.FormatInvariant(types.ModuleName, "currency-tree",
					fmt.Sprintf("broken ancestry for %s: %s", currency.Symbol, err)), true
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "currency-tree",
			fmt.Sprintf("%d currencies, tree well formed", len(currencies))), false
	}
}

// AlarmIndexInvariant checks that the owner index and the alarm store
// stay in sync and the id counter stays ahead of every stored alarm.
func AlarmIndexInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		alarms := k.GetAllAlarms(ctx)
		next := k.GetNextAlarmID(ctx)

		for _, alarm := range alarms {
			if alarm.Id >= next {
				return sdk.FormatInvariant(types.ModuleName, "alarm-index",
					fmt.Sprintf("alarm %d not below counter %d", alarm.Id, next)), true
			}

			indexed := false
			for _, owned := range k.GetAlarmsByOwner(ctx, alarm.Owner) {
				if owned.Id == alarm.Id {
					indexed = true
					break
				}
			}
			if !indexed {
				return sdk.FormatInvariant(types.ModuleName, "alarm-index",
					fmt.Sprintf("alarm %d missing from owner index of %s", alarm.Id, alarm.Owner)), true
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "alarm-index",
			fmt.Sprintf("%d alarms indexed", len(alarms))), false
	}
}
