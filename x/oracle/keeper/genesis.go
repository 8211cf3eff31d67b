package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/atlas-protocol/atlas/x/oracle/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(fmt.Sprintf("invalid oracle genesis: %s", err))
	}
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(fmt.Sprintf("failed to set params: %s", err))
	}

	for _, currency := range genState.Currencies {
		if err := k.SetCurrency(ctx, currency); err != nil {
			panic(fmt.Sprintf("failed to set currency %s: %s", currency.Symbol, err))
		}
	}
	for _, price := range genState.FeederPrices {
		if err := k.SetSubmission(ctx, price); err != nil {
			k.Logger(ctx).Error("failed to set submission during genesis",
				"pair", price.Pair.String(), "feeder", price.Feeder, "error", err)
		}
	}
	for _, alarm := range genState.Alarms {
		if err := k.SetAlarm(ctx, alarm); err != nil {
			panic(fmt.Sprintf("failed to set alarm %d: %s", alarm.Id, err))
		}
	}
	k.SetNextAlarmID(ctx, genState.NextAlarmId)

	k.Logger(ctx).Info("oracle genesis initialized",
		"currencies", len(genState.Currencies),
		"submissions", len(genState.FeederPrices),
		"alarms", len(genState.Alarms))
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return &types.GenesisState{
		Params:       k.GetParams(ctx),
		Currencies:   k.GetAllCurrencies(ctx),
		FeederPrices: k.AllSubmissions(ctx),
		Alarms:       k.GetAllAlarms(ctx),
		NextAlarmId:  k.GetNextAlarmID(ctx),
	}
}
