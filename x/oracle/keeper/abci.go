package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// cleanupInterval is the block spacing of the stale submission sweep.
// Staleness filtering is lazy, so the sweep only bounds state growth.
const cleanupInterval = 25

// EndBlocker is called at the end of every block. It runs one alarm
// evaluation cycle over current rates and periodically prunes stale
// submissions.
func (k Keeper) EndBlocker(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	dispatched := k.EvaluateAlarms(sdkCtx)
	if dispatched > 0 {
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				"oracle_end_block",
				sdk.NewAttribute("height", fmt.Sprintf("%d", sdkCtx.BlockHeight())),
				sdk.NewAttribute("alarms_dispatched", fmt.Sprintf("%d", dispatched)),
			),
		)
	}

	if sdkCtx.BlockHeight()%cleanupInterval == 0 {
		k.CleanupStaleSubmissions(sdkCtx)
	}
	return nil
}
