package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/atlas-protocol/atlas/x/oracle/types"
)

// GetNextAlarmID returns the id the next registered alarm will receive
func (k Keeper) GetNextAlarmID(ctx sdk.Context) uint64 {
	bz := k.getStore(ctx).Get(AlarmCountKey)
	if bz == nil {
		return 1
	}
	return sdk.BigEndianToUint64(bz)
}

// SetNextAlarmID sets the alarm id counter
func (k Keeper) SetNextAlarmID(ctx sdk.Context, id uint64) {
	k.getStore(ctx).Set(AlarmCountKey, sdk.Uint64ToBigEndian(id))
}

// SetAlarm stores an alarm and maintains the owner index
func (k Keeper) SetAlarm(ctx sdk.Context, alarm types.Alarm) error {
	bz, err := k.cdc.Marshal(alarm)
	if err != nil {
		return err
	}
	store := k.getStore(ctx)
	store.Set(AlarmKey(alarm.Id), bz)
	store.Set(AlarmByOwnerKey(alarm.Owner, alarm.Id), []byte{})
	return nil
}

// GetAlarm returns an alarm by id
func (k Keeper) GetAlarm(ctx sdk.Context, alarmID uint64) (types.Alarm, bool) {
	bz := k.getStore(ctx).Get(AlarmKey(alarmID))
	if bz == nil {
		return types.Alarm{}, false
	}

	var alarm types.Alarm
	if err := k.cdc.Unmarshal(bz, &alarm); err != nil {
		return types.Alarm{}, false
	}
	return alarm, true
}

// GetAllAlarms returns every stored alarm in ascending id order
func (k Keeper) GetAllAlarms(ctx sdk.Context) []types.Alarm {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, AlarmKeyPrefix)
	defer iterator.Close()

	var alarms []types.Alarm
	for ; iterator.Valid(); iterator.Next() {
		var alarm types.Alarm
		if err := k.cdc.Unmarshal(iterator.Value(), &alarm); err != nil {
			continue
		}
		alarms = append(alarms, alarm)
	}
	return alarms
}

// GetAlarmsByOwner returns one owner's alarms in ascending id order
func (k Keeper) GetAlarmsByOwner(ctx sdk.Context, owner string) []types.Alarm {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, AlarmByOwnerPrefix(owner))
	defer iterator.Close()

	var alarms []types.Alarm
	for ; iterator.Valid(); iterator.Next() {
		id := AlarmIDFromOwnerKey(iterator.Key())
		if alarm, found := k.GetAlarm(ctx, id); found {
			alarms = append(alarms, alarm)
		}
	}
	return alarms
}

// RegisterAlarm creates a threshold subscription and returns its id.
// Both pair endpoints must be registered currencies; the thresholds
// themselves are validated by types.Alarm.
func (k Keeper) RegisterAlarm(ctx sdk.Context, owner string, pair types.Pair, below, above sdkmath.LegacyDec, recurring bool) (uint64, error) {
	if !k.HasCurrency(ctx, pair.Base) {
		return 0, types.ErrUnknownCurrency.Wrapf("currency %s not registered", pair.Base)
	}
	if !k.HasCurrency(ctx, pair.Quote) {
		return 0, types.ErrUnknownCurrency.Wrapf("currency %s not registered", pair.Quote)
	}

	id := k.GetNextAlarmID(ctx)
	alarm := types.NewAlarm(id, owner, pair, below, above, recurring)
	if err := alarm.Validate(); err != nil {
		return 0, err
	}

	if err := k.SetAlarm(ctx, alarm); err != nil {
		return 0, err
	}
	k.SetNextAlarmID(ctx, id+1)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAlarmRegistered,
			sdk.NewAttribute(types.AttributeKeyAlarmId, fmt.Sprintf("%d", id)),
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
			sdk.NewAttribute(types.AttributeKeyPair, pair.String()),
		),
	)
	k.metrics.ActiveAlarms.Inc()
	return id, nil
}

// CancelAlarm removes a subscription. Only the owner may cancel.
func (k Keeper) CancelAlarm(ctx sdk.Context, owner string, alarmID uint64) error {
	alarm, found := k.GetAlarm(ctx, alarmID)
	if !found {
		return types.ErrAlarmNotFound.Wrapf("alarm %d not found", alarmID)
	}
	if alarm.Owner != owner {
		return types.ErrNotOwner.Wrapf("alarm %d belongs to %s", alarmID, alarm.Owner)
	}

	store := k.getStore(ctx)
	store.Delete(AlarmKey(alarmID))
	store.Delete(AlarmByOwnerKey(alarm.Owner, alarmID))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAlarmCancelled,
			sdk.NewAttribute(types.AttributeKeyAlarmId, fmt.Sprintf("%d", alarmID)),
			sdk.NewAttribute(types.AttributeKeyOwner, owner),
		),
	)
	k.metrics.ActiveAlarms.Dec()
	return nil
}

// EvaluateAlarms runs one alarm evaluation cycle over current rates,
// dispatching at most MaxDispatchPerCycle notifications. Alarms whose
// rate cannot be resolved this cycle are skipped and retried next
// cycle. Returns the number of notifications dispatched.
func (k Keeper) EvaluateAlarms(ctx sdk.Context) int {
	params := k.GetParams(ctx)
	dispatched := 0

	for _, alarm := range k.GetAllAlarms(ctx) {
		if uint32(dispatched) >= params.MaxDispatchPerCycle {
			break
		}
		if alarm.State == types.AlarmStateFired {
			continue
		}

		resolved, err := k.ResolveRate(ctx, alarm.Pair.Base, alarm.Pair.Quote)
		if err != nil {
			k.Logger(ctx).Debug("alarm skipped, rate unresolved",
				"alarm_id", alarm.Id, "pair", alarm.Pair.String(), "error", err)
			continue
		}
		rate := resolved.Rate

		rearmedNow := false
		if alarm.State == types.AlarmStateTriggered {
			if !rearmed(alarm, rate) {
				continue
			}
			alarm.State = types.AlarmStateArmed
			rearmedNow = true
		}

		direction, tripped := crossed(alarm, rate)
		if !tripped {
			if rearmedNow {
				if err := k.SetAlarm(ctx, alarm); err != nil {
					k.Logger(ctx).Error("failed to persist alarm state", "alarm_id", alarm.Id, "error", err)
				}
			}
			continue
		}

		if alarm.Recurring {
			alarm.State = types.AlarmStateTriggered
			alarm.Tripped = direction
		} else {
			alarm.State = types.AlarmStateFired
		}
		if err := k.SetAlarm(ctx, alarm); err != nil {
			k.Logger(ctx).Error("failed to persist alarm state", "alarm_id", alarm.Id, "error", err)
			continue
		}

		k.dispatchAlarm(ctx, alarm, direction, rate)
		dispatched++
	}
	return dispatched
}

// rearmed reports whether a triggered recurring alarm's rate has
// strictly crossed back over the threshold that tripped it.
func rearmed(alarm types.Alarm, rate sdkmath.LegacyDec) bool {
	switch alarm.Tripped {
	case types.DirectionBelow:
		return rate.GT(alarm.Below)
	case types.DirectionAbove:
		return rate.LT(alarm.Above)
	default:
		return false
	}
}

// crossed reports whether an armed alarm's rate sits strictly beyond
// one of its thresholds, and which one.
func crossed(alarm types.Alarm, rate sdkmath.LegacyDec) (types.Direction, bool) {
	if alarm.HasBelow() && rate.LT(alarm.Below) {
		return types.DirectionBelow, true
	}
	if alarm.HasAbove() && rate.GT(alarm.Above) {
		return types.DirectionAbove, true
	}
	return types.DirectionBelow, false
}

// dispatchAlarm emits the notification for a tripped alarm
func (k Keeper) dispatchAlarm(ctx sdk.Context, alarm types.Alarm, direction types.Direction, rate sdkmath.LegacyDec) {
	event := types.DispatchEvent{
		AlarmId:   alarm.Id,
		Owner:     alarm.Owner,
		Pair:      alarm.Pair,
		Direction: direction,
		Rate:      rate,
		Height:    ctx.BlockHeight(),
	}

	if k.hooks != nil {
		if err := k.hooks.AfterAlarmDispatched(ctx, event); err != nil {
			k.Logger(ctx).Error("alarm dispatch hook failed", "alarm_id", alarm.Id, "error", err)
		}
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAlarmDispatched,
			sdk.NewAttribute(types.AttributeKeyAlarmId, fmt.Sprintf("%d", alarm.Id)),
			sdk.NewAttribute(types.AttributeKeyOwner, alarm.Owner),
			sdk.NewAttribute(types.AttributeKeyPair, alarm.Pair.String()),
			sdk.NewAttribute(types.AttributeKeyDirection, direction.String()),
			sdk.NewAttribute(types.AttributeKeyRate, rate.String()),
		),
	)
	k.metrics.AlarmDispatches.WithLabelValues(direction.String()).Inc()
	k.Logger(ctx).Info("alarm dispatched",
		"alarm_id", alarm.Id, "pair", alarm.Pair.String(), "direction", direction.String(), "rate", rate.String())
}

// hasAlarmsReferencing reports whether any alarm monitors a pair
// involving the given currency.
func (k Keeper) hasAlarmsReferencing(ctx sdk.Context, symbol string) bool {
	for _, alarm := range k.GetAllAlarms(ctx) {
		if alarm.Pair.Base == symbol || alarm.Pair.Quote == symbol {
			return true
		}
	}
	return false
}

// PendingDispatchCount counts alarms that would dispatch on the next
// evaluation cycle given current rates.
func (k Keeper) PendingDispatchCount(ctx sdk.Context) uint32 {
	count := uint32(0)
	for _, alarm := range k.GetAllAlarms(ctx) {
		if alarm.State == types.AlarmStateFired {
			continue
		}

		resolved, err := k.ResolveRate(ctx, alarm.Pair.Base, alarm.Pair.Quote)
		if err != nil {
			continue
		}

		candidate := alarm
		if candidate.State == types.AlarmStateTriggered {
			if !rearmed(candidate, resolved.Rate) {
				continue
			}
			candidate.State = types.AlarmStateArmed
		}
		if _, tripped := crossed(candidate, resolved.Rate); tripped {
			count++
		}
	}
	return count
}
