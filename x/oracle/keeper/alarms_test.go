package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/atlas-protocol/atlas/testutil/keeper"
	"github.com/atlas-protocol/atlas/x/oracle/types"
)

func dec(v string) sdkmath.LegacyDec {
	return sdkmath.LegacyMustNewDecFromStr(v)
}

func TestRegisterAndCancelAlarm(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	owner := keepertest.AccAddress()
	id, err := k.RegisterAlarm(ctx, owner, types.NewPair("OSMO", "USD"),
		dec("0.90"), sdkmath.LegacyZeroDec(), false)
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	alarm, found := k.GetAlarm(ctx, id)
	require.True(t, found)
	require.Equal(t, types.AlarmStateArmed, alarm.State)
	require.Equal(t, owner, alarm.Owner)

	owned := k.GetAlarmsByOwner(ctx, owner)
	require.Len(t, owned, 1)

	require.NoError(t, k.CancelAlarm(ctx, owner, id))
	_, found = k.GetAlarm(ctx, id)
	require.False(t, found)
	require.Empty(t, k.GetAlarmsByOwner(ctx, owner))
}

func TestAlarmIDsNeverReused(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	owner := keepertest.AccAddress()
	pair := types.NewPair("OSMO", "USD")

	first, err := k.RegisterAlarm(ctx, owner, pair, dec("0.90"), sdkmath.LegacyZeroDec(), false)
	require.NoError(t, err)
	require.NoError(t, k.CancelAlarm(ctx, owner, first))

	second, err := k.RegisterAlarm(ctx, owner, pair, dec("0.90"), sdkmath.LegacyZeroDec(), false)
	require.NoError(t, err)
	require.Greater(t, second, first)
}

func TestCancelAlarmOwnershipChecks(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	owner := keepertest.AccAddress()
	id, err := k.RegisterAlarm(ctx, owner, types.NewPair("OSMO", "USD"),
		dec("0.90"), sdkmath.LegacyZeroDec(), false)
	require.NoError(t, err)

	err = k.CancelAlarm(ctx, keepertest.AccAddress(), id)
	require.ErrorIs(t, err, types.ErrNotOwner)

	err = k.CancelAlarm(ctx, owner, 999)
	require.ErrorIs(t, err, types.ErrAlarmNotFound)

	// The alarm survives both failed attempts.
	_, found := k.GetAlarm(ctx, id)
	require.True(t, found)
}

func TestRegisterAlarmUnknownCurrency(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	_, err := k.RegisterAlarm(ctx, keepertest.AccAddress(), types.NewPair("EUR", "USD"),
		dec("0.90"), sdkmath.LegacyZeroDec(), false)
	require.ErrorIs(t, err, types.ErrUnknownCurrency)
}

func TestRegisterAlarmInvalidThresholds(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	owner := keepertest.AccAddress()
	pair := types.NewPair("OSMO", "USD")

	// No threshold at all.
	_, err := k.RegisterAlarm(ctx, owner, pair, sdkmath.LegacyZeroDec(), sdkmath.LegacyZeroDec(), false)
	require.ErrorIs(t, err, types.ErrInvalidThreshold)

	// Inverted band.
	_, err = k.RegisterAlarm(ctx, owner, pair, dec("1.10"), dec("0.90"), false)
	require.ErrorIs(t, err, types.ErrInvalidThreshold)
}

func TestOneShotAlarmFiresExactlyOnce(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	pair := types.NewPair("OSMO", "USD")
	names := feeders(3)
	owner := keepertest.AccAddress()

	id, err := k.RegisterAlarm(ctx, owner, pair, dec("0.95"), sdkmath.LegacyZeroDec(), false)
	require.NoError(t, err)

	// Rate at 1.00: armed, nothing crosses.
	keepertest.SubmitQuorum(t, k, ctx, pair, decs("1.00", "1.00", "1.00"), names)
	require.Equal(t, 0, k.EvaluateAlarms(ctx))

	// Rate drops under the threshold: exactly one dispatch.
	keepertest.SubmitQuorum(t, k, ctx, pair, decs("0.90", "0.90", "0.90"), names)
	require.Equal(t, 1, k.EvaluateAlarms(ctx))

	alarm, found := k.GetAlarm(ctx, id)
	require.True(t, found)
	require.Equal(t, types.AlarmStateFired, alarm.State)

	// Still under threshold next cycle: no repeat.
	require.Equal(t, 0, k.EvaluateAlarms(ctx))

	// Not even after recovering and dropping again.
	keepertest.SubmitQuorum(t, k, ctx, pair, decs("1.00", "1.00", "1.00"), names)
	require.Equal(t, 0, k.EvaluateAlarms(ctx))
	keepertest.SubmitQuorum(t, k, ctx, pair, decs("0.90", "0.90", "0.90"), names)
	require.Equal(t, 0, k.EvaluateAlarms(ctx))
}

func TestRecurringAlarmHysteresis(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	pair := types.NewPair("OSMO", "USD")
	names := feeders(3)
	owner := keepertest.AccAddress()

	id, err := k.RegisterAlarm(ctx, owner, pair, sdkmath.LegacyZeroDec(), dec("1.01"), true)
	require.NoError(t, err)

	// 1.00 is not strictly above 1.01.
	keepertest.SubmitQuorum(t, k, ctx, pair, decs("1.00", "1.00", "1.00"), names)
	require.Equal(t, 0, k.EvaluateAlarms(ctx))

	// 1.02 crosses: dispatch and hold in triggered state.
	keepertest.SubmitQuorum(t, k, ctx, pair, decs("1.02", "1.02", "1.02"), names)
	require.Equal(t, 1, k.EvaluateAlarms(ctx))

	alarm, _ := k.GetAlarm(ctx, id)
	require.Equal(t, types.AlarmStateTriggered, alarm.State)
	require.Equal(t, types.DirectionAbove, alarm.Tripped)

	// Still above: no repeat while triggered.
	keepertest.SubmitQuorum(t, k, ctx, pair, decs("1.05", "1.05", "1.05"), names)
	require.Equal(t, 0, k.EvaluateAlarms(ctx))

	// Exactly at the threshold does not re-arm; strictly below does.
	keepertest.SubmitQuorum(t, k, ctx, pair, decs("1.01", "1.01", "1.01"), names)
	require.Equal(t, 0, k.EvaluateAlarms(ctx))
	alarm, _ = k.GetAlarm(ctx, id)
	require.Equal(t, types.AlarmStateTriggered, alarm.State)

	keepertest.SubmitQuorum(t, k, ctx, pair, decs("1.00", "1.00", "1.00"), names)
	require.Equal(t, 0, k.EvaluateAlarms(ctx))
	alarm, _ = k.GetAlarm(ctx, id)
	require.Equal(t, types.AlarmStateArmed, alarm.State)

	// Re-armed: the next crossing dispatches again.
	keepertest.SubmitQuorum(t, k, ctx, pair, decs("1.02", "1.02", "1.02"), names)
	require.Equal(t, 1, k.EvaluateAlarms(ctx))
}

func TestAlarmSkippedOnUnresolvedRate(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	pair := types.NewPair("OSMO", "USD")
	names := feeders(3)
	owner := keepertest.AccAddress()

	id, err := k.RegisterAlarm(ctx, owner, pair, dec("0.95"), sdkmath.LegacyZeroDec(), false)
	require.NoError(t, err)

	// No submissions at all: skip, stay armed.
	require.Equal(t, 0, k.EvaluateAlarms(ctx))
	alarm, _ := k.GetAlarm(ctx, id)
	require.Equal(t, types.AlarmStateArmed, alarm.State)

	// Quorum arrives later and the crossing is caught on that cycle.
	keepertest.SubmitQuorum(t, k, ctx, pair, decs("0.90", "0.90", "0.90"), names)
	require.Equal(t, 1, k.EvaluateAlarms(ctx))
}

func TestEvaluateAlarmsDispatchCap(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	params := types.DefaultParams()
	params.MaxDispatchPerCycle = 2
	require.NoError(t, k.SetParams(ctx, params))

	pair := types.NewPair("OSMO", "USD")
	names := feeders(3)
	keepertest.SubmitQuorum(t, k, ctx, pair, decs("0.90", "0.90", "0.90"), names)

	for i := 0; i < 5; i++ {
		_, err := k.RegisterAlarm(ctx, keepertest.AccAddress(), pair,
			dec("0.95"), sdkmath.LegacyZeroDec(), false)
		require.NoError(t, err)
	}

	// Two cycles of two, then one.
	require.Equal(t, 2, k.EvaluateAlarms(ctx))
	require.Equal(t, 2, k.EvaluateAlarms(ctx))
	require.Equal(t, 1, k.EvaluateAlarms(ctx))
	require.Equal(t, 0, k.EvaluateAlarms(ctx))
}

func TestBothThresholdsPickDirection(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	pair := types.NewPair("ATOM", "USD")
	names := feeders(3)
	owner := keepertest.AccAddress()

	id, err := k.RegisterAlarm(ctx, owner, pair, dec("10"), dec("15"), true)
	require.NoError(t, err)

	keepertest.SubmitQuorum(t, k, ctx, pair, decs("16", "16", "16"), names)
	require.Equal(t, 1, k.EvaluateAlarms(ctx))
	alarm, _ := k.GetAlarm(ctx, id)
	require.Equal(t, types.DirectionAbove, alarm.Tripped)

	// Falls back through the band and out the bottom: re-arms on the
	// way down and trips below on a later cycle.
	keepertest.SubmitQuorum(t, k, ctx, pair, decs("12", "12", "12"), names)
	require.Equal(t, 0, k.EvaluateAlarms(ctx))
	keepertest.SubmitQuorum(t, k, ctx, pair, decs("9", "9", "9"), names)
	require.Equal(t, 1, k.EvaluateAlarms(ctx))
	alarm, _ = k.GetAlarm(ctx, id)
	require.Equal(t, types.DirectionBelow, alarm.Tripped)
}

func TestPendingDispatchCount(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	pair := types.NewPair("OSMO", "USD")
	names := feeders(3)
	keepertest.SubmitQuorum(t, k, ctx, pair, decs("0.90", "0.90", "0.90"), names)

	_, err := k.RegisterAlarm(ctx, keepertest.AccAddress(), pair,
		dec("0.95"), sdkmath.LegacyZeroDec(), false)
	require.NoError(t, err)
	_, err = k.RegisterAlarm(ctx, keepertest.AccAddress(), pair,
		dec("0.80"), sdkmath.LegacyZeroDec(), false)
	require.NoError(t, err)

	// Only the first alarm's threshold is crossed at 0.90.
	require.Equal(t, uint32(1), k.PendingDispatchCount(ctx))

	require.Equal(t, 1, k.EvaluateAlarms(ctx))
	require.Equal(t, uint32(0), k.PendingDispatchCount(ctx))
}
