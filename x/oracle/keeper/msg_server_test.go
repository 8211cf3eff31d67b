package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/atlas-protocol/atlas/testutil/keeper"
	"github.com/atlas-protocol/atlas/x/oracle/keeper"
	"github.com/atlas-protocol/atlas/x/oracle/types"
)

func TestMsgSubmitPrice(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)
	ms := keeper.NewMsgServerImpl(*k)

	feeder := keepertest.AccAddress()
	msg := types.NewMsgSubmitPrice(feeder, types.NewPair("OSMO", "USD"), dec("0.98"))

	_, err := ms.SubmitPrice(ctx, msg)
	require.NoError(t, err)

	stored, found := k.GetSubmission(ctx, types.NewPair("OSMO", "USD"), feeder)
	require.True(t, found)
	require.True(t, stored.Rate.Equal(dec("0.98")))
}

func TestMsgSubmitPriceRejectsBadInput(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)
	ms := keeper.NewMsgServerImpl(*k)

	// Malformed feeder address.
	_, err := ms.SubmitPrice(ctx, types.NewMsgSubmitPrice("not-an-address",
		types.NewPair("OSMO", "USD"), dec("1")))
	require.Error(t, err)

	// Non-positive rate.
	_, err = ms.SubmitPrice(ctx, types.NewMsgSubmitPrice(keepertest.AccAddress(),
		types.NewPair("OSMO", "USD"), sdkmath.LegacyZeroDec()))
	require.ErrorIs(t, err, types.ErrInvalidRate)
}

func TestMsgRegisterAlarmReturnsID(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)
	ms := keeper.NewMsgServerImpl(*k)

	owner := keepertest.AccAddress()
	res, err := ms.RegisterAlarm(ctx, types.NewMsgRegisterAlarm(owner,
		types.NewPair("ATOM", "OSMO"), dec("0.05"), sdkmath.LegacyZeroDec(), false))
	require.NoError(t, err)
	require.Equal(t, uint64(1), res.AlarmId)

	res, err = ms.RegisterAlarm(ctx, types.NewMsgRegisterAlarm(owner,
		types.NewPair("ATOM", "OSMO"), sdkmath.LegacyZeroDec(), dec("0.20"), true))
	require.NoError(t, err)
	require.Equal(t, uint64(2), res.AlarmId)
}

func TestMsgCancelAlarm(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)
	ms := keeper.NewMsgServerImpl(*k)

	owner := keepertest.AccAddress()
	res, err := ms.RegisterAlarm(ctx, types.NewMsgRegisterAlarm(owner,
		types.NewPair("OSMO", "USD"), dec("0.90"), sdkmath.LegacyZeroDec(), false))
	require.NoError(t, err)

	_, err = ms.CancelAlarm(ctx, types.NewMsgCancelAlarm(keepertest.AccAddress(), res.AlarmId))
	require.ErrorIs(t, err, types.ErrNotOwner)

	_, err = ms.CancelAlarm(ctx, types.NewMsgCancelAlarm(owner, res.AlarmId))
	require.NoError(t, err)
}

func TestMsgAddCurrencyAuthority(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	authority := k.GetAuthority()

	_, err := ms.AddCurrency(ctx, types.NewMsgAddCurrency(authority, "USD", "", 2))
	require.NoError(t, err)

	// Anyone else is refused.
	_, err = ms.AddCurrency(ctx, types.NewMsgAddCurrency(keepertest.AccAddress(), "EUR", "USD", 2))
	require.Error(t, err)
	require.False(t, k.HasCurrency(ctx, "EUR"))
}

func TestMsgRemoveCurrencyAuthority(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)
	ms := keeper.NewMsgServerImpl(*k)

	_, err := ms.RemoveCurrency(ctx, types.NewMsgRemoveCurrency(keepertest.AccAddress(), "ATOM"))
	require.Error(t, err)
	require.True(t, k.HasCurrency(ctx, "ATOM"))

	_, err = ms.RemoveCurrency(ctx, types.NewMsgRemoveCurrency(k.GetAuthority(), "ATOM"))
	require.NoError(t, err)
	require.False(t, k.HasCurrency(ctx, "ATOM"))
}

func TestMsgUpdateParams(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	ms := keeper.NewMsgServerImpl(*k)

	params := types.DefaultParams()
	params.MinFeeders = 5

	_, err := ms.UpdateParams(ctx, types.NewMsgUpdateParams(keepertest.AccAddress(), params))
	require.Error(t, err)
	require.Equal(t, uint32(3), k.GetParams(ctx).MinFeeders)

	_, err = ms.UpdateParams(ctx, types.NewMsgUpdateParams(k.GetAuthority(), params))
	require.NoError(t, err)
	require.Equal(t, uint32(5), k.GetParams(ctx).MinFeeders)
}
