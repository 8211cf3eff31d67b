package keeper_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/atlas-protocol/atlas/testutil/keeper"
	"github.com/atlas-protocol/atlas/x/oracle/types"
)

func TestAddCurrencyTree(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)

	require.NoError(t, k.AddCurrency(ctx, types.NewCurrency("USD", 2, "")))
	require.NoError(t, k.AddCurrency(ctx, types.NewCurrency("OSMO", 6, "USD")))
	require.NoError(t, k.AddCurrency(ctx, types.NewCurrency("WETH", 18, "OSMO")))

	currencies := k.GetAllCurrencies(ctx)
	require.Len(t, currencies, 3)

	osmo, found := k.GetCurrency(ctx, "OSMO")
	require.True(t, found)
	require.Equal(t, "USD", osmo.Parent)
	require.Equal(t, uint32(6), osmo.Precision)
}

func TestAddCurrencyRejectsDuplicate(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	err := k.AddCurrency(ctx, types.NewCurrency("OSMO", 8, "USD"))
	require.ErrorIs(t, err, types.ErrDuplicateCurrency)

	// The original node is untouched.
	osmo, found := k.GetCurrency(ctx, "OSMO")
	require.True(t, found)
	require.Equal(t, uint32(6), osmo.Precision)
}

func TestAddCurrencyRejectsUnknownParent(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	err := k.AddCurrency(ctx, types.NewCurrency("WBTC", 8, "EUR"))
	require.ErrorIs(t, err, types.ErrUnknownCurrency)
	require.False(t, k.HasCurrency(ctx, "WBTC"))
}

func TestAddCurrencyRejectsSecondRoot(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	err := k.AddCurrency(ctx, types.NewCurrency("EUR", 2, ""))
	require.ErrorIs(t, err, types.ErrCycleDetected)
}

func TestRemoveCurrencyLeafOnly(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	// USD has children, so it cannot go.
	err := k.RemoveCurrency(ctx, "USD")
	require.ErrorIs(t, err, types.ErrCurrencyInUse)

	require.NoError(t, k.RemoveCurrency(ctx, "ATOM"))
	require.False(t, k.HasCurrency(ctx, "ATOM"))
}

func TestRemoveCurrencyBlockedBySubmissions(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	pair := types.NewPair("ATOM", "USD")
	keepertest.SubmitQuorum(t, k, ctx, pair, decs("12.00"), feeders(1))

	err := k.RemoveCurrency(ctx, "ATOM")
	require.ErrorIs(t, err, types.ErrCurrencyInUse)
}

func TestRemoveCurrencyBlockedByAlarms(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	below := sdkmath.LegacyMustNewDecFromStr("0.90")
	_, err := k.RegisterAlarm(ctx, keepertest.AccAddress(), types.NewPair("ATOM", "OSMO"),
		below, sdkmath.LegacyZeroDec(), false)
	require.NoError(t, err)

	err = k.RemoveCurrency(ctx, "ATOM")
	require.ErrorIs(t, err, types.ErrCurrencyInUse)
	err = k.RemoveCurrency(ctx, "OSMO")
	require.ErrorIs(t, err, types.ErrCurrencyInUse)
}

func TestRemoveCurrencyUnknown(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	err := k.RemoveCurrency(ctx, "EUR")
	require.ErrorIs(t, err, types.ErrUnknownCurrency)
}

func TestResolvePathSiblings(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	hops, err := k.ResolvePath(ctx, "ATOM", "OSMO")
	require.NoError(t, err)
	require.Len(t, hops, 2)

	require.Equal(t, types.NewPair("ATOM", "USD"), hops[0].Pair)
	require.True(t, hops[0].Up)
	require.Equal(t, types.NewPair("OSMO", "USD"), hops[1].Pair)
	require.False(t, hops[1].Up)
}

func TestResolvePathDeepTree(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)
	require.NoError(t, k.AddCurrency(ctx, types.NewCurrency("WETH", 18, "OSMO")))
	require.NoError(t, k.AddCurrency(ctx, types.NewCurrency("WBTC", 8, "ATOM")))

	hops, err := k.ResolvePath(ctx, "WETH", "WBTC")
	require.NoError(t, err)
	require.Len(t, hops, 4)

	require.Equal(t, types.NewPair("WETH", "OSMO"), hops[0].Pair)
	require.True(t, hops[0].Up)
	require.Equal(t, types.NewPair("OSMO", "USD"), hops[1].Pair)
	require.True(t, hops[1].Up)
	require.Equal(t, types.NewPair("ATOM", "USD"), hops[2].Pair)
	require.False(t, hops[2].Up)
	require.Equal(t, types.NewPair("WBTC", "ATOM"), hops[3].Pair)
	require.False(t, hops[3].Up)
}

func TestResolvePathAncestorDescendant(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)
	require.NoError(t, k.AddCurrency(ctx, types.NewCurrency("WETH", 18, "OSMO")))

	// Straight up to an ancestor: only multiplying hops.
	up, err := k.ResolvePath(ctx, "WETH", "USD")
	require.NoError(t, err)
	require.Len(t, up, 2)
	for _, hop := range up {
		require.True(t, hop.Up)
	}

	// And straight down: only dividing hops.
	down, err := k.ResolvePath(ctx, "USD", "WETH")
	require.NoError(t, err)
	require.Len(t, down, 2)
	for _, hop := range down {
		require.False(t, hop.Up)
	}
}

func TestResolvePathIdentity(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	hops, err := k.ResolvePath(ctx, "OSMO", "OSMO")
	require.NoError(t, err)
	require.Empty(t, hops)
}

func TestResolvePathUnknownEndpoint(t *testing.T) {
	k, ctx := keepertest.OracleKeeper(t)
	keepertest.SeedCurrencyTree(t, k, ctx)

	_, err := k.ResolvePath(ctx, "ATOM", "EUR")
	require.ErrorIs(t, err, types.ErrUnknownCurrency)
	_, err = k.ResolvePath(ctx, "EUR", "ATOM")
	require.ErrorIs(t, err, types.ErrUnknownCurrency)
}
