package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/atlas-protocol/atlas/x/oracle/keeper"
	"github.com/atlas-protocol/atlas/x/oracle/types"
)

// OracleKeeper builds an isolated oracle keeper over an in-memory
// multistore, with default params already set. The context starts at
// block height 1.
func OracleKeeper(t testing.TB) (*keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	k := keeper.NewKeeper(
		codec.NewLegacyAmino(),
		runtime.NewKVStoreService(storeKey),
		types.DefaultAuthority(),
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Height: 1}, false, log.NewNopLogger())
	require.NoError(t, k.SetParams(ctx, types.DefaultParams()))

	return k, ctx
}

// AccAddress returns a fresh bech32 account address for tests
func AccAddress() string {
	return sdk.AccAddress(ed25519.GenPrivKey().PubKey().Address()).String()
}

// SeedCurrencyTree registers a small tree: USD as root with OSMO and
// ATOM as direct children.
func SeedCurrencyTree(t testing.TB, k *keeper.Keeper, ctx sdk.Context) {
	require.NoError(t, k.AddCurrency(ctx, types.NewCurrency("USD", 2, "")))
	require.NoError(t, k.AddCurrency(ctx, types.NewCurrency("OSMO", 6, "USD")))
	require.NoError(t, k.AddCurrency(ctx, types.NewCurrency("ATOM", 6, "USD")))
}

// SubmitQuorum records one observation per feeder for a pair at the
// context's current height.
func SubmitQuorum(t testing.TB, k *keeper.Keeper, ctx sdk.Context, pair types.Pair, rates []math.LegacyDec, feeders []string) {
	require.Equal(t, len(rates), len(feeders))
	for i, rate := range rates {
		require.NoError(t, k.SubmitPrice(ctx, feeders[i], pair, rate))
	}
}
