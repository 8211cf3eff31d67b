package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"github.com/atlas-protocol/atlas/x/oracle/types"
)

func accAddress() string {
	return sdk.AccAddress(ed25519.GenPrivKey().PubKey().Address()).String()
}

func TestMsgSubmitPrice_ValidateBasic(t *testing.T) {
	addr := accAddress()
	pair := types.NewPair("ATOM", "USD")

	tests := []struct {
		name    string
		msg     *types.MsgSubmitPrice
		wantErr bool
		errType error
	}{
		{
			name: "valid message",
			msg:  types.NewMsgSubmitPrice(addr, pair, math.LegacyMustNewDecFromStr("12.5")),
		},
		{
			name:    "invalid feeder address",
			msg:     types.NewMsgSubmitPrice("invalid", pair, math.LegacyOneDec()),
			wantErr: true,
			errType: sdkerrors.ErrInvalidAddress,
		},
		{
			name:    "empty base symbol",
			msg:     types.NewMsgSubmitPrice(addr, types.NewPair("", "USD"), math.LegacyOneDec()),
			wantErr: true,
			errType: types.ErrUnknownCurrency,
		},
		{
			name:    "symbol with separator",
			msg:     types.NewMsgSubmitPrice(addr, types.NewPair("AT/OM", "USD"), math.LegacyOneDec()),
			wantErr: true,
			errType: types.ErrUnknownCurrency,
		},
		{
			name:    "zero rate",
			msg:     types.NewMsgSubmitPrice(addr, pair, math.LegacyZeroDec()),
			wantErr: true,
			errType: types.ErrInvalidRate,
		},
		{
			name:    "negative rate",
			msg:     types.NewMsgSubmitPrice(addr, pair, math.LegacyMustNewDecFromStr("-1")),
			wantErr: true,
			errType: types.ErrInvalidRate,
		},
		{
			name:    "nil rate",
			msg:     &types.MsgSubmitPrice{Feeder: addr, Base: "ATOM", Quote: "USD"},
			wantErr: true,
			errType: types.ErrInvalidRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errType != nil {
					require.ErrorIs(t, err, tt.errType)
				}
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgRegisterAlarm_ValidateBasic(t *testing.T) {
	addr := accAddress()
	pair := types.NewPair("ATOM", "USD")
	low := math.LegacyMustNewDecFromStr("0.90")
	high := math.LegacyMustNewDecFromStr("1.10")
	zero := math.LegacyZeroDec()

	tests := []struct {
		name    string
		msg     *types.MsgRegisterAlarm
		wantErr bool
		errType error
	}{
		{
			name: "both thresholds",
			msg:  types.NewMsgRegisterAlarm(addr, pair, low, high, true),
		},
		{
			name: "below only",
			msg:  types.NewMsgRegisterAlarm(addr, pair, low, zero, false),
		},
		{
			name: "above only",
			msg:  types.NewMsgRegisterAlarm(addr, pair, zero, high, false),
		},
		{
			name:    "invalid owner address",
			msg:     types.NewMsgRegisterAlarm("invalid", pair, low, high, false),
			wantErr: true,
			errType: types.ErrNotOwner,
		},
		{
			name:    "no thresholds",
			msg:     types.NewMsgRegisterAlarm(addr, pair, zero, zero, false),
			wantErr: true,
			errType: types.ErrInvalidThreshold,
		},
		{
			name:    "below above crossed",
			msg:     types.NewMsgRegisterAlarm(addr, pair, high, low, false),
			wantErr: true,
			errType: types.ErrInvalidThreshold,
		},
		{
			name:    "below equals above",
			msg:     types.NewMsgRegisterAlarm(addr, pair, high, high, false),
			wantErr: true,
			errType: types.ErrInvalidThreshold,
		},
		{
			name:    "negative threshold",
			msg:     types.NewMsgRegisterAlarm(addr, pair, math.LegacyMustNewDecFromStr("-0.5"), high, false),
			wantErr: true,
			errType: types.ErrInvalidThreshold,
		},
		{
			name:    "bad pair",
			msg:     types.NewMsgRegisterAlarm(addr, types.NewPair("ATOM", ""), low, high, false),
			wantErr: true,
			errType: types.ErrUnknownCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errType != nil {
					require.ErrorIs(t, err, tt.errType)
				}
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgCancelAlarm_ValidateBasic(t *testing.T) {
	addr := accAddress()

	require.NoError(t, types.NewMsgCancelAlarm(addr, 7).ValidateBasic())
	require.ErrorIs(t, types.NewMsgCancelAlarm(addr, 0).ValidateBasic(), types.ErrAlarmNotFound)
	require.ErrorIs(t, types.NewMsgCancelAlarm("invalid", 7).ValidateBasic(), types.ErrNotOwner)
}

func TestMsgAddCurrency_ValidateBasic(t *testing.T) {
	addr := accAddress()

	tests := []struct {
		name    string
		msg     *types.MsgAddCurrency
		wantErr bool
	}{
		{
			name: "valid root",
			msg:  types.NewMsgAddCurrency(addr, "USD", "", 2),
		},
		{
			name: "valid child",
			msg:  types.NewMsgAddCurrency(addr, "ATOM", "USD", 6),
		},
		{
			name:    "invalid authority",
			msg:     types.NewMsgAddCurrency("invalid", "USD", "", 2),
			wantErr: true,
		},
		{
			name:    "empty symbol",
			msg:     types.NewMsgAddCurrency(addr, "", "", 2),
			wantErr: true,
		},
		{
			name:    "self parent",
			msg:     types.NewMsgAddCurrency(addr, "USD", "USD", 2),
			wantErr: true,
		},
		{
			name:    "precision too large",
			msg:     types.NewMsgAddCurrency(addr, "ATOM", "USD", types.MaxPrecision+1),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgRemoveCurrency_ValidateBasic(t *testing.T) {
	addr := accAddress()

	require.NoError(t, types.NewMsgRemoveCurrency(addr, "ATOM").ValidateBasic())
	require.Error(t, types.NewMsgRemoveCurrency("invalid", "ATOM").ValidateBasic())
	require.Error(t, types.NewMsgRemoveCurrency(addr, "").ValidateBasic())
}

func TestMsgUpdateParams_ValidateBasic(t *testing.T) {
	addr := accAddress()

	require.NoError(t, types.NewMsgUpdateParams(addr, types.DefaultParams()).ValidateBasic())

	bad := types.DefaultParams()
	bad.MinFeeders = 0
	require.Error(t, types.NewMsgUpdateParams(addr, bad).ValidateBasic())

	require.ErrorIs(t, types.NewMsgUpdateParams("invalid", types.DefaultParams()).ValidateBasic(), types.ErrNotOwner)
}

func TestMsgGetSigners(t *testing.T) {
	addr := accAddress()

	signers := types.NewMsgSubmitPrice(addr, types.NewPair("ATOM", "USD"), math.LegacyOneDec()).GetSigners()
	require.Len(t, signers, 1)
	require.Equal(t, addr, signers[0].String())

	signers = types.NewMsgCancelAlarm(addr, 1).GetSigners()
	require.Len(t, signers, 1)
	require.Equal(t, addr, signers[0].String())
}
