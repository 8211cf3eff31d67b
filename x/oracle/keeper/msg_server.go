package keeper

import (
	"context"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/atlas-protocol/atlas/x/oracle/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// SubmitPrice handles a raw price submission from a feeder
func (ms msgServer) SubmitPrice(goCtx context.Context, msg *types.MsgSubmitPrice) (*types.MsgSubmitPriceResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.SubmitPrice(ctx, msg.Feeder, msg.Pair(), msg.Rate); err != nil {
		return nil, err
	}
	return &types.MsgSubmitPriceResponse{}, nil
}

// RegisterAlarm handles alarm registration
func (ms msgServer) RegisterAlarm(goCtx context.Context, msg *types.MsgRegisterAlarm) (*types.MsgRegisterAlarmResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	id, err := ms.Keeper.RegisterAlarm(ctx, msg.Owner, msg.Pair(), msg.Below, msg.Above, msg.Recurring)
	if err != nil {
		return nil, err
	}
	return &types.MsgRegisterAlarmResponse{AlarmId: id}, nil
}

// CancelAlarm handles alarm cancellation by its owner
func (ms msgServer) CancelAlarm(goCtx context.Context, msg *types.MsgCancelAlarm) (*types.MsgCancelAlarmResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.CancelAlarm(ctx, msg.Owner, msg.AlarmId); err != nil {
		return nil, err
	}
	return &types.MsgCancelAlarmResponse{}, nil
}

// AddCurrency handles governance additions to the currency tree
func (ms msgServer) AddCurrency(goCtx context.Context, msg *types.MsgAddCurrency) (*types.MsgAddCurrencyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if ms.authority != msg.Authority {
		return nil, sdkerrors.Wrapf(govtypes.ErrInvalidSigner,
			"invalid authority; expected %s, got %s", ms.authority, msg.Authority)
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.AddCurrency(ctx, types.NewCurrency(msg.Symbol, msg.Precision, msg.Parent)); err != nil {
		return nil, err
	}
	return &types.MsgAddCurrencyResponse{}, nil
}

// RemoveCurrency handles governance removals from the currency tree
func (ms msgServer) RemoveCurrency(goCtx context.Context, msg *types.MsgRemoveCurrency) (*types.MsgRemoveCurrencyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if ms.authority != msg.Authority {
		return nil, sdkerrors.Wrapf(govtypes.ErrInvalidSigner,
			"invalid authority; expected %s, got %s", ms.authority, msg.Authority)
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.Keeper.RemoveCurrency(ctx, msg.Symbol); err != nil {
		return nil, err
	}
	return &types.MsgRemoveCurrencyResponse{}, nil
}

// UpdateParams handles governance parameter updates
func (ms msgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	if ms.authority != msg.Authority {
		return nil, sdkerrors.Wrapf(govtypes.ErrInvalidSigner,
			"invalid authority; expected %s, got %s", ms.authority, msg.Authority)
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := ms.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(types.EventTypeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeyAuthority, msg.Authority),
		),
	)
	return &types.MsgUpdateParamsResponse{}, nil
}
