package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/atlas-protocol/atlas/x/oracle/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Rate resolves the validated cross rate between two currencies
func (qs queryServer) Rate(goCtx context.Context, req *types.QueryRateRequest) (*types.QueryRateResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	rate, err := qs.ResolveRate(ctx, req.Base, req.Quote)
	if err != nil {
		return nil, err
	}
	return &types.QueryRateResponse{Rate: rate}, nil
}

// Currency returns one currency tree node
func (qs queryServer) Currency(goCtx context.Context, req *types.QueryCurrencyRequest) (*types.QueryCurrencyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	currency, found := qs.GetCurrency(ctx, req.Symbol)
	if !found {
		return nil, types.ErrUnknownCurrency.Wrapf("currency %s not registered", req.Symbol)
	}
	return &types.QueryCurrencyResponse{Currency: currency}, nil
}

// Currencies lists the whole currency tree in symbol order
func (qs queryServer) Currencies(goCtx context.Context, req *types.QueryCurrenciesRequest) (*types.QueryCurrenciesResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryCurrenciesResponse{Currencies: qs.GetAllCurrencies(ctx)}, nil
}

// Path returns the tree hops connecting two currencies
func (qs queryServer) Path(goCtx context.Context, req *types.QueryPathRequest) (*types.QueryPathResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	hops, err := qs.ResolvePath(ctx, req.From, req.To)
	if err != nil {
		return nil, err
	}
	return &types.QueryPathResponse{Hops: hops}, nil
}

// Submissions lists the live raw observations for a pair
func (qs queryServer) Submissions(goCtx context.Context, req *types.QuerySubmissionsRequest) (*types.QuerySubmissionsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	pair := types.NewPair(req.Base, req.Quote)
	if err := pair.Validate(); err != nil {
		return nil, err
	}
	return &types.QuerySubmissionsResponse{Submissions: qs.CurrentSubmissions(ctx, pair)}, nil
}

// Alarm returns one alarm by id
func (qs queryServer) Alarm(goCtx context.Context, req *types.QueryAlarmRequest) (*types.QueryAlarmResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	alarm, found := qs.GetAlarm(ctx, req.AlarmId)
	if !found {
		return nil, types.ErrAlarmNotFound.Wrapf("alarm %d not found", req.AlarmId)
	}
	return &types.QueryAlarmResponse{Alarm: alarm}, nil
}

// AlarmsStatus reports how many alarms would dispatch on the next cycle
func (qs queryServer) AlarmsStatus(goCtx context.Context, req *types.QueryAlarmsStatusRequest) (*types.QueryAlarmsStatusResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryAlarmsStatusResponse{RemainingForDispatch: qs.PendingDispatchCount(ctx)}, nil
}

// Params returns the current module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryParamsResponse{Params: qs.GetParams(ctx)}, nil
}
