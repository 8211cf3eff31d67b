package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/atlas-protocol/atlas/x/oracle/types"
)

// Querier answers the module's ABCI query routes with amino JSON
// payloads. The host app mounts it under "custom/oracle".
type Querier func(ctx sdk.Context, path []string, req []byte) ([]byte, error)

// NewQuerier returns the JSON query handler backed by the query server
func NewQuerier(k Keeper) Querier {
	qs := NewQueryServerImpl(k)

	return func(ctx sdk.Context, path []string, req []byte) ([]byte, error) {
		if len(path) == 0 {
			return nil, sdkerrors.ErrUnknownRequest.Wrap("empty query path")
		}

		switch path[0] {
		case types.QueryRate:
			var request types.QueryRateRequest
			if err := types.ModuleCdc.UnmarshalJSON(req, &request); err != nil {
				return nil, err
			}
			res, err := qs.Rate(ctx, &request)
			if err != nil {
				return nil, err
			}
			return types.ModuleCdc.MarshalJSON(res)

		case types.QueryCurrency:
			var request types.QueryCurrencyRequest
			if err := types.ModuleCdc.UnmarshalJSON(req, &request); err != nil {
				return nil, err
			}
			res, err := qs.Currency(ctx, &request)
			if err != nil {
				return nil, err
			}
			return types.ModuleCdc.MarshalJSON(res)

		case types.QueryCurrencies:
			res, err := qs.Currencies(ctx, &types.QueryCurrenciesRequest{})
			if err != nil {
				return nil, err
			}
			return types.ModuleCdc.MarshalJSON(res)

		case types.QueryPath:
			var request types.QueryPathRequest
			if err := types.ModuleCdc.UnmarshalJSON(req, &request); err != nil {
				return nil, err
			}
			res, err := qs.Path(ctx, &request)
			if err != nil {
				return nil, err
			}
			return types.ModuleCdc.MarshalJSON(res)

		case types.QuerySubmissions:
			var request types.QuerySubmissionsRequest
			if err := types.ModuleCdc.UnmarshalJSON(req, &request); err != nil {
				return nil, err
			}
			res, err := qs.Submissions(ctx, &request)
			if err != nil {
				return nil, err
			}
			return types.ModuleCdc.MarshalJSON(res)

		case types.QueryAlarm:
			var request types.QueryAlarmRequest
			if err := types.ModuleCdc.UnmarshalJSON(req, &request); err != nil {
				return nil, err
			}
			res, err := qs.Alarm(ctx, &request)
			if err != nil {
				return nil, err
			}
			return types.ModuleCdc.MarshalJSON(res)

		case types.QueryAlarmsStatus:
			res, err := qs.AlarmsStatus(ctx, &types.QueryAlarmsStatusRequest{})
			if err != nil {
				return nil, err
			}
			return types.ModuleCdc.MarshalJSON(res)

		case types.QueryParams:
			res, err := qs.Params(ctx, &types.QueryParamsRequest{})
			if err != nil {
				return nil, err
			}
			return types.ModuleCdc.MarshalJSON(res)

		default:
			return nil, sdkerrors.ErrUnknownRequest.Wrapf("unknown query endpoint %s", path[0])
		}
	}
}
