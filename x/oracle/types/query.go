package types

import (
	"context"
)

// QueryServer is the server API for the oracle Query service
type QueryServer interface {
	// Rate resolves the aggregated cross rate for a pair
	Rate(context.Context, *QueryRateRequest) (*QueryRateResponse, error)
	// Currency returns a single currency tree node
	Currency(context.Context, *QueryCurrencyRequest) (*QueryCurrencyResponse, error)
	// Currencies lists every node of the currency tree
	Currencies(context.Context, *QueryCurrenciesRequest) (*QueryCurrenciesResponse, error)
	// Path returns the resolution route between two currencies
	Path(context.Context, *QueryPathRequest) (*QueryPathResponse, error)
	// Submissions lists the live raw observations for a pair
	Submissions(context.Context, *QuerySubmissionsRequest) (*QuerySubmissionsResponse, error)
	// Alarm returns a single alarm by id
	Alarm(context.Context, *QueryAlarmRequest) (*QueryAlarmResponse, error)
	// AlarmsStatus reports whether any alarm is pending dispatch
	AlarmsStatus(context.Context, *QueryAlarmsStatusRequest) (*QueryAlarmsStatusResponse, error)
	// Params returns the current module parameters
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
}

// QueryRateRequest is the request for the Rate query
type QueryRateRequest struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}

// QueryRateResponse carries a freshly composed cross rate
type QueryRateResponse struct {
	Rate AggregatedRate `json:"rate"`
}

// QueryCurrencyRequest is the request for the Currency query
type QueryCurrencyRequest struct {
	Symbol string `json:"symbol"`
}

// QueryCurrencyResponse is the response for the Currency query
type QueryCurrencyResponse struct {
	Currency Currency `json:"currency"`
}

// QueryCurrenciesRequest is the request for the Currencies query
type QueryCurrenciesRequest struct{}

// QueryCurrenciesResponse lists all registered currencies
type QueryCurrenciesResponse struct {
	Currencies []Currency `json:"currencies"`
}

// QueryPathRequest is the request for the Path query
type QueryPathRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// QueryPathResponse lists the tree hops between two currencies
type QueryPathResponse struct {
	Hops []PathHop `json:"hops"`
}

// QuerySubmissionsRequest is the request for the Submissions query
type QuerySubmissionsRequest struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}

// QuerySubmissionsResponse lists the non-stale observations for a pair
type QuerySubmissionsResponse struct {
	Submissions []FeederPrice `json:"submissions"`
}

// QueryAlarmRequest is the request for the Alarm query
type QueryAlarmRequest struct {
	AlarmId uint64 `json:"alarm_id"`
}

// QueryAlarmResponse is the response for the Alarm query
type QueryAlarmResponse struct {
	Alarm Alarm `json:"alarm"`
}

// QueryAlarmsStatusRequest is the request for the AlarmsStatus query
type QueryAlarmsStatusRequest struct{}

// QueryAlarmsStatusResponse reports outstanding alarm work
type QueryAlarmsStatusResponse struct {
	RemainingForDispatch uint32 `json:"remaining_for_dispatch"`
}

// QueryParamsRequest is the request for the Params query
type QueryParamsRequest struct{}

// QueryParamsResponse is the response for the Params query
type QueryParamsResponse struct {
	Params Params `json:"params"`
}
