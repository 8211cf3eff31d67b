package types

import (
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "oracle"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Query endpoint names served under the module's querier route
const (
	QueryRate         = "rate"
	QueryCurrency     = "currency"
	QueryCurrencies   = "currencies"
	QueryPath         = "path"
	QuerySubmissions  = "submissions"
	QueryAlarm        = "alarm"
	QueryAlarmsStatus = "alarms-status"
	QueryParams       = "params"
)

// DefaultAuthority returns the governance module address as the only allowed
// authority for currency-tree changes and parameter updates.
func DefaultAuthority() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}
