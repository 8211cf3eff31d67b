package types

import (
	"context"
)

// MsgServer is the server API for the oracle Msg service
type MsgServer interface {
	// SubmitPrice records a raw observation from a feeder
	SubmitPrice(context.Context, *MsgSubmitPrice) (*MsgSubmitPriceResponse, error)
	// RegisterAlarm creates a threshold subscription and returns its id
	RegisterAlarm(context.Context, *MsgRegisterAlarm) (*MsgRegisterAlarmResponse, error)
	// CancelAlarm removes a subscription owned by the signer
	CancelAlarm(context.Context, *MsgCancelAlarm) (*MsgCancelAlarmResponse, error)
	// AddCurrency grafts a new node onto the currency tree
	AddCurrency(context.Context, *MsgAddCurrency) (*MsgAddCurrencyResponse, error)
	// RemoveCurrency prunes an unused leaf from the currency tree
	RemoveCurrency(context.Context, *MsgRemoveCurrency) (*MsgRemoveCurrencyResponse, error)
	// UpdateParams updates the module parameters
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// MsgSubmitPriceResponse is the response for MsgSubmitPrice
type MsgSubmitPriceResponse struct{}

// MsgRegisterAlarmResponse returns the id assigned to the new alarm
type MsgRegisterAlarmResponse struct {
	AlarmId uint64 `json:"alarm_id"`
}

// MsgCancelAlarmResponse is the response for MsgCancelAlarm
type MsgCancelAlarmResponse struct{}

// MsgAddCurrencyResponse is the response for MsgAddCurrency
type MsgAddCurrencyResponse struct{}

// MsgRemoveCurrencyResponse is the response for MsgRemoveCurrency
type MsgRemoveCurrencyResponse struct{}

// MsgUpdateParamsResponse is the response for MsgUpdateParams
type MsgUpdateParamsResponse struct{}
