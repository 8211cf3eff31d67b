package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// Message type names
const (
	TypeMsgSubmitPrice    = "submit_price"
	TypeMsgRegisterAlarm  = "register_alarm"
	TypeMsgCancelAlarm    = "cancel_alarm"
	TypeMsgAddCurrency    = "add_currency"
	TypeMsgRemoveCurrency = "remove_currency"
	TypeMsgUpdateParams   = "update_params"
)

var (
	_ sdk.Msg = &MsgSubmitPrice{}
	_ sdk.Msg = &MsgRegisterAlarm{}
	_ sdk.Msg = &MsgCancelAlarm{}
	_ sdk.Msg = &MsgAddCurrency{}
	_ sdk.Msg = &MsgRemoveCurrency{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// MsgSubmitPrice is a raw price submission from a feeder
type MsgSubmitPrice struct {
	Feeder string         `json:"feeder"`
	Base   string         `json:"base"`
	Quote  string         `json:"quote"`
	Rate   math.LegacyDec `json:"rate"`
}

// NewMsgSubmitPrice creates a new MsgSubmitPrice instance
func NewMsgSubmitPrice(feeder string, pair Pair, rate math.LegacyDec) *MsgSubmitPrice {
	return &MsgSubmitPrice{
		Feeder: feeder,
		Base:   pair.Base,
		Quote:  pair.Quote,
		Rate:   rate,
	}
}

// Pair returns the submitted currency pair
func (msg *MsgSubmitPrice) Pair() Pair {
	return NewPair(msg.Base, msg.Quote)
}

// Route implements the sdk.Msg interface
func (msg *MsgSubmitPrice) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg *MsgSubmitPrice) Type() string { return TypeMsgSubmitPrice }

// GetSigners implements the sdk.Msg interface
func (msg *MsgSubmitPrice) GetSigners() []sdk.AccAddress {
	feeder, _ := sdk.AccAddressFromBech32(msg.Feeder)
	return []sdk.AccAddress{feeder}
}

// GetSignBytes implements the sdk.Msg interface
func (msg *MsgSubmitPrice) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg *MsgSubmitPrice) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Feeder); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid feeder address: %s", err)
	}
	if err := msg.Pair().Validate(); err != nil {
		return ErrUnknownCurrency.Wrap(err.Error())
	}
	if msg.Rate.IsNil() || !msg.Rate.IsPositive() {
		return ErrInvalidRate.Wrap("rate must be positive")
	}
	return nil
}

// MsgRegisterAlarm registers a threshold subscription for a pair. A zero
// threshold leaves that side unset.
type MsgRegisterAlarm struct {
	Owner     string         `json:"owner"`
	Base      string         `json:"base"`
	Quote     string         `json:"quote"`
	Below     math.LegacyDec `json:"below"`
	Above     math.LegacyDec `json:"above"`
	Recurring bool           `json:"recurring"`
}

// NewMsgRegisterAlarm creates a new MsgRegisterAlarm instance
func NewMsgRegisterAlarm(owner string, pair Pair, below, above math.LegacyDec, recurring bool) *MsgRegisterAlarm {
	if below.IsNil() {
		below = math.LegacyZeroDec()
	}
	if above.IsNil() {
		above = math.LegacyZeroDec()
	}
	return &MsgRegisterAlarm{
		Owner:     owner,
		Base:      pair.Base,
		Quote:     pair.Quote,
		Below:     below,
		Above:     above,
		Recurring: recurring,
	}
}

// Pair returns the monitored currency pair
func (msg *MsgRegisterAlarm) Pair() Pair {
	return NewPair(msg.Base, msg.Quote)
}

// Route implements the sdk.Msg interface
func (msg *MsgRegisterAlarm) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg *MsgRegisterAlarm) Type() string { return TypeMsgRegisterAlarm }

// GetSigners implements the sdk.Msg interface
func (msg *MsgRegisterAlarm) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements the sdk.Msg interface
func (msg *MsgRegisterAlarm) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg *MsgRegisterAlarm) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return ErrNotOwner.Wrapf("invalid owner address: %s", err)
	}
	if err := msg.Pair().Validate(); err != nil {
		return ErrUnknownCurrency.Wrap(err.Error())
	}
	alarm := NewAlarm(0, msg.Owner, msg.Pair(), msg.Below, msg.Above, msg.Recurring)
	if !alarm.HasBelow() && !alarm.HasAbove() {
		return ErrInvalidThreshold.Wrap("at least one positive threshold required")
	}
	if alarm.HasBelow() && alarm.HasAbove() && alarm.Below.GTE(alarm.Above) {
		return ErrInvalidThreshold.Wrap("below threshold must be less than above threshold")
	}
	if (!msg.Below.IsNil() && msg.Below.IsNegative()) || (!msg.Above.IsNil() && msg.Above.IsNegative()) {
		return ErrInvalidThreshold.Wrap("thresholds cannot be negative")
	}
	return nil
}

// MsgCancelAlarm cancels a threshold subscription
type MsgCancelAlarm struct {
	Owner   string `json:"owner"`
	AlarmId uint64 `json:"alarm_id"`
}

// NewMsgCancelAlarm creates a new MsgCancelAlarm instance
func NewMsgCancelAlarm(owner string, alarmId uint64) *MsgCancelAlarm {
	return &MsgCancelAlarm{Owner: owner, AlarmId: alarmId}
}

// Route implements the sdk.Msg interface
func (msg *MsgCancelAlarm) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg *MsgCancelAlarm) Type() string { return TypeMsgCancelAlarm }

// GetSigners implements the sdk.Msg interface
func (msg *MsgCancelAlarm) GetSigners() []sdk.AccAddress {
	owner, _ := sdk.AccAddressFromBech32(msg.Owner)
	return []sdk.AccAddress{owner}
}

// GetSignBytes implements the sdk.Msg interface
func (msg *MsgCancelAlarm) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg *MsgCancelAlarm) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Owner); err != nil {
		return ErrNotOwner.Wrapf("invalid owner address: %s", err)
	}
	if msg.AlarmId == 0 {
		return ErrAlarmNotFound.Wrap("alarm id must be positive")
	}
	return nil
}

// MsgAddCurrency adds a node to the currency tree (authority-gated)
type MsgAddCurrency struct {
	Authority string `json:"authority"`
	Symbol    string `json:"symbol"`
	Parent    string `json:"parent"`
	Precision uint32 `json:"precision"`
}

// NewMsgAddCurrency creates a new MsgAddCurrency instance
func NewMsgAddCurrency(authority, symbol, parent string, precision uint32) *MsgAddCurrency {
	return &MsgAddCurrency{
		Authority: authority,
		Symbol:    symbol,
		Parent:    parent,
		Precision: precision,
	}
}

// Route implements the sdk.Msg interface
func (msg *MsgAddCurrency) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg *MsgAddCurrency) Type() string { return TypeMsgAddCurrency }

// GetSigners implements the sdk.Msg interface
func (msg *MsgAddCurrency) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg *MsgAddCurrency) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg *MsgAddCurrency) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrNotOwner.Wrapf("invalid authority address: %s", err)
	}
	return NewCurrency(msg.Symbol, msg.Precision, msg.Parent).Validate()
}

// MsgRemoveCurrency removes an unused leaf from the currency tree
// (authority-gated)
type MsgRemoveCurrency struct {
	Authority string `json:"authority"`
	Symbol    string `json:"symbol"`
}

// NewMsgRemoveCurrency creates a new MsgRemoveCurrency instance
func NewMsgRemoveCurrency(authority, symbol string) *MsgRemoveCurrency {
	return &MsgRemoveCurrency{Authority: authority, Symbol: symbol}
}

// Route implements the sdk.Msg interface
func (msg *MsgRemoveCurrency) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg *MsgRemoveCurrency) Type() string { return TypeMsgRemoveCurrency }

// GetSigners implements the sdk.Msg interface
func (msg *MsgRemoveCurrency) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg *MsgRemoveCurrency) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg *MsgRemoveCurrency) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrNotOwner.Wrapf("invalid authority address: %s", err)
	}
	return ValidateSymbol(msg.Symbol)
}

// MsgUpdateParams updates the module parameters (governance only)
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

// NewMsgUpdateParams creates a new MsgUpdateParams instance
func NewMsgUpdateParams(authority string, params Params) *MsgUpdateParams {
	return &MsgUpdateParams{Authority: authority, Params: params}
}

// Route implements the sdk.Msg interface
func (msg *MsgUpdateParams) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (msg *MsgUpdateParams) Type() string { return TypeMsgUpdateParams }

// GetSigners implements the sdk.Msg interface
func (msg *MsgUpdateParams) GetSigners() []sdk.AccAddress {
	authority, _ := sdk.AccAddressFromBech32(msg.Authority)
	return []sdk.AccAddress{authority}
}

// GetSignBytes implements the sdk.Msg interface
func (msg *MsgUpdateParams) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return ErrNotOwner.Wrapf("invalid authority address: %s", err)
	}
	return msg.Params.Validate()
}
