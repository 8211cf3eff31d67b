package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgSubmitPrice{}, "oracle/MsgSubmitPrice", nil)
	cdc.RegisterConcrete(&MsgRegisterAlarm{}, "oracle/MsgRegisterAlarm", nil)
	cdc.RegisterConcrete(&MsgCancelAlarm{}, "oracle/MsgCancelAlarm", nil)
	cdc.RegisterConcrete(&MsgAddCurrency{}, "oracle/MsgAddCurrency", nil)
	cdc.RegisterConcrete(&MsgRemoveCurrency{}, "oracle/MsgRemoveCurrency", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "oracle/MsgUpdateParams", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgSubmitPrice{},
		&MsgRegisterAlarm{},
		&MsgCancelAlarm{},
		&MsgAddCurrency{},
		&MsgRemoveCurrency{},
		&MsgUpdateParams{},
	)
}

var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
