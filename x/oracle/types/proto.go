package types

import "fmt"

// The oracle messages are plain Go structs serialized through the amino
// codec. The methods below satisfy the gogoproto message contract that
// sdk.Msg and the interface registry expect.

func (msg *MsgSubmitPrice) Reset()         { *msg = MsgSubmitPrice{} }
func (msg *MsgSubmitPrice) ProtoMessage()  {}
func (msg *MsgSubmitPrice) String() string { return fmt.Sprintf("%+v", *msg) }

func (msg *MsgSubmitPrice) XXX_MessageName() string { return "atlas.oracle.MsgSubmitPrice" }

func (msg *MsgRegisterAlarm) Reset()         { *msg = MsgRegisterAlarm{} }
func (msg *MsgRegisterAlarm) ProtoMessage()  {}
func (msg *MsgRegisterAlarm) String() string { return fmt.Sprintf("%+v", *msg) }

func (msg *MsgRegisterAlarm) XXX_MessageName() string { return "atlas.oracle.MsgRegisterAlarm" }

func (msg *MsgCancelAlarm) Reset()         { *msg = MsgCancelAlarm{} }
func (msg *MsgCancelAlarm) ProtoMessage()  {}
func (msg *MsgCancelAlarm) String() string { return fmt.Sprintf("%+v", *msg) }

func (msg *MsgCancelAlarm) XXX_MessageName() string { return "atlas.oracle.MsgCancelAlarm" }

func (msg *MsgAddCurrency) Reset()         { *msg = MsgAddCurrency{} }
func (msg *MsgAddCurrency) ProtoMessage()  {}
func (msg *MsgAddCurrency) String() string { return fmt.Sprintf("%+v", *msg) }

func (msg *MsgAddCurrency) XXX_MessageName() string { return "atlas.oracle.MsgAddCurrency" }

func (msg *MsgRemoveCurrency) Reset()         { *msg = MsgRemoveCurrency{} }
func (msg *MsgRemoveCurrency) ProtoMessage()  {}
func (msg *MsgRemoveCurrency) String() string { return fmt.Sprintf("%+v", *msg) }

func (msg *MsgRemoveCurrency) XXX_MessageName() string { return "atlas.oracle.MsgRemoveCurrency" }

func (msg *MsgUpdateParams) Reset()         { *msg = MsgUpdateParams{} }
func (msg *MsgUpdateParams) ProtoMessage()  {}
func (msg *MsgUpdateParams) String() string { return fmt.Sprintf("%+v", *msg) }

func (msg *MsgUpdateParams) XXX_MessageName() string { return "atlas.oracle.MsgUpdateParams" }
