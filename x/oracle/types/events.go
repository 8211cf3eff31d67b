package types

// Event types for the oracle module
const (
	EventTypePriceSubmitted  = "price_submitted"
	EventTypeAlarmRegistered = "alarm_registered"
	EventTypeAlarmCancelled  = "alarm_cancelled"
	EventTypeAlarmDispatched = "alarm_dispatched"
	EventTypeCurrencyAdded   = "currency_added"
	EventTypeCurrencyRemoved = "currency_removed"
	EventTypeParamsUpdated   = "params_updated"

	AttributeKeyFeeder    = "feeder"
	AttributeKeyPair      = "pair"
	AttributeKeyRate      = "rate"
	AttributeKeyHeight    = "height"
	AttributeKeyAlarmId   = "alarm_id"
	AttributeKeyOwner     = "owner"
	AttributeKeyDirection = "direction"
	AttributeKeyRecurring = "recurring"
	AttributeKeyAuthority = "authority"
	AttributeKeySymbol    = "symbol"
	AttributeKeyParent    = "parent"
	AttributeKeyPrecision = "precision"
)
