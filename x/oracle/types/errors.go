package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Oracle module sentinel errors
var (
	// Currency tree errors
	ErrUnknownCurrency   = sdkerrors.Register(ModuleName, 2, "unknown currency")
	ErrDuplicateCurrency = sdkerrors.Register(ModuleName, 3, "duplicate currency")
	ErrCycleDetected     = sdkerrors.Register(ModuleName, 4, "currency tree cycle detected")
	ErrCurrencyInUse     = sdkerrors.Register(ModuleName, 5, "currency in use")

	// Submission errors
	ErrInvalidRate = sdkerrors.Register(ModuleName, 6, "invalid rate")

	// Aggregation errors
	ErrInsufficientFeeders = sdkerrors.Register(ModuleName, 7, "insufficient feeders")
	ErrPriceOutOfTolerance = sdkerrors.Register(ModuleName, 8, "price out of tolerance")

	// Cross-rate resolution errors
	ErrStalePrice   = sdkerrors.Register(ModuleName, 9, "stale price on cross-rate path")
	ErrRateOverflow = sdkerrors.Register(ModuleName, 10, "rate composition overflow")

	// Alarm errors
	ErrInvalidThreshold = sdkerrors.Register(ModuleName, 11, "invalid threshold")
	ErrAlarmNotFound    = sdkerrors.Register(ModuleName, 12, "alarm not found")
	ErrNotOwner         = sdkerrors.Register(ModuleName, 13, "not the alarm owner")
)
