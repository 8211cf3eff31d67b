package cli

// Flag names for oracle transaction commands
const (
	FlagBelow     = "below"
	FlagAbove     = "above"
	FlagRecurring = "recurring"
	FlagParent    = "parent"
	FlagPrecision = "precision"
)
