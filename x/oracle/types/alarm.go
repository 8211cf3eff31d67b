package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// AlarmState is the lifecycle state of a threshold subscription
type AlarmState int32

const (
	// AlarmStateArmed means the alarm is watching for a crossing
	AlarmStateArmed AlarmState = iota
	// AlarmStateTriggered means a recurring alarm dispatched and waits for the
	// rate to cross back before re-arming
	AlarmStateTriggered
	// AlarmStateFired is the terminal state of a one-shot alarm
	AlarmStateFired
)

func (s AlarmState) String() string {
	switch s {
	case AlarmStateArmed:
		return "armed"
	case AlarmStateTriggered:
		return "triggered"
	case AlarmStateFired:
		return "fired"
	default:
		return fmt.Sprintf("unknown(%d)", int32(s))
	}
}

// Direction is the direction of a threshold crossing
type Direction int32

const (
	// DirectionBelow marks a crossing under the lower threshold
	DirectionBelow Direction = iota
	// DirectionAbove marks a crossing over the upper threshold
	DirectionAbove
)

func (d Direction) String() string {
	if d == DirectionAbove {
		return "above"
	}
	return "below"
}

// Alarm is a registered threshold subscription. A zero (or nil) threshold
// means that side is unset; at least one side must be set. Tripped records
// the crossing direction while a recurring alarm waits in Triggered state.
type Alarm struct {
	Id        uint64         `json:"id"`
	Owner     string         `json:"owner"`
	Pair      Pair           `json:"pair"`
	Below     math.LegacyDec `json:"below"`
	Above     math.LegacyDec `json:"above"`
	Recurring bool           `json:"recurring"`
	State     AlarmState     `json:"state"`
	Tripped   Direction      `json:"tripped"`
}

// NewAlarm creates a new armed alarm
func NewAlarm(id uint64, owner string, pair Pair, below, above math.LegacyDec, recurring bool) Alarm {
	if below.IsNil() {
		below = math.LegacyZeroDec()
	}
	if above.IsNil() {
		above = math.LegacyZeroDec()
	}
	return Alarm{
		Id:        id,
		Owner:     owner,
		Pair:      pair,
		Below:     below,
		Above:     above,
		Recurring: recurring,
		State:     AlarmStateArmed,
	}
}

// HasBelow reports whether the lower threshold is set
func (a Alarm) HasBelow() bool {
	return !a.Below.IsNil() && a.Below.IsPositive()
}

// HasAbove reports whether the upper threshold is set
func (a Alarm) HasAbove() bool {
	return !a.Above.IsNil() && a.Above.IsPositive()
}

// Validate validates the subscription
func (a Alarm) Validate() error {
	if a.Owner == "" {
		return fmt.Errorf("alarm owner cannot be empty")
	}
	if err := a.Pair.Validate(); err != nil {
		return err
	}
	if !a.HasBelow() && !a.HasAbove() {
		return ErrInvalidThreshold.Wrap("alarm must set at least one positive threshold")
	}
	if a.HasBelow() && a.HasAbove() && a.Below.GTE(a.Above) {
		return ErrInvalidThreshold.Wrapf("below threshold %s must be less than above threshold %s",
			a.Below.String(), a.Above.String())
	}
	return nil
}

// DispatchEvent is one newly-crossed subscription produced by an evaluation
// cycle. It is returned to the caller and routed to the subscriber, never
// stored.
type DispatchEvent struct {
	AlarmId   uint64         `json:"alarm_id"`
	Owner     string         `json:"owner"`
	Pair      Pair           `json:"pair"`
	Direction Direction      `json:"direction"`
	Rate      math.LegacyDec `json:"rate"`
	Height    int64          `json:"height"`
}
