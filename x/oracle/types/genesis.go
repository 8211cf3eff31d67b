package types

import (
	"fmt"
)

// GenesisState is the oracle module's genesis state
type GenesisState struct {
	Params       Params        `json:"params"`
	Currencies   []Currency    `json:"currencies"`
	FeederPrices []FeederPrice `json:"feeder_prices"`
	Alarms       []Alarm       `json:"alarms"`
	NextAlarmId  uint64        `json:"next_alarm_id"`
}

// DefaultGenesis returns the default genesis state for the oracle module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		Currencies:   []Currency{},
		FeederPrices: []FeederPrice{},
		Alarms:       []Alarm{},
		NextAlarmId:  1,
	}
}

// Validate ensures the genesis state is well-formed: valid params, a single
// rooted acyclic currency tree, submissions and alarms referencing known
// currencies only.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	nodes := make(map[string]Currency, len(gs.Currencies))
	roots := 0
	for _, c := range gs.Currencies {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("invalid currency %s: %w", c.Symbol, err)
		}
		if _, ok := nodes[c.Symbol]; ok {
			return fmt.Errorf("duplicate currency %s", c.Symbol)
		}
		nodes[c.Symbol] = c
		if c.IsRoot() {
			roots++
		}
	}
	if len(gs.Currencies) > 0 && roots != 1 {
		return fmt.Errorf("currency tree must have exactly one root, got %d", roots)
	}
	for _, c := range gs.Currencies {
		// walk the parent chain; more steps than nodes means a cycle
		cur := c
		for steps := 0; !cur.IsRoot(); steps++ {
			if steps > len(nodes) {
				return fmt.Errorf("currency tree cycle through %s", c.Symbol)
			}
			parent, ok := nodes[cur.Parent]
			if !ok {
				return fmt.Errorf("currency %s references unknown parent %s", cur.Symbol, cur.Parent)
			}
			cur = parent
		}
	}

	seenFeeds := make(map[string]struct{}, len(gs.FeederPrices))
	for _, fp := range gs.FeederPrices {
		if err := fp.Validate(); err != nil {
			return fmt.Errorf("invalid feeder price: %w", err)
		}
		if _, ok := nodes[fp.Pair.Base]; !ok {
			return fmt.Errorf("feeder price references unknown currency %s", fp.Pair.Base)
		}
		if _, ok := nodes[fp.Pair.Quote]; !ok {
			return fmt.Errorf("feeder price references unknown currency %s", fp.Pair.Quote)
		}
		key := fp.Pair.String() + "/" + fp.Feeder
		if _, ok := seenFeeds[key]; ok {
			return fmt.Errorf("duplicate feeder price for %s by %s", fp.Pair.String(), fp.Feeder)
		}
		seenFeeds[key] = struct{}{}
	}

	seenAlarms := make(map[uint64]struct{}, len(gs.Alarms))
	for _, a := range gs.Alarms {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("invalid alarm %d: %w", a.Id, err)
		}
		if _, ok := seenAlarms[a.Id]; ok {
			return fmt.Errorf("duplicate alarm id %d", a.Id)
		}
		seenAlarms[a.Id] = struct{}{}
		if a.Id >= gs.NextAlarmId {
			return fmt.Errorf("alarm id %d not below next alarm id %d", a.Id, gs.NextAlarmId)
		}
		if _, ok := nodes[a.Pair.Base]; !ok {
			return fmt.Errorf("alarm %d references unknown currency %s", a.Id, a.Pair.Base)
		}
		if _, ok := nodes[a.Pair.Quote]; !ok {
			return fmt.Errorf("alarm %d references unknown currency %s", a.Id, a.Pair.Quote)
		}
	}

	if gs.NextAlarmId == 0 {
		return fmt.Errorf("next alarm id must be positive")
	}

	return nil
}
