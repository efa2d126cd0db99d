package types

import (
	"encoding/json"
	"fmt"
)

// GenesisState is the token module's genesis state.
type GenesisState struct {
	Holders []Holder `json:"holders"`
}

// NewGenesisState creates a new GenesisState instance.
func NewGenesisState(holders []Holder) *GenesisState {
	return &GenesisState{
		Holders: holders,
	}
}

// DefaultGenesisState returns the default GenesisState instance.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Holders: []Holder{},
	}
}

// Validate performs basic validation of the token module genesis state.
func (gs GenesisState) Validate() error {
	seen := make(map[string]struct{}, len(gs.Holders))
	for _, h := range gs.Holders {
		if err := h.Validate(); err != nil {
			return err
		}

		key := h.Address.String()
		if _, ok := seen[key]; ok {
			return fmt.Errorf("duplicate holder %s", key)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// GetGenesisStateFromAppState returns x/token GenesisState given raw application
// genesis state.
func GetGenesisStateFromAppState(appState map[string]json.RawMessage) (GenesisState, error) {
	genesisState := *DefaultGenesisState()

	if appState[ModuleName] != nil {
		if err := ModuleCdc.UnmarshalJSON(appState[ModuleName], &genesisState); err != nil {
			return GenesisState{}, fmt.Errorf("failed to unmarshal %s genesis state: %w", ModuleName, err)
		}
	}

	return genesisState, nil
}
