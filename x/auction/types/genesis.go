package types

import (
	"encoding/json"
	"fmt"
)

// GenesisState is the auction module's genesis state.
type GenesisState struct {
	Params        Params    `json:"params"`
	Auctions      []Auction `json:"auctions"`
	NextAuctionId uint64    `json:"next_auction_id"`
}

// NewGenesisState creates a new GenesisState instance.
func NewGenesisState(params Params, auctions []Auction, nextAuctionID uint64) *GenesisState {
	return &GenesisState{
		Params:        params,
		Auctions:      auctions,
		NextAuctionId: nextAuctionID,
	}
}

// DefaultGenesisState returns the default GenesisState instance.
func DefaultGenesisState() *GenesisState {
	return &GenesisState{
		Params:        DefaultParams(),
		Auctions:      []Auction{},
		NextAuctionId: 1,
	}
}

// Validate performs basic validation of the auction module genesis state.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	if gs.NextAuctionId == 0 {
		return fmt.Errorf("next auction id must be positive")
	}

	seen := make(map[uint64]struct{}, len(gs.Auctions))
	bound := make(map[string]uint64, 2*len(gs.Auctions))
	for _, auction := range gs.Auctions {
		if err := auction.Validate(); err != nil {
			return err
		}

		if auction.Id == 0 || auction.Id >= gs.NextAuctionId {
			return fmt.Errorf("auction id %d outside of [1, %d)", auction.Id, gs.NextAuctionId)
		}

		if _, ok := seen[auction.Id]; ok {
			return fmt.Errorf("duplicate auction id %d", auction.Id)
		}
		seen[auction.Id] = struct{}{}

		for _, holder := range []string{auction.ItemHolder.String(), auction.CurrencyHolder.String()} {
			if other, ok := bound[holder]; ok {
				return fmt.Errorf("holder %s backs auctions %d and %d", holder, other, auction.Id)
			}
			bound[holder] = auction.Id
		}
	}

	return nil
}

// GetGenesisStateFromAppState returns x/auction GenesisState given raw application
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
