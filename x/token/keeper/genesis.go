package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/skip-mev/escrow-auction/x/token/types"
)

// InitGenesis initializes the token module's state from a given genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, gs types.GenesisState) {
	for _, holder := range gs.Holders {
		if err := k.CreateHolder(ctx, holder); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns a GenesisState for a given context.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	holders, err := k.GetHolders(ctx)
	if err != nil {
		panic(err)
	}

	return types.NewGenesisState(holders)
}
