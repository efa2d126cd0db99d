package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/skip-mev/escrow-auction/x/auction/types"
)

// InitGenesis initializes the auction module's state from a given genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, gs types.GenesisState) {
	// Set the auction module's parameters.
	if err := k.SetParams(ctx, gs.Params); err != nil {
		panic(err)
	}

	for _, auction := range gs.Auctions {
		if err := k.SetAuction(ctx, auction); err != nil {
			panic(err)
		}
	}

	k.SetNextAuctionID(ctx, gs.NextAuctionId)
}

// ExportGenesis returns a GenesisState for a given context.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	// Get the auction module's parameters.
	params, err := k.GetParams(ctx)
	if err != nil {
		panic(err)
	}

	auctions, err := k.GetAuctions(ctx)
	if err != nil {
		panic(err)
	}

	return types.NewGenesisState(params, auctions, k.GetNextAuctionID(ctx))
}
