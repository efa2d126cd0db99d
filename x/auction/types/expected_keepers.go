package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	tokentypes "github.com/skip-mev/escrow-auction/x/token/types"
)

// TokenKeeper defines the contract required for token transfer APIs.
type TokenKeeper interface {
	GetHolder(ctx context.Context, addr sdk.AccAddress) (tokentypes.Holder, error)
	Transfer(ctx context.Context, from, to sdk.AccAddress, signer tokentypes.Signer, amount math.Int) error
}
