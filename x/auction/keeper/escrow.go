package keeper

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/skip-mev/escrow-auction/x/auction/types"
	tokentypes "github.com/skip-mev/escrow-auction/x/token/types"
)

// releaseEscrow moves amount out of an escrow holder of seller's auction,
// signed by the authority derived from seller.
func (k Keeper) releaseEscrow(ctx sdk.Context, seller, from, to sdk.AccAddress, amount math.Int) error {
	authority := types.DeriveAuthority(seller)

	return k.tokenKeeper.Transfer(ctx, from, to, authority.Signer(), amount)
}

// depositEscrow moves amount from a caller's holder into escrow, signed
// directly by the holder's owner.
func (k Keeper) depositEscrow(ctx sdk.Context, from, fromAuthority, to sdk.AccAddress, amount math.Int) error {
	return k.tokenKeeper.Transfer(ctx, from, to, tokentypes.NewDirectSigner(fromAuthority), amount)
}

// holderOwnedBy loads the balance record at addr and checks its recorded owner.
func (k Keeper) holderOwnedBy(ctx sdk.Context, addr, owner sdk.AccAddress) (tokentypes.Holder, error) {
	holder, err := k.tokenKeeper.GetHolder(ctx, addr)
	if err != nil {
		return tokentypes.Holder{}, err
	}

	if !holder.Owner.Equals(owner) {
		return tokentypes.Holder{}, errors.Wrapf(
			types.ErrAuthorizationMismatch,
			"holder %s is owned by %s, expected %s",
			addr,
			holder.Owner,
			owner,
		)
	}

	return holder, nil
}
