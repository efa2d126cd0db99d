package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"

	tokentypes "github.com/skip-mev/escrow-auction/x/token/types"
)

// Authority is the custodial identity the auction module signs escrow
// transfers with. It has no key: the address is derived from the module name
// and the seller, and Seeds are the proof the token module re-derives it from.
type Authority struct {
	Address sdk.AccAddress
	Seeds   [][]byte
}

// DeriveAuthority returns the escrow authority of seller. It is a pure function
// of the seller address.
func DeriveAuthority(seller sdk.AccAddress) Authority {
	seeds := [][]byte{seller.Bytes()}

	return Authority{
		Address: sdk.AccAddress(address.Module(ModuleName, seeds...)),
		Seeds:   seeds,
	}
}

// Signer returns the capability the token module accepts for transfers out of
// holders owned by the authority.
func (a Authority) Signer() tokentypes.Signer {
	return tokentypes.NewDerivedSigner(ModuleName, a.Seeds...)
}
