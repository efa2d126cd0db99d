package testutils

import (
	"math/rand"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	tokentypes "github.com/skip-mev/escrow-auction/x/token/types"
)

// DefaultDenom is the denomination used by test holders unless stated otherwise.
const DefaultDenom = "stake"

type Account struct {
	PrivKey cryptotypes.PrivKey
	PubKey  cryptotypes.PubKey
	Address sdk.AccAddress
}

func (acc Account) Equals(acc2 Account) bool {
	return acc.Address.Equals(acc2.Address)
}

func RandomAccounts(r *rand.Rand, n int) []Account {
	accs := make([]Account, n)

	for i := 0; i < n; i++ {
		pkSeed := make([]byte, 15)
		r.Read(pkSeed)

		accs[i].PrivKey = secp256k1.GenPrivKeyFromSecret(pkSeed)
		accs[i].PubKey = accs[i].PrivKey.PubKey()
		accs[i].Address = sdk.AccAddress(accs[i].PubKey.Address())
	}

	return accs
}

// RandomAddresses returns n fresh addresses that own no key material.
func RandomAddresses(r *rand.Rand, n int) []sdk.AccAddress {
	addrs := make([]sdk.AccAddress, n)
	for i, acc := range RandomAccounts(r, n) {
		addrs[i] = acc.Address
	}

	return addrs
}

// NewHolder builds a holder of DefaultDenom with the given balance.
func NewHolder(addr, owner sdk.AccAddress, amount int64) tokentypes.Holder {
	holder := tokentypes.NewHolder(addr, owner, DefaultDenom)
	holder.Amount = math.NewInt(amount)
	return holder
}
