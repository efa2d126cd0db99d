package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName is the name of the token module
	ModuleName = "token"

	// StoreKey is the default store key for the token module
	StoreKey = ModuleName
)

const (
	prefixHolders = iota + 1
)

// KeyHolders is the store prefix for balance records.
var KeyHolders = []byte{prefixHolders}

// HolderKey returns the key of a balance record under KeyHolders.
func HolderKey(addr sdk.AccAddress) []byte {
	return address.MustLengthPrefix(addr)
}
