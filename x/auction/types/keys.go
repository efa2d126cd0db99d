package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName is the name of the auction module
	ModuleName = "auction"

	// StoreKey is the default store key for the auction module
	StoreKey = ModuleName

	// RouterKey is the message route for the auction module
	RouterKey = ModuleName

	// QuerierRoute is the querier route for the auction module
	QuerierRoute = ModuleName
)

const (
	prefixParams = iota + 1
	prefixAuctions
	prefixNextAuctionID
	prefixHolderAuctions
)

var (
	// KeyParams is the store key for the auction module's parameters.
	KeyParams = []byte{prefixParams}
	// KeyAuctions is the store prefix for auction records.
	KeyAuctions = []byte{prefixAuctions}
	// KeyNextAuctionID is the store key for the next auction id.
	KeyNextAuctionID = []byte{prefixNextAuctionID}
	// KeyHolderAuctions is the store prefix binding escrow holders to the
	// auction they back.
	KeyHolderAuctions = []byte{prefixHolderAuctions}
)

// AuctionKey returns the key of an auction record under KeyAuctions.
func AuctionKey(id uint64) []byte {
	return sdk.Uint64ToBigEndian(id)
}

// HolderAuctionKey returns the key of an escrow holder under KeyHolderAuctions.
func HolderAuctionKey(holder sdk.AccAddress) []byte {
	return address.MustLengthPrefix(holder)
}
