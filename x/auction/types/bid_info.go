package types

import sdk "github.com/cosmos/cosmos-sdk/types"

// BidInfo defines the accounts and price of a bid on an auction.
type BidInfo struct {
	// AuctionID is the auction being bid on.
	AuctionID uint64
	// Bidder is the address of the bidder.
	Bidder sdk.AccAddress
	// Price is the new highest price offered.
	Price uint64
	// Funding is the bidder's balance record the price is drawn from.
	Funding sdk.AccAddress
	// FundingAuthority is the owner of Funding and signs the deposit.
	FundingAuthority sdk.AccAddress
	// CurrencyHolder is the auction's currency escrow.
	CurrencyHolder sdk.AccAddress
	// CurrencyHolderAuthority is the claimed owner of CurrencyHolder.
	CurrencyHolderAuthority sdk.AccAddress
	// PriorRefundReceiver is the balance record the superseded bid is refunded to.
	// It must be empty for the first bid.
	PriorRefundReceiver sdk.AccAddress
}

// CloseInfo defines the accounts needed to settle an auction.
type CloseInfo struct {
	// AuctionID is the auction being closed.
	AuctionID uint64
	// Seller must match the auction's seller.
	Seller sdk.AccAddress
	// ItemHolder is the auction's item escrow.
	ItemHolder sdk.AccAddress
	// ItemHolderAuthority is the claimed owner of ItemHolder.
	ItemHolderAuthority sdk.AccAddress
	// ItemReceiver is a balance record owned by the winning bidder.
	ItemReceiver sdk.AccAddress
	// CurrencyHolder is the auction's currency escrow.
	CurrencyHolder sdk.AccAddress
	// CurrencyHolderAuthority is the claimed owner of CurrencyHolder.
	CurrencyHolderAuthority sdk.AccAddress
	// CurrencyReceiver is the seller's payout balance record.
	CurrencyReceiver sdk.AccAddress
}
