package types

import (
	"context"
)

// MsgServer is the server API for the auction module's messages.
type MsgServer interface {
	CreateAuction(context.Context, *MsgCreateAuction) (*MsgCreateAuctionResponse, error)
	Bid(context.Context, *MsgBid) (*MsgBidResponse, error)
	CloseAuction(context.Context, *MsgCloseAuction) (*MsgCloseAuctionResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// QueryServer is the server API for the auction module's queries.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Auction(context.Context, *QueryAuctionRequest) (*QueryAuctionResponse, error)
	Auctions(context.Context, *QueryAuctionsRequest) (*QueryAuctionsResponse, error)
	AuctionsBySeller(context.Context, *QueryAuctionsBySellerRequest) (*QueryAuctionsResponse, error)
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryAuctionRequest struct {
	AuctionId uint64 `json:"auction_id"`
}

type QueryAuctionResponse struct {
	Auction Auction `json:"auction"`
	// EscrowAuthority is the derived authority owning the auction's holders.
	EscrowAuthority string `json:"escrow_authority"`
}

type QueryAuctionsRequest struct {
	// OngoingOnly filters out settled auctions.
	OngoingOnly bool `json:"ongoing_only"`
}

type QueryAuctionsBySellerRequest struct {
	Seller      string `json:"seller"`
	OngoingOnly bool   `json:"ongoing_only"`
}

type QueryAuctionsResponse struct {
	Auctions []Auction `json:"auctions"`
}
