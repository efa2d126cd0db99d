package keeper

import (
	"context"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/skip-mev/escrow-auction/x/auction/types"
)

var _ types.QueryServer = QueryServer{}

// QueryServer defines the auction module's gRPC querier service.
type QueryServer struct {
	keeper Keeper
}

// NewQueryServer creates a new gRPC query server for the auction module.
func NewQueryServer(keeper Keeper) *QueryServer {
	return &QueryServer{keeper: keeper}
}

// Params queries all parameters of the auction module.
func (q QueryServer) Params(goCtx context.Context, _ *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	params, err := q.keeper.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryParamsResponse{Params: params}, nil
}

// Auction queries a single auction by id along with its escrow authority.
func (q QueryServer) Auction(goCtx context.Context, req *types.QueryAuctionRequest) (*types.QueryAuctionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	auction, err := q.keeper.GetAuction(ctx, req.AuctionId)
	if err != nil {
		return nil, err
	}

	return &types.QueryAuctionResponse{
		Auction:         auction,
		EscrowAuthority: types.DeriveAuthority(auction.Seller).Address.String(),
	}, nil
}

// Auctions queries every auction in ascending id order.
func (q QueryServer) Auctions(goCtx context.Context, req *types.QueryAuctionsRequest) (*types.QueryAuctionsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	return q.collect(ctx, func(auction types.Auction) bool {
		return !req.OngoingOnly || auction.Ongoing
	})
}

// AuctionsBySeller queries the auctions created by a seller.
func (q QueryServer) AuctionsBySeller(goCtx context.Context, req *types.QueryAuctionsBySellerRequest) (*types.QueryAuctionsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	seller, err := sdk.AccAddressFromBech32(req.Seller)
	if err != nil {
		return nil, errors.Wrap(err, "invalid seller address")
	}

	return q.collect(ctx, func(auction types.Auction) bool {
		return auction.Seller.Equals(seller) && (!req.OngoingOnly || auction.Ongoing)
	})
}

func (q QueryServer) collect(ctx sdk.Context, keep func(types.Auction) bool) (*types.QueryAuctionsResponse, error) {
	auctions := []types.Auction{}
	err := q.keeper.IterateAuctions(ctx, func(auction types.Auction) bool {
		if keep(auction) {
			auctions = append(auctions, auction)
		}
		return false
	})
	if err != nil {
		return nil, err
	}

	return &types.QueryAuctionsResponse{Auctions: auctions}, nil
}
