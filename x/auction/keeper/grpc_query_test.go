package keeper_test

import (
	"github.com/skip-mev/escrow-auction/x/auction/keeper"
	"github.com/skip-mev/escrow-auction/x/auction/types"
)

func (s *KeeperTestSuite) TestQueryParams() {
	s.Run("can query module params", func() {
		params, err := s.auctionkeeper.GetParams(s.ctx)
		s.Require().NoError(err)

		res, err := keeper.NewQueryServer(s.auctionkeeper).Params(s.ctx, &types.QueryParamsRequest{})
		s.Require().NoError(err)
		s.Require().Equal(params, res.Params)
	})
}

func (s *KeeperTestSuite) TestQueryAuctions() {
	queryServer := keeper.NewQueryServer(s.auctionkeeper)

	first := s.createAuction(10)
	second, _, _ := s.createEscrowedAuction(20)

	other := testAddr("other_seller")
	otherEscrow := s.addHolder("other_escrow", other, 0)
	closed := types.NewAuction(s.auctionkeeper.GetNextAuctionID(s.ctx), other, otherEscrow, s.currencyReceiver, 5)
	closed.Ongoing = false
	s.Require().NoError(s.auctionkeeper.SetAuction(s.ctx, closed))

	s.Run("single auction with its escrow authority", func() {
		res, err := queryServer.Auction(s.ctx, &types.QueryAuctionRequest{AuctionId: second})
		s.Require().NoError(err)
		s.Require().Equal(second, res.Auction.Id)
		s.Require().Equal(uint64(20), res.Auction.Price)
		s.Require().Equal(s.escrow.String(), res.EscrowAuthority)
	})

	s.Run("unknown auction", func() {
		_, err := queryServer.Auction(s.ctx, &types.QueryAuctionRequest{AuctionId: 99})
		s.Require().ErrorIs(err, types.ErrAuctionNotFound)
	})

	s.Run("all auctions", func() {
		res, err := queryServer.Auctions(s.ctx, &types.QueryAuctionsRequest{})
		s.Require().NoError(err)
		s.Require().Len(res.Auctions, 3)
		s.Require().Equal(first, res.Auctions[0].Id)
	})

	s.Run("ongoing auctions", func() {
		res, err := queryServer.Auctions(s.ctx, &types.QueryAuctionsRequest{OngoingOnly: true})
		s.Require().NoError(err)
		s.Require().Len(res.Auctions, 2)
	})

	s.Run("auctions by seller", func() {
		res, err := queryServer.AuctionsBySeller(s.ctx, &types.QueryAuctionsBySellerRequest{Seller: other.String()})
		s.Require().NoError(err)
		s.Require().Len(res.Auctions, 1)
		s.Require().Equal(closed.Id, res.Auctions[0].Id)

		res, err = queryServer.AuctionsBySeller(s.ctx, &types.QueryAuctionsBySellerRequest{Seller: other.String(), OngoingOnly: true})
		s.Require().NoError(err)
		s.Require().Empty(res.Auctions)
	})

	s.Run("invalid seller", func() {
		_, err := queryServer.AuctionsBySeller(s.ctx, &types.QueryAuctionsBySellerRequest{Seller: "nope"})
		s.Require().Error(err)
	})
}
