package keeper_test

import (
	"github.com/skip-mev/escrow-auction/x/auction/types"
)

func (s *KeeperTestSuite) TestGenesisRoundTrip() {
	ann, annFunding, _ := s.bidder("ann", 1000)

	id := s.createAuction(100)
	_, err := s.auctionkeeper.PlaceBid(s.ctx, s.bidInfo(id, ann, annFunding, 150, nil))
	s.Require().NoError(err)
	s.Require().NoError(s.auctionkeeper.SetParams(s.ctx, types.NewParams(false)))

	exported := s.auctionkeeper.ExportGenesis(s.ctx)
	s.Require().NoError(exported.Validate())
	s.Require().Equal(uint64(2), exported.NextAuctionId)
	s.Require().Len(exported.Auctions, 1)

	s.SetupTest()
	s.auctionkeeper.InitGenesis(s.ctx, *exported)

	s.Require().Equal(exported, s.auctionkeeper.ExportGenesis(s.ctx))

	auction, err := s.auctionkeeper.GetAuction(s.ctx, id)
	s.Require().NoError(err)
	s.Require().Equal(ann, auction.Bidder)
	s.Require().Equal(annFunding, auction.RefundReceiver)
	s.Require().Equal(uint64(150), auction.Price)

	// imported holders stay bound to their auction
	_, err = s.auctionkeeper.CreateAuction(s.ctx, s.seller, s.itemHolder, s.currencyHolder, 10)
	s.Require().ErrorIs(err, types.ErrInvalidAuction)

	// ids continue after the imported ones
	next, _, _ := s.createEscrowedAuction(10)
	s.Require().Equal(id+1, next)
}
