package keeper_test

import (
	"math/rand"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/skip-mev/escrow-auction/testutils"
	"github.com/skip-mev/escrow-auction/x/auction/types"
)

func (s *KeeperTestSuite) TestMsgUpdateParams() {
	rng := rand.New(rand.NewSource(time.Now().Unix()))
	account := testutils.RandomAccounts(rng, 1)[0]

	testCases := []struct {
		name string
		msg  *types.MsgUpdateParams

		pass      bool
		passBasic bool
	}{
		{
			name: "invalid authority address",
			msg: &types.MsgUpdateParams{
				Authority: "invalid",
				Params:    types.NewParams(false),
			},
			passBasic: false,
			pass:      false,
		},
		{
			name: "not the module authority",
			msg: &types.MsgUpdateParams{
				Authority: account.Address.String(),
				Params:    types.NewParams(false),
			},
			passBasic: true,
			pass:      false,
		},
		{
			name: "module authority",
			msg: &types.MsgUpdateParams{
				Authority: s.authorityAccount.String(),
				Params:    types.NewParams(false),
			},
			passBasic: true,
			pass:      true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if !tc.passBasic {
				s.Require().Error(tc.msg.ValidateBasic())
			} else {
				s.Require().NoError(tc.msg.ValidateBasic())
			}

			_, err := s.msgServer.UpdateParams(s.ctx, tc.msg)
			if tc.pass {
				s.Require().NoError(err)

				params, err := s.auctionkeeper.GetParams(s.ctx)
				s.Require().NoError(err)
				s.Require().Equal(tc.msg.Params, params)
			} else {
				s.Require().Error(err)
			}
		})
	}
}

func (s *KeeperTestSuite) TestMsgAuctionLifecycle() {
	ann, annFunding, _ := s.bidder("ann", 1000)
	bob, bobFunding, bobItem := s.bidder("bob", 1000)

	createRes, err := s.msgServer.CreateAuction(s.ctx, &types.MsgCreateAuction{
		Seller:         s.seller.String(),
		ItemHolder:     s.itemHolder.String(),
		CurrencyHolder: s.currencyHolder.String(),
		StartPrice:     100,
	})
	s.Require().NoError(err)
	s.Require().Equal(uint64(1), createRes.AuctionId)
	s.requireEvent(types.EventTypeCreateAuction, types.AttributeKeyAuctionID, "1")

	bid := func(bidder, funding, prior sdk.AccAddress, price uint64) (*types.MsgBidResponse, error) {
		msg := &types.MsgBid{
			AuctionId:               createRes.AuctionId,
			Bidder:                  bidder.String(),
			Price:                   price,
			Funding:                 funding.String(),
			FundingAuthority:        bidder.String(),
			CurrencyHolder:          s.currencyHolder.String(),
			CurrencyHolderAuthority: s.escrow.String(),
		}
		if !prior.Empty() {
			msg.PriorRefundReceiver = prior.String()
		}

		return s.msgServer.Bid(s.ctx, msg)
	}

	res, err := bid(ann, annFunding, nil, 100)
	s.Require().NoError(err)
	s.Require().False(res.Refunded)
	s.requireEvent(types.EventTypeBid, types.AttributeKeyBidder, ann.String())

	// a rejected bid leaves the auction untouched
	_, err = bid(bob, bobFunding, annFunding, 100)
	s.Require().ErrorIs(err, types.ErrBidTooLow)

	res, err = bid(bob, bobFunding, annFunding, 200)
	s.Require().NoError(err)
	s.Require().True(res.Refunded)
	s.requireEvent(types.EventTypeRefund, types.AttributeKeyRefundReceiver, annFunding.String())

	closeRes, err := s.msgServer.CloseAuction(s.ctx, &types.MsgCloseAuction{
		AuctionId:               createRes.AuctionId,
		Seller:                  s.seller.String(),
		ItemHolder:              s.itemHolder.String(),
		ItemHolderAuthority:     s.escrow.String(),
		ItemReceiver:            bobItem.String(),
		CurrencyHolder:          s.currencyHolder.String(),
		CurrencyHolderAuthority: s.escrow.String(),
		CurrencyReceiver:        s.currencyReceiver.String(),
	})
	s.Require().NoError(err)
	s.Require().Equal(types.SettlementFull, closeRes.Settlement)
	s.requireEvent(types.EventTypeCloseAuction, types.AttributeKeyWinner, bob.String())
	s.requireEvent(types.EventTypeCloseAuction, types.AttributeKeySettlement, "full")

	s.Require().Equal(int64(1000), s.balance(annFunding))
	s.Require().Equal(int64(800), s.balance(bobFunding))
	s.Require().Equal(int64(1), s.balance(bobItem))
	s.Require().Equal(int64(200), s.balance(s.currencyReceiver))
}

func (s *KeeperTestSuite) TestMsgCreateAuctionRejected() {
	_, err := s.msgServer.CreateAuction(s.ctx, &types.MsgCreateAuction{
		Seller:         s.seller.String(),
		ItemHolder:     s.currencyReceiver.String(),
		CurrencyHolder: s.currencyHolder.String(),
		StartPrice:     100,
	})
	s.Require().ErrorIs(err, types.ErrAuthorizationMismatch)

	// nothing is written and no event is emitted for a failed message
	s.Require().Equal(uint64(1), s.auctionkeeper.GetNextAuctionID(s.ctx))
	for _, event := range s.ctx.EventManager().Events() {
		s.Require().NotEqual(types.EventTypeCreateAuction, event.Type)
	}
}

func (s *KeeperTestSuite) requireEvent(eventType, key, value string) {
	for _, event := range s.ctx.EventManager().Events() {
		if event.Type != eventType {
			continue
		}

		for _, attr := range event.Attributes {
			if attr.Key == key && attr.Value == value {
				return
			}
		}
	}

	s.Failf("missing event", "no %s event with %s=%s", eventType, key, value)
}
