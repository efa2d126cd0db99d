package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/skip-mev/escrow-auction/x/auction/types"
)

var _ types.MsgServer = MsgServer{}

// MsgServer is the wrapper for the auction module's msg service. Every handler
// runs against a cached context that is written back only on success, so a
// failed message leaves records, balances and events untouched.
type MsgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the auction MsgServer interface.
func NewMsgServerImpl(keeper Keeper) *MsgServer {
	return &MsgServer{Keeper: keeper}
}

func (m MsgServer) CreateAuction(goCtx context.Context, msg *types.MsgCreateAuction) (*types.MsgCreateAuctionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	// These should never return an error because the addresses were validated
	// when the message was ingressed.
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		return nil, err
	}
	itemHolder, err := sdk.AccAddressFromBech32(msg.ItemHolder)
	if err != nil {
		return nil, err
	}
	currencyHolder, err := sdk.AccAddressFromBech32(msg.CurrencyHolder)
	if err != nil {
		return nil, err
	}

	var id uint64
	err = m.atomically(ctx, func(cacheCtx sdk.Context) error {
		id, err = m.Keeper.CreateAuction(cacheCtx, seller, itemHolder, currencyHolder, msg.StartPrice)
		if err != nil {
			return err
		}

		cacheCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeCreateAuction,
				sdk.NewAttribute(types.AttributeKeyAuctionID, strconv.FormatUint(id, 10)),
				sdk.NewAttribute(types.AttributeKeySeller, msg.Seller),
				sdk.NewAttribute(types.AttributeKeyPrice, strconv.FormatUint(msg.StartPrice, 10)),
			),
		)

		return nil
	})
	if err != nil {
		return nil, err
	}

	m.Logger(ctx).Info("auction created", "auction_id", id, "seller", msg.Seller, "start_price", msg.StartPrice)

	return &types.MsgCreateAuctionResponse{AuctionId: id}, nil
}

func (m MsgServer) Bid(goCtx context.Context, msg *types.MsgBid) (*types.MsgBidResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	bid, err := msg.BidInfo()
	if err != nil {
		return nil, err
	}

	var refunded bool
	err = m.atomically(ctx, func(cacheCtx sdk.Context) error {
		refunded, err = m.Keeper.PlaceBid(cacheCtx, bid)
		if err != nil {
			return err
		}

		cacheCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeBid,
				sdk.NewAttribute(types.AttributeKeyAuctionID, strconv.FormatUint(bid.AuctionID, 10)),
				sdk.NewAttribute(types.AttributeKeyBidder, msg.Bidder),
				sdk.NewAttribute(types.AttributeKeyPrice, strconv.FormatUint(bid.Price, 10)),
				sdk.NewAttribute(types.AttributeKeyRefundReceiver, msg.Funding),
			),
		)

		return nil
	})
	if err != nil {
		return nil, err
	}

	m.Logger(ctx).Debug("bid accepted", "auction_id", bid.AuctionID, "bidder", msg.Bidder, "price", bid.Price, "refunded", refunded)

	return &types.MsgBidResponse{Refunded: refunded}, nil
}

func (m MsgServer) CloseAuction(goCtx context.Context, msg *types.MsgCloseAuction) (*types.MsgCloseAuctionResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	info, err := msg.CloseInfo()
	if err != nil {
		return nil, err
	}

	var settlement types.Settlement
	err = m.atomically(ctx, func(cacheCtx sdk.Context) error {
		settlement, err = m.Keeper.CloseAuction(cacheCtx, info)
		if err != nil {
			return err
		}

		auction, err := m.GetAuction(cacheCtx, info.AuctionID)
		if err != nil {
			return err
		}

		cacheCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeCloseAuction,
				sdk.NewAttribute(types.AttributeKeyAuctionID, strconv.FormatUint(info.AuctionID, 10)),
				sdk.NewAttribute(types.AttributeKeySeller, msg.Seller),
				sdk.NewAttribute(types.AttributeKeyWinner, auction.Bidder.String()),
				sdk.NewAttribute(types.AttributeKeyPrice, strconv.FormatUint(auction.Price, 10)),
				sdk.NewAttribute(types.AttributeKeySettlement, settlement.String()),
			),
		)

		return nil
	})
	if err != nil {
		return nil, err
	}

	m.Logger(ctx).Info("auction closed", "auction_id", info.AuctionID, "settlement", settlement.String())

	return &types.MsgCloseAuctionResponse{Settlement: settlement}, nil
}

func (m MsgServer) UpdateParams(goCtx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	// ensure that the message signer is the authority
	if msg.Authority != m.Keeper.GetAuthority() {
		return nil, errors.Wrapf(
			types.ErrUnauthorizedSigner,
			"this message can only be executed by the authority; expected %s, got %s",
			m.Keeper.GetAuthority(),
			msg.Authority,
		)
	}

	if err := msg.Params.Validate(); err != nil {
		return nil, err
	}

	if err := m.Keeper.SetParams(ctx, msg.Params); err != nil {
		return nil, err
	}

	return &types.MsgUpdateParamsResponse{}, nil
}

// atomically runs fn against a branch of ctx and commits the branch, events
// included, only when fn succeeds.
func (m MsgServer) atomically(ctx sdk.Context, fn func(cacheCtx sdk.Context) error) error {
	cacheCtx, write := ctx.CacheContext()
	if err := fn(cacheCtx); err != nil {
		return err
	}

	write()
	return nil
}
