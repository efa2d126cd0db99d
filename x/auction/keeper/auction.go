package keeper

import (
	"strconv"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/skip-mev/escrow-auction/x/auction/types"
)

// CreateAuction opens a new auction for seller over two escrow holders, both of
// which must already be owned by the seller's derived authority. The item is
// expected to be deposited in itemHolder beforehand. It returns the new id.
func (k Keeper) CreateAuction(
	ctx sdk.Context,
	seller, itemHolder, currencyHolder sdk.AccAddress,
	startPrice uint64,
) (uint64, error) {
	if itemHolder.Equals(currencyHolder) {
		return 0, errors.Wrap(types.ErrInvalidAuction, "item and currency holders must differ")
	}

	for _, holder := range []sdk.AccAddress{itemHolder, currencyHolder} {
		if id, ok := k.GetHolderAuction(ctx, holder); ok {
			return 0, errors.Wrapf(types.ErrInvalidAuction, "holder %s already backs auction %d", holder, id)
		}
	}

	authority := types.DeriveAuthority(seller)

	if _, err := k.holderOwnedBy(ctx, itemHolder, authority.Address); err != nil {
		return 0, errors.Wrap(err, "item holder is not escrowed")
	}

	if _, err := k.holderOwnedBy(ctx, currencyHolder, authority.Address); err != nil {
		return 0, errors.Wrap(err, "currency holder is not escrowed")
	}

	auction := types.NewAuction(k.allocateAuctionID(ctx), seller, itemHolder, currencyHolder, startPrice)
	if err := k.SetAuction(ctx, auction); err != nil {
		return 0, err
	}

	return auction.Id, nil
}

// ValidateBid checks that bid may replace the current highest bid of auction.
// It performs no writes.
func (k Keeper) ValidateBid(ctx sdk.Context, auction types.Auction, bid types.BidInfo) error {
	if !auction.Ongoing {
		return errors.Wrapf(types.ErrInvalidState, "auction %d is closed", auction.Id)
	}

	authority := types.DeriveAuthority(auction.Seller)

	// The escrow authority never signs directly, so it cannot fund a bid.
	if bid.FundingAuthority.Equals(authority.Address) {
		return errors.Wrap(types.ErrAuthorizationMismatch, "bid cannot be funded from escrow")
	}

	if _, err := k.holderOwnedBy(ctx, bid.Funding, bid.FundingAuthority); err != nil {
		return errors.Wrap(err, "invalid funding holder")
	}

	if !bid.CurrencyHolder.Equals(auction.CurrencyHolder) {
		return errors.Wrapf(
			types.ErrAuthorizationMismatch,
			"currency holder %s does not match auction currency holder %s",
			bid.CurrencyHolder,
			auction.CurrencyHolder,
		)
	}

	if !bid.CurrencyHolderAuthority.Equals(authority.Address) {
		return errors.Wrapf(
			types.ErrAuthorizationMismatch,
			"currency holder authority %s does not match escrow authority %s",
			bid.CurrencyHolderAuthority,
			authority.Address,
		)
	}

	if _, err := k.holderOwnedBy(ctx, bid.CurrencyHolder, bid.CurrencyHolderAuthority); err != nil {
		return errors.Wrap(err, "invalid currency holder")
	}

	if !bid.PriorRefundReceiver.Equals(auction.RefundReceiver) {
		return errors.Wrapf(
			types.ErrAuthorizationMismatch,
			"refund receiver %s does not match the outbid refund receiver %s",
			bid.PriorRefundReceiver,
			auction.RefundReceiver,
		)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}

	if params.EnforceBidFloor {
		// The asking price may be met by the first bid; later bids must beat it.
		if auction.HasBid() && bid.Price <= auction.Price {
			return errors.Wrapf(types.ErrBidTooLow, "bid (%d) must exceed the highest bid (%d)", bid.Price, auction.Price)
		}

		if !auction.HasBid() && bid.Price < auction.Price {
			return errors.Wrapf(types.ErrBidTooLow, "bid (%d) is below the asking price (%d)", bid.Price, auction.Price)
		}
	}

	return nil
}

// PlaceBid replaces the highest bid of an auction. The superseded bid is
// refunded out of escrow before the new bid is deposited, then the record is
// updated in place. It reports whether a refund was made.
func (k Keeper) PlaceBid(ctx sdk.Context, bid types.BidInfo) (bool, error) {
	auction, err := k.GetAuction(ctx, bid.AuctionID)
	if err != nil {
		return false, err
	}

	if err := k.ValidateBid(ctx, auction, bid); err != nil {
		return false, err
	}

	refunded := false
	if auction.HasBid() {
		amount := math.NewIntFromUint64(auction.Price)
		if err := k.releaseEscrow(ctx, auction.Seller, auction.CurrencyHolder, bid.PriorRefundReceiver, amount); err != nil {
			return false, errors.Wrap(err, "failed to refund the outbid bidder")
		}

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRefund,
				sdk.NewAttribute(types.AttributeKeyAuctionID, strconv.FormatUint(auction.Id, 10)),
				sdk.NewAttribute(types.AttributeKeyRefundReceiver, bid.PriorRefundReceiver.String()),
				sdk.NewAttribute(types.AttributeKeyPrice, strconv.FormatUint(auction.Price, 10)),
			),
		)
		refunded = true
	}

	if err := k.depositEscrow(ctx, bid.Funding, bid.FundingAuthority, auction.CurrencyHolder, math.NewIntFromUint64(bid.Price)); err != nil {
		return false, errors.Wrap(err, "failed to escrow the bid")
	}

	auction.Bidder = bid.Bidder
	auction.RefundReceiver = bid.Funding
	auction.Price = bid.Price

	if err := k.SetAuction(ctx, auction); err != nil {
		return false, err
	}

	return refunded, nil
}

// ValidateClose checks that the accounts of a close instruction match the
// auction. It performs no writes.
func (k Keeper) ValidateClose(ctx sdk.Context, auction types.Auction, info types.CloseInfo) error {
	if !auction.Ongoing {
		return errors.Wrapf(types.ErrInvalidState, "auction %d is already closed", auction.Id)
	}

	if !info.Seller.Equals(auction.Seller) {
		return errors.Wrapf(types.ErrAuthorizationMismatch, "only the seller %s can close auction %d", auction.Seller, auction.Id)
	}

	if !info.ItemHolder.Equals(auction.ItemHolder) {
		return errors.Wrapf(types.ErrAuthorizationMismatch, "item holder %s does not match %s", info.ItemHolder, auction.ItemHolder)
	}

	if !info.CurrencyHolder.Equals(auction.CurrencyHolder) {
		return errors.Wrapf(types.ErrAuthorizationMismatch, "currency holder %s does not match %s", info.CurrencyHolder, auction.CurrencyHolder)
	}

	authority := types.DeriveAuthority(auction.Seller)
	for _, claimed := range []sdk.AccAddress{info.ItemHolderAuthority, info.CurrencyHolderAuthority} {
		if !claimed.Equals(authority.Address) {
			return errors.Wrapf(types.ErrAuthorizationMismatch, "holder authority %s does not match escrow authority %s", claimed, authority.Address)
		}
	}

	if _, err := k.holderOwnedBy(ctx, info.ItemHolder, info.ItemHolderAuthority); err != nil {
		return errors.Wrap(err, "invalid item holder")
	}

	if _, err := k.holderOwnedBy(ctx, info.CurrencyHolder, info.CurrencyHolderAuthority); err != nil {
		return errors.Wrap(err, "invalid currency holder")
	}

	if _, err := k.holderOwnedBy(ctx, info.ItemReceiver, auction.Bidder); err != nil {
		return errors.Wrap(err, "item receiver must belong to the winning bidder")
	}

	if _, err := k.holderOwnedBy(ctx, info.CurrencyReceiver, auction.Seller); err != nil {
		return errors.Wrap(err, "currency receiver must belong to the seller")
	}

	return nil
}

// CloseAuction settles an auction: the whole item escrow goes to the winning
// bidder and, when the currency escrow covers the price, exactly the price goes
// to the seller. The auction is closed either way and the outcome is returned.
func (k Keeper) CloseAuction(ctx sdk.Context, info types.CloseInfo) (types.Settlement, error) {
	auction, err := k.GetAuction(ctx, info.AuctionID)
	if err != nil {
		return types.SettlementUnspecified, err
	}

	if err := k.ValidateClose(ctx, auction, info); err != nil {
		return types.SettlementUnspecified, err
	}

	item, err := k.tokenKeeper.GetHolder(ctx, auction.ItemHolder)
	if err != nil {
		return types.SettlementUnspecified, err
	}

	if err := k.releaseEscrow(ctx, auction.Seller, auction.ItemHolder, info.ItemReceiver, item.Amount); err != nil {
		return types.SettlementUnspecified, errors.Wrap(err, "failed to deliver the item")
	}

	currency, err := k.tokenKeeper.GetHolder(ctx, auction.CurrencyHolder)
	if err != nil {
		return types.SettlementUnspecified, err
	}

	settlement := types.SettlementPartial
	price := math.NewIntFromUint64(auction.Price)
	if currency.Amount.GTE(price) {
		if err := k.releaseEscrow(ctx, auction.Seller, auction.CurrencyHolder, info.CurrencyReceiver, price); err != nil {
			return types.SettlementUnspecified, errors.Wrap(err, "failed to pay the seller")
		}
		settlement = types.SettlementFull
	} else {
		k.Logger(ctx).Info(
			"currency escrow short of price; seller not paid",
			"auction_id", auction.Id,
			"escrowed", currency.Amount.String(),
			"price", auction.Price,
		)
	}

	auction.Ongoing = false
	if err := k.SetAuction(ctx, auction); err != nil {
		return types.SettlementUnspecified, err
	}

	return settlement, nil
}
