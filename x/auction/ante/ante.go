package ante

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/skip-mev/escrow-auction/x/auction/types"
)

type (
	// AnteHandler checks a message and the accounts that authenticated it
	// before the message is delivered.
	AnteHandler func(ctx sdk.Context, msg types.Msg, signers []sdk.AccAddress) (sdk.Context, error)

	// AnteDecorator is a single link of an AnteHandler chain.
	AnteDecorator interface {
		AnteHandle(ctx sdk.Context, msg types.Msg, signers []sdk.AccAddress, next AnteHandler) (sdk.Context, error)
	}

	// AuctionKeeper is an interface that defines the methods required to interact with the
	// auction keeper.
	AuctionKeeper interface {
		GetAuction(ctx sdk.Context, id uint64) (types.Auction, error)
		ValidateBid(ctx sdk.Context, auction types.Auction, bid types.BidInfo) error
		ValidateClose(ctx sdk.Context, auction types.Auction, info types.CloseInfo) error
	}
)

// ChainAnteDecorators chains decorators into a single AnteHandler. The last
// decorator is followed by a no-op terminator.
func ChainAnteDecorators(decorators ...AnteDecorator) AnteHandler {
	if len(decorators) == 0 {
		return func(ctx sdk.Context, _ types.Msg, _ []sdk.AccAddress) (sdk.Context, error) {
			return ctx, nil
		}
	}

	next := ChainAnteDecorators(decorators[1:]...)
	return func(ctx sdk.Context, msg types.Msg, signers []sdk.AccAddress) (sdk.Context, error) {
		return decorators[0].AnteHandle(ctx, msg, signers, next)
	}
}

// NewAnteHandler returns the default chain: stateless validation, signer
// authentication and auction state checks.
func NewAnteHandler(ak AuctionKeeper, tk types.TokenKeeper) AnteHandler {
	return ChainAnteDecorators(
		ValidateBasicDecorator{},
		NewSignerDecorator(),
		NewAuctionDecorator(ak, tk),
	)
}

// ValidateBasicDecorator runs the message's stateless checks.
type ValidateBasicDecorator struct{}

func (ValidateBasicDecorator) AnteHandle(ctx sdk.Context, msg types.Msg, signers []sdk.AccAddress, next AnteHandler) (sdk.Context, error) {
	if err := msg.ValidateBasic(); err != nil {
		return ctx, err
	}

	return next(ctx, msg, signers)
}

// SignerDecorator ensures every signer a message requires authenticated it.
type SignerDecorator struct{}

func NewSignerDecorator() SignerDecorator {
	return SignerDecorator{}
}

func (SignerDecorator) AnteHandle(ctx sdk.Context, msg types.Msg, signers []sdk.AccAddress, next AnteHandler) (sdk.Context, error) {
	authenticated := make(map[string]struct{}, len(signers))
	for _, signer := range signers {
		authenticated[signer.String()] = struct{}{}
	}

	for _, required := range msg.GetSigners() {
		if _, ok := authenticated[required.String()]; !ok {
			return ctx, errors.Wrapf(types.ErrUnauthorizedSigner, "missing signature of %s", required)
		}
	}

	return next(ctx, msg, signers)
}

// AuctionDecorator rejects bids and close instructions that cannot succeed
// against the current auction state before they are delivered.
type AuctionDecorator struct {
	auctionKeeper AuctionKeeper
	tokenKeeper   types.TokenKeeper
}

func NewAuctionDecorator(ak AuctionKeeper, tk types.TokenKeeper) AuctionDecorator {
	return AuctionDecorator{
		auctionKeeper: ak,
		tokenKeeper:   tk,
	}
}

func (ad AuctionDecorator) AnteHandle(ctx sdk.Context, msg types.Msg, signers []sdk.AccAddress, next AnteHandler) (sdk.Context, error) {
	switch msg := msg.(type) {
	case *types.MsgBid:
		bid, err := msg.BidInfo()
		if err != nil {
			return ctx, err
		}

		if err := ad.ValidateBid(ctx, bid); err != nil {
			return ctx, errors.Wrap(err, "failed to validate auction bid")
		}

	case *types.MsgCloseAuction:
		info, err := msg.CloseInfo()
		if err != nil {
			return ctx, err
		}

		auction, err := ad.auctionKeeper.GetAuction(ctx, info.AuctionID)
		if err != nil {
			return ctx, err
		}

		if err := ad.auctionKeeper.ValidateClose(ctx, auction, info); err != nil {
			return ctx, errors.Wrap(err, "failed to validate close instruction")
		}
	}

	return next(ctx, msg, signers)
}

// ValidateBid checks the bid against the auction and that the funding holder
// can cover the price.
func (ad AuctionDecorator) ValidateBid(ctx sdk.Context, bid types.BidInfo) error {
	auction, err := ad.auctionKeeper.GetAuction(ctx, bid.AuctionID)
	if err != nil {
		return err
	}

	if err := ad.auctionKeeper.ValidateBid(ctx, auction, bid); err != nil {
		return err
	}

	funding, err := ad.tokenKeeper.GetHolder(ctx, bid.Funding)
	if err != nil {
		return err
	}

	if funding.Amount.LT(math.NewIntFromUint64(bid.Price)) {
		return errors.Wrapf(
			types.ErrInsufficientFunds,
			"funding holder %s has %s%s, bid is %d",
			bid.Funding,
			funding.Amount,
			funding.Denom,
			bid.Price,
		)
	}

	return nil
}
