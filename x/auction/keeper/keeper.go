package keeper

import (
	"fmt"

	"cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/skip-mev/escrow-auction/x/auction/types"
)

type Keeper struct {
	cdc      *codec.LegacyAmino
	storeKey storetypes.StoreKey

	tokenKeeper types.TokenKeeper

	// The address that is capable of executing a MsgUpdateParams message.
	// Typically this will be the governance module's address.
	authority string
}

func NewKeeper(
	cdc *codec.LegacyAmino,
	storeKey storetypes.StoreKey,
	tokenKeeper types.TokenKeeper,
	authority string,
) Keeper {
	// Ensure that the authority address is valid.
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(err)
	}

	return Keeper{
		cdc:         cdc,
		storeKey:    storeKey,
		tokenKeeper: tokenKeeper,
		authority:   authority,
	}
}

// Logger returns a auction module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// GetAuthority returns the address that is capable of executing a MsgUpdateParams message.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// GetParams returns the auction module's parameters.
func (k Keeper) GetParams(ctx sdk.Context) (types.Params, error) {
	store := ctx.KVStore(k.storeKey)

	bz := store.Get(types.KeyParams)
	if len(bz) == 0 {
		return types.Params{}, fmt.Errorf("no params found for the auction module")
	}

	params := types.Params{}
	if err := k.cdc.UnmarshalJSON(bz, &params); err != nil {
		return types.Params{}, err
	}

	return params, nil
}

// SetParams sets the auction module's parameters.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	store := ctx.KVStore(k.storeKey)

	bz, err := k.cdc.MarshalJSON(params)
	if err != nil {
		return err
	}

	store.Set(types.KeyParams, bz)

	return nil
}

// GetAuction returns the auction record with the given id.
func (k Keeper) GetAuction(ctx sdk.Context, id uint64) (types.Auction, error) {
	bz := k.auctionStore(ctx).Get(types.AuctionKey(id))
	if bz == nil {
		return types.Auction{}, errors.Wrapf(types.ErrAuctionNotFound, "id %d", id)
	}

	auction := types.Auction{Id: id}
	if err := auction.Unmarshal(bz); err != nil {
		return types.Auction{}, err
	}

	return auction, nil
}

// SetAuction stores an auction record under its id and binds its escrow
// holders to it. A holder already bound to another auction is rejected.
func (k Keeper) SetAuction(ctx sdk.Context, auction types.Auction) error {
	if err := auction.Validate(); err != nil {
		return errors.Wrap(types.ErrInvalidAuction, err.Error())
	}

	holders := []sdk.AccAddress{auction.ItemHolder, auction.CurrencyHolder}
	for _, holder := range holders {
		if id, ok := k.GetHolderAuction(ctx, holder); ok && id != auction.Id {
			return errors.Wrapf(types.ErrInvalidAuction, "holder %s already backs auction %d", holder, id)
		}
	}

	bz, err := auction.Marshal()
	if err != nil {
		return err
	}

	k.auctionStore(ctx).Set(types.AuctionKey(auction.Id), bz)

	for _, holder := range holders {
		k.holderAuctionStore(ctx).Set(types.HolderAuctionKey(holder), sdk.Uint64ToBigEndian(auction.Id))
	}

	return nil
}

// GetHolderAuction returns the id of the auction holder is bound to. Holders
// stay bound after the auction closes.
func (k Keeper) GetHolderAuction(ctx sdk.Context, holder sdk.AccAddress) (uint64, bool) {
	bz := k.holderAuctionStore(ctx).Get(types.HolderAuctionKey(holder))
	if bz == nil {
		return 0, false
	}

	return sdk.BigEndianToUint64(bz), true
}

// HasAuction reports whether an auction record exists for id.
func (k Keeper) HasAuction(ctx sdk.Context, id uint64) bool {
	return k.auctionStore(ctx).Has(types.AuctionKey(id))
}

// IterateAuctions calls cb for every auction in ascending id order until cb
// returns true.
func (k Keeper) IterateAuctions(ctx sdk.Context, cb func(types.Auction) (stop bool)) error {
	iterator := storetypes.KVStorePrefixIterator(k.auctionStore(ctx), []byte{})
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		auction := types.Auction{Id: sdk.BigEndianToUint64(iterator.Key())}
		if err := auction.Unmarshal(iterator.Value()); err != nil {
			return err
		}

		if cb(auction) {
			break
		}
	}

	return nil
}

// GetAuctions returns all auctions in ascending id order.
func (k Keeper) GetAuctions(ctx sdk.Context) ([]types.Auction, error) {
	auctions := []types.Auction{}
	err := k.IterateAuctions(ctx, func(auction types.Auction) bool {
		auctions = append(auctions, auction)
		return false
	})

	return auctions, err
}

// GetNextAuctionID returns the id the next created auction will receive.
func (k Keeper) GetNextAuctionID(ctx sdk.Context) uint64 {
	bz := ctx.KVStore(k.storeKey).Get(types.KeyNextAuctionID)
	if bz == nil {
		return 1
	}

	return sdk.BigEndianToUint64(bz)
}

// SetNextAuctionID sets the id the next created auction will receive.
func (k Keeper) SetNextAuctionID(ctx sdk.Context, id uint64) {
	ctx.KVStore(k.storeKey).Set(types.KeyNextAuctionID, sdk.Uint64ToBigEndian(id))
}

func (k Keeper) allocateAuctionID(ctx sdk.Context) uint64 {
	id := k.GetNextAuctionID(ctx)
	k.SetNextAuctionID(ctx, id+1)
	return id
}

func (k Keeper) auctionStore(ctx sdk.Context) prefix.Store {
	return prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyAuctions)
}

func (k Keeper) holderAuctionStore(ctx sdk.Context) prefix.Store {
	return prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyHolderAuctions)
}
