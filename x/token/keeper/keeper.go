package keeper

import (
	"context"

	"cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/skip-mev/escrow-auction/x/token/types"
)

// Keeper keeps owner-checked balance records and moves amounts between them.
type Keeper struct {
	cdc      *codec.LegacyAmino
	storeKey storetypes.StoreKey
}

func NewKeeper(cdc *codec.LegacyAmino, storeKey storetypes.StoreKey) Keeper {
	return Keeper{
		cdc:      cdc,
		storeKey: storeKey,
	}
}

// Logger returns a token module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// CreateHolder stores a new balance record. It fails if one already exists at
// the same address.
func (k Keeper) CreateHolder(ctx sdk.Context, holder types.Holder) error {
	if err := holder.Validate(); err != nil {
		return errors.Wrap(types.ErrInvalidHolder, err.Error())
	}

	store := k.holderStore(ctx)
	if store.Has(types.HolderKey(holder.Address)) {
		return errors.Wrapf(types.ErrHolderExists, "address %s", holder.Address)
	}

	return k.setHolder(ctx, holder)
}

// GetHolder returns the balance record stored at addr.
func (k Keeper) GetHolder(goCtx context.Context, addr sdk.AccAddress) (types.Holder, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	bz := k.holderStore(ctx).Get(types.HolderKey(addr))
	if bz == nil {
		return types.Holder{}, errors.Wrapf(types.ErrHolderNotFound, "address %s", addr)
	}

	var holder types.Holder
	if err := k.cdc.UnmarshalJSON(bz, &holder); err != nil {
		return types.Holder{}, err
	}

	return holder, nil
}

// Balance returns the amount held at addr.
func (k Keeper) Balance(goCtx context.Context, addr sdk.AccAddress) (math.Int, error) {
	holder, err := k.GetHolder(goCtx, addr)
	if err != nil {
		return math.ZeroInt(), err
	}

	return holder.Amount, nil
}

// Mint credits amount to the balance record at addr.
func (k Keeper) Mint(ctx sdk.Context, addr sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return errors.Wrapf(types.ErrInvalidAmount, "cannot mint %s", amount)
	}

	holder, err := k.GetHolder(ctx, addr)
	if err != nil {
		return err
	}

	holder.Amount = holder.Amount.Add(amount)
	if err := k.setHolder(ctx, holder); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMint,
			sdk.NewAttribute(types.AttributeKeyRecipient, addr.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()+holder.Denom),
		),
	)

	return nil
}

// Transfer debits amount from the record at from and credits the record at to.
// The signer must resolve to the owner of from and both records must hold the
// same denom. Either the whole amount moves or nothing does.
func (k Keeper) Transfer(goCtx context.Context, from, to sdk.AccAddress, signer types.Signer, amount math.Int) error {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if amount.IsNil() || amount.IsNegative() {
		return errors.Wrapf(types.ErrInvalidAmount, "cannot transfer %s", amount)
	}

	src, err := k.GetHolder(ctx, from)
	if err != nil {
		return err
	}

	dst, err := k.GetHolder(ctx, to)
	if err != nil {
		return err
	}

	if src.Denom != dst.Denom {
		return errors.Wrapf(types.ErrDenomMismatch, "cannot move %s into a %s holder", src.Denom, dst.Denom)
	}

	if !signer.Address().Equals(src.Owner) {
		return errors.Wrapf(types.ErrUnauthorized, "holder %s is owned by %s, got %s", src.Address, src.Owner, signer)
	}

	if src.Amount.LT(amount) {
		return errors.Wrapf(types.ErrInsufficientFunds, "holder %s has %s%s, need %s", src.Address, src.Amount, src.Denom, amount)
	}

	// self transfers are authorized no-ops
	if !src.Address.Equals(dst.Address) {
		src.Amount = src.Amount.Sub(amount)
		dst.Amount = dst.Amount.Add(amount)

		if err := k.setHolder(ctx, src); err != nil {
			return err
		}
		if err := k.setHolder(ctx, dst); err != nil {
			return err
		}
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeTransfer,
			sdk.NewAttribute(types.AttributeKeySender, from.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, to.String()),
			sdk.NewAttribute(types.AttributeKeySigner, signer.Address().String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()+src.Denom),
		),
	)

	return nil
}

// GetHolders returns every balance record in store order.
func (k Keeper) GetHolders(ctx sdk.Context) ([]types.Holder, error) {
	iterator := storetypes.KVStorePrefixIterator(k.holderStore(ctx), []byte{})
	defer iterator.Close()

	holders := []types.Holder{}
	for ; iterator.Valid(); iterator.Next() {
		var holder types.Holder
		if err := k.cdc.UnmarshalJSON(iterator.Value(), &holder); err != nil {
			return nil, err
		}
		holders = append(holders, holder)
	}

	return holders, nil
}

func (k Keeper) setHolder(ctx sdk.Context, holder types.Holder) error {
	bz, err := k.cdc.MarshalJSON(holder)
	if err != nil {
		return err
	}

	k.holderStore(ctx).Set(types.HolderKey(holder.Address), bz)
	return nil
}

func (k Keeper) holderStore(ctx sdk.Context) prefix.Store {
	return prefix.NewStore(ctx.KVStore(k.storeKey), types.KeyHolders)
}
