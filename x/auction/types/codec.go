package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// ModuleCdc is the amino codec of the auction module. It encodes genesis,
// stored params and message sign bytes.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}

// RegisterLegacyAminoCodec registers the x/auction messages and parameters on
// the provided LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreateAuction{}, "escrow-auction/MsgCreateAuction", nil)
	cdc.RegisterConcrete(&MsgBid{}, "escrow-auction/MsgBid", nil)
	cdc.RegisterConcrete(&MsgCloseAuction{}, "escrow-auction/MsgCloseAuction", nil)
	cdc.RegisterConcrete(&MsgUpdateParams{}, "escrow-auction/MsgUpdateParams", nil)

	cdc.RegisterConcrete(Params{}, "escrow-auction/auction/Params", nil)
}
