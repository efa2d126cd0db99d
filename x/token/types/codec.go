package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
)

// ModuleCdc is the amino codec of the token module.
var ModuleCdc = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(ModuleCdc)
	ModuleCdc.Seal()
}

// RegisterLegacyAminoCodec registers the balance record on the provided
// LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(Holder{}, "escrow-auction/token/Holder", nil)
}
