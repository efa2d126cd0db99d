package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/skip-mev/escrow-auction/x/token/types"
)

func TestHolderValidate(t *testing.T) {
	addr := sdk.AccAddress([]byte("holder______________"))
	owner := sdk.AccAddress([]byte("owner_______________"))

	cases := []struct {
		name     string
		malleate func(*types.Holder)
		valid    bool
	}{
		{"empty record", func(*types.Holder) {}, true},
		{"funded record", func(h *types.Holder) { h.Amount = math.NewInt(10) }, true},
		{"no address", func(h *types.Holder) { h.Address = nil }, false},
		{"no owner", func(h *types.Holder) { h.Owner = nil }, false},
		{"bad denom", func(h *types.Holder) { h.Denom = "1x" }, false},
		{"negative amount", func(h *types.Holder) { h.Amount = math.NewInt(-1) }, false},
		{"nil amount", func(h *types.Holder) { h.Amount = math.Int{} }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			holder := types.NewHolder(addr, owner, "stake")
			tc.malleate(&holder)

			if tc.valid {
				require.NoError(t, holder.Validate())
			} else {
				require.Error(t, holder.Validate())
			}
		})
	}
}

func TestGenesisValidate(t *testing.T) {
	a := types.NewHolder(sdk.AccAddress([]byte("a___________________")), sdk.AccAddress([]byte("owner")), "stake")
	b := types.NewHolder(sdk.AccAddress([]byte("b___________________")), sdk.AccAddress([]byte("owner")), "stake")

	require.NoError(t, types.DefaultGenesisState().Validate())
	require.NoError(t, types.NewGenesisState([]types.Holder{a, b}).Validate())
	require.Error(t, types.NewGenesisState([]types.Holder{a, a}).Validate())
}

func TestSigner(t *testing.T) {
	direct := sdk.AccAddress([]byte("direct______________"))

	signer := types.NewDirectSigner(direct)
	require.False(t, signer.IsDerived())
	require.Equal(t, direct, signer.Address())

	derived := types.NewDerivedSigner("auction", direct.Bytes())
	require.True(t, derived.IsDerived())
	require.NotEqual(t, direct, derived.Address())
	require.Equal(t, derived.Address(), types.NewDerivedSigner("auction", direct.Bytes()).Address())
	require.NotEqual(t, derived.Address(), types.NewDerivedSigner("token", direct.Bytes()).Address())
}
