package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

// Signer authorizes a debit from a balance record. A direct signer is an
// authenticated transaction signer. A derived signer carries the module name
// and seeds of a module-derived address; the address is recomputed on every
// use, so only the module that knows the seeds can produce it.
type Signer struct {
	addr   sdk.AccAddress
	module string
	seeds  [][]byte
}

// NewDirectSigner returns a signer for an authenticated account.
func NewDirectSigner(addr sdk.AccAddress) Signer {
	return Signer{addr: addr}
}

// NewDerivedSigner returns a signer for the address derived from module and seeds.
func NewDerivedSigner(module string, seeds ...[]byte) Signer {
	return Signer{module: module, seeds: seeds}
}

// IsDerived reports whether the signer is a module-derived authority.
func (s Signer) IsDerived() bool {
	return s.module != ""
}

// Address returns the account the signer speaks for.
func (s Signer) Address() sdk.AccAddress {
	if s.IsDerived() {
		return sdk.AccAddress(address.Module(s.module, s.seeds...))
	}

	return s.addr
}

// String implements fmt.Stringer.
func (s Signer) String() string {
	if s.IsDerived() {
		return fmt.Sprintf("derived(%s, %s)", s.module, s.Address())
	}

	return fmt.Sprintf("direct(%s)", s.addr)
}
