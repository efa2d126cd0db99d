package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Holder is a balance record: a quantity of a single denom held at Address and
// spendable only by Owner.
type Holder struct {
	Address sdk.AccAddress `json:"address"`
	Owner   sdk.AccAddress `json:"owner"`
	Denom   string         `json:"denom"`
	Amount  math.Int       `json:"amount"`
}

// NewHolder returns an empty balance record.
func NewHolder(addr, owner sdk.AccAddress, denom string) Holder {
	return Holder{
		Address: addr,
		Owner:   owner,
		Denom:   denom,
		Amount:  math.ZeroInt(),
	}
}

// Validate performs basic validation of the balance record.
func (h Holder) Validate() error {
	if h.Address.Empty() {
		return fmt.Errorf("holder address cannot be empty")
	}

	if h.Owner.Empty() {
		return fmt.Errorf("holder %s has no owner", h.Address)
	}

	if err := sdk.ValidateDenom(h.Denom); err != nil {
		return fmt.Errorf("holder %s: %w", h.Address, err)
	}

	if h.Amount.IsNil() || h.Amount.IsNegative() {
		return fmt.Errorf("holder %s has invalid amount (%s)", h.Address, h.Amount)
	}

	return nil
}

// String implements fmt.Stringer.
func (h Holder) String() string {
	return fmt.Sprintf("%s%s@%s(owner=%s)", h.Amount, h.Denom, h.Address, h.Owner)
}
