package types

var DefaultEnforceBidFloor = true

// Params are the auction module's parameters.
type Params struct {
	// EnforceBidFloor rejects bids that do not beat the current price.
	EnforceBidFloor bool `json:"enforce_bid_floor"`
}

// NewParams returns a new Params instance with the provided values.
func NewParams(enforceBidFloor bool) Params {
	return Params{
		EnforceBidFloor: enforceBidFloor,
	}
}

// DefaultParams returns the default x/auction parameters.
func DefaultParams() Params {
	return NewParams(
		DefaultEnforceBidFloor,
	)
}

// Validate performs basic validation on the parameters.
func (p Params) Validate() error {
	return nil
}
