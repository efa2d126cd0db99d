package types

import "fmt"

// Settlement is the outcome of closing an auction.
type Settlement int32

const (
	SettlementUnspecified Settlement = iota
	// SettlementFull means the item went to the winner and the price to the seller.
	SettlementFull
	// SettlementPartial means the item went to the winner but the currency
	// escrow could not cover the price, so the seller was not paid.
	SettlementPartial
)

// String implements fmt.Stringer.
func (s Settlement) String() string {
	switch s {
	case SettlementFull:
		return "full"
	case SettlementPartial:
		return "partial"
	default:
		return "unspecified"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Settlement) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Settlement) UnmarshalText(text []byte) error {
	switch string(text) {
	case "full":
		*s = SettlementFull
	case "partial":
		*s = SettlementPartial
	case "unspecified":
		*s = SettlementUnspecified
	default:
		return fmt.Errorf("unknown settlement %q", text)
	}

	return nil
}
