package types

import (
	"encoding/binary"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// MaxAddrLen is the longest address an auction record can hold.
	MaxAddrLen = 32

	addrSlotSize = 1 + MaxAddrLen

	// AuctionSize is the encoded size of every auction record: the ongoing
	// flag, five address slots and the price.
	AuctionSize = 1 + 5*addrSlotSize + 8
)

// Auction is the state of a single escrowed auction.
type Auction struct {
	// Id is the stable identifier allocated at creation. It is the store key
	// and is not part of the encoded value.
	Id uint64 `json:"id"`
	// Ongoing is true while bidding is open.
	Ongoing bool `json:"ongoing"`
	// Seller created the auction and seeds the escrow authority.
	Seller sdk.AccAddress `json:"seller"`
	// ItemHolder is the escrow balance record holding the item.
	ItemHolder sdk.AccAddress `json:"item_holder"`
	// CurrencyHolder is the escrow balance record holding the highest bid.
	CurrencyHolder sdk.AccAddress `json:"currency_holder"`
	// Bidder is the current highest bidder, the seller before any bid.
	Bidder sdk.AccAddress `json:"bidder"`
	// RefundReceiver is the balance record refunded when the current bid is
	// outbid. Empty until the first bid.
	RefundReceiver sdk.AccAddress `json:"refund_receiver"`
	// Price is the current highest price, the asking price before any bid.
	Price uint64 `json:"price"`
}

// NewAuction returns an open auction with no bids.
func NewAuction(id uint64, seller, itemHolder, currencyHolder sdk.AccAddress, startPrice uint64) Auction {
	return Auction{
		Id:             id,
		Ongoing:        true,
		Seller:         seller,
		ItemHolder:     itemHolder,
		CurrencyHolder: currencyHolder,
		Bidder:         seller,
		Price:          startPrice,
	}
}

// HasBid reports whether at least one bid has been accepted.
func (a Auction) HasBid() bool {
	return !a.RefundReceiver.Empty()
}

// Validate checks the invariants every stored auction record satisfies.
func (a Auction) Validate() error {
	for name, addr := range map[string]sdk.AccAddress{
		"seller":          a.Seller,
		"item holder":     a.ItemHolder,
		"currency holder": a.CurrencyHolder,
		"bidder":          a.Bidder,
	} {
		if addr.Empty() {
			return fmt.Errorf("auction %d: %s cannot be empty", a.Id, name)
		}
	}

	for _, addr := range a.addresses() {
		if len(addr) > MaxAddrLen {
			return fmt.Errorf("auction %d: address %s exceeds %d bytes", a.Id, addr, MaxAddrLen)
		}
	}

	if a.ItemHolder.Equals(a.CurrencyHolder) {
		return fmt.Errorf("auction %d: item and currency holders must differ", a.Id)
	}

	if !a.HasBid() && !a.Bidder.Equals(a.Seller) {
		return fmt.Errorf("auction %d: bidder %s set without a refund receiver", a.Id, a.Bidder)
	}

	return nil
}

// Marshal encodes the record into its fixed AuctionSize layout. Each address
// takes a slot of one length byte followed by MaxAddrLen zero-padded bytes;
// the price is big endian.
func (a Auction) Marshal() ([]byte, error) {
	bz := make([]byte, AuctionSize)
	if a.Ongoing {
		bz[0] = 1
	}

	offset := 1
	for _, addr := range a.addresses() {
		if len(addr) > MaxAddrLen {
			return nil, fmt.Errorf("address %s exceeds %d bytes", addr, MaxAddrLen)
		}

		bz[offset] = byte(len(addr))
		copy(bz[offset+1:offset+addrSlotSize], addr)
		offset += addrSlotSize
	}

	binary.BigEndian.PutUint64(bz[offset:], a.Price)

	return bz, nil
}

// Unmarshal decodes a record produced by Marshal. The Id is left untouched.
func (a *Auction) Unmarshal(bz []byte) error {
	if len(bz) != AuctionSize {
		return fmt.Errorf("invalid auction record length; expected %d, got %d", AuctionSize, len(bz))
	}

	switch bz[0] {
	case 0:
		a.Ongoing = false
	case 1:
		a.Ongoing = true
	default:
		return fmt.Errorf("invalid ongoing flag %d", bz[0])
	}

	offset := 1
	addrs := make([]sdk.AccAddress, 5)
	for i := range addrs {
		n := int(bz[offset])
		if n > MaxAddrLen {
			return fmt.Errorf("invalid address length %d at slot %d", n, i)
		}

		if n > 0 {
			addrs[i] = make(sdk.AccAddress, n)
			copy(addrs[i], bz[offset+1:offset+1+n])
		}
		offset += addrSlotSize
	}

	a.Seller, a.ItemHolder, a.CurrencyHolder, a.Bidder, a.RefundReceiver = addrs[0], addrs[1], addrs[2], addrs[3], addrs[4]
	a.Price = binary.BigEndian.Uint64(bz[offset:])

	return nil
}

func (a Auction) addresses() []sdk.AccAddress {
	return []sdk.AccAddress{a.Seller, a.ItemHolder, a.CurrencyHolder, a.Bidder, a.RefundReceiver}
}
