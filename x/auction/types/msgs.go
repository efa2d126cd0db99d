package types

import (
	"fmt"

	"cosmossdk.io/errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Msg is a message executed by the auction module.
type Msg interface {
	ValidateBasic() error
	GetSigners() []sdk.AccAddress
	GetSignBytes() []byte
}

var (
	_ Msg = &MsgCreateAuction{}
	_ Msg = &MsgBid{}
	_ Msg = &MsgCloseAuction{}
	_ Msg = &MsgUpdateParams{}
)

// MsgCreateAuction opens an auction over escrow holders owned by the seller's
// derived authority.
type MsgCreateAuction struct {
	Seller         string `json:"seller"`
	ItemHolder     string `json:"item_holder"`
	CurrencyHolder string `json:"currency_holder"`
	StartPrice     uint64 `json:"start_price"`
}

type MsgCreateAuctionResponse struct {
	AuctionId uint64 `json:"auction_id"`
}

// MsgBid replaces the highest bid of an ongoing auction.
type MsgBid struct {
	AuctionId               uint64 `json:"auction_id"`
	Bidder                  string `json:"bidder"`
	Price                   uint64 `json:"price"`
	Funding                 string `json:"funding"`
	FundingAuthority        string `json:"funding_authority"`
	CurrencyHolder          string `json:"currency_holder"`
	CurrencyHolderAuthority string `json:"currency_holder_authority"`
	PriorRefundReceiver     string `json:"prior_refund_receiver,omitempty"`
}

type MsgBidResponse struct {
	// Refunded is true when a superseded bid was returned to its bidder.
	Refunded bool `json:"refunded"`
}

// MsgCloseAuction settles an ongoing auction.
type MsgCloseAuction struct {
	AuctionId               uint64 `json:"auction_id"`
	Seller                  string `json:"seller"`
	ItemHolder              string `json:"item_holder"`
	ItemHolderAuthority     string `json:"item_holder_authority"`
	ItemReceiver            string `json:"item_receiver"`
	CurrencyHolder          string `json:"currency_holder"`
	CurrencyHolderAuthority string `json:"currency_holder_authority"`
	CurrencyReceiver        string `json:"currency_receiver"`
}

type MsgCloseAuctionResponse struct {
	Settlement Settlement `json:"settlement"`
}

// MsgUpdateParams updates the module parameters. It must be signed by the
// module authority.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// GetSignBytes returns the sorted amino JSON the signers of a MsgCreateAuction sign.
func (m MsgCreateAuction) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

// GetSigners returns the expected signers for a MsgCreateAuction message.
func (m MsgCreateAuction) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Seller)
	return []sdk.AccAddress{addr}
}

// ValidateBasic does a sanity check on the provided data.
func (m MsgCreateAuction) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Seller); err != nil {
		return errors.Wrap(err, "invalid seller address")
	}

	itemHolder, err := sdk.AccAddressFromBech32(m.ItemHolder)
	if err != nil {
		return errors.Wrap(err, "invalid item holder address")
	}

	currencyHolder, err := sdk.AccAddressFromBech32(m.CurrencyHolder)
	if err != nil {
		return errors.Wrap(err, "invalid currency holder address")
	}

	if itemHolder.Equals(currencyHolder) {
		return errors.Wrap(ErrInvalidAuction, "item and currency holders must differ")
	}

	return nil
}

// GetSignBytes returns the sorted amino JSON the signers of a MsgBid sign.
func (m MsgBid) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

// GetSigners returns the expected signers for a MsgBid message. The funding
// authority co-signs when it is not the bidder.
func (m MsgBid) GetSigners() []sdk.AccAddress {
	bidder, _ := sdk.AccAddressFromBech32(m.Bidder)
	signers := []sdk.AccAddress{bidder}

	authority, err := sdk.AccAddressFromBech32(m.FundingAuthority)
	if err == nil && !authority.Equals(bidder) {
		signers = append(signers, authority)
	}

	return signers
}

// ValidateBasic does a sanity check on the provided data.
func (m MsgBid) ValidateBasic() error {
	if m.AuctionId == 0 {
		return errors.Wrap(ErrInvalidAuction, "auction id cannot be zero")
	}

	_, err := m.BidInfo()
	return err
}

// BidInfo returns the parsed accounts of the bid.
func (m MsgBid) BidInfo() (BidInfo, error) {
	info := BidInfo{
		AuctionID: m.AuctionId,
		Price:     m.Price,
	}

	var err error
	if info.Bidder, err = parseAddress("bidder", m.Bidder); err != nil {
		return BidInfo{}, err
	}
	if info.Funding, err = parseAddress("funding", m.Funding); err != nil {
		return BidInfo{}, err
	}
	if info.FundingAuthority, err = parseAddress("funding authority", m.FundingAuthority); err != nil {
		return BidInfo{}, err
	}
	if info.CurrencyHolder, err = parseAddress("currency holder", m.CurrencyHolder); err != nil {
		return BidInfo{}, err
	}
	if info.CurrencyHolderAuthority, err = parseAddress("currency holder authority", m.CurrencyHolderAuthority); err != nil {
		return BidInfo{}, err
	}

	if m.PriorRefundReceiver != "" {
		if info.PriorRefundReceiver, err = parseAddress("prior refund receiver", m.PriorRefundReceiver); err != nil {
			return BidInfo{}, err
		}
	}

	return info, nil
}

// GetSignBytes returns the sorted amino JSON the signers of a MsgCloseAuction sign.
func (m MsgCloseAuction) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

// GetSigners returns the expected signers for a MsgCloseAuction message.
func (m MsgCloseAuction) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Seller)
	return []sdk.AccAddress{addr}
}

// ValidateBasic does a sanity check on the provided data.
func (m MsgCloseAuction) ValidateBasic() error {
	if m.AuctionId == 0 {
		return errors.Wrap(ErrInvalidAuction, "auction id cannot be zero")
	}

	_, err := m.CloseInfo()
	return err
}

// CloseInfo returns the parsed accounts of the close instruction.
func (m MsgCloseAuction) CloseInfo() (CloseInfo, error) {
	info := CloseInfo{AuctionID: m.AuctionId}

	var err error
	if info.Seller, err = parseAddress("seller", m.Seller); err != nil {
		return CloseInfo{}, err
	}
	if info.ItemHolder, err = parseAddress("item holder", m.ItemHolder); err != nil {
		return CloseInfo{}, err
	}
	if info.ItemHolderAuthority, err = parseAddress("item holder authority", m.ItemHolderAuthority); err != nil {
		return CloseInfo{}, err
	}
	if info.ItemReceiver, err = parseAddress("item receiver", m.ItemReceiver); err != nil {
		return CloseInfo{}, err
	}
	if info.CurrencyHolder, err = parseAddress("currency holder", m.CurrencyHolder); err != nil {
		return CloseInfo{}, err
	}
	if info.CurrencyHolderAuthority, err = parseAddress("currency holder authority", m.CurrencyHolderAuthority); err != nil {
		return CloseInfo{}, err
	}
	if info.CurrencyReceiver, err = parseAddress("currency receiver", m.CurrencyReceiver); err != nil {
		return CloseInfo{}, err
	}

	return info, nil
}

// GetSignBytes returns the sorted amino JSON the signers of a MsgUpdateParams sign.
func (m MsgUpdateParams) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&m))
}

// GetSigners returns the expected signers for a MsgUpdateParams message.
func (m MsgUpdateParams) GetSigners() []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(m.Authority)
	return []sdk.AccAddress{addr}
}

// ValidateBasic does a sanity check on the provided data.
func (m MsgUpdateParams) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Authority); err != nil {
		return errors.Wrap(err, "invalid authority address")
	}

	return m.Params.Validate()
}

func parseAddress(name, bech string) (sdk.AccAddress, error) {
	addr, err := sdk.AccAddressFromBech32(bech)
	if err != nil {
		return nil, fmt.Errorf("invalid %s address (%w)", name, err)
	}

	return addr, nil
}
