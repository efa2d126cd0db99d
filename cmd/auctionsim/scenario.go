package main

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
	"github.com/spf13/viper"

	"github.com/skip-mev/escrow-auction/simapp"
	auctiontypes "github.com/skip-mev/escrow-auction/x/auction/types"
	tokentypes "github.com/skip-mev/escrow-auction/x/token/types"
)

const (
	actionCreate = "create"
	actionBid    = "bid"
	actionClose  = "close"

	// escrowOwnerPrefix marks a holder owned by the escrow authority of the
	// named seller.
	escrowOwnerPrefix = "escrow:"
)

// Scenario describes accounts, balance records and the messages to deliver.
type Scenario struct {
	Accounts []string       `mapstructure:"accounts"`
	Holders  []HolderConfig `mapstructure:"holders"`
	Steps    []Step         `mapstructure:"steps"`
}

// HolderConfig opens a balance record. Owner is an account name or
// "escrow:<seller>".
type HolderConfig struct {
	Name   string `mapstructure:"name"`
	Owner  string `mapstructure:"owner"`
	Denom  string `mapstructure:"denom"`
	Amount int64  `mapstructure:"amount"`
}

// Step is a single message. Auction is a label bound by the create step that
// later steps refer to.
type Step struct {
	Action  string `mapstructure:"action"`
	Auction string `mapstructure:"auction"`
	Signer  string `mapstructure:"signer"`

	ItemHolder     string `mapstructure:"item_holder"`
	CurrencyHolder string `mapstructure:"currency_holder"`
	StartPrice     uint64 `mapstructure:"start_price"`

	Price   uint64 `mapstructure:"price"`
	Funding string `mapstructure:"funding"`

	ItemReceiver     string `mapstructure:"item_receiver"`
	CurrencyReceiver string `mapstructure:"currency_receiver"`
}

// DefaultScenario is an auction with two competing bidders and a close.
func DefaultScenario() Scenario {
	return Scenario{
		Accounts: []string{"seller", "alice", "bob"},
		Holders: []HolderConfig{
			{Name: "painting", Owner: escrowOwnerPrefix + "seller", Denom: "painting", Amount: 1},
			{Name: "proceeds_escrow", Owner: escrowOwnerPrefix + "seller", Denom: "stake"},
			{Name: "seller_wallet", Owner: "seller", Denom: "stake"},
			{Name: "alice_wallet", Owner: "alice", Denom: "stake", Amount: 1000},
			{Name: "alice_gallery", Owner: "alice", Denom: "painting"},
			{Name: "bob_wallet", Owner: "bob", Denom: "stake", Amount: 1000},
			{Name: "bob_gallery", Owner: "bob", Denom: "painting"},
		},
		Steps: []Step{
			{Action: actionCreate, Auction: "art", Signer: "seller", ItemHolder: "painting", CurrencyHolder: "proceeds_escrow", StartPrice: 100},
			{Action: actionBid, Auction: "art", Signer: "alice", Funding: "alice_wallet", Price: 150},
			{Action: actionBid, Auction: "art", Signer: "bob", Funding: "bob_wallet", Price: 200},
			{Action: actionBid, Auction: "art", Signer: "alice", Funding: "alice_wallet", Price: 180},
			{Action: actionClose, Auction: "art", Signer: "seller", ItemReceiver: "bob_gallery", CurrencyReceiver: "seller_wallet"},
		},
	}
}

// LoadScenario reads the scenario key of the config, falling back to
// DefaultScenario when none is configured.
func LoadScenario(v *viper.Viper) (Scenario, error) {
	if !v.IsSet("scenario") {
		return DefaultScenario(), nil
	}

	var sc Scenario
	if err := v.UnmarshalKey("scenario", &sc); err != nil {
		return Scenario{}, fmt.Errorf("failed to decode scenario: %w", err)
	}

	return sc, nil
}

// AccountAddress derives the address of a named account from a key generated
// from the name.
func AccountAddress(name string) sdk.AccAddress {
	return sdk.AccAddress(secp256k1.GenPrivKeyFromSecret([]byte(name)).PubKey().Address())
}

// HolderAddress derives the address of a named balance record.
func HolderAddress(name string) sdk.AccAddress {
	return sdk.AccAddress(address.Hash(tokentypes.ModuleName, []byte(name))[:20])
}

// StepResult is the outcome of one step.
type StepResult struct {
	Step     int         `json:"step"`
	Action   string      `json:"action"`
	Auction  string      `json:"auction"`
	Response interface{} `json:"response,omitempty"`
	Error    string      `json:"error,omitempty"`
}

// Runner delivers the steps of a scenario to an app.
type Runner struct {
	app      *simapp.App
	scenario Scenario

	accounts map[string]sdk.AccAddress
	holders  map[string]sdk.AccAddress
	auctions map[string]uint64
}

func NewRunner(app *simapp.App, scenario Scenario) *Runner {
	return &Runner{
		app:      app,
		scenario: scenario,
		accounts: make(map[string]sdk.AccAddress),
		holders:  make(map[string]sdk.AccAddress),
		auctions: make(map[string]uint64),
	}
}

// Setup registers the accounts and opens the balance records.
func (r *Runner) Setup() error {
	for _, name := range r.scenario.Accounts {
		r.accounts[name] = AccountAddress(name)
	}

	for _, hc := range r.scenario.Holders {
		owner, err := r.owner(hc.Owner)
		if err != nil {
			return fmt.Errorf("holder %s: %w", hc.Name, err)
		}

		addr := HolderAddress(hc.Name)
		if err := r.app.CreateHolder(tokentypes.NewHolder(addr, owner, hc.Denom), math.NewInt(hc.Amount)); err != nil {
			return fmt.Errorf("holder %s: %w", hc.Name, err)
		}
		r.holders[hc.Name] = addr
	}

	return nil
}

// Run delivers every step. A failed step is recorded and, unless strict, the
// run continues with the next one.
func (r *Runner) Run(strict bool) ([]StepResult, error) {
	results := make([]StepResult, 0, len(r.scenario.Steps))
	for i, step := range r.scenario.Steps {
		res, err := r.deliver(step)

		result := StepResult{Step: i + 1, Action: step.Action, Auction: step.Auction, Response: res}
		if err != nil {
			result.Error = err.Error()
		}
		results = append(results, result)

		if err != nil && strict {
			return results, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
	}

	return results, nil
}

func (r *Runner) deliver(step Step) (interface{}, error) {
	signer, err := r.account(step.Signer)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(step.Action) {
	case actionCreate:
		msg, err := r.createMsg(step, signer)
		if err != nil {
			return nil, err
		}

		res, err := r.app.Deliver(msg, signer)
		if err != nil {
			return nil, err
		}

		created := res.Response.(*auctiontypes.MsgCreateAuctionResponse)
		r.auctions[step.Auction] = created.AuctionId
		return created, nil

	case actionBid:
		msg, err := r.bidMsg(step, signer)
		if err != nil {
			return nil, err
		}

		res, err := r.app.Deliver(msg, signer)
		if err != nil {
			return nil, err
		}
		return res.Response, nil

	case actionClose:
		msg, err := r.closeMsg(step, signer)
		if err != nil {
			return nil, err
		}

		res, err := r.app.Deliver(msg, signer)
		if err != nil {
			return nil, err
		}
		return res.Response, nil

	default:
		return nil, fmt.Errorf("unknown action %q", step.Action)
	}
}

func (r *Runner) createMsg(step Step, seller sdk.AccAddress) (*auctiontypes.MsgCreateAuction, error) {
	item, err := r.holder(step.ItemHolder)
	if err != nil {
		return nil, err
	}

	currency, err := r.holder(step.CurrencyHolder)
	if err != nil {
		return nil, err
	}

	return &auctiontypes.MsgCreateAuction{
		Seller:         seller.String(),
		ItemHolder:     item.String(),
		CurrencyHolder: currency.String(),
		StartPrice:     step.StartPrice,
	}, nil
}

// bidMsg reads the current record to fill in the escrow accounts and the
// refund receiver of the bid being replaced.
func (r *Runner) bidMsg(step Step, bidder sdk.AccAddress) (*auctiontypes.MsgBid, error) {
	auction, err := r.auction(step.Auction)
	if err != nil {
		return nil, err
	}

	funding, err := r.holder(step.Funding)
	if err != nil {
		return nil, err
	}

	msg := &auctiontypes.MsgBid{
		AuctionId:               auction.Id,
		Bidder:                  bidder.String(),
		Price:                   step.Price,
		Funding:                 funding.String(),
		FundingAuthority:        bidder.String(),
		CurrencyHolder:          auction.CurrencyHolder.String(),
		CurrencyHolderAuthority: auctiontypes.DeriveAuthority(auction.Seller).Address.String(),
	}
	if auction.HasBid() {
		msg.PriorRefundReceiver = auction.RefundReceiver.String()
	}

	return msg, nil
}

func (r *Runner) closeMsg(step Step, seller sdk.AccAddress) (*auctiontypes.MsgCloseAuction, error) {
	auction, err := r.auction(step.Auction)
	if err != nil {
		return nil, err
	}

	itemReceiver, err := r.holder(step.ItemReceiver)
	if err != nil {
		return nil, err
	}

	currencyReceiver, err := r.holder(step.CurrencyReceiver)
	if err != nil {
		return nil, err
	}

	escrow := auctiontypes.DeriveAuthority(auction.Seller).Address.String()

	return &auctiontypes.MsgCloseAuction{
		AuctionId:               auction.Id,
		Seller:                  seller.String(),
		ItemHolder:              auction.ItemHolder.String(),
		ItemHolderAuthority:     escrow,
		ItemReceiver:            itemReceiver.String(),
		CurrencyHolder:          auction.CurrencyHolder.String(),
		CurrencyHolderAuthority: escrow,
		CurrencyReceiver:        currencyReceiver.String(),
	}, nil
}

func (r *Runner) owner(name string) (sdk.AccAddress, error) {
	if seller, ok := strings.CutPrefix(name, escrowOwnerPrefix); ok {
		addr, err := r.account(seller)
		if err != nil {
			return nil, err
		}
		return auctiontypes.DeriveAuthority(addr).Address, nil
	}

	return r.account(name)
}

func (r *Runner) account(name string) (sdk.AccAddress, error) {
	addr, ok := r.accounts[name]
	if !ok {
		return nil, fmt.Errorf("unknown account %q", name)
	}
	return addr, nil
}

func (r *Runner) holder(name string) (sdk.AccAddress, error) {
	addr, ok := r.holders[name]
	if !ok {
		return nil, fmt.Errorf("unknown holder %q", name)
	}
	return addr, nil
}

func (r *Runner) auction(label string) (auctiontypes.Auction, error) {
	id, ok := r.auctions[label]
	if !ok {
		return auctiontypes.Auction{}, fmt.Errorf("unknown auction %q", label)
	}
	return r.app.Auction(id)
}
