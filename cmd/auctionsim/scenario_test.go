package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/skip-mev/escrow-auction/simapp"
	auctiontypes "github.com/skip-mev/escrow-auction/x/auction/types"
)

func newTestApp(t *testing.T) *simapp.App {
	t.Helper()

	app, err := simapp.New(log.NewNopLogger(), dbm.NewMemDB())
	require.NoError(t, err)
	require.NoError(t, app.InitChain(nil))

	return app
}

func TestDefaultScenario(t *testing.T) {
	app := newTestApp(t)

	runner := NewRunner(app, DefaultScenario())
	require.NoError(t, runner.Setup())

	results, err := runner.Run(false)
	require.NoError(t, err)
	require.Len(t, results, 5)

	// alice's rebid below bob's price is the only failure
	for i, res := range results {
		if i == 3 {
			require.Contains(t, res.Error, "must exceed the highest bid")
			continue
		}
		require.Empty(t, res.Error, "step %d", res.Step)
	}

	auction, err := app.Auction(runner.auctions["art"])
	require.NoError(t, err)
	require.False(t, auction.Ongoing)
	require.Equal(t, AccountAddress("bob"), auction.Bidder)
	require.Equal(t, uint64(200), auction.Price)

	gallery, err := app.Holder(HolderAddress("bob_gallery"))
	require.NoError(t, err)
	require.Equal(t, int64(1), gallery.Amount.Int64())

	wallet, err := app.Holder(HolderAddress("seller_wallet"))
	require.NoError(t, err)
	require.Equal(t, int64(200), wallet.Amount.Int64())

	alice, err := app.Holder(HolderAddress("alice_wallet"))
	require.NoError(t, err)
	require.Equal(t, int64(1000), alice.Amount.Int64())

	closed := results[4].Response.(*auctiontypes.MsgCloseAuctionResponse)
	require.Equal(t, auctiontypes.SettlementFull, closed.Settlement)
}

func TestStrictRunStops(t *testing.T) {
	app := newTestApp(t)

	runner := NewRunner(app, DefaultScenario())
	require.NoError(t, runner.Setup())

	results, err := runner.Run(true)
	require.ErrorIs(t, err, auctiontypes.ErrBidTooLow)
	require.Len(t, results, 4)
}

func TestSetupErrors(t *testing.T) {
	sc := DefaultScenario()
	sc.Holders = append(sc.Holders, HolderConfig{Name: "orphan", Owner: "escrow:nobody", Denom: "stake"})
	require.ErrorContains(t, NewRunner(newTestApp(t), sc).Setup(), "unknown account")

	sc = DefaultScenario()
	sc.Steps = []Step{{Action: "burn", Signer: "seller"}}
	runner := NewRunner(newTestApp(t), sc)
	require.NoError(t, runner.Setup())

	results, err := runner.Run(false)
	require.NoError(t, err)
	require.Contains(t, results[0].Error, "unknown action")
}

func TestLoadScenario(t *testing.T) {
	v := viper.New()

	sc, err := LoadScenario(v)
	require.NoError(t, err)
	require.Equal(t, DefaultScenario(), sc)

	v.SetConfigFile("scenario.example.yaml")
	require.NoError(t, v.ReadInConfig())

	sc, err = LoadScenario(v)
	require.NoError(t, err)
	require.Equal(t, []string{"seller", "alice", "bob"}, sc.Accounts)
	require.Len(t, sc.Holders, 6)
	require.Equal(t, "escrow:seller", sc.Holders[0].Owner)
	require.Equal(t, uint64(40), sc.Steps[0].StartPrice)
	require.Equal(t, "alice_shelf", sc.Steps[3].ItemReceiver)
}

func TestRunCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	example, err := os.ReadFile("scenario.example.yaml")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, example, 0o600))

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"run", "--config", path, "--log-level", "error", "--strict"})
	require.NoError(t, cmd.Execute())

	var res struct {
		Steps []StepResult               `json:"steps"`
		State map[string]json.RawMessage `json:"state"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	require.Len(t, res.Steps, 4)
	require.Contains(t, res.State, auctiontypes.ModuleName)

	var gs auctiontypes.GenesisState
	require.NoError(t, auctiontypes.ModuleCdc.UnmarshalJSON(res.State[auctiontypes.ModuleName], &gs))
	require.Len(t, gs.Auctions, 1)
	require.Equal(t, AccountAddress("alice"), gs.Auctions[0].Bidder)
	require.False(t, gs.Auctions[0].Ongoing)
}

func TestRunCmdRejectsBadLogLevel(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "--log-level", "loud"})
	require.Error(t, cmd.Execute())
}
