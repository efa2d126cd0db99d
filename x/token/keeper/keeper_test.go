package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/skip-mev/escrow-auction/x/token/keeper"
	"github.com/skip-mev/escrow-auction/x/token/types"
)

type KeeperTestSuite struct {
	suite.Suite

	tokenKeeper keeper.Keeper
	ctx         sdk.Context
	key         *storetypes.KVStoreKey

	alice sdk.AccAddress
	bob   sdk.AccAddress
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (s *KeeperTestSuite) SetupTest() {
	s.key = storetypes.NewKVStoreKey(types.StoreKey)
	testCtx := testutil.DefaultContextWithDB(s.T(), s.key, storetypes.NewTransientStoreKey("transient_test"))
	s.ctx = testCtx.Ctx

	s.tokenKeeper = keeper.NewKeeper(types.ModuleCdc, s.key)
	s.alice = sdk.AccAddress([]byte("alice_______________"))
	s.bob = sdk.AccAddress([]byte("bob_________________"))
}

func (s *KeeperTestSuite) createHolder(name string, owner sdk.AccAddress, denom string, amount int64) sdk.AccAddress {
	addr := sdk.AccAddress([]byte(name))
	s.Require().NoError(s.tokenKeeper.CreateHolder(s.ctx, types.NewHolder(addr, owner, denom)))
	s.Require().NoError(s.tokenKeeper.Mint(s.ctx, addr, math.NewInt(amount)))
	return addr
}

func (s *KeeperTestSuite) TestCreateHolder() {
	addr := s.createHolder("alice_cash", s.alice, "uusd", 0)

	holder, err := s.tokenKeeper.GetHolder(s.ctx, addr)
	s.Require().NoError(err)
	s.Require().Equal(s.alice, holder.Owner)
	s.Require().Equal("uusd", holder.Denom)
	s.Require().True(holder.Amount.IsZero())

	err = s.tokenKeeper.CreateHolder(s.ctx, types.NewHolder(addr, s.bob, "uusd"))
	s.Require().ErrorIs(err, types.ErrHolderExists)

	err = s.tokenKeeper.CreateHolder(s.ctx, types.NewHolder(sdk.AccAddress([]byte("no_owner")), nil, "uusd"))
	s.Require().ErrorIs(err, types.ErrInvalidHolder)

	_, err = s.tokenKeeper.GetHolder(s.ctx, sdk.AccAddress([]byte("missing")))
	s.Require().ErrorIs(err, types.ErrHolderNotFound)
}

func (s *KeeperTestSuite) TestTransfer() {
	var (
		from   sdk.AccAddress
		to     sdk.AccAddress
		signer types.Signer
		amount math.Int
	)

	cases := []struct {
		name     string
		malleate func()
		err      error
	}{
		{
			"direct owner can transfer",
			func() {},
			nil,
		},
		{
			"non owner cannot transfer",
			func() {
				signer = types.NewDirectSigner(s.bob)
			},
			types.ErrUnauthorized,
		},
		{
			"insufficient funds",
			func() {
				amount = math.NewInt(1001)
			},
			types.ErrInsufficientFunds,
		},
		{
			"denom mismatch",
			func() {
				to = s.createHolder("bob_item", s.bob, "item", 0)
			},
			types.ErrDenomMismatch,
		},
		{
			"negative amount",
			func() {
				amount = math.NewInt(-1)
			},
			types.ErrInvalidAmount,
		},
		{
			"unknown destination",
			func() {
				to = sdk.AccAddress([]byte("missing"))
			},
			types.ErrHolderNotFound,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.SetupTest()

			from = s.createHolder("alice_cash", s.alice, "uusd", 1000)
			to = s.createHolder("bob_cash", s.bob, "uusd", 0)
			signer = types.NewDirectSigner(s.alice)
			amount = math.NewInt(400)

			tc.malleate()

			err := s.tokenKeeper.Transfer(s.ctx, from, to, signer, amount)
			if tc.err != nil {
				s.Require().ErrorIs(err, tc.err)

				balance, err := s.tokenKeeper.Balance(s.ctx, from)
				s.Require().NoError(err)
				s.Require().Equal(math.NewInt(1000), balance)
				return
			}

			s.Require().NoError(err)

			fromBalance, err := s.tokenKeeper.Balance(s.ctx, from)
			s.Require().NoError(err)
			s.Require().Equal(math.NewInt(600), fromBalance)

			toBalance, err := s.tokenKeeper.Balance(s.ctx, to)
			s.Require().NoError(err)
			s.Require().Equal(math.NewInt(400), toBalance)
		})
	}
}

func (s *KeeperTestSuite) TestDerivedSigner() {
	signer := types.NewDerivedSigner("auction", s.alice.Bytes())
	escrow := s.createHolder("escrow", signer.Address(), "uusd", 500)
	dst := s.createHolder("bob_cash", s.bob, "uusd", 0)

	// the owner's own key does not unlock an escrow owned by a derived address
	err := s.tokenKeeper.Transfer(s.ctx, escrow, dst, types.NewDirectSigner(s.alice), math.NewInt(1))
	s.Require().ErrorIs(err, types.ErrUnauthorized)

	// neither do seeds for another account
	other := types.NewDerivedSigner("auction", s.bob.Bytes())
	err = s.tokenKeeper.Transfer(s.ctx, escrow, dst, other, math.NewInt(1))
	s.Require().ErrorIs(err, types.ErrUnauthorized)

	s.Require().NoError(s.tokenKeeper.Transfer(s.ctx, escrow, dst, signer, math.NewInt(500)))

	balance, err := s.tokenKeeper.Balance(s.ctx, dst)
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(500), balance)
}

func (s *KeeperTestSuite) TestGenesisRoundTrip() {
	s.createHolder("alice_cash", s.alice, "uusd", 10)
	s.createHolder("bob_item", s.bob, "item", 1)

	exported := s.tokenKeeper.ExportGenesis(s.ctx)
	s.Require().Len(exported.Holders, 2)
	s.Require().NoError(exported.Validate())

	s.SetupTest()
	s.tokenKeeper.InitGenesis(s.ctx, *exported)

	balance, err := s.tokenKeeper.Balance(s.ctx, sdk.AccAddress([]byte("bob_item")))
	s.Require().NoError(err)
	s.Require().Equal(math.NewInt(1), balance)
}
