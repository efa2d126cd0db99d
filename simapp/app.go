// Package simapp hosts the token and auction modules on an in-memory
// multistore and delivers messages one at a time.
package simapp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/gorilla/mux"

	"github.com/skip-mev/escrow-auction/x/auction"
	"github.com/skip-mev/escrow-auction/x/auction/ante"
	auctionkeeper "github.com/skip-mev/escrow-auction/x/auction/keeper"
	auctiontypes "github.com/skip-mev/escrow-auction/x/auction/types"
	"github.com/skip-mev/escrow-auction/x/token"
	tokenkeeper "github.com/skip-mev/escrow-auction/x/token/keeper"
	tokentypes "github.com/skip-mev/escrow-auction/x/token/types"
)

// ChainID is the chain id stamped on every block header.
const ChainID = "escrow-auction-sim"

// Result is the outcome of a delivered message.
type Result struct {
	Response interface{}
	Events   sdk.Events
}

// App is a minimal host: it owns the stores, runs the ante chain and routes
// each message to the auction msg service. Delivery is serialised; every
// message either commits all of its writes and events or none of them.
type App struct {
	mtx sync.RWMutex

	logger   log.Logger
	cms      storetypes.CommitMultiStore
	header   cmtproto.Header
	appCodec codec.Codec

	TokenKeeper   tokenkeeper.Keeper
	AuctionKeeper auctionkeeper.Keeper

	tokenModule   token.AppModule
	auctionModule auction.AppModule

	anteHandler ante.AnteHandler
	msgServer   auctiontypes.MsgServer
	queryServer auctiontypes.QueryServer
}

// New mounts the module stores on db and loads the latest version.
func New(logger log.Logger, db dbm.DB) (*App, error) {
	tokenKey := storetypes.NewKVStoreKey(tokentypes.StoreKey)
	auctionKey := storetypes.NewKVStoreKey(auctiontypes.StoreKey)

	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(tokenKey, storetypes.StoreTypeIAVL, nil)
	cms.MountStoreWithDB(auctionKey, storetypes.StoreTypeIAVL, nil)
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load stores: %w", err)
	}

	app := &App{
		logger:   logger,
		cms:      cms,
		appCodec: codec.NewProtoCodec(codectypes.NewInterfaceRegistry()),
		header: cmtproto.Header{
			ChainID: ChainID,
			Height:  cms.LastCommitID().Version + 1,
		},
	}

	app.TokenKeeper = tokenkeeper.NewKeeper(tokentypes.ModuleCdc, tokenKey)
	app.AuctionKeeper = auctionkeeper.NewKeeper(
		auctiontypes.ModuleCdc,
		auctionKey,
		app.TokenKeeper,
		authtypes.NewModuleAddress("gov").String(),
	)

	app.tokenModule = token.NewAppModule(tokentypes.ModuleCdc, app.TokenKeeper)
	app.auctionModule = auction.NewAppModule(auctiontypes.ModuleCdc, app.AuctionKeeper, app.TokenKeeper)

	app.anteHandler = app.auctionModule.AnteHandler()
	app.msgServer = app.auctionModule.MsgServer()
	app.queryServer = app.auctionModule.QueryServer()

	return app, nil
}

// Authority returns the address allowed to update the auction parameters.
func (app *App) Authority() sdk.AccAddress {
	return sdk.MustAccAddressFromBech32(app.AuctionKeeper.GetAuthority())
}

// DefaultGenesis returns the default genesis of every module.
func (app *App) DefaultGenesis() map[string]json.RawMessage {
	return map[string]json.RawMessage{
		tokentypes.ModuleName:   app.tokenModule.DefaultGenesis(app.appCodec),
		auctiontypes.ModuleName: app.auctionModule.DefaultGenesis(app.appCodec),
	}
}

// InitChain validates and imports genesis. Modules missing from genesis get
// their defaults.
func (app *App) InitChain(genesis map[string]json.RawMessage) (err error) {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	state := app.DefaultGenesis()
	for name, bz := range genesis {
		if _, ok := state[name]; !ok {
			return fmt.Errorf("unknown module %s in genesis", name)
		}
		state[name] = bz
	}

	if err := app.tokenModule.ValidateGenesis(app.appCodec, nil, state[tokentypes.ModuleName]); err != nil {
		return err
	}
	if err := app.auctionModule.ValidateGenesis(app.appCodec, nil, state[auctiontypes.ModuleName]); err != nil {
		return err
	}

	ctx, write := app.newContext().CacheContext()

	// genesis import panics on invalid state
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to init genesis: %v", r)
		}
	}()

	app.tokenModule.InitGenesis(ctx, app.appCodec, state[tokentypes.ModuleName])
	app.auctionModule.InitGenesis(ctx, app.appCodec, state[auctiontypes.ModuleName])
	write()

	return nil
}

// ExportGenesis exports the current state of every module.
func (app *App) ExportGenesis() map[string]json.RawMessage {
	app.mtx.RLock()
	defer app.mtx.RUnlock()

	ctx := app.queryContext()

	return map[string]json.RawMessage{
		tokentypes.ModuleName:   app.tokenModule.ExportGenesis(ctx, app.appCodec),
		auctiontypes.ModuleName: app.auctionModule.ExportGenesis(ctx, app.appCodec),
	}
}

// CreateHolder opens a balance record and mints its initial balance.
func (app *App) CreateHolder(holder tokentypes.Holder, amount math.Int) error {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	ctx, write := app.newContext().CacheContext()
	if err := app.TokenKeeper.CreateHolder(ctx, holder); err != nil {
		return err
	}

	if amount.IsPositive() {
		if err := app.TokenKeeper.Mint(ctx, holder.Address, amount); err != nil {
			return err
		}
	}

	write()
	return nil
}

// Deliver authenticates msg against signers, runs the ante chain and routes it
// to its handler. Nothing is written unless every step succeeds.
func (app *App) Deliver(msg auctiontypes.Msg, signers ...sdk.AccAddress) (Result, error) {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	ctx := app.newContext()
	cacheCtx, write := ctx.CacheContext()

	if _, err := app.anteHandler(cacheCtx, msg, signers); err != nil {
		return Result{}, err
	}

	res, err := app.route(cacheCtx, msg)
	if err != nil {
		app.logger.Debug("message failed", "msg", fmt.Sprintf("%T", msg), "err", err)
		return Result{}, err
	}

	write()

	return Result{
		Response: res,
		Events:   ctx.EventManager().Events(),
	}, nil
}

func (app *App) route(ctx sdk.Context, msg auctiontypes.Msg) (interface{}, error) {
	switch msg := msg.(type) {
	case *auctiontypes.MsgCreateAuction:
		return app.msgServer.CreateAuction(ctx, msg)
	case *auctiontypes.MsgBid:
		return app.msgServer.Bid(ctx, msg)
	case *auctiontypes.MsgCloseAuction:
		return app.msgServer.CloseAuction(ctx, msg)
	case *auctiontypes.MsgUpdateParams:
		return app.msgServer.UpdateParams(ctx, msg)
	default:
		return nil, errors.Wrapf(auctiontypes.ErrInvalidAuction, "unrecognized message type %T", msg)
	}
}

// Commit persists the delivered messages as a new version and advances the
// block height.
func (app *App) Commit() storetypes.CommitID {
	app.mtx.Lock()
	defer app.mtx.Unlock()

	id := app.cms.Commit()
	app.header.Height = id.Version + 1

	app.logger.Info("committed state", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))

	return id
}

// QueryServer returns the auction query service. Its methods take a context
// from QueryContext.
func (app *App) QueryServer() auctiontypes.QueryServer {
	return app.queryServer
}

// Holder returns the balance record at addr.
func (app *App) Holder(addr sdk.AccAddress) (tokentypes.Holder, error) {
	app.mtx.RLock()
	defer app.mtx.RUnlock()

	return app.TokenKeeper.GetHolder(app.queryContext(), addr)
}

// Auction returns the auction record with the given id.
func (app *App) Auction(id uint64) (auctiontypes.Auction, error) {
	app.mtx.RLock()
	defer app.mtx.RUnlock()

	return app.AuctionKeeper.GetAuction(app.queryContext(), id)
}

// QueryContext returns a read-only context for r. The caller must invoke the
// returned func once done to let deliveries resume.
func (app *App) QueryContext(r *http.Request) (context.Context, func()) {
	app.mtx.RLock()

	ctx := app.queryContext()
	if r != nil {
		ctx = ctx.WithContext(r.Context())
	}

	return ctx, app.mtx.RUnlock
}

// Router returns the read-only HTTP routes of both modules.
func (app *App) Router() *mux.Router {
	r := mux.NewRouter()
	app.tokenModule.RegisterRESTRoutes(r, app.QueryContext)
	app.auctionModule.RegisterRESTRoutes(r, app.QueryContext)

	return r
}

func (app *App) newContext() sdk.Context {
	return sdk.NewContext(app.cms, app.header, false, app.logger)
}

// queryContext branches the store so reads never reach the working tree.
func (app *App) queryContext() sdk.Context {
	return sdk.NewContext(app.cms.CacheMultiStore(), app.header, false, app.logger)
}
