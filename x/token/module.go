package token

import (
	"encoding/json"
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/gorilla/mux"

	"github.com/skip-mev/escrow-auction/x/token/client/rest"
	"github.com/skip-mev/escrow-auction/x/token/keeper"
	"github.com/skip-mev/escrow-auction/x/token/types"
)

var (
	_ module.HasName    = AppModule{}
	_ module.HasGenesis = AppModule{}
)

// AppModuleBasic defines the basic application module used by the token module.
type AppModuleBasic struct {
	cdc *codec.LegacyAmino
}

// Name returns the token module's name.
func (AppModuleBasic) Name() string {
	return types.ModuleName
}

// RegisterLegacyAminoCodec registers the token module's types on the given LegacyAmino codec.
func (AppModuleBasic) RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	types.RegisterLegacyAminoCodec(cdc)
}

// DefaultGenesis returns default genesis state as raw bytes for the token module.
func (b AppModuleBasic) DefaultGenesis(_ codec.JSONCodec) json.RawMessage {
	return b.cdc.MustMarshalJSON(types.DefaultGenesisState())
}

// ValidateGenesis performs genesis state validation for the token module.
func (b AppModuleBasic) ValidateGenesis(_ codec.JSONCodec, _ client.TxEncodingConfig, bz json.RawMessage) error {
	var genState types.GenesisState
	if err := b.cdc.UnmarshalJSON(bz, &genState); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}

	return genState.Validate()
}

// AppModule wires the token keeper into a host application.
type AppModule struct {
	AppModuleBasic

	keeper keeper.Keeper
}

// NewAppModule creates a new AppModule object.
func NewAppModule(cdc *codec.LegacyAmino, keeper keeper.Keeper) AppModule {
	return AppModule{
		AppModuleBasic: AppModuleBasic{cdc: cdc},
		keeper:         keeper,
	}
}

// InitGenesis performs the module's genesis initialization.
func (am AppModule) InitGenesis(ctx sdk.Context, _ codec.JSONCodec, bz json.RawMessage) {
	var genState types.GenesisState
	am.cdc.MustUnmarshalJSON(bz, &genState)

	am.keeper.InitGenesis(ctx, genState)
}

// ExportGenesis returns the token module's exported genesis state as raw JSON bytes.
func (am AppModule) ExportGenesis(ctx sdk.Context, _ codec.JSONCodec) json.RawMessage {
	return am.cdc.MustMarshalJSON(am.keeper.ExportGenesis(ctx))
}

// RegisterRESTRoutes registers the read-only HTTP routes of the token module.
func (am AppModule) RegisterRESTRoutes(r *mux.Router, ctxFn rest.ContextFunc) {
	rest.RegisterRoutes(r, am.keeper, ctxFn)
}
