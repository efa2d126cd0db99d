package auction

import (
	"encoding/json"
	"fmt"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/gorilla/mux"

	"github.com/skip-mev/escrow-auction/x/auction/ante"
	"github.com/skip-mev/escrow-auction/x/auction/client/rest"
	"github.com/skip-mev/escrow-auction/x/auction/keeper"
	"github.com/skip-mev/escrow-auction/x/auction/types"
)

var (
	_ module.HasName             = AppModule{}
	_ module.HasConsensusVersion = AppModule{}
	_ module.HasGenesis          = AppModule{}
)

// ConsensusVersion defines the current x/auction module consensus version.
const ConsensusVersion = 1

// AppModuleBasic defines the basic application module used by the auction module.
// Its state is amino encoded, so the JSONCodec arguments of the genesis
// methods are not used.
type AppModuleBasic struct {
	cdc *codec.LegacyAmino
}

// Name returns the auction module's name.
func (AppModuleBasic) Name() string {
	return types.ModuleName
}

// RegisterLegacyAminoCodec registers the auction module's types on the given LegacyAmino codec.
func (AppModuleBasic) RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	types.RegisterLegacyAminoCodec(cdc)
}

// DefaultGenesis returns default genesis state as raw bytes for the auction module.
func (b AppModuleBasic) DefaultGenesis(_ codec.JSONCodec) json.RawMessage {
	return b.cdc.MustMarshalJSON(types.DefaultGenesisState())
}

// ValidateGenesis performs genesis state validation for the auction module.
func (b AppModuleBasic) ValidateGenesis(_ codec.JSONCodec, _ client.TxEncodingConfig, bz json.RawMessage) error {
	var genState types.GenesisState
	if err := b.cdc.UnmarshalJSON(bz, &genState); err != nil {
		return fmt.Errorf("failed to unmarshal %s genesis state: %w", types.ModuleName, err)
	}

	return genState.Validate()
}

// AppModule wires the auction keeper into a host application.
type AppModule struct {
	AppModuleBasic

	keeper      keeper.Keeper
	tokenKeeper types.TokenKeeper
}

// NewAppModule creates a new AppModule object.
func NewAppModule(cdc *codec.LegacyAmino, keeper keeper.Keeper, tokenKeeper types.TokenKeeper) AppModule {
	return AppModule{
		AppModuleBasic: AppModuleBasic{cdc: cdc},
		keeper:         keeper,
		tokenKeeper:    tokenKeeper,
	}
}

// ConsensusVersion implements AppModule/ConsensusVersion.
func (AppModule) ConsensusVersion() uint64 { return ConsensusVersion }

// InitGenesis performs the module's genesis initialization.
func (am AppModule) InitGenesis(ctx sdk.Context, _ codec.JSONCodec, bz json.RawMessage) {
	var genState types.GenesisState
	am.cdc.MustUnmarshalJSON(bz, &genState)

	am.keeper.InitGenesis(ctx, genState)
}

// ExportGenesis returns the auction module's exported genesis state as raw JSON bytes.
func (am AppModule) ExportGenesis(ctx sdk.Context, _ codec.JSONCodec) json.RawMessage {
	return am.cdc.MustMarshalJSON(am.keeper.ExportGenesis(ctx))
}

// MsgServer returns the module's message service.
func (am AppModule) MsgServer() types.MsgServer {
	return keeper.NewMsgServerImpl(am.keeper)
}

// QueryServer returns the module's query service.
func (am AppModule) QueryServer() types.QueryServer {
	return keeper.NewQueryServer(am.keeper)
}

// AnteHandler returns the checks run on every auction message before delivery.
func (am AppModule) AnteHandler() ante.AnteHandler {
	return ante.NewAnteHandler(am.keeper, am.tokenKeeper)
}

// RegisterRESTRoutes registers the read-only HTTP routes of the auction module.
func (am AppModule) RegisterRESTRoutes(r *mux.Router, ctxFn rest.ContextFunc) {
	rest.RegisterRoutes(r, am.QueryServer(), ctxFn)
}
