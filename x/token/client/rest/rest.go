package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gorilla/mux"

	"github.com/skip-mev/escrow-auction/x/token/types"
)

// HolderReader is the read side of the token keeper served over HTTP.
type HolderReader interface {
	GetHolder(ctx context.Context, addr sdk.AccAddress) (types.Holder, error)
}

// ContextFunc returns a query context for the request and a func releasing it.
type ContextFunc func(r *http.Request) (context.Context, func())

// RegisterRoutes registers the token module's read-only routes.
func RegisterRoutes(r *mux.Router, reader HolderReader, ctxFn ContextFunc) {
	r.HandleFunc("/token/holders/{address}", holderHandler(reader, ctxFn)).Methods(http.MethodGet)
}

func holderHandler(reader HolderReader, ctxFn ContextFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		addr, err := sdk.AccAddressFromBech32(mux.Vars(r)["address"])
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, release := ctxFn(r)
		defer release()

		holder, err := reader.GetHolder(ctx, addr)
		switch {
		case errors.IsOf(err, types.ErrHolderNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case err != nil:
			respondError(w, http.StatusInternalServerError, err.Error())
		default:
			respondJSON(w, http.StatusOK, holder)
		}
	}
}

func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, map[string]string{
		"error": message,
	})
}
