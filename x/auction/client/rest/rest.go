package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"cosmossdk.io/errors"
	"github.com/gorilla/mux"

	"github.com/skip-mev/escrow-auction/x/auction/types"
)

// ContextFunc returns a query context for the request and a func releasing it.
type ContextFunc func(r *http.Request) (context.Context, func())

// RegisterRoutes registers the auction module's read-only routes. List routes
// accept ?ongoing=true to hide settled auctions.
func RegisterRoutes(r *mux.Router, qs types.QueryServer, ctxFn ContextFunc) {
	r.HandleFunc("/auction/params", paramsHandler(qs, ctxFn)).Methods(http.MethodGet)
	r.HandleFunc("/auction/auctions", auctionsHandler(qs, ctxFn)).Methods(http.MethodGet)
	r.HandleFunc("/auction/auctions/{id}", auctionHandler(qs, ctxFn)).Methods(http.MethodGet)
	r.HandleFunc("/auction/sellers/{seller}/auctions", sellerAuctionsHandler(qs, ctxFn)).Methods(http.MethodGet)
}

func paramsHandler(qs types.QueryServer, ctxFn ContextFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, release := ctxFn(r)
		defer release()

		res, err := qs.Params(ctx, &types.QueryParamsRequest{})
		respond(w, res, err)
	}
}

func auctionHandler(qs types.QueryServer, ctxFn ContextFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid auction id")
			return
		}

		ctx, release := ctxFn(r)
		defer release()

		res, err := qs.Auction(ctx, &types.QueryAuctionRequest{AuctionId: id})
		respond(w, res, err)
	}
}

func auctionsHandler(qs types.QueryServer, ctxFn ContextFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ongoing, err := ongoingOnly(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, release := ctxFn(r)
		defer release()

		res, err := qs.Auctions(ctx, &types.QueryAuctionsRequest{OngoingOnly: ongoing})
		respond(w, res, err)
	}
}

func sellerAuctionsHandler(qs types.QueryServer, ctxFn ContextFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ongoing, err := ongoingOnly(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, release := ctxFn(r)
		defer release()

		res, err := qs.AuctionsBySeller(ctx, &types.QueryAuctionsBySellerRequest{
			Seller:      mux.Vars(r)["seller"],
			OngoingOnly: ongoing,
		})
		respond(w, res, err)
	}
}

func ongoingOnly(r *http.Request) (bool, error) {
	v := r.URL.Query().Get("ongoing")
	if v == "" {
		return false, nil
	}

	return strconv.ParseBool(v)
}

func respond(w http.ResponseWriter, res interface{}, err error) {
	switch {
	case errors.IsOf(err, types.ErrAuctionNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case err != nil:
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondJSON(w, http.StatusOK, res)
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
