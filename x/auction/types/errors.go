package types

import (
	"cosmossdk.io/errors"
)

var (
	ErrAuthorizationMismatch = errors.Register(ModuleName, 2, "authorization mismatch")
	ErrInvalidState          = errors.Register(ModuleName, 3, "auction is not ongoing")
	ErrBidTooLow             = errors.Register(ModuleName, 4, "bid price too low")
	ErrAuctionNotFound       = errors.Register(ModuleName, 5, "auction not found")
	ErrInvalidAuction        = errors.Register(ModuleName, 6, "invalid auction")
	ErrInsufficientFunds     = errors.Register(ModuleName, 7, "insufficient escrow funds")
	ErrUnauthorizedSigner    = errors.Register(ModuleName, 8, "message not signed by the required signer")
)
