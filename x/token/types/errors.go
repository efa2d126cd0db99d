package types

import (
	"cosmossdk.io/errors"
)

var (
	ErrHolderNotFound    = errors.Register(ModuleName, 2, "holder not found")
	ErrHolderExists      = errors.Register(ModuleName, 3, "holder already exists")
	ErrInsufficientFunds = errors.Register(ModuleName, 4, "insufficient funds")
	ErrUnauthorized      = errors.Register(ModuleName, 5, "signer is not the holder owner")
	ErrDenomMismatch     = errors.Register(ModuleName, 6, "denom mismatch")
	ErrInvalidAmount     = errors.Register(ModuleName, 7, "invalid amount")
	ErrInvalidHolder     = errors.Register(ModuleName, 8, "invalid holder")
)
