package types

import (
	sdk "github.com/mintgate-chain/mintgate/types"
)

type CodeType = sdk.CodeType

const (
	DefaultCodespace          sdk.CodespaceType = "mintcap"
	CodeNotOwner              CodeType          = 101
	CodeNotMinter             CodeType          = 102
	CodeInsufficientAllowance CodeType          = 103
	CodeOfferAlreadyExists    CodeType          = 104
	CodeNoPendingOffer        CodeType          = 105
	CodeAlreadyOwner          CodeType          = 106
	CodeAlreadyMinter         CodeType          = 107
	CodeCapabilityStoreExists CodeType          = 108
	CodeNoCapabilityStore     CodeType          = 109
)

// ErrNotOwner returns an error for an owner-gated operation invoked
// without a valid owner capability.
func ErrNotOwner(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeNotOwner, msg)
}

// ErrNotMinter returns an error for a caller holding no minter grant.
func ErrNotMinter(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeNotMinter, msg)
}

// ErrInsufficientAllowance returns an error for a mint exceeding the
// remaining allowance.
func ErrInsufficientAllowance(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeInsufficientAllowance, msg)
}

func ErrOfferAlreadyExists(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeOfferAlreadyExists, msg)
}

func ErrNoPendingOffer(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeNoPendingOffer, msg)
}

func ErrAlreadyOwner(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeAlreadyOwner, msg)
}

func ErrAlreadyMinter(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeAlreadyMinter, msg)
}

func ErrCapabilityStoreExists(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeCapabilityStoreExists, msg)
}

func ErrNoCapabilityStore(codespace sdk.CodespaceType, msg string) sdk.Error {
	return sdk.NewError(codespace, CodeNoCapabilityStore, msg)
}
