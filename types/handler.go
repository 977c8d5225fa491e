package types

import (
	abci "github.com/tendermint/tendermint/abci/types"
)

// Msg is one parameterized transaction submitted by an external caller.
type Msg interface {
	// Route returns the name of the module that handles the message.
	Route() string

	// Type returns a human-readable message name.
	Type() string

	// ValidateBasic runs stateless checks on the message.
	ValidateBasic() Error

	// GetSignBytes returns the canonical byte representation the signer
	// commits to.
	GetSignBytes() []byte

	// GetSigners returns the addresses that must have signed the message.
	GetSigners() []AccAddress
}

// Handler executes one message against module state.
type Handler func(ctx Context, msg Msg) Result

// Querier handles read-only state queries.
type Querier func(ctx Context, path []string, req abci.RequestQuery) ([]byte, Error)
