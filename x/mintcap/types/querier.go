package types

import sdk "github.com/mintgate-chain/mintgate/types"

// query endpoints supported by the mintcap Querier
const (
	QueryCapabilityStore = "capability_store"
	QueryOwner           = "owner"
	QueryMinter          = "minter"
	QueryPendingMinter   = "pending_minter"
)

// QueryBySymbolParams selects one token type.
type QueryBySymbolParams struct {
	Symbol sdk.Symbol `json:"symbol"`
}

func NewQueryBySymbolParams(symbol sdk.Symbol) QueryBySymbolParams {
	return QueryBySymbolParams{Symbol: symbol}
}

// QueryByHolderParams selects one record by token type and holder.
type QueryByHolderParams struct {
	Symbol  sdk.Symbol     `json:"symbol"`
	Address sdk.AccAddress `json:"address"`
}

func NewQueryByHolderParams(symbol sdk.Symbol, address sdk.AccAddress) QueryByHolderParams {
	return QueryByHolderParams{Symbol: symbol, Address: address}
}

// QueryResOwner reports whether an address holds the owner capability.
type QueryResOwner struct {
	IsOwner bool           `json:"is_owner"`
	Base    sdk.AccAddress `json:"base,omitempty"`
}
