package types

import sdk "github.com/mintgate-chain/mintgate/types"

const (
	// module name
	ModuleName = "token"

	// StoreKey to be used when creating the KVStore
	StoreKey = ModuleName
)

var (
	TokenKeyPrefix   = []byte{0x01}
	BalanceKeyPrefix = []byte{0x02}
)

func TokenKey(symbol sdk.Symbol) []byte {
	return append(TokenKeyPrefix, []byte(symbol)...)
}

// BalanceKey is keyed symbol-first so one token's balances are
// contiguous in the store.
func BalanceKey(symbol sdk.Symbol, addr sdk.AccAddress) []byte {
	key := append(BalanceKeyPrefix, []byte(symbol)...)
	return append(key, addr.Bytes()...)
}
