package types

import sdk "github.com/mintgate-chain/mintgate/types"

const (
	// module name
	ModuleName = "mintcap"

	// StoreKey to be used when creating the KVStore
	StoreKey = ModuleName

	// RouterKey is the message route
	RouterKey = ModuleName

	// QuerierRoute is the querier route
	QuerierRoute = ModuleName

	TypeMsgNewToken     = "new_token"
	TypeMsgMint         = "mint"
	TypeMsgOfferOwner   = "offer_owner"
	TypeMsgAcceptOwner  = "accept_owner"
	TypeMsgOfferMinter  = "offer_minter"
	TypeMsgAcceptMinter = "accept_minter"
)

// Store layout, all regions keyed symbol-first:
//
//	0x01 + symbol                      -> CapabilityStoreRecord
//	0x02 + symbol + holder address     -> OwnerGrant
//	0x03 + symbol + holder address     -> MinterGrant (held directly)
//	0x04 + symbol + recipient address  -> MinterGrant (pending transfer)
//	0x05 + symbol + sender address     -> OwnerOffer
var (
	CapabilityStoreKeyPrefix = []byte{0x01}
	OwnerGrantKeyPrefix      = []byte{0x02}
	MinterGrantKeyPrefix     = []byte{0x03}
	PendingMinterKeyPrefix   = []byte{0x04}
	OwnerOfferKeyPrefix      = []byte{0x05}
)

func CapabilityStoreKey(symbol sdk.Symbol) []byte {
	return append(CapabilityStoreKeyPrefix, []byte(symbol)...)
}

func OwnerGrantKey(symbol sdk.Symbol, holder sdk.AccAddress) []byte {
	return grantKey(OwnerGrantKeyPrefix, symbol, holder)
}

func MinterGrantKey(symbol sdk.Symbol, holder sdk.AccAddress) []byte {
	return grantKey(MinterGrantKeyPrefix, symbol, holder)
}

func PendingMinterKey(symbol sdk.Symbol, recipient sdk.AccAddress) []byte {
	return grantKey(PendingMinterKeyPrefix, symbol, recipient)
}

func OwnerOfferKey(symbol sdk.Symbol, sender sdk.AccAddress) []byte {
	return grantKey(OwnerOfferKeyPrefix, symbol, sender)
}

func grantKey(prefix []byte, symbol sdk.Symbol, addr sdk.AccAddress) []byte {
	key := append(append([]byte{}, prefix...), []byte(symbol)...)
	return append(key, addr.Bytes()...)
}

// AddressFromGrantKey recovers the trailing fixed-length address from a
// grant/offer store key.
func AddressFromGrantKey(key []byte) sdk.AccAddress {
	return sdk.AccAddress(key[len(key)-sdk.AddrLen:])
}
