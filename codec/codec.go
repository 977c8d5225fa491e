package codec

import (
	amino "github.com/tendermint/go-amino"
	cryptoAmino "github.com/tendermint/tendermint/crypto/encoding/amino"
)

// Codec is the wire codec for binary encoding/decoding of store
// records and messages.
type Codec = amino.Codec

func New() *Codec {
	return amino.NewCodec()
}

// RegisterCrypto registers the tendermint crypto types on the codec.
func RegisterCrypto(cdc *Codec) {
	cryptoAmino.RegisterAmino(cdc)
}

// MarshalJSONIndent provides an auxiliary function to return Proto3
// JSON encoded bytes with indentation.
func MarshalJSONIndent(cdc *Codec, obj interface{}) ([]byte, error) {
	return cdc.MarshalJSONIndent(obj, "", "  ")
}
