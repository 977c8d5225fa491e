package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tendermint/tendermint/libs/bech32"
)

const (
	// AddrLen defines a valid address length
	AddrLen = 20

	// Bech32MainPrefix defines the Bech32 prefix of an account address
	Bech32MainPrefix = "mg"
)

// AccAddress is the account identity every capability and balance is
// keyed by. The host signing system is assumed to have verified that
// the transaction sender controls this address.
type AccAddress []byte

// AccAddressFromBech32 creates an AccAddress from a Bech32 string.
func AccAddressFromBech32(address string) (AccAddress, error) {
	if len(strings.TrimSpace(address)) == 0 {
		return AccAddress{}, errors.New("empty address string is not allowed")
	}

	prefix, bz, err := bech32.DecodeAndConvert(address)
	if err != nil {
		return nil, err
	}
	if prefix != Bech32MainPrefix {
		return nil, fmt.Errorf("invalid bech32 prefix, expected %s, got %s", Bech32MainPrefix, prefix)
	}
	if len(bz) != AddrLen {
		return nil, fmt.Errorf("incorrect address length, expected %d, got %d", AddrLen, len(bz))
	}

	return AccAddress(bz), nil
}

// Equals returns boolean for whether two AccAddresses are equal.
func (aa AccAddress) Equals(aa2 AccAddress) bool {
	if aa.Empty() && aa2.Empty() {
		return true
	}
	return bytes.Equal(aa.Bytes(), aa2.Bytes())
}

// Empty returns boolean for whether an AccAddress is empty.
func (aa AccAddress) Empty() bool {
	return len(aa) == 0
}

// Bytes returns the raw address bytes.
func (aa AccAddress) Bytes() []byte {
	return aa
}

func (aa AccAddress) String() string {
	if aa.Empty() {
		return ""
	}
	bech32Addr, err := bech32.ConvertAndEncode(Bech32MainPrefix, aa.Bytes())
	if err != nil {
		panic(err)
	}
	return bech32Addr
}

// MarshalJSON marshals to JSON using Bech32.
func (aa AccAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(aa.String())
}

// UnmarshalJSON unmarshals from JSON assuming Bech32 encoding.
func (aa *AccAddress) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*aa = AccAddress{}
		return nil
	}

	aa2, err := AccAddressFromBech32(s)
	if err != nil {
		return err
	}
	*aa = aa2
	return nil
}
