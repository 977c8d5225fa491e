package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccAddressBech32RoundTrip(t *testing.T) {
	addr := AccAddress([]byte("________twenty_bytes"))

	encoded := addr.String()
	assert.Contains(t, encoded, Bech32MainPrefix+"1")

	decoded, err := AccAddressFromBech32(encoded)
	require.Nil(t, err)
	assert.True(t, addr.Equals(decoded))
}

func TestAccAddressFromBech32Errors(t *testing.T) {
	_, err := AccAddressFromBech32("")
	require.NotNil(t, err)

	_, err = AccAddressFromBech32("  ")
	require.NotNil(t, err)

	_, err = AccAddressFromBech32("notbech32")
	require.NotNil(t, err)

	// valid bech32, wrong prefix
	other := AccAddress([]byte("________twenty_bytes")).String()
	_, err = AccAddressFromBech32("xx" + other[len(Bech32MainPrefix):])
	require.NotNil(t, err)
}

func TestAccAddressEmpty(t *testing.T) {
	var addr AccAddress
	assert.True(t, addr.Empty())
	assert.Equal(t, "", addr.String())
	assert.True(t, addr.Equals(AccAddress{}))
	assert.False(t, addr.Equals(AccAddress([]byte("________twenty_bytes"))))
}

func TestAccAddressJSON(t *testing.T) {
	addr := AccAddress([]byte("________twenty_bytes"))

	bz, err := json.Marshal(addr)
	require.Nil(t, err)

	var decoded AccAddress
	require.Nil(t, json.Unmarshal(bz, &decoded))
	assert.True(t, addr.Equals(decoded))

	var empty AccAddress
	require.Nil(t, json.Unmarshal([]byte(`""`), &empty))
	assert.True(t, empty.Empty())
}
