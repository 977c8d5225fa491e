package mintcap

import (
	"crypto/sha256"
	"testing"

	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"
	"golang.org/x/crypto/ripemd160"

	"github.com/mintgate-chain/mintgate/codec"
	"github.com/mintgate-chain/mintgate/store"
	sdk "github.com/mintgate-chain/mintgate/types"
	"github.com/mintgate-chain/mintgate/x/mintcap/types"
	"github.com/mintgate-chain/mintgate/x/token"
)

type testInput struct {
	cdc     *codec.Codec
	ctx     sdk.Context
	tk      token.Keeper
	keeper  Keeper
	handler sdk.Handler
}

func setupTestEnv(t *testing.T) testInput {
	cdc := codec.New()
	token.RegisterCodec(cdc)
	types.RegisterCodec(cdc)
	codec.RegisterCrypto(cdc)
	cdc.Seal()

	keyToken := sdk.NewKVStoreKey(token.StoreKey)
	keyMintcap := sdk.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	ms := store.NewMultiStore(db)
	ms.MountStore(keyToken)
	ms.MountStore(keyMintcap)

	ctx := sdk.NewContext(ms, log.NewNopLogger())

	tk := token.NewKeeper(cdc, keyToken)
	keeper := NewKeeper(cdc, keyMintcap, tk)

	return testInput{
		cdc:     cdc,
		ctx:     ctx,
		tk:      tk,
		keeper:  keeper,
		handler: NewHandler(keeper),
	}
}

// newTestAddr derives a deterministic 20-byte address from a name, the
// same way account addresses are derived from public keys.
func newTestAddr(name string) sdk.AccAddress {
	digest := sha256.Sum256([]byte(name))
	hasher := ripemd160.New()
	hasher.Write(digest[:])
	return sdk.AccAddress(hasher.Sum(nil))
}
