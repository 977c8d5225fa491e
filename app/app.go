package app

import (
	"fmt"

	uuid "github.com/satori/go.uuid"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/mintgate-chain/mintgate/codec"
	"github.com/mintgate-chain/mintgate/store"
	sdk "github.com/mintgate-chain/mintgate/types"
	"github.com/mintgate-chain/mintgate/x/mintcap"
	"github.com/mintgate-chain/mintgate/x/token"
)

const appName = "MintgateApp"

// MakeCodec registers every module's concrete types on one codec.
func MakeCodec() *codec.Codec {
	cdc := codec.New()
	token.RegisterCodec(cdc)
	mintcap.RegisterCodec(cdc)
	codec.RegisterCrypto(cdc)
	cdc.Seal()
	return cdc
}

// MintgateApp wires the token engine and the delegation layer over one
// multistore and dispatches messages to their module handlers.
type MintgateApp struct {
	logger log.Logger
	db     dbm.DB
	cdc    *codec.Codec
	cms    *store.MultiStore
	router map[string]sdk.Handler
	locks  *keyedLocks

	keyToken   *sdk.KVStoreKey
	keyMintcap *sdk.KVStoreKey

	TokenKeeper   token.Keeper
	MintcapKeeper mintcap.Keeper
}

func NewMintgateApp(logger log.Logger, db dbm.DB) *MintgateApp {
	cdc := MakeCodec()

	app := &MintgateApp{
		logger:     logger.With("app", appName),
		db:         db,
		cdc:        cdc,
		cms:        store.NewMultiStore(db),
		router:     make(map[string]sdk.Handler),
		locks:      newKeyedLocks(),
		keyToken:   sdk.NewKVStoreKey(token.StoreKey),
		keyMintcap: sdk.NewKVStoreKey(mintcap.StoreKey),
	}

	app.cms.MountStore(app.keyToken)
	app.cms.MountStore(app.keyMintcap)

	app.TokenKeeper = token.NewKeeper(cdc, app.keyToken)
	app.MintcapKeeper = mintcap.NewKeeper(cdc, app.keyMintcap, app.TokenKeeper)

	app.router[mintcap.RouterKey] = mintcap.NewHandler(app.MintcapKeeper)

	return app
}

// Context returns a fresh context over the committed state, for reads
// and for callers that manage their own write scope.
func (app *MintgateApp) Context() sdk.Context {
	return sdk.NewContext(app.cms, app.logger)
}

// Deliver validates and executes one message. Execution runs under the
// message's lock keys against a write buffer; the buffer is committed
// only when the handler reports success, so a failed message leaves no
// partial writes behind.
func (app *MintgateApp) Deliver(msg sdk.Msg) sdk.Result {
	if err := msg.ValidateBasic(); err != nil {
		return err.Result()
	}

	handler, ok := app.router[msg.Route()]
	if !ok {
		return sdk.ErrUnknownRequest(fmt.Sprintf("unrecognized message route: %s", msg.Route())).Result()
	}

	release := app.locks.Acquire(lockKeysFor(msg))
	defer release()

	logger := app.logger.With("trace", uuid.NewV4().String(), "msg_type", msg.Type())

	ctx := sdk.NewContext(app.cms, logger)
	cacheCtx, writeCache := ctx.CacheContext()

	result := handler(cacheCtx, msg)
	if result.IsOK() {
		writeCache()
	} else {
		logger.Info("message rejected", "codespace", result.Codespace, "code", result.Code, "log", result.Log)
	}
	return result
}

// lockKeysFor prefers the message's declared lock keys and falls back
// to per-signer keys for messages that declare none.
func lockKeysFor(msg sdk.Msg) []string {
	if lk, ok := msg.(LockKeyer); ok {
		if keys := lk.LockKeys(); len(keys) > 0 {
			return keys
		}
	}

	signers := msg.GetSigners()
	keys := make([]string, 0, len(signers))
	for _, signer := range signers {
		keys = append(keys, "signer/"+signer.String())
	}
	return keys
}
