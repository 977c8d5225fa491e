package mintcap

import (
	"fmt"
	"strings"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/mintgate-chain/mintgate/codec"
	sdk "github.com/mintgate-chain/mintgate/types"
	"github.com/mintgate-chain/mintgate/x/mintcap/internal"
	"github.com/mintgate-chain/mintgate/x/mintcap/types"
	"github.com/mintgate-chain/mintgate/x/token"
)

// OwnerCapability proves possession of the owner role for one token
// type. Values only originate from this package, backed by a stored
// grant; the zero value carries no rights.
type OwnerCapability struct {
	symbol sdk.Symbol
	base   sdk.AccAddress
}

func (c OwnerCapability) Symbol() sdk.Symbol   { return c.symbol }
func (c OwnerCapability) Base() sdk.AccAddress { return c.base }

func (c OwnerCapability) isZero() bool {
	return c.symbol == "" || c.base.Empty()
}

// MinterRecord is a live, allowance-bounded duplicate of the root mint
// authority. Holder is empty while the record is not yet bound to an
// account (fresh from CreateMinter, or staged for handoff).
type MinterRecord struct {
	symbol    sdk.Symbol
	base      sdk.AccAddress
	holder    sdk.AccAddress
	authority token.MintAuthority
	allowance uint64
}

func (r MinterRecord) Symbol() sdk.Symbol    { return r.symbol }
func (r MinterRecord) Base() sdk.AccAddress  { return r.base }
func (r MinterRecord) Holder() sdk.AccAddress { return r.holder }
func (r MinterRecord) Allowance() uint64     { return r.allowance }

// Keeper implements the delegation protocol: it owns the capability
// stores, owner/minter grants, the pending-transfer registry and the
// owner offer slots for every token type.
type Keeper struct {
	storeKey sdk.StoreKey // Unexposed key to access store from sdk.Context
	cdc      *codec.Codec // The wire codec for binary encoding/decoding
	tk       internal.TokenKeeper
}

func NewKeeper(cdc *codec.Codec, storeKey sdk.StoreKey, tk internal.TokenKeeper) Keeper {
	return Keeper{
		storeKey: storeKey,
		cdc:      cdc,
		tk:       tk,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// Create stores the root authorities and hard cap under base and
// returns a fresh owner capability referencing them. The caller must
// legitimately hold both authorities, obtained from the token engine.
// The pending-transfer registry for the token type starts empty: its
// key region simply has no entries yet.
func (k Keeper) Create(ctx sdk.Context, base sdk.AccAddress, mintAuth token.MintAuthority, burnAuth token.BurnAuthority, hardCap uint64) (OwnerCapability, sdk.Error) {
	if base.Empty() {
		return OwnerCapability{}, sdk.ErrInvalidAddress("base address can not be empty")
	}

	symbol := mintAuth.Symbol()
	if symbol == "" || symbol != burnAuth.Symbol() || mintAuth.Issuer() != burnAuth.Issuer() {
		return OwnerCapability{}, sdk.ErrInvalidTx("mint and burn authorities must belong to one token type")
	}
	if k.GetCapabilityStore(ctx, symbol) != nil {
		return OwnerCapability{}, types.ErrCapabilityStoreExists(types.DefaultCodespace,
			fmt.Sprintf("capability store for %s already exists", symbol))
	}

	k.setCapabilityStore(ctx, types.NewCapabilityStoreRecord(symbol, base, mintAuth.Issuer(), hardCap))
	k.setOwnerGrant(ctx, base, types.OwnerGrant{Symbol: symbol, Base: base})

	return OwnerCapability{symbol: symbol, base: base}, nil
}

// CreateWithNewToken first asks the token engine to mint a brand-new
// token type and then establishes its capability store. This is the
// only path that also creates the underlying token; engine errors for
// invalid names, decimals or duplicate types propagate unchanged.
func (k Keeper) CreateWithNewToken(ctx sdk.Context, acct sdk.AccAddress, name string, decimals uint64, hardCap uint64) (OwnerCapability, sdk.Error) {
	symbol := sdk.Symbol(strings.ToLower(name))
	info := token.NewTokenInfo(name, name, symbol, types.ModuleName, decimals, true)

	mintAuth, burnAuth, err := k.tk.CreateToken(ctx, info)
	if err != nil {
		return OwnerCapability{}, err
	}

	return k.Create(ctx, acct, mintAuth, burnAuth, hardCap)
}

// OwnerCapabilityOf resolves the owner capability held by addr.
// Possession of the returned value is the authorization proof for the
// owner-gated operations; there is no boolean bypass.
func (k Keeper) OwnerCapabilityOf(ctx sdk.Context, addr sdk.AccAddress, symbol sdk.Symbol) (OwnerCapability, sdk.Error) {
	grant := k.GetOwnerGrant(ctx, symbol, addr)
	if grant == nil {
		return OwnerCapability{}, types.ErrNotOwner(types.DefaultCodespace,
			fmt.Sprintf("%s holds no owner capability for %s", addr, symbol))
	}
	return OwnerCapability{symbol: symbol, base: grant.Base}, nil
}

// CreateMinter duplicates the root mint authority into a new record
// bounded by allowance. Duplication is safe because the authority
// itself encodes no ceiling; the ceiling lives in the record.
// The allowance is not compared against the recorded hard cap: the cap
// is stored but unenforced (see CapabilityStoreRecord.HardCap).
func (k Keeper) CreateMinter(ctx sdk.Context, owner OwnerCapability, allowance uint64) (MinterRecord, sdk.Error) {
	if owner.isZero() {
		return MinterRecord{}, types.ErrNotOwner(types.DefaultCodespace, "zero-value owner capability")
	}

	cs := k.GetCapabilityStore(ctx, owner.symbol)
	if cs == nil {
		return MinterRecord{}, types.ErrNoCapabilityStore(types.DefaultCodespace,
			fmt.Sprintf("no capability store for %s", owner.symbol))
	}
	if !cs.Base.Equals(owner.base) {
		return MinterRecord{}, types.ErrNotOwner(types.DefaultCodespace,
			fmt.Sprintf("owner capability does not reference the capability store of %s", owner.symbol))
	}

	mintAuth, _, err := k.tk.Authority(ctx, owner.symbol, cs.Issuer)
	if err != nil {
		return MinterRecord{}, err
	}

	return MinterRecord{
		symbol:    owner.symbol,
		base:      owner.base,
		authority: mintAuth,
		allowance: allowance,
	}, nil
}

// MintWithCapability debits the record's allowance and then issues
// through the token engine. The debit is applied (and, for held
// records, persisted) strictly before the issuance call, so a failing
// or reentrant engine can never observe undebited allowance.
func (k Keeper) MintWithCapability(ctx sdk.Context, record *MinterRecord, amount uint64) (sdk.Coin, sdk.Error) {
	if record == nil || record.symbol == "" {
		return sdk.Coin{}, types.ErrNotMinter(types.DefaultCodespace, "no minter record")
	}
	if amount > record.allowance {
		return sdk.Coin{}, types.ErrInsufficientAllowance(types.DefaultCodespace,
			fmt.Sprintf("mint of %d exceeds remaining allowance %d for %s", amount, record.allowance, record.symbol))
	}

	record.allowance -= amount
	if !record.holder.Empty() {
		k.setMinterGrant(ctx, record.holder, types.NewMinterGrant(record.symbol, record.base, record.allowance))
	}

	coin, err := k.tk.Mint(ctx, record.authority, amount)
	if err != nil {
		// the whole operation aborts; the dispatcher discards the debit
		// together with every other write
		return sdk.Coin{}, err
	}
	return coin, nil
}

// Mint is the entry-level operation: it resolves the caller's held
// minter grant, mints against it and deposits the result to recipient.
func (k Keeper) Mint(ctx sdk.Context, minter, recipient sdk.AccAddress, symbol sdk.Symbol, amount uint64) (sdk.Coin, sdk.Error) {
	grant := k.GetMinterGrant(ctx, symbol, minter)
	if grant == nil {
		return sdk.Coin{}, types.ErrNotMinter(types.DefaultCodespace,
			fmt.Sprintf("%s holds no minter grant for %s", minter, symbol))
	}

	record, err := k.minterRecordFromGrant(ctx, minter, *grant)
	if err != nil {
		return sdk.Coin{}, err
	}

	coin, err := k.MintWithCapability(ctx, &record, amount)
	if err != nil {
		return sdk.Coin{}, err
	}

	if err := k.tk.Deposit(ctx, recipient, coin); err != nil {
		return sdk.Coin{}, err
	}
	return coin, nil
}

// OfferOwner removes the sender's owner capability from their own
// storage and stages it in the single-slot offer addressed to
// recipient. One outstanding offer per (token type, sender).
func (k Keeper) OfferOwner(ctx sdk.Context, sender, recipient sdk.AccAddress, symbol sdk.Symbol) sdk.Error {
	grant := k.GetOwnerGrant(ctx, symbol, sender)
	if grant == nil {
		return types.ErrNotOwner(types.DefaultCodespace,
			fmt.Sprintf("%s holds no owner capability for %s", sender, symbol))
	}
	if k.GetOwnerOffer(ctx, symbol, sender) != nil {
		return types.ErrOfferAlreadyExists(types.DefaultCodespace,
			fmt.Sprintf("%s already has an outstanding owner offer for %s", sender, symbol))
	}

	k.deleteOwnerGrant(ctx, symbol, sender)
	k.setOwnerOffer(ctx, sender, symbol, types.OwnerOffer{Recipient: recipient, Grant: *grant})
	return nil
}

// AcceptOwner claims the owner offer staged by base and stores the
// capability under the caller's own identity. The offer must exist and
// be addressed to the caller.
func (k Keeper) AcceptOwner(ctx sdk.Context, recipient, base sdk.AccAddress, symbol sdk.Symbol) sdk.Error {
	offer := k.GetOwnerOffer(ctx, symbol, base)
	if offer == nil || !offer.Recipient.Equals(recipient) {
		return types.ErrNoPendingOffer(types.DefaultCodespace,
			fmt.Sprintf("no owner offer for %s from %s addressed to %s", symbol, base, recipient))
	}
	if k.GetOwnerGrant(ctx, symbol, recipient) != nil {
		return types.ErrAlreadyOwner(types.DefaultCodespace,
			fmt.Sprintf("%s already holds an owner capability for %s", recipient, symbol))
	}

	k.deleteOwnerOffer(ctx, symbol, base)
	k.setOwnerGrant(ctx, recipient, offer.Grant)
	return nil
}

// OfferMinter creates a new minter grant and inserts it into the
// pending-transfer registry keyed by destination. Insertion into the
// unique-key registry rejects a second offer for the same destination.
func (k Keeper) OfferMinter(ctx sdk.Context, owner, destination sdk.AccAddress, symbol sdk.Symbol, allowance uint64) sdk.Error {
	ownerCap, err := k.OwnerCapabilityOf(ctx, owner, symbol)
	if err != nil {
		return err
	}
	record, err := k.CreateMinter(ctx, ownerCap, allowance)
	if err != nil {
		return err
	}

	if k.GetPendingMinter(ctx, symbol, destination) != nil {
		return types.ErrOfferAlreadyExists(types.DefaultCodespace,
			fmt.Sprintf("%s already has a pending minter offer for %s", destination, symbol))
	}

	k.setPendingMinter(ctx, destination, types.NewMinterGrant(record.symbol, record.base, record.allowance))
	return nil
}

// AcceptMinter removes the pending grant keyed by the caller from the
// registry at base and stores it under the caller's own identity.
func (k Keeper) AcceptMinter(ctx sdk.Context, recipient, base sdk.AccAddress, symbol sdk.Symbol) sdk.Error {
	cs := k.GetCapabilityStore(ctx, symbol)
	if cs == nil {
		return types.ErrNoCapabilityStore(types.DefaultCodespace,
			fmt.Sprintf("no capability store for %s", symbol))
	}
	if !cs.Base.Equals(base) {
		return types.ErrNoPendingOffer(types.DefaultCodespace,
			fmt.Sprintf("no pending-transfer registry for %s at %s", symbol, base))
	}

	grant := k.GetPendingMinter(ctx, symbol, recipient)
	if grant == nil {
		return types.ErrNoPendingOffer(types.DefaultCodespace,
			fmt.Sprintf("no pending minter offer for %s addressed to %s", symbol, recipient))
	}
	if k.GetMinterGrant(ctx, symbol, recipient) != nil {
		return types.ErrAlreadyMinter(types.DefaultCodespace,
			fmt.Sprintf("%s already holds a minter grant for %s", recipient, symbol))
	}

	k.deletePendingMinter(ctx, symbol, recipient)
	k.setMinterGrant(ctx, recipient, *grant)
	return nil
}

func (k Keeper) minterRecordFromGrant(ctx sdk.Context, holder sdk.AccAddress, grant types.MinterGrant) (MinterRecord, sdk.Error) {
	cs := k.GetCapabilityStore(ctx, grant.Symbol)
	if cs == nil {
		return MinterRecord{}, types.ErrNoCapabilityStore(types.DefaultCodespace,
			fmt.Sprintf("no capability store for %s", grant.Symbol))
	}

	mintAuth, _, err := k.tk.Authority(ctx, grant.Symbol, cs.Issuer)
	if err != nil {
		return MinterRecord{}, err
	}

	return MinterRecord{
		symbol:    grant.Symbol,
		base:      grant.Base,
		holder:    holder,
		authority: mintAuth,
		allowance: grant.Allowance,
	}, nil
}

func (k Keeper) GetCapabilityStore(ctx sdk.Context, symbol sdk.Symbol) *types.CapabilityStoreRecord {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.CapabilityStoreKey(symbol))
	if bz == nil {
		return nil
	}

	var record types.CapabilityStoreRecord
	k.cdc.MustUnmarshalBinaryBare(bz, &record)
	return &record
}

func (k Keeper) setCapabilityStore(ctx sdk.Context, record types.CapabilityStoreRecord) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.CapabilityStoreKey(record.Symbol), k.cdc.MustMarshalBinaryBare(record))
}

func (k Keeper) GetOwnerGrant(ctx sdk.Context, symbol sdk.Symbol, holder sdk.AccAddress) *types.OwnerGrant {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.OwnerGrantKey(symbol, holder))
	if bz == nil {
		return nil
	}

	var grant types.OwnerGrant
	k.cdc.MustUnmarshalBinaryBare(bz, &grant)
	return &grant
}

func (k Keeper) setOwnerGrant(ctx sdk.Context, holder sdk.AccAddress, grant types.OwnerGrant) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.OwnerGrantKey(grant.Symbol, holder), k.cdc.MustMarshalBinaryBare(grant))
}

func (k Keeper) deleteOwnerGrant(ctx sdk.Context, symbol sdk.Symbol, holder sdk.AccAddress) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.OwnerGrantKey(symbol, holder))
}

func (k Keeper) GetMinterGrant(ctx sdk.Context, symbol sdk.Symbol, holder sdk.AccAddress) *types.MinterGrant {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.MinterGrantKey(symbol, holder))
	if bz == nil {
		return nil
	}

	var grant types.MinterGrant
	k.cdc.MustUnmarshalBinaryBare(bz, &grant)
	return &grant
}

func (k Keeper) setMinterGrant(ctx sdk.Context, holder sdk.AccAddress, grant types.MinterGrant) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.MinterGrantKey(grant.Symbol, holder), k.cdc.MustMarshalBinaryBare(grant))
}

func (k Keeper) GetPendingMinter(ctx sdk.Context, symbol sdk.Symbol, recipient sdk.AccAddress) *types.MinterGrant {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.PendingMinterKey(symbol, recipient))
	if bz == nil {
		return nil
	}

	var grant types.MinterGrant
	k.cdc.MustUnmarshalBinaryBare(bz, &grant)
	return &grant
}

func (k Keeper) setPendingMinter(ctx sdk.Context, recipient sdk.AccAddress, grant types.MinterGrant) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.PendingMinterKey(grant.Symbol, recipient), k.cdc.MustMarshalBinaryBare(grant))
}

func (k Keeper) deletePendingMinter(ctx sdk.Context, symbol sdk.Symbol, recipient sdk.AccAddress) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.PendingMinterKey(symbol, recipient))
}

func (k Keeper) GetOwnerOffer(ctx sdk.Context, symbol sdk.Symbol, sender sdk.AccAddress) *types.OwnerOffer {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.OwnerOfferKey(symbol, sender))
	if bz == nil {
		return nil
	}

	var offer types.OwnerOffer
	k.cdc.MustUnmarshalBinaryBare(bz, &offer)
	return &offer
}

func (k Keeper) setOwnerOffer(ctx sdk.Context, sender sdk.AccAddress, symbol sdk.Symbol, offer types.OwnerOffer) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.OwnerOfferKey(symbol, sender), k.cdc.MustMarshalBinaryBare(offer))
}

func (k Keeper) deleteOwnerOffer(ctx sdk.Context, symbol sdk.Symbol, sender sdk.AccAddress) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.OwnerOfferKey(symbol, sender))
}

// IterateCapabilityStores walks every capability store record.
func (k Keeper) IterateCapabilityStores(ctx sdk.Context, fn func(record types.CapabilityStoreRecord) bool) {
	store := ctx.KVStore(k.storeKey)
	iter := sdk.KVStorePrefixIterator(store, types.CapabilityStoreKeyPrefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var record types.CapabilityStoreRecord
		k.cdc.MustUnmarshalBinaryBare(iter.Value(), &record)
		if fn(record) {
			break
		}
	}
}

// IterateOwnerGrants walks every held owner grant.
func (k Keeper) IterateOwnerGrants(ctx sdk.Context, fn func(holder sdk.AccAddress, grant types.OwnerGrant) bool) {
	store := ctx.KVStore(k.storeKey)
	iter := sdk.KVStorePrefixIterator(store, types.OwnerGrantKeyPrefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var grant types.OwnerGrant
		k.cdc.MustUnmarshalBinaryBare(iter.Value(), &grant)
		if fn(types.AddressFromGrantKey(iter.Key()), grant) {
			break
		}
	}
}

// IterateMinterGrants walks every held minter grant.
func (k Keeper) IterateMinterGrants(ctx sdk.Context, fn func(holder sdk.AccAddress, grant types.MinterGrant) bool) {
	store := ctx.KVStore(k.storeKey)
	iter := sdk.KVStorePrefixIterator(store, types.MinterGrantKeyPrefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var grant types.MinterGrant
		k.cdc.MustUnmarshalBinaryBare(iter.Value(), &grant)
		if fn(types.AddressFromGrantKey(iter.Key()), grant) {
			break
		}
	}
}

// IteratePendingMinters walks every staged minter grant.
func (k Keeper) IteratePendingMinters(ctx sdk.Context, fn func(recipient sdk.AccAddress, grant types.MinterGrant) bool) {
	store := ctx.KVStore(k.storeKey)
	iter := sdk.KVStorePrefixIterator(store, types.PendingMinterKeyPrefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var grant types.MinterGrant
		k.cdc.MustUnmarshalBinaryBare(iter.Value(), &grant)
		if fn(types.AddressFromGrantKey(iter.Key()), grant) {
			break
		}
	}
}

// IterateOwnerOffers walks every staged owner offer.
func (k Keeper) IterateOwnerOffers(ctx sdk.Context, fn func(sender sdk.AccAddress, offer types.OwnerOffer) bool) {
	store := ctx.KVStore(k.storeKey)
	iter := sdk.KVStorePrefixIterator(store, types.OwnerOfferKeyPrefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var offer types.OwnerOffer
		k.cdc.MustUnmarshalBinaryBare(iter.Value(), &offer)
		if fn(types.AddressFromGrantKey(iter.Key()), offer) {
			break
		}
	}
}
