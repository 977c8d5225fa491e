package token

import (
	"fmt"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/mintgate-chain/mintgate/codec"
	sdk "github.com/mintgate-chain/mintgate/types"
	"github.com/mintgate-chain/mintgate/x/token/types"
)

// Keeper is the token engine: it owns the token registry, total supply
// per token type and account balances. Authority handles minted here
// are the root capabilities other modules delegate from.
type Keeper struct {
	storeKey sdk.StoreKey // Unexposed key to access store from sdk.Context
	cdc      *codec.Codec // The wire codec for binary encoding/decoding
}

func NewKeeper(cdc *codec.Codec, storeKey sdk.StoreKey) Keeper {
	return Keeper{
		storeKey: storeKey,
		cdc:      cdc,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// CreateToken registers a new token type and returns its freshly
// minted mint/burn authorities. There is exactly one such pair per
// token type; re-deriving them later requires the recorded issuer.
func (k Keeper) CreateToken(ctx sdk.Context, info types.TokenInfo) (MintAuthority, BurnAuthority, sdk.Error) {
	if !info.IsValid() {
		return MintAuthority{}, BurnAuthority{}, types.ErrInvalidTokenInfo(types.DefaultCodespace, info)
	}
	if info.Issuer == "" {
		return MintAuthority{}, BurnAuthority{}, sdk.ErrInvalidTx("token issuer must not be empty")
	}
	if k.HasToken(ctx, info.Symbol) {
		return MintAuthority{}, BurnAuthority{}, sdk.ErrSymbolAlreadyExists(fmt.Sprintf("token %s already exists", info.Symbol))
	}

	info.TotalSupply = 0
	k.setTokenInfo(ctx, info)

	return MintAuthority{symbol: info.Symbol, issuer: info.Issuer},
		BurnAuthority{symbol: info.Symbol, issuer: info.Issuer}, nil
}

// Authority re-derives the authority handles for a registered token.
// Only the issuer recorded at creation time may do so.
func (k Keeper) Authority(ctx sdk.Context, symbol sdk.Symbol, issuer string) (MintAuthority, BurnAuthority, sdk.Error) {
	info := k.GetToken(ctx, symbol)
	if info == nil {
		return MintAuthority{}, BurnAuthority{}, sdk.ErrUnsupportedToken(fmt.Sprintf("token %s does not exist", symbol))
	}
	if info.Issuer != issuer {
		return MintAuthority{}, BurnAuthority{}, sdk.ErrUnauthorized(fmt.Sprintf("%s is not the issuer of token %s", issuer, symbol))
	}
	return MintAuthority{symbol: symbol, issuer: issuer},
		BurnAuthority{symbol: symbol, issuer: issuer}, nil
}

// Mint issues new units against a mint authority and returns them as a
// Coin. The coin exists nowhere until deposited.
func (k Keeper) Mint(ctx sdk.Context, auth MintAuthority, amount uint64) (sdk.Coin, sdk.Error) {
	if amount == 0 {
		return sdk.Coin{}, sdk.ErrInvalidAmount("mint amount must be positive")
	}

	info := k.GetToken(ctx, auth.Symbol())
	if info == nil {
		// also rejects the zero-value MintAuthority
		return sdk.Coin{}, sdk.ErrUnsupportedToken(fmt.Sprintf("token %s does not exist", auth.Symbol()))
	}
	if info.Issuer != auth.Issuer() {
		return sdk.Coin{}, sdk.ErrUnauthorized(fmt.Sprintf("stale mint authority for token %s", auth.Symbol()))
	}

	info.TotalSupply += amount
	k.setTokenInfo(ctx, *info)

	return sdk.NewCoin(auth.Symbol(), amount), nil
}

// Burn destroys previously withdrawn units and shrinks total supply.
func (k Keeper) Burn(ctx sdk.Context, auth BurnAuthority, coin sdk.Coin) sdk.Error {
	info := k.GetToken(ctx, auth.Symbol())
	if info == nil {
		return sdk.ErrUnsupportedToken(fmt.Sprintf("token %s does not exist", auth.Symbol()))
	}
	if coin.Denom != auth.Symbol() {
		return sdk.ErrUnauthorized(fmt.Sprintf("burn authority for %s cannot burn %s", auth.Symbol(), coin.Denom))
	}
	if info.TotalSupply < coin.Amount {
		return sdk.ErrInvalidAmount(fmt.Sprintf("burn of %d exceeds total supply %d", coin.Amount, info.TotalSupply))
	}

	info.TotalSupply -= coin.Amount
	k.setTokenInfo(ctx, *info)
	return nil
}

// Deposit credits a minted or withdrawn coin to an account balance.
func (k Keeper) Deposit(ctx sdk.Context, addr sdk.AccAddress, coin sdk.Coin) sdk.Error {
	if addr.Empty() {
		return sdk.ErrInvalidAddress("deposit recipient must not be empty")
	}
	if !k.HasToken(ctx, coin.Denom) {
		return sdk.ErrUnsupportedToken(fmt.Sprintf("token %s does not exist", coin.Denom))
	}
	if coin.IsZero() {
		return nil
	}

	balance := k.GetBalance(ctx, addr, coin.Denom)
	k.setBalance(ctx, addr, coin.Denom, balance+coin.Amount)
	return nil
}

// Withdraw debits an account balance and returns the units as a Coin,
// e.g. to hand them to Burn.
func (k Keeper) Withdraw(ctx sdk.Context, addr sdk.AccAddress, coin sdk.Coin) (sdk.Coin, sdk.Error) {
	balance := k.GetBalance(ctx, addr, coin.Denom)
	if balance < coin.Amount {
		return sdk.Coin{}, sdk.ErrInsufficientCoins(fmt.Sprintf("balance %d of %s is less than %d", balance, coin.Denom, coin.Amount))
	}

	k.setBalance(ctx, addr, coin.Denom, balance-coin.Amount)
	return coin, nil
}

func (k Keeper) GetBalance(ctx sdk.Context, addr sdk.AccAddress, symbol sdk.Symbol) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.BalanceKey(symbol, addr))
	if bz == nil {
		return 0
	}

	var balance uint64
	k.cdc.MustUnmarshalBinaryBare(bz, &balance)
	return balance
}

func (k Keeper) setBalance(ctx sdk.Context, addr sdk.AccAddress, symbol sdk.Symbol, balance uint64) {
	store := ctx.KVStore(k.storeKey)
	if balance == 0 {
		store.Delete(types.BalanceKey(symbol, addr))
		return
	}
	store.Set(types.BalanceKey(symbol, addr), k.cdc.MustMarshalBinaryBare(balance))
}

func (k Keeper) GetToken(ctx sdk.Context, symbol sdk.Symbol) *types.TokenInfo {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.TokenKey(symbol))
	if bz == nil {
		return nil
	}

	var info types.TokenInfo
	k.cdc.MustUnmarshalBinaryBare(bz, &info)
	return &info
}

func (k Keeper) HasToken(ctx sdk.Context, symbol sdk.Symbol) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(types.TokenKey(symbol))
}

// GetTotalSupply reports the cumulative issuance of one token type.
func (k Keeper) GetTotalSupply(ctx sdk.Context, symbol sdk.Symbol) uint64 {
	info := k.GetToken(ctx, symbol)
	if info == nil {
		return 0
	}
	return info.TotalSupply
}

func (k Keeper) GetAllTokens(ctx sdk.Context) []types.TokenInfo {
	store := ctx.KVStore(k.storeKey)
	var tokens []types.TokenInfo
	iter := sdk.KVStorePrefixIterator(store, types.TokenKeyPrefix)
	defer iter.Close()
	for ; iter.Valid(); iter.Next() {
		var info types.TokenInfo
		k.cdc.MustUnmarshalBinaryBare(iter.Value(), &info)
		tokens = append(tokens, info)
	}
	return tokens
}

func (k Keeper) setTokenInfo(ctx sdk.Context, info types.TokenInfo) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.TokenKey(info.Symbol), k.cdc.MustMarshalBinaryBare(info))
}
