package internal

import (
	sdk "github.com/mintgate-chain/mintgate/types"
	"github.com/mintgate-chain/mintgate/x/token"
	tokentypes "github.com/mintgate-chain/mintgate/x/token/types"
)

// TokenKeeper is the token engine the delegation layer mints through.
// Errors from it propagate to callers unchanged.
type TokenKeeper interface {
	CreateToken(ctx sdk.Context, info tokentypes.TokenInfo) (token.MintAuthority, token.BurnAuthority, sdk.Error)
	Authority(ctx sdk.Context, symbol sdk.Symbol, issuer string) (token.MintAuthority, token.BurnAuthority, sdk.Error)
	Mint(ctx sdk.Context, auth token.MintAuthority, amount uint64) (sdk.Coin, sdk.Error)
	Deposit(ctx sdk.Context, addr sdk.AccAddress, coin sdk.Coin) sdk.Error
	HasToken(ctx sdk.Context, symbol sdk.Symbol) bool
	GetTotalSupply(ctx sdk.Context, symbol sdk.Symbol) uint64
}
