package token

import (
	"github.com/mintgate-chain/mintgate/x/token/types"
)

const (
	ModuleName = types.ModuleName
	StoreKey   = types.StoreKey
)

type (
	TokenInfo = types.TokenInfo
)

var (
	NewTokenInfo  = types.NewTokenInfo
	ModuleCdc     = types.ModuleCdc
	RegisterCodec = types.RegisterCodec
)
