package token

import (
	sdk "github.com/mintgate-chain/mintgate/types"
)

// MintAuthority permits issuance of one token type. It carries no
// allowance; any ceiling is enforced by whoever holds it. The fields
// are unexported so a value can only originate from this package:
// possession is proof.
type MintAuthority struct {
	symbol sdk.Symbol
	issuer string
}

func (a MintAuthority) Symbol() sdk.Symbol { return a.symbol }
func (a MintAuthority) Issuer() string     { return a.issuer }

// BurnAuthority permits destruction of one token type.
type BurnAuthority struct {
	symbol sdk.Symbol
	issuer string
}

func (a BurnAuthority) Symbol() sdk.Symbol { return a.symbol }
func (a BurnAuthority) Issuer() string     { return a.issuer }
