package types

import (
	"fmt"
	"regexp"
)

// Precision is the maximum number of decimals a token may declare.
const Precision = 18

var (
	reSymbol    = regexp.MustCompile(`^[a-z][a-z0-9]{0,16}$`)
	reTokenName = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._-]{0,31}$`)
)

// Symbol is the runtime type tag of a token type. It is part of every
// storage key and every capability-matching check.
type Symbol string

func (s Symbol) String() string {
	return string(s)
}

func (s Symbol) IsValid() bool {
	return reSymbol.MatchString(s.String())
}

// IsTokenNameValid check token name.
func IsTokenNameValid(s string) bool {
	return reTokenName.MatchString(s)
}

// Coin is a quantity of one token type, produced by the token engine's
// mint and consumed by deposit.
type Coin struct {
	Denom  Symbol `json:"denom"`
	Amount uint64 `json:"amount"`
}

func NewCoin(denom Symbol, amount uint64) Coin {
	return Coin{Denom: denom, Amount: amount}
}

func (c Coin) String() string {
	return fmt.Sprintf("%d%s", c.Amount, c.Denom)
}

func (c Coin) IsValid() bool {
	return c.Denom.IsValid()
}

func (c Coin) IsZero() bool {
	return c.Amount == 0
}
