package types

import (
	"fmt"
	"strings"

	sdk "github.com/mintgate-chain/mintgate/types"
)

// MsgNewToken creates a brand-new token type through the token engine
// and establishes its capability store under From.
type MsgNewToken struct {
	From     sdk.AccAddress `json:"from"`
	Name     string         `json:"name"`
	Decimals uint64         `json:"decimals"`
	HardCap  uint64         `json:"hard_cap"`
}

func NewMsgNewToken(from sdk.AccAddress, name string, decimals uint64, hardCap uint64) MsgNewToken {
	return MsgNewToken{
		From:     from,
		Name:     name,
		Decimals: decimals,
		HardCap:  hardCap,
	}
}

func (msg MsgNewToken) Route() string { return RouterKey }
func (msg MsgNewToken) Type() string  { return TypeMsgNewToken }

// Symbol is the token type tag the new token will be registered under.
func (msg MsgNewToken) Symbol() sdk.Symbol {
	return sdk.Symbol(strings.ToLower(msg.Name))
}

// ValidateBasic runs stateless checks on the message
func (msg MsgNewToken) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("from address can not be empty")
	}
	if !sdk.IsTokenNameValid(msg.Name) {
		return sdk.ErrInvalidTx(fmt.Sprintf("invalid token name:%v", msg.Name))
	}
	if !msg.Symbol().IsValid() {
		return sdk.ErrInvalidTx(fmt.Sprintf("token name:%v yields no valid symbol", msg.Name))
	}
	if msg.Decimals > sdk.Precision {
		return sdk.ErrInvalidTx(fmt.Sprintf("decimals:%d exceeds maximum:%d", msg.Decimals, sdk.Precision))
	}
	return nil
}

func (msg MsgNewToken) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgNewToken) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.From}
}

func (msg MsgNewToken) LockKeys() []string {
	return []string{lockKey(msg.Symbol())}
}

// MsgMint issues tokens against the sender's held minter grant and
// deposits them to To.
type MsgMint struct {
	From   sdk.AccAddress `json:"from"`
	To     sdk.AccAddress `json:"to"`
	Symbol sdk.Symbol     `json:"symbol"`
	Amount uint64         `json:"amount"`
}

func NewMsgMint(from, to sdk.AccAddress, symbol sdk.Symbol, amount uint64) MsgMint {
	return MsgMint{
		From:   from,
		To:     to,
		Symbol: symbol,
		Amount: amount,
	}
}

func (msg MsgMint) Route() string { return RouterKey }
func (msg MsgMint) Type() string  { return TypeMsgMint }

// ValidateBasic runs stateless checks on the message
func (msg MsgMint) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("from address can not be empty")
	}
	if msg.To.Empty() {
		return sdk.ErrInvalidAddress("to address can not be empty")
	}
	if !msg.Symbol.IsValid() {
		return sdk.ErrInvalidTx(fmt.Sprintf("invalid symbol:%v", msg.Symbol))
	}
	if msg.Amount == 0 {
		return sdk.ErrInvalidAmount("mint amount must be positive")
	}
	return nil
}

func (msg MsgMint) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgMint) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.From}
}

func (msg MsgMint) LockKeys() []string {
	return []string{lockKey(msg.Symbol)}
}

// MsgOfferOwner stages the sender's owner capability for To to claim.
type MsgOfferOwner struct {
	From   sdk.AccAddress `json:"from"`
	To     sdk.AccAddress `json:"to"`
	Symbol sdk.Symbol     `json:"symbol"`
}

func NewMsgOfferOwner(from, to sdk.AccAddress, symbol sdk.Symbol) MsgOfferOwner {
	return MsgOfferOwner{From: from, To: to, Symbol: symbol}
}

func (msg MsgOfferOwner) Route() string { return RouterKey }
func (msg MsgOfferOwner) Type() string  { return TypeMsgOfferOwner }

// ValidateBasic runs stateless checks on the message
func (msg MsgOfferOwner) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("from address can not be empty")
	}
	if msg.To.Empty() {
		return sdk.ErrInvalidAddress("to address can not be empty")
	}
	if msg.From.Equals(msg.To) {
		return sdk.ErrInvalidTx("cannot offer ownership to self")
	}
	if !msg.Symbol.IsValid() {
		return sdk.ErrInvalidTx(fmt.Sprintf("invalid symbol:%v", msg.Symbol))
	}
	return nil
}

func (msg MsgOfferOwner) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgOfferOwner) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.From}
}

func (msg MsgOfferOwner) LockKeys() []string {
	return []string{lockKey(msg.Symbol)}
}

// MsgAcceptOwner claims an owner offer staged by Base for the sender.
type MsgAcceptOwner struct {
	From   sdk.AccAddress `json:"from"`
	Base   sdk.AccAddress `json:"base"`
	Symbol sdk.Symbol     `json:"symbol"`
}

func NewMsgAcceptOwner(from, base sdk.AccAddress, symbol sdk.Symbol) MsgAcceptOwner {
	return MsgAcceptOwner{From: from, Base: base, Symbol: symbol}
}

func (msg MsgAcceptOwner) Route() string { return RouterKey }
func (msg MsgAcceptOwner) Type() string  { return TypeMsgAcceptOwner }

// ValidateBasic runs stateless checks on the message
func (msg MsgAcceptOwner) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("from address can not be empty")
	}
	if msg.Base.Empty() {
		return sdk.ErrInvalidAddress("base address can not be empty")
	}
	if !msg.Symbol.IsValid() {
		return sdk.ErrInvalidTx(fmt.Sprintf("invalid symbol:%v", msg.Symbol))
	}
	return nil
}

func (msg MsgAcceptOwner) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgAcceptOwner) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.From}
}

func (msg MsgAcceptOwner) LockKeys() []string {
	return []string{lockKey(msg.Symbol)}
}

// MsgOfferMinter creates a new minter grant and stages it in the
// pending-transfer registry for To to claim.
type MsgOfferMinter struct {
	From      sdk.AccAddress `json:"from"`
	To        sdk.AccAddress `json:"to"`
	Symbol    sdk.Symbol     `json:"symbol"`
	Allowance uint64         `json:"allowance"`
}

func NewMsgOfferMinter(from, to sdk.AccAddress, symbol sdk.Symbol, allowance uint64) MsgOfferMinter {
	return MsgOfferMinter{
		From:      from,
		To:        to,
		Symbol:    symbol,
		Allowance: allowance,
	}
}

func (msg MsgOfferMinter) Route() string { return RouterKey }
func (msg MsgOfferMinter) Type() string  { return TypeMsgOfferMinter }

// ValidateBasic runs stateless checks on the message
func (msg MsgOfferMinter) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("from address can not be empty")
	}
	if msg.To.Empty() {
		return sdk.ErrInvalidAddress("to address can not be empty")
	}
	if !msg.Symbol.IsValid() {
		return sdk.ErrInvalidTx(fmt.Sprintf("invalid symbol:%v", msg.Symbol))
	}
	return nil
}

func (msg MsgOfferMinter) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgOfferMinter) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.From}
}

func (msg MsgOfferMinter) LockKeys() []string {
	return []string{lockKey(msg.Symbol)}
}

// MsgAcceptMinter claims the pending minter grant addressed to the
// sender from the registry at Base.
type MsgAcceptMinter struct {
	From   sdk.AccAddress `json:"from"`
	Base   sdk.AccAddress `json:"base"`
	Symbol sdk.Symbol     `json:"symbol"`
}

func NewMsgAcceptMinter(from, base sdk.AccAddress, symbol sdk.Symbol) MsgAcceptMinter {
	return MsgAcceptMinter{From: from, Base: base, Symbol: symbol}
}

func (msg MsgAcceptMinter) Route() string { return RouterKey }
func (msg MsgAcceptMinter) Type() string  { return TypeMsgAcceptMinter }

// ValidateBasic runs stateless checks on the message
func (msg MsgAcceptMinter) ValidateBasic() sdk.Error {
	if msg.From.Empty() {
		return sdk.ErrInvalidAddress("from address can not be empty")
	}
	if msg.Base.Empty() {
		return sdk.ErrInvalidAddress("base address can not be empty")
	}
	if !msg.Symbol.IsValid() {
		return sdk.ErrInvalidTx(fmt.Sprintf("invalid symbol:%v", msg.Symbol))
	}
	return nil
}

func (msg MsgAcceptMinter) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(msg)
	return sdk.MustSortJSON(bz)
}

func (msg MsgAcceptMinter) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{msg.From}
}

func (msg MsgAcceptMinter) LockKeys() []string {
	return []string{lockKey(msg.Symbol)}
}

// lockKey serializes all operations touching one token type's
// capability state, preserving the check-then-insert and
// debit-then-issue invariants off-chain.
func lockKey(symbol sdk.Symbol) string {
	return ModuleName + "/" + symbol.String()
}
