package types

import (
	"fmt"

	sdk "github.com/mintgate-chain/mintgate/types"
)

// CapabilityStoreRecord anchors the root mint/burn authorities for one
// token type: the account they live under and the issuer identity the
// token engine re-derives them for. Created exactly once per token
// type.
type CapabilityStoreRecord struct {
	Symbol sdk.Symbol     `json:"symbol"`
	Base   sdk.AccAddress `json:"base"`
	Issuer string         `json:"issuer"`
	// HardCap is the declared maximum total issuance. It is recorded
	// and reported, but no operation compares cumulative issuance
	// against it; callers must not rely on it being enforced.
	HardCap uint64 `json:"hard_cap"`
}

func NewCapabilityStoreRecord(symbol sdk.Symbol, base sdk.AccAddress, issuer string, hardCap uint64) CapabilityStoreRecord {
	return CapabilityStoreRecord{
		Symbol:  symbol,
		Base:    base,
		Issuer:  issuer,
		HardCap: hardCap,
	}
}

func (r CapabilityStoreRecord) String() string {
	return fmt.Sprintf("CapabilityStore{symbol:%s base:%s hard_cap:%d}", r.Symbol, r.Base, r.HardCap)
}

// OwnerGrant marks its holder as possessing the owner capability for
// one token type. Base is the account the capability store lives
// under, which may differ from the holder after an ownership transfer.
type OwnerGrant struct {
	Symbol sdk.Symbol     `json:"symbol"`
	Base   sdk.AccAddress `json:"base"`
}

func (g OwnerGrant) String() string {
	return fmt.Sprintf("OwnerGrant{symbol:%s base:%s}", g.Symbol, g.Base)
}

// MinterGrant is the allowance ledger of one delegation. Allowance
// only ever decreases; every mint debits it before issuance.
type MinterGrant struct {
	Symbol    sdk.Symbol     `json:"symbol"`
	Base      sdk.AccAddress `json:"base"`
	Allowance uint64         `json:"allowance"`
}

func NewMinterGrant(symbol sdk.Symbol, base sdk.AccAddress, allowance uint64) MinterGrant {
	return MinterGrant{
		Symbol:    symbol,
		Base:      base,
		Allowance: allowance,
	}
}

func (g MinterGrant) String() string {
	return fmt.Sprintf("MinterGrant{symbol:%s base:%s allowance:%d}", g.Symbol, g.Base, g.Allowance)
}

// OwnerOffer is a staged ownership handoff that only the named
// recipient may claim. One outstanding offer per (token type, sender).
type OwnerOffer struct {
	Recipient sdk.AccAddress `json:"recipient"`
	Grant     OwnerGrant     `json:"grant"`
}

func (o OwnerOffer) String() string {
	return fmt.Sprintf("OwnerOffer{recipient:%s grant:%s}", o.Recipient, o.Grant)
}
