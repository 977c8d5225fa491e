package types

import (
	"fmt"

	sdk "github.com/mintgate-chain/mintgate/types"
)

// TokenInfo is the registry record of one token type.
type TokenInfo struct {
	Name        string     `json:"name"`
	DisplayName string     `json:"display_name"`
	Symbol      sdk.Symbol `json:"symbol"`
	// Issuer is the module or account the engine minted the
	// authorities for; only it can re-derive them.
	Issuer           string `json:"issuer"`
	Decimals         uint64 `json:"decimals"`
	SupplyControlled bool   `json:"supply_controlled"`
	TotalSupply      uint64 `json:"total_supply"`
	SendEnabled      bool   `json:"send_enabled"`
}

func NewTokenInfo(name, displayName string, symbol sdk.Symbol, issuer string, decimals uint64, supplyControlled bool) TokenInfo {
	return TokenInfo{
		Name:             name,
		DisplayName:      displayName,
		Symbol:           symbol,
		Issuer:           issuer,
		Decimals:         decimals,
		SupplyControlled: supplyControlled,
		SendEnabled:      true,
	}
}

func (t TokenInfo) IsValid() bool {
	if !t.Symbol.IsValid() {
		return false
	}
	if !sdk.IsTokenNameValid(t.Name) {
		return false
	}
	if t.Decimals > sdk.Precision {
		return false
	}
	return true
}

func (t TokenInfo) String() string {
	return fmt.Sprintf(`
	Name:%s
	DisplayName:%s
	Symbol:%s
	Issuer:%s
	Decimals:%v
	SupplyControlled:%v
	TotalSupply:%v
	SendEnabled:%v
	`, t.Name, t.DisplayName, t.Symbol, t.Issuer, t.Decimals, t.SupplyControlled, t.TotalSupply, t.SendEnabled)
}
