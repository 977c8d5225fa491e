package mintcap

import (
	"fmt"

	sdk "github.com/mintgate-chain/mintgate/types"
	"github.com/mintgate-chain/mintgate/x/mintcap/types"
)

// HeldOwnerGrant pairs an owner grant with the account holding it.
type HeldOwnerGrant struct {
	Holder sdk.AccAddress   `json:"holder"`
	Grant  types.OwnerGrant `json:"grant"`
}

// HeldMinterGrant pairs a minter grant with the account holding it (or,
// for pending entries, the account it is addressed to).
type HeldMinterGrant struct {
	Holder sdk.AccAddress    `json:"holder"`
	Grant  types.MinterGrant `json:"grant"`
}

// StagedOwnerOffer pairs an owner offer with the account that staged it.
type StagedOwnerOffer struct {
	Sender sdk.AccAddress   `json:"sender"`
	Offer  types.OwnerOffer `json:"offer"`
}

// GenesisState is the full exported state of the delegation layer.
type GenesisState struct {
	CapabilityStores []types.CapabilityStoreRecord `json:"capability_stores"`
	OwnerGrants      []HeldOwnerGrant              `json:"owner_grants"`
	MinterGrants     []HeldMinterGrant             `json:"minter_grants"`
	PendingMinters   []HeldMinterGrant             `json:"pending_minters"`
	OwnerOffers      []StagedOwnerOffer            `json:"owner_offers"`
}

func DefaultGenesisState() GenesisState {
	return GenesisState{}
}

// ValidateGenesis checks the internal consistency of a genesis state:
// every grant, pending entry and offer must reference a capability
// store present in the same state.
func ValidateGenesis(data GenesisState) error {
	stores := make(map[sdk.Symbol]struct{}, len(data.CapabilityStores))
	for _, record := range data.CapabilityStores {
		if record.Symbol == "" || record.Base.Empty() || record.Issuer == "" {
			return fmt.Errorf("invalid capability store record: %s", record)
		}
		if _, ok := stores[record.Symbol]; ok {
			return fmt.Errorf("duplicate capability store for %s", record.Symbol)
		}
		stores[record.Symbol] = struct{}{}
	}

	for _, held := range data.OwnerGrants {
		if _, ok := stores[held.Grant.Symbol]; !ok {
			return fmt.Errorf("owner grant for %s has no capability store", held.Grant.Symbol)
		}
		if held.Holder.Empty() {
			return fmt.Errorf("owner grant for %s has an empty holder", held.Grant.Symbol)
		}
	}
	for _, held := range data.MinterGrants {
		if _, ok := stores[held.Grant.Symbol]; !ok {
			return fmt.Errorf("minter grant for %s has no capability store", held.Grant.Symbol)
		}
		if held.Holder.Empty() {
			return fmt.Errorf("minter grant for %s has an empty holder", held.Grant.Symbol)
		}
	}
	for _, held := range data.PendingMinters {
		if _, ok := stores[held.Grant.Symbol]; !ok {
			return fmt.Errorf("pending minter grant for %s has no capability store", held.Grant.Symbol)
		}
		if held.Holder.Empty() {
			return fmt.Errorf("pending minter grant for %s has an empty recipient", held.Grant.Symbol)
		}
	}
	for _, staged := range data.OwnerOffers {
		if _, ok := stores[staged.Offer.Grant.Symbol]; !ok {
			return fmt.Errorf("owner offer for %s has no capability store", staged.Offer.Grant.Symbol)
		}
		if staged.Sender.Empty() || staged.Offer.Recipient.Empty() {
			return fmt.Errorf("owner offer for %s has an empty party", staged.Offer.Grant.Symbol)
		}
	}
	return nil
}

// InitGenesis writes a validated genesis state into the store.
func InitGenesis(ctx sdk.Context, keeper Keeper, data GenesisState) {
	for _, record := range data.CapabilityStores {
		keeper.setCapabilityStore(ctx, record)
	}
	for _, held := range data.OwnerGrants {
		keeper.setOwnerGrant(ctx, held.Holder, held.Grant)
	}
	for _, held := range data.MinterGrants {
		keeper.setMinterGrant(ctx, held.Holder, held.Grant)
	}
	for _, held := range data.PendingMinters {
		keeper.setPendingMinter(ctx, held.Holder, held.Grant)
	}
	for _, staged := range data.OwnerOffers {
		keeper.setOwnerOffer(ctx, staged.Sender, staged.Offer.Grant.Symbol, staged.Offer)
	}
}

// ExportGenesis reads the full delegation state back out of the store.
func ExportGenesis(ctx sdk.Context, keeper Keeper) GenesisState {
	data := GenesisState{}

	keeper.IterateCapabilityStores(ctx, func(record types.CapabilityStoreRecord) bool {
		data.CapabilityStores = append(data.CapabilityStores, record)
		return false
	})
	keeper.IterateOwnerGrants(ctx, func(holder sdk.AccAddress, grant types.OwnerGrant) bool {
		data.OwnerGrants = append(data.OwnerGrants, HeldOwnerGrant{Holder: holder, Grant: grant})
		return false
	})
	keeper.IterateMinterGrants(ctx, func(holder sdk.AccAddress, grant types.MinterGrant) bool {
		data.MinterGrants = append(data.MinterGrants, HeldMinterGrant{Holder: holder, Grant: grant})
		return false
	})
	keeper.IteratePendingMinters(ctx, func(recipient sdk.AccAddress, grant types.MinterGrant) bool {
		data.PendingMinters = append(data.PendingMinters, HeldMinterGrant{Holder: recipient, Grant: grant})
		return false
	})
	keeper.IterateOwnerOffers(ctx, func(sender sdk.AccAddress, offer types.OwnerOffer) bool {
		data.OwnerOffers = append(data.OwnerOffers, StagedOwnerOffer{Sender: sender, Offer: offer})
		return false
	})

	return data
}
