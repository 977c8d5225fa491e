package mintcap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mintgate-chain/mintgate/x/mintcap/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	input := setupTestEnv(t)
	ctx := input.ctx
	keeper := input.keeper

	owner := newTestAddr("owner")
	minter := newTestAddr("minter")
	pending := newTestAddr("pending")
	next := newTestAddr("next")

	_, err := keeper.CreateWithNewToken(ctx, owner, "tok", 6, 100000)
	require.Nil(t, err)
	require.Nil(t, keeper.OfferMinter(ctx, owner, minter, "tok", 50))
	require.Nil(t, keeper.AcceptMinter(ctx, minter, owner, "tok"))
	require.Nil(t, keeper.OfferMinter(ctx, owner, pending, "tok", 7))
	require.Nil(t, keeper.OfferOwner(ctx, owner, next, "tok"))

	exported := ExportGenesis(ctx, keeper)
	require.Nil(t, ValidateGenesis(exported))
	require.Equal(t, 1, len(exported.CapabilityStores))
	require.Equal(t, 1, len(exported.MinterGrants))
	require.Equal(t, 1, len(exported.PendingMinters))
	require.Equal(t, 1, len(exported.OwnerOffers))
	// the owner grant moved into the staged offer
	require.Equal(t, 0, len(exported.OwnerGrants))

	// replay into a fresh store
	fresh := setupTestEnv(t)
	InitGenesis(fresh.ctx, fresh.keeper, exported)

	reexported := ExportGenesis(fresh.ctx, fresh.keeper)
	assert.Equal(t, exported, reexported)

	grant := fresh.keeper.GetMinterGrant(fresh.ctx, "tok", minter)
	require.NotNil(t, grant)
	assert.Equal(t, uint64(50), grant.Allowance)

	offer := fresh.keeper.GetOwnerOffer(fresh.ctx, "tok", owner)
	require.NotNil(t, offer)
	assert.Equal(t, next, offer.Recipient)
}

func TestValidateGenesis(t *testing.T) {
	owner := newTestAddr("owner")
	minter := newTestAddr("minter")

	require.Nil(t, ValidateGenesis(DefaultGenesisState()))

	store := types.NewCapabilityStoreRecord("tok", owner, types.ModuleName, 0)

	// grant without a capability store
	bad := GenesisState{
		MinterGrants: []HeldMinterGrant{{Holder: minter, Grant: types.NewMinterGrant("tok", owner, 5)}},
	}
	require.NotNil(t, ValidateGenesis(bad))

	good := GenesisState{
		CapabilityStores: []types.CapabilityStoreRecord{store},
		MinterGrants:     []HeldMinterGrant{{Holder: minter, Grant: types.NewMinterGrant("tok", owner, 5)}},
	}
	require.Nil(t, ValidateGenesis(good))

	// duplicate capability stores
	dup := GenesisState{
		CapabilityStores: []types.CapabilityStoreRecord{store, store},
	}
	require.NotNil(t, ValidateGenesis(dup))

	// empty holder
	noHolder := GenesisState{
		CapabilityStores: []types.CapabilityStoreRecord{store},
		OwnerGrants:      []HeldOwnerGrant{{Grant: types.OwnerGrant{Symbol: "tok", Base: owner}}},
	}
	require.NotNil(t, ValidateGenesis(noHolder))
}
