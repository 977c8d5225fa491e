package mintcap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdk "github.com/mintgate-chain/mintgate/types"
	"github.com/mintgate-chain/mintgate/x/mintcap/types"
)

func TestCreateWithNewToken(t *testing.T) {
	input := setupTestEnv(t)
	ctx := input.ctx
	keeper := input.keeper

	owner := newTestAddr("owner")

	ownerCap, err := keeper.CreateWithNewToken(ctx, owner, "Tok", 6, 100000)
	require.Nil(t, err)
	assert.Equal(t, sdk.Symbol("tok"), ownerCap.Symbol())
	assert.Equal(t, owner, ownerCap.Base())

	cs := keeper.GetCapabilityStore(ctx, "tok")
	require.NotNil(t, cs)
	assert.Equal(t, sdk.Symbol("tok"), cs.Symbol)
	assert.Equal(t, owner, cs.Base)
	assert.Equal(t, uint64(100000), cs.HardCap)

	grant := keeper.GetOwnerGrant(ctx, "tok", owner)
	require.NotNil(t, grant)
	assert.Equal(t, owner, grant.Base)

	assert.True(t, input.tk.HasToken(ctx, "tok"))
	assert.Equal(t, uint64(0), input.tk.GetTotalSupply(ctx, "tok"))

	// a second capability store for the same token type is rejected by
	// the engine's duplicate-symbol check
	_, err = keeper.CreateWithNewToken(ctx, owner, "Tok", 6, 100000)
	require.NotNil(t, err)
	assert.Equal(t, sdk.CodeSymbolAlreadyExists, err.Code())
}

func TestCreateWithNewTokenInvalid(t *testing.T) {
	input := setupTestEnv(t)
	ctx := input.ctx
	keeper := input.keeper

	owner := newTestAddr("owner")

	_, err := keeper.CreateWithNewToken(ctx, owner, "9bad", 6, 0)
	require.NotNil(t, err)

	_, err = keeper.CreateWithNewToken(ctx, owner, "tok", sdk.Precision+1, 0)
	require.NotNil(t, err)

	_, err = keeper.CreateWithNewToken(ctx, sdk.AccAddress{}, "tok", 6, 0)
	require.NotNil(t, err)
	assert.Equal(t, sdk.CodeInvalidAddress, err.Code())
}

func TestDelegatedMintAccounting(t *testing.T) {
	input := setupTestEnv(t)
	ctx := input.ctx
	keeper := input.keeper

	owner := newTestAddr("owner")
	minter := newTestAddr("minter")
	recipient := newTestAddr("recipient")

	_, err := keeper.CreateWithNewToken(ctx, owner, "tok", 6, 100000)
	require.Nil(t, err)

	require.Nil(t, keeper.OfferMinter(ctx, owner, minter, "tok", 50))
	require.Nil(t, keeper.AcceptMinter(ctx, minter, owner, "tok"))

	coin, err := keeper.Mint(ctx, minter, recipient, "tok", 30)
	require.Nil(t, err)
	assert.Equal(t, uint64(30), coin.Amount)

	assert.Equal(t, uint64(30), input.tk.GetBalance(ctx, recipient, "tok"))
	assert.Equal(t, uint64(30), input.tk.GetTotalSupply(ctx, "tok"))

	grant := keeper.GetMinterGrant(ctx, "tok", minter)
	require.NotNil(t, grant)
	assert.Equal(t, uint64(20), grant.Allowance)

	// a mint above the remaining allowance fails and changes nothing
	_, err = keeper.Mint(ctx, minter, recipient, "tok", 25)
	require.NotNil(t, err)
	assert.Equal(t, types.CodeInsufficientAllowance, err.Code())
	assert.Equal(t, types.DefaultCodespace, err.Codespace())

	grant = keeper.GetMinterGrant(ctx, "tok", minter)
	assert.Equal(t, uint64(20), grant.Allowance)
	assert.Equal(t, uint64(30), input.tk.GetBalance(ctx, recipient, "tok"))
	assert.Equal(t, uint64(30), input.tk.GetTotalSupply(ctx, "tok"))

	// the remaining allowance can be spent exactly
	_, err = keeper.Mint(ctx, minter, recipient, "tok", 20)
	require.Nil(t, err)
	assert.Equal(t, uint64(0), keeper.GetMinterGrant(ctx, "tok", minter).Allowance)
	assert.Equal(t, uint64(50), input.tk.GetBalance(ctx, recipient, "tok"))

	_, err = keeper.Mint(ctx, minter, recipient, "tok", 1)
	require.NotNil(t, err)
	assert.Equal(t, types.CodeInsufficientAllowance, err.Code())
}

func TestMintRequiresGrant(t *testing.T) {
	input := setupTestEnv(t)
	ctx := input.ctx
	keeper := input.keeper

	owner := newTestAddr("owner")
	stranger := newTestAddr("stranger")

	_, err := keeper.CreateWithNewToken(ctx, owner, "tok", 6, 0)
	require.Nil(t, err)

	_, err = keeper.Mint(ctx, stranger, stranger, "tok", 1)
	require.NotNil(t, err)
	assert.Equal(t, types.CodeNotMinter, err.Code())

	// the owner capability alone does not mint either
	_, err = keeper.Mint(ctx, owner, owner, "tok", 1)
	require.NotNil(t, err)
	assert.Equal(t, types.CodeNotMinter, err.Code())
}

func TestOfferAcceptMinter(t *testing.T) {
	input := setupTestEnv(t)
	ctx := input.ctx
	keeper := input.keeper

	owner := newTestAddr("owner")
	minter := newTestAddr("minter")

	_, err := keeper.CreateWithNewToken(ctx, owner, "tok", 6, 0)
	require.Nil(t, err)

	// accepting before any offer exists
	acceptErr := keeper.AcceptMinter(ctx, minter, owner, "tok")
	require.NotNil(t, acceptErr)
	assert.Equal(t, types.CodeNoPendingOffer, acceptErr.Code())

	require.Nil(t, keeper.OfferMinter(ctx, owner, minter, "tok", 50))
	pending := keeper.GetPendingMinter(ctx, "tok", minter)
	require.NotNil(t, pending)
	assert.Equal(t, uint64(50), pending.Allowance)

	// only one staged offer per destination
	offerErr := keeper.OfferMinter(ctx, owner, minter, "tok", 10)
	require.NotNil(t, offerErr)
	assert.Equal(t, types.CodeOfferAlreadyExists, offerErr.Code())

	// only an owner may stage offers
	offerErr = keeper.OfferMinter(ctx, minter, minter, "tok", 10)
	require.NotNil(t, offerErr)
	assert.Equal(t, types.CodeNotOwner, offerErr.Code())

	require.Nil(t, keeper.AcceptMinter(ctx, minter, owner, "tok"))
	assert.Nil(t, keeper.GetPendingMinter(ctx, "tok", minter))
	grant := keeper.GetMinterGrant(ctx, "tok", minter)
	require.NotNil(t, grant)
	assert.Equal(t, uint64(50), grant.Allowance)

	// accepting twice: the slot is already consumed
	acceptErr = keeper.AcceptMinter(ctx, minter, owner, "tok")
	require.NotNil(t, acceptErr)
	assert.Equal(t, types.CodeNoPendingOffer, acceptErr.Code())

	// a second grant for a holder that already has one is rejected
	require.Nil(t, keeper.OfferMinter(ctx, owner, minter, "tok", 10))
	acceptErr = keeper.AcceptMinter(ctx, minter, owner, "tok")
	require.NotNil(t, acceptErr)
	assert.Equal(t, types.CodeAlreadyMinter, acceptErr.Code())

	// accepting against the wrong base account
	acceptErr = keeper.AcceptMinter(ctx, minter, minter, "tok")
	require.NotNil(t, acceptErr)
	assert.Equal(t, types.CodeNoPendingOffer, acceptErr.Code())
}

func TestOwnerTransfer(t *testing.T) {
	input := setupTestEnv(t)
	ctx := input.ctx
	keeper := input.keeper

	owner := newTestAddr("owner")
	next := newTestAddr("next")
	stranger := newTestAddr("stranger")

	_, err := keeper.CreateWithNewToken(ctx, owner, "tok", 6, 0)
	require.Nil(t, err)

	require.Nil(t, keeper.OfferOwner(ctx, owner, next, "tok"))

	// the capability left the sender's storage when the offer was staged
	_, capErr := keeper.OwnerCapabilityOf(ctx, owner, "tok")
	require.NotNil(t, capErr)
	assert.Equal(t, types.CodeNotOwner, capErr.Code())

	// only the named recipient can claim the offer
	claimErr := keeper.AcceptOwner(ctx, stranger, owner, "tok")
	require.NotNil(t, claimErr)
	assert.Equal(t, types.CodeNoPendingOffer, claimErr.Code())

	require.Nil(t, keeper.AcceptOwner(ctx, next, owner, "tok"))
	assert.Nil(t, keeper.GetOwnerOffer(ctx, "tok", owner))

	ownerCap, capErr := keeper.OwnerCapabilityOf(ctx, next, "tok")
	require.Nil(t, capErr)
	// the grant still references the original base account
	assert.Equal(t, owner, ownerCap.Base())

	// the new owner delegates, the old owner can not
	require.Nil(t, keeper.OfferMinter(ctx, next, stranger, "tok", 5))
	offerErr := keeper.OfferMinter(ctx, owner, stranger, "tok", 5)
	require.NotNil(t, offerErr)
	assert.Equal(t, types.CodeNotOwner, offerErr.Code())

	// pending minter offers staged before the transfer stay claimable
	// against the original base
	require.Nil(t, keeper.AcceptMinter(ctx, stranger, owner, "tok"))
}

func TestOfferOwnerSingleSlot(t *testing.T) {
	input := setupTestEnv(t)
	ctx := input.ctx
	keeper := input.keeper

	owner := newTestAddr("owner")
	next := newTestAddr("next")

	_, err := keeper.CreateWithNewToken(ctx, owner, "tok", 6, 0)
	require.Nil(t, err)

	require.Nil(t, keeper.OfferOwner(ctx, owner, next, "tok"))

	// staging consumed the grant, so a second offer fails the ownership
	// check rather than the slot check
	offerErr := keeper.OfferOwner(ctx, owner, next, "tok")
	require.NotNil(t, offerErr)
	assert.Equal(t, types.CodeNotOwner, offerErr.Code())
}

func TestCreateMinterRequiresOwnership(t *testing.T) {
	input := setupTestEnv(t)
	ctx := input.ctx
	keeper := input.keeper

	owner := newTestAddr("owner")

	_, err := keeper.CreateWithNewToken(ctx, owner, "tok", 6, 0)
	require.Nil(t, err)

	_, err = keeper.CreateMinter(ctx, OwnerCapability{}, 10)
	require.NotNil(t, err)
	assert.Equal(t, types.CodeNotOwner, err.Code())

	ownerCap, err := keeper.OwnerCapabilityOf(ctx, owner, "tok")
	require.Nil(t, err)

	record, err := keeper.CreateMinter(ctx, ownerCap, 10)
	require.Nil(t, err)
	assert.Equal(t, uint64(10), record.Allowance())
	assert.True(t, record.Holder().Empty())
}

func TestMintWithCapabilityDebitsBeforeIssue(t *testing.T) {
	input := setupTestEnv(t)
	ctx := input.ctx
	keeper := input.keeper

	owner := newTestAddr("owner")

	_, err := keeper.CreateWithNewToken(ctx, owner, "tok", 6, 0)
	require.Nil(t, err)

	ownerCap, err := keeper.OwnerCapabilityOf(ctx, owner, "tok")
	require.Nil(t, err)
	record, err := keeper.CreateMinter(ctx, ownerCap, 10)
	require.Nil(t, err)

	coin, err := keeper.MintWithCapability(ctx, &record, 4)
	require.Nil(t, err)
	assert.Equal(t, uint64(4), coin.Amount)
	assert.Equal(t, uint64(6), record.Allowance())
	assert.Equal(t, uint64(4), input.tk.GetTotalSupply(ctx, "tok"))

	_, err = keeper.MintWithCapability(ctx, &record, 7)
	require.NotNil(t, err)
	assert.Equal(t, types.CodeInsufficientAllowance, err.Code())
	assert.Equal(t, uint64(6), record.Allowance())

	_, err = keeper.MintWithCapability(ctx, nil, 1)
	require.NotNil(t, err)
	assert.Equal(t, types.CodeNotMinter, err.Code())
}

func TestHardCapIsDeclarativeOnly(t *testing.T) {
	input := setupTestEnv(t)
	ctx := input.ctx
	keeper := input.keeper

	owner := newTestAddr("owner")
	minter := newTestAddr("minter")

	_, err := keeper.CreateWithNewToken(ctx, owner, "tok", 6, 10)
	require.Nil(t, err)

	// an allowance above the declared cap is accepted, and minting past
	// the cap succeeds: the cap is recorded but never checked
	require.Nil(t, keeper.OfferMinter(ctx, owner, minter, "tok", 100))
	require.Nil(t, keeper.AcceptMinter(ctx, minter, owner, "tok"))

	_, err = keeper.Mint(ctx, minter, minter, "tok", 50)
	require.Nil(t, err)

	assert.Equal(t, uint64(50), input.tk.GetTotalSupply(ctx, "tok"))
	assert.Equal(t, uint64(10), keeper.GetCapabilityStore(ctx, "tok").HardCap)
}
