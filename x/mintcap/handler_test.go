package mintcap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sdk "github.com/mintgate-chain/mintgate/types"
	"github.com/mintgate-chain/mintgate/x/mintcap/types"
)

func TestHandleMsgNewToken(t *testing.T) {
	input := setupTestEnv(t)
	ctx := input.ctx

	owner := newTestAddr("owner")

	res := input.handler(ctx, types.NewMsgNewToken(owner, "tok", 6, 100000))
	require.True(t, res.IsOK())
	require.Equal(t, 1, len(res.Events))
	assert.Equal(t, types.EventTypeNewCapabilityStore, res.Events[0].Type)

	cs := input.keeper.GetCapabilityStore(ctx, "tok")
	require.NotNil(t, cs)
	assert.Equal(t, owner, cs.Base)

	// second creation for the same token type
	res = input.handler(ctx, types.NewMsgNewToken(owner, "tok", 6, 100000))
	require.False(t, res.IsOK())
	assert.Equal(t, sdk.CodeSymbolAlreadyExists, res.Code)
}

func TestHandleMsgMint(t *testing.T) {
	input := setupTestEnv(t)
	ctx := input.ctx

	owner := newTestAddr("owner")
	minter := newTestAddr("minter")
	recipient := newTestAddr("recipient")

	require.True(t, input.handler(ctx, types.NewMsgNewToken(owner, "tok", 6, 100000)).IsOK())
	require.True(t, input.handler(ctx, types.NewMsgOfferMinter(owner, minter, "tok", 50)).IsOK())
	require.True(t, input.handler(ctx, types.NewMsgAcceptMinter(minter, owner, "tok")).IsOK())

	res := input.handler(ctx, types.NewMsgMint(minter, recipient, "tok", 30))
	require.True(t, res.IsOK())
	require.Equal(t, 1, len(res.Events))
	assert.Equal(t, types.EventTypeMint, res.Events[0].Type)

	assert.Equal(t, uint64(30), input.tk.GetBalance(ctx, recipient, "tok"))
	assert.Equal(t, uint64(20), input.keeper.GetMinterGrant(ctx, "tok", minter).Allowance)

	res = input.handler(ctx, types.NewMsgMint(minter, recipient, "tok", 25))
	require.False(t, res.IsOK())
	assert.Equal(t, types.CodeInsufficientAllowance, res.Code)
	assert.Equal(t, types.DefaultCodespace, res.Codespace)
	assert.Empty(t, res.Events)
}

func TestHandleOwnerTransfer(t *testing.T) {
	input := setupTestEnv(t)
	ctx := input.ctx

	owner := newTestAddr("owner")
	next := newTestAddr("next")

	require.True(t, input.handler(ctx, types.NewMsgNewToken(owner, "tok", 6, 0)).IsOK())

	res := input.handler(ctx, types.NewMsgOfferOwner(owner, next, "tok"))
	require.True(t, res.IsOK())
	require.Equal(t, 1, len(res.Events))
	assert.Equal(t, types.EventTypeOfferOwner, res.Events[0].Type)

	res = input.handler(ctx, types.NewMsgAcceptOwner(next, owner, "tok"))
	require.True(t, res.IsOK())
	require.Equal(t, 1, len(res.Events))
	assert.Equal(t, types.EventTypeAcceptOwner, res.Events[0].Type)

	require.NotNil(t, input.keeper.GetOwnerGrant(ctx, "tok", next))
	assert.Nil(t, input.keeper.GetOwnerGrant(ctx, "tok", owner))
}

func TestHandleAcceptMinterWithoutOffer(t *testing.T) {
	input := setupTestEnv(t)
	ctx := input.ctx

	owner := newTestAddr("owner")
	minter := newTestAddr("minter")

	require.True(t, input.handler(ctx, types.NewMsgNewToken(owner, "tok", 6, 0)).IsOK())

	res := input.handler(ctx, types.NewMsgAcceptMinter(minter, owner, "tok"))
	require.False(t, res.IsOK())
	assert.Equal(t, types.CodeNoPendingOffer, res.Code)
}

func TestHandlerUnknownMsg(t *testing.T) {
	input := setupTestEnv(t)

	res := input.handler(input.ctx, unknownMsg{})
	require.False(t, res.IsOK())
	assert.Equal(t, sdk.CodeUnknownRequest, res.Code)
}

type unknownMsg struct{}

func (unknownMsg) Route() string                { return types.RouterKey }
func (unknownMsg) Type() string                 { return "unknown" }
func (unknownMsg) ValidateBasic() sdk.Error     { return nil }
func (unknownMsg) GetSignBytes() []byte         { return nil }
func (unknownMsg) GetSigners() []sdk.AccAddress { return nil }
