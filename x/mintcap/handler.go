package mintcap

import (
	"fmt"
	"strconv"

	sdk "github.com/mintgate-chain/mintgate/types"
	"github.com/mintgate-chain/mintgate/x/mintcap/types"
)

func NewHandler(keeper Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		ctx = ctx.WithEventManager(sdk.NewEventManager())

		switch msg := msg.(type) {
		case types.MsgNewToken:
			return handleMsgNewToken(ctx, keeper, msg)
		case types.MsgMint:
			return handleMsgMint(ctx, keeper, msg)
		case types.MsgOfferOwner:
			return handleMsgOfferOwner(ctx, keeper, msg)
		case types.MsgAcceptOwner:
			return handleMsgAcceptOwner(ctx, keeper, msg)
		case types.MsgOfferMinter:
			return handleMsgOfferMinter(ctx, keeper, msg)
		case types.MsgAcceptMinter:
			return handleMsgAcceptMinter(ctx, keeper, msg)

		default:
			errMsg := fmt.Sprintf("Unrecognized mintcap Msg type: %v", msg.Type())
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleMsgNewToken(ctx sdk.Context, keeper Keeper, msg types.MsgNewToken) sdk.Result {
	ctx.Logger().Info("handleMsgNewToken", "msg", msg)

	ownerCap, err := keeper.CreateWithNewToken(ctx, msg.From, msg.Name, msg.Decimals, msg.HardCap)
	if err != nil {
		return err.Result()
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeNewCapabilityStore,
			sdk.NewAttribute(types.AttributeKeySymbol, ownerCap.Symbol().String()),
			sdk.NewAttribute(types.AttributeKeyBase, ownerCap.Base().String()),
			sdk.NewAttribute(types.AttributeKeyHardCap, strconv.FormatUint(msg.HardCap, 10)),
		),
	)

	result := sdk.Result{}
	result.Events = append(result.Events, ctx.EventManager().Events()...)
	return result
}

func handleMsgMint(ctx sdk.Context, keeper Keeper, msg types.MsgMint) sdk.Result {
	ctx.Logger().Info("handleMsgMint", "msg", msg)

	coin, err := keeper.Mint(ctx, msg.From, msg.To, msg.Symbol, msg.Amount)
	if err != nil {
		return err.Result()
	}

	remaining := uint64(0)
	if grant := keeper.GetMinterGrant(ctx, msg.Symbol, msg.From); grant != nil {
		remaining = grant.Allowance
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMint,
			sdk.NewAttribute(types.AttributeKeySymbol, msg.Symbol.String()),
			sdk.NewAttribute(types.AttributeKeySender, msg.From.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, msg.To.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, coin.String()),
			sdk.NewAttribute(types.AttributeKeyAllowance, strconv.FormatUint(remaining, 10)),
		),
	)

	result := sdk.Result{}
	result.Events = append(result.Events, ctx.EventManager().Events()...)
	return result
}

func handleMsgOfferOwner(ctx sdk.Context, keeper Keeper, msg types.MsgOfferOwner) sdk.Result {
	ctx.Logger().Info("handleMsgOfferOwner", "msg", msg)

	if err := keeper.OfferOwner(ctx, msg.From, msg.To, msg.Symbol); err != nil {
		return err.Result()
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOfferOwner,
			sdk.NewAttribute(types.AttributeKeySymbol, msg.Symbol.String()),
			sdk.NewAttribute(types.AttributeKeySender, msg.From.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, msg.To.String()),
		),
	)

	result := sdk.Result{}
	result.Events = append(result.Events, ctx.EventManager().Events()...)
	return result
}

func handleMsgAcceptOwner(ctx sdk.Context, keeper Keeper, msg types.MsgAcceptOwner) sdk.Result {
	ctx.Logger().Info("handleMsgAcceptOwner", "msg", msg)

	if err := keeper.AcceptOwner(ctx, msg.From, msg.Base, msg.Symbol); err != nil {
		return err.Result()
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAcceptOwner,
			sdk.NewAttribute(types.AttributeKeySymbol, msg.Symbol.String()),
			sdk.NewAttribute(types.AttributeKeySender, msg.Base.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, msg.From.String()),
		),
	)

	result := sdk.Result{}
	result.Events = append(result.Events, ctx.EventManager().Events()...)
	return result
}

func handleMsgOfferMinter(ctx sdk.Context, keeper Keeper, msg types.MsgOfferMinter) sdk.Result {
	ctx.Logger().Info("handleMsgOfferMinter", "msg", msg)

	if err := keeper.OfferMinter(ctx, msg.From, msg.To, msg.Symbol, msg.Allowance); err != nil {
		return err.Result()
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOfferMinter,
			sdk.NewAttribute(types.AttributeKeySymbol, msg.Symbol.String()),
			sdk.NewAttribute(types.AttributeKeySender, msg.From.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, msg.To.String()),
			sdk.NewAttribute(types.AttributeKeyAllowance, strconv.FormatUint(msg.Allowance, 10)),
		),
	)

	result := sdk.Result{}
	result.Events = append(result.Events, ctx.EventManager().Events()...)
	return result
}

func handleMsgAcceptMinter(ctx sdk.Context, keeper Keeper, msg types.MsgAcceptMinter) sdk.Result {
	ctx.Logger().Info("handleMsgAcceptMinter", "msg", msg)

	if err := keeper.AcceptMinter(ctx, msg.From, msg.Base, msg.Symbol); err != nil {
		return err.Result()
	}

	grant := keeper.GetMinterGrant(ctx, msg.Symbol, msg.From)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAcceptMinter,
			sdk.NewAttribute(types.AttributeKeySymbol, msg.Symbol.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, msg.From.String()),
			sdk.NewAttribute(types.AttributeKeyAllowance, strconv.FormatUint(grant.Allowance, 10)),
		),
	)

	result := sdk.Result{}
	result.Events = append(result.Events, ctx.EventManager().Events()...)
	return result
}
