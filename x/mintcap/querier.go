package mintcap

import (
	"fmt"

	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/mintgate-chain/mintgate/codec"
	sdk "github.com/mintgate-chain/mintgate/types"
	"github.com/mintgate-chain/mintgate/x/mintcap/types"
)

// NewQuerier is the module level router for state queries
func NewQuerier(keeper Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) ([]byte, sdk.Error) {
		switch path[0] {
		case types.QueryCapabilityStore:
			return queryCapabilityStore(ctx, req, keeper)
		case types.QueryOwner:
			return queryOwner(ctx, req, keeper)
		case types.QueryMinter:
			return queryMinter(ctx, req, keeper)
		case types.QueryPendingMinter:
			return queryPendingMinter(ctx, req, keeper)

		default:
			return nil, sdk.ErrUnknownRequest(fmt.Sprintf("unknown mintcap query endpoint: %s", path[0]))
		}
	}
}

func queryCapabilityStore(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params types.QueryBySymbolParams
	if err := keeper.cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("failed to parse params: %s", err))
	}

	record := keeper.GetCapabilityStore(ctx, params.Symbol)
	if record == nil {
		return nil, types.ErrNoCapabilityStore(types.DefaultCodespace,
			fmt.Sprintf("no capability store for %s", params.Symbol))
	}

	bz, err := codec.MarshalJSONIndent(keeper.cdc, record)
	if err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("could not marshal result to JSON: %s", err))
	}
	return bz, nil
}

func queryOwner(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params types.QueryByHolderParams
	if err := keeper.cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("failed to parse params: %s", err))
	}

	res := types.QueryResOwner{}
	if grant := keeper.GetOwnerGrant(ctx, params.Symbol, params.Address); grant != nil {
		res.IsOwner = true
		res.Base = grant.Base
	}

	bz, err := codec.MarshalJSONIndent(keeper.cdc, res)
	if err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("could not marshal result to JSON: %s", err))
	}
	return bz, nil
}

func queryMinter(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params types.QueryByHolderParams
	if err := keeper.cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("failed to parse params: %s", err))
	}

	grant := keeper.GetMinterGrant(ctx, params.Symbol, params.Address)
	if grant == nil {
		return nil, types.ErrNotMinter(types.DefaultCodespace,
			fmt.Sprintf("%s holds no minter grant for %s", params.Address, params.Symbol))
	}

	bz, err := codec.MarshalJSONIndent(keeper.cdc, grant)
	if err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("could not marshal result to JSON: %s", err))
	}
	return bz, nil
}

func queryPendingMinter(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params types.QueryByHolderParams
	if err := keeper.cdc.UnmarshalJSON(req.Data, &params); err != nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("failed to parse params: %s", err))
	}

	grant := keeper.GetPendingMinter(ctx, params.Symbol, params.Address)
	if grant == nil {
		return nil, types.ErrNoPendingOffer(types.DefaultCodespace,
			fmt.Sprintf("no pending minter offer for %s addressed to %s", params.Symbol, params.Address))
	}

	bz, err := codec.MarshalJSONIndent(keeper.cdc, grant)
	if err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("could not marshal result to JSON: %s", err))
	}
	return bz, nil
}
