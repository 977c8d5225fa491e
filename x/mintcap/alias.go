package mintcap

import (
	"github.com/mintgate-chain/mintgate/x/mintcap/types"
)

const (
	ModuleName       = types.ModuleName
	StoreKey         = types.StoreKey
	RouterKey        = types.RouterKey
	QuerierRoute     = types.QuerierRoute
	DefaultCodespace = types.DefaultCodespace
)

var (
	NewCapabilityStoreRecord = types.NewCapabilityStoreRecord
	NewMinterGrant           = types.NewMinterGrant
	NewMsgNewToken           = types.NewMsgNewToken
	NewMsgMint               = types.NewMsgMint
	NewMsgOfferOwner         = types.NewMsgOfferOwner
	NewMsgAcceptOwner        = types.NewMsgAcceptOwner
	NewMsgOfferMinter        = types.NewMsgOfferMinter
	NewMsgAcceptMinter       = types.NewMsgAcceptMinter
	ModuleCdc                = types.ModuleCdc
	RegisterCodec            = types.RegisterCodec
)

type (
	CapabilityStoreRecord = types.CapabilityStoreRecord
	OwnerGrant            = types.OwnerGrant
	MinterGrant           = types.MinterGrant
	OwnerOffer            = types.OwnerOffer
	MsgNewToken           = types.MsgNewToken
	MsgMint               = types.MsgMint
	MsgOfferOwner         = types.MsgOfferOwner
	MsgAcceptOwner        = types.MsgAcceptOwner
	MsgOfferMinter        = types.MsgOfferMinter
	MsgAcceptMinter       = types.MsgAcceptMinter
)
