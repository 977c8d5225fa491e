package types

import (
	"github.com/mintgate-chain/mintgate/codec"
)

var ModuleCdc = codec.New()

// Register concrete types on codec codec
func RegisterCodec(cdc *codec.Codec) {
	cdc.RegisterConcrete(CapabilityStoreRecord{}, "mintgate/mintcap/CapabilityStoreRecord", nil)
	cdc.RegisterConcrete(OwnerGrant{}, "mintgate/mintcap/OwnerGrant", nil)
	cdc.RegisterConcrete(MinterGrant{}, "mintgate/mintcap/MinterGrant", nil)
	cdc.RegisterConcrete(OwnerOffer{}, "mintgate/mintcap/OwnerOffer", nil)
	cdc.RegisterConcrete(MsgNewToken{}, "mintgate/mintcap/MsgNewToken", nil)
	cdc.RegisterConcrete(MsgMint{}, "mintgate/mintcap/MsgMint", nil)
	cdc.RegisterConcrete(MsgOfferOwner{}, "mintgate/mintcap/MsgOfferOwner", nil)
	cdc.RegisterConcrete(MsgAcceptOwner{}, "mintgate/mintcap/MsgAcceptOwner", nil)
	cdc.RegisterConcrete(MsgOfferMinter{}, "mintgate/mintcap/MsgOfferMinter", nil)
	cdc.RegisterConcrete(MsgAcceptMinter{}, "mintgate/mintcap/MsgAcceptMinter", nil)
}

func init() {
	RegisterCodec(ModuleCdc)
	ModuleCdc.Seal()
}
