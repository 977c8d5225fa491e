package types

const (
	EventTypeNewCapabilityStore = "new_capability_store"
	EventTypeMint               = "mint"
	EventTypeOfferOwner         = "offer_owner"
	EventTypeAcceptOwner        = "accept_owner"
	EventTypeOfferMinter        = "offer_minter"
	EventTypeAcceptMinter       = "accept_minter"

	AttributeKeySymbol    = "symbol"
	AttributeKeyBase      = "base"
	AttributeKeySender    = "sender"
	AttributeKeyRecipient = "recipient"
	AttributeKeyAmount    = "amount"
	AttributeKeyAllowance = "allowance"
	AttributeKeyHardCap   = "hard_cap"

	AttributeValueCategory = ModuleName
)
