package types

const (
	EventTypeTransfer = "token_transfer"
	EventTypeMint     = "token_mint"

	AttributeKeySender    = "sender"
	AttributeKeyRecipient = "recipient"
	AttributeKeySigner    = "signer"
	AttributeKeyAmount    = "amount"
)
