package types

const (
	EventTypeCreateAuction = "create_auction"
	EventTypeBid           = "bid"
	EventTypeRefund        = "refund"
	EventTypeCloseAuction  = "close_auction"

	AttributeKeyAuctionID      = "auction_id"
	AttributeKeySeller         = "seller"
	AttributeKeyBidder         = "bidder"
	AttributeKeyPrice          = "price"
	AttributeKeyRefundReceiver = "refund_receiver"
	AttributeKeyWinner         = "winner"
	AttributeKeySettlement     = "settlement"
)
