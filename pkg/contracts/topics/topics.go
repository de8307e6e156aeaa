package topics

const (
	// Auctions
	AuctionOpened = "auction_opened"
	AuctionClosed = "auction_closed"

	// Bids
	BidPlaced = "bid_placed"

	// DLQs
	AuctionClosedDLQ = "auction_closed_dlq"
)
