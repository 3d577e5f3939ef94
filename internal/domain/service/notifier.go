package service

// Notifier publishes outbound user notifications after a state transition
// has committed. Delivery is best-effort: implementations queue and retry
// on their own, and a failed send never propagates back to the caller.
type Notifier interface {
	ProductSold(buyerMail, sellerMail, productName string, price float64)
	Outbid(bidderMail, productName string, newBidAmount float64)
	AuctionWon(winnerMail, productName string, finalPrice float64)
	ReportApproved(reporterMail, reportedUsername string)
	ReportRejected(reporterMail, reportedUsername, adminComment string)
	AccountBlocked(userMail, username string)
}
