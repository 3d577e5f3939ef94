package entity

// Cancellation is an append-only event recorded whenever a buyer backs out
// of a pending purchase or withdraws auction bids. It only feeds the
// suspicious-user detector.
type Cancellation struct {
	ID          int    `json:"id"`
	BuyerID     int    `json:"buyerId"`
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName"`
	Date        string `json:"date"`
}
