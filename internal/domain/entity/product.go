package entity

const (
	TypeFixed   = "Fixed"
	TypeAuction = "Auction"
)

const (
	StatusStarted    = "Started"
	StatusProcessing = "Processing"
	StatusSold       = "Sold"
	StatusRejected   = "Rejected"
)

// PlaceholderImage is served for listings without uploaded photos.
const PlaceholderImage = "nophotos.jpg"

type Offer struct {
	BuyerID   int     `json:"buyerId"`
	Amount    float64 `json:"amount"`
	Timestamp string  `json:"timestamp"`
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   Address `json:"address"`
}

type Product struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Price            float64   `json:"price"`
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	Type             string    `json:"type"`
	Date             string    `json:"date"`
	Seller           int       `json:"seller"`
	Buyer            int       `json:"buyer,omitempty"`
	Images           []string  `json:"images"`
	Location         *Location `json:"location"`
	Offers           []Offer   `json:"offers"`
	Status           string    `json:"status"`
	RejectionReason  string    `json:"rejectionReason,omitempty"`
	FinalPrice       float64   `json:"finalPrice,omitempty"`
	BuyerReviewLeft  bool      `json:"buyerReviewLeft"`
	SellerReviewLeft bool      `json:"sellerReviewLeft"`
	Deleted          bool      `json:"deleted"`
}

// Action names the operations that drive the product lifecycle.
type Action string

const (
	ActionPurchase       Action = "purchase"
	ActionBid            Action = "bid"
	ActionApprove        Action = "approve"
	ActionReject         Action = "reject"
	ActionCancelPurchase Action = "cancel-purchase"
	ActionCancelBid      Action = "cancel-bid"
	ActionEndAuction     Action = "end-auction"
)

// transitions is the closed state×action table. Guards beyond state
// legality (actor identity, product type, offer presence) live in the
// use case.
var transitions = map[string]map[Action]string{
	StatusStarted: {
		ActionPurchase: StatusProcessing,
		ActionBid:      StatusProcessing,
	},
	StatusProcessing: {
		ActionBid:            StatusProcessing,
		ActionApprove:        StatusSold,
		ActionReject:         StatusRejected,
		ActionCancelPurchase: StatusStarted,
		ActionCancelBid:      StatusProcessing, // Started once no offers remain
		ActionEndAuction:     StatusSold,
	},
}

// Allows reports whether the action is legal from the product's current
// status.
func (p *Product) Allows(action Action) bool {
	next, ok := transitions[p.Status]
	if !ok {
		return false
	}
	_, ok = next[action]
	return ok
}

// HighestBid returns the current price floor and the buyer leading the
// auction, scanning offers with a strict greater-than so the earliest of
// equal top bids keeps the lead.
func (p *Product) HighestBid() (amount float64, leaderID int) {
	amount = p.Price
	for _, offer := range p.Offers {
		if offer.Amount > amount {
			amount = offer.Amount
			leaderID = offer.BuyerID
		}
	}
	return amount, leaderID
}

// WinningOffer picks the offer ending the auction: highest amount, first
// seen wins ties.
func (p *Product) WinningOffer() Offer {
	winning := p.Offers[0]
	for _, offer := range p.Offers[1:] {
		if offer.Amount > winning.Amount {
			winning = offer
		}
	}
	return winning
}

// RemoveOffersBy strips every offer placed by the given buyer and reports
// how many were removed.
func (p *Product) RemoveOffersBy(buyerID int) int {
	kept := p.Offers[:0]
	removed := 0
	for _, offer := range p.Offers {
		if offer.BuyerID == buyerID {
			removed++
			continue
		}
		kept = append(kept, offer)
	}
	p.Offers = kept
	return removed
}

// HasOfferFrom reports whether the buyer has at least one open offer.
func (p *Product) HasOfferFrom(buyerID int) bool {
	for _, offer := range p.Offers {
		if offer.BuyerID == buyerID {
			return true
		}
	}
	return false
}
