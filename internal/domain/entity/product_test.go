package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllows(t *testing.T) {
	cases := []struct {
		status string
		action Action
		want   bool
	}{
		{StatusStarted, ActionPurchase, true},
		{StatusStarted, ActionBid, true},
		{StatusStarted, ActionApprove, false},
		{StatusStarted, ActionEndAuction, false},
		{StatusProcessing, ActionApprove, true},
		{StatusProcessing, ActionReject, true},
		{StatusProcessing, ActionCancelPurchase, true},
		{StatusProcessing, ActionCancelBid, true},
		{StatusProcessing, ActionEndAuction, true},
		{StatusProcessing, ActionPurchase, false},
		{StatusSold, ActionPurchase, false},
		{StatusSold, ActionBid, false},
		{StatusRejected, ActionApprove, false},
	}

	for _, tc := range cases {
		p := &Product{Status: tc.status}
		assert.Equal(t, tc.want, p.Allows(tc.action), "%s/%s", tc.status, tc.action)
	}
}

func TestWinningOfferTieKeepsFirst(t *testing.T) {
	p := &Product{Offers: []Offer{
		{BuyerID: 1, Amount: 500},
		{BuyerID: 2, Amount: 700},
		{BuyerID: 3, Amount: 700},
	}}

	won := p.WinningOffer()
	assert.Equal(t, 2, won.BuyerID)
	assert.Equal(t, 700.0, won.Amount)
}

func TestHighestBidStartsAtPrice(t *testing.T) {
	p := &Product{Price: 500}
	amount, leader := p.HighestBid()
	assert.Equal(t, 500.0, amount)
	assert.Zero(t, leader)

	p.Offers = []Offer{{BuyerID: 4, Amount: 650}}
	amount, leader = p.HighestBid()
	assert.Equal(t, 650.0, amount)
	assert.Equal(t, 4, leader)
}

func TestRemoveOffersBy(t *testing.T) {
	p := &Product{Offers: []Offer{
		{BuyerID: 1, Amount: 500},
		{BuyerID: 2, Amount: 600},
		{BuyerID: 1, Amount: 700},
	}}

	assert.Equal(t, 2, p.RemoveOffersBy(1))
	assert.Len(t, p.Offers, 1)
	assert.Equal(t, 2, p.Offers[0].BuyerID)
	assert.Zero(t, p.RemoveOffersBy(1))
}
