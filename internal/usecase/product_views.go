package usecase

import (
	"context"
	"strings"

	"teodity/internal/domain/entity"
)

// Read models backing the storefront pages. Each one is a plain filter over
// the product collection; nothing here mutates state.

// ForSeller lists the seller's open listings.
func (uc *ProductUseCase) ForSeller(ctx context.Context, sellerID int) ([]*entity.Product, error) {
	return uc.filter(ctx, func(p *entity.Product) bool {
		return p.Seller == sellerID && p.Status == entity.StatusStarted
	})
}

// ToBeMarked lists the seller's products awaiting an approve/reject or
// end-auction decision.
func (uc *ProductUseCase) ToBeMarked(ctx context.Context, sellerID int) ([]*entity.Product, error) {
	return uc.filter(ctx, func(p *entity.Product) bool {
		if p.Seller != sellerID || p.Status != entity.StatusProcessing {
			return false
		}
		if p.Type == entity.TypeFixed {
			return p.Buyer != 0
		}
		return len(p.Offers) > 0
	})
}

// SellerHistory lists the seller's settled products.
func (uc *ProductUseCase) SellerHistory(ctx context.Context, sellerID int) ([]*entity.Product, error) {
	return uc.filter(ctx, func(p *entity.Product) bool {
		return p.Seller == sellerID &&
			(p.Status == entity.StatusSold || p.Status == entity.StatusRejected)
	})
}

// Shop lists the products a buyer can act on: everything open, excluding
// their own listings and auctions where they hold the latest bid.
func (uc *ProductUseCase) Shop(ctx context.Context, buyerID int) ([]*entity.Product, error) {
	return uc.filter(ctx, func(p *entity.Product) bool {
		if p.Seller == buyerID {
			return false
		}
		if p.Status == entity.StatusStarted {
			return true
		}
		if p.Type == entity.TypeAuction && p.Status == entity.StatusProcessing {
			if len(p.Offers) == 0 {
				return true
			}
			return p.Offers[len(p.Offers)-1].BuyerID != buyerID
		}
		return false
	})
}

// Cart lists the buyer's pending purchases and live bids.
func (uc *ProductUseCase) Cart(ctx context.Context, buyerID int) ([]*entity.Product, error) {
	return uc.filter(ctx, func(p *entity.Product) bool {
		if p.Status != entity.StatusProcessing {
			return false
		}
		if p.Type == entity.TypeFixed {
			return p.Buyer == buyerID
		}
		return p.HasOfferFrom(buyerID)
	})
}

// PurchaseHistory lists everything the buyer bought, lost out on, or was
// rejected over.
func (uc *ProductUseCase) PurchaseHistory(ctx context.Context, buyerID int) ([]*entity.Product, error) {
	return uc.filter(ctx, func(p *entity.Product) bool {
		if p.Buyer == buyerID && (p.Status == entity.StatusSold || p.Status == entity.StatusRejected) {
			return true
		}
		return p.Type == entity.TypeAuction && p.Status == entity.StatusSold && p.HasOfferFrom(buyerID)
	})
}

type SearchFilter struct {
	Search    string
	PriceFrom *float64
	PriceTo   *float64
	Type      string
	Category  string
	City      string
}

// SearchScope narrows the base listing set before the filter applies.
type SearchScope struct {
	BuyerID  int // exclude auctions this buyer currently leads
	SellerID int // restrict to this seller's products
}

func (uc *ProductUseCase) Search(ctx context.Context, scope SearchScope, f SearchFilter) ([]*entity.Product, error) {
	base := func(p *entity.Product) bool {
		if scope.SellerID != 0 {
			return p.Seller == scope.SellerID
		}
		if p.Status == entity.StatusStarted {
			return true
		}
		if p.Type == entity.TypeAuction && p.Status == entity.StatusProcessing {
			if scope.BuyerID == 0 {
				return true
			}
			if len(p.Offers) == 0 {
				return true
			}
			return p.Offers[len(p.Offers)-1].BuyerID != scope.BuyerID
		}
		return false
	}

	return uc.filter(ctx, func(p *entity.Product) bool {
		if !base(p) {
			return false
		}
		if f.Search != "" {
			term := strings.ToLower(f.Search)
			if !strings.Contains(strings.ToLower(p.Name), term) &&
				!strings.Contains(strings.ToLower(p.Description), term) {
				return false
			}
		}
		if f.PriceFrom != nil && p.Price < *f.PriceFrom {
			return false
		}
		if f.PriceTo != nil && p.Price > *f.PriceTo {
			return false
		}
		if f.Type != "" && p.Type != f.Type {
			return false
		}
		if f.Category != "" && p.Category != f.Category {
			return false
		}
		if f.City != "" {
			if p.Location == nil ||
				!strings.Contains(strings.ToLower(p.Location.Address.City), strings.ToLower(f.City)) {
				return false
			}
		}
		return true
	})
}

func (uc *ProductUseCase) filter(ctx context.Context, keep func(*entity.Product) bool) ([]*entity.Product, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Product, 0)
	for _, p := range products {
		if !p.Deleted && keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
