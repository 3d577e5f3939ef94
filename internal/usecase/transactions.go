package usecase

import (
	"context"

	"teodity/internal/domain/entity"
	"teodity/internal/domain/repository"
)

// hasSoldTransaction reports whether a completed sale links the two users
// in either buyer/seller direction. Reviews and reports are both gated on
// this.
func hasSoldTransaction(ctx context.Context, productRepo repository.ProductRepository, userA, userB int) (bool, error) {
	products, err := productRepo.List(ctx)
	if err != nil {
		return false, err
	}
	for _, p := range products {
		if p.Deleted || p.Status != entity.StatusSold {
			continue
		}
		if (p.Buyer == userA && p.Seller == userB) || (p.Seller == userA && p.Buyer == userB) {
			return true, nil
		}
	}
	return false, nil
}
