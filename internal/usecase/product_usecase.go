package usecase

import (
	"context"
	"strings"
	"time"

	"teodity/internal/domain/entity"
	"teodity/internal/domain/repository"
	"teodity/internal/domain/service"
	"teodity/pkg/errors"
	"teodity/pkg/logger"
	"teodity/pkg/timefmt"
)

type ProductUseCase struct {
	productRepo      repository.ProductRepository
	userRepo         repository.UserRepository
	categoryRepo     repository.CategoryRepository
	cancellationRepo repository.CancellationRepository
	fileStore        service.FileStore
	notifier         service.Notifier
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	cancellationRepo repository.CancellationRepository,
	fileStore service.FileStore,
	notifier service.Notifier,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:      productRepo,
		userRepo:         userRepo,
		categoryRepo:     categoryRepo,
		cancellationRepo: cancellationRepo,
		fileStore:        fileStore,
		notifier:         notifier,
	}
}

type LocationInput struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Street     string  `json:"street"`
	City       string  `json:"city"`
	PostalCode string  `json:"postalCode"`
}

type CreateProductInput struct {
	Name        string
	Price       float64
	Description string
	Category    string
	Type        string
	SellerID    int
	Images      []string
	Location    *LocationInput
}

type UpdateProductInput struct {
	Name           string
	Price          *float64
	Description    *string
	Category       string
	Type           string
	ExistingImages *[]string
	NewImages      []string
	Location       *LocationInput
}

func validateLocation(in *LocationInput) (*entity.Location, error) {
	if in.Street == "" || in.City == "" || in.PostalCode == "" {
		return nil, errors.BadRequest("Address must contain street, city and postalCode!", nil)
	}
	if in.Latitude < -90 || in.Latitude > 90 {
		return nil, errors.BadRequest("Latitude must be a number between -90 and 90!", nil)
	}
	if in.Longitude < -180 || in.Longitude > 180 {
		return nil, errors.BadRequest("Longitude must be a number between -180 and 180!", nil)
	}
	return &entity.Location{
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		Address: entity.Address{
			Street:     strings.TrimSpace(in.Street),
			City:       strings.TrimSpace(in.City),
			PostalCode: strings.TrimSpace(in.PostalCode),
		},
	}, nil
}

func (uc *ProductUseCase) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if !p.Deleted {
			active = append(active, p)
		}
	}
	return active, nil
}

func (uc *ProductUseCase) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil || product.Deleted {
		return nil, errors.NotFound("Product not found!", nil)
	}
	return product, nil
}

func (uc *ProductUseCase) Create(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	if input.Type != entity.TypeAuction && input.Type != entity.TypeFixed {
		return nil, errors.BadRequest("Wrong type value! Must be Auction or Fixed.", nil)
	}
	if input.Price <= 0 {
		return nil, errors.BadRequest("Price must be greater than 0!", nil)
	}

	name := strings.TrimSpace(input.Name)
	if len(name) < 3 {
		return nil, errors.BadRequest("Product name must be at least 3 characters long!", nil)
	}

	var location *entity.Location
	if input.Location != nil {
		var err error
		location, err = validateLocation(input.Location)
		if err != nil {
			return nil, err
		}
	}

	category, err := uc.categoryRepo.GetByName(ctx, input.Category)
	if err != nil {
		return nil, err
	}
	if category == nil || category.Deleted {
		return nil, errors.BadRequest("Unknown category!", nil)
	}

	seller, err := uc.userRepo.GetByID(ctx, input.SellerID)
	if err != nil || seller.Blocked || seller.Role != entity.RoleSeller {
		return nil, errors.BadRequest("Invalid seller or seller is blocked!", nil)
	}

	images := input.Images
	if len(images) == 0 {
		images = []string{entity.PlaceholderImage}
	}

	product := &entity.Product{
		Name:        name,
		Price:       input.Price,
		Description: strings.TrimSpace(input.Description),
		Category:    category.Name,
		Type:        input.Type,
		Date:        timefmt.Format(time.Now()),
		Seller:      seller.ID,
		Images:      images,
		Location:    location,
		Offers:      []entity.Offer{},
		Status:      entity.StatusStarted,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	seller.Products = append(seller.Products, product.ID)
	if err := uc.userRepo.Update(ctx, seller); err != nil {
		return nil, err
	}

	return product, nil
}

func (uc *ProductUseCase) Update(ctx context.Context, id int, input UpdateProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil || product.Deleted {
		return nil, errors.NotFound("Product not found!", nil)
	}

	if input.Name != "" {
		product.Name = strings.TrimSpace(input.Name)
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Category != "" {
		category, err := uc.categoryRepo.GetByName(ctx, input.Category)
		if err != nil {
			return nil, err
		}
		if category == nil || category.Deleted {
			return nil, errors.BadRequest("Unknown category!", nil)
		}
		product.Category = category.Name
	}

	if product.Price <= 0 {
		return nil, errors.BadRequest("Price must be greater than 0!", nil)
	}
	if len(product.Name) < 3 {
		return nil, errors.BadRequest("Product name must be at least 3 characters long!", nil)
	}

	if input.Location != nil {
		location, err := validateLocation(input.Location)
		if err != nil {
			return nil, err
		}
		product.Location = location
	}

	if input.Type != "" {
		if input.Type != entity.TypeAuction && input.Type != entity.TypeFixed {
			return nil, errors.BadRequest("Wrong type value!", nil)
		}
		if product.Type == entity.TypeAuction && len(product.Offers) > 0 && input.Type != entity.TypeAuction {
			return nil, errors.BadRequest("Cannot change auction type when bids exist!", nil)
		}
		product.Type = input.Type
	}

	// Image reconciliation: files dropped from the kept list are unlinked
	// from storage, freshly uploaded ones are appended.
	existing := product.Images
	if input.ExistingImages != nil {
		existing = *input.ExistingImages
	}
	for _, img := range product.Images {
		if img == entity.PlaceholderImage {
			continue
		}
		kept := false
		for _, e := range existing {
			if e == img {
				kept = true
				break
			}
		}
		if !kept {
			if err := uc.fileStore.Remove(img); err != nil {
				logger.Error("Failed to delete image %s: %v", img, err)
			}
		}
	}
	all := append(append([]string{}, existing...), input.NewImages...)
	if len(all) == 0 {
		all = []string{entity.PlaceholderImage}
	}
	product.Images = all

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *ProductUseCase) Delete(ctx context.Context, id int) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	product.Deleted = true
	return uc.productRepo.Update(ctx, product)
}

// RequestPurchase moves a Fixed-price product from Started to Processing on
// behalf of the buyer. There is deliberately no guard against a seller
// requesting their own listing; shop views filter own products out, and the
// acceptance tests document the remaining hole.
func (uc *ProductUseCase) RequestPurchase(ctx context.Context, productID, buyerID int) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil || product.Deleted {
		return nil, errors.NotFound("Product not found!", nil)
	}

	buyer, err := uc.userRepo.GetByID(ctx, buyerID)
	if err != nil || buyer.Blocked {
		return nil, errors.NotFound("Buyer not found!", nil)
	}

	if product.Type != entity.TypeFixed {
		return nil, errors.BadRequest("This product is not for fixed price sale!", nil)
	}
	if !product.Allows(entity.ActionPurchase) {
		return nil, errors.BadRequest("Product is not available for purchase!", nil)
	}

	product.Buyer = buyerID
	product.Status = entity.StatusProcessing
	buyer.Products = append(buyer.Products, productID)

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	if err := uc.userRepo.Update(ctx, buyer); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *ProductUseCase) PlaceBid(ctx context.Context, productID, buyerID int, amount float64) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil || product.Deleted {
		return nil, errors.NotFound("Product not found!", nil)
	}

	if product.Type != entity.TypeAuction {
		return nil, errors.BadRequest("This product is not an auction!", nil)
	}
	if !product.Allows(entity.ActionBid) {
		return nil, errors.BadRequest("Auction is not active!", nil)
	}

	highest, previousLeaderID := product.HighestBid()
	if amount <= highest {
		return nil, errors.BadRequest("Bid must be higher than current highest bid!", nil)
	}

	if len(product.Offers) == 0 && product.Status == entity.StatusStarted {
		product.Status = entity.StatusProcessing
	}

	product.Offers = append(product.Offers, entity.Offer{
		BuyerID:   buyerID,
		Amount:    amount,
		Timestamp: timefmt.Format(time.Now()),
	})

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if previousLeaderID != 0 && previousLeaderID != buyerID {
		if previous, err := uc.userRepo.GetByID(ctx, previousLeaderID); err == nil {
			uc.notifier.Outbid(previous.Mail, product.Name, amount)
		}
	}

	return product, nil
}

func (uc *ProductUseCase) Approve(ctx context.Context, productID, buyerID int) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil || product.Deleted {
		return nil, errors.NotFound("Product not found!", nil)
	}

	if product.Buyer != buyerID {
		return nil, errors.BadRequest("Invalid buyer for this product!", nil)
	}
	if !product.Allows(entity.ActionApprove) {
		return nil, errors.BadRequest("Cannot approve - product is not in processing status!", nil)
	}

	product.Status = entity.StatusSold
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	buyer, buyerErr := uc.userRepo.GetByID(ctx, buyerID)
	seller, sellerErr := uc.userRepo.GetByID(ctx, product.Seller)
	if buyerErr == nil && sellerErr == nil {
		uc.notifier.ProductSold(buyer.Mail, seller.Mail, product.Name, product.Price)
	}

	return product, nil
}

func (uc *ProductUseCase) Reject(ctx context.Context, productID, buyerID int, reason string) (*entity.Product, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, errors.BadRequest("Rejection reason is required!", nil)
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil || product.Deleted {
		return nil, errors.NotFound("Product not found!", nil)
	}

	if product.Buyer != buyerID {
		return nil, errors.BadRequest("Invalid buyer for this product!", nil)
	}
	if !product.Allows(entity.ActionReject) {
		return nil, errors.BadRequest("Cannot reject - product is not in processing status!", nil)
	}

	product.Status = entity.StatusRejected
	product.RejectionReason = reason

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if buyer, err := uc.userRepo.GetByID(ctx, buyerID); err == nil && !buyer.Blocked {
		buyer.RemoveProduct(productID)
		if err := uc.userRepo.Update(ctx, buyer); err != nil {
			return nil, err
		}
	}

	return product, nil
}

func (uc *ProductUseCase) CancelPurchase(ctx context.Context, productID, buyerID int) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil || product.Deleted {
		return errors.NotFound("Product not found!", nil)
	}

	if product.Buyer != buyerID {
		return errors.BadRequest("You cannot cancel this purchase!", nil)
	}
	if !product.Allows(entity.ActionCancelPurchase) {
		return errors.BadRequest("Cannot cancel - purchase is not in processing status!", nil)
	}

	if err := uc.cancellationRepo.Create(ctx, &entity.Cancellation{
		BuyerID:     buyerID,
		ProductID:   productID,
		ProductName: product.Name,
		Date:        timefmt.Format(time.Now()),
	}); err != nil {
		return err
	}

	product.Status = entity.StatusStarted
	product.Buyer = 0

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return err
	}

	if buyer, err := uc.userRepo.GetByID(ctx, buyerID); err == nil && !buyer.Blocked {
		buyer.RemoveProduct(productID)
		if err := uc.userRepo.Update(ctx, buyer); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ProductUseCase) CancelBid(ctx context.Context, productID, buyerID int) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil || product.Deleted {
		return errors.NotFound("Product not found!", nil)
	}

	if product.Type != entity.TypeAuction {
		return errors.BadRequest("This product is not an auction!", nil)
	}
	if !product.Allows(entity.ActionCancelBid) {
		return errors.BadRequest("Cannot cancel bid - auction is not active!", nil)
	}

	if product.RemoveOffersBy(buyerID) == 0 {
		return errors.BadRequest("No bids found for this buyer!", nil)
	}

	if err := uc.cancellationRepo.Create(ctx, &entity.Cancellation{
		BuyerID:     buyerID,
		ProductID:   productID,
		ProductName: product.Name,
		Date:        timefmt.Format(time.Now()),
	}); err != nil {
		return err
	}

	if len(product.Offers) == 0 {
		product.Status = entity.StatusStarted
	}

	return uc.productRepo.Update(ctx, product)
}

type AuctionResult struct {
	Winner     string          `json:"winner"`
	FinalPrice float64         `json:"finalPrice"`
	Product    *entity.Product `json:"product"`
}

func (uc *ProductUseCase) EndAuction(ctx context.Context, productID, sellerID int) (*AuctionResult, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil || product.Deleted {
		return nil, errors.NotFound("Product not found!", nil)
	}

	if product.Seller != sellerID {
		return nil, errors.Forbidden("Only seller can end auction!", nil)
	}
	if product.Type != entity.TypeAuction {
		return nil, errors.BadRequest("This product is not an auction!", nil)
	}
	if !product.Allows(entity.ActionEndAuction) {
		return nil, errors.BadRequest("Auction is not active!", nil)
	}
	if len(product.Offers) == 0 {
		return nil, errors.BadRequest("Cannot end auction - no bids placed!", nil)
	}

	winningBid := product.WinningOffer()

	winner, err := uc.userRepo.GetByID(ctx, winningBid.BuyerID)
	if err != nil {
		return nil, errors.NotFound("Winning buyer not found!", nil)
	}

	product.Status = entity.StatusSold
	product.Buyer = winningBid.BuyerID
	product.FinalPrice = winningBid.Amount

	winner.Products = append(winner.Products, productID)

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	if err := uc.userRepo.Update(ctx, winner); err != nil {
		return nil, err
	}

	uc.notifier.AuctionWon(winner.Mail, product.Name, winningBid.Amount)
	if seller, err := uc.userRepo.GetByID(ctx, product.Seller); err == nil {
		uc.notifier.ProductSold(winner.Mail, seller.Mail, product.Name, winningBid.Amount)
	}

	return &AuctionResult{
		Winner:     winner.Username,
		FinalPrice: winningBid.Amount,
		Product:    product,
	}, nil
}
