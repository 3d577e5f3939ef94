package handler

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/labstack/echo/v4"

	"teodity/internal/domain/entity"
	"teodity/internal/domain/service"
	"teodity/internal/usecase"
	"teodity/pkg/errors"
	"teodity/pkg/response"
)

type ProductHandler struct {
	productUseCase *usecase.ProductUseCase
	fileStore      service.FileStore
}

func NewProductHandler(productUseCase *usecase.ProductUseCase, fileStore service.FileStore) *ProductHandler {
	return &ProductHandler{
		productUseCase: productUseCase,
		fileStore:      fileStore,
	}
}

// parseLocation decodes the optional "location" form field, sent by the
// frontend as a JSON object alongside the file parts.
func parseLocation(raw string) (*usecase.LocationInput, error) {
	if raw == "" {
		return nil, nil
	}
	var loc usecase.LocationInput
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		return nil, errors.BadRequest("Invalid location value", err)
	}
	return &loc, nil
}

func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) GetByID(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.GetByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) Create(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("Expected multipart form data", err))
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("Price must be a number!", err))
	}
	sellerID, err := strconv.Atoi(c.FormValue("sellerId"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid seller id", err))
	}

	location, err := parseLocation(c.FormValue("location"))
	if err != nil {
		return response.Error(c, err)
	}

	images, err := saveUploads(h.fileStore, form.File["images"])
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.Create(c.Request().Context(), usecase.CreateProductInput{
		Name:        c.FormValue("name"),
		Price:       price,
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Type:        c.FormValue("type"),
		SellerID:    sellerID,
		Images:      images,
		Location:    location,
	})
	if err != nil {
		discardUploads(h.fileStore, images)
		return response.Error(c, err)
	}

	return response.Created(c, product)
}

func (h *ProductHandler) Update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("Expected multipart form data", err))
	}

	input := usecase.UpdateProductInput{
		Name:        c.FormValue("name"),
		Description: formPtr(form, "description"),
		Category:    c.FormValue("category"),
		Type:        c.FormValue("type"),
	}

	if raw := c.FormValue("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("Price must be a number!", err))
		}
		input.Price = &price
	}

	input.Location, err = parseLocation(c.FormValue("location"))
	if err != nil {
		return response.Error(c, err)
	}

	if raw := formPtr(form, "existingImages"); raw != nil {
		var existing []string
		if *raw != "" {
			if err := json.Unmarshal([]byte(*raw), &existing); err != nil {
				return response.Error(c, errors.BadRequest("Invalid existingImages value", err))
			}
		}
		input.ExistingImages = &existing
	}

	newImages, err := saveUploads(h.fileStore, form.File["images"])
	if err != nil {
		return response.Error(c, err)
	}
	input.NewImages = newImages

	product, err := h.productUseCase.Update(c.Request().Context(), id, input)
	if err != nil {
		discardUploads(h.fileStore, newImages)
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.productUseCase.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Product deleted successfully",
	})
}

type purchaseRequest struct {
	BuyerID int `json:"buyerId" validate:"required"`
}

func (h *ProductHandler) Purchase(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.RequestPurchase(c.Request().Context(), id, req.BuyerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

type bidRequest struct {
	BuyerID int     `json:"buyerId" validate:"required"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
}

func (h *ProductHandler) Bid(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	var req bidRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.PlaceBid(c.Request().Context(), id, req.BuyerID, req.Amount)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) Approve(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}
	buyerID, err := paramID(c, "buyerId")
	if err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.Approve(c.Request().Context(), id, buyerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

type rejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *ProductHandler) Reject(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}
	buyerID, err := paramID(c, "buyerId")
	if err != nil {
		return response.Error(c, err)
	}

	var req rejectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product, err := h.productUseCase.Reject(c.Request().Context(), id, buyerID, req.Reason)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, product)
}

func (h *ProductHandler) CancelPurchase(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}
	buyerID, err := paramID(c, "buyerId")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.productUseCase.CancelPurchase(c.Request().Context(), id, buyerID); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Purchase cancelled successfully",
	})
}

func (h *ProductHandler) CancelBid(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}
	buyerID, err := paramID(c, "buyerId")
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.productUseCase.CancelBid(c.Request().Context(), id, buyerID); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Bid cancelled successfully",
	})
}

type endAuctionRequest struct {
	SellerID int `json:"sellerId" validate:"required"`
}

func (h *ProductHandler) EndAuction(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return response.Error(c, err)
	}

	var req endAuctionRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.productUseCase.EndAuction(c.Request().Context(), id, req.SellerID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

func (h *ProductHandler) ForSeller(c echo.Context) error {
	return h.listFor(c, "sellerId", h.productUseCase.ForSeller)
}

func (h *ProductHandler) ToBeMarked(c echo.Context) error {
	return h.listFor(c, "sellerId", h.productUseCase.ToBeMarked)
}

func (h *ProductHandler) SellerHistory(c echo.Context) error {
	return h.listFor(c, "sellerId", h.productUseCase.SellerHistory)
}

func (h *ProductHandler) Shop(c echo.Context) error {
	return h.listFor(c, "buyerId", h.productUseCase.Shop)
}

func (h *ProductHandler) Cart(c echo.Context) error {
	return h.listFor(c, "buyerId", h.productUseCase.Cart)
}

func (h *ProductHandler) PurchaseHistory(c echo.Context) error {
	return h.listFor(c, "buyerId", h.productUseCase.PurchaseHistory)
}

func (h *ProductHandler) Search(c echo.Context) error {
	return h.search(c, usecase.SearchScope{})
}

func (h *ProductHandler) SearchForBuyer(c echo.Context) error {
	buyerID, err := paramID(c, "buyerId")
	if err != nil {
		return response.Error(c, err)
	}
	return h.search(c, usecase.SearchScope{BuyerID: buyerID})
}

func (h *ProductHandler) SearchForSeller(c echo.Context) error {
	sellerID, err := paramID(c, "sellerId")
	if err != nil {
		return response.Error(c, err)
	}
	return h.search(c, usecase.SearchScope{SellerID: sellerID})
}

func (h *ProductHandler) search(c echo.Context, scope usecase.SearchScope) error {
	filter := usecase.SearchFilter{
		Search:   c.QueryParam("search"),
		Type:     c.QueryParam("type"),
		Category: c.QueryParam("category"),
		City:     c.QueryParam("city"),
	}

	if raw := c.QueryParam("priceFrom"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("priceFrom must be a number!", err))
		}
		filter.PriceFrom = &v
	}
	if raw := c.QueryParam("priceTo"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.Error(c, errors.BadRequest("priceTo must be a number!", err))
		}
		filter.PriceTo = &v
	}

	products, err := h.productUseCase.Search(c.Request().Context(), scope, filter)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}

func (h *ProductHandler) listFor(
	c echo.Context,
	param string,
	view func(ctx context.Context, id int) ([]*entity.Product, error),
) error {
	id, err := paramID(c, param)
	if err != nil {
		return response.Error(c, err)
	}

	products, err := view(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, products)
}
