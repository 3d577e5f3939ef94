package repository

import (
	"context"
	"sync"

	"teodity/internal/domain/entity"
	"teodity/internal/domain/repository"
	"teodity/pkg/errors"
)

type jsonProductRepository struct {
	mu       sync.RWMutex
	file     jsonFile
	products []*entity.Product
	byID     map[int]*entity.Product
}

func NewJSONProductRepository(dataDir string) (repository.ProductRepository, error) {
	r := &jsonProductRepository{
		file: newJSONFile(dataDir, "products.json"),
		byID: make(map[int]*entity.Product),
	}
	if err := r.file.load(&r.products); err != nil {
		return nil, errors.Internal("Failed to load products collection", err)
	}
	for _, p := range r.products {
		r.byID[p.ID] = p
	}
	return r, nil
}

func cloneProduct(p *entity.Product) *entity.Product {
	out := *p
	out.Images = append([]string(nil), p.Images...)
	out.Offers = append([]entity.Offer(nil), p.Offers...)
	if p.Location != nil {
		loc := *p.Location
		out.Location = &loc
	}
	return &out
}

func (r *jsonProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (r *jsonProductRepository) GetByID(ctx context.Context, id int) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, errors.NotFound("Product not found!", nil)
	}
	return cloneProduct(p), nil
}

func (r *jsonProductRepository) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, p := range r.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	product.ID = maxID + 1

	if product.Images == nil {
		product.Images = []string{}
	}
	if product.Offers == nil {
		product.Offers = []entity.Offer{}
	}

	stored := cloneProduct(product)
	r.products = append(r.products, stored)
	r.byID[stored.ID] = stored

	if err := r.file.save(r.products); err != nil {
		return errors.Internal("Failed to save products collection", err)
	}
	return nil
}

func (r *jsonProductRepository) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[product.ID]
	if !ok {
		return errors.NotFound("Product not found!", nil)
	}
	*existing = *cloneProduct(product)

	if err := r.file.save(r.products); err != nil {
		return errors.Internal("Failed to save products collection", err)
	}
	return nil
}
