// Package service contains the product catalog workflows
package service

import (
	"context"

	"github.com/RodrigoRozasV/contentful-products-api/internal/core/catalog"
	perr "github.com/RodrigoRozasV/contentful-products-api/internal/platform/errors"
	"github.com/RodrigoRozasV/contentful-products-api/internal/services/products/domain"
)

// Service defines the products service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the products service
type Svc struct {
	Repo domain.Repository
}

// New constructs a products service
func New(r domain.Repository) *Svc {
	if r == nil {
		panic("products.Service requires a non nil Repository")
	}
	return &Svc{Repo: r}
}

// List validates paging and price bounds then returns one window of live products
func (s *Svc) List(ctx context.Context, in domain.ListInput) (domain.Page, error) {
	p, err := catalog.NewPagination(in.Page, in.Limit)
	if err != nil {
		return domain.Page{}, err
	}
	pr, err := catalog.NewPriceRange(in.MinPrice, in.MaxPrice)
	if err != nil {
		return domain.Page{}, err
	}

	items, total, err := s.Repo.FindAll(ctx, p, catalog.ProductFilter{
		Name:     in.Name,
		Category: in.Category,
		Price:    pr,
	})
	if err != nil {
		return domain.Page{}, err
	}

	out := domain.Page{
		Items: make([]domain.ProductDTO, 0, len(items)),
		Meta: domain.PageMeta{
			Total:      total,
			Page:       p.Page(),
			Limit:      p.Limit(),
			TotalPages: p.TotalPages(total),
		},
	}
	for _, it := range items {
		out.Items = append(out.Items, domain.ToDTO(it))
	}
	return out, nil
}

// Get returns a live product or a NotFound error naming the id
func (s *Svc) Get(ctx context.Context, id string) (catalog.Product, error) {
	p, err := s.Repo.FindByID(ctx, id)
	if perr.IsCode(err, perr.ErrorCodeNotFound) {
		return catalog.Product{}, perr.NotFoundf("product with id %s not found", id)
	}
	if err != nil {
		return catalog.Product{}, err
	}
	return p, nil
}

// Delete soft deletes a live product
func (s *Svc) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return domain.DeleteResult{}, err
	}
	if err := s.Repo.SoftDelete(ctx, id); err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.DeleteResult{}, perr.NotFoundf("product with id %s not found", id)
		}
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{Message: domain.DeletedMessage, ID: id}, nil
}
