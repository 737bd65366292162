// Package service contains the report computations
package service

import (
	"context"

	"github.com/RodrigoRozasV/contentful-products-api/internal/core/catalog"
	"github.com/RodrigoRozasV/contentful-products-api/internal/core/stats"
	"github.com/RodrigoRozasV/contentful-products-api/internal/services/reports/domain"
)

// Service defines the reports service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the reports service
type Svc struct {
	Repo domain.Repo
}

// New constructs a reports service
func New(r domain.Repo) *Svc {
	if r == nil {
		panic("reports.Service requires a non nil Repo")
	}
	return &Svc{Repo: r}
}

// Deleted reports soft-deleted products against every stored product
func (s *Svc) Deleted(ctx context.Context) (domain.DeletedReport, error) {
	total, err := s.Repo.CountTotal(ctx, true)
	if err != nil {
		return domain.DeletedReport{}, err
	}
	deleted, err := s.Repo.CountDeleted(ctx)
	if err != nil {
		return domain.DeletedReport{}, err
	}
	return domain.DeletedReport{
		TotalProducts:     total,
		DeletedProducts:   deleted,
		PercentageDeleted: stats.DeletionRate(deleted, total),
	}, nil
}

// NonDeleted splits live products in the date range by price presence. A set HasPrice
// only queries its own side and reports 0 for the other; both percentages use the live
// total as denominator.
func (s *Svc) NonDeleted(ctx context.Context, in domain.NonDeletedFilters) (domain.NonDeletedReport, error) {
	dr, err := catalog.ParseDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return domain.NonDeletedReport{}, err
	}

	total, err := s.Repo.CountByDateRange(ctx, dr)
	if err != nil {
		return domain.NonDeletedReport{}, err
	}

	var with, without int64
	switch {
	case in.HasPrice == nil:
		if with, err = s.Repo.CountWithPriceByDateRange(ctx, dr); err != nil {
			return domain.NonDeletedReport{}, err
		}
		if without, err = s.Repo.CountWithoutPriceByDateRange(ctx, dr); err != nil {
			return domain.NonDeletedReport{}, err
		}
	case *in.HasPrice:
		if with, err = s.Repo.CountWithPriceByDateRange(ctx, dr); err != nil {
			return domain.NonDeletedReport{}, err
		}
	default:
		if without, err = s.Repo.CountWithoutPriceByDateRange(ctx, dr); err != nil {
			return domain.NonDeletedReport{}, err
		}
	}

	return domain.NonDeletedReport{
		TotalNonDeleted:        total,
		ProductsWithPrice:      with,
		ProductsWithoutPrice:   without,
		PercentageWithPrice:    stats.PricePresenceRate(with, total),
		PercentageWithoutPrice: stats.Percentage(without, total),
		Filters:                echo(in),
	}, nil
}

func echo(in domain.NonDeletedFilters) domain.AppliedFilters {
	f := domain.AppliedFilters{
		StartDate: orSentinel(in.StartDate),
		EndDate:   orSentinel(in.EndDate),
		HasPrice:  domain.AllPrices,
	}
	if in.HasPrice != nil {
		f.HasPrice = *in.HasPrice
	}
	return f
}

func orSentinel(s string) string {
	if s == "" {
		return domain.NotSpecified
	}
	return s
}

// ByCategory breaks down live products by category. Both the total and the per category
// counts exclude soft-deleted rows, so ProductsWithoutCategory is never negative.
func (s *Svc) ByCategory(ctx context.Context) (domain.CategoryReport, error) {
	cats, err := s.Repo.ProductsByCategory(ctx)
	if err != nil {
		return domain.CategoryReport{}, err
	}
	total, err := s.Repo.CountTotal(ctx, false)
	if err != nil {
		return domain.CategoryReport{}, err
	}

	out := domain.CategoryReport{
		TotalProducts: total,
		Categories:    make([]domain.CategoryStat, 0, len(cats)),
	}
	for _, c := range cats {
		out.ProductsWithCategory += c.Count
		out.Categories = append(out.Categories, domain.CategoryStat{
			Category:     c.Category,
			Count:        c.Count,
			AveragePrice: stats.RoundPricePtr(c.AveragePrice),
			MinPrice:     stats.RoundPricePtr(c.MinPrice),
			MaxPrice:     stats.RoundPricePtr(c.MaxPrice),
		})
	}
	out.ProductsWithoutCategory = total - out.ProductsWithCategory
	return out, nil
}
