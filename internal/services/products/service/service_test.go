package service

import (
	"context"
	"errors"
	"testing"

	"github.com/RodrigoRozasV/contentful-products-api/internal/core/catalog"
	perr "github.com/RodrigoRozasV/contentful-products-api/internal/platform/errors"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/testkit"
	"github.com/RodrigoRozasV/contentful-products-api/internal/services/products/domain"
)

// fakeRepo records calls; unset funcs panic through the nil embedded interface
type fakeRepo struct {
	domain.Repository

	findAll    func(catalog.Pagination, catalog.ProductFilter) ([]catalog.Product, int64, error)
	findByID   func(string) (catalog.Product, error)
	softDelete func(string) error
	deleted    []string
}

func (f *fakeRepo) FindAll(_ context.Context, p catalog.Pagination, fl catalog.ProductFilter) ([]catalog.Product, int64, error) {
	return f.findAll(p, fl)
}

func (f *fakeRepo) FindByID(_ context.Context, id string) (catalog.Product, error) {
	return f.findByID(id)
}

func (f *fakeRepo) SoftDelete(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	if f.softDelete != nil {
		return f.softDelete(id)
	}
	return nil
}

func TestList(t *testing.T) {
	var gotPage catalog.Pagination
	var gotFilter catalog.ProductFilter
	r := &fakeRepo{findAll: func(p catalog.Pagination, f catalog.ProductFilter) ([]catalog.Product, int64, error) {
		gotPage, gotFilter = p, f
		return []catalog.Product{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}}, 13, nil
	}}
	s := New(r)

	out, err := s.List(context.Background(), domain.ListInput{
		Page: 2, Limit: 5, Name: "ph", Category: "el", MinPrice: testkit.Ptr(10.0),
	})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotPage.Skip() != 5 || gotFilter.Name != "ph" || gotFilter.Category != "el" || *gotFilter.Price.Min() != 10 {
		t.Fatalf("repo got page %+v filter %+v", gotPage, gotFilter)
	}
	if out.Meta != (domain.PageMeta{Total: 13, Page: 2, Limit: 5, TotalPages: 3}) {
		t.Fatalf("meta %+v", out.Meta)
	}
	if len(out.Items) != 2 || out.Items[1].ID != "b" {
		t.Fatalf("items %+v", out.Items)
	}
}

func TestList_ValidationFailsBeforeRepo(t *testing.T) {
	r := &fakeRepo{findAll: func(catalog.Pagination, catalog.ProductFilter) ([]catalog.Product, int64, error) {
		t.Fatal("repo must not be called on invalid input")
		return nil, 0, nil
	}}
	s := New(r)

	cases := []domain.ListInput{
		{},
		{Page: 0, Limit: 5},
		{Page: 1, Limit: 0},
		{Page: -1, Limit: 5},
		{Page: 1, Limit: 6},
		{Page: 1, Limit: 5, MinPrice: testkit.Ptr(10.0), MaxPrice: testkit.Ptr(5.0)},
		{Page: 1, Limit: 5, MinPrice: testkit.Ptr(-1.0)},
	}
	for _, in := range cases {
		if _, err := s.List(context.Background(), in); !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("input %+v: want validation error, got %v", in, err)
		}
	}
}

func TestGet(t *testing.T) {
	boom := perr.New(perr.ErrorCodeDB, "connection reset")
	r := &fakeRepo{findByID: func(id string) (catalog.Product, error) {
		switch id {
		case "ok":
			return catalog.Product{ID: "ok", Name: "Thing"}, nil
		case "down":
			return catalog.Product{}, boom
		}
		return catalog.Product{}, perr.ErrNotFound
	}}
	s := New(r)

	p, err := s.Get(context.Background(), "ok")
	if err != nil || p.Name != "Thing" {
		t.Fatalf("Get ok: %+v %v", p, err)
	}

	_, err = s.Get(context.Background(), "nope")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
	testkit.MustContain(t, err.Error(), "product with id nope not found")

	_, err = s.Get(context.Background(), "down")
	if !errors.Is(err, boom) || perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("transient failure must stay distinguishable, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	r := &fakeRepo{findByID: func(id string) (catalog.Product, error) {
		if id == "ok" {
			return catalog.Product{ID: id}, nil
		}
		return catalog.Product{}, perr.ErrNotFound
	}}
	s := New(r)

	res, err := s.Delete(context.Background(), "ok")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if res != (domain.DeleteResult{Message: "Product deleted successfully", ID: "ok"}) {
		t.Fatalf("result %+v", res)
	}

	if _, err := s.Delete(context.Background(), "gone"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
	if len(r.deleted) != 1 || r.deleted[0] != "ok" {
		t.Fatalf("SoftDelete must only run for existing products, got %v", r.deleted)
	}
}

func TestNew_PanicsOnNilRepo(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil) })
}
