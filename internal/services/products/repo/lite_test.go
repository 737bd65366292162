package repo

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/RodrigoRozasV/contentful-products-api/internal/core/catalog"
	"github.com/RodrigoRozasV/contentful-products-api/internal/core/normalize"
	perr "github.com/RodrigoRozasV/contentful-products-api/internal/platform/errors"
	litestore "github.com/RodrigoRozasV/contentful-products-api/internal/platform/store/lite"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/testkit"
)

var t0 = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newLiteRepo(t *testing.T) Repo {
	t.Helper()
	ctx := context.Background()
	db, err := litestore.Open(ctx, litestore.Config{Path: ":memory:"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("litestore.Open: %v", err)
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewLite(db)
}

func product(id, name string, category *string, price *float64, created time.Time) catalog.Product {
	return catalog.Product{
		ID:        id,
		Name:      name,
		Category:  category,
		Price:     price,
		CreatedAt: created,
		UpdatedAt: created,
		Metadata:  catalog.Metadata{"sku": catalog.Scalar{V: "sku-" + id}},
	}
}

func seed(t *testing.T, r Repo) {
	t.Helper()
	electronics, books := testkit.Ptr("Electronics"), testkit.Ptr("Books")
	ps := []catalog.Product{
		product("p1", "Laptop Pro", electronics, testkit.Ptr(999.99), t0),
		product("p2", "Phone", electronics, testkit.Ptr(19.99), t0.Add(time.Hour)),
		product("p3", "Cable", electronics, nil, t0.Add(2*time.Hour)),
		product("p4", "Go Book", books, testkit.Ptr(24.99), t0.Add(24*time.Hour)),
		product("p5", "Mystery", nil, nil, t0.Add(48*time.Hour)),
		product("p6", "100% Cotton", nil, testkit.Ptr(5.0), t0.Add(72*time.Hour)),
	}
	if err := r.SaveMany(context.Background(), ps); err != nil {
		t.Fatalf("SaveMany: %v", err)
	}
}

func TestLite_SaveFindAndUpsert(t *testing.T) {
	ctx := context.Background()
	r := newLiteRepo(t)
	seed(t, r)

	got, err := r.FindByID(ctx, "p1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Name != "Laptop Pro" || got.Price == nil || *got.Price != 999.99 || !got.CreatedAt.Equal(t0) {
		t.Fatalf("unexpected product %+v", got)
	}
	if got.Metadata["sku"] != (catalog.Scalar{V: "sku-p1"}) {
		t.Fatalf("metadata round trip %#v", got.Metadata)
	}

	updated := product("p1", "Laptop Max", testkit.Ptr("Electronics"), testkit.Ptr(1299.0), t0.Add(time.Minute))
	if err := r.SaveMany(ctx, []catalog.Product{updated}); err != nil {
		t.Fatalf("SaveMany upsert: %v", err)
	}
	got, err = r.FindByID(ctx, "p1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Name != "Laptop Max" || *got.Price != 1299 {
		t.Fatalf("upsert did not replace columns: %+v", got)
	}

	if _, err := r.FindByID(ctx, "missing"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
	if err := r.SaveMany(ctx, nil); err != nil {
		t.Fatalf("empty batch: %v", err)
	}
}

func TestLite_SoftDeleteSurvivesResync(t *testing.T) {
	ctx := context.Background()
	r := newLiteRepo(t)
	seed(t, r)

	if err := r.SoftDelete(ctx, "p2"); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if err := r.SoftDelete(ctx, "p2"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("second delete should be not found, got %v", err)
	}
	if _, err := r.FindByID(ctx, "p2"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("deleted product should be hidden, got %v", err)
	}

	resync := product("p2", "Phone v2", testkit.Ptr("Electronics"), testkit.Ptr(29.99), t0)
	if err := r.SaveMany(ctx, []catalog.Product{resync}); err != nil {
		t.Fatalf("SaveMany: %v", err)
	}
	if _, err := r.FindByID(ctx, "p2"); !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("re-sync must not clear deleted_at, got %v", err)
	}

	deleted, err := r.CountDeleted(ctx)
	if err != nil || deleted != 1 {
		t.Fatalf("CountDeleted = %d, %v", deleted, err)
	}
	all, err := r.CountTotal(ctx, true)
	if err != nil || all != 6 {
		t.Fatalf("CountTotal(true) = %d, %v", all, err)
	}
	live, err := r.CountTotal(ctx, false)
	if err != nil || live != 5 {
		t.Fatalf("CountTotal(false) = %d, %v", live, err)
	}
}

func TestLite_FindAll(t *testing.T) {
	ctx := context.Background()
	r := newLiteRepo(t)
	seed(t, r)

	page := func(n, l int) catalog.Pagination {
		p, err := catalog.NewPagination(n, l)
		if err != nil {
			t.Fatalf("NewPagination: %v", err)
		}
		return p
	}
	ids := func(ps []catalog.Product) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.ID
		}
		return out
	}
	priced := func(minP, maxP *float64) catalog.PriceRange {
		pr, err := catalog.NewPriceRange(minP, maxP)
		if err != nil {
			t.Fatalf("NewPriceRange: %v", err)
		}
		return pr
	}

	cases := []struct {
		name  string
		page  catalog.Pagination
		f     catalog.ProductFilter
		want  []string
		total int64
	}{
		{"first page newest first", page(1, 5), catalog.ProductFilter{}, []string{"p6", "p5", "p4", "p3", "p2"}, 6},
		{"second page", page(2, 5), catalog.ProductFilter{}, []string{"p1"}, 6},
		{"name case insensitive", page(1, 5), catalog.ProductFilter{Name: "LAPTOP"}, []string{"p1"}, 1},
		{"category", page(1, 5), catalog.ProductFilter{Category: "electr"}, []string{"p3", "p2", "p1"}, 3},
		{"percent is literal", page(1, 5), catalog.ProductFilter{Name: "100%"}, []string{"p6"}, 1},
		{"price bounds inclusive", page(1, 5), catalog.ProductFilter{Price: priced(testkit.Ptr(19.99), testkit.Ptr(24.99))}, []string{"p4", "p2"}, 2},
		{"min only", page(1, 5), catalog.ProductFilter{Price: priced(testkit.Ptr(100.0), nil)}, []string{"p1"}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, total, err := r.FindAll(ctx, tc.page, tc.f)
			if err != nil {
				t.Fatalf("FindAll: %v", err)
			}
			if total != tc.total {
				t.Fatalf("total %d want %d", total, tc.total)
			}
			g := ids(got)
			if len(g) != len(tc.want) {
				t.Fatalf("ids %v want %v", g, tc.want)
			}
			for i := range g {
				if g[i] != tc.want[i] {
					t.Fatalf("ids %v want %v", g, tc.want)
				}
			}
		})
	}
}

func TestLite_Counts(t *testing.T) {
	ctx := context.Background()
	r := newLiteRepo(t)
	seed(t, r)
	if err := r.SoftDelete(ctx, "p4"); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	all := catalog.DateRange{}
	start, end := t0.Add(time.Hour), t0.Add(48*time.Hour)
	window, err := catalog.NewDateRange(&start, &end)
	if err != nil {
		t.Fatalf("NewDateRange: %v", err)
	}

	cases := []struct {
		name string
		fn   func(context.Context, catalog.DateRange) (int64, error)
		dr   catalog.DateRange
		want int64
	}{
		{"all live", r.CountByDateRange, all, 5},
		{"all with price", r.CountWithPriceByDateRange, all, 3},
		{"all without price", r.CountWithoutPriceByDateRange, all, 2},
		{"window inclusive", r.CountByDateRange, window, 3},
		{"window with price", r.CountWithPriceByDateRange, window, 1},
		{"window without price", r.CountWithoutPriceByDateRange, window, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.fn(ctx, tc.dr)
			if err != nil || got != tc.want {
				t.Fatalf("got %d, %v want %d", got, err, tc.want)
			}
		})
	}
}

func TestLite_ProductsByCategory(t *testing.T) {
	ctx := context.Background()
	r := newLiteRepo(t)
	seed(t, r)
	extra := product("p7", "Poems", testkit.Ptr("Poetry"), nil, t0)
	if err := r.SaveMany(ctx, []catalog.Product{extra}); err != nil {
		t.Fatalf("SaveMany: %v", err)
	}

	got, err := r.ProductsByCategory(ctx)
	if err != nil {
		t.Fatalf("ProductsByCategory: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("groups %+v", got)
	}
	e := got[0]
	if e.Category != "Electronics" || e.Count != 3 {
		t.Fatalf("first group %+v", e)
	}
	testkit.MustFloat(t, "avg", *e.AveragePrice, (999.99+19.99)/2)
	testkit.MustFloat(t, "min", *e.MinPrice, 19.99)
	testkit.MustFloat(t, "max", *e.MaxPrice, 999.99)

	if got[1].Category != "Books" || got[2].Category != "Poetry" {
		t.Fatalf("ties should order by category: %+v", got)
	}
	if p := got[2]; p.AveragePrice != nil || p.MinPrice != nil || p.MaxPrice != nil {
		t.Fatalf("unpriced category should have nil aggregates: %+v", p)
	}
}

func TestLite_SaveManyLargeBatch(t *testing.T) {
	ctx := context.Background()
	r := newLiteRepo(t)

	const n = 3500
	ps := make([]catalog.Product, n)
	for i := range ps {
		ps[i] = product(fmt.Sprintf("bulk-%04d", i), "Bulk", nil, testkit.Ptr(1.5), t0.Add(time.Duration(i)*time.Second))
	}
	if err := r.SaveMany(ctx, ps); err != nil {
		t.Fatalf("SaveMany %d rows: %v", n, err)
	}
	total, err := r.CountTotal(ctx, false)
	if err != nil || total != n {
		t.Fatalf("CountTotal = %d, %v; want %d", total, err, n)
	}
}

func TestLite_NegativePriceDoesNotFailBatch(t *testing.T) {
	ctx := context.Background()
	r := newLiteRepo(t)
	norm := normalize.New()
	now := t0

	entries := []catalog.RawEntry{
		{Sys: catalog.EntrySys{ID: "good"}, Fields: map[string]any{"productName": "Good", "price": 10.0}},
		{Sys: catalog.EntrySys{ID: "neg"}, Fields: map[string]any{"productName": "Neg", "price": "-5"}},
	}
	ps := make([]catalog.Product, 0, len(entries))
	for _, e := range entries {
		ps = append(ps, norm.Normalize(e).ToProduct(now))
	}
	if err := r.SaveMany(ctx, ps); err != nil {
		t.Fatalf("SaveMany: %v", err)
	}

	neg, err := r.FindByID(ctx, "neg")
	if err != nil {
		t.Fatalf("FindByID neg: %v", err)
	}
	if neg.Price != nil {
		t.Fatalf("negative price should be stored as null, got %v", *neg.Price)
	}
	good, err := r.FindByID(ctx, "good")
	if err != nil || good.Price == nil || *good.Price != 10 {
		t.Fatalf("good product: %+v %v", good, err)
	}
}

func TestLite_FindAllFoldsNonASCII(t *testing.T) {
	ctx := context.Background()
	r := newLiteRepo(t)
	ps := []catalog.Product{
		product("u1", "ÉCLAIR CRÈME", testkit.Ptr("Pâtisserie"), nil, t0),
		product("u2", "Plain Bun", nil, nil, t0.Add(time.Hour)),
	}
	if err := r.SaveMany(ctx, ps); err != nil {
		t.Fatalf("SaveMany: %v", err)
	}
	p, _ := catalog.NewPagination(1, 5)

	for _, f := range []catalog.ProductFilter{{Name: "éclair crème"}, {Category: "PÂTISS"}} {
		got, total, err := r.FindAll(ctx, p, f)
		if err != nil {
			t.Fatalf("FindAll %+v: %v", f, err)
		}
		if total != 1 || len(got) != 1 || got[0].ID != "u1" {
			t.Fatalf("filter %+v: total %d got %+v", f, total, got)
		}
		if !got[0].MatchesName(f.Name) {
			t.Fatalf("repo and entity predicates disagree for %+v", f)
		}
	}
}
