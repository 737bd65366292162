package repo

import (
	"context"
	"time"

	"github.com/RodrigoRozasV/contentful-products-api/internal/core/catalog"
	"github.com/RodrigoRozasV/contentful-products-api/internal/modkit/repokit"
	perr "github.com/RodrigoRozasV/contentful-products-api/internal/platform/errors"
	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/store"
)

type (
	// PG is a binder that can bind the repo to a Queryer or TxRunner
	PG struct{}
	// queries implements Repo with hand written sql
	queries struct{ q repokit.Queryer }
)

// NewPG returns a binder that can bind the repo to a Queryer or TxRunner
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind wires a Queryer to the repo
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

const productColumns = `id, name, category, price, description, metadata,
created_at, updated_at, deleted_at, contentful_created_at, contentful_updated_at`

func scanProduct(r store.Row) (catalog.Product, error) {
	var (
		p    catalog.Product
		meta []byte
	)
	if err := r.Scan(
		&p.ID, &p.Name, &p.Category, &p.Price, &p.Description, &meta,
		&p.CreatedAt, &p.UpdatedAt, &p.DeletedAt, &p.ContentfulCreatedAt, &p.ContentfulUpdatedAt,
	); err != nil {
		return catalog.Product{}, err
	}
	if err := p.Metadata.Scan(meta); err != nil {
		return catalog.Product{}, perr.Wrapf(err, perr.ErrorCodeJSON, "decode metadata of product %s", p.ID)
	}
	return p, nil
}

// metadataArg renders metadata as json text for a jsonb parameter
func metadataArg(m catalog.Metadata) (any, error) {
	v, err := m.Value()
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "encode metadata")
	}
	return v, nil
}

func (r *queries) SaveMany(ctx context.Context, products []catalog.Product) error {
	if len(products) == 0 {
		return nil
	}
	// deleted_at is only written on insert so soft deletes survive a re-sync
	const sql = `
insert into products (id, name, category, price, description, metadata,
  created_at, updated_at, deleted_at, contentful_created_at, contentful_updated_at)
values ($1, $2, $3, $4, $5, $6::jsonb, $7, $8, null, $9, $10)
on conflict (id) do update set
  name = excluded.name,
  category = excluded.category,
  price = excluded.price,
  description = excluded.description,
  metadata = excluded.metadata,
  created_at = excluded.created_at,
  updated_at = excluded.updated_at,
  contentful_created_at = excluded.contentful_created_at,
  contentful_updated_at = excluded.contentful_updated_at
`
	return repokit.InTx(ctx, r.q, func(q repokit.Queryer) error {
		for _, p := range products {
			meta, err := metadataArg(p.Metadata)
			if err != nil {
				return err
			}
			if _, err := q.Exec(ctx, sql,
				p.ID, p.Name, p.Category, p.Price, p.Description, meta,
				p.CreatedAt, p.UpdatedAt, p.ContentfulCreatedAt, p.ContentfulUpdatedAt,
			); err != nil {
				return perr.FromPostgresf(err, "upsert product %s", p.ID)
			}
		}
		return nil
	})
}

func (r *queries) FindByID(ctx context.Context, id string) (catalog.Product, error) {
	const sql = `select ` + productColumns + `
from products
where id = $1 and deleted_at is null
`
	p, err := store.One(ctx, r.q, scanProduct, sql, id)
	if err != nil && !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return catalog.Product{}, perr.FromPostgresf(err, "find product %s", id)
	}
	return p, err
}

// filterWhere is shared by the page query and its count; $1..$4 are name pattern,
// category pattern, min and max price
const filterWhere = `
where deleted_at is null
and ($1::text = '' or name ilike $1 escape '\')
and ($2::text = '' or category ilike $2 escape '\')
and ($3::float8 is null or price >= $3)
and ($4::float8 is null or price <= $4)
`

func (r *queries) FindAll(ctx context.Context, p catalog.Pagination, f catalog.ProductFilter) ([]catalog.Product, int64, error) {
	args := []any{likePattern(f.Name), likePattern(f.Category), f.Price.Min(), f.Price.Max()}

	total, err := store.Scalar[int64](ctx, r.q, `select count(*) from products`+filterWhere, args...)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "count products")
	}

	sql := `select ` + productColumns + ` from products` + filterWhere + `
order by created_at desc, id asc
limit $5 offset $6
`
	items, err := store.Many(ctx, r.q, scanProduct, sql, append(args, p.Limit(), p.Skip())...)
	if err != nil {
		return nil, 0, perr.FromPostgres(err, "list products")
	}
	return items, total, nil
}

func (r *queries) SoftDelete(ctx context.Context, id string) error {
	const sql = `
update products
set deleted_at = now(), updated_at = now()
where id = $1 and deleted_at is null
`
	err := store.ExecOne(ctx, r.q, sql, id)
	if err != nil && !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return perr.FromPostgresf(err, "soft delete product %s", id)
	}
	return err
}

func (r *queries) CountTotal(ctx context.Context, includeDeleted bool) (int64, error) {
	const sql = `select count(*) from products where $1 or deleted_at is null`
	return r.count(ctx, "count total", sql, includeDeleted)
}

func (r *queries) CountDeleted(ctx context.Context) (int64, error) {
	const sql = `select count(*) from products where deleted_at is not null`
	return r.count(ctx, "count deleted", sql)
}

// rangeWhere scopes live rows to created_at within [$1, $2]; null bounds are open
const rangeWhere = `
where deleted_at is null
and ($1::timestamptz is null or created_at >= $1)
and ($2::timestamptz is null or created_at <= $2)
`

func (r *queries) CountByDateRange(ctx context.Context, dr catalog.DateRange) (int64, error) {
	return r.count(ctx, "count by date range", `select count(*) from products`+rangeWhere, rangeArgs(dr)...)
}

func (r *queries) CountWithPriceByDateRange(ctx context.Context, dr catalog.DateRange) (int64, error) {
	sql := `select count(*) from products` + rangeWhere + `and price is not null`
	return r.count(ctx, "count with price", sql, rangeArgs(dr)...)
}

func (r *queries) CountWithoutPriceByDateRange(ctx context.Context, dr catalog.DateRange) (int64, error) {
	sql := `select count(*) from products` + rangeWhere + `and price is null`
	return r.count(ctx, "count without price", sql, rangeArgs(dr)...)
}

func (r *queries) ProductsByCategory(ctx context.Context) ([]catalog.CategoryAggregate, error) {
	const sql = `
select category, count(*)::bigint, avg(price)::float8, min(price)::float8, max(price)::float8
from products
where deleted_at is null and category is not null
group by category
order by count(*) desc, category asc
`
	out, err := store.Many(ctx, r.q, func(row store.Row) (catalog.CategoryAggregate, error) {
		var a catalog.CategoryAggregate
		err := row.Scan(&a.Category, &a.Count, &a.AveragePrice, &a.MinPrice, &a.MaxPrice)
		return a, err
	}, sql)
	if err != nil {
		return nil, perr.FromPostgres(err, "products by category")
	}
	return out, nil
}

func (r *queries) count(ctx context.Context, op, sql string, args ...any) (int64, error) {
	n, err := store.Scalar[int64](ctx, r.q, sql, args...)
	if err != nil {
		return 0, perr.FromPostgres(err, op)
	}
	return n, nil
}

func rangeArgs(dr catalog.DateRange) []any {
	return []any{utcPtr(dr.Start()), utcPtr(dr.End())}
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
