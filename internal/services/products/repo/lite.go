package repo

import (
	"context"
	"time"

	"github.com/RodrigoRozasV/contentful-products-api/internal/core/catalog"
	perr "github.com/RodrigoRozasV/contentful-products-api/internal/platform/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRow is the gorm model of the products table
type productRow struct {
	ID                  string   `gorm:"primaryKey"`
	Name                string   `gorm:"not null"`
	Category            *string  `gorm:"index"`
	Price               *float64 `gorm:"check:price IS NULL OR price >= 0"`
	Description         *string
	Metadata            catalog.Metadata `gorm:"type:text"`
	CreatedAt           time.Time        `gorm:"index"`
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
	ContentfulCreatedAt *time.Time
	ContentfulUpdatedAt *time.Time
}

// TableName pins the table shared with the postgres schema
func (productRow) TableName() string { return "products" }

// Models lists the gorm models to auto migrate on a sqlite store
func Models() []any { return []any{&productRow{}} }

// saveBatchSize keeps each insert well under the sqlite bound variable limit
const saveBatchSize = 500

// upsertColumns are replaced on conflict; deleted_at is left alone
var upsertColumns = []string{
	"name", "category", "price", "description", "metadata",
	"created_at", "updated_at", "contentful_created_at", "contentful_updated_at",
}

func toRow(p catalog.Product) productRow {
	return productRow{
		ID:                  p.ID,
		Name:                p.Name,
		Category:            p.Category,
		Price:               p.Price,
		Description:         p.Description,
		Metadata:            p.Metadata,
		CreatedAt:           p.CreatedAt.UTC(),
		UpdatedAt:           p.UpdatedAt.UTC(),
		ContentfulCreatedAt: utcPtr(p.ContentfulCreatedAt),
		ContentfulUpdatedAt: utcPtr(p.ContentfulUpdatedAt),
	}
}

func (r productRow) product() catalog.Product {
	p := catalog.Product{
		ID:                  r.ID,
		Name:                r.Name,
		Category:            r.Category,
		Price:               r.Price,
		Description:         r.Description,
		Metadata:            r.Metadata,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
		ContentfulCreatedAt: r.ContentfulCreatedAt,
		ContentfulUpdatedAt: r.ContentfulUpdatedAt,
	}
	if r.DeletedAt.Valid {
		t := r.DeletedAt.Time
		p.DeletedAt = &t
	}
	return p
}

// lite implements Repo over gorm; soft delete scoping comes from gorm.DeletedAt
type lite struct{ db *gorm.DB }

// NewLite returns the gorm backed repo
func NewLite(db *gorm.DB) Repo {
	if db == nil {
		panic("products repo requires a non nil gorm.DB")
	}
	return &lite{db: db}
}

func (r *lite) model(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&productRow{})
}

func (r *lite) SaveMany(ctx context.Context, products []catalog.Product) error {
	if len(products) == 0 {
		return nil
	}
	rows := make([]productRow, len(products))
	for i, p := range products {
		rows[i] = toRow(p)
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(upsertColumns),
		}).CreateInBatches(&rows, saveBatchSize).Error
	})
	return perr.FromGorm(err, "upsert products")
}

func (r *lite) FindByID(ctx context.Context, id string) (catalog.Product, error) {
	var row productRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return catalog.Product{}, perr.FromGormf(err, "find product %s", id)
	}
	return row.product(), nil
}

func (r *lite) filtered(ctx context.Context, f catalog.ProductFilter) *gorm.DB {
	q := r.model(ctx)
	if pat := likePattern(f.Name); pat != "" {
		q = q.Where(`casefold(name) LIKE casefold(?) ESCAPE '\'`, pat)
	}
	if pat := likePattern(f.Category); pat != "" {
		q = q.Where(`casefold(coalesce(category, '')) LIKE casefold(?) ESCAPE '\'`, pat)
	}
	if m := f.Price.Min(); m != nil {
		q = q.Where("price >= ?", *m)
	}
	if m := f.Price.Max(); m != nil {
		q = q.Where("price <= ?", *m)
	}
	return q
}

func (r *lite) FindAll(ctx context.Context, p catalog.Pagination, f catalog.ProductFilter) ([]catalog.Product, int64, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, perr.FromGorm(err, "count products")
	}

	var rows []productRow
	err := r.filtered(ctx, f).
		Order("created_at desc").
		Order("id asc").
		Offset(p.Skip()).
		Limit(p.Limit()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, perr.FromGorm(err, "list products")
	}

	out := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.product())
	}
	return out, total, nil
}

func (r *lite) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&productRow{})
	if res.Error != nil {
		return perr.FromGormf(res.Error, "soft delete product %s", id)
	}
	if res.RowsAffected == 0 {
		return perr.ErrNotFound
	}
	return nil
}

func (r *lite) CountTotal(ctx context.Context, includeDeleted bool) (int64, error) {
	q := r.model(ctx)
	if includeDeleted {
		q = q.Unscoped()
	}
	return r.count(q, "count total")
}

func (r *lite) CountDeleted(ctx context.Context) (int64, error) {
	return r.count(r.model(ctx).Unscoped().Where("deleted_at IS NOT NULL"), "count deleted")
}

func (r *lite) inRange(ctx context.Context, dr catalog.DateRange) *gorm.DB {
	q := r.model(ctx)
	if s := dr.Start(); s != nil {
		q = q.Where("created_at >= ?", s.UTC())
	}
	if e := dr.End(); e != nil {
		q = q.Where("created_at <= ?", e.UTC())
	}
	return q
}

func (r *lite) CountByDateRange(ctx context.Context, dr catalog.DateRange) (int64, error) {
	return r.count(r.inRange(ctx, dr), "count by date range")
}

func (r *lite) CountWithPriceByDateRange(ctx context.Context, dr catalog.DateRange) (int64, error) {
	return r.count(r.inRange(ctx, dr).Where("price IS NOT NULL"), "count with price")
}

func (r *lite) CountWithoutPriceByDateRange(ctx context.Context, dr catalog.DateRange) (int64, error) {
	return r.count(r.inRange(ctx, dr).Where("price IS NULL"), "count without price")
}

// categoryRow receives the grouped aggregate columns
type categoryRow struct {
	Category     string
	Count        int64
	AveragePrice *float64
	MinPrice     *float64
	MaxPrice     *float64
}

func (r *lite) ProductsByCategory(ctx context.Context) ([]catalog.CategoryAggregate, error) {
	var rows []categoryRow
	err := r.model(ctx).
		Select("category, count(*) AS count, avg(price) AS average_price, min(price) AS min_price, max(price) AS max_price").
		Where("category IS NOT NULL").
		Group("category").
		Order("count DESC").
		Order("category ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, perr.FromGorm(err, "products by category")
	}
	out := make([]catalog.CategoryAggregate, 0, len(rows))
	for _, c := range rows {
		out = append(out, catalog.CategoryAggregate(c))
	}
	return out, nil
}

func (r *lite) count(q *gorm.DB, op string) (int64, error) {
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, perr.FromGorm(err, op)
	}
	return n, nil
}
