// Package repo provides product persistence over postgres (pgx) and sqlite (gorm)
package repo

import (
	"strings"

	"github.com/RodrigoRozasV/contentful-products-api/internal/modkit/repokit"
	"github.com/RodrigoRozasV/contentful-products-api/internal/services/products/domain"

	"gorm.io/gorm"
)

// Repo is the persistence surface for products
type Repo = domain.Repository

// For picks the implementation for the open backend; pg wins when both are set and nil
// is returned when neither is
func For(pg repokit.TxRunner, lite *gorm.DB) Repo {
	switch {
	case pg != nil:
		return NewPG().Bind(pg)
	case lite != nil:
		return NewLite(lite)
	}
	return nil
}

// likePattern turns a search term into a contains pattern with LIKE wildcards escaped;
// blank terms give ""
func likePattern(term string) string {
	if term == "" {
		return ""
	}
	r := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return "%" + r.Replace(term) + "%"
}
