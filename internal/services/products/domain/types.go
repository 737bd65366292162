package domain

import (
	"time"

	"github.com/RodrigoRozasV/contentful-products-api/internal/core/catalog"
)

// ListInput is the raw listing request; Page and Limit are validated as given
type ListInput struct {
	Page     int
	Limit    int
	Name     string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// Page is one window of the catalog
type Page struct {
	Items []ProductDTO `json:"data"`
	Meta  PageMeta     `json:"meta"`
}

// PageMeta describes the window
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// ProductDTO is the wire shape of a product
type ProductDTO struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Category            *string          `json:"category"`
	Price               *float64         `json:"price"`
	Description         *string          `json:"description"`
	Metadata            catalog.Metadata `json:"metadata"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
	ContentfulCreatedAt *time.Time       `json:"contentfulCreatedAt"`
	ContentfulUpdatedAt *time.Time       `json:"contentfulUpdatedAt"`
}

// DeleteResult confirms a soft delete
type DeleteResult struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// DeletedMessage is the confirmation text of DeleteResult
const DeletedMessage = "Product deleted successfully"

// ToDTO maps a product onto its wire shape
func ToDTO(p catalog.Product) ProductDTO {
	return ProductDTO{
		ID:                  p.ID,
		Name:                p.Name,
		Category:            p.Category,
		Price:               p.Price,
		Description:         p.Description,
		Metadata:            p.Metadata,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
		ContentfulCreatedAt: p.ContentfulCreatedAt,
		ContentfulUpdatedAt: p.ContentfulUpdatedAt,
	}
}
