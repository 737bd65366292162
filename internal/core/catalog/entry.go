package catalog

import "time"

// Link is a Contentful link object ({"sys":{"id","type","linkType"}})
type Link struct {
	Sys LinkSys `json:"sys"`
}

// LinkSys is the sys block of a link
type LinkSys struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	LinkType string `json:"linkType,omitempty"`
}

// EntrySys is the system block of a raw entry
type EntrySys struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Revision    int    `json:"revision,omitempty"`
	Locale      string `json:"locale,omitempty"`
	ContentType *Link  `json:"contentType,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// RawEntry is one loosely typed entry as delivered by the content source
type RawEntry struct {
	Sys    EntrySys       `json:"sys"`
	Fields map[string]any `json:"fields"`
}

// ExternalProduct is the normalized form of a RawEntry, transient per sync run
type ExternalProduct struct {
	ID          string
	Name        string
	Category    *string
	Price       *float64
	Description *string
	Metadata    Metadata
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ToProduct stamps ext with system timestamps at now. Empty category or description and a
// zero or negative price become nil.
func (ext ExternalProduct) ToProduct(now time.Time) Product {
	p := Product{
		ID:          ext.ID,
		Name:        ext.Name,
		Category:    emptyToNil(ext.Category),
		Description: emptyToNil(ext.Description),
		Metadata:    ext.Metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if ext.Price != nil && *ext.Price > 0 {
		v := *ext.Price
		p.Price = &v
	}
	if !ext.CreatedAt.IsZero() {
		t := ext.CreatedAt
		p.ContentfulCreatedAt = &t
	}
	if !ext.UpdatedAt.IsZero() {
		t := ext.UpdatedAt
		p.ContentfulUpdatedAt = &t
	}
	return p
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
