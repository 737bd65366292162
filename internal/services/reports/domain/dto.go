package domain

// Sentinels echoed for filters the caller left out
const (
	NotSpecified = "not specified"
	AllPrices    = "all"
)

// DeletedReport is the share of soft-deleted products
type DeletedReport struct {
	TotalProducts     int64   `json:"totalProducts"`
	DeletedProducts   int64   `json:"deletedProducts"`
	PercentageDeleted float64 `json:"percentageDeleted"`
}

// NonDeletedFilters are the optional report inputs; dates are raw strings validated by the
// report
type NonDeletedFilters struct {
	StartDate string
	EndDate   string
	HasPrice  *bool
}

// AppliedFilters echoes the inputs; absent values carry the sentinels
type AppliedFilters struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	// HasPrice is a bool or AllPrices
	HasPrice any `json:"hasPrice"`
}

// NonDeletedReport splits live products by price presence
type NonDeletedReport struct {
	TotalNonDeleted        int64          `json:"totalNonDeleted"`
	ProductsWithPrice      int64          `json:"productsWithPrice"`
	ProductsWithoutPrice   int64          `json:"productsWithoutPrice"`
	PercentageWithPrice    float64        `json:"percentageWithPrice"`
	PercentageWithoutPrice float64        `json:"percentageWithoutPrice"`
	Filters                AppliedFilters `json:"filters"`
}

// CategoryStat is one category row with rounded prices; nil prices stay nil
type CategoryStat struct {
	Category     string   `json:"category"`
	Count        int64    `json:"count"`
	AveragePrice *float64 `json:"averagePrice"`
	MinPrice     *float64 `json:"minPrice"`
	MaxPrice     *float64 `json:"maxPrice"`
}

// CategoryReport breaks the live catalog down by category
type CategoryReport struct {
	TotalProducts           int64          `json:"totalProducts"`
	ProductsWithCategory    int64          `json:"productsWithCategory"`
	ProductsWithoutCategory int64          `json:"productsWithoutCategory"`
	Categories              []CategoryStat `json:"categories"`
}
